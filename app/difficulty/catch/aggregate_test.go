package catch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wieku/danser-pp/app/beatmap"
	"github.com/wieku/danser-pp/app/beatmap/difficulty"
	"github.com/wieku/danser-pp/app/difficulty/catch"
	"github.com/wieku/danser-pp/framework/math/vector"
)

func fixtureMap(n int) *beatmap.Beatmap {
	b := &beatmap.Beatmap{
		Mode: beatmap.ModeCatch,
		AR:   9, OD: 6, CS: 4, HP: 5,
		SliderMultiplier: 1.4,
		TickRate:         1,
		TimingPoints:     []beatmap.TimingPoint{{Time: 0, BeatLen: 350}},
		DifficultyPoints: []beatmap.DifficultyPoint{{Time: 0, SpeedMultiplier: 1}},
	}

	t := 1000.0

	for i := 0; i < n; i++ {
		x := float32((i * 97) % 480)
		b.HitObjects = append(b.HitObjects, beatmap.NewCircle(vector.Pos2{X: x, Y: 0}, t, 0, i%4 == 0))
		b.Sounds = append(b.Sounds, 0)
		t += 250
	}

	b.RefreshCounts()

	return b
}

func TestCalculateProducesPositiveStars(t *testing.T) {
	b := fixtureMap(25)
	d := difficulty.NewDifficultyFromMap(b)

	attrs, err := catch.Calculate(b, d)
	require.NoError(t, err)

	assert.Greater(t, attrs.Stars, 0.0)
	assert.Equal(t, 25, attrs.NFruits)
	assert.Equal(t, 25, attrs.MaxCombo)
}

func TestCalculateIsDeterministic(t *testing.T) {
	b := fixtureMap(20)

	a1, err := catch.Calculate(b, difficulty.NewDifficultyFromMap(b))
	require.NoError(t, err)
	a2, err := catch.Calculate(b, difficulty.NewDifficultyFromMap(b))
	require.NoError(t, err)

	assert.Equal(t, a1, a2)
}

func TestCalculateEmptyMapYieldsZeroStars(t *testing.T) {
	b := fixtureMap(0)

	attrs, err := catch.Calculate(b, difficulty.NewDifficultyFromMap(b))
	require.NoError(t, err)

	assert.Equal(t, 0.0, attrs.Stars)
	assert.Equal(t, 0, attrs.MaxCombo)
}

func TestCalculateAcceptsStandardOriginMap(t *testing.T) {
	b := fixtureMap(10)
	b.Mode = beatmap.ModeOsu

	_, err := catch.Calculate(b, difficulty.NewDifficultyFromMap(b))
	assert.NoError(t, err)
}

func TestCalculateRejectsManiaNativeMap(t *testing.T) {
	b := fixtureMap(5)
	b.Mode = beatmap.ModeMania

	_, err := catch.Calculate(b, difficulty.NewDifficultyFromMap(b))
	assert.ErrorIs(t, err, beatmap.ErrModeMismatch)
}
