package taiko_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wieku/danser-pp/app/beatmap"
	"github.com/wieku/danser-pp/app/beatmap/difficulty"
	"github.com/wieku/danser-pp/app/difficulty/taiko"
	"github.com/wieku/danser-pp/framework/math/vector"
)

func fixtureMap(n int) *beatmap.Beatmap {
	b := &beatmap.Beatmap{
		Mode: beatmap.ModeOsu,
		AR:   9, OD: 6, CS: 4, HP: 5,
		SliderMultiplier: 1.4,
		TickRate:         1,
		TimingPoints:     []beatmap.TimingPoint{{Time: 0, BeatLen: 350}},
		DifficultyPoints: []beatmap.DifficultyPoint{{Time: 0, SpeedMultiplier: 1}},
	}

	t := 1000.0

	for i := 0; i < n; i++ {
		b.HitObjects = append(b.HitObjects, beatmap.NewCircle(vector.Pos2{}, t, uint8(i%2), i%4 == 0))
		b.Sounds = append(b.Sounds, uint8(i%2))
		t += 200
	}

	b.RefreshCounts()

	return b
}

func TestCalculateConvertsAndProducesPositiveStars(t *testing.T) {
	b := fixtureMap(30)
	d := difficulty.NewDifficultyFromMap(b)

	attrs, err := taiko.Calculate(b, d)
	require.NoError(t, err)

	assert.Greater(t, attrs.Stars, 0.0)
	assert.Equal(t, 30, attrs.MaxCombo)
	// Calculate must not mutate the caller's original map.
	assert.Equal(t, beatmap.ModeOsu, b.Mode)
}

func TestCalculateNativeTaikoMapSkipsConversion(t *testing.T) {
	b := fixtureMap(10)
	b.Mode = beatmap.ModeTaiko

	d := difficulty.NewDifficultyFromMap(b)
	attrs, err := taiko.Calculate(b, d)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, attrs.Stars, 0.0)
}

func TestCalculateIsDeterministic(t *testing.T) {
	b := fixtureMap(25)

	a1, err := taiko.Calculate(b, difficulty.NewDifficultyFromMap(b))
	require.NoError(t, err)
	a2, err := taiko.Calculate(b, difficulty.NewDifficultyFromMap(b))
	require.NoError(t, err)

	assert.Equal(t, a1, a2)
}

func TestCalculateRejectsCatchNativeMap(t *testing.T) {
	b := fixtureMap(5)
	b.Mode = beatmap.ModeCatch

	_, err := taiko.Calculate(b, difficulty.NewDifficultyFromMap(b))
	assert.ErrorIs(t, err, beatmap.ErrModeMismatch)
}
