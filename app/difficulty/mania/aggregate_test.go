package mania_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wieku/danser-pp/app/beatmap"
	"github.com/wieku/danser-pp/app/beatmap/difficulty"
	"github.com/wieku/danser-pp/app/difficulty/mania"
	"github.com/wieku/danser-pp/framework/math/vector"
)

func fixtureMap(n int) *beatmap.Beatmap {
	b := &beatmap.Beatmap{
		Mode: beatmap.ModeOsu,
		AR:   9, OD: 8, CS: 4, HP: 5,
		SliderMultiplier: 1.4,
		TickRate:         1,
		TimingPoints:     []beatmap.TimingPoint{{Time: 0, BeatLen: 350}},
		DifficultyPoints: []beatmap.DifficultyPoint{{Time: 0, SpeedMultiplier: 1}},
	}

	t := 1000.0

	for i := 0; i < n; i++ {
		b.HitObjects = append(b.HitObjects, beatmap.NewCircle(vector.Pos2{X: float32(i * 40 % 480)}, t, 0, i%4 == 0))
		b.Sounds = append(b.Sounds, 0)
		t += 200
	}

	b.RefreshCounts()

	return b
}

func TestCalculateConvertsAndProducesPositiveStars(t *testing.T) {
	b := fixtureMap(40)
	d := difficulty.NewDifficultyFromMap(b)

	attrs, err := mania.Calculate(b, d)
	require.NoError(t, err)

	assert.Greater(t, attrs.Stars, 0.0)
	assert.Equal(t, 40, attrs.MaxCombo)
	assert.Equal(t, beatmap.ModeOsu, b.Mode)
}

func TestCalculateIsDeterministic(t *testing.T) {
	b := fixtureMap(30)

	a1, err := mania.Calculate(b, difficulty.NewDifficultyFromMap(b))
	require.NoError(t, err)
	a2, err := mania.Calculate(b, difficulty.NewDifficultyFromMap(b))
	require.NoError(t, err)

	assert.Equal(t, a1, a2)
}

func TestCalculateEmptyMapYieldsZeroStars(t *testing.T) {
	b := fixtureMap(0)

	attrs, err := mania.Calculate(b, difficulty.NewDifficultyFromMap(b))
	require.NoError(t, err)

	assert.Equal(t, 0.0, attrs.Stars)
	assert.Equal(t, 0, attrs.MaxCombo)
}

func TestCalculateRejectsTaikoNativeMap(t *testing.T) {
	b := fixtureMap(5)
	b.Mode = beatmap.ModeTaiko

	_, err := mania.Calculate(b, difficulty.NewDifficultyFromMap(b))
	assert.ErrorIs(t, err, beatmap.ErrModeMismatch)
}
