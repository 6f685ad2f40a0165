package osu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wieku/danser-pp/app/beatmap"
	"github.com/wieku/danser-pp/app/beatmap/difficulty"
	"github.com/wieku/danser-pp/app/difficulty/osu"
	"github.com/wieku/danser-pp/framework/math/vector"
)

func fixtureMap(n int) *beatmap.Beatmap {
	b := &beatmap.Beatmap{
		AR: 9, OD: 8, CS: 4, HP: 5,
		SliderMultiplier: 1.4,
		TickRate:         1,
		StackLeniency:    0.7,
		TimingPoints:     []beatmap.TimingPoint{{Time: 0, BeatLen: 350}},
		DifficultyPoints: []beatmap.DifficultyPoint{{Time: 0, SpeedMultiplier: 1}},
	}

	t := 1000.0

	for i := 0; i < n; i++ {
		pos := vector.Pos2{X: float32(100 + i*20%300), Y: float32(100 + i*37%300)}
		b.HitObjects = append(b.HitObjects, beatmap.NewCircle(pos, t, 0, i%4 == 0))
		b.Sounds = append(b.Sounds, 0)
		t += 300
	}

	b.RefreshCounts()

	return b
}

func TestCalculateProducesPositiveStarsForNonEmptyMap(t *testing.T) {
	b := fixtureMap(20)
	d := difficulty.NewDifficultyFromMap(b)

	attrs, err := osu.Calculate(b, d)
	require.NoError(t, err)

	assert.Greater(t, attrs.Stars, 0.0)
	assert.Equal(t, 20, attrs.NCircles)
	assert.Equal(t, 20, attrs.MaxCombo)
}

func TestCalculateIsDeterministic(t *testing.T) {
	b := fixtureMap(15)

	a1, err := osu.Calculate(b, difficulty.NewDifficultyFromMap(b))
	require.NoError(t, err)
	a2, err := osu.Calculate(b, difficulty.NewDifficultyFromMap(b))
	require.NoError(t, err)

	assert.Equal(t, a1, a2)
}

func TestCalculateEmptyMapYieldsZeroStars(t *testing.T) {
	b := fixtureMap(0)
	d := difficulty.NewDifficultyFromMap(b)

	attrs, err := osu.Calculate(b, d)
	require.NoError(t, err)

	require.Equal(t, 0, attrs.MaxCombo)
	assert.Equal(t, 0.0, attrs.Stars)
}

func TestCalculateRejectsNonStandardNativeMap(t *testing.T) {
	b := fixtureMap(5)
	b.Mode = beatmap.ModeTaiko

	_, err := osu.Calculate(b, difficulty.NewDifficultyFromMap(b))
	assert.ErrorIs(t, err, beatmap.ErrModeMismatch)
}

func TestHardRockAndEasyChangeStars(t *testing.T) {
	b := fixtureMap(20)

	nomod, err := osu.Calculate(b, difficulty.NewDifficultyFromMap(b))
	require.NoError(t, err)
	hr, err := osu.Calculate(b, difficulty.NewDifficultyFromMap(b).SetMods(difficulty.HardRock))
	require.NoError(t, err)
	ez, err := osu.Calculate(b, difficulty.NewDifficultyFromMap(b).SetMods(difficulty.Easy))
	require.NoError(t, err)

	assert.Greater(t, hr.Stars, 0.0)
	assert.Greater(t, ez.Stars, 0.0)
	assert.NotEqual(t, nomod.Stars, hr.Stars)
	assert.NotEqual(t, nomod.Stars, ez.Stars)
}
