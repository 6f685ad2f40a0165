package gradual_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wieku/danser-pp/app/beatmap"
	"github.com/wieku/danser-pp/app/beatmap/difficulty"
	"github.com/wieku/danser-pp/app/difficulty/catch"
	"github.com/wieku/danser-pp/app/difficulty/gradual"
	"github.com/wieku/danser-pp/app/difficulty/mania"
	"github.com/wieku/danser-pp/app/difficulty/osu"
	"github.com/wieku/danser-pp/app/difficulty/taiko"
	"github.com/wieku/danser-pp/framework/math/vector"
)

func fixtureMap(n int) *beatmap.Beatmap {
	b := &beatmap.Beatmap{
		Mode: beatmap.ModeOsu,
		AR:   9, OD: 8, CS: 4, HP: 5,
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

func TestOsuGradualMatchesBatchAtFullLength(t *testing.T) {
	b := fixtureMap(20)

	batch, err := osu.Calculate(b, difficulty.NewDifficultyFromMap(b))
	require.NoError(t, err)

	g, err := gradual.NewOsu(b, difficulty.NewDifficultyFromMap(b))
	require.NoError(t, err)

	require.Equal(t, 20, g.Len())

	var last osu.Attributes
	for {
		attrs, ok := g.Next()
		if !ok {
			break
		}
		last = attrs
	}

	assert.Equal(t, 0, g.Len())
	assert.InDelta(t, batch.Stars, last.Stars, 1e-9)
	assert.Equal(t, batch.MaxCombo, last.MaxCombo)
}

func TestOsuGradualExhaustionReturnsFalse(t *testing.T) {
	b := fixtureMap(3)
	g, err := gradual.NewOsu(b, difficulty.NewDifficultyFromMap(b))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, ok := g.Next()
		require.True(t, ok)
	}

	_, ok := g.Next()
	assert.False(t, ok)
}

func TestOsuGradualNthSkipsAhead(t *testing.T) {
	b := fixtureMap(10)

	sequential, err := gradual.NewOsu(b, difficulty.NewDifficultyFromMap(b))
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		sequential.Next()
	}
	want, ok := sequential.Next()
	require.True(t, ok)

	skipping, err := gradual.NewOsu(b, difficulty.NewDifficultyFromMap(b))
	require.NoError(t, err)
	got, ok := skipping.Nth(4)
	require.True(t, ok)

	assert.InDelta(t, want.Stars, got.Stars, 1e-9)
}

func TestTaikoGradualMatchesBatch(t *testing.T) {
	b := fixtureMap(12)

	batch, err := taiko.Calculate(b, difficulty.NewDifficultyFromMap(b))
	require.NoError(t, err)

	g, err2 := gradual.NewTaiko(b, difficulty.NewDifficultyFromMap(b))
	require.NoError(t, err2)

	var last taiko.Attributes
	for {
		attrs, ok := g.Next()
		if !ok {
			break
		}
		last = attrs
	}

	assert.InDelta(t, batch.Stars, last.Stars, 1e-9)
}

func TestCatchGradualMatchesBatch(t *testing.T) {
	b := fixtureMap(12)
	b.Mode = beatmap.ModeCatch

	batch, err := catch.Calculate(b, difficulty.NewDifficultyFromMap(b))
	require.NoError(t, err)

	g, err2 := gradual.NewCatch(b, difficulty.NewDifficultyFromMap(b))
	require.NoError(t, err2)

	var last catch.Attributes
	for {
		attrs, ok := g.Next()
		if !ok {
			break
		}
		last = attrs
	}

	assert.InDelta(t, batch.Stars, last.Stars, 1e-9)
}

func TestManiaGradualMatchesBatch(t *testing.T) {
	b := fixtureMap(16)

	batch, err := mania.Calculate(b, difficulty.NewDifficultyFromMap(b))
	require.NoError(t, err)

	g, err2 := gradual.NewMania(b, difficulty.NewDifficultyFromMap(b))
	require.NoError(t, err2)

	var last mania.Attributes
	for {
		attrs, ok := g.Next()
		if !ok {
			break
		}
		last = attrs
	}

	assert.InDelta(t, batch.Stars, last.Stars, 1e-9)
}
