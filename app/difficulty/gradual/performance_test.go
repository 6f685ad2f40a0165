package gradual_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wieku/danser-pp/app/beatmap/difficulty"
	"github.com/wieku/danser-pp/app/difficulty/gradual"
	"github.com/wieku/danser-pp/app/performance"
)

func TestOsuPerformanceTracksIncreasingCombo(t *testing.T) {
	b := fixtureMap(10)

	g, err := gradual.NewOsuPerformance(b, difficulty.NewDifficultyFromMap(b))
	require.NoError(t, err)

	state := performance.ScoreState{}

	var last performance.OsuAttributes
	for i := 0; i < 10; i++ {
		state.N300++
		state.MaxCombo++

		attrs, ok := g.Next(state)
		require.True(t, ok)

		last = attrs
	}

	_, ok := g.Next(state)
	assert.False(t, ok)
	assert.GreaterOrEqual(t, last.PP, 0.0)
}

func TestOsuPerformanceNthObjectsMatchesSequential(t *testing.T) {
	b := fixtureMap(8)

	sequential, err := gradual.NewOsuPerformance(b, difficulty.NewDifficultyFromMap(b))
	require.NoError(t, err)

	state := performance.ScoreState{N300: 4, MaxCombo: 4}
	for i := 0; i < 4; i++ {
		sequential.Next(state)
	}
	want, ok := sequential.Next(state)
	require.True(t, ok)

	skipping, err := gradual.NewOsuPerformance(b, difficulty.NewDifficultyFromMap(b))
	require.NoError(t, err)
	got, ok := skipping.NthObjects(state, 5)
	require.True(t, ok)

	assert.InDelta(t, want.PP, got.PP, 1e-9)
}

func TestManiaPerformanceReachesFinalState(t *testing.T) {
	b := fixtureMap(16)

	g, err := gradual.NewManiaPerformance(b, difficulty.NewDifficultyFromMap(b))
	require.NoError(t, err)

	state := performance.ScoreState{}

	var last performance.ManiaAttributes
	var ok bool
	for i := 0; i < 16; i++ {
		state.NGeki++
		state.MaxCombo++

		last, ok = g.Next(state)
		require.True(t, ok)
	}

	assert.GreaterOrEqual(t, last.PP, 0.0)
}
