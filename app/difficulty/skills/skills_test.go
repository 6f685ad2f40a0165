package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStrainDecayMonotonicallyFalls(t *testing.T) {
	earlier := StrainDecay(0.15, 100)
	later := StrainDecay(0.15, 1000)

	assert.Greater(t, earlier, later)
	assert.LessOrEqual(t, StrainDecay(0.15, 0), 1.0)
}

func TestBaseProcessAccumulatesSectionPeaks(t *testing.T) {
	var b Base

	times := []float64{0, 100, 500, 900, 1300}

	for _, tm := range times {
		v := tm + 1
		b.Process(tm, func() float64 { return v }, func(float64) float64 { return 0 })
	}

	// The first event at t=0 opens a section ending at 0, so the five events
	// land in five sections (ending 0, 400, 800, 1200, 1600); AllPeaks
	// includes the still-open current section plus every closed one before it.
	peaks := b.AllPeaks()
	assert.GreaterOrEqual(t, len(peaks), 3)

	for _, p := range peaks {
		assert.GreaterOrEqual(t, p, 0.0)
	}
}

func TestDifficultyValueWeightsDescendingPeaks(t *testing.T) {
	peaks := []float64{1, 5, 3}

	value := DifficultyValue(peaks, FinalizeOptions{DecayWeight: 0.5, DifficultyMultiplier: 1})

	// Sorted descending: 5, 3, 1 weighted by 1, 0.5, 0.25.
	assert.InDelta(t, 5+3*0.5+1*0.25, value, 1e-9)
}

func TestDifficultyValueAppliesMultiplier(t *testing.T) {
	peaks := []float64{2}

	value := DifficultyValue(peaks, FinalizeOptions{DecayWeight: 1, DifficultyMultiplier: 1.06})

	assert.InDelta(t, 2.12, value, 1e-9)
}

func TestDifficultyValueDropsZeroPeaksWhenRequested(t *testing.T) {
	peaks := []float64{0, 0, 4}

	with := DifficultyValue(peaks, FinalizeOptions{DecayWeight: 0.9, DifficultyMultiplier: 1, DropZeroPeaks: true})
	without := DifficultyValue(peaks, FinalizeOptions{DecayWeight: 0.9, DifficultyMultiplier: 1})

	assert.InDelta(t, 4.0, with, 1e-9)
	assert.InDelta(t, 4.0, without, 1e-9)
}
