// Package skills implements the shared strain-decay engine every mode's
// skills are built on (spec.md §4.F): section-peak bookkeeping during
// processing, and weighted-sum-of-sorted-peaks finalization, optionally
// preceded by the "reduced sections" top-N softening Standard applies.
package skills

import (
	"math"
	"sort"

	"github.com/wieku/danser-pp/framework/math/mutils"
)

// SectionLength is the fixed strain-peak window every skill uses.
const SectionLength = 400.0

// Base holds the state every strain-decay skill carries (spec.md §3's
// "skill state"): curr_strain lives in the embedding skill since its update
// rule is skill-specific, but the section bookkeeping is identical
// everywhere.
type Base struct {
	CurrSectionPeak float64
	CurrSectionEnd  float64
	Peaks           []float64

	started bool
}

// NewBase builds a Base with the given initial section peak (0 for
// Standard's skills, 1 for Taiko's, Catch's Movement and Mania's Strain,
// matching each reference skill's own initial curr_strain/curr_section_peak).
func NewBase(initialPeak float64) Base {
	return Base{CurrSectionPeak: initialPeak}
}

// Process runs the shared section-peak loop around a skill-specific strain
// update. valueAt must update the skill's own curr_strain and return the
// quantity folded into the section peak. initialStrain recomputes the peak
// baseline when a new section opens, from the skill's decayed curr_strain.
func (b *Base) Process(startTime float64, valueAt func() float64, initialStrain func(sectionEnd float64) float64) {
	if !b.started {
		b.CurrSectionEnd = math.Ceil(startTime/SectionLength) * SectionLength
		b.started = true
	}

	for startTime > b.CurrSectionEnd {
		b.Peaks = append(b.Peaks, b.CurrSectionPeak)
		b.CurrSectionPeak = initialStrain(b.CurrSectionEnd)
		b.CurrSectionEnd += SectionLength
	}

	b.CurrSectionPeak = mutils.MaxF64(b.CurrSectionPeak, valueAt())
}

// AllPeaks returns every section peak including the still-open current
// section, without mutating Base — the gradual iterator snapshots this
// mid-calculation (spec.md §4.H) while regular finalization consumes the
// same shape after the last object. A Base that never processed an object
// has no peaks at all, so an empty input finalizes to 0.
func (b *Base) AllPeaks() []float64 {
	if !b.started {
		return nil
	}

	peaks := make([]float64, len(b.Peaks), len(b.Peaks)+1)
	copy(peaks, b.Peaks)

	return append(peaks, b.CurrSectionPeak)
}

// FinalizeOptions configures DifficultyValue's sorted-weighted-sum for one
// skill kind.
type FinalizeOptions struct {
	DecayWeight           float64
	DifficultyMultiplier  float64
	DropZeroPeaks         bool
	ReducedSectionCount   int     // 0 disables the reduced-sections step
	ReducedStrainBaseline float64
}

// DifficultyValue implements §4.F's finalization: optionally drop zero
// peaks (an optimization the modern Standard skills use to avoid an O(n^2)
// worst case), sort descending, apply the reduced-sections softening to the
// top ReducedSectionCount peaks, re-sort, then take the weighted sum.
func DifficultyValue(peaks []float64, opts FinalizeOptions) float64 {
	filtered := make([]float64, 0, len(peaks))

	for _, p := range peaks {
		if !opts.DropZeroPeaks || p > 0 {
			filtered = append(filtered, p)
		}
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(filtered)))

	if opts.ReducedSectionCount > 0 {
		n := opts.ReducedSectionCount
		if n > len(filtered) {
			n = len(filtered)
		}

		for i := 0; i < n; i++ {
			clamped := mutils.ClampF64(float64(i)/float64(opts.ReducedSectionCount), 0, 1)
			scale := mutils.Log10(mutils.Lerp(1, 10, clamped))
			filtered[i] *= mutils.Lerp(opts.ReducedStrainBaseline, 1, scale)
		}

		sort.Sort(sort.Reverse(sort.Float64Slice(filtered)))
	}

	var difficulty, weight float64 = 0, 1

	for _, s := range filtered {
		difficulty += s * weight
		weight *= opts.DecayWeight
	}

	return difficulty * opts.DifficultyMultiplier
}

// StrainDecay is the shared `decay_base^(dt/1000)` shape every skill's
// temporal falloff uses.
func StrainDecay(decayBase, deltaMs float64) float64 {
	return math.Pow(decayBase, deltaMs/1000)
}
