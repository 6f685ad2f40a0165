package osu

import (
	"math"

	"github.com/wieku/danser-pp/app/difficulty/skills"
)

const (
	flashlightSkillMultiplier = 0.15
	flashlightDecayBase       = 0.15
)

// Flashlight is the Standard flashlight skill (spec.md §4.F): like Aim, a
// strain built from jump_dist^0.8, but without the timing-threshold
// division — lower strain_time (faster patterns) directly increases
// strain rather than being capped by it, matching the flashlight mod's
// reduced-visibility pressure.
type Flashlight struct {
	base   skills.Base
	strain float64
}

func NewFlashlight() *Flashlight {
	return &Flashlight{base: skills.NewBase(0)}
}

func (s *Flashlight) Process(curr DifficultyObject) {
	s.base.Process(curr.StartTime, func() float64 {
		return s.strainValueAt(curr)
	}, func(sectionEnd float64) float64 {
		return s.strain * skills.StrainDecay(flashlightDecayBase, sectionEnd-curr.StartTime+curr.DeltaTime)
	})
}

func (s *Flashlight) strainValueAt(curr DifficultyObject) float64 {
	s.strain *= skills.StrainDecay(flashlightDecayBase, curr.DeltaTime)
	s.strain += flashlightStrainValueOf(curr) * flashlightSkillMultiplier

	return s.strain
}

func flashlightStrainValueOf(curr DifficultyObject) float64 {
	dist := math.Pow(curr.JumpDist, 0.8) + math.Pow(curr.TravelDist, 0.8)

	return dist / math.Max(curr.StrainTime, 1)
}

func (s *Flashlight) DifficultyValue() float64 {
	return skills.DifficultyValue(s.base.AllPeaks(), skills.FinalizeOptions{
		DecayWeight:           decayWeight,
		DifficultyMultiplier:  starDifficultyMultiplier,
		DropZeroPeaks:         true,
		ReducedSectionCount:   reducedSectionCount,
		ReducedStrainBaseline: reducedStrainBaseline,
	})
}
