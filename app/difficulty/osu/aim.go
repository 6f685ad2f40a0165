package osu

import (
	"math"

	"github.com/wieku/danser-pp/app/difficulty/skills"
)

const (
	aimSkillMultiplier = 23.55
	aimDecayBase       = 0.15
	aimTimingThreshold = 107.0

	reducedSectionCount   = 10
	reducedStrainBaseline = 0.75
	decayWeight           = 0.9
	starDifficultyMultiplier = 1.06
)

// Aim is the Standard aim skill (spec.md §4.F): jump/travel distance
// diminished by x^0.99 and scaled by the inverse strain time, plus a wide-
// angle bonus (angle above π/3). Grounded on
// original_source/src/osu_2019/stars.rs + src/osu/skill.rs's Aim variant
// (strain_value_of shape) and generalized onto the shared strain engine.
type Aim struct {
	base   skills.Base
	strain float64
}

func NewAim() *Aim {
	return &Aim{base: skills.NewBase(0)}
}

func (s *Aim) Process(curr DifficultyObject) {
	s.base.Process(curr.StartTime, func() float64 {
		return s.strainValueAt(curr)
	}, func(sectionEnd float64) float64 {
		return s.strain * skills.StrainDecay(aimDecayBase, sectionEnd-curr.StartTime+curr.DeltaTime)
	})
}

func (s *Aim) strainValueAt(curr DifficultyObject) float64 {
	s.strain *= skills.StrainDecay(aimDecayBase, curr.DeltaTime)
	s.strain += aimStrainValueOf(curr) * aimSkillMultiplier

	return s.strain
}

func applyDiminishingExp(x float64) float64 {
	return math.Pow(x, 0.99)
}

func aimStrainValueOf(curr DifficultyObject) float64 {
	result := (applyDiminishingExp(curr.JumpDist) + applyDiminishingExp(curr.TravelDist)) /
		math.Max(curr.StrainTime, aimTimingThreshold)

	if curr.HasAngle && curr.Angle > math.Pi/3 {
		bonus := math.Pow(math.Sin(curr.Angle-math.Pi/3), 2) *
			math.Max(curr.PrevJumpDist-90, 0) * math.Max(curr.JumpDist-90, 0)

		if bonus > 0 {
			result += 1.5 * math.Sqrt(bonus) / math.Max(curr.PrevStrainTime, aimTimingThreshold)
		}
	}

	return result
}

// DifficultyValue finalizes the skill (spec.md §4.F's "reduced sections"
// path, shared with Flashlight).
func (s *Aim) DifficultyValue() float64 {
	return skills.DifficultyValue(s.base.AllPeaks(), skills.FinalizeOptions{
		DecayWeight:           decayWeight,
		DifficultyMultiplier:  starDifficultyMultiplier,
		DropZeroPeaks:         true,
		ReducedSectionCount:   reducedSectionCount,
		ReducedStrainBaseline: reducedStrainBaseline,
	})
}
