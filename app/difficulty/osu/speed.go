package osu

import (
	"math"

	"github.com/wieku/danser-pp/app/difficulty/skills"
)

const (
	speedSkillMultiplier  = 1400.0
	speedDecayBase        = 0.3
	speedTimingThreshold  = 107.0
	minSpeedBonus         = 75.0
	speedAngleBonusScale  = 90.0
	singleSpacingThreshold = 125.0

	rhythmHistoryLen = 32
)

// Speed is the Standard speed skill (spec.md §4.F). Distance/angle shaping
// is ported from original_source/src/osu/skill.rs's strain_value_of shape;
// the rhythm multiplier's exact island-history algorithm isn't present in
// the retrieved pack (skill_kind.rs, which owns
// calculate_speed_rhythm_bonus, wasn't retrieved) — it's rebuilt here as a
// condensed bounded-history ratio bonus rather than ported verbatim. Noted
// as a simplification in DESIGN.md.
type Speed struct {
	base   skills.Base
	strain float64
	rhythm float64

	history []float64 // recent strain_times, most recent last
}

func NewSpeed() *Speed {
	return &Speed{base: skills.NewBase(0), rhythm: 1}
}

func (s *Speed) Process(curr DifficultyObject) {
	s.base.Process(curr.StartTime, func() float64 {
		return s.strainValueAt(curr)
	}, func(sectionEnd float64) float64 {
		decayed := s.strain * skills.StrainDecay(speedDecayBase, sectionEnd-curr.StartTime+curr.DeltaTime)
		return s.rhythm * decayed
	})
}

func (s *Speed) strainValueAt(curr DifficultyObject) float64 {
	s.strain *= skills.StrainDecay(speedDecayBase, curr.DeltaTime)
	s.strain += speedStrainValueOf(curr) * speedSkillMultiplier

	s.rhythm = s.rhythmBonus(curr)
	s.pushHistory(curr.StrainTime)

	return s.strain * s.rhythm
}

func speedStrainValueOf(curr DifficultyObject) float64 {
	distance := math.Min(singleSpacingThreshold, curr.JumpDist)

	speedBonus := 1.0
	if curr.StrainTime < minSpeedBonus {
		ratio := (minSpeedBonus - curr.StrainTime) / 40
		speedBonus = 1 + 0.75*ratio*ratio
	}

	angleBonus := 1.0

	if curr.HasAngle {
		switch {
		case curr.Angle < math.Pi/2:
			angleBonus = 1.28
			if curr.Angle < math.Pi/4 && curr.JumpDist < speedAngleBonusScale {
				angleBonus = 1.28 + 0.32*(1-curr.JumpDist/speedAngleBonusScale)
			}
		case curr.Angle < math.Pi*2/3:
			angleBonus = 1.1
		}
	}

	return ((speedBonus + speedBonus*math.Pow(distance/singleSpacingThreshold, 3.5)) * angleBonus) /
		curr.StrainTime
}

// rhythmBonus approximates the reference's bounded-history rhythm
// detection: a run of near-identical strain_times earns no bonus, while a
// sudden ratio change against the recent history is rewarded, capped the
// way the reference's table-driven version is.
func (s *Speed) rhythmBonus(curr DifficultyObject) float64 {
	if len(s.history) == 0 {
		return 1
	}

	prev := s.history[len(s.history)-1]
	if prev <= 0 {
		return 1
	}

	ratio := curr.StrainTime / prev
	delta := math.Abs(1 - ratio)

	bonus := 1 + math.Min(delta, 0.5)

	return math.Min(bonus, 1.5)
}

func (s *Speed) pushHistory(strainTime float64) {
	s.history = append(s.history, strainTime)
	if len(s.history) > rhythmHistoryLen {
		s.history = s.history[1:]
	}
}

func (s *Speed) DifficultyValue() float64 {
	return skills.DifficultyValue(s.base.AllPeaks(), skills.FinalizeOptions{
		DecayWeight:          decayWeight,
		DifficultyMultiplier: starDifficultyMultiplier,
		DropZeroPeaks:        true,
	})
}
