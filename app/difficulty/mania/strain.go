package mania

import (
	"github.com/wieku/danser-pp/app/difficulty/skills"
)

const (
	individualDecayBase = 0.125
	overallDecayBase    = 0.3

	strainDecayWeight = 0.9
)

// Strain is Mania's single skill (spec.md §4.F): a per-column
// "individual" strain track plus one shared "overall" track, with a
// hold-note cross-column overlap bonus/penalty. Ported close to verbatim
// from original_source/src/mania/strain.rs.
type Strain struct {
	base   skills.Base
	strain float64

	individualStrain  float64
	overallStrain     float64
	holdEndTimes      []float64
	individualStrains []float64
}

func NewStrain(columnCount int) *Strain {
	return &Strain{
		base:              skills.NewBase(1),
		overallStrain:     1,
		holdEndTimes:      make([]float64, columnCount),
		individualStrains: make([]float64, columnCount),
	}
}

func (s *Strain) Process(curr DifficultyObject) {
	s.base.Process(curr.StartTime, func() float64 {
		return s.strainValueAt(curr)
	}, func(sectionEnd float64) float64 {
		dt := sectionEnd - curr.StartTime + curr.Delta
		return applyDecay(s.individualStrain, dt, individualDecayBase) +
			applyDecay(s.overallStrain, dt, overallDecayBase)
	})
}

func (s *Strain) strainValueAt(curr DifficultyObject) float64 {
	// strain_decay_base is 1.0 in the reference: curr_strain never decays
	// on its own, only individual/overall (folded in below) do.
	s.strain += strainValueOf(s, curr)

	return s.strain
}

func strainValueOf(s *Strain, curr DifficultyObject) float64 {
	endTime := curr.EndTime

	holdFactor := 1.0
	holdAddition := 0.0

	for col := range s.holdEndTimes {
		holdEndTime := s.holdEndTimes[col]

		switch {
		case endTime > holdEndTime+1.0:
			if holdEndTime > curr.StartTime+1.0 {
				holdAddition = 1.0
			}
		case abs(endTime-holdEndTime) < 1.0:
			holdAddition = 0.0
		case endTime < holdEndTime-1.0:
			holdFactor = 1.25
		}

		s.individualStrains[col] = applyDecay(s.individualStrains[col], curr.Delta, individualDecayBase)
	}

	col := curr.Base.Column
	s.holdEndTimes[col] = endTime
	s.individualStrains[col] += 2.0 * holdFactor
	s.individualStrain = s.individualStrains[col]

	s.overallStrain = applyDecay(s.overallStrain, curr.Delta, overallDecayBase) + (1.0+holdAddition)*holdFactor

	return s.individualStrain + s.overallStrain - s.strain
}

func applyDecay(value, deltaTime, decayBase float64) float64 {
	return value * skills.StrainDecay(decayBase, deltaTime)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}

// DifficultyValue finalizes the skill: sort descending, weighted sum
// (spec.md §4.F; no reduced-sections step for Mania).
func (s *Strain) DifficultyValue() float64 {
	return skills.DifficultyValue(s.base.AllPeaks(), skills.FinalizeOptions{
		DecayWeight:          strainDecayWeight,
		DifficultyMultiplier: 1,
	})
}
