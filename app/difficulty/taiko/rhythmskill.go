package taiko

import "github.com/wieku/danser-pp/app/difficulty/skills"

const (
	rhythmSkillMultiplier = 10.0
	rhythmDecayBase       = 0.0
)

// Rhythm scores each hit by its closest-table-ratio difficulty weight
// (spec.md §4.E/§4.F). decay_base=0 means StrainDecay(0, dt) is 0 for any
// dt > 0 — every object's contribution is "reset explicitly" the instant
// time moves on, exactly as spec.md's text describes, without extra
// bookkeeping.
type Rhythm struct {
	base   skills.Base
	strain float64
}

func NewRhythm() *Rhythm {
	return &Rhythm{base: skills.NewBase(1)}
}

func (s *Rhythm) Process(curr DifficultyObject) {
	s.base.Process(curr.StartTime, func() float64 {
		return s.strainValueAt(curr)
	}, func(sectionEnd float64) float64 {
		return s.strain * skills.StrainDecay(rhythmDecayBase, sectionEnd-curr.StartTime+curr.Delta)
	})
}

func (s *Rhythm) strainValueAt(curr DifficultyObject) float64 {
	s.strain *= skills.StrainDecay(rhythmDecayBase, curr.Delta)
	s.strain += rhythmStrainValueOf(curr) * rhythmSkillMultiplier

	return s.strain
}

func rhythmStrainValueOf(curr DifficultyObject) float64 {
	if !curr.Base.IsHit {
		return 0
	}

	return curr.Rhythm.difficulty
}

func (s *Rhythm) CurrSectionPeaks() []float64 {
	return s.base.AllPeaks()
}
