package catch

import (
	"math"

	"github.com/wieku/danser-pp/app/difficulty/skills"
	"github.com/wieku/danser-pp/framework/math/mutils"
)

const (
	movementSkillMultiplier = 900.0
	movementDecayBase       = 0.2
	movementDecayWeight     = 0.94

	directionChangeBonus           = 21.0
	absolutePlayerPositioningError = 16.0
	positionEpsilon                = normalizedHitObjectRadius - absolutePlayerPositioningError
)

// Movement is Catch's single skill (spec.md §4.F): how far the catcher has
// to travel to intercept every fruit/droplet, with a direction-change bonus
// and an edge-dash bonus near a hyperdash. Ported close to verbatim from
// original_source/src/fruits/movement.rs, the only fully-retrieved skill
// source in the pack. Its "buzz" anti-oscillation behavior (spec.md §4.F)
// is this direction-change branch's anti_flow_factor damping, not a
// separate is_in_buzz_section flag — that bookkeeping belongs to a newer
// catch/difficulty/skills/movement.rs this pack didn't carry.
type Movement struct {
	base   skills.Base
	strain float64

	hasLastPos     bool
	lastPlayerPos  float64
	lastDistMoved  float64
	lastStrainTime float64
}

func NewMovement() *Movement {
	return &Movement{base: skills.NewBase(1)}
}

func (s *Movement) Process(curr DifficultyObject) {
	s.base.Process(curr.StartTime, func() float64 {
		return s.strainValueAt(curr)
	}, func(sectionEnd float64) float64 {
		return s.strain * skills.StrainDecay(movementDecayBase, sectionEnd-curr.StartTime+curr.Delta)
	})
}

func (s *Movement) strainValueAt(curr DifficultyObject) float64 {
	s.strain *= skills.StrainDecay(movementDecayBase, curr.Delta)
	s.strain += movementStrainValueOf(s, curr) * movementSkillMultiplier

	return s.strain
}

func movementStrainValueOf(s *Movement, curr DifficultyObject) float64 {
	lastPlayerPos := curr.LastNormalizedPos
	if s.hasLastPos {
		lastPlayerPos = s.lastPlayerPos
	}

	pos := mutils.ClampF64(lastPlayerPos, curr.NormalizedPos-positionEpsilon, curr.NormalizedPos+positionEpsilon)

	distMoved := pos - lastPlayerPos
	weightedStrainTime := curr.StrainTime + 13.0 + 3.0/curr.ClockRate

	distAddition := math.Pow(math.Abs(distMoved), 1.3) / 510.0

	if math.Abs(distMoved) > 0.1 {
		if s.hasLastPos && math.Abs(s.lastDistMoved) > 0.1 && sign(distMoved) != sign(s.lastDistMoved) {
			bonusFactor := math.Min(math.Abs(distMoved), 50.0) / 50.0
			antiFlowFactor := math.Max(math.Min(math.Abs(s.lastDistMoved), 70.0)/70.0, 0.38)

			distAddition += directionChangeBonus / math.Sqrt(s.lastStrainTime+16.0) *
				bonusFactor * antiFlowFactor *
				math.Max(1.0-math.Pow(weightedStrainTime/1000.0, 3), 0)
		}

		distAddition += (12.5 * math.Min(math.Abs(distMoved), normalizedHitObjectRadius*2.0) /
			(normalizedHitObjectRadius * 6.0)) / math.Sqrt(weightedStrainTime)
	}

	edgeDashBonus := 0.0

	if curr.Last.HyperDist <= 20.0 {
		if !curr.Last.HyperDash {
			edgeDashBonus += 5.7
		} else {
			pos = curr.NormalizedPos
		}

		distAddition *= 1.0 + edgeDashBonus*((20.0-curr.Last.HyperDist)/20.0)*
			math.Pow(math.Min(curr.StrainTime*curr.ClockRate, 265.0)/265.0, 1.5)
	}

	s.lastPlayerPos = pos
	s.hasLastPos = true
	s.lastDistMoved = distMoved
	s.lastStrainTime = curr.StrainTime

	return distAddition / weightedStrainTime
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// DifficultyValue finalizes the skill: sort descending, weighted sum
// (spec.md §4.F; no reduced-sections step for Catch).
func (s *Movement) DifficultyValue() float64 {
	return skills.DifficultyValue(s.base.AllPeaks(), skills.FinalizeOptions{
		DecayWeight:          movementDecayWeight,
		DifficultyMultiplier: 1,
	})
}
