package performance

import (
	"math"

	"github.com/wieku/danser-pp/app/beatmap/difficulty"
	"github.com/wieku/danser-pp/app/difficulty/taiko"
)

// TaikoAttributes is Taiko's PerformanceAttributes.
type TaikoAttributes struct {
	Difficulty taiko.Attributes

	PP           float64
	PPDifficulty float64
	PPAccuracy   float64

	EffectiveMissCount float64
}

// CalculateTaiko implements Taiko's pp formula (spec.md §4.I:
// difficulty^1.1 ⊕ accuracy^1.1), ported from
// original_source/src/taiko/performance/calculator.rs with one deliberate
// simplification: the reference's mono_stamina_factor-driven accuracy
// scaling (and its erf/erf_inv-based unstable-rate estimator) depends on a
// per-hand mono-stamina attribute this port's Stamina skill doesn't expose
// — dropped in favor of a flat accuracy-term exponent, documented as a
// grounding gap in DESIGN.md rather than silently reproduced as exact.
func CalculateTaiko(attrs taiko.Attributes, mods difficulty.Modifier, state TaikoScoreState) TaikoAttributes {
	totalSuccessfulHits := state.N300 + state.N100

	effectiveMissCount := 0.0
	if totalSuccessfulHits > 0 {
		effectiveMissCount = math.Max(1.0, 1000.0/float64(totalSuccessfulHits)) * float64(state.NMisses)
	}

	multiplier := 1.13

	if mods.Active(difficulty.Hidden) {
		multiplier *= 1.075
	}

	if mods.Active(difficulty.Easy) {
		multiplier *= 0.95
	}

	diffValue := taikoDifficultyValue(attrs, mods, effectiveMissCount)
	accValue := taikoAccuracyValue(attrs, state)

	pp := math.Pow(math.Pow(diffValue, 1.1)+math.Pow(accValue, 1.1), 1.0/1.1) * multiplier

	return TaikoAttributes{
		Difficulty:         attrs,
		PP:                 pp,
		PPDifficulty:       diffValue,
		PPAccuracy:         accValue,
		EffectiveMissCount: effectiveMissCount,
	}
}

func taikoDifficultyValue(attrs taiko.Attributes, mods difficulty.Modifier, effectiveMissCount float64) float64 {
	base := 5.0*math.Max(1.0, attrs.Stars/0.110) - 4.0

	value := math.Min(math.Pow(base, 3.0)/69052.51, math.Pow(base, 2.25)/1250.0)
	value *= 1.0 + 0.1*math.Max(0.0, attrs.Stars-10.0)

	lengthBonus := 1.0 + 0.1*math.Min(1.0, float64(attrs.MaxCombo)/1500.0)
	value *= lengthBonus

	value *= math.Pow(0.986, effectiveMissCount)

	if mods.Active(difficulty.Easy) {
		value *= 0.9
	}

	if mods.Active(difficulty.Hidden) {
		value *= 1.025
	}

	if mods.Active(difficulty.Flashlight) {
		value *= math.Max(1.0, 1.05-lengthBonus)
	}

	return value
}

func taikoAccuracyValue(attrs taiko.Attributes, state TaikoScoreState) float64 {
	if attrs.HitWindow <= 0 {
		return 0
	}

	acc := state.Accuracy()

	value := math.Pow(150.0/attrs.HitWindow, 1.1) * math.Pow(acc, 15.0) * 22.0
	value *= math.Min(1.15, math.Pow(float64(state.TotalHits())/1500.0, 0.3))

	return value
}
