package performance

import (
	"math"

	"github.com/wieku/danser-pp/app/beatmap/difficulty"
	"github.com/wieku/danser-pp/app/difficulty/osu"
)

// OsuAttributes is Standard's PerformanceAttributes: the difficulty
// Attributes plus pp and the per-term breakdown spec.md §4.I/§6 require.
type OsuAttributes struct {
	Difficulty osu.Attributes

	PP           float64
	PPAim        float64
	PPSpeed      float64
	PPAccuracy   float64
	PPFlashlight float64

	EffectiveMissCount float64
}

// CalculateOsu implements Standard's pp formula (spec.md §4.I):
// multiplier(mods) * ((aim^1.1 + speed^1.1 + acc^1.1 + fl^1.1)^(1/1.1)).
// No osu!standard performance-calculator source was retrieved in the
// pack (only gradual_performance.rs, which consumes rather than defines
// it); the per-term shapes below follow spec.md §4.I's own prose (combo
// scaling, effective-miss-count penalty, length/AR/HD/FL bonuses, the
// `1.52163^od * acc^24` accuracy term) rather than a ported reference
// file — flagged in DESIGN.md as a grounding gap filled from the spec's
// own description plus public knowledge of this mode's pp shape.
func CalculateOsu(attrs osu.Attributes, mods difficulty.Modifier, state OsuScoreState) OsuAttributes {
	totalHits := state.TotalHits()

	effectiveMissCount := effectiveMissCountOsu(attrs, state)

	multiplier := 1.14

	if mods.Active(difficulty.NoFail) {
		multiplier *= math.Max(0.9, 1.0-0.02*float64(state.NMisses))
	}

	if mods.Active(difficulty.SpunOut) && totalHits > 0 {
		multiplier *= 1.0 - math.Pow(float64(attrs.NSpinners)/float64(totalHits), 0.85)
	}

	aim := aimValue(attrs, mods, state, effectiveMissCount)
	speed := speedValue(attrs, mods, state, effectiveMissCount)
	acc := accuracyValueOsu(attrs, mods, state)
	fl := flashlightValueOsu(attrs, mods, state, effectiveMissCount)

	pp := math.Pow(math.Pow(aim, 1.1)+math.Pow(speed, 1.1)+math.Pow(acc, 1.1)+math.Pow(fl, 1.1), 1.0/1.1) * multiplier

	return OsuAttributes{
		Difficulty:         attrs,
		PP:                 pp,
		PPAim:              aim,
		PPSpeed:            speed,
		PPAccuracy:         acc,
		PPFlashlight:       fl,
		EffectiveMissCount: effectiveMissCount,
	}
}

func effectiveMissCountOsu(attrs osu.Attributes, state OsuScoreState) float64 {
	if attrs.MaxCombo <= 0 {
		return float64(state.NMisses)
	}

	comboBasedMisses := 0.0

	if attrs.NSliders > 0 {
		fullComboThreshold := float64(attrs.MaxCombo) - 0.1*float64(attrs.NSliders)

		if float64(state.MaxCombo) < fullComboThreshold {
			comboBasedMisses = fullComboThreshold / math.Max(1.0, float64(state.MaxCombo))
		}
	}

	comboBasedMisses = math.Min(comboBasedMisses, float64(state.N100+state.N50+state.NMisses))

	return math.Max(float64(state.NMisses), comboBasedMisses)
}

func comboScaling(combo, maxCombo int) float64 {
	if maxCombo <= 0 {
		return 1.0
	}

	return math.Min(math.Pow(float64(combo)/float64(maxCombo), 0.8), 1.0)
}

func lengthBonusOsu(totalHits int) float64 {
	bonus := 0.95 + 0.3*math.Min(float64(totalHits)/2500.0, 1.0)

	if totalHits > 2500 {
		bonus += math.Log10(float64(totalHits)/2500.0) * 0.475
	}

	return bonus
}

func arBonusOsu(ar float64) float64 {
	factor := 1.0

	if ar > 10.0 {
		factor += 0.1*(ar-9.0) + 0.1*(ar-10.0)
	} else if ar > 9.0 {
		factor += 0.1 * (ar - 9.0)
	} else if ar < 8.0 {
		factor += 0.025 * (8.0 - ar)
	}

	return factor
}

func aimValue(attrs osu.Attributes, mods difficulty.Modifier, state OsuScoreState, effectiveMissCount float64) float64 {
	aim := math.Pow(5.0*math.Max(1.0, attrs.AimStrain/0.0675)-4.0, 3.0) / 100000.0

	aim *= lengthBonusOsu(state.TotalHits())
	aim *= math.Pow(0.97, effectiveMissCount)
	aim *= comboScaling(state.MaxCombo, attrs.MaxCombo)
	aim *= arBonusOsu(attrs.ARRating)

	if mods.Active(difficulty.Hidden) {
		aim *= 1.0 + 0.04*(12.0-attrs.ARRating)
	}

	acc := state.Accuracy()
	aim *= 0.5 + acc/2.0
	aim *= 0.98 + math.Pow(attrs.ODRating, 2)/2500.0

	return aim
}

func speedValue(attrs osu.Attributes, mods difficulty.Modifier, state OsuScoreState, effectiveMissCount float64) float64 {
	speed := math.Pow(5.0*math.Max(1.0, attrs.SpeedStrain/0.0675)-4.0, 3.0) / 100000.0

	speed *= lengthBonusOsu(state.TotalHits())
	speed *= math.Pow(0.97, effectiveMissCount)
	speed *= comboScaling(state.MaxCombo, attrs.MaxCombo)
	speed *= arBonusOsu(attrs.ARRating)

	if mods.Active(difficulty.Hidden) {
		speed *= 1.0 + 0.04*(12.0-attrs.ARRating)
	}

	acc := state.Accuracy()
	speed *= (0.95 + math.Pow(attrs.ODRating, 2)/750.0) * math.Pow(acc, (14.5-math.Max(attrs.ODRating, 8.0))/2.0)

	return speed
}

func accuracyValueOsu(attrs osu.Attributes, mods difficulty.Modifier, state OsuScoreState) float64 {
	betterAccPercentage := state.Accuracy()

	acc := math.Pow(1.52163, attrs.ODRating) * math.Pow(betterAccPercentage, 24.0) * 2.83

	acc *= math.Min(1.15, math.Pow(float64(attrs.NCircles)/1000.0, 0.3))

	if mods.Active(difficulty.Hidden) {
		acc *= 1.08
	}

	if mods.Active(difficulty.Flashlight) {
		acc *= 1.02
	}

	return acc
}

func flashlightValueOsu(attrs osu.Attributes, mods difficulty.Modifier, state OsuScoreState, effectiveMissCount float64) float64 {
	if !mods.Active(difficulty.Flashlight) {
		return 0
	}

	fl := math.Pow(attrs.FlashlightRating, 2.0) * 25.0

	fl *= comboScaling(state.MaxCombo, attrs.MaxCombo)
	fl *= 0.7 + 0.1*math.Min(1.0, float64(state.TotalHits())/200.0)
	if state.TotalHits() > 200 {
		fl += 0.2 * math.Min(1.0, (float64(state.TotalHits())-200.0)/200.0)
	}
	fl *= math.Pow(0.97, effectiveMissCount)
	fl *= math.Pow(state.Accuracy(), 14.0)

	if mods.Active(difficulty.Hidden) {
		fl *= 1.3
	}

	return fl
}
