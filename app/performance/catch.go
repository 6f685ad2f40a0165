package performance

import (
	"math"

	"github.com/wieku/danser-pp/app/beatmap/difficulty"
	"github.com/wieku/danser-pp/app/difficulty/catch"
)

// CatchAttributes is Catch's PerformanceAttributes.
type CatchAttributes struct {
	Difficulty catch.Attributes
	PP         float64
}

// CalculateCatch implements Catch's single-term pp formula (spec.md §4.I),
// ported near-verbatim from
// original_source/src/catch/performance/calculator.rs.
func CalculateCatch(attrs catch.Attributes, mods difficulty.Modifier, state CatchScoreState) CatchAttributes {
	maxCombo := attrs.MaxCombo

	pp := math.Pow(5.0*math.Max(1.0, attrs.Stars/0.0049)-4.0, 2.0) / 100000.0

	comboHits := state.NFruits + state.NDroplets + state.NMisses
	if comboHits == 0 {
		comboHits = maxCombo
	}

	lengthBonus := 0.95 + 0.3*math.Min(float64(comboHits)/2500.0, 1.0)
	if comboHits > 2500 {
		lengthBonus += math.Log10(float64(comboHits)/2500.0) * 0.475
	}

	pp *= lengthBonus

	pp *= math.Pow(0.97, float64(state.NMisses))

	if state.MaxCombo > 0 {
		pp *= math.Min(math.Pow(float64(state.MaxCombo), 0.8)/math.Pow(float64(maxCombo), 0.8), 1.0)
	}

	ar := attrs.AR
	arFactor := 1.0

	switch {
	case ar > 10.0:
		arFactor += 0.1*(ar-9.0) + 0.1*(ar-10.0)
	case ar > 9.0:
		arFactor += 0.1 * (ar - 9.0)
	case ar < 8.0:
		arFactor += 0.025 * (8.0 - ar)
	}

	pp *= arFactor

	if mods.Active(difficulty.Hidden) {
		if ar <= 10.0 {
			pp *= 1.05 + 0.075*(10.0-ar)
		} else {
			pp *= 1.01 + 0.04*(11.0-math.Min(ar, 11.0))
		}
	}

	if mods.Active(difficulty.Flashlight) {
		pp *= 1.35 * lengthBonus
	}

	pp *= math.Pow(state.Accuracy(), 5.5)

	if mods.Active(difficulty.NoFail) {
		pp *= math.Max(1.0-0.02*float64(state.NMisses), 0.9)
	}

	return CatchAttributes{Difficulty: attrs, PP: pp}
}
