package performance

import (
	"math"

	"github.com/wieku/danser-pp/app/beatmap/difficulty"
	"github.com/wieku/danser-pp/app/difficulty/mania"
)

// ManiaAttributes is Mania's PerformanceAttributes.
type ManiaAttributes struct {
	Difficulty mania.Attributes
	PP         float64
}

// CalculateMania implements Mania's pp formula (spec.md §4.I:
// strain^1.1 ⊕ accuracy^1.1 with a scaled-score-based strain reduction),
// ported from original_source/src/mania/pp.rs. The reference scales its
// strain term off the classic osu!mania score value (0-1,000,000); this
// port's ScoreState carries judgement counts rather than a raw score, so
// `scaledScore` is approximated as `accuracy * 1,000,000` — a documented
// grounding gap (DESIGN.md) rather than a bit-exact port of that one input.
func CalculateMania(attrs mania.Attributes, mods difficulty.Modifier, state ManiaScoreState) ManiaAttributes {
	scaledScore := state.Accuracy() * 1000000.0

	multiplier := 0.8

	if mods.Active(difficulty.NoFail) {
		multiplier *= 0.9
	}

	if mods.Active(difficulty.Easy) {
		multiplier *= 0.5
	}

	strain := maniaStrainValue(attrs, scaledScore)
	acc := maniaAccuracyValue(attrs, scaledScore, strain)

	pp := math.Pow(math.Pow(strain, 1.1)+math.Pow(acc, 1.1), 1.0/1.1) * multiplier

	return ManiaAttributes{Difficulty: attrs, PP: pp}
}

func maniaStrainValue(attrs mania.Attributes, scaledScore float64) float64 {
	value := math.Pow(5.0*math.Max(1.0, attrs.Stars/0.2)-4.0, 2.2) / 135.0

	switch {
	case scaledScore <= 500000:
		return 0
	case scaledScore <= 600000:
		value *= (scaledScore - 500000) / 100000 * 0.3
	case scaledScore <= 700000:
		value *= 0.3 + (scaledScore-600000)/100000*0.25
	case scaledScore <= 800000:
		value *= 0.55 + (scaledScore-700000)/100000*0.2
	case scaledScore <= 900000:
		value *= 0.75 + (scaledScore-800000)/100000*0.15
	default:
		value *= 0.9 + (scaledScore-900000)/100000*0.1
	}

	return value
}

func maniaAccuracyValue(attrs mania.Attributes, scaledScore, strain float64) float64 {
	// attrs.HitWindow is difficulty.HitWindows.OD, which for Mania is the
	// mania-specific 34+3*clamp(10-od,0,10) formula (or its convert branch).
	hitWindow := attrs.HitWindow
	if hitWindow <= 0 {
		return 0
	}

	return math.Max(0.2-(hitWindow-34.0)*0.006667, 0.0) * strain * math.Pow(math.Max(scaledScore-960000, 0.0)/40000.0, 1.1)
}
