// Package objects implements per-mode object preparation (§4.D): standard
// stacking and slider travel distance, taiko stream conversion, catch fruit
// walking, and mania column assignment.
package objects

const (
	// NormalizedRadius is the reference circle radius standard jump/travel
	// distances are scaled against.
	NormalizedRadius = 50.0
	objectRadius     = 64.0
)

// ScalingFactorOf converts raw pixel distances into the normalized space
// the skills operate in, plus the raw circle radius and per-stack-height
// offset scale. CS below the "small circle" kink (radius < 30) gets a
// bonus, matching the reference scaling-factor table.
type ScalingFactorOf struct {
	Factor float64
	Radius float64
	stackScale float64
}

func NewScalingFactor(cs float64) ScalingFactorOf {
	scale := (1 - 0.7*(cs-5)/5) / 2
	radius := objectRadius * scale
	factor := NormalizedRadius / radius

	if radius < 30 {
		factor *= 1 + minF(30-radius, 5)/50
	}

	return ScalingFactorOf{Factor: factor, Radius: radius, stackScale: scale * -6.4}
}

// StackOffset returns the cumulative position shift a stack of the given
// height applies to an object.
func (s ScalingFactorOf) StackOffset(stackHeight float64) (dx, dy float64) {
	shift := stackHeight * s.stackScale
	return shift, shift
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}

	return b
}

// HalfCatcherWidth derives the catcher's half-width from CS, used to
// normalize catch object positions (spec.md §4.E).
func HalfCatcherWidth(cs float64) float64 {
	const catcherSize = 106.75

	scale := 1 - 0.7*(cs-5)/5

	return catcherSize * scale / 2
}
