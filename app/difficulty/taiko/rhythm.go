// Package taiko implements Taiko's diff-objects, Color/Rhythm/Stamina
// skills and star rating aggregation (spec.md §4.E-G). Grounded on
// original_source/src/taiko/{skill,difficulty_object,hitobject_rhythm,
// taiko_object}.rs, the pre-mono-pattern architecture matching spec.md
// §4.F's stated multipliers/decay bases exactly.
package taiko

import "math"

// hitRhythm is one entry of the fixed 9-slot rhythm-ratio table (spec.md
// §4.E): the closest ratio a delta-time pair can be classified as, plus
// its difficulty weight.
type hitRhythm struct {
	ratio      float64
	difficulty float64
}

// commonRhythms mirrors hitobject_rhythm.rs's COMMON_RHYTHMS table
// exactly.
var commonRhythms = [9]hitRhythm{
	{ratio: 1.0 / 1.0, difficulty: 0},
	{ratio: 2.0 / 1.0, difficulty: 0.3},
	{ratio: 1.0 / 2.0, difficulty: 0.5},
	{ratio: 3.0 / 1.0, difficulty: 0.3},
	{ratio: 1.0 / 3.0, difficulty: 0.35},
	{ratio: 3.0 / 2.0, difficulty: 0.6},
	{ratio: 2.0 / 3.0, difficulty: 0.4},
	{ratio: 5.0 / 4.0, difficulty: 0.5},
	{ratio: 4.0 / 5.0, difficulty: 0.7},
}

// closestRhythm picks the table entry whose ratio is nearest to the
// current delta divided by the previous delta.
func closestRhythm(delta, prevStart, prevPrevStart, clockRate float64) hitRhythm {
	prevLen := (prevStart - prevPrevStart) / clockRate
	if prevLen == 0 {
		return commonRhythms[0]
	}

	ratio := delta / prevLen

	best := commonRhythms[0]
	bestDist := math.Abs(best.ratio - ratio)

	for _, r := range commonRhythms[1:] {
		d := math.Abs(r.ratio - ratio)
		if d < bestDist {
			best, bestDist = r, d
		}
	}

	return best
}
