// Package catch implements Catch's diff-objects, its single Movement
// skill and star-rating aggregation (spec.md §4.E-G). Ported from
// original_source/src/fruits/{difficulty_object,movement}.rs.
package catch

import (
	"math"

	"github.com/wieku/danser-pp/app/beatmap/objects"
)

// strainTimeFloor is Catch's delta_time clamp (spec.md §4.E: 40ms).
const strainTimeFloor = 40.0

// normalizedHitObjectRadius is the reference circle radius catch positions
// are scaled against (fruits/difficulty_object.rs).
const normalizedHitObjectRadius = 41.0

// DifficultyObject is the adjacency view spec.md §4.E describes for Catch:
// it borrows the current and previous palpable object.
type DifficultyObject struct {
	Base *objects.CatchObject
	Last *objects.CatchObject

	Delta     float64
	StartTime float64

	NormalizedPos     float64
	LastNormalizedPos float64

	StrainTime float64
	ClockRate  float64
}

// BuildDifficultyObjects pairs up consecutive palpable catch objects,
// normalizing position against half_catcher_width (spec.md §4.E's
// scaling_factor = 41 / half_catcher_width).
func BuildDifficultyObjects(prepared []objects.CatchObject, clockRate, halfCatcherWidth float64) []DifficultyObject {
	if len(prepared) < 2 {
		return nil
	}

	scalingFactor := normalizedHitObjectRadius / halfCatcherWidth

	out := make([]DifficultyObject, 0, len(prepared)-1)

	for i := 1; i < len(prepared); i++ {
		curr, prev := &prepared[i], &prepared[i-1]

		delta := (curr.Time - prev.Time) / clockRate

		out = append(out, DifficultyObject{
			Base:              curr,
			Last:              prev,
			Delta:             delta,
			StartTime:         curr.Time / clockRate,
			NormalizedPos:     curr.Pos * scalingFactor,
			LastNormalizedPos: prev.Pos * scalingFactor,
			StrainTime:        math.Max(delta, strainTimeFloor),
			ClockRate:         clockRate,
		})
	}

	return out
}
