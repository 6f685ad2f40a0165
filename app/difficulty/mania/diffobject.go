package mania

import "github.com/wieku/danser-pp/app/beatmap"

// DifficultyObject is the adjacency view spec.md §4.E describes for Mania:
// it borrows the underlying hit object for its column and end time.
type DifficultyObject struct {
	Idx       int
	Base      *beatmap.HitObject
	Delta     float64
	StartTime float64
	EndTime   float64
}

// BuildDifficultyObjects clock-rate-adjusts every timestamp up front
// (original_source/src/mania/difficulty_object.rs).
func BuildDifficultyObjects(hitObjects []*beatmap.HitObject, clockRate float64) []DifficultyObject {
	if len(hitObjects) < 2 {
		return nil
	}

	out := make([]DifficultyObject, 0, len(hitObjects)-1)

	for i := 1; i < len(hitObjects); i++ {
		curr, prev := hitObjects[i], hitObjects[i-1]

		out = append(out, DifficultyObject{
			Idx:       i - 1,
			Base:      curr,
			Delta:     (curr.StartTime - prev.StartTime) / clockRate,
			StartTime: curr.StartTime / clockRate,
			EndTime:   curr.EndTime() / clockRate,
		})
	}

	return out
}
