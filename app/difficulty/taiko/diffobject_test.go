package taiko

import "testing"

// buildTestObjects hand-builds a diff-object slice with a given sequence of
// mono-streak lengths (the field assignColorPatterns reads to recover
// streak boundaries) rather than going through BuildDifficultyObjects,
// isolating the pattern-grouping logic from object preparation.
func buildTestObjects(streakLens []int, isRim []bool) []DifficultyObject {
	out := make([]DifficultyObject, len(streakLens))

	for i, l := range streakLens {
		out[i] = DifficultyObject{
			Idx:           i,
			Base:          TaikoObject{IsHit: true, IsRim: isRim[i]},
			MonoStreakLen: l,
		}
	}

	return out
}

func TestAssignColorPatternsDetectsRepeatedPattern(t *testing.T) {
	// Two streaks of length 2 (k k d d), repeated once more (k k d d):
	// both alternating patterns have the same streak count, run length
	// and starting hit type, so the second repeats the first.
	streakLens := []int{1, 2, 1, 2, 1, 2, 1, 2}
	isRim := []bool{false, false, true, true, false, false, true, true}

	out := buildTestObjects(streakLens, isRim)
	assignColorPatterns(out)

	for i := 0; i < 4; i++ {
		if out[i].PatternRepeatCount != 0 {
			t.Fatalf("object %d: expected first pattern to have repeat count 0, got %d", i, out[i].PatternRepeatCount)
		}
	}

	for i := 4; i < 8; i++ {
		if out[i].PatternRepeatCount != 1 {
			t.Fatalf("object %d: expected repeated pattern to have repeat count 1, got %d", i, out[i].PatternRepeatCount)
		}
	}
}

func TestAssignColorPatternsBreaksOnShapeChange(t *testing.T) {
	// k k d d (len 2 streaks) followed by k d k (len 1 streaks): the shape
	// changed, so the second pattern must not inherit a repeat count.
	streakLens := []int{1, 2, 1, 2, 1, 1, 1}
	isRim := []bool{false, false, true, true, false, true, false}

	out := buildTestObjects(streakLens, isRim)
	assignColorPatterns(out)

	for i := 4; i < 7; i++ {
		if out[i].PatternRepeatCount != 0 {
			t.Fatalf("object %d: expected pattern-shape change to reset repeat count, got %d", i, out[i].PatternRepeatCount)
		}
	}
}

func TestAssignColorPatternsEmptyInput(t *testing.T) {
	assignColorPatterns(nil)
}
