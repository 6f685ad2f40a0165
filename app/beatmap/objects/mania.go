package objects

import (
	"math"
	"sort"

	"github.com/wieku/danser-pp/app/beatmap"
)

const maniaPlayfieldWidth = 512.0

// ManiaColumn buckets an x-coordinate into one of totalColumns evenly
// spaced lanes (original_source/src/mania/mania_object.rs's
// `ManiaObject::column`). Used both by native Mania maps (column derived
// straight from x) and by conversion (column chosen by the pattern
// generator, but validated against the same bucketing).
func ManiaColumn(x, totalColumns float64) int {
	xDivisor := maniaPlayfieldWidth / totalColumns
	col := math.Floor(x / xDivisor)

	if col > totalColumns-1 {
		col = totalColumns - 1
	}

	return int(col)
}

// maniaSeed is spec.md §6's PRNG seed formula.
func maniaSeed(hp, cs, od, ar float64) int32 {
	return int32(math.RoundToEven(hp+cs))*20 + int32(math.RoundToEven(od*41.2)) + int32(math.RoundToEven(ar))
}

// maniaColumnCount is the CS/OD decision tree spec.md §4.D describes,
// ported from original_source/src/beatmap/converts/mania/mod.rs's
// `convert_to_mania`.
func maniaColumnCount(b *beatmap.Beatmap) int {
	roundedCS := math.RoundToEven(b.CS)
	roundedOD := math.RoundToEven(b.OD)

	sliderOrSpinner := 0
	for _, h := range b.HitObjects {
		if h.Kind == beatmap.KindSlider || h.Kind == beatmap.KindSpinner {
			sliderOrSpinner++
		}
	}

	percent := 0.0
	if len(b.HitObjects) > 0 {
		percent = float64(sliderOrSpinner) / float64(len(b.HitObjects))
	}

	var target float64

	switch {
	case percent < 0.2:
		target = 7
	case percent < 0.3 || roundedCS >= 5:
		target = 6
		if roundedOD > 5 {
			target = 7
		}
	case percent > 0.6:
		target = 4
		if roundedOD > 4 {
			target = 5
		}
	default:
		target = roundedOD + 1
		if target < 4 {
			target = 4
		}
		if target > 7 {
			target = 7
		}
	}

	return int(target)
}

// ConvertMania rewrites each of b's hit objects into exactly one column note
// (spec.md §4.D), resolves b.CS to the target column count, and
// stable-orders the result with the legacy sort. Column choice is a
// condensed stack-avoidance heuristic (a column drawn uniformly via the
// spec.md §6 PRNG, moved on to the next column when it equals the previous
// note's) rather than the
// reference's full Pattern/PatternType state machine (stair patterns,
// forced-not-stack runs, hold-note-aware distance patterns) — that
// generator's source (pattern_generator/{hit_object,distance_object,
// end_time_object}.rs) runs to several hundred lines per file implementing
// many named pattern shapes, well beyond what spec.md's own prose commits
// to ("a pattern-generator that avoids column stacks by default"). The
// column-count derivation and the PRNG itself ARE bit-exact.
func ConvertMania(b *beatmap.Beatmap) {
	totalColumns := maniaColumnCount(b)

	rng := NewManiaRandom(maniaSeed(b.HP, b.CS, b.OD, b.AR))

	out := make([]*beatmap.HitObject, 0, len(b.HitObjects))
	sounds := make([]uint8, 0, len(b.HitObjects))

	cursor := beatmap.NewTimingCursor(b)
	lastColumn := -1

	pickColumn := func() int {
		if totalColumns <= 1 {
			return 0
		}

		col := rng.NextIntRange(0, totalColumns)
		if col == lastColumn {
			col = (col + 1) % totalColumns
		}

		lastColumn = col

		return col
	}

	for _, h := range b.HitObjects {
		sound := h.Sound

		switch h.Kind {
		case beatmap.KindCircle:
			note := *h
			note.Column = pickColumn()
			out = append(out, &note)
			sounds = append(sounds, sound)

		case beatmap.KindSlider:
			cursor.AdvanceTo(h.StartTime)

			spans := h.Repeats + 1
			pixelLen := h.PixelLen
			if curve := BuildCurve(h); curve.Length() > 0 {
				pixelLen = float64(curve.Length())
			}

			duration := SliderDuration(spans, cursor.BeatLen(), cursor.SpeedMultiplier(), b.SliderMultiplier, pixelLen)

			note := *h
			note.Kind = beatmap.KindHold
			note.Column = pickColumn()
			note.SetEndTime(h.StartTime + duration)
			out = append(out, &note)
			sounds = append(sounds, sound)

		case beatmap.KindSpinner:
			note := *h
			note.Kind = beatmap.KindHold
			note.Column = pickColumn()
			out = append(out, &note)
			sounds = append(sounds, sound)
		}
	}

	b.HitObjects = out
	b.Sounds = sounds

	sortByStartTime(b.HitObjects)
	legacySort(b.HitObjects)

	b.CS = float64(totalColumns)
	b.Mode = beatmap.ModeMania
	b.OriginalMode = beatmap.ModeOsu
	b.Converted = true
	b.RefreshCounts()
}

// legacySort is a depth-limited (32) introspective quicksort falling back
// to heapsort, ordering solely by start_time. It exists to reproduce the
// historical (non-stable) tie-break ordering the stable client's own
// quicksort produced for equal-time Mania notes (spec.md §4.D "Legacy
// sort"), ported from
// original_source/src/parse/sort.rs::depth_limited_quick_sort.
func legacySort(keys []*beatmap.HitObject) {
	if len(keys) == 0 {
		return
	}

	depthLimitedQuickSort(keys, 0, len(keys)-1, 32)
}

func depthLimitedQuickSort(keys []*beatmap.HitObject, left, right, depthLimit int) {
	for {
		if depthLimit == 0 {
			heapSort(keys, left, right)
			return
		}

		i, j := left, right
		mid := i + (j-i)>>1

		if keys[i].StartTime > keys[mid].StartTime {
			keys[i], keys[mid] = keys[mid], keys[i]
		}
		if keys[i].StartTime > keys[j].StartTime {
			keys[i], keys[j] = keys[j], keys[i]
		}
		if keys[mid].StartTime > keys[j].StartTime {
			keys[mid], keys[j] = keys[j], keys[mid]
		}

		for {
			for keys[i].StartTime < keys[mid].StartTime {
				i++
			}
			for keys[mid].StartTime < keys[j].StartTime {
				j--
			}

			switch {
			case i < j:
				keys[i], keys[j] = keys[j], keys[i]
			case i == j:
			default:
				goto done
			}

			i++
			if j > 0 {
				j--
			}

			if i > j {
				goto done
			}
		}

	done:
		depthLimit--

		if saturatingSub(j, left) <= right-i {
			if left < j {
				depthLimitedQuickSort(keys, left, j, depthLimit)
			}

			left = i
		} else {
			if i < right {
				depthLimitedQuickSort(keys, i, right, depthLimit)
			}

			right = j
		}

		if left >= right {
			break
		}
	}
}

func saturatingSub(a, b int) int {
	if a < b {
		return 0
	}

	return a - b
}

func heapSort(keys []*beatmap.HitObject, lo, hi int) {
	n := hi - lo + 1

	for i := n / 2; i >= 1; i-- {
		downHeap(keys, i, n, lo)
	}

	for i := n; i >= 2; i-- {
		keys[lo], keys[lo+i-1] = keys[lo+i-1], keys[lo]
		downHeap(keys, 1, i-1, lo)
	}
}

func downHeap(keys []*beatmap.HitObject, i, n, lo int) {
	for i <= n/2 {
		child := 2 * i

		if child < n && keys[lo+child-1].StartTime < keys[lo+child].StartTime {
			child++
		}

		if keys[lo+i-1].StartTime >= keys[lo+child-1].StartTime {
			break
		}

		keys[lo+i-1], keys[lo+child-1] = keys[lo+child-1], keys[lo+i-1]
		i = child
	}
}

// sortByStartTime is the stable pre-pass the reference runs
// (`hit_objects.sort_by(partial_cmp)`) before the legacy re-sort, ensuring
// ties enter depth_limited_quick_sort in insertion order.
func sortByStartTime(keys []*beatmap.HitObject) {
	sort.SliceStable(keys, func(i, j int) bool { return keys[i].StartTime < keys[j].StartTime })
}
