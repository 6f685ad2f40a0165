// Package performance implements spec.md §4.I: the per-mode pp formulas
// that consume a mode's difficulty Attributes plus a ScoreState (mutable
// hit-count record) to produce a final pp value, grounded on
// original_source/src/{mania/pp.rs,taiko/performance/calculator.rs,
// catch/performance/calculator.rs} and, where no osu!standard calculator
// source was retrieved, on the publicly documented shape spec.md §4.I
// itself describes (pp = multiplier * ((aim^1.1+speed^1.1+acc^1.1+fl^1.1)^(1/1.1))).
package performance

import (
	"math"

	"github.com/wieku/danser-pp/app/beatmap"
)

// OsuScoreState is Standard's ScoreState (spec.md §3 "ScoreState (per mode)").
type OsuScoreState struct {
	MaxCombo int
	N300     int
	N100     int
	N50      int
	NMisses  int
}

// TotalHits is the number of judged circles/slider-heads (sliders'
// ticks/repeats are not separately judged in this scoring model).
func (s OsuScoreState) TotalHits() int {
	return s.N300 + s.N100 + s.N50 + s.NMisses
}

// Accuracy is a pure function of the record (spec.md §3).
func (s OsuScoreState) Accuracy() float64 {
	total := s.TotalHits()
	if total == 0 {
		return 0
	}

	return float64(300*s.N300+100*s.N100+50*s.N50) / float64(300*total)
}

// TaikoScoreState is Taiko's ScoreState.
type TaikoScoreState struct {
	MaxCombo int
	N300     int
	N100     int
	N50      int
	NMisses  int
}

func (s TaikoScoreState) TotalHits() int {
	return s.N300 + s.N100 + s.N50 + s.NMisses
}

func (s TaikoScoreState) Accuracy() float64 {
	total := s.TotalHits()
	if total == 0 {
		return 0
	}

	return float64(300*s.N300+100*s.N100+50*s.N50) / float64(300*total)
}

// CatchScoreState is Catch's ScoreState.
type CatchScoreState struct {
	MaxCombo          int
	NFruits           int
	NDroplets         int
	NTinyDroplets     int
	NTinyDropletMisses int
	NMisses           int
}

// TotalHits is fruits+droplets+misses, the combo-bearing judgements
// (spec.md §4.I's combo_hits — tiny droplets never break combo).
func (s CatchScoreState) TotalHits() int {
	return s.NFruits + s.NDroplets + s.NMisses
}

func (s CatchScoreState) Accuracy() float64 {
	total := s.NFruits + s.NDroplets + s.NTinyDroplets + s.NTinyDropletMisses + s.NMisses
	if total == 0 {
		return 0
	}

	return float64(s.NFruits+s.NDroplets+s.NTinyDroplets) / float64(total)
}

// ManiaScoreState is Mania's ScoreState.
type ManiaScoreState struct {
	MaxCombo int
	N320     int
	N300     int
	N200     int
	N100     int
	N50      int
	NMisses  int
}

func (s ManiaScoreState) TotalHits() int {
	return s.N320 + s.N300 + s.N200 + s.N100 + s.N50 + s.NMisses
}

func (s ManiaScoreState) Accuracy() float64 {
	total := s.TotalHits()
	if total == 0 {
		return 0
	}

	return float64(320*s.N320+300*s.N300+200*s.N200+100*s.N100+50*s.N50) / float64(320*total)
}

// ScoreState is the mode-agnostic judgement record the gradual performance
// calculators (app/difficulty/gradual) thread through Next, grounded on
// original_source/src/score_state.rs's ScoreState: it carries every
// judgement bucket any mode can produce, and each mode reads only the
// buckets that apply to it via the To*/From* conversions below.
type ScoreState struct {
	MaxCombo int
	NGeki    int
	NKatu    int
	N300     int
	N100     int
	N50      int
	NMisses  int
}

// TotalHits mirrors score_state.rs's total_hits: the bucket set included
// depends on the mode (Taiko never had 50s; Osu never had gekis/katus).
func (s ScoreState) TotalHits(mode beatmap.GameMode) int {
	amount := s.N300 + s.N100 + s.NMisses

	if mode != beatmap.ModeTaiko {
		amount += s.N50

		if mode != beatmap.ModeOsu {
			amount += s.NKatu

			if mode != beatmap.ModeCatch {
				amount += s.NGeki
			}
		}
	}

	return amount
}

// ToOsu projects the union state onto Standard's ScoreState.
func (s ScoreState) ToOsu() OsuScoreState {
	return OsuScoreState{MaxCombo: s.MaxCombo, N300: s.N300, N100: s.N100, N50: s.N50, NMisses: s.NMisses}
}

// ToTaiko projects the union state onto Taiko's ScoreState.
func (s ScoreState) ToTaiko() TaikoScoreState {
	return TaikoScoreState{MaxCombo: s.MaxCombo, N300: s.N300, N100: s.N100, NMisses: s.NMisses}
}

// ToCatch projects the union state onto Catch's ScoreState (n300→fruits,
// n100→droplets, n50→tiny droplets, n_katu→tiny droplet misses).
func (s ScoreState) ToCatch() CatchScoreState {
	return CatchScoreState{
		MaxCombo:           s.MaxCombo,
		NFruits:            s.N300,
		NDroplets:          s.N100,
		NTinyDroplets:      s.N50,
		NTinyDropletMisses: s.NKatu,
		NMisses:            s.NMisses,
	}
}

// ToMania projects the union state onto Mania's ScoreState (n_geki→n320,
// n_katu→n200).
func (s ScoreState) ToMania() ManiaScoreState {
	return ManiaScoreState{N320: s.NGeki, N300: s.N300, N200: s.NKatu, N100: s.N100, N50: s.N50, NMisses: s.NMisses}
}

// FromOsu lifts a Standard ScoreState into the union type.
func FromOsu(s OsuScoreState) ScoreState {
	return ScoreState{MaxCombo: s.MaxCombo, N300: s.N300, N100: s.N100, N50: s.N50, NMisses: s.NMisses}
}

// FromTaiko lifts a Taiko ScoreState into the union type.
func FromTaiko(s TaikoScoreState) ScoreState {
	return ScoreState{MaxCombo: s.MaxCombo, N300: s.N300, N100: s.N100, NMisses: s.NMisses}
}

// FromCatch lifts a Catch ScoreState into the union type.
func FromCatch(s CatchScoreState) ScoreState {
	return ScoreState{
		MaxCombo: s.MaxCombo,
		NKatu:    s.NTinyDropletMisses,
		N300:     s.NFruits,
		N100:     s.NDroplets,
		N50:      s.NTinyDroplets,
		NMisses:  s.NMisses,
	}
}

// FromMania lifts a Mania ScoreState into the union type (Mania has no
// combo-bearing judgements, so MaxCombo is left zero, matching
// score_state.rs's own From<ManiaScoreState> impl).
func FromMania(s ManiaScoreState) ScoreState {
	return ScoreState{NGeki: s.N320, NKatu: s.N200, N300: s.N300, N100: s.N100, N50: s.N50, NMisses: s.NMisses}
}

// generateCounts distributes `remaining` hits among the non-pinned judgement
// buckets (best-value first) to hit `target` accuracy as closely as
// possible, honoring explicitly pinned counts untouched (spec.md §4.I's
// generate_state contract). weights holds each bucket's accuracy weight and
// counts the count to fill; pinned[i] means the caller already set that
// bucket and it must not be touched.
func generateCounts(total int, pinnedMisses, misses int, weights []int, pinned []bool, counts []int, maxWeight int, targetAcc float64) {
	fixedWeighted := 0
	fixedCount := 0

	for i, p := range pinned {
		if p {
			fixedWeighted += weights[i] * counts[i]
			fixedCount += counts[i]
		}
	}

	remaining := total - fixedCount - misses
	if remaining < 0 {
		remaining = 0
	}

	// Distribute remaining hits across unpinned buckets, greedily assigning
	// the best-weighted bucket first until the running accuracy would
	// overshoot target, then filling the rest with the lowest-weight bucket —
	// "maximize accuracy while matching the target" read as: get as close
	// to target as achievable from the top weight down.
	targetWeighted := targetAcc * float64(maxWeight) * float64(total)

	unpinnedIdx := -1
	for i, p := range pinned {
		if !p {
			unpinnedIdx = i
			break
		}
	}

	if unpinnedIdx == -1 || remaining == 0 {
		return
	}

	best := weights[unpinnedIdx]
	bestIdx := unpinnedIdx

	for i, p := range pinned {
		if !p && weights[i] > best {
			best = weights[i]
			bestIdx = i
		}
	}

	bestCount := 0
	if best > 0 {
		needed := (targetWeighted - float64(fixedWeighted)) / float64(best)
		bestCount = int(math.Round(needed))
	}

	if bestCount > remaining {
		bestCount = remaining
	}
	if bestCount < 0 {
		bestCount = 0
	}

	counts[bestIdx] = bestCount
	leftover := remaining - bestCount

	// Whatever is left over goes to the lowest-weight unpinned bucket
	// (worst judgement short of a miss), matching the "otherwise distribute
	// to maximize accuracy" rule's remainder handling.
	worst := -1
	worstIdx := -1

	for i, p := range pinned {
		if !p && i != bestIdx {
			if worst == -1 || weights[i] < worst {
				worst = weights[i]
				worstIdx = i
			}
		}
	}

	if worstIdx >= 0 {
		counts[worstIdx] += leftover
	} else {
		counts[bestIdx] += leftover
	}
}

// GenerateOsuState fills in a Standard ScoreState from partial hit counts:
// any of n300/n100/n50 already set (non-negative) is honored verbatim,
// misses are honored verbatim, and the remainder is distributed to hit
// accuracy as closely as possible (spec.md §4.I generate_state). A pinned
// count total exceeding objectCount is generate_state's over-constrained
// failure mode: clamp to the object count rather than reject, trimming n50,
// then n100, then n300, then misses until the total fits.
func GenerateOsuState(objectCount int, accuracy float64, n300, n100, n50, misses int, maxCombo int) OsuScoreState {
	total := objectCount

	weights := []int{300, 100, 50}
	counts := []int{n300, n100, n50}
	pinned := []bool{n300 >= 0, n100 >= 0, n50 >= 0}

	for i := range counts {
		if counts[i] < 0 {
			counts[i] = 0
		}
	}

	if misses < 0 {
		misses = 0
	}

	generateCounts(total, 0, misses, weights, pinned, counts, 300, accuracy)

	excess := counts[0] + counts[1] + counts[2] + misses - total
	for i := len(counts) - 1; i >= 0 && excess > 0; i-- {
		take := counts[i]
		if take > excess {
			take = excess
		}
		counts[i] -= take
		excess -= take
	}

	if excess > 0 {
		misses -= excess
	}

	if maxCombo <= 0 {
		maxCombo = total - misses
	}

	return OsuScoreState{MaxCombo: maxCombo, N300: counts[0], N100: counts[1], N50: counts[2], NMisses: misses}
}
