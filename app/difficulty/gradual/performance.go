package gradual

import (
	"github.com/wieku/danser-pp/app/beatmap"
	"github.com/wieku/danser-pp/app/beatmap/difficulty"
	"github.com/wieku/danser-pp/app/performance"
)

// OsuPerformance layers a gradual performance calculator on top of the
// gradual Standard difficulty iterator, grounded on
// original_source/src/osu/gradual_performance.rs's
// OsuGradualPerformanceAttributes: each call advances the difficulty
// iterator by the requested number of objects and immediately folds the
// resulting attributes snapshot into a pp value against the caller's
// current ScoreState (spec.md §4.H).
type OsuPerformance struct {
	diff *Osu
	mods difficulty.Modifier
}

// NewOsuPerformance wraps a fresh gradual Standard iterator for b.
func NewOsuPerformance(b *beatmap.Beatmap, d *difficulty.Difficulty) (*OsuPerformance, error) {
	diff, err := NewOsu(b, d)
	if err != nil {
		return nil, err
	}

	return &OsuPerformance{diff: diff, mods: d.Mods()}, nil
}

// Next processes one more object and returns the pp for the given state.
// state is the mode-agnostic performance.ScoreState (spec.md §3
// `[EXPANDED]`); only the buckets Standard reads are projected out.
func (g *OsuPerformance) Next(state performance.ScoreState) (performance.OsuAttributes, bool) {
	attrs, ok := g.diff.Next()
	if !ok {
		return performance.OsuAttributes{}, false
	}

	return performance.CalculateOsu(attrs, g.mods, state.ToOsu()), true
}

// NthObjects processes n objects at once (n==0 behaves as n==1, matching
// the reference's "considered as 1" rule) and returns the resulting pp.
func (g *OsuPerformance) NthObjects(state performance.ScoreState, n int) (performance.OsuAttributes, bool) {
	if n <= 0 {
		n = 1
	}

	attrs, ok := g.diff.Nth(n - 1)
	if !ok {
		return performance.OsuAttributes{}, false
	}

	return performance.CalculateOsu(attrs, g.mods, state.ToOsu()), true
}

// TaikoPerformance is Taiko's gradual performance wrapper.
type TaikoPerformance struct {
	diff *Taiko
	mods difficulty.Modifier
}

func NewTaikoPerformance(b *beatmap.Beatmap, d *difficulty.Difficulty) (*TaikoPerformance, error) {
	diff, err := NewTaiko(b, d)
	if err != nil {
		return nil, err
	}

	return &TaikoPerformance{diff: diff, mods: d.Mods()}, nil
}

func (g *TaikoPerformance) Next(state performance.ScoreState) (performance.TaikoAttributes, bool) {
	attrs, ok := g.diff.Next()
	if !ok {
		return performance.TaikoAttributes{}, false
	}

	return performance.CalculateTaiko(attrs, g.mods, state.ToTaiko()), true
}

func (g *TaikoPerformance) NthObjects(state performance.ScoreState, n int) (performance.TaikoAttributes, bool) {
	if n <= 0 {
		n = 1
	}

	attrs, ok := g.diff.Nth(n - 1)
	if !ok {
		return performance.TaikoAttributes{}, false
	}

	return performance.CalculateTaiko(attrs, g.mods, state.ToTaiko()), true
}

// CatchPerformance is Catch's gradual performance wrapper.
type CatchPerformance struct {
	diff *Catch
	mods difficulty.Modifier
}

func NewCatchPerformance(b *beatmap.Beatmap, d *difficulty.Difficulty) (*CatchPerformance, error) {
	diff, err := NewCatch(b, d)
	if err != nil {
		return nil, err
	}

	return &CatchPerformance{diff: diff, mods: d.Mods()}, nil
}

func (g *CatchPerformance) Next(state performance.ScoreState) (performance.CatchAttributes, bool) {
	attrs, ok := g.diff.Next()
	if !ok {
		return performance.CatchAttributes{}, false
	}

	return performance.CalculateCatch(attrs, g.mods, state.ToCatch()), true
}

func (g *CatchPerformance) NthObjects(state performance.ScoreState, n int) (performance.CatchAttributes, bool) {
	if n <= 0 {
		n = 1
	}

	attrs, ok := g.diff.Nth(n - 1)
	if !ok {
		return performance.CatchAttributes{}, false
	}

	return performance.CalculateCatch(attrs, g.mods, state.ToCatch()), true
}

// ManiaPerformance is Mania's gradual performance wrapper.
type ManiaPerformance struct {
	diff *Mania
	mods difficulty.Modifier
}

func NewManiaPerformance(b *beatmap.Beatmap, d *difficulty.Difficulty) (*ManiaPerformance, error) {
	diff, err := NewMania(b, d)
	if err != nil {
		return nil, err
	}

	return &ManiaPerformance{diff: diff, mods: d.Mods()}, nil
}

func (g *ManiaPerformance) Next(state performance.ScoreState) (performance.ManiaAttributes, bool) {
	attrs, ok := g.diff.Next()
	if !ok {
		return performance.ManiaAttributes{}, false
	}

	return performance.CalculateMania(attrs, g.mods, state.ToMania()), true
}

func (g *ManiaPerformance) NthObjects(state performance.ScoreState, n int) (performance.ManiaAttributes, bool) {
	if n <= 0 {
		n = 1
	}

	attrs, ok := g.diff.Nth(n - 1)
	if !ok {
		return performance.ManiaAttributes{}, false
	}

	return performance.CalculateMania(attrs, g.mods, state.ToMania()), true
}
