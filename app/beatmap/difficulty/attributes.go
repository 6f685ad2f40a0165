package difficulty

import (
	"math"

	"github.com/wieku/danser-pp/app/beatmap"
	"github.com/wieku/danser-pp/framework/math/mutils"
)

const (
	osuMin, osuAvg, osuMax       = 80.0, 50.0, 20.0
	taikoMin, taikoAvg, taikoMax = 50.0, 35.0, 20.0

	preemptMin, preemptAvg, preemptMax = 1800.0, 1200.0, 450.0
)

// GameMode re-exports beatmap.GameMode so callers building a Difficulty
// request don't need to import both packages for one enum.
type GameMode = beatmap.GameMode

const (
	ModeOsu   = beatmap.ModeOsu
	ModeTaiko = beatmap.ModeTaiko
	ModeCatch = beatmap.ModeCatch
	ModeMania = beatmap.ModeMania
)

// HitWindows bundles the AR (preempt) and OD hit windows, both already
// scaled by clock rate.
type HitWindows struct {
	AR float64
	OD float64
}

// Attributes is the resolved (ar, od, cs, hp, clock_rate, hit_windows)
// bundle described in spec.md §3, produced once per (map, mods, overrides)
// triple and immutable thereafter.
type Attributes struct {
	AR, OD, CS, HP float64
	ClockRate      float64
	HitWindows     HitWindows
}

// Difficulty is the ephemeral per-calculation request value: mods, raw
// stat overrides, an optional passed-object cap and an optional clock-rate
// override. It's a builder, mirroring danser-go's
// `NewDifficulty(...).SetMods(...)` chain.
type Difficulty struct {
	Mode GameMode

	rawAR, rawOD, rawCS, rawHP float64
	hasAROverride, hasODOverride, hasCSOverride, hasHPOverride bool

	mods Modifier

	clockRateOverride float64
	hasClockOverride  bool

	passedObjects int
	hasPassedCap  bool

	converted bool
}

// NewDifficulty builds a request against the given raw stats (taken from
// the beatmap unless overridden).
func NewDifficulty(mode GameMode, ar, od, cs, hp float64) *Difficulty {
	return &Difficulty{Mode: mode, rawAR: ar, rawOD: od, rawCS: cs, rawHP: hp}
}

// NewDifficultyFromMap seeds a request from a beatmap's own stats and
// converted flag, the common case for a full calculation.
func NewDifficultyFromMap(b *beatmap.Beatmap) *Difficulty {
	d := NewDifficulty(b.Mode, b.AR, b.OD, b.CS, b.HP)
	d.converted = b.Converted

	return d
}

func (d *Difficulty) SetMods(mods Modifier) *Difficulty {
	d.mods = mods
	return d
}

func (d *Difficulty) Mods() Modifier { return d.mods }

func (d *Difficulty) SetAR(ar float64) *Difficulty {
	d.rawAR, d.hasAROverride = ar, true
	return d
}

func (d *Difficulty) SetOD(od float64) *Difficulty {
	d.rawOD, d.hasODOverride = od, true
	return d
}

func (d *Difficulty) SetCS(cs float64) *Difficulty {
	d.rawCS, d.hasCSOverride = cs, true
	return d
}

func (d *Difficulty) SetHP(hp float64) *Difficulty {
	d.rawHP, d.hasHPOverride = hp, true
	return d
}

func (d *Difficulty) SetClockRate(rate float64) *Difficulty {
	d.clockRateOverride, d.hasClockOverride = rate, true
	return d
}

func (d *Difficulty) SetPassedObjects(n int) *Difficulty {
	d.passedObjects, d.hasPassedCap = n, true
	return d
}

func (d *Difficulty) PassedObjects(total int) int {
	if !d.hasPassedCap {
		return total
	}

	if d.passedObjects < total {
		return d.passedObjects
	}

	return total
}

func (d *Difficulty) HasPassedObjectsCap() bool { return d.hasPassedCap }

// SetConverted marks this request as operating on a converted-to-Mania
// chart, selecting the "converted" hit-window branch. Only meaningful for
// GameMode ModeMania. This must be set explicitly by the conversion step
// (see app/beatmap/objects/mania.go), never inferred — resolving the
// ambiguity spec.md §9 flags.
func (d *Difficulty) SetConverted(converted bool) *Difficulty {
	d.converted = converted
	return d
}

func (d *Difficulty) ClockRate() float64 {
	if d.hasClockOverride {
		return d.clockRateOverride
	}

	return d.mods.ClockRate()
}

func modMultiplier(mods Modifier, val float64) float64 {
	switch {
	case mods.Active(HardRock):
		return math.Min(val*1.4, 10)
	case mods.Active(Easy):
		return val * 0.5
	default:
		return val
	}
}

// HitWindows resolves just the AR/OD hit windows, matching the reference
// builder's standalone `hit_windows()` method (used, e.g., when only the
// preempt/OD window is needed without the full attribute bundle).
func (d *Difficulty) HitWindows() HitWindows {
	clockRate := d.ClockRate()

	rawAR := modMultiplier(d.mods, d.rawAR)
	preempt := mutils.DifficultyRange(rawAR, preemptMin, preemptAvg, preemptMax) / clockRate

	var hitWindow float64

	switch d.Mode {
	case ModeOsu, ModeCatch:
		rawOD := modMultiplier(d.mods, d.rawOD)
		hitWindow = mutils.DifficultyRange(rawOD, osuMin, osuAvg, osuMax) / clockRate
	case ModeTaiko:
		rawOD := modMultiplier(d.mods, d.rawOD)
		hitWindow = mutils.DifficultyRange(rawOD, taikoMin, taikoAvg, taikoMax) / clockRate
	case ModeMania:
		var value float64

		switch {
		case !d.converted:
			value = 34 + 3*mutils.ClampF64(10-d.rawOD, 0, 10)
		case d.rawOD > 4:
			value = 34
		default:
			value = 47
		}

		switch {
		case d.mods.Active(HardRock):
			value /= 1.4
		case d.mods.Active(Easy):
			value *= 1.4
		}

		hitWindow = math.Ceil(math.Floor(value*clockRate) / clockRate)
	}

	return HitWindows{AR: preempt, OD: hitWindow}
}

// Resolve computes the full BeatmapAttributes bundle for this request.
func (d *Difficulty) Resolve() Attributes {
	clockRate := d.ClockRate()

	hp := math.Min(d.rawHP*d.mods.ODARHPMultiplier(), 10)

	cs := d.rawCS
	switch {
	case d.mods.Active(HardRock):
		cs = math.Min(cs*1.3, 10)
	case d.mods.Active(Easy):
		cs *= 0.5
	}

	hw := d.HitWindows()

	var ar float64
	if hw.AR > 1200 {
		ar = (1800 - hw.AR) / 120
	} else {
		ar = (1200-hw.AR)/150 + 5
	}

	var od float64

	switch d.Mode {
	case ModeOsu:
		od = (osuMin - hw.OD) / 6
	case ModeTaiko:
		od = (taikoMin - hw.OD) / (taikoMin - taikoAvg) * 5
	case ModeCatch, ModeMania:
		od = d.rawOD
	}

	return Attributes{
		AR:         ar,
		OD:         od,
		CS:         cs,
		HP:         hp,
		ClockRate:  clockRate,
		HitWindows: hw,
	}
}
