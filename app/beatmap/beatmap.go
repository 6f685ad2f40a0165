package beatmap

// GameMode is one of the four rulesets a beatmap (or a performance
// calculation) targets.
type GameMode int

const (
	ModeOsu GameMode = iota
	ModeTaiko
	ModeCatch
	ModeMania
)

func (m GameMode) String() string {
	switch m {
	case ModeOsu:
		return "osu"
	case ModeTaiko:
		return "taiko"
	case ModeCatch:
		return "catch"
	case ModeMania:
		return "mania"
	default:
		return "unknown"
	}
}

// Beatmap is the read-only parsed representation described in spec.md §3.
// Construction is the parser's responsibility (external); this struct only
// documents and enforces the invariants the rest of the pipeline relies on.
type Beatmap struct {
	Mode    GameMode
	Version int

	AR, OD, CS, HP float64
	SliderMultiplier float64
	TickRate         float64
	StackLeniency    float64

	HitObjects []*HitObject
	Sounds     []uint8

	TimingPoints     []TimingPoint
	DifficultyPoints []DifficultyPoint
	EffectPoints     []EffectPoint
	Breaks           []Break

	// NCircles/NSliders/NSpinners are cached counts, refreshed by
	// RefreshCounts (object preparation keeps them in sync after
	// conversion).
	NCircles, NSliders, NSpinners int

	// Converted is set only by the Standard->X conversion step
	// (app/beatmap/objects/{taiko,mania}.go); it is never inferred,
	// resolving the mania hit-window ambiguity flagged in spec.md §9.
	Converted bool

	// OriginalMode is the mode the map was authored in, kept around after
	// conversion so performance calculators can tell a converted Taiko map
	// (entirely different accuracy formula inputs) from a native one.
	OriginalMode GameMode
}

// RefreshCounts recomputes NCircles/NSliders/NSpinners from HitObjects.
// Mode conversion calls this after rewriting HitObjects (spec.md §9,
// "mode conversion is destructive").
func (b *Beatmap) RefreshCounts() {
	b.NCircles, b.NSliders, b.NSpinners = 0, 0, 0

	for _, h := range b.HitObjects {
		switch h.Kind {
		case KindCircle:
			b.NCircles++
		case KindSlider:
			b.NSliders++
		case KindSpinner:
			b.NSpinners++
		}
	}
}

// Clone deep-copies the beatmap so mode conversion never observably
// mutates the original (spec.md §9 "mode conversion is destructive").
func (b *Beatmap) Clone() *Beatmap {
	clone := *b

	clone.HitObjects = make([]*HitObject, len(b.HitObjects))
	for i, h := range b.HitObjects {
		ho := *h
		ho.ControlPoints = append([]PathControlPoint(nil), h.ControlPoints...)
		ho.EdgeSounds = append([]uint8(nil), h.EdgeSounds...)
		clone.HitObjects[i] = &ho
	}

	clone.Sounds = append([]uint8(nil), b.Sounds...)
	clone.TimingPoints = append([]TimingPoint(nil), b.TimingPoints...)
	clone.DifficultyPoints = append([]DifficultyPoint(nil), b.DifficultyPoints...)
	clone.EffectPoints = append([]EffectPoint(nil), b.EffectPoints...)
	clone.Breaks = append([]Break(nil), b.Breaks...)

	return &clone
}

// TotalObjects is the hit object count, used by density/length/count
// suspicion checks and by the performance length bonus.
func (b *Beatmap) TotalObjects() int {
	return len(b.HitObjects)
}
