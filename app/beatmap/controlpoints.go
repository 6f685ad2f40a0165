package beatmap

// TimingPoint carries the beat length (ms per beat) active from its time
// onward.
type TimingPoint struct {
	Time     float64
	BeatLen  float64
}

// DifficultyPoint carries the slider-velocity multiplier active from its
// time onward.
type DifficultyPoint struct {
	Time            float64
	SpeedMultiplier float64
}

// EffectPoint marks a kiai/effect-only section; the difficulty pipeline
// doesn't consume it, but object preparation (stacking, rulesets that care
// about kiai) may in the future, so it's kept on the model.
type EffectPoint struct {
	Time float64
	Kiai bool
}

// Break is an inclusive time range during which no hit objects are judged.
type Break struct {
	StartTime, EndTime float64
}

// controlKind tags which stream a merged control point came from.
type controlKind int

const (
	controlTiming controlKind = iota
	controlDifficulty
)

// controlEvent is one merged, time-ordered entry from the timing- and
// difficulty-point streams.
type controlEvent struct {
	kind       controlKind
	time       float64
	timing     TimingPoint
	difficulty DifficultyPoint
}

// ControlPointIter merges two already-time-sorted streams (timing points,
// difficulty points) into one time-ordered stream. Ties are resolved with
// Timing preceding Difficulty, matching the reference control-point merge.
type ControlPointIter struct {
	timing      []TimingPoint
	difficulty  []DifficultyPoint
	ti, di      int
}

func NewControlPointIter(b *Beatmap) *ControlPointIter {
	return &ControlPointIter{timing: b.TimingPoints, difficulty: b.DifficultyPoints}
}

// next returns the next merged control event, or false once both streams
// are exhausted.
func (it *ControlPointIter) next() (controlEvent, bool) {
	hasTiming := it.ti < len(it.timing)
	hasDiff := it.di < len(it.difficulty)

	switch {
	case hasTiming && hasDiff && it.timing[it.ti].Time <= it.difficulty[it.di].Time:
		ev := controlEvent{kind: controlTiming, time: it.timing[it.ti].Time, timing: it.timing[it.ti]}
		it.ti++

		return ev, true
	case hasDiff:
		ev := controlEvent{kind: controlDifficulty, time: it.difficulty[it.di].Time, difficulty: it.difficulty[it.di]}
		it.di++

		return ev, true
	case hasTiming:
		ev := controlEvent{kind: controlTiming, time: it.timing[it.ti].Time, timing: it.timing[it.ti]}
		it.ti++

		return ev, true
	default:
		return controlEvent{}, false
	}
}

// TimingCursor is a stateful, forward-only reader over the merged
// control-point stream. AdvanceTo(t) must be called with non-decreasing t;
// arbitrary-order lookups aren't supported (matches spec.md §4.B).
type TimingCursor struct {
	iter            *ControlPointIter
	pending         *controlEvent
	beatLen         float64
	speedMultiplier float64
}

// NewTimingCursor returns a fresh cursor with the documented defaults:
// beatLen 1000ms (60000/60) and speedMultiplier 1.0.
func NewTimingCursor(b *Beatmap) *TimingCursor {
	return &TimingCursor{
		iter:            NewControlPointIter(b),
		beatLen:         1000,
		speedMultiplier: 1,
	}
}

// AdvanceTo replays every control event with time <= t, updating BeatLen
// and SpeedMultiplier. Calling with a smaller t than a previous call is
// undefined (the cursor is forward-only).
func (c *TimingCursor) AdvanceTo(t float64) {
	for {
		ev, ok := c.peek()
		if !ok || ev.time > t {
			return
		}

		c.consume()

		switch ev.kind {
		case controlTiming:
			c.beatLen = ev.timing.BeatLen
		case controlDifficulty:
			c.speedMultiplier = ev.difficulty.SpeedMultiplier
		}
	}
}

func (c *TimingCursor) peek() (controlEvent, bool) {
	if c.pending == nil {
		ev, ok := c.iter.next()
		if !ok {
			return controlEvent{}, false
		}

		c.pending = &ev
	}

	return *c.pending, true
}

func (c *TimingCursor) consume() {
	c.pending = nil
}

func (c *TimingCursor) BeatLen() float64         { return c.beatLen }
func (c *TimingCursor) SpeedMultiplier() float64 { return c.speedMultiplier }
