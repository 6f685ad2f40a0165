package gradual

import (
	"github.com/wieku/danser-pp/app/beatmap"
	"github.com/wieku/danser-pp/app/beatmap/difficulty"
	"github.com/wieku/danser-pp/app/beatmap/objects"
	"github.com/wieku/danser-pp/app/difficulty/taiko"
)

// Taiko is the resumable Taiko iterator (spec.md §4.H).
type Taiko struct {
	diffObjects []taiko.DifficultyObject

	attrs difficulty.Attributes

	color   *taiko.Color
	rhythm  *taiko.Rhythm
	stamina *taiko.Stamina

	maxCombo int
	idx      int
}

// NewTaiko prepares b for gradual Taiko calculation, mirroring
// taiko.Calculate's setup (including Standard->Taiko conversion when
// needed) up to (not including) the skill Process loop. Returns the same
// typed errors as taiko.Calculate for the suspicion/mode pre-conditions.
func NewTaiko(b *beatmap.Beatmap, d *difficulty.Difficulty) (*Taiko, error) {
	if err := beatmap.CheckMode(b, beatmap.ModeTaiko); err != nil {
		return nil, err
	}

	if err := beatmap.CheckSuspicion(b); err != nil {
		return nil, err
	}

	converted := *b
	objs := append([]*beatmap.HitObject(nil), b.HitObjects...)
	sounds := append([]uint8(nil), b.Sounds...)
	converted.HitObjects = objs
	converted.Sounds = sounds

	if b.Mode == beatmap.ModeOsu {
		objects.ConvertTaiko(&converted)
		d.SetConverted(true)
	}

	attrs := d.Resolve()

	n := d.PassedObjects(len(converted.HitObjects))

	diffObjects := taiko.BuildDifficultyObjects(converted.HitObjects[:n], converted.Sounds[:n], attrs.ClockRate)

	maxCombo := 0
	if n > 0 && converted.HitObjects[0].IsCircle() {
		maxCombo++
	}
	if n > 1 && converted.HitObjects[1].IsCircle() {
		maxCombo++
	}

	return &Taiko{
		diffObjects: diffObjects,
		attrs:       attrs,
		color:       taiko.NewColor(),
		rhythm:      taiko.NewRhythm(),
		stamina:     taiko.NewStamina(),
		maxCombo:    maxCombo,
	}, nil
}

// Len returns the number of diff-objects not yet processed.
func (g *Taiko) Len() int {
	return len(g.diffObjects) - g.idx
}

// Next processes the next diff-object and returns the attributes snapshot
// as of that object, or false once every diff-object has been consumed.
func (g *Taiko) Next() (taiko.Attributes, bool) {
	if g.idx >= len(g.diffObjects) {
		return taiko.Attributes{}, false
	}

	obj := g.diffObjects[g.idx]
	g.idx++

	g.color.Process(obj)
	g.rhythm.Process(obj)
	g.stamina.Process(obj)

	if obj.Base.IsHit {
		g.maxCombo++
	}

	return taiko.Finalize(g.color, g.rhythm, g.stamina, g.attrs, g.maxCombo), true
}

// Nth skips n extra diff-objects (processing each) and then returns the
// snapshot as of the (n+1)th object from the current position.
func (g *Taiko) Nth(n int) (taiko.Attributes, bool) {
	for i := 0; i < n; i++ {
		if _, ok := g.Next(); !ok {
			return taiko.Attributes{}, false
		}
	}

	return g.Next()
}
