package gradual

import (
	"github.com/wieku/danser-pp/app/beatmap"
	"github.com/wieku/danser-pp/app/beatmap/difficulty"
	"github.com/wieku/danser-pp/app/beatmap/objects"
	"github.com/wieku/danser-pp/app/difficulty/osu"
)

// Osu is the resumable Standard iterator (spec.md §4.H).
type Osu struct {
	diffObjects []osu.DifficultyObject

	attrs      difficulty.Attributes
	prepared   *objects.PreparedOsu
	withFlash  bool

	aim        *osu.Aim
	speed      *osu.Speed
	flashlight *osu.Flashlight

	idx int
}

// NewOsu prepares b for gradual Standard calculation, mirroring
// osu.Calculate's setup exactly up to (not including) the skill Process
// loop. Returns the same typed errors as osu.Calculate for the
// suspicion/mode pre-conditions.
func NewOsu(b *beatmap.Beatmap, d *difficulty.Difficulty) (*Osu, error) {
	if err := beatmap.CheckMode(b, beatmap.ModeOsu); err != nil {
		return nil, err
	}

	if err := beatmap.CheckSuspicion(b); err != nil {
		return nil, err
	}

	attrs := d.Resolve()

	prepared := objects.PrepareOsu(b, attrs)

	n := d.PassedObjects(len(prepared.Objects))

	diffObjects := osu.BuildDifficultyObjects(prepared.Objects[:n], attrs.ClockRate, objects.NewScalingFactor(attrs.CS).Factor)

	return &Osu{
		diffObjects: diffObjects,
		attrs:       attrs,
		prepared:    prepared,
		withFlash:   d.Mods().Active(difficulty.Flashlight),
		aim:         osu.NewAim(),
		speed:       osu.NewSpeed(),
		flashlight:  osu.NewFlashlight(),
	}, nil
}

// Len returns the number of diff-objects not yet processed.
func (g *Osu) Len() int {
	return len(g.diffObjects) - g.idx
}

// Next processes the next diff-object and returns the attributes snapshot
// as of that object, or false once every diff-object has been consumed.
func (g *Osu) Next() (osu.Attributes, bool) {
	if g.idx >= len(g.diffObjects) {
		return osu.Attributes{}, false
	}

	obj := g.diffObjects[g.idx]
	g.idx++

	g.aim.Process(obj)
	g.speed.Process(obj)

	if g.withFlash {
		g.flashlight.Process(obj)
	}

	return osu.Finalize(g.aim, g.speed, g.flashlight, g.withFlash, g.attrs, g.prepared), true
}

// Nth skips n extra diff-objects (processing each) and then returns the
// snapshot as of the (n+1)th object from the current position.
func (g *Osu) Nth(n int) (osu.Attributes, bool) {
	for i := 0; i < n; i++ {
		if _, ok := g.Next(); !ok {
			return osu.Attributes{}, false
		}
	}

	return g.Next()
}
