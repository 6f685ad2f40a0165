package gradual

import (
	"github.com/wieku/danser-pp/app/beatmap"
	"github.com/wieku/danser-pp/app/beatmap/difficulty"
	"github.com/wieku/danser-pp/app/beatmap/objects"
	"github.com/wieku/danser-pp/app/difficulty/mania"
)

// Mania is the resumable Mania iterator (spec.md §4.H).
type Mania struct {
	diffObjects []mania.DifficultyObject

	attrs difficulty.Attributes

	strain *mania.Strain

	maxCombo int
	idx      int
}

// NewMania prepares b for gradual Mania calculation, mirroring
// mania.Calculate's setup (including Standard->Mania conversion when
// needed) up to (not including) the skill Process loop. Returns the same
// typed errors as mania.Calculate for the suspicion/mode pre-conditions.
func NewMania(b *beatmap.Beatmap, d *difficulty.Difficulty) (*Mania, error) {
	if err := beatmap.CheckMode(b, beatmap.ModeMania); err != nil {
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
		objects.ConvertMania(&converted)
		d.SetConverted(true)
	}

	attrs := d.Resolve()

	n := d.PassedObjects(len(converted.HitObjects))

	diffObjects := mania.BuildDifficultyObjects(converted.HitObjects[:n], attrs.ClockRate)

	columnCount := int(attrs.CS)
	if columnCount < 1 {
		columnCount = 1
	}

	// The first object has no diff-object but still counts toward combo,
	// as in mania.Calculate.
	maxCombo := 0
	if n > 0 {
		maxCombo = 1
	}

	return &Mania{
		diffObjects: diffObjects,
		attrs:       attrs,
		strain:      mania.NewStrain(columnCount),
		maxCombo:    maxCombo,
	}, nil
}

// Len returns the number of diff-objects not yet processed.
func (g *Mania) Len() int {
	return len(g.diffObjects) - g.idx
}

// Next processes the next diff-object and returns the attributes snapshot
// as of that object, or false once every diff-object has been consumed.
func (g *Mania) Next() (mania.Attributes, bool) {
	if g.idx >= len(g.diffObjects) {
		return mania.Attributes{}, false
	}

	obj := g.diffObjects[g.idx]
	g.idx++
	g.maxCombo++

	g.strain.Process(obj)

	return mania.Finalize(g.strain, g.attrs, g.maxCombo), true
}

// Nth skips n extra diff-objects (processing each) and then returns the
// snapshot as of the (n+1)th object from the current position.
func (g *Mania) Nth(n int) (mania.Attributes, bool) {
	for i := 0; i < n; i++ {
		if _, ok := g.Next(); !ok {
			return mania.Attributes{}, false
		}
	}

	return g.Next()
}
