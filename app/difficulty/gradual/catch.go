package gradual

import (
	"math"

	"github.com/wieku/danser-pp/app/beatmap"
	"github.com/wieku/danser-pp/app/beatmap/difficulty"
	"github.com/wieku/danser-pp/app/beatmap/objects"
	"github.com/wieku/danser-pp/app/difficulty/catch"
)

// Catch is the resumable Catch iterator (spec.md §4.H).
type Catch struct {
	diffObjects []catch.DifficultyObject

	attrs    difficulty.Attributes
	prepared *objects.PreparedCatch

	movement *catch.Movement

	idx int
}

// NewCatch prepares b for gradual Catch calculation, mirroring
// catch.Calculate's setup up to (not including) the skill Process loop.
// Returns the same typed errors as catch.Calculate for the
// suspicion/mode pre-conditions.
func NewCatch(b *beatmap.Beatmap, d *difficulty.Difficulty) (*Catch, error) {
	if err := beatmap.CheckMode(b, beatmap.ModeCatch); err != nil {
		return nil, err
	}

	if err := beatmap.CheckSuspicion(b); err != nil {
		return nil, err
	}

	attrs := d.Resolve()

	prepared := objects.PrepareCatch(b, attrs, d.Mods().Active(difficulty.HardRock))

	n := d.PassedObjects(len(prepared.Objects))

	halfCatcherWidth := objects.HalfCatcherWidth(attrs.CS) * (1 - math.Max(attrs.CS-5.5, 0)*0.0625)

	diffObjects := catch.BuildDifficultyObjects(prepared.Objects[:n], attrs.ClockRate, halfCatcherWidth)

	return &Catch{
		diffObjects: diffObjects,
		attrs:       attrs,
		prepared:    prepared,
		movement:    catch.NewMovement(),
	}, nil
}

// Len returns the number of diff-objects not yet processed.
func (g *Catch) Len() int {
	return len(g.diffObjects) - g.idx
}

// Next processes the next diff-object and returns the attributes snapshot
// as of that object, or false once every diff-object has been consumed.
func (g *Catch) Next() (catch.Attributes, bool) {
	if g.idx >= len(g.diffObjects) {
		return catch.Attributes{}, false
	}

	obj := g.diffObjects[g.idx]
	g.idx++

	g.movement.Process(obj)

	return catch.Finalize(g.movement, g.attrs, g.prepared), true
}

// Nth skips n extra diff-objects (processing each) and then returns the
// snapshot as of the (n+1)th object from the current position.
func (g *Catch) Nth(n int) (catch.Attributes, bool) {
	for i := 0; i < n; i++ {
		if _, ok := g.Next(); !ok {
			return catch.Attributes{}, false
		}
	}

	return g.Next()
}
