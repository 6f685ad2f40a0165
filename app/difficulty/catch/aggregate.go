package catch

import (
	"math"

	"github.com/wieku/danser-pp/app/beatmap"
	"github.com/wieku/danser-pp/app/beatmap/difficulty"
	"github.com/wieku/danser-pp/app/beatmap/objects"
)

// starScalingFactor is spec.md §4.G's STAR_SCALING_FACTOR for Catch.
const starScalingFactor = 0.153

// Attributes is Catch's immutable difficulty bundle (spec.md §3/§4.G).
type Attributes struct {
	Stars float64

	AR float64

	MaxCombo                          int
	NFruits, NDroplets, NTinyDroplets int
}

// Calculate runs Catch's full pipeline: object preparation (with HR's
// position perturbation and hyperdash resolution), diff-objects and the
// Movement skill (spec.md §4.D-G). It returns a typed error (spec.md §7)
// instead of a result if b fails the suspicion pre-conditions or isn't
// native Catch or Standard-origin.
func Calculate(b *beatmap.Beatmap, d *difficulty.Difficulty) (Attributes, error) {
	if err := beatmap.CheckMode(b, beatmap.ModeCatch); err != nil {
		return Attributes{}, err
	}

	if err := beatmap.CheckSuspicion(b); err != nil {
		return Attributes{}, err
	}

	attrs := d.Resolve()

	prepared := objects.PrepareCatch(b, attrs, d.Mods().Active(difficulty.HardRock))

	n := d.PassedObjects(len(prepared.Objects))

	halfCatcherWidth := objects.HalfCatcherWidth(attrs.CS) * (1 - math.Max(attrs.CS-5.5, 0)*0.0625)

	diffObjects := BuildDifficultyObjects(prepared.Objects[:n], attrs.ClockRate, halfCatcherWidth)

	movement := NewMovement()

	for _, obj := range diffObjects {
		movement.Process(obj)
	}

	return Finalize(movement, attrs, prepared), nil
}

// Finalize converts the Movement skill's state into an Attributes snapshot.
// Exported so the gradual iterator (app/difficulty/gradual) can reuse it
// mid-calculation against a partial object prefix (spec.md §4.H).
func Finalize(movement *Movement, attrs difficulty.Attributes, prepared *objects.PreparedCatch) Attributes {
	return Attributes{
		Stars:         math.Sqrt(movement.DifficultyValue()) * starScalingFactor,
		AR:            attrs.AR,
		MaxCombo:      prepared.MaxCombo,
		NFruits:       prepared.NFruits,
		NDroplets:     prepared.NDroplets,
		NTinyDroplets: prepared.NTinyDroplets,
	}
}
