package mania

import (
	"github.com/wieku/danser-pp/app/beatmap"
	"github.com/wieku/danser-pp/app/beatmap/difficulty"
	"github.com/wieku/danser-pp/app/beatmap/objects"
)

// starScalingFactor is spec.md §4.G's Mania multiplier.
const starScalingFactor = 0.018

// Attributes is Mania's immutable difficulty bundle (spec.md §3/§4.G).
type Attributes struct {
	Stars     float64
	HitWindow float64
	MaxCombo  int
}

// Calculate runs Mania's full pipeline: Standard->Mania conversion (when
// needed), diff-objects and the Strain skill (spec.md §4.D-G). It returns
// a typed error (spec.md §7) instead of a result if b fails the suspicion
// pre-conditions or isn't native Mania or Standard-origin.
func Calculate(b *beatmap.Beatmap, d *difficulty.Difficulty) (Attributes, error) {
	if err := beatmap.CheckMode(b, beatmap.ModeMania); err != nil {
		return Attributes{}, err
	}

	if err := beatmap.CheckSuspicion(b); err != nil {
		return Attributes{}, err
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

	diffObjects := BuildDifficultyObjects(converted.HitObjects[:n], attrs.ClockRate)

	columnCount := int(attrs.CS)
	if columnCount < 1 {
		columnCount = 1
	}

	strain := NewStrain(columnCount)

	for _, obj := range diffObjects {
		strain.Process(obj)
	}

	return Finalize(strain, attrs, len(converted.HitObjects[:n])), nil
}

// Finalize converts the Strain skill's state into an Attributes snapshot.
// Exported so the gradual iterator (app/difficulty/gradual) can reuse it
// mid-calculation against a partial object prefix (spec.md §4.H).
func Finalize(strain *Strain, attrs difficulty.Attributes, maxCombo int) Attributes {
	return Attributes{
		Stars:     strain.DifficultyValue() * starScalingFactor,
		HitWindow: attrs.HitWindows.OD,
		MaxCombo:  maxCombo,
	}
}
