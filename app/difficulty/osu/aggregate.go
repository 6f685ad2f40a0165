package osu

import (
	"math"

	"github.com/wieku/danser-pp/app/beatmap"
	"github.com/wieku/danser-pp/app/beatmap/difficulty"
	"github.com/wieku/danser-pp/app/beatmap/objects"
)

// starScalingFactor is the 0.0675 aggregation-level multiplier (spec.md
// §4.G), distinct from the skill-level 1.06 difficulty_multiplier baked
// into aim.go/flashlight.go's DifficultyValue — the two are different
// eras of the reference (osu/skills/traits.rs's DIFFICULTY_MULTIPLER vs
// osu_2019/stars.rs's sqrt(.)*0.0675) that spec.md's §4.F/§4.G text
// invokes as two separate stages, so both are applied here in sequence.
const starScalingFactor = 0.0675

// Calculate runs the full Standard pipeline (object prep, diff-objects,
// skills, aggregation) for one (beatmap, difficulty) pair, grounded on
// original_source/src/osu_2019/stars.rs's driving loop. It returns a typed
// error (spec.md §7) instead of a result if b fails the suspicion
// pre-conditions or isn't a native Standard map.
func Calculate(b *beatmap.Beatmap, d *difficulty.Difficulty) (Attributes, error) {
	if err := beatmap.CheckMode(b, beatmap.ModeOsu); err != nil {
		return Attributes{}, err
	}

	if err := beatmap.CheckSuspicion(b); err != nil {
		return Attributes{}, err
	}

	attrs := d.Resolve()

	prepared := objects.PrepareOsu(b, attrs)

	n := d.PassedObjects(len(prepared.Objects))

	diffObjects := BuildDifficultyObjects(prepared.Objects[:n], attrs.ClockRate, objects.NewScalingFactor(attrs.CS).Factor)

	aim := NewAim()
	speed := NewSpeed()
	flashlight := NewFlashlight()

	withFlashlight := d.Mods().Active(difficulty.Flashlight)

	for _, obj := range diffObjects {
		aim.Process(obj)
		speed.Process(obj)

		if withFlashlight {
			flashlight.Process(obj)
		}
	}

	return Finalize(aim, speed, flashlight, withFlashlight, attrs, prepared), nil
}

// Finalize converts skill states into an Attributes snapshot. Exported so
// the gradual iterator (app/difficulty/gradual) can reuse it mid-calculation
// against a partial object prefix (spec.md §4.H).
func Finalize(aim *Aim, speed *Speed, flashlight *Flashlight, withFlashlight bool, attrs difficulty.Attributes, prepared *objects.PreparedOsu) Attributes {
	aimStrain := math.Sqrt(aim.DifficultyValue()) * starScalingFactor
	speedStrain := math.Sqrt(speed.DifficultyValue()) * starScalingFactor

	stars := aimStrain + speedStrain + math.Abs(aimStrain-speedStrain)/2

	var flashlightRating float64

	if withFlashlight {
		flashlightRating = math.Sqrt(flashlight.DifficultyValue()) * starScalingFactor
		stars += flashlightRating * 0.4
	}

	return Attributes{
		Stars:            stars,
		AimStrain:        aimStrain,
		SpeedStrain:       speedStrain,
		FlashlightRating:  flashlightRating,
		ARRating:          attrs.AR,
		ODRating:          attrs.OD,
		HitWindows:        attrs.HitWindows,
		MaxCombo:          prepared.MaxCombo,
		NCircles:          prepared.NCircles,
		NSliders:          prepared.NSliders,
		NSpinners:         prepared.NSpinners,
	}
}
