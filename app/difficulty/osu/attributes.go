package osu

import "github.com/wieku/danser-pp/app/beatmap/difficulty"

// Attributes is Standard's immutable difficulty bundle (spec.md §3/§4.G).
type Attributes struct {
	Stars            float64
	AimStrain        float64
	SpeedStrain      float64
	FlashlightRating float64

	ARRating float64
	ODRating float64

	HitWindows difficulty.HitWindows

	MaxCombo  int
	NCircles  int
	NSliders  int
	NSpinners int
}
