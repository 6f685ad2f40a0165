package taiko

import (
	"math"
	"sort"

	"github.com/wieku/danser-pp/app/beatmap"
	"github.com/wieku/danser-pp/app/beatmap/difficulty"
	"github.com/wieku/danser-pp/app/beatmap/objects"
)

const (
	// finalMultiplier is FINAL_MULTIPLIER from
	// original_source/src/taiko/difficulty/skills/peaks.rs: each peak weight
	// below is colorDifficultyMultiplier 0.375/0.2 *before* this factor, so
	// the 0.0625 spec.md §4.G states for the combined rating ("multiply by
	// 1.4 * 0.0625") is folded directly into the per-peak weights here,
	// matching peaks.rs's own ColorDifficultyValue/RhythmDifficultyValue/
	// StaminaDifficultyValue constants instead of applying it once at the
	// end.
	finalMultiplier = 0.0625

	colorPeakWeight   = 0.375 * finalMultiplier
	staminaPeakWeight = 0.375 * finalMultiplier
	rhythmPeakWeight  = 0.2 * finalMultiplier

	peakDecayWeight = 0.9

	starRescaleMultiplier = 1.4
)

// Attributes is Taiko's immutable difficulty bundle (spec.md §3/§4.G).
type Attributes struct {
	Stars    float64
	Color    float64
	Rhythm   float64
	Stamina  float64
	Peak     float64
	HitWindow float64
	MaxCombo int
}

// Calculate runs Taiko's full pipeline: Standard->Taiko conversion,
// diff-objects, the three skills, and aggregation (spec.md §4.G). It
// returns a typed error (spec.md §7) instead of a result if b fails the
// suspicion pre-conditions or isn't native Taiko or Standard-origin.
func Calculate(b *beatmap.Beatmap, d *difficulty.Difficulty) (Attributes, error) {
	if err := beatmap.CheckMode(b, beatmap.ModeTaiko); err != nil {
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
		objects.ConvertTaiko(&converted)
		d.SetConverted(true)
	}

	attrs := d.Resolve()

	n := d.PassedObjects(len(converted.HitObjects))

	diffObjects := BuildDifficultyObjects(converted.HitObjects[:n], converted.Sounds[:n], attrs.ClockRate)

	color := NewColor()
	rhythm := NewRhythm()
	stamina := NewStamina()

	maxCombo := 0
	if n > 0 && converted.HitObjects[0].IsCircle() {
		maxCombo++
	}
	if n > 1 && converted.HitObjects[1].IsCircle() {
		maxCombo++
	}

	for _, obj := range diffObjects {
		color.Process(obj)
		rhythm.Process(obj)
		stamina.Process(obj)

		if obj.Base.IsHit {
			maxCombo++
		}
	}

	return Finalize(color, rhythm, stamina, attrs, maxCombo), nil
}

// Finalize converts skill states into an Attributes snapshot. Exported so
// the gradual iterator (app/difficulty/gradual) can reuse it mid-calculation
// against a partial object prefix (spec.md §4.H).
func Finalize(color *Color, rhythm *Rhythm, stamina *Stamina, attrs difficulty.Attributes, maxCombo int) Attributes {
	colorPeaks := color.CurrSectionPeaks()
	rhythmPeaks := rhythm.CurrSectionPeaks()
	staminaPeaks := stamina.CurrSectionPeaks()

	n := len(colorPeaks)
	if len(rhythmPeaks) < n {
		n = len(rhythmPeaks)
	}
	if len(staminaPeaks) < n {
		n = len(staminaPeaks)
	}

	combined := make([]float64, 0, n)

	for i := 0; i < n; i++ {
		c := colorPeaks[i] * colorPeakWeight
		s := staminaPeaks[i] * staminaPeakWeight
		r := rhythmPeaks[i] * rhythmPeakWeight

		peak := norm(1.5, c, s)
		peak = norm(2.0, peak, r)

		if peak > 0 {
			combined = append(combined, peak)
		}
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(combined)))

	var combinedRating, colorRating, rhythmRating, staminaRating float64
	var weight float64 = 1

	for _, p := range combined {
		combinedRating += p * weight
		weight *= peakDecayWeight
	}

	colorRating = weightedSum(colorPeaks) * colorPeakWeight
	rhythmRating = weightedSum(rhythmPeaks) * rhythmPeakWeight
	staminaRating = weightedSum(staminaPeaks) * staminaPeakWeight

	stars := rescale(combinedRating * starRescaleMultiplier)

	return Attributes{
		Stars:     stars,
		Color:     colorRating,
		Rhythm:    rhythmRating,
		Stamina:   staminaRating,
		Peak:      combinedRating,
		HitWindow: attrs.HitWindows.OD,
		MaxCombo:  maxCombo,
	}
}

func weightedSum(peaks []float64) float64 {
	sorted := append([]float64(nil), peaks...)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))

	var sum, weight float64 = 0, 1

	for _, p := range sorted {
		sum += p * weight
		weight *= peakDecayWeight
	}

	return sum
}

// norm is the p-norm helper spec.md §4.G names directly.
func norm(p float64, values ...float64) float64 {
	var sum float64

	for _, v := range values {
		sum += math.Pow(v, p)
	}

	return math.Pow(sum, 1/p)
}

// rescale is the `10.43 * ln(x/8 + 1)` tail applied to positive combined
// ratings (spec.md §4.G).
func rescale(x float64) float64 {
	if x < 0 {
		return x
	}

	return 10.43 * math.Log(x/8+1)
}
