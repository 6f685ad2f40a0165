package objects

import "github.com/wieku/danser-pp/app/beatmap"

// SliderDuration is the reference's span-count/beat-length/velocity
// formula: total time to traverse every span of the slider once, given the
// timing state active at its start time. spans is repeats+1 (the HitObject
// model stores *additional* repeats, the reference stores span count).
func SliderDuration(spans int, beatLen, speedMultiplier, sliderMultiplier, pixelLen float64) float64 {
	return float64(spans) * beatLen * pixelLen / (sliderMultiplier * speedMultiplier) / 100
}

// sliderEndTimes walks the beatmap's control-point timeline forward once
// (matching its monotone advance_to contract) and returns each slider's
// resolved end time, keyed by its index into b.HitObjects. Non-slider
// indices are absent.
func sliderEndTimes(b *beatmap.Beatmap) map[int]float64 {
	ends := make(map[int]float64)

	cursor := beatmap.NewTimingCursor(b)

	for i, h := range b.HitObjects {
		if h.Kind != beatmap.KindSlider {
			continue
		}

		cursor.AdvanceTo(h.StartTime)

		spans := h.Repeats + 1
		duration := SliderDuration(spans, cursor.BeatLen(), cursor.SpeedMultiplier(), b.SliderMultiplier, h.PixelLen)

		ends[i] = h.StartTime + duration
	}

	return ends
}
