package objects

import (
	"math"

	"github.com/wieku/danser-pp/app/beatmap"
)

const (
	legacyTaikoVelocityMultiplier = 1.4
	osuBaseScoringDist            = 100.0
)

// ConvertTaiko rewrites a Standard beatmap's hit objects into taiko hits
// (spec.md §4.D): every circle becomes a hit (rim on whistle/clap, centre
// otherwise); every slider either survives as a drum-roll or is split into
// evenly spaced circles, depending on its scoring velocity against the
// drum-roll velocity computed from slider_mult/tick_rate. Grounded on
// original_source/src/beatmap/converts/taiko.rs.
//
// b is mutated in place; callers that need the original must clone first
// (spec.md §9, "mode conversion is destructive").
func ConvertTaiko(b *beatmap.Beatmap) {
	out := make([]*beatmap.HitObject, 0, len(b.HitObjects))
	sounds := make([]uint8, 0, len(b.Sounds))

	cursor := beatmap.NewTimingCursor(b)

	for i, h := range b.HitObjects {
		sound := b.Sounds[i]

		if !h.IsSlider() {
			out = append(out, h)
			sounds = append(sounds, sound)

			continue
		}

		cursor.AdvanceTo(h.StartTime)

		duration, tickSpacing, convert := shouldConvertSliderToHits(b, h, cursor)

		if !convert {
			out = append(out, h)
			sounds = append(sounds, sound)

			continue
		}

		count := 0

		for j := h.StartTime; j <= h.StartTime+duration+tickSpacing/8; j += tickSpacing {
			out = append(out, beatmap.NewCircle(h.Pos, j, sound, h.NewCombo && count == 0))
			count++

			if math.Abs(tickSpacing) <= 1e-7 {
				break
			}
		}

		for k := 0; k < count; k++ {
			sounds = append(sounds, sound)
		}
	}

	b.HitObjects = out
	b.Sounds = sounds
	b.OriginalMode = beatmap.ModeOsu
	b.Mode = beatmap.ModeTaiko
	b.Converted = true
	b.RefreshCounts()
}

// shouldConvertSliderToHits mirrors should_convert_slider_to_taiko_hits:
// a drum-roll converts to a circle stream when it would fit within two
// beats at the taiko scoring velocity and the tick spacing is positive.
func shouldConvertSliderToHits(b *beatmap.Beatmap, h *beatmap.HitObject, cursor *beatmap.TimingCursor) (duration, tickSpacing float64, convert bool) {
	curve := BuildCurve(h)

	spans := float64(h.Repeats + 1)
	dist := float64(curve.Length()) * spans * legacyTaikoVelocityMultiplier

	beatLen := cursor.BeatLen() / cursor.SpeedMultiplier()

	sliderScoringDist := osuBaseScoringDist * b.SliderMultiplier / b.TickRate
	taikoVel := sliderScoringDist * b.TickRate

	duration = math.Floor(dist / taikoVel * beatLen)

	osuVel := taikoVel * (1000.0 / beatLen)

	if b.Version >= 8 {
		beatLen = cursor.BeatLen()
	}

	tickSpacing = math.Min(beatLen/b.TickRate, duration/spans)

	convert = tickSpacing > 0 && dist/osuVel*1000 < 2*beatLen

	return duration, tickSpacing, convert
}
