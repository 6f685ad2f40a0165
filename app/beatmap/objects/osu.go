package objects

import (
	"math"

	"github.com/wieku/danser-pp/app/beatmap"
	"github.com/wieku/danser-pp/app/beatmap/difficulty"
	"github.com/wieku/danser-pp/framework/math/mutils"
	"github.com/wieku/danser-pp/framework/math/vector"
)

// legacyLastTickOffset nudges a slider's final combo-judgement vertex
// earlier than its mathematical end, matching the stable client's
// historical (and now frozen-in-place) slider-tail timing.
const legacyLastTickOffset = 36.0

// OsuObject is the prepared Standard-mode object spec.md §4.D describes:
// a circle/spinner/slider reduced to the three quantities the diff-object
// and skills actually need. HasTravelDist is false only for spinners.
type OsuObject struct {
	Time          float64
	Pos           vector.Pos2
	EndPos        vector.Pos2
	HasTravelDist bool
	TravelDist    float64
}

func (o OsuObject) IsSpinner() bool { return !o.HasTravelDist }

// PreparedOsu is the object-preparation output for one Standard-mode
// calculation: the prepared objects plus the counts and max combo the
// reference accumulates while walking them.
type PreparedOsu struct {
	Objects                       []OsuObject
	MaxCombo                      int
	NCircles, NSliders, NSpinners int
}

// PrepareOsu runs the full Standard object-preparation pipeline (spec.md
// §4.D): scaling-factor derivation, stacking, and per-slider lazy travel
// distance. Ported from
// original_source/src/osu/versions/no_leniency/osu_object.rs, generalized
// from its single-pass walk to operate over the shared beatmap/control-point
// model.
func PrepareOsu(b *beatmap.Beatmap, attrs difficulty.Attributes) *PreparedOsu {
	scale := NewScalingFactor(attrs.CS)

	ApplyStacking(b, attrs.HitWindows.AR, b.StackLeniency)

	cursor := beatmap.NewTimingCursor(b)
	prepared := &PreparedOsu{Objects: make([]OsuObject, 0, len(b.HitObjects))}

	for _, h := range b.HitObjects {
		prepared.MaxCombo++ // circle, slider head, or spinner

		switch h.Kind {
		case beatmap.KindCircle:
			prepared.NCircles++

			pos := stackedPos(h, scale)
			prepared.Objects = append(prepared.Objects, OsuObject{
				Time: h.StartTime, Pos: pos, EndPos: pos, HasTravelDist: true,
			})

		case beatmap.KindSlider:
			prepared.NSliders++
			prepared.Objects = append(prepared.Objects, prepareSlider(b, h, scale, cursor, prepared))

		case beatmap.KindSpinner:
			prepared.NSpinners++
			prepared.Objects = append(prepared.Objects, OsuObject{Time: h.StartTime, Pos: h.Pos, EndPos: h.Pos})
		}
	}

	return prepared
}

func stackedPos(h *beatmap.HitObject, scale ScalingFactorOf) vector.Pos2 {
	dx, dy := scale.StackOffset(float64(h.StackHeight))
	return vector.Pos2{X: h.Pos.X + float32(dx), Y: h.Pos.Y + float32(dy)}
}

// prepareSlider walks the curve the way a follow-circle of radius
// scale.Radius*3 trails the cursor: every tick, repeat and tail only
// advances the lazy endpoint (and accumulates travel distance) once the
// true curve position escapes the follow circle.
func prepareSlider(b *beatmap.Beatmap, h *beatmap.HitObject, scale ScalingFactorOf, cursor *beatmap.TimingCursor, prepared *PreparedOsu) OsuObject {
	cursor.AdvanceTo(h.StartTime)
	beatLen, speedMult := cursor.BeatLen(), cursor.SpeedMultiplier()

	headPos := stackedPos(h, scale)
	endPos := headPos
	travelDist := 0.0

	approxFollowCircleRadius := scale.Radius * 3.0

	tickDistance := 100.0 * b.SliderMultiplier / b.TickRate
	if b.Version >= 8 {
		tickDistance /= mutils.ClampF64(100.0/speedMult, 10, 1000) / 100.0
	}

	spans := h.Repeats + 1
	duration := SliderDuration(spans, beatLen, speedMult, b.SliderMultiplier, h.PixelLen)
	spanDuration := duration / float64(spans)

	curve := BuildCurve(h)

	computeVertex := func(time float64) {
		prepared.MaxCombo++

		progress := (time - h.StartTime) / spanDuration
		if math.Mod(progress, 2.0) >= 1.0 {
			progress = 1.0 - math.Mod(progress, 1.0)
		} else {
			progress = math.Mod(progress, 1.0)
		}

		currPos := curve.PointAt(float32(h.PixelLen * progress))

		diff := currPos.Sub(endPos)
		d := float64(diff.Length())

		if d > approxFollowCircleRadius {
			d -= approxFollowCircleRadius
			endPos = endPos.Add(diff.Normalize().Scale(float32(d)))
			travelDist += d
		}
	}

	var ticks []float64
	currentDistance := tickDistance
	timeAdd := duration * (tickDistance / (h.PixelLen * float64(spans)))
	target := h.PixelLen - tickDistance/8.0

	if currentDistance < target {
		for tickIdx := 1; ; tickIdx++ {
			t := h.StartTime + timeAdd*float64(tickIdx)
			computeVertex(t)
			ticks = append(ticks, t)
			currentDistance += tickDistance

			if currentDistance >= target {
				break
			}
		}
	}

	if spans > 1 {
		for repeatID := 1; repeatID < spans; repeatID++ {
			computeVertex(h.StartTime + spanDuration*float64(repeatID))

			if repeatID&1 == 1 {
				for i := len(ticks) - 1; i >= 0; i-- {
					computeVertex(ticks[i])
				}
			} else {
				for _, t := range ticks {
					computeVertex(t)
				}
			}
		}
	}

	finalSpanIdx := spans - 1
	finalSpanStartTime := h.StartTime + float64(finalSpanIdx)*spanDuration
	finalSpanEndTime := math.Max(h.StartTime+duration/2.0, finalSpanStartTime+spanDuration-legacyLastTickOffset)
	computeVertex(finalSpanEndTime)

	return OsuObject{Time: h.StartTime, Pos: headPos, EndPos: endPos, HasTravelDist: true, TravelDist: travelDist}
}
