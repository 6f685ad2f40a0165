package objects

import (
	"math"

	"github.com/wieku/danser-pp/app/beatmap"
	"github.com/wieku/danser-pp/app/beatmap/difficulty"
)

const catchPlayfieldWidth = 512.0

// CatchObject is a palpable catch object: a fruit or a droplet. Tiny
// droplets never need a position (they don't affect catcher movement, see
// PreparedCatch's NTinyDroplets) so they aren't represented here.
type CatchObject struct {
	Pos  float64
	Time float64

	HyperDash bool
	HyperDist float64
}

// PreparedCatch is Catch's object-preparation output (spec.md §4.D):
// Objects holds only fruits and droplets in time order, since the movement
// skill never needs a tiny droplet's position.
type PreparedCatch struct {
	Objects                           []CatchObject
	NFruits, NDroplets, NTinyDroplets int
	MaxCombo                          int
}

// PrepareCatch converts every circle to a fruit and every slider to a
// fruit/droplet/tiny-droplet stream, applies HR's position perturbation
// (with_hr) and resolves each object's hyperdash distance. Grounded on
// original_source/src/fruits/catch_object.rs (with_hr, init_hyper_dash) and
// .../juice_stream.rs's tick/tiny-droplet event generation (the `fruits`
// package never carried its own copy of that file; the `catch` package's
// JuiceStream is the only retrieved source for the curve-walking algorithm,
// reused here against the simpler fruits/ object model).
func PrepareCatch(b *beatmap.Beatmap, attrs difficulty.Attributes, hardRock bool) *PreparedCatch {
	prepared := &PreparedCatch{Objects: make([]CatchObject, 0, len(b.HitObjects))}

	cursor := beatmap.NewTimingCursor(b)

	hr := hrState{}

	addObject := func(x, t float64, isDroplet bool) {
		x = math.Max(0, math.Min(catchPlayfieldWidth, x))

		if hardRock {
			x = hr.apply(x, t)
		}

		if isDroplet {
			prepared.NDroplets++
		} else {
			prepared.NFruits++
		}

		prepared.Objects = append(prepared.Objects, CatchObject{Pos: x, Time: t})
	}

	var lastEventTime float64
	haveLastEvent := false

	emit := func(x, t float64, isDroplet bool) {
		if haveLastEvent {
			sinceLast := t - lastEventTime
			if sinceLast > 80 {
				prepared.NTinyDroplets += countTinyDroplets(sinceLast)
			}
		}

		lastEventTime = t
		haveLastEvent = true

		addObject(x, t, isDroplet)
	}

	for _, h := range b.HitObjects {
		// tiny droplets only fill gaps inside one juice stream.
		haveLastEvent = false

		switch h.Kind {
		case beatmap.KindCircle:
			emit(float64(h.Pos.X), h.StartTime, false)

		case beatmap.KindSlider:
			cursor.AdvanceTo(h.StartTime)
			walkCatchSlider(b, h, cursor, emit)

		case beatmap.KindSpinner:
			// spinners emit no palpable catch object.
		}
	}

	resolveHyperDashes(prepared.Objects, attrs.CS)

	prepared.MaxCombo = prepared.NFruits + prepared.NDroplets

	return prepared
}

// countTinyDroplets reproduces juice_stream.rs's halving spacing rule: the
// gap between two consecutive real events is filled with tiny droplets
// spaced at sinceLast/2^k ms apart, for the smallest k keeping that spacing
// at or below 100ms.
func countTinyDroplets(sinceLast float64) int {
	step := sinceLast
	for step > 100 {
		step /= 2
	}

	count := 0
	for t := step; t < sinceLast; t += step {
		count++
	}

	return count
}

// walkCatchSlider reproduces JuiceStream's event generation: a head event,
// then ticks spaced tickDist apart within every span (direction alternating
// on odd spans, bouncing the same way the Standard follow-point does), and
// a repeat/tail event at every span boundary. emit is called once per
// non-tiny event in ascending time order.
func walkCatchSlider(b *beatmap.Beatmap, h *beatmap.HitObject, cursor *beatmap.TimingCursor, emit func(x, t float64, isDroplet bool)) {
	beatLen := cursor.BeatLen()
	speedMult := cursor.SpeedMultiplier()

	curve := BuildCurve(h)
	pixelLen := float64(curve.Length())
	if pixelLen <= 0 {
		pixelLen = h.PixelLen
	}

	velocity := 100.0 * b.SliderMultiplier / beatLen * speedMult
	tickDist := 100.0 * b.SliderMultiplier / b.TickRate * speedMult

	spans := h.Repeats + 1
	duration := float64(spans) * pixelLen / velocity
	spanDuration := duration / float64(spans)

	posAt := func(progress float64) float64 {
		return float64(curve.PointAt(float32(progress * pixelLen)).X)
	}

	emit(posAt(0), h.StartTime, false)

	var tickOffsets []float64
	if tickDist > 0 {
		target := pixelLen - tickDist/8.0

		for dist := tickDist; dist < target; dist += tickDist {
			tickOffsets = append(tickOffsets, dist/pixelLen)
		}
	}

	for span := 0; span < spans; span++ {
		spanStart := h.StartTime + float64(span)*spanDuration
		reverse := span%2 == 1

		for i := range tickOffsets {
			off := tickOffsets[i]
			if reverse {
				off = tickOffsets[len(tickOffsets)-1-i]
			}

			timeFrac := off
			if reverse {
				timeFrac = 1 - off
			}

			emit(posAt(off), spanStart+timeFrac*spanDuration, true)
		}

		endProgress := 0.0
		if !reverse {
			endProgress = 1
		}

		emit(posAt(endProgress), spanStart+spanDuration, false)
	}
}

// hrState is catch_object.rs's with_hr rule, threaded across the whole
// object stream (not reset per hit object). A negligible position delta
// leaves last_pos/last_time untouched, matching the reference exactly.
type hrState struct {
	has      bool
	lastPos  float64
	lastTime float64
}

func (s *hrState) apply(pos, t float64) float64 {
	offsetPos := pos
	timeDiff := t - s.lastTime

	if s.has && timeDiff <= 1000 {
		posDiff := offsetPos - s.lastPos

		if math.Abs(posDiff) > 1e-9 {
			if math.Abs(posDiff) < math.Floor(timeDiff/3.0) {
				switch {
				case posDiff > 0:
					if offsetPos+posDiff < catchPlayfieldWidth {
						offsetPos += posDiff
					}
				case offsetPos+posDiff > 0:
					offsetPos += posDiff
				}
			}

			s.lastPos = offsetPos
			s.lastTime = t
		}
	} else {
		s.lastPos = offsetPos
		s.lastTime = t
		s.has = true
	}

	return offsetPos
}

// allowedCatchRange is the stable-client fudge factor the legacy catcher
// hitbox used (public osu! game-mechanic knowledge — the pack never
// retrieved the constant's definition, the same gap HalfCatcherWidth
// documents).
const allowedCatchRange = 0.8

// resolveHyperDashes threads init_hyper_dash's last_direction/last_excess
// state across the full fruit+droplet stream (catch_object.rs).
func resolveHyperDashes(objs []CatchObject, cs float64) {
	halfCatcherWidth := HalfCatcherWidth(cs) / allowedCatchRange

	lastDirection := 0
	lastExcess := halfCatcherWidth

	for i := 0; i < len(objs)-1; i++ {
		curr := &objs[i]
		next := &objs[i+1]

		thisDirection := -1
		if next.Pos > curr.Pos {
			thisDirection = 1
		}

		timeToNext := next.Time - curr.Time - 1000.0/60.0/4.0

		sub := halfCatcherWidth
		if lastDirection == thisDirection {
			sub = lastExcess
		}

		distToNext := math.Abs(next.Pos-curr.Pos) - sub
		hyperDist := timeToNext - distToNext

		if hyperDist < 0 {
			curr.HyperDash = true
			lastExcess = halfCatcherWidth
		} else {
			curr.HyperDist = hyperDist
			lastExcess = math.Max(0, math.Min(halfCatcherWidth, hyperDist))
		}

		lastDirection = thisDirection
	}
}
