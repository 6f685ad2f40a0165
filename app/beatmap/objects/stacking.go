package objects

import (
	"math"

	"github.com/wieku/danser-pp/app/beatmap"
)

// stackDistance is the position-equality threshold (in osu!pixels) the
// reference stacking algorithm uses to decide two objects "land on the
// same spot".
const stackDistance = 3.0

// ApplyStacking resolves each Standard-mode object's StackHeight in place,
// following the legacy stable algorithm: walk the object list back to
// front, growing a stack downward for consecutive circles landing on the
// same spot, and specially handling a slider whose end lands where a later
// circle starts. stackLeniency*preempt bounds how far back in time the
// walk looks. Spinners never participate and are skipped.
//
// objs must be sorted by StartTime (the beatmap.Beatmap invariant); ties in
// time are resolved implicitly since the walk is index-driven, not
// time-driven.
func ApplyStacking(b *beatmap.Beatmap, preempt, stackLeniency float64) {
	objs := b.HitObjects
	if len(objs) == 0 {
		return
	}

	for i := range objs {
		objs[i].StackHeight = 0
	}

	ends := sliderEndTimes(b)
	endPos := make(map[int][2]float32)

	curve := func(idx int) ([2]float32, bool) {
		h := objs[idx]
		if h.Kind != beatmap.KindSlider {
			return [2]float32{}, false
		}

		if p, ok := endPos[idx]; ok {
			return p, true
		}

		c := BuildCurve(h)
		pt := c.PointAt(float32(h.PixelLen))
		p := [2]float32{pt.X, pt.Y}
		endPos[idx] = p

		return p, true
	}

	objPos := func(idx int) [2]float32 {
		return [2]float32{objs[idx].Pos.X, objs[idx].Pos.Y}
	}

	dist := func(a, c [2]float32) float64 {
		dx, dy := float64(a[0]-c[0]), float64(a[1]-c[1])
		return math.Sqrt(dx*dx + dy*dy)
	}

	stackThreshold := preempt * stackLeniency

	for i := len(objs) - 1; i > 0; i-- {
		n := i
		ii := i // index currently tracked as "objectI" (may walk backward)

		if objs[i].Kind == beatmap.KindSpinner || objs[i].StackHeight != 0 {
			continue
		}

		switch objs[i].Kind {
		case beatmap.KindCircle:
			for {
				n--
				if n < 0 {
					break
				}

				objN := objs[n]
				if objN.Kind == beatmap.KindSpinner {
					continue
				}

				nEnd := objN.StartTime
				if e, ok := ends[n]; ok {
					nEnd = e
				}

				if objs[ii].StartTime-nEnd > stackThreshold {
					break
				}

				if objN.Kind == beatmap.KindSlider {
					if p, ok := curve(n); ok && dist(p, objPos(ii)) < stackDistance {
						offset := objs[ii].StackHeight - objN.StackHeight + 1

						for j := n + 1; j <= i; j++ {
							if ep, ok := endPos[n]; ok && dist(ep, objPos(j)) < stackDistance {
								objs[j].StackHeight = offset
							}
						}

						break
					}
				}

				if dist(objPos(n), objPos(ii)) < stackDistance {
					objN.StackHeight = objs[ii].StackHeight + 1
					ii = n
				}
			}
		case beatmap.KindSlider:
			for {
				n--
				if n < 0 {
					break
				}

				objN := objs[n]
				if objN.Kind == beatmap.KindSpinner {
					continue
				}

				if objs[ii].StartTime-objN.StartTime > stackThreshold {
					break
				}

				ref := objPos(n)
				if p, ok := curve(n); ok {
					ref = p
				}

				if dist(ref, objPos(ii)) < stackDistance {
					objN.StackHeight = objs[ii].StackHeight + 1
					ii = n
				}
			}
		}
	}
}

