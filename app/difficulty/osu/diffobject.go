// Package osu implements the Standard-mode diff-objects, skills and star
// rating aggregation (spec.md §4.E-G). Ported from
// original_source/src/osu/versions/all_included/difficulty_object.rs,
// generalized to the shared beatmap/objects model.
package osu

import (
	"math"

	"github.com/wieku/danser-pp/app/beatmap/objects"
)

// strainTimeFloor is the minimum strain_time Standard clamps delta_time to,
// preventing simultaneous objects from breaking the difficulty math.
const strainTimeFloor = 25.0

// DifficultyObject is the adjacency view spec.md §3/§4.E describes: it
// borrows object i, i-1 and (where available) i-2's lazy end position.
type DifficultyObject struct {
	Idx  int
	Obj  *objects.OsuObject
	Prev *objects.OsuObject

	StartTime  float64
	DeltaTime  float64
	StrainTime float64

	JumpDist   float64
	TravelDist float64
	HasAngle   bool
	Angle      float64

	// HasPrevEdge, PrevJumpDist and PrevStrainTime describe the edge
	// i-2->i-1, needed only by Aim's angle bonus (spec.md §4.F).
	HasPrevEdge   bool
	PrevJumpDist  float64
	PrevStrainTime float64
}

// BuildDifficultyObjects pairs up consecutive prepared objects into the
// adjacency views the skills consume, clock-rate-adjusting every timestamp
// up front so skills never touch raw map time.
func BuildDifficultyObjects(prepared []objects.OsuObject, clockRate, scalingFactor float64) []DifficultyObject {
	if len(prepared) < 2 {
		return nil
	}

	out := make([]DifficultyObject, 0, len(prepared)-1)

	for i := 1; i < len(prepared); i++ {
		curr, prev := &prepared[i], &prepared[i-1]

		var prevPrev *objects.OsuObject
		if i >= 2 {
			prevPrev = &prepared[i-2]
		}

		d := newDifficultyObject(i-1, curr, prev, prevPrev, clockRate, scalingFactor)

		if len(out) > 0 {
			last := out[len(out)-1]
			d.HasPrevEdge = true
			d.PrevJumpDist = last.JumpDist
			d.PrevStrainTime = last.StrainTime
		}

		out = append(out, d)
	}

	return out
}

func newDifficultyObject(idx int, curr, prev, prevPrev *objects.OsuObject, clockRate, scalingFactor float64) DifficultyObject {
	delta := (curr.Time - prev.Time) / clockRate
	strainTime := math.Max(delta, strainTimeFloor)

	d := DifficultyObject{
		Idx:        idx,
		Obj:        curr,
		Prev:       prev,
		StartTime:  curr.Time / clockRate,
		DeltaTime:  delta,
		StrainTime: strainTime,
		TravelDist: travelDistOf(prev),
	}

	if curr.IsSpinner() || prev.IsSpinner() {
		return d
	}

	diff := curr.Pos.Sub(prev.EndPos).Scale(float32(scalingFactor))
	d.JumpDist = float64(diff.Length())

	if prevPrev != nil && !prevPrev.IsSpinner() {
		v1 := prevPrev.EndPos.Sub(prev.Pos)
		v2 := curr.Pos.Sub(prev.EndPos)

		dot := v1.Dot(v2)
		det := v1.X*v2.Y - v1.Y*v2.X

		d.Angle = math.Abs(math.Atan2(float64(det), float64(dot)))
		d.HasAngle = true
	}

	return d
}

func travelDistOf(o *objects.OsuObject) float64 {
	if !o.HasTravelDist {
		return 0
	}

	return o.TravelDist
}
