package objects

import (
	"github.com/wieku/danser-pp/app/beatmap"
	"github.com/wieku/danser-pp/framework/math/curves"
	"github.com/wieku/danser-pp/framework/math/vector"
)

// BuildCurve resolves a slider's path type from its first control point
// (falling back to Linear) with the two validity corrections the reference
// applies before building the curve: a PerfectCurve with more than three
// points degrades to Bezier, and any exactly-two-point path is Linear
// regardless of its stated type. The whole control-point list is handed to
// one curve builder — only Bezier splits internally on repeated points,
// matching how the stable editor authors multi-segment Bezier sliders.
func BuildCurve(h *beatmap.HitObject) curves.Curve {
	points := make([]vector.Pos2, len(h.ControlPoints))
	for i, cp := range h.ControlPoints {
		points[i] = cp.Pos
	}

	pathType := beatmap.PathLinear
	if h.ControlPoints[0].Kind != nil {
		pathType = *h.ControlPoints[0].Kind
	}

	switch {
	case pathType == beatmap.PathPerfectCurve && len(points) > 3:
		pathType = beatmap.PathBezier
	case len(points) == 2:
		pathType = beatmap.PathLinear
	}

	switch pathType {
	case beatmap.PathLinear:
		return curves.NewLinear(points[0], points[1])
	case beatmap.PathCatmull:
		return curves.NewCatmull(points)
	case beatmap.PathPerfectCurve:
		return curves.NewPerfect(points)
	default:
		return curves.NewBezier(points)
	}
}
