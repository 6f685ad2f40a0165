// Package curves evaluates the four slider-path primitives (linear,
// sampled Bezier, sampled Catmull, circular arc) and the multi-segment
// slider path they compose into. Ported from the reference
// implementation's curve evaluator; kept free of any beatmap/mode
// knowledge so it can be reused by every ruleset's object preparation.
package curves

import (
	"math"

	"github.com/wieku/danser-pp/framework/math/mutils"
	"github.com/wieku/danser-pp/framework/math/vector"
)

// SliderQuality mirrors the reference sampling density: Bezier segments are
// stepped at 0.25/SliderQuality/n and Catmull segments at 2.5/SliderQuality.
const SliderQuality = 50.0

// Curve is a single path segment, evaluated by arc-length distance from its
// start.
type Curve interface {
	PointAt(dist float32) vector.Pos2
	// Length is the total arc length of the segment (for polyline curves;
	// circular arcs report their arc length too).
	Length() float32
}

// linearCurve is a straight segment between two points.
type linearCurve struct {
	a, b vector.Pos2
	len  float32
}

func NewLinear(a, b vector.Pos2) Curve {
	return &linearCurve{a: a, b: b, len: a.Dst(b)}
}

func (c *linearCurve) Length() float32 { return c.len }

func (c *linearCurve) PointAt(dist float32) vector.Pos2 {
	return pointOnLine(c.a, c.b, dist)
}

// pointOnLine walks `len` units from p1 towards p2; degenerate (coincident)
// endpoints collapse to p1 rather than dividing by zero.
func pointOnLine(p1, p2 vector.Pos2, length float32) vector.Pos2 {
	fullLen := p1.Dst(p2)
	n := fullLen - length

	if float32(math.Abs(float64(fullLen))) < 1e-6 {
		fullLen = 1
	}

	return p1.Scale(n).Add(p2.Scale(length)).Div(fullLen)
}

// polylineCurve is a pre-sampled sequence of points (Bezier or Catmull
// output), walked by cumulative arc length.
type polylineCurve struct {
	points []vector.Pos2
	len    float32
}

func newPolyline(points []vector.Pos2) *polylineCurve {
	return &polylineCurve{points: points, len: distanceFromPoints(points)}
}

func (c *polylineCurve) Length() float32 { return c.len }

func (c *polylineCurve) PointAt(dist float32) vector.Pos2 {
	return pointAtDistance(c.points, dist)
}

func distanceFromPoints(pts []vector.Pos2) float32 {
	var sum float32

	for i := 1; i < len(pts); i++ {
		sum += pts[i].Dst(pts[i-1])
	}

	return sum
}

func pointAtDistance(arr []vector.Pos2, distance float32) vector.Pos2 {
	if len(arr) < 2 {
		return vector.Pos2{}
	}

	if float32(math.Abs(float64(distance))) < 1e-6 {
		return arr[0]
	}

	if distanceFromPoints(arr) <= distance {
		return arr[len(arr)-1]
	}

	i := 0
	var currentDistance, newDistance float32

	for i < len(arr)-2 {
		newDistance = arr[i].Sub(arr[i+1]).Length()
		currentDistance += newDistance

		if distance <= currentDistance {
			break
		}

		i++
	}

	currentDistance -= newDistance

	if float32(math.Abs(float64(distance-currentDistance))) <= 1e-6 {
		return arr[i]
	}

	angle := angleFromPoints(arr[i], arr[i+1])
	cart := cartFromPolar(distance-currentDistance, angle)

	sign := float32(-1)
	if arr[i].X <= arr[i+1].X {
		sign = 1
	}

	return arr[i].Add(cart.Scale(sign))
}

func angleFromPoints(p0, p1 vector.Pos2) float32 {
	return float32(math.Atan2(float64(p1.Y-p0.Y), float64(p1.X-p0.X)))
}

func cartFromPolar(r, t float32) vector.Pos2 {
	return vector.Pos2{
		X: r * float32(math.Cos(float64(t))),
		Y: r * float32(math.Sin(float64(t))),
	}
}

// NewBezier builds a sampled Bezier curve from its control points,
// splitting on repeated ("red") points into independent sub-curves the
// way the editor's path renderer does.
func NewBezier(points []vector.Pos2) Curve {
	if len(points) == 1 {
		return newPolyline([]vector.Pos2{points[0], points[0]})
	}

	var result []vector.Pos2

	start, end := 0, 0

	for i := 0; i < len(points)-1; i++ {
		if end-start > 1 && points[i] == points[end-1] {
			result = appendBezierSegment(result, points[start:end])
			start = end
		}

		end++
	}

	result = appendBezierSegment(result, points[start:end+1])

	return newPolyline(result)
}

func appendBezierSegment(result []vector.Pos2, points []vector.Pos2) []vector.Pos2 {
	n := len(points) - 1
	step := 0.25 / SliderQuality / float32(len(points))

	for t := float32(0); t < 1+step; t += step {
		var point vector.Pos2

		for p := 0; p <= n; p++ {
			factor := mutils.Cpn(p, n) *
				float32(math.Pow(float64(1-t), float64(n-p))) *
				float32(math.Pow(float64(t), float64(p)))

			point = point.Add(points[p].Scale(factor))
		}

		result = append(result, point)
	}

	return result
}

// NewCatmull builds a sampled Catmull-Rom curve through its control points.
func NewCatmull(points []vector.Pos2) Curve {
	if len(points) == 1 {
		return newPolyline([]vector.Pos2{points[0], points[0]})
	}

	order := len(points)
	step := float32(2.5 / SliderQuality)
	target := step + 1

	var result []vector.Pos2

	for x := 0; x < order-1; x++ {
		for t := float32(0); t < target; t += step {
			v1 := points[x]
			if x >= 1 {
				v1 = points[x-1]
			}

			v2 := points[x]

			v3 := v2
			if x+1 < order {
				v3 = points[x+1]
			} else {
				v3 = v2.AddScaled(v2.AddScaled(v1, -1), 1)
			}

			v4 := v3
			if x+2 < order {
				v4 = points[x+2]
			} else {
				v4 = v3.AddScaled(v3.AddScaled(v2, -1), 1)
			}

			result = append(result, catmullPoint(v1, v2, v3, v4, t))
		}
	}

	return newPolyline(result)
}

func catmullPoint(p0, p1, p2, p3 vector.Pos2, t float32) vector.Pos2 {
	return vector.Pos2{
		X: mutils.Catmull(p0.X, p1.X, p2.X, p3.X, t),
		Y: mutils.Catmull(p0.Y, p1.Y, p2.Y, p3.Y, t),
	}
}

// perfectCurve is a circular arc through exactly three points.
type perfectCurve struct {
	origin       vector.Pos2
	cx, cy       float32
	radius       float32
	arcLen       float32
}

// NewPerfect builds a circular-arc curve through three points. When the
// points don't form a valid circle (collinear, coincident, or simply not
// exactly three points) it silently falls back to a sampled Bezier through
// the same points — a degenerate PerfectCurve is far more likely to be bad
// input than an intentional 2-point "linear" encoding, and the parser is
// responsible for normalizing that case before it reaches here.
func NewPerfect(points []vector.Pos2) Curve {
	if len(points) != 3 {
		return NewBezier(points)
	}

	cx, cy, radius := circumCircle(points[0], points[1], points[2])

	if radius == 0 || math.IsNaN(float64(radius)) || math.IsInf(float64(radius), 0) {
		return NewBezier(points)
	}

	sign := float32(-1)
	if !isLeft(points[0], points[1], points[2]) {
		sign = 1
	}

	radius *= sign

	// The arc runs from points[0] through points[1] to points[2] in the
	// rotation direction given by radius's sign; its length is the swept
	// angle times the radius.
	a0 := math.Atan2(float64(points[0].Y-cy), float64(points[0].X-cx))
	a2 := math.Atan2(float64(points[2].Y-cy), float64(points[2].X-cx))

	sweep := math.Mod(float64(sign)*(a2-a0), 2*math.Pi)
	if sweep < 0 {
		sweep += 2 * math.Pi
	}

	return &perfectCurve{origin: points[0], cx: cx, cy: cy, radius: radius, arcLen: float32(sweep * math.Abs(float64(radius)))}
}

func circumCircle(p0, p1, p2 vector.Pos2) (cx, cy, radius float32) {
	d := 2 * (p0.X*(p1.Y-p2.Y) + p1.X*(p2.Y-p0.Y) + p2.X*(p0.Y-p1.Y))

	sq := func(p vector.Pos2) float32 { return p.X*p.X + p.Y*p.Y }

	p0sq, p1sq, p2sq := sq(p0), sq(p1), sq(p2)

	ux := (p0sq*(p1.Y-p2.Y) + p1sq*(p2.Y-p0.Y) + p2sq*(p0.Y-p1.Y)) / d
	uy := (p0sq*(p2.X-p1.X) + p1sq*(p0.X-p2.X) + p2sq*(p1.X-p0.X)) / d

	px, py := ux-p0.X, uy-p0.Y
	r := float32(math.Sqrt(float64(px*px + py*py)))

	return ux, uy, r
}

func isLeft(p0, p1, p2 vector.Pos2) bool {
	return ((p1.X-p0.X)*(p2.Y-p0.Y) - (p1.Y-p0.Y)*(p2.X-p0.X)) < 0
}

func (c *perfectCurve) Length() float32 { return c.arcLen }

func (c *perfectCurve) PointAt(dist float32) vector.Pos2 {
	return rotate(c.cx, c.cy, c.origin, float64(dist/c.radius))
}

func rotate(cx, cy float32, p vector.Pos2, radians float64) vector.Pos2 {
	cos := float32(math.Cos(radians))
	sin := float32(math.Sin(radians))

	return vector.Pos2{
		X: cos*(p.X-cx) - sin*(p.Y-cy) + cx,
		Y: sin*(p.X-cx) + cos*(p.Y-cy) + cy,
	}
}
