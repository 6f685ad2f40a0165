// Package beatmap holds the read-only beatmap model (§3 of the spec):
// hit objects, control points and the resolved per-map metadata every
// ruleset's object preparation consumes.
package beatmap

import "github.com/wieku/danser-pp/framework/math/vector"

// PathType names a slider path segment's interpolation kind.
type PathType int

const (
	PathLinear PathType = iota
	PathBezier
	PathCatmull
	PathPerfectCurve
)

// PathControlPoint is one vertex of a slider's path. Kind is non-nil only
// at a segment boundary (explicit type change); a repeated point position
// is the other, implicit way to mark a boundary.
type PathControlPoint struct {
	Pos  vector.Pos2
	Kind *PathType
}

// HitObjectKind tags which concrete hit object a HitObject wraps.
type HitObjectKind int

const (
	KindCircle HitObjectKind = iota
	KindSlider
	KindSpinner
	KindHold // mania-only, produced by conversion
)

// HitObject is the tagged variant described in spec.md §3. Only the fields
// relevant to its Kind are meaningful.
type HitObject struct {
	Pos       vector.Pos2
	StartTime float64
	Kind      HitObjectKind
	Sound     uint8
	NewCombo  bool

	// Slider fields.
	PixelLen       float64
	Repeats        int
	ControlPoints  []PathControlPoint
	EdgeSounds     []uint8

	// Spinner/Hold fields.
	endTime float64

	// Column is set by mania conversion/parsing; meaningless elsewhere.
	Column int

	// StackHeight is resolved by Standard object preparation's stacking
	// pass (spec.md §4.D); zero until then, and meaningless outside
	// Standard.
	StackHeight int
}

// EndTime returns StartTime for circles and sliders (sliders compute their
// own duration during object preparation, since it depends on slider
// velocity) and the explicit field for spinners/holds.
func (h *HitObject) EndTime() float64 {
	switch h.Kind {
	case KindSpinner, KindHold:
		return h.endTime
	default:
		return h.StartTime
	}
}

// SetEndTime is used by spinner/hold construction and, separately, by a
// prepared slider once its duration has been computed.
func (h *HitObject) SetEndTime(t float64) {
	h.endTime = t
}

func (h *HitObject) IsCircle() bool  { return h.Kind == KindCircle }
func (h *HitObject) IsSlider() bool  { return h.Kind == KindSlider }
func (h *HitObject) IsSpinner() bool { return h.Kind == KindSpinner }
func (h *HitObject) IsHold() bool    { return h.Kind == KindHold }

// NewCircle builds a circle hit object.
func NewCircle(pos vector.Pos2, startTime float64, sound uint8, newCombo bool) *HitObject {
	return &HitObject{Pos: pos, StartTime: startTime, Kind: KindCircle, Sound: sound, NewCombo: newCombo}
}

// NewSpinner builds a spinner hit object.
func NewSpinner(startTime, endTime float64, sound uint8, newCombo bool) *HitObject {
	return &HitObject{
		Pos:       vector.Pos2{X: 256, Y: 192},
		StartTime: startTime,
		Kind:      KindSpinner,
		Sound:     sound,
		NewCombo:  newCombo,
		endTime:   endTime,
	}
}

// NewSlider builds a slider hit object. Repeats counts additional passes
// beyond the first (so repeats==0 is a single-pass slider).
func NewSlider(pos vector.Pos2, startTime, pixelLen float64, repeats int, controlPoints []PathControlPoint, edgeSounds []uint8, sound uint8, newCombo bool) *HitObject {
	return &HitObject{
		Pos:           pos,
		StartTime:     startTime,
		Kind:          KindSlider,
		Sound:         sound,
		NewCombo:      newCombo,
		PixelLen:      pixelLen,
		Repeats:       repeats,
		ControlPoints: controlPoints,
		EdgeSounds:    edgeSounds,
	}
}

// NewHold builds a mania hold note (produced only by conversion).
func NewHold(column int, startTime, endTime float64, sound uint8) *HitObject {
	return &HitObject{
		Pos:       vector.Pos2{X: columnToX(column), Y: 192},
		StartTime: startTime,
		Kind:      KindHold,
		Sound:     sound,
		endTime:   endTime,
		Column:    column,
	}
}

func columnToX(column int) float32 {
	return float32(column) * 8
}
