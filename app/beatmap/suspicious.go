package beatmap

import (
	"errors"
	"fmt"
	"math"
)

// SuspicionReason names why CheckSuspicion rejected a map. The actual
// accept/reject workflow (logging it, skipping the file, etc.) is an
// external collaborator per spec.md §1; this predicate is the only piece
// owned by the core.
type SuspicionReason int

const (
	ReasonNone SuspicionReason = iota
	ReasonDensity
	ReasonLength
	ReasonObjectCount
	ReasonRedFlag
	ReasonSliderPositions
	ReasonSliderRepeats
)

func (r SuspicionReason) String() string {
	switch r {
	case ReasonDensity:
		return "density"
	case ReasonLength:
		return "length"
	case ReasonObjectCount:
		return "object count"
	case ReasonRedFlag:
		return "red flag"
	case ReasonSliderPositions:
		return "slider positions"
	case ReasonSliderRepeats:
		return "slider repeats"
	default:
		return "none"
	}
}

// ErrTooSuspicious is returned by CheckSuspicion (wrapped with the specific
// reason) when a map fails one of the pre-condition checks in spec.md §7.
var ErrTooSuspicious = errors.New("beatmap is too suspicious for further calculation")

// TooSuspiciousError carries the specific reason alongside the sentinel so
// callers can errors.Is(err, ErrTooSuspicious) or inspect Reason.
type TooSuspiciousError struct {
	Reason SuspicionReason
}

func (e *TooSuspiciousError) Error() string {
	return fmt.Sprintf("%s (reason=%s)", ErrTooSuspicious, e.Reason)
}

func (e *TooSuspiciousError) Unwrap() error {
	return ErrTooSuspicious
}

// ErrModeMismatch is returned when a mode's Calculate is asked to process
// a beatmap whose native mode it cannot convert from (spec.md §7's second
// error kind): every mode accepts its own native maps, and Taiko/Catch/
// Mania additionally accept Standard-origin maps via conversion, but no
// other combination is defined.
var ErrModeMismatch = errors.New("beatmap mode cannot be converted for this calculation")

// ModeMismatchError carries the offending native mode alongside the
// sentinel.
type ModeMismatchError struct {
	Native GameMode
	Wanted GameMode
}

func (e *ModeMismatchError) Error() string {
	return fmt.Sprintf("%s: map is %s, wanted %s or a Standard-origin conversion", ErrModeMismatch, e.Native, e.Wanted)
}

func (e *ModeMismatchError) Unwrap() error {
	return ErrModeMismatch
}

// CheckMode validates that b can be processed for the wanted mode: either
// b is natively wanted, or wanted accepts Standard-origin conversions and
// b is natively Standard. Standard itself accepts only native Standard
// maps, since nothing converts into Standard.
func CheckMode(b *Beatmap, wanted GameMode) error {
	if b.Mode == wanted {
		return nil
	}

	if wanted != ModeOsu && b.Mode == ModeOsu {
		return nil
	}

	return &ModeMismatchError{Native: b.Mode, Wanted: wanted}
}

const (
	dayMS = 60 * 60 * 24 * 1000

	maxObjectsDefault = 500_000
	maxObjectsTaiko   = 20_000

	densityPer1sDefault  = 100
	densityPer10sDefault = 250
	densityPer1sMania    = 200
	densityPer10sMania   = 500

	maxSliderPos         = 10_000
	maxSliderRepeats     = 1000
	maxSuspiciousSliders = 256
)

// CheckSuspicion runs the density/length/object-count/position/repeat
// pre-conditions from spec.md §7 once, returning a TooSuspiciousError if
// the map is pathological. A nil return means the map is safe to run
// through the rest of the pipeline.
func CheckSuspicion(b *Beatmap) error {
	if tooManyObjects(b) {
		return &TooSuspiciousError{Reason: ReasonObjectCount}
	}

	if tooLong(b.HitObjects) {
		return &TooSuspiciousError{Reason: ReasonLength}
	}

	posBeyond, repeatsBeyond := 0, 0

	for i, h := range b.HitObjects {
		if tooDense(b, i, h) {
			return &TooSuspiciousError{Reason: ReasonDensity}
		}

		if h.Kind != KindSlider {
			continue
		}

		if h.Repeats > maxSliderRepeats {
			if checkPos(h) && (b.Mode == ModeOsu || b.Mode == ModeCatch) {
				return &TooSuspiciousError{Reason: ReasonRedFlag}
			}

			repeatsBeyond++
		} else if checkPos(h) {
			posBeyond++
		}
	}

	if b.Mode == ModeTaiko || b.Mode == ModeMania {
		// Taiko and mania calculations aren't as susceptible to malicious
		// slider values.
		return nil
	}

	if posBeyond > maxSuspiciousSliders {
		return &TooSuspiciousError{Reason: ReasonSliderPositions}
	}

	if repeatsBeyond > maxSuspiciousSliders {
		return &TooSuspiciousError{Reason: ReasonSliderRepeats}
	}

	return nil
}

func tooManyObjects(b *Beatmap) bool {
	if b.Mode == ModeTaiko {
		return len(b.HitObjects) > maxObjectsTaiko
	}

	return len(b.HitObjects) > maxObjectsDefault
}

func tooLong(objs []*HitObject) bool {
	if len(objs) < 2 {
		return false
	}

	first, last := objs[0], objs[len(objs)-1]

	return (last.StartTime - first.StartTime) > dayMS
}

func tooDense(b *Beatmap, i int, curr *HitObject) bool {
	per1s, per10s := densityPer1sDefault, densityPer10sDefault
	if b.Mode == ModeMania {
		per1s, per10s = densityPer1sMania, densityPer10sMania
	}

	objs := b.HitObjects

	if i+per1s < len(objs) && objs[i+per1s].StartTime-curr.StartTime < 1000 {
		return true
	}

	if i+per10s < len(objs) && objs[i+per10s].StartTime-curr.StartTime < 10_000 {
		return true
	}

	return false
}

func checkPos(h *HitObject) bool {
	return math.Abs(float64(h.Pos.X)) > maxSliderPos || math.Abs(float64(h.Pos.Y)) > maxSliderPos
}
