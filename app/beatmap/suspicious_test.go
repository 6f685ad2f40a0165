package beatmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wieku/danser-pp/app/beatmap"
	"github.com/wieku/danser-pp/framework/math/vector"
)

func zeroPos() vector.Pos2 {
	return vector.Pos2{}
}

func TestCheckModeAcceptsNativeMode(t *testing.T) {
	b := &beatmap.Beatmap{Mode: beatmap.ModeTaiko}
	assert.NoError(t, beatmap.CheckMode(b, beatmap.ModeTaiko))
}

func TestCheckModeAcceptsStandardOrigin(t *testing.T) {
	b := &beatmap.Beatmap{Mode: beatmap.ModeOsu}
	assert.NoError(t, beatmap.CheckMode(b, beatmap.ModeMania))
}

func TestCheckModeRejectsStandardWithoutNativeMatch(t *testing.T) {
	b := &beatmap.Beatmap{Mode: beatmap.ModeTaiko}

	err := beatmap.CheckMode(b, beatmap.ModeOsu)
	assert.ErrorIs(t, err, beatmap.ErrModeMismatch)
}

func TestCheckModeRejectsCrossConversion(t *testing.T) {
	b := &beatmap.Beatmap{Mode: beatmap.ModeTaiko}

	err := beatmap.CheckMode(b, beatmap.ModeMania)
	assert.ErrorIs(t, err, beatmap.ErrModeMismatch)
}

func TestCheckSuspicionAllowsSmallMap(t *testing.T) {
	b := &beatmap.Beatmap{Mode: beatmap.ModeOsu}

	for i := 0; i < 20; i++ {
		b.HitObjects = append(b.HitObjects, beatmap.NewCircle(zeroPos(), float64(i*300), 0, false))
	}

	assert.NoError(t, beatmap.CheckSuspicion(b))
}

func TestCheckSuspicionRejectsTooManyObjects(t *testing.T) {
	b := &beatmap.Beatmap{Mode: beatmap.ModeOsu}

	b.HitObjects = make([]*beatmap.HitObject, 500_001)
	for i := range b.HitObjects {
		b.HitObjects[i] = beatmap.NewCircle(zeroPos(), float64(i), 0, false)
	}

	err := beatmap.CheckSuspicion(b)
	assert.ErrorIs(t, err, beatmap.ErrTooSuspicious)

	var tse *beatmap.TooSuspiciousError
	if assert.ErrorAs(t, err, &tse) {
		assert.Equal(t, beatmap.ReasonObjectCount, tse.Reason)
	}
}

func TestCheckSuspicionRejectsTooManyTaikoObjects(t *testing.T) {
	b := &beatmap.Beatmap{Mode: beatmap.ModeTaiko}

	b.HitObjects = make([]*beatmap.HitObject, 20_001)
	for i := range b.HitObjects {
		b.HitObjects[i] = beatmap.NewCircle(zeroPos(), float64(i), 0, false)
	}

	err := beatmap.CheckSuspicion(b)
	assert.ErrorIs(t, err, beatmap.ErrTooSuspicious)
}
