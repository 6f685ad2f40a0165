package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wieku/danser-pp/app/beatmap"
	"github.com/wieku/danser-pp/framework/math/vector"
)

func zeroPos() vector.Pos2 {
	return vector.Pos2{}
}

func TestLegacySortOrdersByStartTimeOnly(t *testing.T) {
	keys := []*beatmap.HitObject{
		beatmap.NewCircle(zeroPos(), 300, 0, false),
		beatmap.NewCircle(zeroPos(), 100, 0, false),
		beatmap.NewCircle(zeroPos(), 200, 0, false),
		beatmap.NewCircle(zeroPos(), 100, 0, false),
	}

	legacySort(keys)

	for i := 1; i < len(keys); i++ {
		assert.LessOrEqual(t, keys[i-1].StartTime, keys[i].StartTime)
	}
}

func TestLegacySortHandlesEmptyAndSingleton(t *testing.T) {
	assert.NotPanics(t, func() { legacySort(nil) })

	single := []*beatmap.HitObject{beatmap.NewCircle(zeroPos(), 10, 0, false)}
	legacySort(single)
	assert.Len(t, single, 1)
}

func TestManiaColumnCountDecisionTree(t *testing.T) {
	// Mostly circles (low slider/spinner percentage) -> 7K.
	allCircles := &beatmap.Beatmap{OD: 5, CS: 4}
	for i := 0; i < 10; i++ {
		allCircles.HitObjects = append(allCircles.HitObjects, beatmap.NewCircle(zeroPos(), float64(i)*100, 0, false))
	}
	assert.Equal(t, 7, maniaColumnCount(allCircles))

	// High CS pushes toward 6/7K regardless of slider percentage.
	highCS := &beatmap.Beatmap{OD: 4, CS: 6}
	for i := 0; i < 10; i++ {
		highCS.HitObjects = append(highCS.HitObjects, beatmap.NewSlider(zeroPos(), float64(i)*100, 100, 0, nil, nil, 0, false))
	}
	assert.Equal(t, 6, maniaColumnCount(highCS))
}
