package objects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManiaRandomIsDeterministic(t *testing.T) {
	a := NewManiaRandom(12345)
	b := NewManiaRandom(12345)

	for i := 0; i < 50; i++ {
		assert.Equal(t, a.NextDouble(), b.NextDouble())
	}
}

func TestManiaRandomDifferentSeedsDiverge(t *testing.T) {
	a := NewManiaRandom(1)
	b := NewManiaRandom(2)

	same := true

	for i := 0; i < 10; i++ {
		if a.NextDouble() != b.NextDouble() {
			same = false
			break
		}
	}

	assert.False(t, same)
}

func TestManiaRandomNextDoubleInUnitRange(t *testing.T) {
	r := NewManiaRandom(42)

	for i := 0; i < 1000; i++ {
		v := r.NextDouble()
		assert.GreaterOrEqual(t, v, 0.0)
		assert.Less(t, v, 1.0)
	}
}

func TestManiaRandomNextIntRangeRespectsBounds(t *testing.T) {
	r := NewManiaRandom(7)

	for i := 0; i < 1000; i++ {
		v := r.NextIntRange(3, 9)
		assert.GreaterOrEqual(t, v, 3)
		assert.Less(t, v, 9)
	}
}

func TestManiaSeedMatchesSpecFormula(t *testing.T) {
	// round(hp+cs)*20 + round(od*41.2) + round(ar), per spec.md §6.
	got := maniaSeed(5, 4, 8, 9)
	want := int32(9*20) + int32(330) + int32(9)

	assert.Equal(t, want, got)
}

func TestManiaColumnBucketsAcrossFullWidth(t *testing.T) {
	assert.Equal(t, 0, ManiaColumn(0, 4))
	assert.Equal(t, 3, ManiaColumn(511, 4))
	assert.Equal(t, 2, ManiaColumn(300, 4))
}
