package performance_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wieku/danser-pp/app/difficulty/catch"
	"github.com/wieku/danser-pp/app/difficulty/mania"
	"github.com/wieku/danser-pp/app/difficulty/osu"
	"github.com/wieku/danser-pp/app/difficulty/taiko"
	"github.com/wieku/danser-pp/app/performance"
)

func TestOsuScoreStateAccuracy(t *testing.T) {
	s := performance.OsuScoreState{N300: 95, N100: 5, MaxCombo: 100}
	assert.InDelta(t, float64(95*300+5*100)/float64(300*100), s.Accuracy(), 1e-9)
}

func TestOsuScoreStateAccuracyWithNoHitsIsZero(t *testing.T) {
	var s performance.OsuScoreState
	assert.Equal(t, 0.0, s.Accuracy())
}

func TestCalculateOsuMoreMissesLowersPP(t *testing.T) {
	attrs := osu.Attributes{Stars: 5, AimStrain: 3, SpeedStrain: 3, ARRating: 9, ODRating: 8, MaxCombo: 500, NCircles: 400, NSliders: 100}

	full := performance.CalculateOsu(attrs, 0, performance.OsuScoreState{N300: 500, MaxCombo: 500})
	missed := performance.CalculateOsu(attrs, 0, performance.OsuScoreState{N300: 490, NMisses: 10, MaxCombo: 400})

	assert.Greater(t, full.PP, missed.PP)
}

func TestCalculateOsuHigherAccuracyYieldsMorePP(t *testing.T) {
	attrs := osu.Attributes{Stars: 5, AimStrain: 3, SpeedStrain: 3, ARRating: 9, ODRating: 8, MaxCombo: 500, NCircles: 400, NSliders: 100}

	lowAcc := performance.CalculateOsu(attrs, 0, performance.OsuScoreState{N300: 400, N100: 100, MaxCombo: 500})
	highAcc := performance.CalculateOsu(attrs, 0, performance.OsuScoreState{N300: 500, MaxCombo: 500})

	assert.Greater(t, highAcc.PP, lowAcc.PP)
}

func TestCalculateTaikoZeroStarsYieldsNonNegativePP(t *testing.T) {
	attrs := taiko.Attributes{Stars: 0, HitWindow: 35, MaxCombo: 100}

	pp := performance.CalculateTaiko(attrs, 0, performance.TaikoScoreState{N300: 100, MaxCombo: 100})

	assert.GreaterOrEqual(t, pp.PP, 0.0)
}

func TestCalculateCatchMissesReducePP(t *testing.T) {
	attrs := catch.Attributes{Stars: 5, AR: 9, MaxCombo: 200, NFruits: 150, NDroplets: 50}

	full := performance.CalculateCatch(attrs, 0, performance.CatchScoreState{MaxCombo: 200, NFruits: 150, NDroplets: 50})
	missed := performance.CalculateCatch(attrs, 0, performance.CatchScoreState{MaxCombo: 150, NFruits: 140, NDroplets: 50, NMisses: 10})

	assert.Greater(t, full.PP, missed.PP)
}

func TestCalculateManiaLowScoreYieldsZeroStrain(t *testing.T) {
	attrs := mania.Attributes{Stars: 5, HitWindow: 40, MaxCombo: 100}

	// Accuracy well below the 50% scaled-score floor collapses the strain term to 0.
	pp := performance.CalculateMania(attrs, 0, performance.ManiaScoreState{N50: 100})

	assert.GreaterOrEqual(t, pp.PP, 0.0)
}

func TestGenerateOsuStateHonorsPinnedCounts(t *testing.T) {
	state := performance.GenerateOsuState(100, 1.0, 10, 5, -1, 2, -1)

	assert.Equal(t, 10, state.N300)
	assert.Equal(t, 5, state.N100)
	assert.Equal(t, 2, state.NMisses)
}

func TestGenerateOsuStateClampsOverConstrainedTotal(t *testing.T) {
	state := performance.GenerateOsuState(10, 1.0, 8, 5, -1, 0, -1)

	assert.LessOrEqual(t, state.TotalHits(), 10)
}
