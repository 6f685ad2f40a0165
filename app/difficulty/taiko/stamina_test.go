package taiko

import "testing"

func TestStaminaSpeedBonusZeroAtOrAboveThreshold(t *testing.T) {
	if got := staminaSpeedBonus(minStaminaSpeedBonus); got != 0 {
		t.Fatalf("expected zero bonus at threshold, got %v", got)
	}

	if got := staminaSpeedBonus(minStaminaSpeedBonus * 2); got != 0 {
		t.Fatalf("expected zero bonus above threshold, got %v", got)
	}
}

func TestStaminaSpeedBonusGrowsAsGapShrinks(t *testing.T) {
	wide := staminaSpeedBonus(minStaminaSpeedBonus - 10)
	narrow := staminaSpeedBonus(minStaminaSpeedBonus - 100)

	if !(narrow > wide) {
		t.Fatalf("expected a smaller gap to yield a larger bonus: wide=%v narrow=%v", wide, narrow)
	}

	if wide <= 0 {
		t.Fatalf("expected a positive bonus below threshold, got %v", wide)
	}
}

func TestHandStrainValueAtOnlyAddsOnMatchingParity(t *testing.T) {
	h := newHand(0)

	matching := DifficultyObject{Idx: 0, Base: TaikoObject{IsHit: true}, StartTime: 0, Delta: 200}
	other := DifficultyObject{Idx: 1, Base: TaikoObject{IsHit: true}, StartTime: 200, Delta: 200}

	before := h.strain
	h.strainValueAt(other)
	if h.strain != before {
		t.Fatalf("expected non-matching parity to add nothing, strain changed from %v to %v", before, h.strain)
	}

	h.strainValueAt(matching)
	if h.strain <= before {
		t.Fatalf("expected matching parity to add strain, got %v", h.strain)
	}
}
