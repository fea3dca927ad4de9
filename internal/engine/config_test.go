package engine

import (
	"reflect"
	"testing"
)

func TestNormalizedFillsDefaults(t *testing.T) {
	got := Config{}.normalized()
	if !reflect.DeepEqual(got, DefaultConfig()) {
		t.Fatalf("zero config normalized to %+v, want defaults %+v", got, DefaultConfig())
	}
}

func TestNormalizedKeepsOverrides(t *testing.T) {
	cfg := Config{MaxPoolSize: 5, MinPairScore: 0.2}
	got := cfg.normalized()

	if got.MaxPoolSize != 5 {
		t.Errorf("max pool size = %d, want 5", got.MaxPoolSize)
	}
	if got.MinPairScore != 0.2 {
		t.Errorf("min pair score = %v, want 0.2", got.MinPairScore)
	}
	if got.PickupJoinDistanceKm != DefaultConfig().PickupJoinDistanceKm {
		t.Errorf("untouched field changed: %v", got.PickupJoinDistanceKm)
	}
}

// Zero means unset: a literal 0 threshold snaps back to the default, while
// any tiny positive value survives normalization.
func TestNormalizedTreatsZeroAsUnset(t *testing.T) {
	got := Config{MinPairScore: 0, MinCarrierEligibilityScore: 0}.normalized()
	if got.MinPairScore != DefaultConfig().MinPairScore {
		t.Errorf("zero min pair score = %v, want default", got.MinPairScore)
	}
	if got.MinCarrierEligibilityScore != DefaultConfig().MinCarrierEligibilityScore {
		t.Errorf("zero eligibility score = %v, want default", got.MinCarrierEligibilityScore)
	}

	tiny := Config{MinPairScore: 1e-9, FlexibleWindowScore: 1e-9}.normalized()
	if tiny.MinPairScore != 1e-9 {
		t.Errorf("tiny min pair score = %v, want 1e-9", tiny.MinPairScore)
	}
	if tiny.FlexibleWindowScore != 1e-9 {
		t.Errorf("tiny flexible window score = %v, want 1e-9", tiny.FlexibleWindowScore)
	}
}
