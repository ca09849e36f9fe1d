package fitness

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// TestWeightedAggregatorSum verifies a plain weighted sum
func TestWeightedAggregatorSum(t *testing.T) {
	agg := WeightedAggregator{
		Weights: map[string]float64{"a": 0.6, "b": 0.4},
	}
	got := agg.Calculate(MetricBundle{"a": 1.0, "b": 0.5})
	if !almostEqual(got, 0.8) {
		t.Errorf("Expected 0.8, got %f", got)
	}
}

// TestWeightedAggregatorSkipsMissing verifies absent metrics contribute
// nothing instead of panicking
func TestWeightedAggregatorSkipsMissing(t *testing.T) {
	agg := WeightedAggregator{
		Weights: map[string]float64{"present": 1.0, "absent": 5.0},
	}
	got := agg.Calculate(MetricBundle{"present": 0.3})
	if !almostEqual(got, 0.3) {
		t.Errorf("Expected 0.3, got %f", got)
	}
}

// TestWeightedAggregatorRepeatable verifies the sum is bit-identical
// across calls: accumulation order must not depend on map iteration,
// or the same genome ranks differently between evaluations
func TestWeightedAggregatorRepeatable(t *testing.T) {
	weights := make(map[string]float64)
	bundle := make(MetricBundle)
	for _, key := range []string{"density", "complexity", "syncopation", "groove", "consistency", "rest_ratio", "offbeat", "variety", "smoothness"} {
		weights[key] = 0.1 + float64(len(key))*0.017
		bundle[key] = 1.0 / float64(len(key))
	}
	agg := WeightedAggregator{Weights: weights}

	first := agg.Calculate(bundle)
	for i := 0; i < 100; i++ {
		if got := agg.Calculate(bundle); got != first {
			t.Fatalf("Call %d gave %.17g, first call gave %.17g", i+2, got, first)
		}
	}
}

// TestWeightedAggregatorShapers verifies shapers apply before weighting
func TestWeightedAggregatorShapers(t *testing.T) {
	agg := WeightedAggregator{
		Weights: map[string]float64{"rest": 1.0},
		Shapers: map[string]NormalizeFunc{"rest": NormalizeInvert()},
	}
	got := agg.Calculate(MetricBundle{"rest": 0.25})
	if !almostEqual(got, 0.75) {
		t.Errorf("Expected 0.75, got %f", got)
	}
}

// TestWeightedAggregatorNotClamped verifies scores can exceed [0,1];
// the result ranks candidates and must preserve ordering, not scale
func TestWeightedAggregatorNotClamped(t *testing.T) {
	agg := WeightedAggregator{
		Weights: map[string]float64{"a": 2.0, "b": -1.0},
	}
	high := agg.Calculate(MetricBundle{"a": 1.0, "b": 0.0})
	low := agg.Calculate(MetricBundle{"a": 0.0, "b": 1.0})

	if !almostEqual(high, 2.0) {
		t.Errorf("Expected unclamped 2.0, got %f", high)
	}
	if !almostEqual(low, -1.0) {
		t.Errorf("Expected unclamped -1.0, got %f", low)
	}
	if high <= low {
		t.Error("Expected ordering preserved")
	}
}

// TestNormalizeLinear verifies range mapping and edge clamping
func TestNormalizeLinear(t *testing.T) {
	norm := NormalizeLinear(2, 4)
	tests := []struct{ raw, want float64 }{
		{2, 0}, {3, 0.5}, {4, 1}, {0, 0}, {10, 1},
	}
	for _, tt := range tests {
		if got := norm(tt.raw); !almostEqual(got, tt.want) {
			t.Errorf("NormalizeLinear(2,4)(%f): expected %f, got %f", tt.raw, tt.want, got)
		}
	}

	// Degenerate range collapses to zero
	if got := NormalizeLinear(5, 5)(5); got != 0 {
		t.Errorf("Expected 0 for empty range, got %f", got)
	}
}

// TestNormalizeCap verifies capping at 1
func TestNormalizeCap(t *testing.T) {
	norm := NormalizeCap(4)
	if got := norm(2); !almostEqual(got, 0.5) {
		t.Errorf("Expected 0.5, got %f", got)
	}
	if got := norm(8); got != 1 {
		t.Errorf("Expected cap at 1, got %f", got)
	}
}

// TestNormalizeTarget verifies peak at target and linear falloff
func TestNormalizeTarget(t *testing.T) {
	norm := NormalizeTarget(0.5, 0.5)
	if got := norm(0.5); got != 1 {
		t.Errorf("Expected 1 at target, got %f", got)
	}
	if got := norm(0.75); !almostEqual(got, 0.5) {
		t.Errorf("Expected 0.5 halfway, got %f", got)
	}
	if got := norm(0); got != 0 {
		t.Errorf("Expected 0 at spread, got %f", got)
	}
	if got := norm(2); got != 0 {
		t.Errorf("Expected floor at 0 beyond spread, got %f", got)
	}
}
