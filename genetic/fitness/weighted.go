package fitness

import "sort"

// WeightedAggregator calculates fitness as a weighted sum of metric
// scores. Weights are documented per profile to sum near 1.0 but the
// sum is not enforced and negative weights are legal: the result is a
// ranking signal for selection, not a calibrated probability, so it is
// never clamped.
type WeightedAggregator struct {
	Weights map[string]float64
	// Shapers reshape a raw metric before weighting, e.g. rewarding a
	// density near a target instead of density itself
	Shapers map[string]NormalizeFunc
}

func (a *WeightedAggregator) Calculate(metrics MetricBundle) float64 {
	// Summation runs in sorted key order: float accumulation is not
	// associative, and map iteration order would make the same genome
	// score differently across calls.
	keys := make([]string, 0, len(a.Weights))
	for key := range a.Weights {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var fitness float64
	for _, key := range keys {
		weight := a.Weights[key]
		raw, ok := metrics[key]
		if !ok {
			continue
		}

		shaped := raw
		if a.Shapers != nil {
			if shaper, ok := a.Shapers[key]; ok && shaper != nil {
				shaped = shaper(raw)
			}
		}

		fitness += weight * shaped
	}

	return fitness
}
