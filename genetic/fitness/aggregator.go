package fitness

// MetricBundle is a set of named raw metric readings for one genome
type MetricBundle map[string]float64

// Aggregator calculates a fitness score from collected metrics
type Aggregator interface {
	Calculate(metrics MetricBundle) float64
}

// NormalizeFunc converts a raw metric to a 0-1 score
type NormalizeFunc func(raw float64) float64

// NormalizeLinear creates a linear normalizer
func NormalizeLinear(min, max float64) NormalizeFunc {
	rangeVal := max - min
	if rangeVal <= 0 {
		return func(raw float64) float64 { return 0 }
	}
	return func(raw float64) float64 {
		v := (raw - min) / rangeVal
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
		return v
	}
}

// NormalizeCap creates a capped normalizer: min(raw/max, 1.0)
func NormalizeCap(max float64) NormalizeFunc {
	if max <= 0 {
		return func(raw float64) float64 { return 0 }
	}
	return func(raw float64) float64 {
		v := raw / max
		if v > 1 {
			return 1
		}
		if v < 0 {
			return 0
		}
		return v
	}
}

// NormalizeTarget rewards proximity to a target value: 1 at the
// target, falling off linearly to 0 at distance spread
func NormalizeTarget(target, spread float64) NormalizeFunc {
	if spread <= 0 {
		spread = 1
	}
	return func(raw float64) float64 {
		v := 1.0 - abs(raw-target)/spread
		if v < 0 {
			return 0
		}
		return v
	}
}

// NormalizeInvert flips a 0-1 metric: rewarding absence
func NormalizeInvert() NormalizeFunc {
	return func(raw float64) float64 {
		v := 1.0 - raw
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
		return v
	}
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
