package profile

import (
	"github.com/IvanM-2157801/GeneticMusic/genetic/fitness"
)

// RhythmRegistry builds the catalog of named rhythm profiles. Each is
// a weight table over the rhythm metrics; weights are documented to
// sum near 1.0 per profile and are deliberately not renormalized.
func RhythmRegistry() map[string]RhythmProfile {
	return map[string]RhythmProfile{
		// pop: catchy and repetitive, moderate density, few rests.
		// Good shapes: "22222222", "21212121", "22112211".
		"pop": {
			Name: "pop",
			Agg: fitness.WeightedAggregator{
				Weights: map[string]float64{
					MetricConsistency: 0.35,
					MetricGroove:      0.25,
					MetricRestRatio:   0.20,
					MetricDensity:     0.15,
					MetricComplexity:  0.05,
				},
				Shapers: map[string]fitness.NormalizeFunc{
					MetricRestRatio:  fitness.NormalizeInvert(),
					MetricDensity:    fitness.NormalizeTarget(0.5, 1.0),
					MetricComplexity: fitness.NormalizeInvert(),
				},
			},
		},
		// jazz: syncopated and varied with strategic space.
		// Good shapes: "31402310", "24130421".
		"jazz": {
			Name: "jazz",
			Agg: fitness.WeightedAggregator{
				Weights: map[string]float64{
					MetricSyncopation:     0.30,
					MetricComplexity:      0.25,
					MetricOffbeatEmphasis: 0.20,
					MetricRestRatio:       0.15,
					MetricConsistency:     0.10,
				},
				Shapers: map[string]fitness.NormalizeFunc{
					MetricRestRatio:   fitness.NormalizeTarget(0.2, 0.2),
					MetricConsistency: fitness.NormalizeInvert(),
				},
			},
		},
		// funk: maximum groove, offbeat accents, dense but articulated.
		// Good shapes: "42142114", "32143214".
		"funk": {
			Name: "funk",
			Agg: fitness.WeightedAggregator{
				Weights: map[string]float64{
					MetricGroove:          0.40,
					MetricSyncopation:     0.25,
					MetricOffbeatEmphasis: 0.20,
					MetricDensity:         0.10,
					MetricRestRatio:       0.05,
				},
				Shapers: map[string]fitness.NormalizeFunc{
					MetricDensity:   fitness.NormalizeTarget(0.7, 1.0),
					MetricRestRatio: fitness.NormalizeInvert(),
				},
			},
		},
		// rock: driving eighths, steady and insistent.
		// Good shapes: "22222222", "22122212".
		"rock": {
			Name: "rock",
			Agg: fitness.WeightedAggregator{
				Weights: map[string]float64{
					MetricConsistency: 0.30,
					MetricDensity:     0.25,
					MetricGroove:      0.20,
					MetricRestRatio:   0.15,
					MetricComplexity:  0.10,
				},
				Shapers: map[string]fitness.NormalizeFunc{
					MetricDensity:    fitness.NormalizeTarget(0.6, 1.0),
					MetricRestRatio:  fitness.NormalizeInvert(),
					MetricComplexity: fitness.NormalizeInvert(),
				},
			},
		},
		// electronic: machine-steady pulse at elevated density.
		"electronic": {
			Name: "electronic",
			Agg: fitness.WeightedAggregator{
				Weights: map[string]float64{
					MetricDensity:     0.30,
					MetricConsistency: 0.25,
					MetricRestRatio:   0.25,
					MetricSyncopation: 0.20,
				},
				Shapers: map[string]fitness.NormalizeFunc{
					MetricDensity:   fitness.NormalizeTarget(0.65, 1.0),
					MetricRestRatio: fitness.NormalizeInvert(),
				},
			},
		},
		// arp: relentless fast subdivisions for arpeggiated lines.
		// Good shapes: "44444444", "42424242".
		"arp": {
			Name: "arp",
			Agg: fitness.WeightedAggregator{
				Weights: map[string]float64{
					MetricDensity:     0.35,
					MetricConsistency: 0.30,
					MetricRestRatio:   0.20,
					MetricComplexity:  0.15,
				},
				Shapers: map[string]fitness.NormalizeFunc{
					MetricDensity:    fitness.NormalizeTarget(1.0, 1.0),
					MetricRestRatio:  fitness.NormalizeInvert(),
					MetricComplexity: fitness.NormalizeInvert(),
				},
			},
		},
		// ambient: space over motion. Rests and low density dominate,
		// so the profile happily converges on the all-rest genome.
		// That is the intended outcome for this role, not a failure.
		"ambient": {
			Name: "ambient",
			Agg: fitness.WeightedAggregator{
				Weights: map[string]float64{
					MetricRestRatio:   0.50,
					MetricDensity:     0.30,
					MetricConsistency: 0.20,
				},
				Shapers: map[string]fitness.NormalizeFunc{
					MetricDensity: fitness.NormalizeInvert(),
				},
			},
		},
		// bass: locked and repetitive with moderate motion
		"bass": {
			Name: "bass",
			Agg: fitness.WeightedAggregator{
				Weights: map[string]float64{
					MetricConsistency: 0.30,
					MetricDensity:     0.25,
					MetricGroove:      0.20,
					MetricRestRatio:   0.15,
					MetricComplexity:  0.10,
				},
				Shapers: map[string]fitness.NormalizeFunc{
					MetricDensity:    fitness.NormalizeTarget(0.4, 1.0),
					MetricRestRatio:  fitness.NormalizeTarget(0.2, 0.4),
					MetricComplexity: fitness.NormalizeInvert(),
				},
			},
		},
		// kick: strong downbeats, sparse and simple.
		// Good shapes: "10001000", "12001200".
		"kick": {
			Name: "kick",
			Agg: fitness.WeightedAggregator{
				Weights: map[string]float64{
					MetricStrongBeatEmphasis: 0.40,
					MetricDensity:            0.25,
					MetricSingleHitRatio:     0.20,
					MetricRestRatio:          0.15,
				},
				Shapers: map[string]fitness.NormalizeFunc{
					// sparsity: penalize density past half
					MetricDensity: func(raw float64) float64 {
						v := raw * 2
						if v > 1 {
							v = 1
						}
						return 1 - v
					},
					MetricRestRatio: fitness.NormalizeCap(2.0 / 3.0),
				},
			},
		},
		// snare: backbeat accents surrounded by space.
		// Good shapes: "00100010", "00120012".
		"snare": {
			Name: "snare",
			Agg: fitness.WeightedAggregator{
				Weights: map[string]float64{
					MetricBackbeatEmphasis: 0.45,
					MetricRestRatio:        0.25,
					MetricSingleHitRatio:   0.20,
					MetricDensity:          0.10,
				},
				Shapers: map[string]fitness.NormalizeFunc{
					MetricRestRatio: fitness.NormalizeCap(1.0 / 1.3),
					MetricDensity:   fitness.NormalizeInvert(),
				},
			},
		},
		// hihat: constant timekeeping with simple subdivisions.
		// Good shapes: "22222222", "12121212".
		"hihat": {
			Name: "hihat",
			Agg: fitness.WeightedAggregator{
				Weights: map[string]float64{
					MetricDensity:           0.35,
					MetricConsistency:       0.30,
					MetricSimpleSubdivision: 0.20,
					MetricRestRatio:         0.15,
				},
				Shapers: map[string]fitness.NormalizeFunc{
					MetricDensity:   fitness.NormalizeCap(2.0 / 3.0),
					MetricRestRatio: fitness.NormalizeInvert(),
				},
			},
		},
		// percussion: textural filler, balanced and loosely varied
		"percussion": {
			Name: "percussion",
			Agg: fitness.WeightedAggregator{
				Weights: map[string]float64{
					MetricDensity:     0.30,
					MetricSyncopation: 0.25,
					MetricConsistency: 0.25,
					MetricRestRatio:   0.20,
				},
				Shapers: map[string]fitness.NormalizeFunc{
					MetricDensity:     fitness.NormalizeTarget(0.5, 1.0),
					MetricConsistency: fitness.NormalizeInvert(),
					MetricRestRatio:   fitness.NormalizeTarget(0.4, 0.6),
				},
			},
		},
	}
}
