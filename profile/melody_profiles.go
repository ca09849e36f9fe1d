package profile

import (
	"github.com/IvanM-2157801/GeneticMusic/genetic/fitness"
	"github.com/IvanM-2157801/GeneticMusic/music"
)

// MelodyRegistry builds the catalog of named melody profiles, all
// adhering to the given scale so layers of one composition stay in
// key. Small weights on rhythm_-prefixed metrics let a melody profile
// prefer phrases whose underlying rhythm fits the role.
func MelodyRegistry(scale music.Scale) map[string]MelodyProfile {
	return map[string]MelodyProfile{
		// melodic: expressive lead lines with wide, varied intervals
		"melodic": {
			Name:  "melodic",
			Scale: scale,
			Agg: fitness.WeightedAggregator{
				Weights: map[string]float64{
					MetricIntervalVariety:    0.30,
					MetricNoteVariety:        0.25,
					MetricIntervalSmoothness: 0.20,
					MetricPitchRange:         0.15,
					MetricPhraseRestRatio:    0.10,
				},
				Shapers: map[string]fitness.NormalizeFunc{
					MetricIntervalSmoothness: fitness.NormalizeInvert(),
					MetricPhraseRestRatio:    fitness.NormalizeInvert(),
				},
			},
		},
		// stable: smooth stepwise lines for bass and synth beds
		"stable": {
			Name:  "stable",
			Scale: scale,
			Agg: fitness.WeightedAggregator{
				Weights: map[string]float64{
					MetricIntervalSmoothness: 0.35,
					MetricStepwiseMotion:     0.25,
					MetricScaleAdherence:     0.15,
					MetricPitchRange:         0.10,
					MetricPhraseRestRatio:    0.15,
				},
				Shapers: map[string]fitness.NormalizeFunc{
					MetricPitchRange:      fitness.NormalizeInvert(),
					MetricPhraseRestRatio: fitness.NormalizeInvert(),
				},
			},
		},
		// pad: sustained triadic motion in a narrow band
		"pad": {
			Name:  "pad",
			Scale: scale,
			Agg: fitness.WeightedAggregator{
				Weights: map[string]float64{
					MetricTriadicIntervals:   0.35,
					MetricNoteVariety:        0.25,
					MetricPitchRange:         0.20,
					MetricPhraseRestRatio:    0.15,
					MetricIntervalSmoothness: 0.05,
				},
				Shapers: map[string]fitness.NormalizeFunc{
					MetricNoteVariety:     fitness.NormalizeInvert(),
					MetricPitchRange:      fitness.NormalizeInvert(),
					MetricPhraseRestRatio: fitness.NormalizeInvert(),
				},
			},
		},
		// pop: singable, in-key, moderate variety over a steady pulse
		"pop": {
			Name:  "pop",
			Scale: scale,
			Agg: fitness.WeightedAggregator{
				Weights: map[string]float64{
					MetricScaleAdherence:     0.30,
					MetricIntervalSmoothness: 0.20,
					MetricPhraseRestRatio:    0.15,
					MetricNoteVariety:        0.15,
					MetricStepwiseMotion:     0.10,
					RhythmConsistencyKey:     0.10,
				},
				Shapers: map[string]fitness.NormalizeFunc{
					MetricPhraseRestRatio: fitness.NormalizeInvert(),
					MetricNoteVariety:     fitness.NormalizeTarget(0.5, 0.5),
				},
			},
		},
		// jazz: variety and chromatic reach, room to breathe
		"jazz": {
			Name:  "jazz",
			Scale: scale,
			Agg: fitness.WeightedAggregator{
				Weights: map[string]float64{
					MetricNoteVariety:        0.25,
					MetricIntervalVariety:    0.25,
					MetricIntervalSmoothness: 0.20,
					MetricScaleAdherence:     0.15,
					RhythmSyncopationKey:     0.15,
				},
				Shapers: map[string]fitness.NormalizeFunc{
					MetricIntervalSmoothness: fitness.NormalizeInvert(),
				},
			},
		},
		// ambient: slow drift inside the scale, nothing startling
		"ambient": {
			Name:  "ambient",
			Scale: scale,
			Agg: fitness.WeightedAggregator{
				Weights: map[string]float64{
					MetricIntervalSmoothness: 0.30,
					MetricScaleAdherence:     0.20,
					MetricPitchRange:         0.15,
					MetricNoteVariety:        0.15,
					RhythmRestRatioKey:       0.20,
				},
				Shapers: map[string]fitness.NormalizeFunc{
					MetricPitchRange:  fitness.NormalizeInvert(),
					MetricNoteVariety: fitness.NormalizeInvert(),
				},
			},
		},
	}
}
