// Package profile names the fitness profiles: per-genre weight tables
// over the metric library, combined through the generic weighted
// aggregator. Registries are plain values built on demand and passed
// around explicitly; there is no module-level mutable state.
package profile

import (
	"github.com/IvanM-2157801/GeneticMusic/genetic/fitness"
	"github.com/IvanM-2157801/GeneticMusic/metric"
	"github.com/IvanM-2157801/GeneticMusic/music"
)

// Rhythm metric keys
const (
	MetricDensity            = "density"
	MetricComplexity         = "complexity"
	MetricSyncopation        = "syncopation"
	MetricGroove             = "groove"
	MetricConsistency        = "consistency"
	MetricRestRatio          = "rest_ratio"
	MetricOffbeatEmphasis    = "offbeat_emphasis"
	MetricStrongBeatEmphasis = "strong_beat_emphasis"
	MetricBackbeatEmphasis   = "backbeat_emphasis"
	MetricSingleHitRatio     = "single_hit_ratio"
	MetricSimpleSubdivision  = "simple_subdivision"
)

// Phrase metric keys
const (
	MetricNoteVariety        = "note_variety"
	MetricIntervalSmoothness = "interval_smoothness"
	MetricScaleAdherence     = "scale_adherence"
	MetricPhraseRestRatio    = "phrase_rest_ratio"
	MetricIntervalVariety    = "interval_variety"
	MetricPitchRange         = "pitch_range"
	MetricStepwiseMotion     = "stepwise_motion"
	MetricTriadicIntervals   = "triadic_intervals"
)

// rhythmKeyPrefix marks rhythm metrics inside a melody bundle, where
// the fixed rhythm is scored alongside the phrase it constrains
const rhythmKeyPrefix = "rhythm_"

// Prefixed keys for the rhythm metrics melody profiles weight directly
const (
	RhythmConsistencyKey = rhythmKeyPrefix + MetricConsistency
	RhythmSyncopationKey = rhythmKeyPrefix + MetricSyncopation
	RhythmRestRatioKey   = rhythmKeyPrefix + MetricRestRatio
)

// RhythmBundle computes every rhythm metric for one genome
func RhythmBundle(r music.Rhythm) fitness.MetricBundle {
	return fitness.MetricBundle{
		MetricDensity:            metric.Density(r),
		MetricComplexity:         metric.Complexity(r),
		MetricSyncopation:        metric.Syncopation(r),
		MetricGroove:             metric.Groove(r),
		MetricConsistency:        metric.Consistency(r),
		MetricRestRatio:          metric.RestRatio(r),
		MetricOffbeatEmphasis:    metric.OffbeatEmphasis(r),
		MetricStrongBeatEmphasis: metric.StrongBeatEmphasis(r),
		MetricBackbeatEmphasis:   metric.BackbeatEmphasis(r),
		MetricSingleHitRatio:     metric.SingleHitRatio(r),
		MetricSimpleSubdivision:  metric.SimpleSubdivisionRatio(r),
	}
}

// PhraseBundle computes phrase metrics plus the rhythm metrics of the
// fixed rhythm, prefixed so one weight table can reach both
func PhraseBundle(rhythm music.Rhythm, phrase music.Phrase, scale music.Scale) fitness.MetricBundle {
	bundle := fitness.MetricBundle{
		MetricNoteVariety:        metric.NoteVariety(phrase),
		MetricIntervalSmoothness: metric.IntervalSmoothness(phrase),
		MetricScaleAdherence:     metric.ScaleAdherence(phrase, scale),
		MetricPhraseRestRatio:    metric.PhraseRestRatio(phrase),
		MetricIntervalVariety:    metric.IntervalVariety(phrase),
		MetricPitchRange:         metric.PitchRange(phrase),
		MetricStepwiseMotion:     metric.StepwiseMotion(phrase),
		MetricTriadicIntervals:   metric.TriadicIntervals(phrase),
	}
	for key, value := range RhythmBundle(rhythm) {
		bundle[rhythmKeyPrefix+key] = value
	}
	return bundle
}

// RhythmProfile scores rhythm genomes for one instrumental role
type RhythmProfile struct {
	Name string
	Agg  fitness.WeightedAggregator
}

// Evaluate is pure and deterministic: same rhythm, same score
func (p RhythmProfile) Evaluate(r music.Rhythm) float64 {
	return p.Agg.Calculate(RhythmBundle(r))
}

// MelodyProfile scores a phrase together with the fixed rhythm that
// shaped it. The rhythm does not evolve during the melody phase but
// still carries fitness signal (groove and density are its
// properties, not the phrase's).
type MelodyProfile struct {
	Name  string
	Scale music.Scale
	Agg   fitness.WeightedAggregator
}

// Evaluate is pure and deterministic given the (rhythm, phrase) pair
func (p MelodyProfile) Evaluate(rhythm music.Rhythm, phrase music.Phrase) float64 {
	return p.Agg.Calculate(PhraseBundle(rhythm, phrase, p.Scale))
}
