package metric

import "github.com/IvanM-2157801/GeneticMusic/music"

// Phrase metrics look only at sounding notes unless noted; a phrase of
// nothing but rests is a valid genome, not an error.

// NoteVariety counts distinct pitch classes normalized to one octave
// of seven. An empty or all-rest phrase scores 0.
func NoteVariety(p music.Phrase) float64 {
	if len(p) == 0 {
		return 0.0
	}
	seen := make(map[music.NoteName]struct{}, 12)
	for _, n := range p {
		if !n.IsRest() {
			seen[n.Pitch] = struct{}{}
		}
	}
	return clamp01(float64(len(seen)) / 7.0)
}

// PhraseRestRatio is the fraction of placeholder rest notes
func PhraseRestRatio(p music.Phrase) float64 {
	if len(p) == 0 {
		return 0.0
	}
	rests := 0
	for _, n := range p {
		if n.IsRest() {
			rests++
		}
	}
	return float64(rests) / float64(len(p))
}

// IntervalSmoothness rewards stepwise motion: one minus the mean
// absolute interval normalized to an octave. Fewer than two sounding
// notes score the neutral 0.5.
func IntervalSmoothness(p music.Phrase) float64 {
	notes := p.Sounding()
	if len(notes) < 2 {
		return 0.5
	}
	total := 0
	for i := 0; i < len(notes)-1; i++ {
		total += absInt(notes[i].MIDIPitch() - notes[i+1].MIDIPitch())
	}
	avg := float64(total) / float64(len(notes)-1)
	return clamp01(1.0 - avg/12.0)
}

// ScaleAdherence is the fraction of sounding notes whose pitch class
// is in the scale. An all-rest phrase adheres vacuously and scores 1.
func ScaleAdherence(p music.Phrase, scale music.Scale) float64 {
	notes := p.Sounding()
	if len(notes) == 0 {
		return 1.0
	}
	in := 0
	for _, n := range notes {
		if scale.Contains(n.Pitch) {
			in++
		}
	}
	return float64(in) / float64(len(notes))
}

// IntervalVariety rewards wide and varied jumps, blending mean
// interval size with the distinct-interval ratio. Fewer than two
// sounding notes score 0.
func IntervalVariety(p music.Phrase) float64 {
	notes := p.Sounding()
	if len(notes) < 2 {
		return 0.0
	}
	intervals := make([]int, 0, len(notes)-1)
	seen := make(map[int]struct{}, len(notes)-1)
	total := 0
	for i := 0; i < len(notes)-1; i++ {
		iv := absInt(notes[i].MIDIPitch() - notes[i+1].MIDIPitch())
		intervals = append(intervals, iv)
		seen[iv] = struct{}{}
		total += iv
	}
	sizeScore := clamp01(float64(total) / float64(len(intervals)) / 7.0)
	varietyScore := clamp01(float64(len(seen)) / float64(len(intervals)))
	return 0.6*sizeScore + 0.4*varietyScore
}

// PitchRange is the sounding pitch span normalized to one octave.
// Empty and single-note phrases score 0.
func PitchRange(p music.Phrase) float64 {
	notes := p.Sounding()
	if len(notes) == 0 {
		return 0.0
	}
	lo, hi := notes[0].MIDIPitch(), notes[0].MIDIPitch()
	for _, n := range notes[1:] {
		m := n.MIDIPitch()
		if m < lo {
			lo = m
		}
		if m > hi {
			hi = m
		}
	}
	return clamp01(float64(hi-lo) / 12.0)
}

// StepwiseMotion is the fraction of adjacent sounding pairs moving by
// two semitones or less. Fewer than two sounding notes score 0.
func StepwiseMotion(p music.Phrase) float64 {
	notes := p.Sounding()
	if len(notes) < 2 {
		return 0.0
	}
	steps := 0
	for i := 0; i < len(notes)-1; i++ {
		if absInt(notes[i].MIDIPitch()-notes[i+1].MIDIPitch()) <= 2 {
			steps++
		}
	}
	return float64(steps) / float64(len(notes)-1)
}

// TriadicIntervals is the fraction of adjacent sounding pairs a third
// or fifth apart (3, 4, 7 or 8 semitones mod octave), the pad and
// arpeggio signal. Fewer than two sounding notes score 0.
func TriadicIntervals(p music.Phrase) float64 {
	notes := p.Sounding()
	if len(notes) < 2 {
		return 0.0
	}
	count := 0
	for i := 0; i < len(notes)-1; i++ {
		switch absInt(notes[i].MIDIPitch()-notes[i+1].MIDIPitch()) % 12 {
		case 3, 4, 7, 8:
			count++
		}
	}
	return float64(count) / float64(len(notes)-1)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
