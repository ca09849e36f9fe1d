// Package metric holds the pure feature functions fitness profiles
// weigh against each other. Every function is total over syntactically
// valid genomes and returns a value in [0,1]; degenerate inputs
// (empty, all-rest, single-symbol) get documented defaults instead of
// errors, because real runs produce them.
package metric

import "github.com/IvanM-2157801/GeneticMusic/music"

// alphabetSize counts the distinct rhythm symbols 0..4
const alphabetSize = 5

// Density is the mean subdivision value normalized by the densest
// beat. "00000000" scores 0.0, "44444444" scores 1.0.
func Density(r music.Rhythm) float64 {
	if len(r) == 0 {
		return 0.0
	}
	return clamp01(float64(r.NoteCount()) / float64(len(r)*music.MaxSubdivision))
}

// Complexity counts distinct symbols used, normalized by alphabet
// size. A single-symbol rhythm scores 1/5, the defined minimum for a
// non-empty input.
func Complexity(r music.Rhythm) float64 {
	if len(r) == 0 {
		return 0.0
	}
	var seen [alphabetSize]bool
	distinct := 0
	for _, d := range r {
		if d >= 0 && d < alphabetSize && !seen[d] {
			seen[d] = true
			distinct++
		}
	}
	return clamp01(float64(distinct) / alphabetSize)
}

// Syncopation is the fraction of adjacent beat pairs whose subdivision
// differs. Rhythms shorter than two beats score 0.
func Syncopation(r music.Rhythm) float64 {
	if len(r) < 2 {
		return 0.0
	}
	transitions := 0
	for i := 0; i < len(r)-1; i++ {
		if r[i] != r[i+1] {
			transitions++
		}
	}
	return float64(transitions) / float64(len(r)-1)
}

// Groove rewards alternation between busy and sparse beats, the
// high-low-high-low feel. Rhythms shorter than four beats score 0.
func Groove(r music.Rhythm) float64 {
	if len(r) < 4 {
		return 0.0
	}
	score := 0
	for i := 0; i < len(r)-1; i++ {
		curr, next := r[i], r[i+1]
		if (curr >= 2 && next <= 1) || (curr <= 1 && next >= 2) {
			score++
		}
	}
	return float64(score) / float64(len(r)-1)
}

// Consistency rewards repetition: one minus the distinct-symbol ratio.
// A single-beat rhythm scores the neutral 0.5.
func Consistency(r music.Rhythm) float64 {
	if len(r) < 2 {
		return 0.5
	}
	var seen [alphabetSize]bool
	distinct := 0
	for _, d := range r {
		if d >= 0 && d < alphabetSize && !seen[d] {
			seen[d] = true
			distinct++
		}
	}
	return 1.0 - float64(distinct)/float64(len(r))
}

// RestRatio is the fraction of rest beats. "00000000" scores 1.0.
func RestRatio(r music.Rhythm) float64 {
	if len(r) == 0 {
		return 0.0
	}
	rests := 0
	for _, d := range r {
		if d == 0 {
			rests++
		}
	}
	return float64(rests) / float64(len(r))
}

// OffbeatEmphasis is the fraction of offbeats (beats 2 and 4 of each
// four) carrying a subdivision of two or more. Rhythms shorter than
// four beats score 0.
func OffbeatEmphasis(r music.Rhythm) float64 {
	if len(r) < 4 {
		return 0.0
	}
	score, offbeats := 0, 0
	for i, d := range r {
		if i%4 == 1 || i%4 == 3 {
			offbeats++
			if d >= 2 {
				score++
			}
		}
	}
	if offbeats == 0 {
		return 0.0
	}
	return float64(score) / float64(offbeats)
}

// StrongBeatEmphasis rewards sounding downbeats: beat one and the
// midpoint beat, each worth half. Kick patterns live on this.
func StrongBeatEmphasis(r music.Rhythm) float64 {
	if len(r) == 0 {
		return 0.0
	}
	score := 0.0
	if r[0] != 0 {
		score += 0.5
	}
	mid := len(r) / 2
	if mid > 0 && mid < len(r) && r[mid] != 0 {
		score += 0.5
	}
	return score
}

// BackbeatEmphasis rewards sounding backbeats: beats three and seven
// of eight (or two and four of four), each worth half.
func BackbeatEmphasis(r music.Rhythm) float64 {
	switch {
	case len(r) >= 8:
		score := 0.0
		if r[2] != 0 {
			score += 0.5
		}
		if r[6] != 0 {
			score += 0.5
		}
		return score
	case len(r) >= 4:
		score := 0.0
		if r[1] != 0 {
			score += 0.5
		}
		if r[3] != 0 {
			score += 0.5
		}
		return score
	default:
		return 0.0
	}
}

// SingleHitRatio is the fraction of beats that are plain single hits,
// a simplicity signal for kick and snare profiles.
func SingleHitRatio(r music.Rhythm) float64 {
	if len(r) == 0 {
		return 0.0
	}
	ones := 0
	for _, d := range r {
		if d == 1 {
			ones++
		}
	}
	return float64(ones) / float64(len(r))
}

// SimpleSubdivisionRatio is the fraction of beats that sound with one
// or two notes, rewarding hi-hat style articulation over triplet runs.
func SimpleSubdivisionRatio(r music.Rhythm) float64 {
	if len(r) == 0 {
		return 0.0
	}
	simple := 0
	for _, d := range r {
		if d == 1 || d == 2 {
			simple++
		}
	}
	return float64(simple) / float64(len(r))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
