// Package strudel renders evolved compositions as Strudel pattern
// scripts for the strudel.cc live-coding player. The core hands it a
// finished (rhythm, phrase) pair per layer; nothing here feeds back
// into evolution.
package strudel

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/IvanM-2157801/GeneticMusic/music"
)

// ShareBaseURL prefixes base64-encoded scripts for playable links
const ShareBaseURL = "https://strudel.cc/#"

// NoteToken renders one note as a Strudel token, "c4" style
func NoteToken(n music.Note) string {
	if n.IsRest() {
		return "~"
	}
	return fmt.Sprintf("%s%d", n.Pitch, n.Octave)
}

// DegreeToken renders one note as its degree within the scale, the
// form Strudel's n().scale() chain expects. Pitches outside the scale
// fall back to degree 0 rather than emitting a broken token.
func DegreeToken(n music.Note, scale music.Scale) string {
	if n.IsRest() {
		return "~"
	}
	degree := scale.DegreeOf(n.Pitch)
	if degree < 0 {
		degree = 0
	}
	return fmt.Sprintf("%d", degree)
}

// PhrasePattern formats a phrase grouped by its rhythm. Each beat
// becomes one step: rest beats are "~", single notes stand alone and
// subdivided beats bracket their notes so they share the beat.
//
// Rhythm "2103" with notes n1..n6 becomes "[n1 n2] n3 ~ [n4 n5 n6]".
func PhrasePattern(rp music.RhythmicPhrase, useDegrees bool, scale music.Scale) string {
	token := NoteToken
	if useDegrees {
		token = func(n music.Note) string { return DegreeToken(n, scale) }
	}

	groups := make([]string, 0, len(rp.Rhythm))
	noteIdx := 0
	for _, subdivisions := range rp.Rhythm {
		if subdivisions == 0 {
			groups = append(groups, "~")
			continue
		}
		beat := make([]string, 0, subdivisions)
		for i := 0; i < subdivisions && noteIdx < len(rp.Notes); i++ {
			beat = append(beat, token(rp.Notes[noteIdx]))
			noteIdx++
		}
		if len(beat) == 1 {
			groups = append(groups, beat[0])
		} else {
			groups = append(groups, "["+strings.Join(beat, " ")+"]")
		}
	}
	return strings.Join(groups, " ")
}

// DrumPattern formats a drum layer's rhythm with its sound name:
// "12002000" with "bd" becomes "bd [bd bd] ~ ~ [bd bd] ~ ~ ~"
func DrumPattern(rhythm music.Rhythm, sound string) string {
	groups := make([]string, 0, len(rhythm))
	for _, subdivisions := range rhythm {
		switch {
		case subdivisions == 0:
			groups = append(groups, "~")
		case subdivisions == 1:
			groups = append(groups, sound)
		default:
			hits := make([]string, subdivisions)
			for i := range hits {
				hits[i] = sound
			}
			groups = append(groups, "["+strings.Join(hits, " ")+"]")
		}
	}
	return strings.Join(groups, " ")
}

// LayerExpression builds the full Strudel chain for one layer
func LayerExpression(l music.Layer) (string, error) {
	var b strings.Builder

	if l.IsDrum {
		if l.DrumSound == "" {
			return "", fmt.Errorf("drum layer %q has no drum sound", l.Name)
		}
		fmt.Fprintf(&b, "s(%q)", DrumPattern(l.Rhythm, l.DrumSound))
		if l.Bank != "" {
			fmt.Fprintf(&b, ".bank(%q)", l.Bank)
		}
	} else {
		rp, err := music.NewRhythmicPhrase(l.Rhythm, l.Phrase)
		if err != nil {
			return "", fmt.Errorf("layer %q: %w", l.Name, err)
		}
		pattern := PhrasePattern(rp, l.UseScaleDegrees, l.Scale)
		if l.UseScaleDegrees {
			fmt.Fprintf(&b, "n(%q)", pattern)
		} else {
			fmt.Fprintf(&b, "note(%q)", pattern)
		}
		if l.OctaveShift != 0 {
			// note() patterns count in semitones, n() patterns in
			// scale degrees
			perOctave := 12
			if l.UseScaleDegrees {
				perOctave = 7
			}
			if l.OctaveShift < 0 {
				fmt.Fprintf(&b, ".sub(%d)", -l.OctaveShift*perOctave)
			} else {
				fmt.Fprintf(&b, ".add(%d)", l.OctaveShift*perOctave)
			}
		}
		if l.ScaleSpec != "" {
			fmt.Fprintf(&b, ".scale(%q)", l.ScaleSpec)
		}
		fmt.Fprintf(&b, ".s(%q)", l.Instrument)
	}

	fmt.Fprintf(&b, ".gain(%g)", l.Gain)
	if l.LPF > 0 {
		fmt.Fprintf(&b, ".lpf(%d)", l.LPF)
	}
	return b.String(), nil
}

// Script renders a whole composition as a runnable Strudel script
func Script(c music.Composition) (string, error) {
	var b strings.Builder
	// Strudel counts cycles, one cycle per bar of four beats
	fmt.Fprintf(&b, "setcpm(%g)\n\n", float64(c.BPM)/4.0)

	for _, layer := range c.Layers {
		expr, err := LayerExpression(layer)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "$: %s\n", expr)
	}
	return b.String(), nil
}

// ShareLink encodes a script into a strudel.cc URL that opens the
// pattern directly in the player
func ShareLink(script string) string {
	return ShareBaseURL + base64.StdEncoding.EncodeToString([]byte(script))
}
