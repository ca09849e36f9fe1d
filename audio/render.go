package audio

import (
	"github.com/IvanM-2157801/GeneticMusic/music"
	"github.com/IvanM-2157801/GeneticMusic/parameter"
)

// RenderComposition synthesizes one pass through every layer into a
// mono buffer. Layers are mixed at their configured gains; the caller
// owns master volume.
func RenderComposition(c music.Composition) floatBuffer {
	bpm := c.BPM
	if bpm <= 0 {
		bpm = parameter.DefaultBPM
	}
	beatSec := 60.0 / float64(bpm)

	totalBeats := 0
	for _, layer := range c.Layers {
		if layer.Rhythm.Beats() > totalBeats {
			totalBeats = layer.Rhythm.Beats()
		}
	}
	if totalBeats == 0 {
		return nil
	}

	// Trailing headroom lets the last release decay instead of clicking
	out := make(floatBuffer, durationToSamples(float64(totalBeats)*beatSec+0.5))
	for _, layer := range c.Layers {
		renderLayer(out, layer, beatSec)
	}

	normalize(out)
	return out
}

func renderLayer(out floatBuffer, layer music.Layer, beatSec float64) {
	if layer.IsDrum {
		renderDrums(out, layer, beatSec)
		return
	}

	wave := waveForInstrument(layer.Instrument)
	noteIdx := 0
	for beat, subdivisions := range layer.Rhythm {
		if subdivisions == 0 {
			continue
		}
		slotSec := beatSec / float64(subdivisions)
		for slot := 0; slot < subdivisions && noteIdx < len(layer.Phrase); slot++ {
			note := layer.Phrase[noteIdx]
			noteIdx++
			if note.IsRest() {
				continue
			}

			midi := note.MIDIPitch() + 12*layer.OctaveShift
			freq := NoteFreq(midi)
			if freq == 0 {
				continue
			}

			buf := oscillator(wave, freq, durationToSamples(slotSec))
			applyEnvelope(buf, parameter.NoteAttack, parameter.NoteRelease)

			velocity := note.Velocity
			if velocity <= 0 {
				velocity = 1.0
			}
			offset := durationToSamples(float64(beat)*beatSec + float64(slot)*slotSec)
			mixAt(out, buf, offset, layer.Gain*velocity)
		}
	}
}

func renderDrums(out floatBuffer, layer music.Layer, beatSec float64) {
	hit := drumHit(layer.DrumSound)
	for beat, subdivisions := range layer.Rhythm {
		if subdivisions == 0 {
			continue
		}
		slotSec := beatSec / float64(subdivisions)
		for slot := 0; slot < subdivisions; slot++ {
			offset := durationToSamples(float64(beat)*beatSec + float64(slot)*slotSec)
			mixAt(out, hit, offset, layer.Gain)
		}
	}
}

// normalize rescales the mix so its peak sits at unity, leaving quiet
// mixes untouched
func normalize(buf floatBuffer) {
	peak := 0.0
	for _, s := range buf {
		if s > peak {
			peak = s
		} else if -s > peak {
			peak = -s
		}
	}
	if peak <= 1.0 {
		return
	}
	for i := range buf {
		buf[i] /= peak
	}
}
