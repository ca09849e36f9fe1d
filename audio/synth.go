// Package audio renders evolved compositions to PCM and plays them
// through the system speaker. It is a rough preview of what the
// Strudel player will do with the pattern, not a faithful rendition.
package audio

import (
	"math"
	"math/rand/v2"

	"github.com/IvanM-2157801/GeneticMusic/parameter"
)

// Waveform types
const (
	waveSine = iota
	waveSquare
	waveSaw
	waveTriangle
	waveNoise
)

// waveForInstrument maps Strudel instrument names onto local waveforms.
// Unknown instruments fall back to sine.
func waveForInstrument(name string) int {
	switch name {
	case "square":
		return waveSquare
	case "sawtooth", "supersaw":
		return waveSaw
	case "triangle":
		return waveTriangle
	default:
		return waveSine
	}
}

// floatBuffer is mono float64 samples at unity gain
type floatBuffer []float64

// oscillator generates raw waveform samples
func oscillator(waveType int, freq float64, samples int) floatBuffer {
	buf := make(floatBuffer, samples)
	phase := 0.0
	phaseInc := freq / float64(parameter.AudioSampleRate)

	for i := 0; i < samples; i++ {
		switch waveType {
		case waveSine:
			buf[i] = math.Sin(2 * math.Pi * phase)
		case waveSquare:
			if phase < 0.5 {
				buf[i] = 1.0
			} else {
				buf[i] = -1.0
			}
		case waveSaw:
			buf[i] = 2.0 * (phase - 0.5)
		case waveTriangle:
			if phase < 0.5 {
				buf[i] = 4.0*phase - 1.0
			} else {
				buf[i] = 3.0 - 4.0*phase
			}
		case waveNoise:
			buf[i] = rand.Float64()*2 - 1
		}

		phase += phaseInc
		if phase >= 1.0 {
			phase -= 1.0
		}
	}
	return buf
}

// applyEnvelope applies attack/release envelope in place
func applyEnvelope(buf floatBuffer, attackSec, releaseSec float64) {
	total := len(buf)
	attackSamples := int(attackSec * float64(parameter.AudioSampleRate))
	releaseSamples := int(releaseSec * float64(parameter.AudioSampleRate))

	releaseStart := total - releaseSamples
	if releaseStart < attackSamples {
		releaseStart = attackSamples
	}

	for i := 0; i < total; i++ {
		vol := 1.0
		if i < attackSamples && attackSamples > 0 {
			vol = float64(i) / float64(attackSamples)
		} else if i >= releaseStart && releaseSamples > 0 {
			vol = float64(total-i) / float64(releaseSamples)
		}
		buf[i] *= vol
	}
}

// mixAt adds src into dst starting at offset, scaled
func mixAt(dst, src floatBuffer, offset int, scale float64) {
	for i, s := range src {
		j := offset + i
		if j >= len(dst) {
			break
		}
		dst[j] += s * scale
	}
}

// durationToSamples converts seconds to a sample count
func durationToSamples(d float64) int {
	return int(d * float64(parameter.AudioSampleRate))
}

// NoteFrequencies contains precomputed frequencies for MIDI notes 0-127
// A4 (note 69) = 440Hz, equal temperament
var NoteFrequencies [128]float64

func init() {
	for i := range NoteFrequencies {
		NoteFrequencies[i] = 440.0 * math.Pow(2, (float64(i)-69.0)/12.0)
	}
}

// NoteFreq returns frequency in Hz for a MIDI note number
func NoteFreq(midi int) float64 {
	if midi < 0 || midi >= 128 {
		return 0
	}
	return NoteFrequencies[midi]
}

// --- Drum hits (unity gain) ---

// drumHit synthesizes one hit for a Strudel drum sound name. Kicks are
// a decaying low sine, snares and claps mix noise with a body tone,
// hats are a short noise burst.
func drumHit(sound string) floatBuffer {
	switch sound {
	case "bd":
		buf := oscillator(waveSine, 60.0, durationToSamples(0.15))
		applyEnvelope(buf, 0.002, 0.12)
		return buf
	case "sd", "cp":
		noise := oscillator(waveNoise, 0, durationToSamples(0.12))
		body := oscillator(waveSine, 180.0, durationToSamples(0.12))
		for i := range noise {
			noise[i] = noise[i]*0.7 + body[i]*0.3
		}
		applyEnvelope(noise, 0.001, 0.10)
		return noise
	case "hh", "rd":
		buf := oscillator(waveNoise, 0, durationToSamples(0.05))
		applyEnvelope(buf, 0.001, 0.04)
		return buf
	default:
		buf := oscillator(waveNoise, 0, durationToSamples(0.08))
		applyEnvelope(buf, 0.001, 0.06)
		return buf
	}
}
