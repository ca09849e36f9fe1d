package parameter

import "time"

// Audio Preview
const (
	// AudioSampleRate for offline synthesis and playback
	AudioSampleRate = 44100

	// AudioBufferDuration for the speaker ring buffer
	AudioBufferDuration = 100 * time.Millisecond

	// NoteAttack and NoteRelease shape the per-note envelope
	NoteAttack  = 0.005
	NoteRelease = 0.05

	// PreviewMasterVolume keeps summed layers below clipping
	PreviewMasterVolume = 0.35
)
