package audio

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/IvanM-2157801/GeneticMusic/music"
	"github.com/IvanM-2157801/GeneticMusic/parameter"
)

// PlayerConfig controls preview playback
type PlayerConfig struct {
	MasterVolume float64
	Loops        int // times to repeat the pattern, minimum 1
}

// DefaultPlayerConfig returns the stock preview settings
func DefaultPlayerConfig() PlayerConfig {
	return PlayerConfig{
		MasterVolume: parameter.PreviewMasterVolume,
		Loops:        1,
	}
}

// LoadPlayerConfig reads preview settings from environment variables
// on top of the defaults: GENETIC_MUSIC_VOLUME (0-100) and
// GENETIC_MUSIC_LOOPS.
func LoadPlayerConfig() PlayerConfig {
	cfg := DefaultPlayerConfig()

	if volume := os.Getenv("GENETIC_MUSIC_VOLUME"); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.MasterVolume = float64(val) / 100.0
			if cfg.MasterVolume < 0 {
				cfg.MasterVolume = 0
			}
			if cfg.MasterVolume > 1 {
				cfg.MasterVolume = 1
			}
		}
	}
	if loops := os.Getenv("GENETIC_MUSIC_LOOPS"); loops != "" {
		if val, err := strconv.Atoi(loops); err == nil && val > 0 {
			cfg.Loops = val
		}
	}
	return cfg
}

// Player renders compositions and plays them through the speaker
type Player struct {
	mu          sync.Mutex
	cfg         PlayerConfig
	initialized bool
}

// NewPlayer creates a player with the given configuration
func NewPlayer(cfg PlayerConfig) *Player {
	if cfg.Loops < 1 {
		cfg.Loops = 1
	}
	return &Player{cfg: cfg}
}

// Initialize opens the speaker. Safe to call more than once.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	sr := beep.SampleRate(parameter.AudioSampleRate)
	if err := speaker.Init(sr, sr.N(parameter.AudioBufferDuration)); err != nil {
		return fmt.Errorf("speaker init: %w", err)
	}
	p.initialized = true
	return nil
}

// Play renders the composition and blocks until playback finishes or
// the context is cancelled
func (p *Player) Play(ctx context.Context, c music.Composition) error {
	if err := p.Initialize(); err != nil {
		return err
	}

	buf := RenderComposition(c)
	if len(buf) == 0 {
		return fmt.Errorf("composition renders to silence")
	}

	streamer := &bufferStreamer{
		data:   buf,
		volume: p.cfg.MasterVolume,
		loops:  p.cfg.Loops,
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(streamer, beep.Callback(func() { close(done) })))

	select {
	case <-ctx.Done():
		speaker.Clear()
		return ctx.Err()
	case <-done:
		return nil
	}
}

// Duration reports how long one pass of the composition plays
func Duration(c music.Composition) time.Duration {
	samples := len(RenderComposition(c))
	return time.Duration(float64(samples) / float64(parameter.AudioSampleRate) * float64(time.Second))
}

// bufferStreamer streams a mono buffer to both channels at a fixed
// volume, repeating it loops times
type bufferStreamer struct {
	data   floatBuffer
	volume float64
	loops  int
	pos    int
	played int
}

func (bs *bufferStreamer) Stream(samples [][2]float64) (int, bool) {
	if bs.played >= bs.loops {
		return 0, false
	}

	n := 0
	for n < len(samples) {
		if bs.pos >= len(bs.data) {
			bs.played++
			bs.pos = 0
			if bs.played >= bs.loops {
				break
			}
		}
		s := bs.data[bs.pos] * bs.volume
		samples[n][0] = s
		samples[n][1] = s
		bs.pos++
		n++
	}
	return n, n > 0
}

func (bs *bufferStreamer) Err() error {
	return nil
}
