// Package audio plays a short chirp whenever the enemy is repelled.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/yohamta/donburi"

	"github.com/phanxgames/skitter"
)

// Config shapes the repel chirp.
type Config struct {
	SampleRate beep.SampleRate

	// BaseFreq is the pitch of a zero-length jump; longer jumps sound higher.
	BaseFreq float64
	MaxFreq  float64
	Duration time.Duration

	// Volume is linear gain in [0, 1].
	Volume float64
}

// DefaultConfig returns a quiet 60ms chirp.
func DefaultConfig() Config {
	return Config{
		SampleRate: beep.SampleRate(44100),
		BaseFreq:   440,
		MaxFreq:    1760,
		Duration:   60 * time.Millisecond,
		Volume:     0.4,
	}
}

// Chirp builds the sound for a jump of the given world distance.
func Chirp(cfg Config, distance float64) (beep.Streamer, error) {
	freq := cfg.BaseFreq + distance*4
	freq = math.Min(freq, cfg.MaxFreq)
	freq = math.Min(freq, float64(cfg.SampleRate)/2-1)

	tone, err := generators.SineTone(cfg.SampleRate, freq)
	if err != nil {
		return nil, fmt.Errorf("chirp tone %.0fHz: %w", freq, err)
	}
	return volume(beep.Take(cfg.SampleRate.N(cfg.Duration), tone), cfg.Volume), nil
}

// volume wraps s with linear gain. Zero or less is silent since log2(0)
// is -Inf.
func volume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}

// Player owns the speaker and plays a chirp per repel event.
type Player struct {
	mu          sync.Mutex
	cfg         Config
	initialized bool

	// play hands a chirp to the output; speaker.Play once initialized.
	play func(...beep.Streamer)
}

// NewPlayer returns a Player. Call Init before any sound is heard.
func NewPlayer(cfg Config) *Player {
	return &Player{cfg: cfg, play: speaker.Play}
}

// Init opens the speaker. Calling it again is a no-op.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.initialized {
		return nil
	}
	if err := speaker.Init(p.cfg.SampleRate, p.cfg.SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	p.initialized = true
	return nil
}

// Subscribe plays a chirp for every repel event delivered in world.
func (p *Player) Subscribe(world donburi.World) {
	skitter.OnRepel(world, p.playRepel)
}

func (p *Player) playRepel(e skitter.RepelEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	d := e.To.Sub(e.From)
	s, err := Chirp(p.cfg, math.Hypot(d.X, d.Y))
	if err != nil {
		return
	}
	p.play(s)
}

// Close stops anything still playing.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}
	speaker.Clear()
	p.initialized = false
}
