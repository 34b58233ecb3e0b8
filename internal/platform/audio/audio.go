// Package audio plays short sound cues for game events.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

const sampleRate = beep.SampleRate(44100)

// cue is a single sine tone.
type cue struct {
	freq     float64
	duration time.Duration
}

// cues maps game events to their sounds.
var cues = map[snake.EventKind]cue{
	snake.EventAte:      {freq: 880, duration: 50 * time.Millisecond},
	snake.EventSpeedUp:  {freq: 1320, duration: 80 * time.Millisecond},
	snake.EventGameOver: {freq: 220, duration: 300 * time.Millisecond},
}

// Player is a snake.Listener that beeps on game events.
// A Player that failed to initialise stays silent.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a silent player. Call Init to open the speaker.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the audio device.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops all sounds and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}

// HandleEvent implements snake.Listener. It never blocks on playback.
func (p *Player) HandleEvent(ev snake.Event) {
	c, ok := cues[ev.Kind]
	if !ok {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.initialized {
		return
	}

	s, err := tone(c)
	if err != nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// tone builds a quiet streamer for c.
func tone(c cue) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, c.freq)
	if err != nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: beep.Take(sampleRate.N(c.duration), sine),
		Base:     2,
		Volume:   -3,
	}, nil
}
