package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Player mixes sound effects into the system speaker. A Player that was
// never initialized, or was closed, silently drops sounds.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewPlayer creates a player with the given linear volume.
func NewPlayer(volume float64) *Player {
	return &Player{
		mixer:  &beep.Mixer{},
		volume: volume,
	}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: cannot open speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Play starts a sound effect.
func (p *Player) Play(s Sound) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	if st := NewEffect(s, p.volume); st != nil {
		speaker.Lock()
		p.mixer.Add(st)
		speaker.Unlock()
	}
}

// PlayEvents plays the sound for each distinct event of a tick.
func (p *Player) PlayEvents(events []core.GameEvent) {
	seen := make(map[Sound]bool, len(events))
	for _, e := range events {
		s, ok := ForEvent(e)
		if !ok || seen[s] {
			continue
		}
		seen[s] = true
		p.Play(s)
	}
}

// Close stops all sounds and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
