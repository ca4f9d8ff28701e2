package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Sound identifies a sound effect.
type Sound int

const (
	SoundShot Sound = iota
	SoundExplosion
	SoundShipHit
	SoundLevelUp
	SoundGameOver
	SoundStart
)

// String returns the sound's name.
func (s Sound) String() string {
	switch s {
	case SoundShot:
		return "shot"
	case SoundExplosion:
		return "explosion"
	case SoundShipHit:
		return "ship_hit"
	case SoundLevelUp:
		return "level_up"
	case SoundGameOver:
		return "game_over"
	case SoundStart:
		return "start"
	default:
		return "unknown"
	}
}

// ForEvent maps a game event to the sound it triggers.
func ForEvent(e core.GameEvent) (Sound, bool) {
	switch e {
	case core.EventFired:
		return SoundShot, true
	case core.EventAlienDestroyed:
		return SoundExplosion, true
	case core.EventShipHit:
		return SoundShipHit, true
	case core.EventLevelUp:
		return SoundLevelUp, true
	case core.EventGameOver:
		return SoundGameOver, true
	case core.EventNewGame:
		return SoundStart, true
	default:
		return 0, false
	}
}

// NewEffect synthesizes a sound at the given linear volume (1 is unchanged).
// Returns nil for an unknown sound.
func NewEffect(s Sound, volume float64) beep.Streamer {
	var st beep.Streamer
	switch s {
	case SoundShot:
		// Short descending zap
		st = shaped(1400, -9000, 90*time.Millisecond, WaveSquare)
	case SoundExplosion:
		st = beep.Mix(
			shaped(0, 0, 180*time.Millisecond, WaveNoise),
			withVolume(shaped(110, -300, 180*time.Millisecond, WaveSaw), 0.5),
		)
	case SoundShipHit:
		st = beep.Mix(
			shaped(0, 0, 400*time.Millisecond, WaveNoise),
			shaped(220, -400, 400*time.Millisecond, WaveSquare),
		)
	case SoundLevelUp:
		// Rising arpeggio C5 E5 G5 C6
		st = beep.Seq(
			shaped(523.25, 0, 70*time.Millisecond, WaveSquare),
			shaped(659.25, 0, 70*time.Millisecond, WaveSquare),
			shaped(783.99, 0, 70*time.Millisecond, WaveSquare),
			shaped(1046.5, 0, 140*time.Millisecond, WaveSquare),
		)
	case SoundGameOver:
		st = beep.Seq(
			shaped(392, 0, 180*time.Millisecond, WaveSaw),
			shaped(330, 0, 180*time.Millisecond, WaveSaw),
			shaped(262, -60, 400*time.Millisecond, WaveSaw),
		)
	case SoundStart:
		st = beep.Seq(
			shaped(440, 0, 60*time.Millisecond, WaveSine),
			shaped(880, 0, 120*time.Millisecond, WaveSine),
		)
	default:
		return nil
	}
	return withVolume(st, volume*0.4)
}
