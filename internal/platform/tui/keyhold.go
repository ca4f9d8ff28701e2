package tui

import (
	"time"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Terminals report key presses and auto-repeats but never releases. A held
// key is considered released once its repeats stop arriving.
const (
	firstRepeatDelay = 550 * time.Millisecond // Longer than the usual OS delay before auto-repeat starts
	repeatGap        = 120 * time.Millisecond // Several repeat intervals at typical rates
)

type heldKey struct {
	key       core.Key
	deadline  time.Time
	repeating bool
}

// holdTracker synthesizes key releases for movement keys.
type holdTracker struct {
	held []heldKey
}

func newHoldTracker() *holdTracker {
	return &holdTracker{}
}

// Press records a press of k at now. Reports true for a fresh press, false
// for an auto-repeat of a key already held.
func (h *holdTracker) Press(k core.Key, now time.Time) bool {
	for i := range h.held {
		if h.held[i].key == k {
			h.held[i].repeating = true
			h.held[i].deadline = now.Add(repeatGap)
			return false
		}
	}
	h.held = append(h.held, heldKey{key: k, deadline: now.Add(firstRepeatDelay)})
	return true
}

// Held reports whether k is currently held.
func (h *holdTracker) Held(k core.Key) bool {
	for _, hk := range h.held {
		if hk.key == k {
			return true
		}
	}
	return false
}

// Release forgets k. Reports whether it was held.
func (h *holdTracker) Release(k core.Key) bool {
	for i, hk := range h.held {
		if hk.key == k {
			h.held = append(h.held[:i], h.held[i+1:]...)
			return true
		}
	}
	return false
}

// Expire returns the keys whose repeats stopped before now, in press order,
// and forgets them.
func (h *holdTracker) Expire(now time.Time) []core.Key {
	var released []core.Key
	kept := h.held[:0]
	for _, hk := range h.held {
		if now.After(hk.deadline) {
			released = append(released, hk.key)
			continue
		}
		kept = append(kept, hk)
	}
	h.held = kept
	return released
}

// ReleaseAll forgets every held key and returns them.
func (h *holdTracker) ReleaseAll() []core.Key {
	released := make([]core.Key, 0, len(h.held))
	for _, hk := range h.held {
		released = append(released, hk.key)
	}
	h.held = h.held[:0]
	return released
}
