package tui

import (
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

func TestHoldTrackerPressAndRepeat(t *testing.T) {
	h := newHoldTracker()
	now := time.Unix(0, 0)

	if !h.Press(core.KeyLeft, now) {
		t.Error("first press should be reported as fresh")
	}
	if h.Press(core.KeyLeft, now.Add(500*time.Millisecond)) {
		t.Error("auto-repeat should not be reported as fresh")
	}
	if !h.Held(core.KeyLeft) {
		t.Error("key should be held")
	}
	if h.Held(core.KeyRight) {
		t.Error("right was never pressed")
	}
}

func TestHoldTrackerExpire(t *testing.T) {
	tests := []struct {
		name     string
		repeats  int
		after    time.Duration
		released bool
	}{
		{"waiting for first repeat", 0, 500 * time.Millisecond, false},
		{"first repeat never came", 0, 600 * time.Millisecond, true},
		{"repeating", 3, 100 * time.Millisecond, false},
		{"repeats stopped", 3, 150 * time.Millisecond, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHoldTracker()
			last := time.Unix(0, 0)
			h.Press(core.KeyRight, last)
			for i := range tt.repeats {
				last = last.Add(time.Duration(30*(i+1)) * time.Millisecond)
				h.Press(core.KeyRight, last)
			}

			got := h.Expire(last.Add(tt.after))
			if tt.released != slices.Contains(got, core.KeyRight) {
				t.Errorf("Expire() = %v, want released=%v", got, tt.released)
			}
			if h.Held(core.KeyRight) == tt.released {
				t.Errorf("Held() = %v after Expire", h.Held(core.KeyRight))
			}
		})
	}
}

func TestHoldTrackerReleaseAll(t *testing.T) {
	h := newHoldTracker()
	now := time.Unix(0, 0)
	h.Press(core.KeyLeft, now)
	h.Press(core.KeyRight, now)

	if !h.Release(core.KeyLeft) {
		t.Error("Release should report a held key")
	}
	if h.Release(core.KeyLeft) {
		t.Error("Release should not report a key twice")
	}

	got := h.ReleaseAll()
	if !slices.Equal(got, []core.Key{core.KeyRight}) {
		t.Errorf("ReleaseAll() = %v", got)
	}
	if len(h.Expire(now.Add(time.Hour))) != 0 {
		t.Error("nothing should be left to expire")
	}
}
