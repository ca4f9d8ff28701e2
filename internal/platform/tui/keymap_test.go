package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestGameKey(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Key
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.KeyLeft},
		{"a", runeKey('a'), core.KeyLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.KeyRight},
		{"l", runeKey('l'), core.KeyRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.KeyFire},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.KeyConfirm},
		{"p", runeKey('p'), core.KeyPause},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.KeyPause},
		{"q", runeKey('q'), core.KeyQuit},
		{"unbound", runeKey('z'), core.KeyNone},
		{"ctrl+c is not a game key", tea.KeyMsg{Type: tea.KeyCtrlC}, core.KeyNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.GameKey(tt.msg); got != tt.want {
				t.Errorf("GameKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}
