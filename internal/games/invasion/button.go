package invasion

import (
	"unicode/utf8"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

const (
	buttonWidth  = 12
	buttonHeight = 3
)

// Button is a boxed label centred on the screen. Its rect is the target for
// pointer presses.
type Button struct {
	Label string
	Rect  core.Rect
}

// NewButton centres a button on the screen described by s.
func NewButton(s *Settings, label string) Button {
	w := max(buttonWidth, utf8.RuneCountInString(label)+4)
	return Button{
		Label: label,
		Rect:  core.NewRect((s.ScreenW-w)/2, (s.ScreenH-buttonHeight)/2, w, buttonHeight),
	}
}

// Draw renders the button with its label in the middle.
func (b Button) Draw(dst *core.Screen, c core.Color) {
	dst.DrawRect(b.Rect, ' ', c)
	dst.DrawBox(b.Rect, c)

	labelX := b.Rect.X + (b.Rect.W-utf8.RuneCountInString(b.Label))/2
	dst.DrawTextColor(labelX, b.Rect.Y+b.Rect.H/2, b.Label, c)
}
