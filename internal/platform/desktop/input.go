package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// keyBindings maps window keys to game keys.
var keyBindings = []struct {
	key  ebiten.Key
	game core.Key
}{
	{ebiten.KeyArrowLeft, core.KeyLeft},
	{ebiten.KeyA, core.KeyLeft},
	{ebiten.KeyArrowRight, core.KeyRight},
	{ebiten.KeyD, core.KeyRight},
	{ebiten.KeySpace, core.KeyFire},
	{ebiten.KeyEnter, core.KeyConfirm},
	{ebiten.KeyP, core.KeyPause},
	{ebiten.KeyEscape, core.KeyPause},
	{ebiten.KeyQ, core.KeyQuit},
}

// pollInput collects this tick's key transitions, clicks and window close
// requests into the frame, in that order.
func pollInput(frame *core.InputFrame) {
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			frame.Push(core.KeyDown(b.game))
		}
		if inpututil.IsKeyJustReleased(b.key) {
			frame.Push(core.KeyUp(b.game))
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := cellAt(ebiten.CursorPosition())
		frame.Push(core.PointerPress(x, y))
	}

	if ebiten.IsWindowBeingClosed() {
		frame.Push(core.QuitEvent())
	}
}

// cursorMode shows the system cursor only while the game wants a pointer.
func cursorMode(visible bool) ebiten.CursorModeType {
	if visible {
		return ebiten.CursorModeVisible
	}
	return ebiten.CursorModeHidden
}
