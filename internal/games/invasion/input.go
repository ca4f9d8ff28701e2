package invasion

import "github.com/vovakirdan/alien-invasion/internal/core"

// checkEvents dispatches the frame's events in order. It reports true as
// soon as a quit event or the quit key is seen.
//
// During the hit pause events are held back and replayed, in order, on the
// first tick after it. While the screen is too small only quits and key
// releases get through.
func (g *Game) checkEvents(in core.InputFrame) bool {
	if g.hitPaused() {
		return g.deferEvents(in.Events)
	}

	events := in.Events
	if len(g.pending) > 0 {
		events = append(g.pending, events...)
		g.pending = nil
	}

	for _, ev := range events {
		if isQuit(ev) {
			return true
		}
		switch ev.Kind {
		case core.InputKeyDown:
			if g.screenTooSmall {
				continue
			}
			g.checkKeyDown(ev.Key)
		case core.InputKeyUp:
			g.checkKeyUp(ev.Key)
		case core.InputPointerPress:
			if g.screenTooSmall {
				continue
			}
			g.checkPlayButton(ev.X, ev.Y)
		}
	}
	return false
}

// deferEvents queues events that arrive during the hit pause. Quits are
// never queued.
func (g *Game) deferEvents(events []core.InputEvent) bool {
	for _, ev := range events {
		if isQuit(ev) {
			return true
		}
		g.pending = append(g.pending, ev)
	}
	return false
}

func isQuit(ev core.InputEvent) bool {
	return ev.Kind == core.InputQuit ||
		(ev.Kind == core.InputKeyDown && ev.Key == core.KeyQuit)
}

func (g *Game) checkKeyDown(k core.Key) {
	if g.paused && k != core.KeyPause {
		return
	}

	switch k {
	case core.KeyRight:
		g.ship.MovingRight = true
	case core.KeyLeft:
		g.ship.MovingLeft = true
	case core.KeyFire:
		g.fireBullet()
	case core.KeyConfirm:
		if !g.stats.Active {
			g.startGame()
		}
	case core.KeyPause:
		if g.stats.Active {
			g.paused = !g.paused
		}
	}
}

func (g *Game) checkKeyUp(k core.Key) {
	switch k {
	case core.KeyRight:
		g.ship.MovingRight = false
	case core.KeyLeft:
		g.ship.MovingLeft = false
	}
}

// checkPlayButton starts a new game when the Play button is pressed while
// no game is running.
func (g *Game) checkPlayButton(x, y int) {
	if g.button.Rect.Contains(x, y) && !g.stats.Active {
		g.startGame()
	}
}

// startGame resets the session and begins play.
func (g *Game) startGame() {
	g.settings.InitializeDynamic()
	g.pointerVisible = false

	g.stats.Reset()
	g.stats.Active = true
	g.paused = false
	g.pausedUntil = 0
	g.played = true

	g.board.PrepAll(&g.stats)

	g.fleet.Clear()
	g.bullets.Clear()

	CreateFleet(&g.settings, g.settings.ShipHeight, &g.fleet)
	g.ship.Center(&g.settings)

	g.emit(core.EventNewGame)
}
