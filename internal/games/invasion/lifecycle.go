package invasion

import "github.com/vovakirdan/alien-invasion/internal/core"

// shipHit handles the loss of a ship. While ships remain, the board is
// rebuilt and the game freezes for the hit pause. Losing the last ship ends
// the session and leaves the final picture on screen.
func (g *Game) shipHit() {
	if g.stats.ShipsLeft > 0 {
		g.stats.ShipsLeft--
	}
	g.emit(core.EventShipHit)

	if g.stats.ShipsLeft > 0 {
		g.board.PrepShips(g.stats.ShipsLeft)

		g.fleet.Clear()
		g.bullets.Clear()

		CreateFleet(&g.settings, g.settings.ShipHeight, &g.fleet)
		g.ship.Center(&g.settings)

		g.pausedUntil = g.tick + g.settings.HitPauseTicks + 1
		return
	}

	g.board.PrepShips(0)
	if g.stats.Active {
		g.stats.Active = false
		g.paused = false
		g.pointerVisible = true
		g.emit(core.EventGameOver)
	}
}

// hitPaused reports whether the game is frozen after losing a ship.
func (g *Game) hitPaused() bool {
	return g.tick < g.pausedUntil
}
