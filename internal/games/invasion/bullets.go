package invasion

import "github.com/vovakirdan/alien-invasion/internal/core"

// fireBullet launches a bullet from the ship if fewer than the allowed
// number are in flight. Reports whether a bullet was fired.
func (g *Game) fireBullet() bool {
	if g.bullets.Len() >= g.settings.BulletsAllowed {
		return false
	}
	g.bullets.Add(NewBullet(&g.settings, &g.ship))
	g.emit(core.EventFired)
	return true
}

// updateBullets runs the bullet phase: movement, removal of bullets that
// left the screen, then collisions with the fleet.
func (g *Game) updateBullets() {
	g.bullets.Each(func(i int, b *Bullet) {
		b.Update(&g.settings)
		if b.Rect(&g.settings).Bottom() <= 0 {
			g.bullets.Remove(i)
		}
	})
	g.bullets.Compact()

	g.checkBulletAlienCollisions()
}

// checkBulletAlienCollisions removes every bullet that overlaps aliens along
// with all the aliens it overlaps, and scores them. Clearing the fleet
// starts the next level.
func (g *Game) checkBulletAlienCollisions() {
	hits := false

	g.bullets.Each(func(bi int, b *Bullet) {
		br := b.Rect(&g.settings)
		destroyed := 0
		g.fleet.Each(func(ai int, a *Alien) {
			if a.Rect(&g.settings).Intersects(br) {
				g.fleet.Remove(ai)
				destroyed++
			}
		})
		if destroyed == 0 {
			return
		}
		g.bullets.Remove(bi)
		g.stats.Score += g.settings.AlienPoints * destroyed
		g.board.PrepScore(g.stats.Score)
		g.emit(core.EventAlienDestroyed)
		hits = true
	})

	g.bullets.Compact()
	g.fleet.Compact()

	if hits && g.stats.CheckHighScore() {
		g.board.PrepHighScore(g.stats.HighScore)
	}

	if g.fleet.Len() == 0 && fleetCapacity(&g.settings) > 0 {
		g.startNewLevel()
	}
}

func (g *Game) startNewLevel() {
	g.bullets.Clear()
	g.settings.IncreaseSpeed()

	g.stats.Level++
	g.board.PrepLevel(g.stats.Level)

	CreateFleet(&g.settings, g.settings.ShipHeight, &g.fleet)
	g.emit(core.EventLevelUp)
}
