package invasion

// NumberAliensX returns how many aliens fit in a row, leaving an alien width
// of margin on each side and one alien width between neighbours.
func NumberAliensX(s *Settings, alienWidth int) int {
	if alienWidth <= 0 {
		return 0
	}
	availableX := s.ScreenW - 2*alienWidth
	return max(availableX/(2*alienWidth), 0)
}

// NumberRows returns how many alien rows fit above the ship, leaving three
// alien heights of room for the player.
func NumberRows(s *Settings, shipHeight, alienHeight int) int {
	if alienHeight <= 0 {
		return 0
	}
	availableY := s.ScreenH - 3*alienHeight - shipHeight
	return max(availableY/(2*alienHeight), 0)
}

// CreateFleet fills the fleet with a full grid of aliens.
func CreateFleet(s *Settings, shipHeight int, fleet *Group[Alien]) {
	cols := NumberAliensX(s, s.AlienWidth)
	rows := NumberRows(s, shipHeight, s.AlienHeight)

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			fleet.Add(newAlien(s, col, row))
		}
	}
}

func newAlien(s *Settings, col, row int) Alien {
	w, h := s.AlienWidth, s.AlienHeight
	return Alien{
		X:   float64(w + 2*w*col),
		Y:   float64(h + 2*h*row),
		Row: row,
	}
}

// fleetCapacity returns the number of aliens CreateFleet would place.
func fleetCapacity(s *Settings) int {
	return NumberAliensX(s, s.AlienWidth) * NumberRows(s, s.ShipHeight, s.AlienHeight)
}

// checkFleetEdges drops the fleet and reverses it once if any alien touches
// an edge.
func (g *Game) checkFleetEdges() {
	if g.fleet.Any(func(a *Alien) bool { return a.CheckEdges(&g.settings) }) {
		g.changeFleetDirection()
	}
}

func (g *Game) changeFleetDirection() {
	drop := float64(g.settings.FleetDropSpeed)
	g.fleet.Each(func(_ int, a *Alien) {
		a.Y += drop
	})
	g.settings.ChangeFleetDirection()
}

// updateAliens runs the fleet motion phase: edge handling, movement, then
// the bottom and ship collision checks.
func (g *Game) updateAliens() {
	g.checkFleetEdges()
	g.fleet.Each(func(_ int, a *Alien) {
		a.Update(&g.settings)
	})

	if g.checkAliensBottom() {
		return
	}

	shipRect := g.ship.Rect(&g.settings)
	if g.fleet.Any(func(a *Alien) bool { return a.Rect(&g.settings).Intersects(shipRect) }) {
		g.shipHit()
	}
}

// checkAliensBottom treats an alien reaching the bottom of the screen like a
// hit on the ship. Reports whether that happened.
func (g *Game) checkAliensBottom() bool {
	if g.fleet.Any(func(a *Alien) bool { return a.Rect(&g.settings).Bottom() >= g.settings.ScreenH }) {
		g.shipHit()
		return true
	}
	return false
}
