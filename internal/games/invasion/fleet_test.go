package invasion

import (
	"slices"
	"testing"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

func TestNumberAliensX(t *testing.T) {
	tests := []struct {
		name       string
		screenW    int
		alienWidth int
		want       int
	}{
		{"default terminal", 80, 3, 12},
		{"pixel window", 1200, 60, 9},
		{"exact margins only", 6, 3, 0},
		{"one alien", 12, 3, 1},
		{"screen narrower than margins", 4, 3, 0},
		{"zero screen", 0, 3, 0},
		{"zero alien width", 80, 0, 0},
		{"negative alien width", 80, -2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Settings{ScreenW: tt.screenW}
			got := NumberAliensX(s, tt.alienWidth)
			if got != tt.want {
				t.Errorf("NumberAliensX(%d, %d) = %d, want %d", tt.screenW, tt.alienWidth, got, tt.want)
			}
		})
	}
}

func TestNumberRows(t *testing.T) {
	tests := []struct {
		name        string
		screenH     int
		shipHeight  int
		alienHeight int
		want        int
	}{
		{"default terminal", 24, 2, 2, 4},
		{"pixel window", 800, 48, 58, 4},
		{"one row", 12, 2, 2, 1},
		{"no room", 8, 2, 2, 0},
		{"zero screen", 0, 2, 2, 0},
		{"zero alien height", 24, 2, 0, 0},
		{"ship taller than screen", 10, 40, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &Settings{ScreenH: tt.screenH}
			got := NumberRows(s, tt.shipHeight, tt.alienHeight)
			if got != tt.want {
				t.Errorf("NumberRows(%d, %d, %d) = %d, want %d",
					tt.screenH, tt.shipHeight, tt.alienHeight, got, tt.want)
			}
		})
	}
}

func TestCreateFleetPositions(t *testing.T) {
	g := testGame(t, 80, 24)

	aliens := g.fleet.Items()
	if len(aliens) != 48 {
		t.Fatalf("fleet size = %d, want 48 (12 columns x 4 rows)", len(aliens))
	}

	checks := []struct {
		idx  int
		x, y float64
		row  int
	}{
		{0, 3, 2, 0},
		{1, 9, 2, 0},
		{11, 69, 2, 0},
		{12, 3, 6, 1},
		{47, 69, 14, 3},
	}
	for _, c := range checks {
		a := aliens[c.idx]
		if a.X != c.x || a.Y != c.y || a.Row != c.row {
			t.Errorf("alien %d = (%v, %v, row %d), want (%v, %v, row %d)",
				c.idx, a.X, a.Y, a.Row, c.x, c.y, c.row)
		}
	}
}

func TestCreateFleetEmptyGeometry(t *testing.T) {
	s := &Settings{ScreenW: 4, ScreenH: 4, AlienWidth: 3, AlienHeight: 2, ShipHeight: 2}
	var fleet Group[Alien]
	CreateFleet(s, s.ShipHeight, &fleet)
	if fleet.Len() != 0 {
		t.Errorf("fleet size = %d, want 0", fleet.Len())
	}
}

func TestFleetEdgeDropsOnce(t *testing.T) {
	g := testGame(t, 80, 24)
	g.startGame()

	// Two aliens on the right edge, one in the middle
	g.fleet.Clear()
	g.fleet.Add(Alien{X: 77, Y: 2})
	g.fleet.Add(Alien{X: 77, Y: 6, Row: 1})
	g.fleet.Add(Alien{X: 40, Y: 10, Row: 2})

	g.updateAliens()

	wantY := []float64{3, 7, 11}
	for i, a := range g.fleet.Items() {
		if a.Y != wantY[i] {
			t.Errorf("alien %d y = %v, want %v", i, a.Y, wantY[i])
		}
	}
	if g.settings.FleetDirection != -1 {
		t.Errorf("fleet direction = %d, want -1", g.settings.FleetDirection)
	}

	// One step away from the edge no longer counts as touching it
	g.updateAliens()
	for i, a := range g.fleet.Items() {
		if a.Y != wantY[i] {
			t.Errorf("second update: alien %d y = %v, want %v", i, a.Y, wantY[i])
		}
	}
	if g.settings.FleetDirection != -1 {
		t.Errorf("second update: fleet direction = %d, want -1", g.settings.FleetDirection)
	}
}

func TestFleetLeftEdge(t *testing.T) {
	g := testGame(t, 80, 24)
	g.startGame()
	g.settings.FleetDirection = -1

	g.fleet.Clear()
	g.fleet.Add(Alien{X: 0, Y: 2})

	g.updateAliens()

	a := g.fleet.Items()[0]
	if a.Y != 3 {
		t.Errorf("alien y = %v, want 3", a.Y)
	}
	if g.settings.FleetDirection != 1 {
		t.Errorf("fleet direction = %d, want 1", g.settings.FleetDirection)
	}
	if a.X <= 0 {
		t.Errorf("alien should move right after bouncing, x = %v", a.X)
	}
}

func TestAlienReachingBottomCostsShip(t *testing.T) {
	g := testGame(t, 80, 24)
	g.startGame()

	g.fleet.Clear()
	g.fleet.Add(Alien{X: 10, Y: 22})

	g.updateAliens()

	if g.stats.ShipsLeft != 2 {
		t.Errorf("ships left = %d, want 2", g.stats.ShipsLeft)
	}
	if g.fleet.Len() != 48 {
		t.Errorf("fleet should be rebuilt, size = %d", g.fleet.Len())
	}
	if !g.hitPaused() {
		t.Error("losing a ship should start the hit pause")
	}
}

func TestAlienTouchingShipCostsShip(t *testing.T) {
	g := testGame(t, 80, 24)
	g.startGame()

	ship := g.ship.Rect(&g.settings)
	g.fleet.Clear()
	g.fleet.Add(Alien{X: float64(ship.X + 1), Y: float64(ship.Y - 1)})

	g.updateAliens()

	if g.stats.ShipsLeft != 2 {
		t.Errorf("ships left = %d, want 2", g.stats.ShipsLeft)
	}
	if !slices.Contains(g.events, core.EventShipHit) {
		t.Error("expected a ship_hit event")
	}
}
