package invasion

import "github.com/vovakirdan/alien-invasion/internal/core"

// Sprites used when the configured sizes match them. Other sizes are drawn as
// solid blocks.
var (
	shipSprite = []string{
		" /^\\ ",
		"<=#=>",
	}

	alienSprites = [][]string{
		{"/o\\", "^ ^"},
		{"{@}", "/ \\"},
		{"<O>", "v v"},
		{"]X[", "' '"},
	}
)

const (
	shipGlyph   = 'A' // Remaining ships in the scoreboard
	alienGlyph  = '#'
	bulletGlyph = '|'
)

// Ship is the player's ship. It only moves horizontally along the bottom of
// the screen.
type Ship struct {
	X           float64
	Y           int
	MovingRight bool
	MovingLeft  bool
}

// Rect returns the ship's bounding box.
func (sh *Ship) Rect(s *Settings) core.Rect {
	return core.RectAt(sh.X, float64(sh.Y), s.ShipWidth, s.ShipHeight)
}

// Center places the ship at the bottom centre of the screen.
func (sh *Ship) Center(s *Settings) {
	sh.X = float64(s.ScreenW-s.ShipWidth) / 2
	sh.Y = s.ScreenH - s.ShipHeight
}

// Update moves the ship according to its movement flags without leaving the
// screen.
func (sh *Ship) Update(s *Settings) {
	r := sh.Rect(s)
	if sh.MovingRight && r.Right() < s.ScreenW {
		sh.X += s.ShipSpeed
	}
	if sh.MovingLeft && r.X > 0 {
		sh.X -= s.ShipSpeed
	}
	sh.X = core.Clamp(sh.X, 0, float64(max(s.ScreenW-s.ShipWidth, 0)))
}

// Alien is one member of the fleet.
type Alien struct {
	X   float64
	Y   float64
	Row int // Fleet row, selects sprite and color
}

// Rect returns the alien's bounding box.
func (a *Alien) Rect(s *Settings) core.Rect {
	return core.RectAt(a.X, a.Y, s.AlienWidth, s.AlienHeight)
}

// CheckEdges reports whether the alien touches the left or right screen edge.
// Positions are compared unrounded so a sub-cell step away from the edge
// clears the condition.
func (a *Alien) CheckEdges(s *Settings) bool {
	return a.X+float64(s.AlienWidth) >= float64(s.ScreenW) || a.X <= 0
}

// Update moves the alien horizontally in the fleet direction.
func (a *Alien) Update(s *Settings) {
	a.X += s.AlienSpeed * float64(s.FleetDirection)
}

// Bullet is a projectile fired straight up from the ship.
type Bullet struct {
	X int
	Y float64
}

// NewBullet creates a bullet at the ship's top centre.
func NewBullet(s *Settings, ship *Ship) Bullet {
	r := ship.Rect(s)
	return Bullet{
		X: r.CenterX() - s.BulletWidth/2,
		Y: float64(r.Y),
	}
}

// Rect returns the bullet's bounding box.
func (b *Bullet) Rect(s *Settings) core.Rect {
	return core.RectAt(float64(b.X), b.Y, s.BulletWidth, s.BulletHeight)
}

// Update moves the bullet up.
func (b *Bullet) Update(s *Settings) {
	b.Y -= s.BulletSpeed
}
