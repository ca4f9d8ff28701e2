package invasion

import (
	"math"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Settings holds everything a session needs to know about sizes, colors and
// speeds. Static fields are fixed for the session; the dynamic block changes
// only through InitializeDynamic, IncreaseSpeed and ChangeFleetDirection.
type Settings struct {
	ScreenW, ScreenH int
	BgColor          core.Color
	TextColor        core.Color

	ShipWidth, ShipHeight int
	ShipColor             core.Color
	ShipLimit             int

	BulletWidth, BulletHeight int
	BulletColor               core.Color
	BulletsAllowed            int

	AlienWidth, AlienHeight int
	AlienColors             []core.Color
	FleetDropSpeed          int

	SpeedupScale  float64
	ScoreScale    float64
	HitPauseTicks int

	// Dynamic
	ShipSpeed      float64
	BulletSpeed    float64
	AlienSpeed     float64
	FleetDirection int // 1 moves right, -1 moves left
	AlienPoints    int

	base config.InvasionConfig
}

// NewSettings derives session settings from a validated config and the
// platform's screen. Dynamic values start at their base.
func NewSettings(cfg config.InvasionConfig, runtime core.RuntimeConfig) Settings {
	tickRate := runtime.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}

	s := Settings{
		ScreenW:   runtime.ScreenW,
		ScreenH:   runtime.ScreenH,
		BgColor:   colorOr(cfg.Screen.BgColor, core.ColorDefault),
		TextColor: colorOr(cfg.Screen.TextColor, core.ColorBrightWhite),

		ShipWidth:  cfg.Ship.Width,
		ShipHeight: cfg.Ship.Height,
		ShipColor:  colorOr(cfg.Ship.Color, core.ColorBrightCyan),
		ShipLimit:  cfg.Ship.Limit,

		BulletWidth:    cfg.Bullet.Width,
		BulletHeight:   cfg.Bullet.Height,
		BulletColor:    colorOr(cfg.Bullet.Color, core.ColorBrightYellow),
		BulletsAllowed: cfg.Bullet.Allowed,

		AlienWidth:     cfg.Fleet.AlienWidth,
		AlienHeight:    cfg.Fleet.AlienHeight,
		FleetDropSpeed: cfg.Fleet.DropSpeed,

		SpeedupScale:  cfg.Scoring.SpeedupScale,
		ScoreScale:    cfg.Scoring.ScoreScale,
		HitPauseTicks: int(math.Round(cfg.Gameplay.HitPause * float64(tickRate))),

		base: cfg,
	}

	for _, name := range cfg.Fleet.Colors {
		s.AlienColors = append(s.AlienColors, colorOr(name, core.ColorGreen))
	}
	if len(s.AlienColors) == 0 {
		s.AlienColors = []core.Color{core.ColorGreen}
	}

	s.InitializeDynamic()
	return s
}

// InitializeDynamic restores the values that speed up during a game.
func (s *Settings) InitializeDynamic() {
	s.ShipSpeed = s.base.Ship.SpeedFactor
	s.BulletSpeed = s.base.Bullet.SpeedFactor
	s.AlienSpeed = s.base.Fleet.AlienSpeedFactor
	s.FleetDirection = 1
	s.AlienPoints = s.base.Scoring.AlienPoints
}

// IncreaseSpeed scales speeds and the alien point value for the next level.
func (s *Settings) IncreaseSpeed() {
	s.ShipSpeed *= s.SpeedupScale
	s.BulletSpeed *= s.SpeedupScale
	s.AlienSpeed *= s.SpeedupScale
	s.AlienPoints = int(float64(s.AlienPoints) * s.ScoreScale)
}

// ChangeFleetDirection flips the horizontal direction of the fleet.
func (s *Settings) ChangeFleetDirection() {
	s.FleetDirection *= -1
}

// AlienColor returns the color for the given fleet row.
func (s *Settings) AlienColor(row int) core.Color {
	return s.AlienColors[row%len(s.AlienColors)]
}

func colorOr(name string, fallback core.Color) core.Color {
	c, err := core.ParseColor(name)
	if err != nil {
		return fallback
	}
	return c
}
