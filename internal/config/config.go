// Package config provides YAML-based game configuration loading and
// difficulty presets for the invasion game.
package config

// InvasionConfig contains all tunable settings of the game. Distances are in
// screen cells and speeds in cells per tick.
type InvasionConfig struct {
	Screen   ScreenConfig   `yaml:"screen"`
	Ship     ShipConfig     `yaml:"ship"`
	Bullet   BulletConfig   `yaml:"bullet"`
	Fleet    FleetConfig    `yaml:"fleet"`
	Scoring  ScoringConfig  `yaml:"scoring"`
	Gameplay GameplayConfig `yaml:"gameplay"`
}

// ScreenConfig defines the playfield look and minimum size.
type ScreenConfig struct {
	BgColor   string `yaml:"bg_color"`
	TextColor string `yaml:"text_color"`
	MinWidth  int    `yaml:"min_width"`
	MinHeight int    `yaml:"min_height"`
}

// ShipConfig defines the player's ship.
type ShipConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	SpeedFactor float64 `yaml:"speed_factor"`
	Color       string  `yaml:"color"`
	Limit       int     `yaml:"limit"` // Ships in reserve at the start of a game
}

// BulletConfig defines the player's bullets.
type BulletConfig struct {
	Width       int     `yaml:"width"`
	Height      int     `yaml:"height"`
	SpeedFactor float64 `yaml:"speed_factor"`
	Color       string  `yaml:"color"`
	Allowed     int     `yaml:"allowed"` // Bullets on screen at once
}

// FleetConfig defines the alien fleet.
type FleetConfig struct {
	AlienWidth       int      `yaml:"alien_width"`
	AlienHeight      int      `yaml:"alien_height"`
	AlienSpeedFactor float64  `yaml:"alien_speed_factor"`
	DropSpeed        int      `yaml:"drop_speed"`
	Colors           []string `yaml:"colors"` // Cycled per row
}

// ScoringConfig defines points and level-up scaling.
type ScoringConfig struct {
	AlienPoints  int     `yaml:"alien_points"`
	SpeedupScale float64 `yaml:"speedup_scale"` // Speed multiplier applied on every level-up
	ScoreScale   float64 `yaml:"score_scale"`   // Alien point multiplier applied on every level-up
}

// GameplayConfig defines timing behavior.
type GameplayConfig struct {
	HitPause float64 `yaml:"hit_pause"` // Seconds the game freezes after losing a ship
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)
