package config

import (
	_ "embed"
)

//go:embed defaults/invasion.yaml
var defaultInvasionYAML []byte

// Default returns the built-in configuration. It mirrors the embedded YAML and
// is the last fallback when nothing else can be loaded.
func Default() InvasionConfig {
	return InvasionConfig{
		Screen: ScreenConfig{
			BgColor:   "default",
			TextColor: "bright_white",
			MinWidth:  40,
			MinHeight: 16,
		},
		Ship: ShipConfig{
			Width:       5,
			Height:      2,
			SpeedFactor: 0.5,
			Color:       "bright_cyan",
			Limit:       3,
		},
		Bullet: BulletConfig{
			Width:       1,
			Height:      1,
			SpeedFactor: 0.6,
			Color:       "bright_yellow",
			Allowed:     3,
		},
		Fleet: FleetConfig{
			AlienWidth:       3,
			AlienHeight:      2,
			AlienSpeedFactor: 0.04,
			DropSpeed:        1,
			Colors:           []string{"bright_green", "green", "bright_magenta", "magenta", "bright_blue"},
		},
		Scoring: ScoringConfig{
			AlienPoints:  50,
			SpeedupScale: 1.1,
			ScoreScale:   1.5,
		},
		Gameplay: GameplayConfig{
			HitPause: 0.5,
		},
	}
}

// DefaultYAML returns the embedded default YAML, e.g. for `invasion config`
// style dumps or as a template for user configs.
func DefaultYAML() []byte {
	return defaultInvasionYAML
}
