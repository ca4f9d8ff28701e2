package config

import "fmt"

// ParsePreset validates a difficulty name from the command line.
// The empty string means "leave the loaded config alone".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(name), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Normal keeps the loaded values.
func ApplyPreset(cfg *InvasionConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ship.Limit = 5
		cfg.Bullet.Allowed = 5
		cfg.Scoring.SpeedupScale = 1.05
	case DifficultyHard:
		cfg.Ship.Limit = 2
		cfg.Bullet.Allowed = 2
		cfg.Scoring.SpeedupScale = 1.2
		cfg.Fleet.DropSpeed++
	}
}

// Resolve loads the config from customPath (see Load) and applies the named
// difficulty on top.
func Resolve(customPath, difficulty string) (InvasionConfig, error) {
	preset, err := ParsePreset(difficulty)
	if err != nil {
		return InvasionConfig{}, err
	}
	cfg, err := Load(customPath)
	if err != nil {
		return InvasionConfig{}, err
	}
	ApplyPreset(&cfg, preset)
	return cfg, cfg.Validate()
}
