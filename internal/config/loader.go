package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

const configFile = "invasion.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.invasion/configs/invasion.yaml -> ./configs/invasion.yaml -> embedded default.
// Keys missing from a file keep their default values. Only a custom path is
// allowed to fail loudly; the other locations fall through on any error.
func Load(customPath string) (InvasionConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return InvasionConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return InvasionConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(configFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", configFile)); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := Parse(defaultInvasionYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (InvasionConfig, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return InvasionConfig{}, fmt.Errorf("failed to parse yaml: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return InvasionConfig{}, err
	}
	return cfg, nil
}

// Validate reports every setting that would make the game unplayable.
func (c InvasionConfig) Validate() error {
	var errs []error

	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}
	positiveF := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %g", name, v))
		}
	}
	color := func(name, v string) {
		if _, err := core.ParseColor(v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	positive("ship.width", c.Ship.Width)
	positive("ship.height", c.Ship.Height)
	positive("ship.limit", c.Ship.Limit)
	positiveF("ship.speed_factor", c.Ship.SpeedFactor)
	positive("bullet.width", c.Bullet.Width)
	positive("bullet.height", c.Bullet.Height)
	positive("bullet.allowed", c.Bullet.Allowed)
	positiveF("bullet.speed_factor", c.Bullet.SpeedFactor)
	positive("fleet.alien_width", c.Fleet.AlienWidth)
	positive("fleet.alien_height", c.Fleet.AlienHeight)
	positiveF("fleet.alien_speed_factor", c.Fleet.AlienSpeedFactor)
	positive("scoring.alien_points", c.Scoring.AlienPoints)

	if c.Fleet.DropSpeed < 0 {
		errs = append(errs, fmt.Errorf("fleet.drop_speed must not be negative, got %d", c.Fleet.DropSpeed))
	}
	if c.Scoring.SpeedupScale < 1 {
		errs = append(errs, fmt.Errorf("scoring.speedup_scale must be >= 1, got %g", c.Scoring.SpeedupScale))
	}
	if c.Scoring.ScoreScale < 1 {
		errs = append(errs, fmt.Errorf("scoring.score_scale must be >= 1, got %g", c.Scoring.ScoreScale))
	}
	if c.Gameplay.HitPause < 0 {
		errs = append(errs, fmt.Errorf("gameplay.hit_pause must not be negative, got %g", c.Gameplay.HitPause))
	}

	color("screen.bg_color", c.Screen.BgColor)
	color("screen.text_color", c.Screen.TextColor)
	color("ship.color", c.Ship.Color)
	color("bullet.color", c.Bullet.Color)
	for i, name := range c.Fleet.Colors {
		color(fmt.Sprintf("fleet.colors[%d]", i), name)
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".invasion", "configs", filename)
}
