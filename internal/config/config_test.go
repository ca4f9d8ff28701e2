package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults do not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, Default()) {
		t.Errorf("embedded YAML and Default() drifted apart:\nyaml: %+v\ncode: %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("ship:\n  limit: 7\nscoring:\n  alien_points: 10\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Ship.Limit != 7 {
		t.Errorf("ship.limit = %d, expected 7", cfg.Ship.Limit)
	}
	if cfg.Scoring.AlienPoints != 10 {
		t.Errorf("scoring.alien_points = %d, expected 10", cfg.Scoring.AlienPoints)
	}
	// Untouched keys keep defaults
	if cfg.Fleet.AlienWidth != Default().Fleet.AlienWidth {
		t.Errorf("fleet.alien_width = %d, expected default %d", cfg.Fleet.AlienWidth, Default().Fleet.AlienWidth)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("ship: [unclosed"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*InvasionConfig)
		wantErr string
	}{
		{"defaults are valid", func(*InvasionConfig) {}, ""},
		{"zero alien width", func(c *InvasionConfig) { c.Fleet.AlienWidth = 0 }, "fleet.alien_width"},
		{"no bullets", func(c *InvasionConfig) { c.Bullet.Allowed = 0 }, "bullet.allowed"},
		{"shrinking speedup", func(c *InvasionConfig) { c.Scoring.SpeedupScale = 0.9 }, "scoring.speedup_scale"},
		{"negative pause", func(c *InvasionConfig) { c.Gameplay.HitPause = -1 }, "gameplay.hit_pause"},
		{"bad color", func(c *InvasionConfig) { c.Fleet.Colors = []string{"green", "plaid"} }, "fleet.colors[1]"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %v, expected mention of %q", err, tc.wantErr)
			}
		})
	}
}

func TestApplyPreset(t *testing.T) {
	easy := Default()
	ApplyPreset(&easy, DifficultyEasy)
	if easy.Ship.Limit <= Default().Ship.Limit {
		t.Errorf("easy should give more ships, got %d", easy.Ship.Limit)
	}

	hard := Default()
	ApplyPreset(&hard, DifficultyHard)
	if hard.Scoring.SpeedupScale <= Default().Scoring.SpeedupScale {
		t.Errorf("hard should speed up faster, got %g", hard.Scoring.SpeedupScale)
	}
	if err := hard.Validate(); err != nil {
		t.Errorf("hard preset produced an invalid config: %v", err)
	}

	normal := Default()
	ApplyPreset(&normal, DifficultyNormal)
	if !reflect.DeepEqual(normal, Default()) {
		t.Error("normal preset should keep the loaded values")
	}
}

func TestParsePreset(t *testing.T) {
	for _, name := range []string{"", "easy", "normal", "hard"} {
		if _, err := ParsePreset(name); err != nil {
			t.Errorf("ParsePreset(%q) = %v", name, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(nightmare) should fail")
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("INVASION_TEST_KEY", "value")
	if got := GetEnv("INVASION_TEST_KEY", "fallback"); got != "value" {
		t.Errorf("GetEnv() = %q, expected value", got)
	}
	if got := GetEnv("INVASION_TEST_MISSING", "fallback"); got != "fallback" {
		t.Errorf("GetEnv() = %q, expected fallback", got)
	}
}

func TestResolve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("fleet:\n  drop_speed: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Resolve(path, "hard")
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if cfg.Fleet.DropSpeed != 3 {
		t.Errorf("fleet.drop_speed = %d, expected file value plus hard bump", cfg.Fleet.DropSpeed)
	}
	if cfg.Ship.Limit != 2 {
		t.Errorf("ship.limit = %d, expected hard preset 2", cfg.Ship.Limit)
	}

	if _, err := Resolve(path, "nightmare"); err == nil {
		t.Error("Resolve() should reject an unknown difficulty")
	}
}
