package config

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultFishingConfigValid(t *testing.T) {
	if err := DefaultFishingConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestEmbeddedYAMLMatchesDefaults(t *testing.T) {
	cfg, err := parseFishing(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	def := DefaultFishingConfig()

	if cfg.Spawn != def.Spawn || cfg.Fish != def.Fish || cfg.Hook != def.Hook || cfg.Player != def.Player {
		t.Errorf("embedded yaml diverges from DefaultFishingConfig:\n%+v\n%+v", cfg, def)
	}
	if cfg.Study != def.Study || cfg.Difficulty != def.Difficulty {
		t.Errorf("embedded study/difficulty diverge:\n%+v\n%+v", cfg.Study, def.Study)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*FishingConfig)
	}{
		{"zero width", func(c *FishingConfig) { c.Playfield.Width = 0 }},
		{"negative hook speed", func(c *FishingConfig) { c.Hook.Speed = -1 }},
		{"speed range inverted", func(c *FishingConfig) { c.Fish.MaxSpeed = 10 }},
		{"hitbox margin too large", func(c *FishingConfig) { c.Fish.HitboxMargin = 0.5 }},
		{"water below floor", func(c *FishingConfig) { c.Playfield.WaterTop = 590 }},
		{"no time options", func(c *FishingConfig) { c.Session.TimeOptions = nil }},
		{"default option past the end", func(c *FishingConfig) { c.Session.DefaultOption = len(c.Session.TimeOptions) }},
		{"negative default option", func(c *FishingConfig) { c.Session.DefaultOption = -1 }},
		{"recall stage past target", func(c *FishingConfig) { c.Study.RecallStage = 20 }},
		{"distractor range inverted", func(c *FishingConfig) { c.Study.MaxDistractors = 1 }},
		{"right chance above one", func(c *FishingConfig) { c.Spawn.RightChance = 1.5 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultFishingConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoadFishingCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fishing.yaml")
	yaml := "spawn:\n  interval: 1.5\n  max_fish: 8\nhook:\n  speed: 450\n"
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFishing(path)
	if err != nil {
		t.Fatalf("LoadFishing() failed: %v", err)
	}
	if cfg.Spawn.Interval != 1.5 || cfg.Spawn.MaxFish != 8 || cfg.Hook.Speed != 450 {
		t.Errorf("overrides not applied: spawn=%+v hook=%+v", cfg.Spawn, cfg.Hook)
	}
	// Untouched sections keep their defaults
	if cfg.Fish.Width != 60 || cfg.Study.WordsPerPage != 10 {
		t.Errorf("defaults lost: fish=%+v study=%+v", cfg.Fish, cfg.Study)
	}
}

func TestLoadFishingErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadFishing(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should be an error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	os.WriteFile(bad, []byte("spawn: [oops"), 0o600)
	if _, err := LoadFishing(bad); err == nil {
		t.Error("malformed yaml should be an error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	os.WriteFile(invalid, []byte("hook:\n  speed: 0\n"), 0o600)
	if _, err := LoadFishing(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("invalid values should wrap ErrInvalidConfig, got %v", err)
	}
}

func TestApplyFishingPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		enabled     bool
		level       float64
		maxFishDiff int
	}{
		{DifficultyEasy, true, 0.0, -3},
		{DifficultyNormal, true, 0.3, 0},
		{DifficultyHard, true, 0.7, 0},
		{DifficultyFixed, false, 0.0, 0},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultFishingConfig()
			ApplyFishingPreset(&cfg, tc.preset)
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if cfg.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %v, expected %v", cfg.Difficulty.InitialLevel, tc.level)
			}
			if got := cfg.Spawn.MaxFish - DefaultFishingConfig().Spawn.MaxFish; got != tc.maxFishDiff {
				t.Errorf("MaxFish changed by %d, expected %d", got, tc.maxFishDiff)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("hard should parse")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown preset should yield empty")
	}
}

func TestDifficultyProgression(t *testing.T) {
	dm := NewDifficultyManager(DefaultFishingConfig().Difficulty)

	if got := dm.Level(0, 0); got != 0 {
		t.Errorf("Level at start = %v, expected 0", got)
	}
	if got := dm.Level(0, 5400); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("Level halfway = %v, expected 0.5", got)
	}
	if got := dm.Level(0, 100000); got != 1 {
		t.Errorf("Level past max_at = %v, expected 1", got)
	}

	if got := dm.SpeedScale(0, 10800); math.Abs(got-1.5) > 1e-9 {
		t.Errorf("SpeedScale at max = %v, expected 1.5", got)
	}
	if got := dm.Interval(2.0, 0, 10800); math.Abs(got-1.2) > 1e-9 {
		t.Errorf("Interval at max = %v, expected 1.2", got)
	}
}

func TestDifficultyDisabled(t *testing.T) {
	cfg := DefaultFishingConfig().Difficulty
	cfg.Enabled = false
	cfg.InitialLevel = 0.3
	dm := NewDifficultyManager(cfg)

	if got := dm.Level(0, 100000); got != 0.3 {
		t.Errorf("disabled progression should stay at initial level, got %v", got)
	}
}

func TestDifficultyIntervalFloor(t *testing.T) {
	cfg := DefaultFishingConfig().Difficulty
	cfg.Scaling.IntervalReduction = 5
	dm := NewDifficultyManager(cfg)

	if got := dm.Interval(2.0, 0, 10800); got != 2.0*minIntervalFactor {
		t.Errorf("Interval should floor at %v, got %v", 2.0*minIntervalFactor, got)
	}
}
