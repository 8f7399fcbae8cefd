package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// appDir is the per-user directory holding configs, the score database and logs.
const appDir = ".pond"

// LoadFishing loads the pond configuration.
// Search order: customPath -> ~/.pond/configs/fishing.yaml -> ./configs/fishing.yaml -> embedded default.
// Files are decoded over the defaults, so a partial file only overrides what it names.
func LoadFishing(customPath string) (FishingConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return FishingConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parseFishing(data)
		if err != nil {
			return FishingConfig{}, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return FishingConfig{}, fmt.Errorf("config: %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{
		UserConfigPath("fishing.yaml"),
		filepath.Join("configs", "fishing.yaml"),
	}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseFishing(data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	cfg, err := parseFishing(defaultFishingYAML)
	if err != nil || cfg.Validate() != nil {
		return DefaultFishingConfig(), nil
	}
	return cfg, nil
}

// parseFishing decodes YAML on top of the hard-coded defaults.
func parseFishing(data []byte) (FishingConfig, error) {
	cfg := DefaultFishingConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return FishingConfig{}, err
	}
	return cfg, nil
}

// AppPath returns a path inside ~/.pond, or "" if home is unavailable.
func AppPath(elem ...string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(append([]string{home, appDir}, elem...)...)
}

// UserConfigPath returns the path to a user config file, or empty if home is unavailable.
func UserConfigPath(filename string) string {
	return AppPath("configs", filename)
}

// ApplyFishingPreset modifies the config based on a difficulty preset.
func ApplyFishingPreset(cfg *FishingConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Spawn.MaxFish = max(cfg.Spawn.MaxFish-3, 1)
	case DifficultyHard:
		cfg.Hook.Speed *= 0.85
	}
}
