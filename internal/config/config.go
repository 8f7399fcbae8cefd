// Package config provides YAML-based configuration loading and difficulty
// management for the pond game.
package config

import (
	"errors"
	"fmt"
)

// FishingConfig contains all tunables of the pond simulation.
// Distances are world units on a fixed playfield, times are seconds.
type FishingConfig struct {
	Playfield  PlayfieldConfig  `yaml:"playfield"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Fish       FishConfig       `yaml:"fish"`
	Hook       HookConfig       `yaml:"hook"`
	Player     PlayerConfig     `yaml:"player"`
	Session    SessionConfig    `yaml:"session"`
	Study      StudyConfig      `yaml:"study"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayfieldConfig defines the logical world the pond lives in.
type PlayfieldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	WaterTop     float64 `yaml:"water_top"`     // y of the water surface
	BottomMargin float64 `yaml:"bottom_margin"` // band above the floor kept free of fish
}

// SpawnConfig defines fish spawn cadence.
type SpawnConfig struct {
	Interval    float64 `yaml:"interval"`     // seconds between spawns
	MaxFish     int     `yaml:"max_fish"`     // live fish cap
	RightChance float64 `yaml:"right_chance"` // probability of a right-moving fish
	EntryOffset float64 `yaml:"entry_offset"` // how far off-screen fish enter
}

// FishConfig defines fish geometry and motion ranges.
type FishConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	MinSpeed     float64 `yaml:"min_speed"`
	MaxSpeed     float64 `yaml:"max_speed"`
	MinAmplitude float64 `yaml:"min_amplitude"`
	MaxAmplitude float64 `yaml:"max_amplitude"`
	HitboxMargin float64 `yaml:"hitbox_margin"` // fraction inset per side
}

// HookConfig defines hook motion.
type HookConfig struct {
	Speed   float64 `yaml:"speed"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Epsilon float64 `yaml:"epsilon"` // distance at which a returning hook snaps home
}

// PlayerConfig defines the angler.
type PlayerConfig struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Speed     float64 `yaml:"speed"`
	NudgeTime float64 `yaml:"nudge_time"` // seconds of movement per key press
	AnchorX   float64 `yaml:"anchor_x"`   // hook anchor as a fraction of width
	AnchorY   float64 `yaml:"anchor_y"`   // hook anchor as a fraction of height
}

// SessionConfig defines amusement round durations.
type SessionConfig struct {
	TimeOptions   []int   `yaml:"time_options"` // minutes
	DefaultOption int     `yaml:"default_option"`
	PopupTTL      float64 `yaml:"popup_ttl"` // seconds a +N pop-up stays visible
}

// StudyConfig defines vocabulary study rules.
type StudyConfig struct {
	WordList       string `yaml:"word_list"` // path to a word<TAB>meaning file, empty for built-in
	WordsPerPage   int    `yaml:"words_per_page"`
	RecallTarget   int    `yaml:"recall_target"`
	RecallStage    int    `yaml:"recall_stage"` // catches after which prompts switch to meanings
	MatchingGroup  int    `yaml:"matching_group"`
	MatchingFloor  int    `yaml:"matching_floor"` // live fish that must carry the wanted meaning
	MinDistractors int    `yaml:"min_distractors"`
	MaxDistractors int    `yaml:"max_distractors"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // score or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier   float64 `yaml:"speed_multiplier"`   // added to fish speed at max difficulty
	IntervalReduction float64 `yaml:"interval_reduction"` // fraction cut from the spawn interval at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI flag value to a preset; unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate rejects configurations the simulation cannot run with.
func (c FishingConfig) Validate() error {
	positive := []struct {
		name string
		v    float64
	}{
		{"playfield.width", c.Playfield.Width},
		{"playfield.height", c.Playfield.Height},
		{"spawn.interval", c.Spawn.Interval},
		{"fish.width", c.Fish.Width},
		{"fish.height", c.Fish.Height},
		{"fish.min_speed", c.Fish.MinSpeed},
		{"hook.speed", c.Hook.Speed},
		{"hook.epsilon", c.Hook.Epsilon},
		{"player.width", c.Player.Width},
		{"player.height", c.Player.Height},
	}
	for _, p := range positive {
		if p.v <= 0 {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidConfig, p.name, p.v)
		}
	}

	if c.Fish.MaxSpeed < c.Fish.MinSpeed {
		return fmt.Errorf("%w: fish.max_speed %v below min_speed %v", ErrInvalidConfig, c.Fish.MaxSpeed, c.Fish.MinSpeed)
	}
	if c.Fish.MaxAmplitude < c.Fish.MinAmplitude {
		return fmt.Errorf("%w: fish.max_amplitude below min_amplitude", ErrInvalidConfig)
	}
	if c.Fish.HitboxMargin < 0 || c.Fish.HitboxMargin >= 0.5 {
		return fmt.Errorf("%w: fish.hitbox_margin must be in [0, 0.5), got %v", ErrInvalidConfig, c.Fish.HitboxMargin)
	}
	if c.Playfield.WaterTop < 0 || c.Playfield.WaterTop+c.Playfield.BottomMargin+c.Fish.Height > c.Playfield.Height {
		return fmt.Errorf("%w: playfield leaves no room for fish below water_top %v", ErrInvalidConfig, c.Playfield.WaterTop)
	}
	if c.Spawn.MaxFish <= 0 {
		return fmt.Errorf("%w: spawn.max_fish must be positive, got %d", ErrInvalidConfig, c.Spawn.MaxFish)
	}
	if c.Spawn.RightChance < 0 || c.Spawn.RightChance > 1 {
		return fmt.Errorf("%w: spawn.right_chance must be in [0, 1], got %v", ErrInvalidConfig, c.Spawn.RightChance)
	}
	if len(c.Session.TimeOptions) == 0 {
		return fmt.Errorf("%w: session.time_options is empty", ErrInvalidConfig)
	}
	for _, m := range c.Session.TimeOptions {
		if m <= 0 {
			return fmt.Errorf("%w: session.time_options entry %d must be positive", ErrInvalidConfig, m)
		}
	}
	if c.Session.DefaultOption < 0 || c.Session.DefaultOption >= len(c.Session.TimeOptions) {
		return fmt.Errorf("%w: session.default_option %d is not an index into time_options", ErrInvalidConfig, c.Session.DefaultOption)
	}
	if c.Study.WordsPerPage <= 0 || c.Study.RecallTarget <= 0 || c.Study.MatchingGroup <= 0 {
		return fmt.Errorf("%w: study page size, recall target and matching group must be positive", ErrInvalidConfig)
	}
	if c.Study.RecallStage <= 0 || c.Study.RecallStage >= c.Study.RecallTarget {
		return fmt.Errorf("%w: study.recall_stage must be between 1 and recall_target-1, got %d", ErrInvalidConfig, c.Study.RecallStage)
	}
	if c.Study.MinDistractors < 0 || c.Study.MaxDistractors < c.Study.MinDistractors {
		return fmt.Errorf("%w: study distractor range [%d, %d] is invalid", ErrInvalidConfig, c.Study.MinDistractors, c.Study.MaxDistractors)
	}
	return nil
}
