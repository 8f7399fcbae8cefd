package config

import (
	_ "embed"
)

//go:embed defaults/fishing.yaml
var defaultFishingYAML []byte

// DefaultFishingConfig returns the built-in pond configuration.
// It mirrors defaults/fishing.yaml and is used when that cannot be parsed.
func DefaultFishingConfig() FishingConfig {
	return FishingConfig{
		Playfield: PlayfieldConfig{
			Width:        800,
			Height:       600,
			WaterTop:     230,
			BottomMargin: 50,
		},
		Spawn: SpawnConfig{
			Interval:    2.0,
			MaxFish:     15,
			RightChance: 0.6,
			EntryOffset: 100,
		},
		Fish: FishConfig{
			Width:        60,
			Height:       40,
			MinSpeed:     50,
			MaxSpeed:     150,
			MinAmplitude: 20,
			MaxAmplitude: 50,
			HitboxMargin: 0.15,
		},
		Hook: HookConfig{
			Speed:   300,
			Width:   10,
			Height:  10,
			Epsilon: 5,
		},
		Player: PlayerConfig{
			X:         50,
			Y:         130,
			Width:     100,
			Height:    150,
			Speed:     200,
			NudgeTime: 0.15,
			AnchorX:   0.85,
			AnchorY:   0.2,
		},
		Session: SessionConfig{
			TimeOptions:   []int{1, 2, 3},
			DefaultOption: 0,
			PopupTTL:      2.0,
		},
		Study: StudyConfig{
			WordsPerPage:   10,
			RecallTarget:   20,
			RecallStage:    10,
			MatchingGroup:  10,
			MatchingFloor:  2,
			MinDistractors: 2,
			MaxDistractors: 4,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 10800, // 3 minutes at 60fps
			},
			Scaling: ScalingConfig{
				SpeedMultiplier:   0.5,
				IntervalReduction: 0.4,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFishingYAML
}
