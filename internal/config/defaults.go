package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultYAML []byte

// Default returns the built-in configuration. Kept in sync with
// defaults/pong.yaml, which is the canonical source for overrides.
func Default() Config {
	return Config{
		Physics: Physics{
			BallSpeed:       0.5,
			ServeAngle:      0.6,
			SpeedEscalation: 1.05,
			MaxSpeedFactor:  3.0,
			MaxDeflection:   0.5,
			PaddleSpeed:     1.0,
		},
		Paddles: Paddles{
			Width:         1,
			Offset:        2,
			HeightDivisor: 5,
			MinHeight:     3,
			MaxHeight:     7,
		},
		Profiles: map[string]Profile{
			string(DifficultyEasy): {
				BallSpeedMultiplier: 0.8,
				AISpeedMultiplier:   0.55,
				ReactionDelay:       12,
				DeadZone:            2.5,
				Accent:              "green",
			},
			string(DifficultyMedium): {
				BallSpeedMultiplier: 1.0,
				AISpeedMultiplier:   0.8,
				ReactionDelay:       6,
				DeadZone:            1.25,
				Accent:              "yellow",
			},
			string(DifficultyHard): {
				BallSpeedMultiplier: 1.3,
				AISpeedMultiplier:   1.2,
				ReactionDelay:       1,
				DeadZone:            0.5,
				Accent:              "red",
			},
		},
	}
}
