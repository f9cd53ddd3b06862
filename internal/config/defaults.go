package config

import (
	_ "embed"
)

//go:embed defaults/bouncer.yaml
var defaultBouncerYAML []byte

// DefaultBouncerConfig returns the default Bouncer configuration.
// It mirrors defaults/bouncer.yaml and is used if the embedded file fails
// to parse.
func DefaultBouncerConfig() BouncerConfig {
	return BouncerConfig{
		Ball: BallConfig{
			InitialSpeed:    0.25,
			MaxBalls:        5,
			SpawnIntervalMS: 3000,
			Width:           8,
			Height:          16,
		},
		Pads: PadConfig{
			LengthRatio: 0.3,
			Thickness:   16,
		},
		Scoring: ScoringConfig{
			PerPadHit:            10,
			PerWallHit:           -2,
			MultiplierIntervalMS: 10000,
			MultiplierStep:       1,
		},
		Health: HealthConfig{
			Starting:       100,
			RegenPerPadHit: 2,
			LossPerWallHit: 10,
		},
		Rules: RulesConfig{
			RemoveOnWallHit: true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 180000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}
