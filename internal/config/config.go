// Package config provides YAML-based game configuration loading and
// difficulty management for the bouncer.
package config

// BouncerConfig contains all configuration for the Bouncer game.
type BouncerConfig struct {
	Ball       BallConfig       `yaml:"ball"`
	Pads       PadConfig        `yaml:"pads"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Health     HealthConfig     `yaml:"health"`
	Rules      RulesConfig      `yaml:"rules"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BallConfig defines ball parameters. Sizes are in pixels, speed in
// pixels per millisecond.
type BallConfig struct {
	InitialSpeed    float64  `yaml:"initial_speed"`
	MaxBalls        int      `yaml:"max_balls"`
	SpawnIntervalMS int      `yaml:"spawn_interval_ms"`
	Width           float64  `yaml:"width"`
	Height          float64  `yaml:"height"`
	FixedStartAngle *float64 `yaml:"fixed_start_angle"` // Debug override, radians
}

// PadConfig defines pad geometry.
type PadConfig struct {
	LengthRatio float64 `yaml:"length_ratio"` // Fraction of the screen along the free axis
	Thickness   float64 `yaml:"thickness"`    // Pixels across the anchored axis
}

// ScoringConfig defines score changes per collision outcome.
type ScoringConfig struct {
	PerPadHit            int `yaml:"per_pad_hit"`
	PerWallHit           int `yaml:"per_wall_hit"`
	MultiplierIntervalMS int `yaml:"multiplier_interval_ms"`
	MultiplierStep       int `yaml:"multiplier_step"`
}

// HealthConfig defines the health pool.
type HealthConfig struct {
	Starting       int `yaml:"starting"`
	RegenPerPadHit int `yaml:"regen_per_pad_hit"`
	LossPerWallHit int `yaml:"loss_per_wall_hit"`
}

// RulesConfig selects between rule variants.
type RulesConfig struct {
	RemoveOnWallHit bool `yaml:"remove_on_wall_hit"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score or milliseconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to ball speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value onto a preset. Unknown values yield "",
// which means "use the config as loaded".
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
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
