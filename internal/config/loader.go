package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigDir is the per-user directory holding config overrides, relative
// to the home directory.
const ConfigDir = ".bouncer"

// LoadBouncer loads Bouncer configuration.
// Search order: customPath -> ~/.bouncer/configs/bouncer.yaml -> ./configs/bouncer.yaml -> embedded default
func LoadBouncer(customPath string) (BouncerConfig, error) {
	// Start from defaults so partial files only override what they name.
	cfg := DefaultBouncerConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("bouncer.yaml"), filepath.Join("configs", "bouncer.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		candidate := DefaultBouncerConfig()
		if err := yaml.Unmarshal(data, &candidate); err == nil && candidate.Validate() == nil {
			return candidate, nil
		}
	}

	// Use embedded default YAML
	embedded := DefaultBouncerConfig()
	if err := yaml.Unmarshal(defaultBouncerYAML, &embedded); err != nil {
		return DefaultBouncerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ConfigDir, "configs", filename)
}

// Validate rejects configurations the simulation cannot run with.
func (c BouncerConfig) Validate() error {
	var errs []error
	if c.Ball.InitialSpeed <= 0 {
		errs = append(errs, errors.New("ball.initial_speed must be positive"))
	}
	if c.Ball.MaxBalls <= 0 {
		errs = append(errs, errors.New("ball.max_balls must be positive"))
	}
	if c.Ball.SpawnIntervalMS <= 0 {
		errs = append(errs, errors.New("ball.spawn_interval_ms must be positive"))
	}
	if c.Ball.Width <= 0 || c.Ball.Height <= 0 {
		errs = append(errs, errors.New("ball.width and ball.height must be positive"))
	}
	if c.Pads.LengthRatio <= 0 || c.Pads.LengthRatio > 1 {
		errs = append(errs, errors.New("pads.length_ratio must be in (0, 1]"))
	}
	if c.Pads.Thickness <= 0 {
		errs = append(errs, errors.New("pads.thickness must be positive"))
	}
	if c.Scoring.MultiplierIntervalMS <= 0 {
		errs = append(errs, errors.New("scoring.multiplier_interval_ms must be positive"))
	}
	if c.Health.Starting <= 0 {
		errs = append(errs, errors.New("health.starting must be positive"))
	}
	return errors.Join(errs...)
}

// ApplyBouncerPreset modifies the config based on a difficulty preset.
func ApplyBouncerPreset(cfg *BouncerConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Ball.MaxBalls = 3
		cfg.Pads.LengthRatio = 0.4
		cfg.Health.LossPerWallHit = 5
	case DifficultyHard:
		cfg.Ball.MaxBalls = 8
		cfg.Pads.LengthRatio = 0.2
		cfg.Health.LossPerWallHit = 20
	}
}
