package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadKnife loads the knife simulation tuning.
// Search order: customPath -> ~/.knifemaster/configs/knife.yaml -> ./configs/knife.yaml -> embedded default.
// Files may be partial; missing keys keep their default values.
func LoadKnife(customPath string) (KnifeConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultKnifeConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseKnife(data)
		if err != nil {
			return DefaultKnifeConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	for _, path := range []string{userConfigPath("knife.yaml"), filepath.Join("configs", "knife.yaml")} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseKnife(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseKnife(defaultKnifeYAML)
	if err != nil {
		return DefaultKnifeConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseKnife(data []byte) (KnifeConfig, error) {
	cfg := DefaultKnifeConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate reports values the simulation cannot run with.
func (c KnifeConfig) Validate() error {
	var errs []error
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		errs = append(errs, errors.New("arena dimensions must be positive"))
	}
	if c.Arena.ThrowOffset <= 0 || c.Arena.ThrowOffset >= c.Arena.Height/2 {
		errs = append(errs, errors.New("arena.throw_offset must place the knife below the target center"))
	}
	if c.Throw.Speed <= 0 {
		errs = append(errs, errors.New("throw.speed must be positive"))
	}
	if c.Collision.KnifeTolerance <= 0 || c.Collision.AppleTolerance <= 0 {
		errs = append(errs, errors.New("collision tolerances must be positive"))
	}
	if c.Shake.Decay < 0 || c.Shake.Decay >= 1 {
		errs = append(errs, errors.New("shake.decay must be in [0, 1)"))
	}
	if c.Timing.LevelCompleteDelayMs < 0 {
		errs = append(errs, errors.New("timing.level_complete_delay_ms must not be negative"))
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".knifemaster", "configs", filename)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
