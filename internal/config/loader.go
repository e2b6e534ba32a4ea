package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the application configuration.
// Search order: customPath -> ~/.riddlegrid/config.yaml -> ./configs/riddlegrid.yaml -> embedded default
func Load(customPath string) (RiddleConfig, error) {
	var cfg RiddleConfig

	// A custom path is authoritative: failures there are errors,
	// not a reason to fall through.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return applyDefaults(cfg), nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("config.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return applyDefaults(cfg), nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/riddlegrid.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return applyDefaults(cfg), nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultConfigYAML, &cfg); err != nil {
		return DefaultRiddleConfig(), nil // Fallback to hardcoded if embed fails
	}
	return applyDefaults(cfg), nil
}

// applyDefaults fills zero-valued fields so a sparse user config
// still produces a playable setup.
func applyDefaults(cfg RiddleConfig) RiddleConfig {
	def := DefaultRiddleConfig()

	if cfg.Paths.LevelsDir == "" {
		cfg.Paths.LevelsDir = def.Paths.LevelsDir
	}
	if cfg.Paths.RiddleBank == "" {
		cfg.Paths.RiddleBank = def.Paths.RiddleBank
	}
	if cfg.Paths.Database == "" {
		cfg.Paths.Database = def.Paths.Database
	}
	if cfg.Timing.TickRate <= 0 {
		cfg.Timing.TickRate = def.Timing.TickRate
	}
	if cfg.Timing.MoveRepeatTicks <= 0 {
		cfg.Timing.MoveRepeatTicks = def.Timing.MoveRepeatTicks
	}
	if cfg.Timing.FastFactor <= 0 {
		cfg.Timing.FastFactor = def.Timing.FastFactor
	}
	if cfg.Timing.SlowFactor <= 0 {
		cfg.Timing.SlowFactor = def.Timing.SlowFactor
	}
	if cfg.Display.ToastTicks <= 0 {
		cfg.Display.ToastTicks = def.Display.ToastTicks
	}
	return cfg
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".riddlegrid", filename)
}
