package config

import (
	_ "embed"
)

//go:embed defaults/riddlegrid.yaml
var defaultConfigYAML []byte

// DefaultRiddleConfig returns the built-in configuration used when no
// config file is found anywhere on the search path.
func DefaultRiddleConfig() RiddleConfig {
	return RiddleConfig{
		Paths: PathsConfig{
			LevelsDir:  "levels",
			RiddleBank: "riddles.yaml",
			Database:   "~/.riddlegrid/runs.db",
		},
		Timing: TimingConfig{
			TickRate:        30,
			MoveRepeatTicks: 4,
			FastFactor:      2,
			SlowFactor:      2,
		},
		Display: DisplayConfig{
			ShowHUD:    true,
			ToastTicks: 45,
		},
	}
}

// GetDefaultYAML returns the embedded default config, useful for
// writing a starter config file.
func GetDefaultYAML() []byte {
	return defaultConfigYAML
}
