// Package config provides YAML-based application configuration for the
// riddle-grid platform: file locations, tick timing and display options.
package config

// RiddleConfig is the top-level application configuration.
type RiddleConfig struct {
	Paths   PathsConfig   `yaml:"paths"`
	Timing  TimingConfig  `yaml:"timing"`
	Display DisplayConfig `yaml:"display"`
}

// PathsConfig points at the data files the game loads on startup.
type PathsConfig struct {
	LevelsDir  string `yaml:"levels_dir"`
	RiddleBank string `yaml:"riddle_bank"`
	Database   string `yaml:"database"`
}

// TimingConfig controls the fixed-tick loop and input repeat pacing.
// Repeat values are in ticks between accepted held-key moves.
type TimingConfig struct {
	TickRate        int `yaml:"tick_rate"`
	MoveRepeatTicks int `yaml:"move_repeat_ticks"`
	FastFactor      int `yaml:"fast_factor"`
	SlowFactor      int `yaml:"slow_factor"`
}

// DisplayConfig controls optional UI elements.
type DisplayConfig struct {
	ShowHUD    bool `yaml:"show_hud"`
	ToastTicks int  `yaml:"toast_ticks"`
}
