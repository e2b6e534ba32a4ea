package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	// No custom path and no local configs dir: the embedded YAML wins.
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Timing.TickRate != 30 {
		t.Errorf("TickRate = %d, want 30", cfg.Timing.TickRate)
	}
	if cfg.Paths.LevelsDir == "" || cfg.Paths.RiddleBank == "" || cfg.Paths.Database == "" {
		t.Errorf("default paths incomplete: %+v", cfg.Paths)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("paths:\n  levels_dir: /tmp/my-levels\ntiming:\n  tick_rate: 60\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Paths.LevelsDir != "/tmp/my-levels" {
		t.Errorf("LevelsDir = %q, want /tmp/my-levels", cfg.Paths.LevelsDir)
	}
	if cfg.Timing.TickRate != 60 {
		t.Errorf("TickRate = %d, want 60", cfg.Timing.TickRate)
	}

	// Unset fields fall back to defaults.
	if cfg.Timing.MoveRepeatTicks != 4 {
		t.Errorf("MoveRepeatTicks = %d, want default 4", cfg.Timing.MoveRepeatTicks)
	}
	if cfg.Paths.Database == "" {
		t.Error("Database should default when omitted")
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	// Missing custom file is an error, not a fallthrough.
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() with missing custom path should fail")
	}

	// Malformed YAML is an error too.
	bad := filepath.Join(t.TempDir(), "bad.yaml")
	os.WriteFile(bad, []byte("timing: [not a map"), 0o644)
	if _, err := Load(bad); err == nil {
		t.Error("Load() with malformed YAML should fail")
	}
}

func TestPaceManagerRepeatTicks(t *testing.T) {
	p := NewPaceManager(TimingConfig{MoveRepeatTicks: 4, FastFactor: 2, SlowFactor: 2})

	tests := []struct {
		name       string
		fast, slow bool
		want       int
	}{
		{"normal", false, false, 4},
		{"fast", true, false, 2},
		{"slow", false, true, 8},
		{"both cancel", true, true, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.RepeatTicks(tt.fast, tt.slow); got != tt.want {
				t.Errorf("RepeatTicks(%v, %v) = %d, want %d", tt.fast, tt.slow, got, tt.want)
			}
		})
	}
}

func TestPaceManagerFloors(t *testing.T) {
	p := NewPaceManager(TimingConfig{MoveRepeatTicks: 1, FastFactor: 4, SlowFactor: 2})

	if got := p.RepeatTicks(true, false); got != 1 {
		t.Errorf("RepeatTicks should never drop below 1, got %d", got)
	}

	// Zero-valued timing gets sane defaults.
	z := NewPaceManager(TimingConfig{})
	if z.RepeatTicks(false, false) != 4 {
		t.Errorf("zero timing should default to 4 repeat ticks")
	}
	if z.TickRate() != 30 {
		t.Errorf("zero timing should default to 30 ticks per second")
	}
}
