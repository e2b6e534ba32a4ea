package riddle

import (
	"embed"
	"fmt"
	"os"
	"sort"

	"github.com/vovakirdan/riddle-grid/internal/config"
	"github.com/vovakirdan/riddle-grid/internal/games/riddle/core"
	"github.com/vovakirdan/riddle-grid/internal/games/riddle/levels"
	"github.com/vovakirdan/riddle-grid/internal/games/riddle/levels/formats"
	"github.com/vovakirdan/riddle-grid/internal/games/riddle/riddles"
)

//go:embed assets/levels/*.yaml
var defaultLevelFS embed.FS

//go:embed assets/riddles.yaml
var defaultRiddlesYAML []byte

// loadContent resolves the campaign levels and the riddle bank. Configured
// paths win when they exist; otherwise the embedded defaults are used so the
// binary is playable without any data files.
func loadContent(cfg config.RiddleConfig) ([]*core.Level, *riddles.Bank, error) {
	lvls, err := loadLevels(cfg.Paths.LevelsDir)
	if err != nil {
		return nil, nil, err
	}

	bank, err := loadBank(cfg.Paths.RiddleBank)
	if err != nil {
		return nil, nil, err
	}

	return lvls, bank, nil
}

func loadLevels(dir string) ([]*core.Level, error) {
	if info, err := os.Stat(dir); err == nil && info.IsDir() {
		return levels.NewLoader(dir).LoadAll()
	}
	return embeddedLevels()
}

func embeddedLevels() ([]*core.Level, error) {
	entries, err := defaultLevelFS.ReadDir("assets/levels")
	if err != nil {
		return nil, fmt.Errorf("embedded levels: %w", err)
	}

	var lvls []*core.Level
	for _, e := range entries {
		data, err := defaultLevelFS.ReadFile("assets/levels/" + e.Name())
		if err != nil {
			return nil, fmt.Errorf("embedded level %s: %w", e.Name(), err)
		}
		lvl, err := formats.ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("embedded level %s: %w", e.Name(), err)
		}
		if err := lvl.Validate(); err != nil {
			return nil, fmt.Errorf("embedded level %s: %w", e.Name(), err)
		}
		lvls = append(lvls, lvl)
	}

	sort.Slice(lvls, func(i, j int) bool { return lvls[i].ID < lvls[j].ID })
	return lvls, nil
}

func loadBank(path string) (*riddles.Bank, error) {
	if _, err := os.Stat(path); err == nil {
		return riddles.Load(path)
	}
	return riddles.Parse(defaultRiddlesYAML)
}
