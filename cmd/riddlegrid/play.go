package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/riddle-grid/internal/core"
	"github.com/vovakirdan/riddle-grid/internal/games/riddle"
	"github.com/vovakirdan/riddle-grid/internal/platform/tui"
	"github.com/vovakirdan/riddle-grid/internal/registry"
	"github.com/vovakirdan/riddle-grid/internal/storage"
)

var flagLevel int

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start the campaign",
	Long: `Start playing the riddle campaign.

With no flags, a level picker menu is shown; completed levels are
marked with their best move count. With --level N, play starts
directly at the Nth campaign level (1-based).

Controls:
  WASD/Arrows  - Move
  Enter/Space  - Confirm / next level
  U            - Undo last rule change
  R            - Restart level
  P            - Pause
  Q/Ctrl+C     - Quit

Examples:
  riddlegrid play
  riddlegrid play --level 2
  riddlegrid play --seed 42
  riddlegrid play --config ./my-riddlegrid.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start at campaign level N (1-based, skips the menu)")
}

// newRiddleGame creates the registered riddle game, honoring --config.
func newRiddleGame() (*riddle.Game, error) {
	riddle.SetConfigPath(flagConfig)

	game, err := registry.Create("riddle")
	if err != nil {
		return nil, err
	}
	riddler, ok := game.(*riddle.Game)
	if !ok {
		return nil, fmt.Errorf("riddle mode has unexpected type %T", game)
	}
	if loadErr := riddler.ContentError(); loadErr != nil {
		return nil, loadErr
	}
	return riddler, nil
}

// terminalConfig builds a runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(_ *cobra.Command, _ []string) {
	riddler, err := newRiddleGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	cfg := terminalConfig()

	// Direct start, no menu
	if flagLevel > 0 {
		if flagLevel > len(riddler.Levels()) {
			fmt.Fprintf(os.Stderr, "Error: level %d does not exist (campaign has %d levels)\n",
				flagLevel, len(riddler.Levels()))
			os.Exit(1)
		}
		riddler.SetStartLevel(flagLevel - 1)

		if runErr := tui.Run(riddler, store, cfg); runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
			os.Exit(1)
		}
		return
	}

	// Menu loop
	for {
		menuResult, menuErr := tui.RunMenu(riddler, store, cfg)
		if menuErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", menuErr)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(riddler.Levels(), store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		riddler.SetStartLevel(menuResult.LevelIndex)

		// Update seed for each run unless pinned by flag
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		if runErr := tui.Run(riddler, store, cfg); runErr != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		}

		// Loop back to menu
	}
}
