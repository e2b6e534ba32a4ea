// riddlegrid is a terminal puzzle campaign where grid rules are rewritten
// by answering riddles at gates.
//
// Usage:
//
//	riddlegrid play            - Start the campaign with a level picker
//	riddlegrid play --level N  - Jump straight into level N
//	riddlegrid levels          - List campaign levels
//	riddlegrid serve           - Start SSH server for remote play
//	riddlegrid scores [level]  - Show best runs
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible shuffles
//	--db <path>     - Set database path (default: ~/.riddlegrid/runs.db)
//	--config <path> - Path to custom config YAML
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game mode to register it
	_ "github.com/vovakirdan/riddle-grid/internal/games/riddle"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "riddlegrid",
	Short: "Riddle Grid - A rule-bending puzzle campaign in your terminal",
	Long: `Riddle Grid is a terminal puzzle game. Walk a grid of walls, gates
and pushable blocks whose behavior is governed by toggleable rules.
Gates ask riddles; answering them opens the way and can rewrite the
rules of the level, turning walls to air or shuffling them around.

Available commands:
  play     - Start the campaign (level picker, or --level to jump in)
  levels   - List campaign levels
  serve    - Start SSH server for remote play
  scores   - View best runs

Examples:
  riddlegrid play
  riddlegrid play --level 2
  riddlegrid levels
  riddlegrid serve --ssh :2222
  riddlegrid scores 101_first_steps`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.riddlegrid/runs.db", "Path to runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
