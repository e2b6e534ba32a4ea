package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List campaign levels",
	Long:  `Shows the campaign levels in play order.`,
	Run:   runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	riddler, err := newRiddleGame()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	levels := riddler.Levels()
	if len(levels) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Campaign levels:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, lvl := range levels {
		if len(lvl.ID) > maxIDLen {
			maxIDLen = len(lvl.ID)
		}
	}

	// Print header
	fmt.Printf("  %-2s  %-*s  %-7s  %s\n", "#", maxIDLen, "ID", "Size", "Name")
	fmt.Printf("  %-2s  %-*s  %-7s  %s\n", "--", maxIDLen, "--", "----", "----")

	for i, lvl := range levels {
		fmt.Printf("  %-2d  %-*s  %-7s  %s\n", i+1, maxIDLen, lvl.ID, lvl.Size, lvl.Name)
	}

	fmt.Println()
	fmt.Println("Run 'riddlegrid play --level <#>' to jump into a level.")
}
