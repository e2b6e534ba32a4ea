package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/riddle-grid/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level-id]",
	Short: "Show best runs",
	Long: `Display best runs for a level, or a per-level summary when no
level is given.

Examples:
  riddlegrid scores
  riddlegrid scores 101_first_steps`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		printLevelRuns(store, args[0])
		return
	}
	printSummary(store)
}

// printLevelRuns prints the top winning runs for one level.
func printLevelRuns(store *storage.Store, levelID string) {
	runs, err := store.BestRuns(levelID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Runs - %s\n", levelID)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No winning runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'riddlegrid play' to set the first record!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-6s  %-8s  %-6s  %-6s  %s\n", "Rank", "Moves", "Riddles", "Rules", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %-6s  %-6s  %s\n", "----", "-----", "-------", "-----", "----", "----")

	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		timeStr := fmt.Sprintf("%d:%02d", r.DurationSecs/60, r.DurationSecs%60)
		fmt.Printf("  %-4d  %-6d  %-8d  %-6d  %-6s  %s\n",
			i+1, r.Moves, r.RiddlesSolved, r.RulesTriggered, timeStr, dateStr)
	}

	best, err := store.BestMoves(levelID)
	if err == nil && best > 0 {
		fmt.Println()
		fmt.Printf("Best: %d moves\n", best)
	}
}

// printSummary prints aggregate stats for every level that has been played.
func printSummary(store *storage.Store) {
	stats, err := store.GetAllLevelStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if len(stats) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'riddlegrid play' to start the campaign!")
		return
	}

	levelIDs := make([]string, 0, len(stats))
	for id := range stats {
		levelIDs = append(levelIDs, id)
	}
	sort.Strings(levelIDs)

	maxIDLen := 5 // "Level" header
	for _, id := range levelIDs {
		if len(id) > maxIDLen {
			maxIDLen = len(id)
		}
	}

	fmt.Println("Campaign progress:")
	fmt.Println()
	fmt.Printf("  %-*s  %-5s  %-5s  %-5s  %-6s  %s\n", maxIDLen, "Level", "Runs", "Wins", "Best", "Avg", "Last played")
	fmt.Printf("  %-*s  %-5s  %-5s  %-5s  %-6s  %s\n", maxIDLen, "-----", "----", "----", "----", "---", "-----------")

	for _, id := range levelIDs {
		ls := stats[id]
		bestStr := "-"
		if ls.BestMoves > 0 {
			bestStr = fmt.Sprintf("%d", ls.BestMoves)
		}
		fmt.Printf("  %-*s  %-5d  %-5d  %-5s  %-6.1f  %s\n",
			maxIDLen, id, ls.RunsCount, ls.WinsCount, bestStr, ls.AvgMoves,
			ls.LastPlayed.Format("2006-01-02 15:04"))
	}
}
