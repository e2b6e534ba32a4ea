package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)

	runs := []RunEntry{
		{LevelID: "101_first_steps", Moves: 30, RiddlesSolved: 1, Won: true},
		{LevelID: "101_first_steps", Moves: 18, RiddlesSolved: 2, Won: true},
		{LevelID: "101_first_steps", Moves: 45, Won: false},
		{LevelID: "102_push_it", Moves: 60, Won: true},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	// Best runs only include wins, fewest moves first.
	best, err := store.BestRuns("101_first_steps", 10)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(best) != 2 {
		t.Fatalf("Expected 2 winning runs, got %d", len(best))
	}
	if best[0].Moves != 18 || best[1].Moves != 30 {
		t.Errorf("Runs not ordered by fewest moves: %d, %d", best[0].Moves, best[1].Moves)
	}
	if best[0].RiddlesSolved != 2 {
		t.Errorf("RiddlesSolved not persisted, got %d", best[0].RiddlesSolved)
	}

	// Other levels never bleed into the query.
	other, err := store.BestRuns("102_push_it", 10)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}
	if len(other) != 1 {
		t.Errorf("Expected 1 run for second level, got %d", len(other))
	}

	// RunsForLevel includes the losing run too.
	all, err := store.RunsForLevel("101_first_steps")
	if err != nil {
		t.Fatalf("RunsForLevel() failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("Expected 3 total runs, got %d", len(all))
	}
}

func TestStoreBestRunsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveRun(RunEntry{LevelID: "test", Moves: (i + 1) * 10, Won: true})
	}

	best, err := store.BestRuns("test", 3)
	if err != nil {
		t.Fatalf("BestRuns() failed: %v", err)
	}

	if len(best) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(best))
	}

	if best[0].Moves != 10 || best[1].Moves != 20 || best[2].Moves != 30 {
		t.Errorf("Runs not in expected order: %v", best)
	}
}

func TestStoreBestMoves(t *testing.T) {
	store := openTestStore(t)

	// No runs yet
	best, err := store.BestMoves("101_first_steps")
	if err != nil {
		t.Fatalf("BestMoves() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for unplayed level, got %d", best)
	}

	store.SaveRun(RunEntry{LevelID: "101_first_steps", Moves: 25, Won: true})
	store.SaveRun(RunEntry{LevelID: "101_first_steps", Moves: 40, Won: true})
	// A losing run with fewer moves must not win the ranking.
	store.SaveRun(RunEntry{LevelID: "101_first_steps", Moves: 5, Won: false})

	best, err = store.BestMoves("101_first_steps")
	if err != nil {
		t.Fatalf("BestMoves() failed: %v", err)
	}
	if best != 25 {
		t.Errorf("Expected best of 25 moves, got %d", best)
	}
}

func TestStoreCompletedLevels(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{LevelID: "103_sockets", Moves: 50, Won: true})
	store.SaveRun(RunEntry{LevelID: "101_first_steps", Moves: 20, Won: true})
	store.SaveRun(RunEntry{LevelID: "101_first_steps", Moves: 22, Won: true})
	store.SaveRun(RunEntry{LevelID: "102_push_it", Moves: 90, Won: false})

	done, err := store.CompletedLevels()
	if err != nil {
		t.Fatalf("CompletedLevels() failed: %v", err)
	}

	if len(done) != 2 {
		t.Fatalf("Expected 2 completed levels, got %d", len(done))
	}
	if done[0] != "101_first_steps" || done[1] != "103_sockets" {
		t.Errorf("Completed levels wrong or unsorted: %v", done)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{LevelID: "101_first_steps", Moves: 20, Won: true})
	store.SaveRun(RunEntry{LevelID: "101_first_steps", Moves: 30, Won: true})
	store.SaveRun(RunEntry{LevelID: "102_push_it", Moves: 40, Won: true})

	if err := store.ClearRuns("101_first_steps"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	cleared, _ := store.RunsForLevel("101_first_steps")
	if len(cleared) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(cleared))
	}

	kept, _ := store.RunsForLevel("102_push_it")
	if len(kept) != 1 {
		t.Errorf("Other level's runs should not be affected by clear")
	}
}

func TestStoreLevelStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveRun(RunEntry{LevelID: "101_first_steps", Moves: 20, Won: true})
	store.SaveRun(RunEntry{LevelID: "101_first_steps", Moves: 40, Won: true})
	store.SaveRun(RunEntry{LevelID: "101_first_steps", Moves: 60, Won: false})

	stats, err := store.GetLevelStats("101_first_steps")
	if err != nil {
		t.Fatalf("GetLevelStats() failed: %v", err)
	}

	if stats.RunsCount != 3 {
		t.Errorf("RunsCount = %d, want 3", stats.RunsCount)
	}
	if stats.WinsCount != 2 {
		t.Errorf("WinsCount = %d, want 2", stats.WinsCount)
	}
	if stats.BestMoves != 20 {
		t.Errorf("BestMoves = %d, want 20", stats.BestMoves)
	}
	if stats.AvgMoves != 40 {
		t.Errorf("AvgMoves = %v, want 40", stats.AvgMoves)
	}

	all, err := store.GetAllLevelStats()
	if err != nil {
		t.Fatalf("GetAllLevelStats() failed: %v", err)
	}
	if len(all) != 1 {
		t.Errorf("Expected stats for 1 level, got %d", len(all))
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
