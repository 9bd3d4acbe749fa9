package storage

import (
	"context"
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

func save(t *testing.T, s *Store, initials string, score int, dimension string) {
	t.Helper()
	_, err := s.SaveScore(context.Background(), ScoreEntry{
		Initials:  initials,
		Score:     score,
		Dimension: dimension,
		Cause:     "health-exhausted",
	})
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	save(t, store, "AAA", 100, "80x24")
	save(t, store, "BBB", 50, "80x24")
	save(t, store, "CCC", 200, "80x24")

	// A run on a different terminal size lives on its own board.
	save(t, store, "DDD", 500, "120x40")

	scores, err := store.TopScores(ctx, "80x24", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	if scores[0].Score != 200 || scores[0].Initials != "CCC" {
		t.Errorf("Expected CCC 200 on top, got %s %d", scores[0].Initials, scores[0].Score)
	}
	if scores[1].Score != 100 || scores[2].Score != 50 {
		t.Errorf("Scores not sorted descending: %v", scores)
	}

	wide, err := store.TopScores(ctx, "120x40", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(wide) != 1 {
		t.Errorf("Expected 1 score on the wide board, got %d", len(wide))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		save(t, store, "AAA", (i+1)*100, "80x24")
	}

	scores, err := store.TopScores(ctx, "80x24", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores with limit, got %d", len(scores))
	}
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	high, err := store.HighScore(ctx, "80x24")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty board, got %d", high)
	}

	save(t, store, "AAA", 100, "80x24")
	save(t, store, "BBB", 300, "80x24")
	save(t, store, "CCC", 200, "80x24")

	high, err = store.HighScore(ctx, "80x24")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreRank(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	// An empty board ranks any score first.
	rank, err := store.Rank(ctx, "80x24", 10)
	if err != nil {
		t.Fatalf("Rank() failed: %v", err)
	}
	if rank != 1 {
		t.Errorf("Rank on empty board = %d, want 1", rank)
	}

	for i := 0; i < TopSize; i++ {
		save(t, store, "AAA", (i+1)*100, "80x24")
	}

	rank, err = store.Rank(ctx, "80x24", 600)
	if err != nil {
		t.Fatalf("Rank() failed: %v", err)
	}
	if rank != 1 {
		t.Errorf("Rank(600) = %d, want 1", rank)
	}

	rank, err = store.Rank(ctx, "80x24", 250)
	if err != nil {
		t.Fatalf("Rank() failed: %v", err)
	}
	if rank != 4 {
		t.Errorf("Rank(250) = %d, want 4", rank)
	}

	// Below the kept top: does not place.
	rank, err = store.Rank(ctx, "80x24", 50)
	if err != nil {
		t.Fatalf("Rank() failed: %v", err)
	}
	if rank != 0 {
		t.Errorf("Rank(50) = %d, want 0", rank)
	}

	// A tie ranks below the existing entry.
	rank, err = store.Rank(ctx, "80x24", 500)
	if err != nil {
		t.Fatalf("Rank() failed: %v", err)
	}
	if rank != 2 {
		t.Errorf("Rank(500 tie) = %d, want 2", rank)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	save(t, store, "AAA", 100, "80x24")
	save(t, store, "BBB", 200, "80x24")
	save(t, store, "CCC", 300, "120x40")

	if err := store.ClearScores(ctx, "80x24"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	cleared, _ := store.TopScores(ctx, "80x24", 10)
	if len(cleared) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(cleared))
	}

	kept, _ := store.TopScores(ctx, "120x40", 10)
	if len(kept) != 1 {
		t.Error("Clearing one board should not touch the others")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	save(t, store, "AAA", 100, "80x24")
	save(t, store, "BBB", 300, "80x24")

	stats, err := store.GetStats(ctx, "80x24")
	if err != nil {
		t.Fatalf("GetStats() failed: %v", err)
	}
	if stats.RunCount != 2 {
		t.Errorf("RunCount = %d, want 2", stats.RunCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("HighScore = %d, want 300", stats.HighScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("TotalScore = %d, want 400", stats.TotalScore)
	}
}

func TestStoreDimensions(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	save(t, store, "AAA", 100, "80x24")
	save(t, store, "BBB", 200, "120x40")
	save(t, store, "CCC", 300, "80x24")

	dims, err := store.Dimensions(ctx)
	if err != nil {
		t.Fatalf("Dimensions() failed: %v", err)
	}
	if len(dims) != 2 {
		t.Errorf("Expected 2 dimensions, got %v", dims)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
