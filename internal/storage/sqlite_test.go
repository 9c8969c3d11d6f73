package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesNestedPath(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}

func TestStoreSaveAndRetrieveRuns(t *testing.T) {
	store := openTestStore(t)

	want := Run{Variant: "midway", Score: 42, LivesLeft: 0, Ticks: 1234, PowerUpCollected: true, Seed: 7, Hash: 0xdeadbeefcafe}
	if _, err := store.SaveRun(want); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	store.SaveScore("midway", 10)
	store.SaveScore("midway", 90)
	store.SaveScore("midway_classic", 500)

	runs, err := store.TopRuns("midway", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs, got %d", len(runs))
	}
	if runs[0].Score != 90 || runs[1].Score != 42 || runs[2].Score != 10 {
		t.Errorf("Runs not in descending order: %v", runs)
	}

	got := runs[1]
	if got.Ticks != want.Ticks || got.Seed != want.Seed || got.Hash != want.Hash || !got.PowerUpCollected {
		t.Errorf("TopRuns()[1] = %+v, expected fields of %+v", got, want)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt not populated")
	}
}

func TestStoreTopRunsLimitAndTies(t *testing.T) {
	store := openTestStore(t)

	first, _ := store.SaveScore("midway", 300)
	store.SaveScore("midway", 100)
	store.SaveScore("midway", 300)
	store.SaveScore("midway", 200)

	runs, err := store.TopRuns("midway", 2)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("Expected 2 runs with limit, got %d", len(runs))
	}
	if runs[0].ID != first {
		t.Errorf("tie should go to the earlier run: got ID %d, expected %d", runs[0].ID, first)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openTestStore(t)

	high, err := store.HighScore("midway")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 without runs, got %d", high)
	}

	store.SaveScore("midway", 100)
	store.SaveScore("midway", 300)
	store.SaveScore("midway", 200)

	if high, _ = store.HighScore("midway"); high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearRuns(t *testing.T) {
	store := openTestStore(t)

	store.SaveScore("midway", 100)
	store.SaveScore("midway_coins", 3)

	if err := store.ClearRuns("midway"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	if runs, _ := store.TopRuns("midway", 10); len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	if runs, _ := store.TopRuns("midway_coins", 10); len(runs) != 1 {
		t.Error("other variants should not be affected by clearing")
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.Stats("midway")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if empty.Runs != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("Stats() without runs = %+v", empty)
	}

	store.SaveRun(Run{Variant: "midway", Score: 10, PowerUpCollected: true})
	store.SaveRun(Run{Variant: "midway", Score: 30})

	st, err := store.Stats("midway")
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if st.Runs != 2 || st.HighScore != 30 || st.AvgScore != 20 || st.PowerUps != 1 {
		t.Errorf("Stats() = %+v", st)
	}
	if st.LastPlayed.IsZero() {
		t.Error("LastPlayed not populated")
	}
}
