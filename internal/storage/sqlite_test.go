package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
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

func mustSave(t *testing.T, store *Store, r Record) {
	t.Helper()
	if _, err := store.SaveRecord(r); err != nil {
		t.Fatalf("SaveRecord() failed: %v", err)
	}
}

// stepsOf drops IDs and timestamps for comparison.
func stepsOf(records []Record) [][3]int {
	out := make([][3]int, len(records))
	for i, r := range records {
		out[i] = [3]int{r.LevelIndex, r.Steps, r.Pushes}
	}
	return out
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

func TestStoreNestedPath(t *testing.T) {
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

func TestStoreExpandHomePath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := Open("~/.sokoban/records.db")
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(filepath.Join(home, ".sokoban", "records.db")); err != nil {
		t.Errorf("database should be created under HOME: %v", err)
	}
}

func TestStoreSaveRecordRequiresCollection(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.SaveRecord(Record{Steps: 3}); err == nil {
		t.Error("SaveRecord() without a collection should fail")
	}
}

func TestStoreTopRecords(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Record{CollectionID: "intro", LevelIndex: 1, LevelTitle: "Two Boxes", Steps: 14, Pushes: 4})
	mustSave(t, store, Record{CollectionID: "intro", LevelIndex: 1, LevelTitle: "Two Boxes", Steps: 10, Pushes: 5})
	mustSave(t, store, Record{CollectionID: "intro", LevelIndex: 1, LevelTitle: "Two Boxes", Steps: 10, Pushes: 4})
	mustSave(t, store, Record{CollectionID: "intro", LevelIndex: 0, Steps: 1, Pushes: 1})
	mustSave(t, store, Record{CollectionID: "warmup", LevelIndex: 1, Steps: 2, Pushes: 1})

	records, err := store.TopRecords("intro", 1, 10)
	if err != nil {
		t.Fatalf("TopRecords() failed: %v", err)
	}

	expected := [][3]int{{1, 10, 4}, {1, 10, 5}, {1, 14, 4}}
	if diff := cmp.Diff(expected, stepsOf(records)); diff != "" {
		t.Errorf("TopRecords() mismatch (-want +got):\n%s", diff)
	}
	if records[0].LevelTitle != "Two Boxes" || records[0].CollectionID != "intro" {
		t.Errorf("record fields not stored: %+v", records[0])
	}
	if records[0].CreatedAt.IsZero() {
		t.Error("CreatedAt should be set by the database")
	}

	limited, err := store.TopRecords("intro", 1, 2)
	if err != nil {
		t.Fatalf("TopRecords() failed: %v", err)
	}
	if len(limited) != 2 {
		t.Errorf("expected 2 records with limit, got %d", len(limited))
	}
}

func TestStoreBestRecords(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Record{CollectionID: "intro", LevelIndex: 2, Steps: 9, Pushes: 3})
	mustSave(t, store, Record{CollectionID: "intro", LevelIndex: 0, Steps: 3, Pushes: 1})
	mustSave(t, store, Record{CollectionID: "intro", LevelIndex: 2, Steps: 5, Pushes: 3})
	mustSave(t, store, Record{CollectionID: "intro", LevelIndex: 0, Steps: 1, Pushes: 1})
	mustSave(t, store, Record{CollectionID: "other", LevelIndex: 1, Steps: 1, Pushes: 1})

	records, err := store.BestRecords("intro")
	if err != nil {
		t.Fatalf("BestRecords() failed: %v", err)
	}

	expected := [][3]int{{0, 1, 1}, {2, 5, 3}}
	if diff := cmp.Diff(expected, stepsOf(records)); diff != "" {
		t.Errorf("BestRecords() mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreBestSteps(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.BestSteps("intro", 0); err != nil || ok {
		t.Errorf("BestSteps() on empty store = (ok %v, err %v), expected (false, nil)", ok, err)
	}

	mustSave(t, store, Record{CollectionID: "intro", LevelIndex: 0, Steps: 7, Pushes: 1})
	mustSave(t, store, Record{CollectionID: "intro", LevelIndex: 0, Steps: 4, Pushes: 2})
	mustSave(t, store, Record{CollectionID: "intro", LevelIndex: 1, Steps: 12, Pushes: 2})

	steps, ok, err := store.BestSteps("intro", 0)
	if err != nil || !ok || steps != 4 {
		t.Errorf("BestSteps() = (%d, %v, %v), expected (4, true, nil)", steps, ok, err)
	}

	best, err := store.BestStepsByLevel("intro")
	if err != nil {
		t.Fatalf("BestStepsByLevel() failed: %v", err)
	}
	if diff := cmp.Diff(map[int]int{0: 4, 1: 12}, best); diff != "" {
		t.Errorf("BestStepsByLevel() mismatch (-want +got):\n%s", diff)
	}
}

func TestStoreClearRecords(t *testing.T) {
	store := openTestStore(t)

	mustSave(t, store, Record{CollectionID: "intro", LevelIndex: 0, Steps: 1, Pushes: 1})
	mustSave(t, store, Record{CollectionID: "warmup", LevelIndex: 0, Steps: 2, Pushes: 1})

	if err := store.ClearRecords("intro"); err != nil {
		t.Fatalf("ClearRecords() failed: %v", err)
	}

	records, err := store.BestRecords("intro")
	if err != nil {
		t.Fatalf("BestRecords() failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected no intro records after clear, got %d", len(records))
	}

	records, err = store.BestRecords("warmup")
	if err != nil {
		t.Fatalf("BestRecords() failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("clearing intro should keep warmup records, got %d", len(records))
	}
}

func TestStoreCollectionStats(t *testing.T) {
	store := openTestStore(t)

	empty, err := store.CollectionStats("intro")
	if err != nil {
		t.Fatalf("CollectionStats() failed: %v", err)
	}
	if empty.Solves != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	mustSave(t, store, Record{CollectionID: "intro", LevelIndex: 0, Steps: 1, Pushes: 1})
	mustSave(t, store, Record{CollectionID: "intro", LevelIndex: 0, Steps: 3, Pushes: 1})
	mustSave(t, store, Record{CollectionID: "intro", LevelIndex: 2, Steps: 6, Pushes: 2})
	mustSave(t, store, Record{CollectionID: "warmup", LevelIndex: 0, Steps: 2, Pushes: 1})

	stats, err := store.CollectionStats("intro")
	if err != nil {
		t.Fatalf("CollectionStats() failed: %v", err)
	}
	if stats.Solves != 3 || stats.LevelsSolved != 2 || stats.TotalSteps != 10 {
		t.Errorf("stats = %+v, expected 3 solves, 2 levels, 10 steps", stats)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}

	all, err := store.AllCollectionStats()
	if err != nil {
		t.Fatalf("AllCollectionStats() failed: %v", err)
	}
	if len(all) != 2 || all["warmup"] == nil || all["warmup"].Solves != 1 {
		t.Errorf("AllCollectionStats() = %v", all)
	}
}
