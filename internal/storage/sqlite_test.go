package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/borker-run/internal/progress"
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

func TestStoreProgressPerProfile(t *testing.T) {
	store := openTestStore(t)

	p, err := store.LoadProgress("alice")
	if err != nil {
		t.Fatalf("LoadProgress() failed: %v", err)
	}
	if p != (progress.Progress{}) {
		t.Errorf("LoadProgress() for new profile = %+v, expected zero", p)
	}

	if err := store.SaveProgress("alice", progress.Progress{IntroShown: true}); err != nil {
		t.Fatalf("SaveProgress() failed: %v", err)
	}
	if err := store.SaveProgress("bob", progress.Progress{CheckpointReached: true}); err != nil {
		t.Fatalf("SaveProgress() failed: %v", err)
	}
	// Upsert
	if err := store.SaveProgress("alice", progress.Progress{IntroShown: true, CheckpointReached: true}); err != nil {
		t.Fatalf("SaveProgress() failed: %v", err)
	}

	tests := []struct {
		profile  string
		expected progress.Progress
	}{
		{"alice", progress.Progress{IntroShown: true, CheckpointReached: true}},
		{"bob", progress.Progress{CheckpointReached: true}},
		{"carol", progress.Progress{}},
	}
	for _, tc := range tests {
		got, err := store.LoadProgress(tc.profile)
		if err != nil {
			t.Fatalf("LoadProgress(%q) failed: %v", tc.profile, err)
		}
		if got != tc.expected {
			t.Errorf("LoadProgress(%q) = %+v, expected %+v", tc.profile, got, tc.expected)
		}
	}

	profiles, err := store.Profiles()
	if err != nil {
		t.Fatalf("Profiles() failed: %v", err)
	}
	if len(profiles) != 2 || profiles[0] != "alice" || profiles[1] != "bob" {
		t.Errorf("Profiles() = %v, expected [alice bob]", profiles)
	}
}

func TestStoreProgressAdapter(t *testing.T) {
	store := openTestStore(t)
	ps := store.Progress("dave")

	if err := ps.Save(progress.Progress{IntroShown: true}); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	got, err := ps.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !got.IntroShown {
		t.Error("Load() lost IntroShown")
	}

	if err := ps.Clear(); err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	got, _ = ps.Load()
	if got != (progress.Progress{}) {
		t.Errorf("Load() after Clear() = %+v, expected zero", got)
	}
}

func TestStoreRuns(t *testing.T) {
	store := openTestStore(t)

	runs := []Run{
		{Profile: "alice", Won: false, Deaths: 3, Distance: 4200, Duration: 2 * time.Minute},
		{Profile: "alice", Won: true, Deaths: 5, Distance: 6000, Duration: 5 * time.Minute},
		{Profile: "alice", Won: true, Deaths: 1, Distance: 6000, Duration: 4 * time.Minute},
		{Profile: "bob", Won: true, Deaths: 0, Distance: 6000, Duration: 3 * time.Minute},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	recent, err := store.RecentRuns("alice", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("RecentRuns() returned %d runs, expected 3", len(recent))
	}
	if recent[0].Duration != 4*time.Minute {
		t.Errorf("RecentRuns()[0].Duration = %v, expected newest run (4m)", recent[0].Duration)
	}

	all, err := store.RecentRuns("", 2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("RecentRuns(\"\", 2) returned %d runs, expected 2", len(all))
	}

	best, err := store.BestRun("alice")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if best == nil || best.Duration != 4*time.Minute || best.Deaths != 1 {
		t.Errorf("BestRun() = %+v, expected the 4m run", best)
	}

	none, err := store.BestRun("carol")
	if err != nil {
		t.Fatalf("BestRun() failed: %v", err)
	}
	if none != nil {
		t.Errorf("BestRun() for profile without wins = %+v, expected nil", none)
	}

	if err := store.ClearRuns("alice"); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	recent, _ = store.RecentRuns("alice", 10)
	if len(recent) != 0 {
		t.Errorf("RecentRuns() after ClearRuns() = %d, expected 0", len(recent))
	}
}
