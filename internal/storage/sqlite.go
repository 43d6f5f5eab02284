// Package storage provides SQLite-based persistence for player progress and
// completed runs. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/borker-run/internal/progress"
)

// DefaultProfile is the profile used by local single-player sessions.
const DefaultProfile = "local"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// Run is a single completed playthrough.
type Run struct {
	ID        int64
	Profile   string
	Won       bool
	Deaths    int
	Distance  int
	Duration  time.Duration
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS progress (
			profile TEXT PRIMARY KEY,
			intro_shown INTEGER NOT NULL DEFAULT 0,
			checkpoint_reached INTEGER NOT NULL DEFAULT 0,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			profile TEXT NOT NULL,
			won INTEGER NOT NULL DEFAULT 0,
			deaths INTEGER NOT NULL DEFAULT 0,
			distance INTEGER NOT NULL DEFAULT 0,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_profile ON runs(profile);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(profile, won DESC, duration_ms ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// LoadProgress returns the progress of profile. Unknown profiles have none.
func (s *Store) LoadProgress(profile string) (progress.Progress, error) {
	var p progress.Progress
	err := s.db.QueryRow(
		"SELECT intro_shown, checkpoint_reached FROM progress WHERE profile = ?",
		profile,
	).Scan(&p.IntroShown, &p.CheckpointReached)
	if errors.Is(err, sql.ErrNoRows) {
		return progress.Progress{}, nil
	}
	if err != nil {
		return progress.Progress{}, fmt.Errorf("storage: cannot load progress: %w", err)
	}
	return p, nil
}

// SaveProgress stores the progress of profile.
func (s *Store) SaveProgress(profile string, p progress.Progress) error {
	_, err := s.db.Exec(
		`INSERT INTO progress (profile, intro_shown, checkpoint_reached, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(profile) DO UPDATE SET
		   intro_shown = excluded.intro_shown,
		   checkpoint_reached = excluded.checkpoint_reached,
		   updated_at = CURRENT_TIMESTAMP`,
		profile, p.IntroShown, p.CheckpointReached,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save progress: %w", err)
	}
	return nil
}

// ClearProgress deletes the progress of profile.
func (s *Store) ClearProgress(profile string) error {
	_, err := s.db.Exec("DELETE FROM progress WHERE profile = ?", profile)
	if err != nil {
		return fmt.Errorf("storage: cannot clear progress: %w", err)
	}
	return nil
}

// Profiles lists every profile with stored progress.
func (s *Store) Profiles() ([]string, error) {
	rows, err := s.db.Query("SELECT profile FROM progress ORDER BY profile")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query profiles: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// Progress returns a progress.Store bound to one profile.
func (s *Store) Progress(profile string) progress.Store {
	return &profileProgress{s: s, profile: profile}
}

type profileProgress struct {
	s       *Store
	profile string
}

func (p *profileProgress) Load() (progress.Progress, error) { return p.s.LoadProgress(p.profile) }
func (p *profileProgress) Save(v progress.Progress) error   { return p.s.SaveProgress(p.profile, v) }
func (p *profileProgress) Clear() error                     { return p.s.ClearProgress(p.profile) }

// SaveRun records a completed run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (profile, won, deaths, distance, duration_ms) VALUES (?, ?, ?, ?, ?)",
		r.Profile, r.Won, r.Deaths, r.Distance, r.Duration.Milliseconds(),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the most recent runs, newest first.
// An empty profile returns runs of every profile.
func (s *Store) RecentRuns(profile string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, profile, won, deaths, distance, duration_ms, created_at
		 FROM runs
		 WHERE ? = '' OR profile = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		profile, profile, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestRun returns the fastest won run of profile, or nil if none was won.
func (s *Store) BestRun(profile string) (*Run, error) {
	row := s.db.QueryRow(
		`SELECT id, profile, won, deaths, distance, duration_ms, created_at
		 FROM runs
		 WHERE profile = ? AND won = 1
		 ORDER BY duration_ms ASC, deaths ASC
		 LIMIT 1`,
		profile,
	)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ClearRuns deletes all runs of profile.
func (s *Store) ClearRuns(profile string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE profile = ?", profile)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(sc scanner) (Run, error) {
	var r Run
	var durMS int64
	var createdAt any
	if err := sc.Scan(&r.ID, &r.Profile, &r.Won, &r.Deaths, &r.Distance, &durMS, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return r, err
		}
		return r, fmt.Errorf("storage: cannot scan row: %w", err)
	}
	r.Duration = time.Duration(durMS) * time.Millisecond
	r.CreatedAt = parseTime(createdAt)
	return r, nil
}

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
