// Package storage provides SQLite-based persistence for solve records.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
//
// Only finished levels are stored. A level in progress is never saved.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

const timeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for solve records.
type Store struct {
	db *sql.DB
}

// Record is one solved level.
type Record struct {
	ID           int64
	CollectionID string
	LevelIndex   int // 0-indexed
	LevelTitle   string
	Steps        int
	Pushes       int
	CreatedAt    time.Time
}

// CollectionStats contains aggregated statistics for a collection.
type CollectionStats struct {
	CollectionID string
	Solves       int // Rows recorded
	LevelsSolved int // Distinct levels with at least one solve
	TotalSteps   int64
	LastPlayed   time.Time
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
		CREATE TABLE IF NOT EXISTS records (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			collection_id TEXT NOT NULL,
			level_index INTEGER NOT NULL,
			level_title TEXT NOT NULL DEFAULT '',
			steps INTEGER NOT NULL,
			pushes INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_records_collection ON records(collection_id);
		CREATE INDEX IF NOT EXISTS idx_records_best ON records(collection_id, level_index, steps, pushes);
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

// SaveRecord stores a solved level.
// Returns the ID of the inserted record.
func (s *Store) SaveRecord(r Record) (int64, error) {
	if r.CollectionID == "" {
		return 0, errors.New("storage: record without collection")
	}

	result, err := s.db.Exec(
		`INSERT INTO records (collection_id, level_index, level_title, steps, pushes)
		 VALUES (?, ?, ?, ?, ?)`,
		r.CollectionID, r.LevelIndex, r.LevelTitle, r.Steps, r.Pushes,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save record: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopRecords retrieves the best N records for one level.
// Results are ordered by steps, then pushes, then age.
func (s *Store) TopRecords(collectionID string, level, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, collection_id, level_index, level_title, steps, pushes, created_at
		 FROM records
		 WHERE collection_id = ? AND level_index = ?
		 ORDER BY steps ASC, pushes ASC, id ASC
		 LIMIT ?`,
		collectionID, level, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query records: %w", err)
	}
	return scanRecords(rows)
}

// BestRecords retrieves the best record of every solved level of a
// collection, ordered by level.
func (s *Store) BestRecords(collectionID string) ([]Record, error) {
	rows, err := s.db.Query(
		`SELECT id, collection_id, level_index, level_title, steps, pushes, created_at
		 FROM (
			SELECT *, ROW_NUMBER() OVER (
				PARTITION BY level_index ORDER BY steps ASC, pushes ASC, id ASC
			) AS rn
			FROM records
			WHERE collection_id = ?
		 )
		 WHERE rn = 1
		 ORDER BY level_index ASC`,
		collectionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best records: %w", err)
	}
	return scanRecords(rows)
}

// BestSteps returns the lowest step count for a level.
// The boolean is false if the level has never been solved.
func (s *Store) BestSteps(collectionID string, level int) (int, bool, error) {
	var steps sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MIN(steps) FROM records WHERE collection_id = ? AND level_index = ?",
		collectionID, level,
	).Scan(&steps)
	if err != nil {
		return 0, false, fmt.Errorf("storage: cannot query best steps: %w", err)
	}

	if !steps.Valid {
		return 0, false, nil
	}
	return int(steps.Int64), true, nil
}

// BestStepsByLevel returns the lowest step count per solved level.
func (s *Store) BestStepsByLevel(collectionID string) (map[int]int, error) {
	rows, err := s.db.Query(
		`SELECT level_index, MIN(steps)
		 FROM records
		 WHERE collection_id = ?
		 GROUP BY level_index`,
		collectionID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query best steps: %w", err)
	}
	defer rows.Close()

	best := make(map[int]int)
	for rows.Next() {
		var level, steps int
		if err := rows.Scan(&level, &steps); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		best[level] = steps
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return best, nil
}

// ClearRecords deletes all records for the given collection.
func (s *Store) ClearRecords(collectionID string) error {
	_, err := s.db.Exec("DELETE FROM records WHERE collection_id = ?", collectionID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear records: %w", err)
	}
	return nil
}

// CollectionStats retrieves aggregated statistics for a collection.
func (s *Store) CollectionStats(collectionID string) (*CollectionStats, error) {
	stats := &CollectionStats{CollectionID: collectionID}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT level_index), COALESCE(SUM(steps), 0), MAX(created_at)
		 FROM records WHERE collection_id = ?`,
		collectionID,
	).Scan(&stats.Solves, &stats.LevelsSolved, &stats.TotalSteps, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get collection stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// AllCollectionStats retrieves statistics for every collection with records.
func (s *Store) AllCollectionStats() (map[string]*CollectionStats, error) {
	rows, err := s.db.Query(
		`SELECT collection_id, COUNT(*), COUNT(DISTINCT level_index), SUM(steps), MAX(created_at)
		 FROM records
		 GROUP BY collection_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all collection stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*CollectionStats)
	for rows.Next() {
		var cs CollectionStats
		var lastPlayed any
		if err := rows.Scan(&cs.CollectionID, &cs.Solves, &cs.LevelsSolved, &cs.TotalSteps, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		cs.LastPlayed = parseTime(lastPlayed)
		stats[cs.CollectionID] = &cs
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// scanRecords reads and closes a result set of records.
func scanRecords(rows *sql.Rows) ([]Record, error) {
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var createdAt any
		if err := rows.Scan(&r.ID, &r.CollectionID, &r.LevelIndex, &r.LevelTitle, &r.Steps, &r.Pushes, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(timeLayout, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
