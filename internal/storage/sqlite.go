// Package storage provides SQLite-based persistence for the plant bed.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for plant persistence.
type Store struct {
	db *sql.DB
}

// PlantRecord is one persisted plant. The identifier is assigned on create
// and never reused; the seed is the sole source of the plant's shape.
type PlantRecord struct {
	ID           int64
	Seed         uint32
	CreatedAt    time.Time
	LastGrowthAt time.Time
}

// AgeDays returns the plant's age in days at the given instant, scaled by
// the growth multiplier (1 for normal operation; larger values are a test
// accelerator, never a default).
func (p PlantRecord) AgeDays(now time.Time, multiplier float64) float64 {
	if multiplier <= 0 {
		multiplier = 1
	}
	age := now.Sub(p.CreatedAt).Hours() / 24
	if age < 0 {
		age = 0
	}
	return age * multiplier
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
		CREATE TABLE IF NOT EXISTS plants (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			last_growth_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_plants_created ON plants(created_at);
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

// CreatePlant inserts a new plant with the given seed.
// Returns the auto-assigned identifier.
func (s *Store) CreatePlant(seed uint32) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO plants (seed) VALUES (?)",
		int64(seed),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot create plant: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// Plants retrieves every plant, oldest first.
func (s *Store) Plants() ([]PlantRecord, error) {
	rows, err := s.db.Query(
		`SELECT id, seed, created_at, last_growth_at
		 FROM plants
		 ORDER BY id ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query plants: %w", err)
	}
	defer rows.Close()

	var records []PlantRecord
	for rows.Next() {
		var r PlantRecord
		var seed int64
		var createdAt, growthAt any
		if err := rows.Scan(&r.ID, &seed, &createdAt, &growthAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Seed = uint32(seed)
		r.CreatedAt = parseTime(createdAt)
		r.LastGrowthAt = parseTime(growthAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// TouchGrowth records that growth time accrued for a plant at the given
// instant. Called while the focus signal is up.
func (s *Store) TouchGrowth(id int64, at time.Time) error {
	_, err := s.db.Exec(
		"UPDATE plants SET last_growth_at = ? WHERE id = ?",
		at.UTC().Format("2006-01-02 15:04:05"), id,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot touch plant %d: %w", id, err)
	}
	return nil
}

// DeletePlant removes one plant.
func (s *Store) DeletePlant(id int64) error {
	_, err := s.db.Exec("DELETE FROM plants WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete plant %d: %w", id, err)
	}
	return nil
}

// ClearPlants removes every plant.
func (s *Store) ClearPlants() error {
	_, err := s.db.Exec("DELETE FROM plants")
	if err != nil {
		return fmt.Errorf("storage: cannot clear plants: %w", err)
	}
	return nil
}

// parseTime handles the driver returning either time.Time or a string.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
