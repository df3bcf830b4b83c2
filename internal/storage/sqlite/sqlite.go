// Package sqlite persists the storage.Store interface in a single SQLite file.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // pure Go driver, no CGO

	"github.com/mpancino/myAssetPlace-sub004/internal/storage"
)

var _ storage.Store = (*SQLiteStore)(nil)

// SQLiteStore implements storage.Store over a single database file.
type SQLiteStore struct {
	db *sql.DB
}

// New opens (or creates) the database at dbPath and brings the schema up to
// date. Parent directories are created as needed. Foreign keys are enabled
// so deleting an asset cascades to its loan and expenses.
func New(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	for _, step := range []struct {
		name string
		run  func(*sql.DB) error
	}{
		{"enable foreign keys", enableForeignKeys},
		{"run migrations", runMigrations},
	} {
		if err := step.run(db); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to %s: %w", step.name, err)
		}
	}

	return &SQLiteStore{db: db}, nil
}

func enableForeignKeys(db *sql.DB) error {
	_, err := db.Exec("PRAGMA foreign_keys = ON")
	return err
}

// Close releases the underlying connection pool.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
