package blobstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/oshocredit/khata_backend/internal/core/domain"
	portsrepo "github.com/oshocredit/khata_backend/internal/core/ports/repositories"
)

// sqliteSnapshotStore persists the whole application state as one named
// JSON record in a SQLite table. Save replaces the record; Load reads it
// back, treating a missing or unreadable record as absent state.
type sqliteSnapshotStore struct {
	db   *sql.DB
	name string
}

// NewSQLiteSnapshotStore creates the snapshots table if needed and returns
// a store scoped to the given record name.
func NewSQLiteSnapshotStore(db *sql.DB, name string) (portsrepo.SnapshotStore, error) {
	if name == "" {
		return nil, fmt.Errorf("snapshot name cannot be empty")
	}
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS snapshots (
			name       TEXT PRIMARY KEY,
			body       TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)`)
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshots table: %w", err)
	}
	return &sqliteSnapshotStore{db: db, name: name}, nil
}

var _ portsrepo.SnapshotStore = (*sqliteSnapshotStore)(nil)

// Load reads the named record. A missing row or a body that fails to decode
// both return (nil, nil): unreadable prior state forces re-onboarding, it
// never crashes startup.
func (s *sqliteSnapshotStore) Load(ctx context.Context) (*domain.Snapshot, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `SELECT body FROM snapshots WHERE name = ?`, s.name).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %q: %w", s.name, err)
	}

	var snapshot domain.Snapshot
	if err := json.Unmarshal([]byte(body), &snapshot); err != nil {
		slog.Warn("Stored snapshot is malformed, treating as absent",
			slog.String("name", s.name), slog.String("error", err.Error()))
		return nil, nil
	}
	return &snapshot, nil
}

// Save serializes the snapshot and replaces the named record whole.
func (s *sqliteSnapshotStore) Save(ctx context.Context, snapshot domain.Snapshot) error {
	body, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (name, body, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET body = excluded.body, updated_at = excluded.updated_at`,
		s.name, string(body), time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to write snapshot %q: %w", s.name, err)
	}
	return nil
}
