package snapshots

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

type SQLiteRepository struct {
	db *sql.DB
}

var _ Repository = (*SQLiteRepository)(nil)

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// InitSchema creates the snapshot table if missing.
func InitSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS snapshots (
			kind       TEXT PRIMARY KEY,
			payload    BLOB NOT NULL,
			fetched_at TIMESTAMP NOT NULL,
			stale      INTEGER NOT NULL DEFAULT 0
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to init snapshot schema: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, kind Kind) (*Snapshot, error) {
	s := &Snapshot{Kind: kind}
	var stale int
	err := r.db.QueryRowContext(ctx,
		`SELECT payload, fetched_at, stale FROM snapshots WHERE kind = ?`, string(kind),
	).Scan(&s.Payload, &s.FetchedAt, &stale)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot[%s]: %w", kind, err)
	}
	s.Stale = stale != 0
	return s, nil
}

func (r *SQLiteRepository) Put(ctx context.Context, kind Kind, payload []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO snapshots (kind, payload, fetched_at, stale) VALUES (?, ?, ?, 0)
		ON CONFLICT(kind) DO UPDATE SET
			payload = excluded.payload,
			fetched_at = excluded.fetched_at,
			stale = 0
	`, string(kind), payload, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to put snapshot[%s]: %w", kind, err)
	}
	return nil
}

func (r *SQLiteRepository) MarkStale(ctx context.Context, kinds ...Kind) error {
	for _, kind := range kinds {
		_, err := r.db.ExecContext(ctx,
			`UPDATE snapshots SET stale = 1 WHERE kind = ?`, string(kind))
		if err != nil {
			return fmt.Errorf("failed to mark snapshot[%s] stale: %w", kind, err)
		}
	}
	return nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM snapshots`)
	if err != nil {
		return fmt.Errorf("failed to clear snapshots: %w", err)
	}
	return nil
}
