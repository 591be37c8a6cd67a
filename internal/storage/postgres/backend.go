// Package postgres keeps the collection mirrors in a single key/value table.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/personalweb/portfolio-backend/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS portfolio_kv (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

// Backend implements storage.Backend on top of database/sql.
type Backend struct {
	db *sql.DB
}

// Open connects, creates the table when missing and returns the backend.
func Open(ctx context.Context, cfg *config.DatabaseConfig) (*Backend, error) {
	db, err := NewConnection(cfg)
	if err != nil {
		return nil, err
	}
	b := NewBackend(db)
	if err := b.EnsureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return b, nil
}

func NewBackend(db *sql.DB) *Backend {
	return &Backend{db: db}
}

func (b *Backend) EnsureSchema(ctx context.Context) error {
	if _, err := b.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create portfolio_kv: %w", err)
	}
	return nil
}

func (b *Backend) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := b.db.QueryRowContext(ctx, `SELECT value FROM portfolio_kv WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get %s: %w", key, err)
	}
	return value, true, nil
}

func (b *Backend) Set(ctx context.Context, key, value string) error {
	const q = `
INSERT INTO portfolio_kv (key, value, updated_at)
VALUES ($1, $2, NOW())
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
`
	if _, err := b.db.ExecContext(ctx, q, key, value); err != nil {
		return fmt.Errorf("failed to set %s: %w", key, err)
	}
	return nil
}

func (b *Backend) Ping(ctx context.Context) error {
	return b.db.PingContext(ctx)
}

func (b *Backend) Close() error {
	return b.db.Close()
}
