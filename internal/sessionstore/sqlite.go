package sessionstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/vitality-app/vitality/internal/dbx"
	"github.com/vitality-app/vitality/internal/sessionstore/migrations"
)

// recordKey is the single key under which the session record lives,
// matching the browser build's localStorage slot.
const recordKey = "session/user"

// SQLite stores the session record in a one-row key-value table.
type SQLite struct {
	db dbx.DBTX
}

func NewSQLite(db dbx.DBTX) *SQLite {
	return &SQLite{db: db}
}

// Open opens (or creates) the local store database and applies the embedded
// migrations. A modernc.org/sqlite driver must be registered by the caller.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("local store migrations failed: %w", err)
	}

	return db, nil
}

func (s *SQLite) Load(ctx context.Context) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM local WHERE key = ?`, recordKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session record: %w", err)
	}
	return value, nil
}

func (s *SQLite) Save(ctx context.Context, record []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO local (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, recordKey, record)
	if err != nil {
		return fmt.Errorf("failed to save session record: %w", err)
	}
	return nil
}

func (s *SQLite) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM local WHERE key = ?`, recordKey)
	if err != nil {
		return fmt.Errorf("failed to clear session record: %w", err)
	}
	return nil
}
