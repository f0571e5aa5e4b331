package sessionstore

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:sessionstore_tests?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE IF NOT EXISTS local (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
DELETE FROM local;
`)
	require.NoError(t, err)
	return db
}

func TestSQLite_LoadEmpty(t *testing.T) {
	s := NewSQLite(setupDB(t))

	got, err := s.Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestSQLite_SaveLoadRoundTrip(t *testing.T) {
	s := NewSQLite(setupDB(t))
	ctx := context.Background()

	rec := []byte(`{"id":"2","name":"Jane Smith","email":"jane@example.com"}`)
	require.NoError(t, s.Save(ctx, rec))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, rec, got)
}

func TestSQLite_SaveOverwrites(t *testing.T) {
	s := NewSQLite(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, []byte("one")))
	require.NoError(t, s.Save(ctx, []byte("two")))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, []byte("two"), got)
}

func TestSQLite_ClearRemovesRecord(t *testing.T) {
	s := NewSQLite(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, []byte("rec")))
	require.NoError(t, s.Clear(ctx))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, got)

	// clearing an already empty store is fine
	require.NoError(t, s.Clear(ctx))
}

func TestOpen_AppliesMigrations(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "local.db")

	db, err := Open(ctx, dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := NewSQLite(db)
	require.NoError(t, s.Save(ctx, []byte("persisted")))

	got, err := s.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, []byte("persisted"), got)
}

func TestMemory_RoundTrip(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	got, err := m.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, got)

	require.NoError(t, m.Save(ctx, []byte("rec")))
	got, err = m.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, []byte("rec"), got)

	require.NoError(t, m.Clear(ctx))
	got, err = m.Load(ctx)
	require.NoError(t, err)
	require.Nil(t, got)
}
