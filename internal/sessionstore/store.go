// Package sessionstore persists the single durable session record. The store
// is a single-writer resource owned exclusively by the session manager; no
// other component reads or writes it.
package sessionstore

import "context"

// Store holds at most one encoded session record.
type Store interface {
	// Load returns the current record, or nil when none is stored.
	Load(ctx context.Context) ([]byte, error)

	// Save replaces the record.
	Save(ctx context.Context, record []byte) error

	// Clear removes the record. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
