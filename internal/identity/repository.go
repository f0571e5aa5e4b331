package identity

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned when no identity matches the given credentials.
	// A known email with a wrong secret is indistinguishable from an unknown
	// email, so callers cannot probe for registered addresses.
	ErrNotFound = errors.New("identity not found")

	// ErrEmailTaken is returned by Register when the email is already in use.
	ErrEmailTaken = errors.New("email already registered")
)

// Repository is the credential directory contract. Email matching is
// case-insensitive everywhere; stored emails keep their original case.
type Repository interface {
	// FindByCredentials returns the identity whose email matches (ignoring
	// case) and whose secret verifies, or ErrNotFound.
	FindByCredentials(ctx context.Context, email, secret string) (*Identity, error)

	// ExistsByEmail reports whether an identity with the email is registered.
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Register stores a new identity, allocating an ID when id.ID is empty
	// and hashing the secret through the directory's Verifier. Returns
	// ErrEmailTaken on a duplicate email.
	Register(ctx context.Context, id *Identity) (*Identity, error)
}
