package identity

import (
	"context"
	"strconv"
	"strings"
	"sync"
)

// DefaultAvatarRef is assigned to accounts created without an avatar.
const DefaultAvatarRef = "avatars/placeholder.svg"

// DemoIdentities returns the seed accounts shipped with the demo build.
func DemoIdentities() []*Identity {
	return []*Identity{
		{
			ID:        "1",
			Name:      "John Doe",
			Email:     "john@example.com",
			Secret:    "password123",
			AvatarRef: DefaultAvatarRef,
		},
		{
			ID:        "2",
			Name:      "Jane Smith",
			Email:     "jane@example.com",
			Secret:    "password123",
			AvatarRef: DefaultAvatarRef,
		},
	}
}

// MemoryRepository is an in-process credential directory. All mutation is
// serialized under an internal lock, which keeps the size-derived ID
// allocation consistent.
type MemoryRepository struct {
	mu         sync.RWMutex
	identities []*Identity
	verifier   Verifier
}

// NewMemoryRepository builds a directory over the given seed identities.
// Seed secrets are stored through the verifier's Hash.
func NewMemoryRepository(v Verifier, seed ...*Identity) (*MemoryRepository, error) {
	r := &MemoryRepository{verifier: v}
	for _, id := range seed {
		if _, err := r.Register(context.Background(), id); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func (r *MemoryRepository) FindByCredentials(ctx context.Context, email, secret string) (*Identity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, id := range r.identities {
		if strings.EqualFold(id.Email, email) && r.verifier.Verify(id.Secret, secret) {
			cp := *id
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.findByEmailLocked(email) != nil, nil
}

func (r *MemoryRepository) Register(ctx context.Context, id *Identity) (*Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findByEmailLocked(id.Email) != nil {
		return nil, ErrEmailTaken
	}

	stored := *id
	if stored.ID == "" {
		stored.ID = strconv.Itoa(len(r.identities) + 1)
	}
	if stored.AvatarRef == "" {
		stored.AvatarRef = DefaultAvatarRef
	}

	hashed, err := r.verifier.Hash(stored.Secret)
	if err != nil {
		return nil, err
	}
	stored.Secret = hashed

	r.identities = append(r.identities, &stored)

	cp := stored
	return &cp, nil
}

// findByEmailLocked requires at least a read lock to be held.
func (r *MemoryRepository) findByEmailLocked(email string) *Identity {
	for _, id := range r.identities {
		if strings.EqualFold(id.Email, email) {
			return id
		}
	}
	return nil
}
