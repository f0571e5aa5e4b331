package identity

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// Verifier abstracts secret storage and comparison so a directory can swap
// the demo plaintext scheme for a real one without changing its contract.
type Verifier interface {
	// Hash transforms a secret into its stored form.
	Hash(secret string) (string, error)

	// Verify reports whether candidate matches the stored form.
	Verify(stored, candidate string) bool
}

// PlainVerifier stores secrets as-is and compares them in constant time.
// It exists for demo-data parity only.
type PlainVerifier struct{}

func (PlainVerifier) Hash(secret string) (string, error) { return secret, nil }

func (PlainVerifier) Verify(stored, candidate string) bool {
	return subtle.ConstantTimeCompare([]byte(stored), []byte(candidate)) == 1
}

// BcryptVerifier stores bcrypt hashes. Zero Cost means bcrypt.DefaultCost.
type BcryptVerifier struct {
	Cost int
}

func (v BcryptVerifier) Hash(secret string) (string, error) {
	cost := v.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	h, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return "", err
	}
	return string(h), nil
}

func (v BcryptVerifier) Verify(stored, candidate string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(candidate)) == nil
}
