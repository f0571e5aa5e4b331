// Package identity implements the credential directory: the registry of
// known accounts the session layer authenticates against.
package identity

// Identity is a registered account, secret included. The secret never leaves
// this package except through a Verifier comparison.
type Identity struct {
	ID        string
	Name      string
	Email     string
	Secret    string
	AvatarRef string
}

// User is the public projection of an Identity: the only account shape the
// session layer, durable storage, or any UI is allowed to see.
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarRef string `json:"avatar,omitempty"`
}

// Public returns the secret-free projection of the identity.
func (i *Identity) Public() *User {
	return &User{
		ID:        i.ID,
		Name:      i.Name,
		Email:     i.Email,
		AvatarRef: i.AvatarRef,
	}
}
