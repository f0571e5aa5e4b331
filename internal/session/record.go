package session

import (
	"encoding/json"

	"github.com/golang-jwt/jwt/v5"

	"github.com/vitality-app/vitality/internal/identity"
)

// RecordCodec translates between the public user and the durable record
// bytes. Decode failures mean "no session", never a user-facing error.
type RecordCodec interface {
	Encode(u *identity.User) ([]byte, error)
	Decode(record []byte) (*identity.User, error)
}

// JSONRecord is the default codec: a plain JSON object with the public user
// fields, compatible with the browser build's localStorage record.
type JSONRecord struct{}

func (JSONRecord) Encode(u *identity.User) ([]byte, error) {
	return json.Marshal(u)
}

func (JSONRecord) Decode(record []byte) (*identity.User, error) {
	u := &identity.User{}
	if err := json.Unmarshal(record, u); err != nil {
		return nil, err
	}
	return u, nil
}

// recordClaims carries the public user inside a signed record. No expiry is
// set: a restored session is trusted indefinitely.
type recordClaims struct {
	jwt.RegisteredClaims
	User identity.User `json:"user"`
}

// SignedRecord wraps the same user fields in an HS256-signed token, so a
// tampered local record decodes as "no session" instead of an arbitrary user.
type SignedRecord struct {
	key []byte
}

func NewSignedRecord(key []byte) *SignedRecord {
	return &SignedRecord{key: key}
}

func (s *SignedRecord) Encode(u *identity.User) ([]byte, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, recordClaims{User: *u})

	signed, err := token.SignedString(s.key)
	if err != nil {
		return nil, err
	}
	return []byte(signed), nil
}

func (s *SignedRecord) Decode(record []byte) (*identity.User, error) {
	claims := &recordClaims{}

	token, err := jwt.ParseWithClaims(string(record), claims, func(t *jwt.Token) (interface{}, error) {
		return s.key, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	u := claims.User
	return &u, nil
}
