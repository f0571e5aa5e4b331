package session

import "errors"

// Error kinds surfaced through State.Err. Operations never propagate
// failures any other way; the boolean result plus one of these is the whole
// failure contract.
var (
	// ErrInvalidCredentials: sign-in found no identity for the email/secret pair.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken: sign-up with an email that is already registered.
	ErrEmailTaken = errors.New("user with this email already exists")

	// ErrSessionBusy: another session operation is already in flight.
	ErrSessionBusy = errors.New("another session operation is in progress")

	// ErrTimeout: the operation's context expired or was canceled mid-flight.
	ErrTimeout = errors.New("session operation timed out")

	// ErrInternal: any unexpected failure; the session stays consistent.
	ErrInternal = errors.New("session operation failed")
)
