// Package session owns the authentication state of a running application:
// who is signed in, whether an operation is in flight, and what the last
// failure was. The Manager is the sole mutator of that state and the sole
// reader/writer of the durable session record.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/vitality-app/vitality/internal/identity"
	"github.com/vitality-app/vitality/internal/logging"
	"github.com/vitality-app/vitality/internal/sessionstore"
)

// State is a read-only snapshot for consumers (the view layer).
//
// User is nil while anonymous. Err holds one of the package error kinds from
// the most recent failed operation and is cleared when a new one starts.
type State struct {
	User    *identity.User
	Pending bool
	Err     error
}

// Manager drives the session lifecycle: Restore once at startup, then
// SignIn/SignUp/SignOut. Operations are single-flight: while one is running,
// a second call fails fast with ErrSessionBusy instead of racing.
//
// Operations never panic past the boundary and never leave a partial user in
// the state; every failure resolves to a false result plus a populated error
// kind. The one exception is calling an operation before Restore, which is a
// programming error and panics.
type Manager struct {
	dir   identity.Repository
	store sessionstore.Store
	codec RecordCodec
	log   logging.Logger

	// latencies stand in for the network round-trip of a real backend
	signInLatency  time.Duration
	signOutLatency time.Duration

	observer func(State)

	op sync.Mutex // single-flight guard

	mu       sync.RWMutex
	user     *identity.User
	pending  bool
	lastErr  error
	restored bool
}

type Option func(*Manager)

// WithCodec replaces the durable record codec (default: JSONRecord).
func WithCodec(c RecordCodec) Option {
	return func(m *Manager) { m.codec = c }
}

// WithLogger replaces the default slog-backed logger.
func WithLogger(l logging.Logger) Option {
	return func(m *Manager) { m.log = l }
}

// WithLatency sets the simulated round-trip delays. Zero disables the wait,
// which is what tests want.
func WithLatency(signIn, signOut time.Duration) Option {
	return func(m *Manager) {
		m.signInLatency = signIn
		m.signOutLatency = signOut
	}
}

// WithObserver registers a callback invoked after every state change. The
// callback runs on the operation's goroutine and must not call back into the
// Manager's operations.
func WithObserver(fn func(State)) Option {
	return func(m *Manager) { m.observer = fn }
}

func New(dir identity.Repository, store sessionstore.Store, opts ...Option) *Manager {
	m := &Manager{
		dir:            dir,
		store:          store,
		codec:          JSONRecord{},
		log:            logging.NewSlogLogger(slog.Default()),
		signInLatency:  time.Second,
		signOutLatency: 500 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Restore is the one-time bootstrap: it loads the durable record and, when it
// decodes to a valid user, starts the session as authenticated. An absent or
// malformed record leaves the session anonymous; malformed records are logged
// and swallowed, never surfaced. Only a storage read failure is returned, and
// even then the Manager is usable afterwards.
func (m *Manager) Restore(ctx context.Context) error {
	m.op.Lock()
	defer m.op.Unlock()

	defer func() {
		m.mu.Lock()
		m.restored = true
		m.mu.Unlock()
	}()

	raw, err := m.store.Load(ctx)
	if err != nil {
		m.log.Warn(ctx, "failed to load session record", "error", err)
		return err
	}
	if raw == nil {
		return nil
	}

	u, err := m.codec.Decode(raw)
	if err != nil {
		m.log.Warn(ctx, "failed to parse session record, starting anonymous", "error", err)
		return nil
	}

	m.mu.Lock()
	m.user = u
	m.mu.Unlock()
	m.notify()

	m.log.Info(ctx, "session restored", "user_id", u.ID)
	return nil
}

// SignIn authenticates against the credential directory. On success the
// public user becomes current and is persisted. On a lookup miss the result
// is false with ErrInvalidCredentials; any other failure yields ErrInternal.
func (m *Manager) SignIn(ctx context.Context, email, secret string) bool {
	m.ensureRestored()
	if !m.op.TryLock() {
		m.reject()
		return false
	}
	defer m.op.Unlock()

	m.begin()
	defer m.finish()

	if err := m.wait(ctx, m.signInLatency); err != nil {
		m.fail(ctx, ErrTimeout, "sign-in canceled", err)
		return false
	}

	id, err := m.dir.FindByCredentials(ctx, email, secret)
	switch {
	case err == nil:
		return m.establish(ctx, id.Public())
	case errors.Is(err, identity.ErrNotFound):
		m.fail(ctx, ErrInvalidCredentials, "sign-in rejected", err)
		return false
	default:
		m.fail(ctx, ErrInternal, "sign-in failed", err)
		return false
	}
}

// SignUp registers a new account in the credential directory and signs it in.
// A duplicate email (any case) yields false with ErrEmailTaken.
func (m *Manager) SignUp(ctx context.Context, name, email, secret string) bool {
	m.ensureRestored()
	if !m.op.TryLock() {
		m.reject()
		return false
	}
	defer m.op.Unlock()

	m.begin()
	defer m.finish()

	if err := m.wait(ctx, m.signInLatency); err != nil {
		m.fail(ctx, ErrTimeout, "sign-up canceled", err)
		return false
	}

	exists, err := m.dir.ExistsByEmail(ctx, email)
	if err != nil {
		m.fail(ctx, ErrInternal, "sign-up lookup failed", err)
		return false
	}
	if exists {
		m.fail(ctx, ErrEmailTaken, "sign-up rejected", identity.ErrEmailTaken)
		return false
	}

	stored, err := m.dir.Register(ctx, &identity.Identity{
		Name:   name,
		Email:  email,
		Secret: secret,
	})
	if err != nil {
		if errors.Is(err, identity.ErrEmailTaken) {
			m.fail(ctx, ErrEmailTaken, "sign-up rejected", err)
		} else {
			m.fail(ctx, ErrInternal, "sign-up failed", err)
		}
		return false
	}

	return m.establish(ctx, stored.Public())
}

// SignOut clears the current user and removes the durable record. The
// in-memory session is cleared even when the record removal fails; the
// failure is reported as ErrInternal so the caller knows the record may
// resurface on the next restore.
func (m *Manager) SignOut(ctx context.Context) bool {
	m.ensureRestored()
	if !m.op.TryLock() {
		m.reject()
		return false
	}
	defer m.op.Unlock()

	m.begin()
	defer m.finish()

	if err := m.wait(ctx, m.signOutLatency); err != nil {
		m.fail(ctx, ErrTimeout, "sign-out canceled", err)
		return false
	}

	m.mu.Lock()
	m.user = nil
	m.mu.Unlock()

	if err := m.store.Clear(ctx); err != nil {
		m.fail(ctx, ErrInternal, "failed to clear session record", err)
		return false
	}
	return true
}

// Snapshot returns a copy of the observable state.
func (m *Manager) Snapshot() State {
	m.mu.RLock()
	defer m.mu.RUnlock()

	st := State{Pending: m.pending, Err: m.lastErr}
	if m.user != nil {
		cp := *m.user
		st.User = &cp
	}
	return st
}

// CurrentUser returns a copy of the signed-in user, or nil while anonymous.
func (m *Manager) CurrentUser() *identity.User {
	return m.Snapshot().User
}

// Pending reports whether an operation is in flight.
func (m *Manager) Pending() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pending
}

// LastError returns the error kind of the most recent failure, or nil.
func (m *Manager) LastError() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastErr
}

// establish persists the record first and only then exposes the user, so a
// persistence failure never leaves a half-authenticated state.
func (m *Manager) establish(ctx context.Context, u *identity.User) bool {
	raw, err := m.codec.Encode(u)
	if err == nil {
		err = m.store.Save(ctx, raw)
	}
	if err != nil {
		m.fail(ctx, ErrInternal, "failed to persist session record", err)
		return false
	}

	m.mu.Lock()
	m.user = u
	m.lastErr = nil
	m.mu.Unlock()

	m.log.Info(ctx, "session established", "user_id", u.ID)
	return true
}

// wait simulates the network round-trip, honoring cancellation.
func (m *Manager) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Manager) begin() {
	m.mu.Lock()
	m.pending = true
	m.lastErr = nil
	m.mu.Unlock()
	m.notify()
}

func (m *Manager) finish() {
	m.mu.Lock()
	m.pending = false
	m.mu.Unlock()
	m.notify()
}

func (m *Manager) fail(ctx context.Context, kind error, msg string, cause error) {
	m.log.Warn(ctx, msg, "error", cause)
	m.mu.Lock()
	m.lastErr = kind
	m.mu.Unlock()
}

// reject records a busy rejection without touching the in-flight operation.
func (m *Manager) reject() {
	m.mu.Lock()
	m.lastErr = ErrSessionBusy
	m.mu.Unlock()
	m.notify()
}

func (m *Manager) ensureRestored() {
	m.mu.RLock()
	ok := m.restored
	m.mu.RUnlock()
	if !ok {
		panic("session: manager used before Restore")
	}
}

func (m *Manager) notify() {
	if m.observer == nil {
		return
	}
	m.observer(m.Snapshot())
}
