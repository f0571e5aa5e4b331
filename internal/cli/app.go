package cli

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/vitality-app/vitality/internal/config"
	"github.com/vitality-app/vitality/internal/identity"
	"github.com/vitality-app/vitality/internal/logging"
	"github.com/vitality-app/vitality/internal/session"
	"github.com/vitality-app/vitality/internal/sessionstore"

	_ "modernc.org/sqlite"
)

// sessionControl is the slice of the session manager the shell needs.
// *session.Manager satisfies it; tests can provide a stub.
type sessionControl interface {
	Restore(ctx context.Context) error
	SignIn(ctx context.Context, email, secret string) bool
	SignUp(ctx context.Context, name, email, secret string) bool
	SignOut(ctx context.Context) bool
	CurrentUser() *identity.User
	LastError() error
}

type App struct {
	config  *config.Config
	session sessionControl
	logger  logging.Logger
	reader  *bufio.Reader
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	db, err := sessionstore.Open(ctx, c.LocalStorePath)
	if err != nil {
		return nil, fmt.Errorf("local store init error: %w", err)
	}
	store := sessionstore.NewSQLite(db)

	dir, err := openDirectory(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("credential directory init error: %w", err)
	}

	opts := []session.Option{
		session.WithLogger(logger),
		session.WithLatency(c.SignInLatency, c.SignOutLatency),
	}
	if c.SigningKey != "" {
		opts = append(opts, session.WithCodec(session.NewSignedRecord([]byte(c.SigningKey))))
	}

	mgr := session.New(dir, store, opts...)

	return &App{
		config:  c,
		session: mgr,
		logger:  logger,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// openDirectory picks the credential directory: the seeded in-memory demo
// directory by default, or Postgres when a DSN is configured. The Postgres
// directory stores bcrypt hashes; the demo one keeps the seed plaintext.
func openDirectory(ctx context.Context, c *config.Config) (identity.Repository, error) {
	if c.DirectoryDSN == "" {
		return identity.NewMemoryRepository(identity.PlainVerifier{}, identity.DemoIdentities()...)
	}

	db, err := identity.OpenPostgres(ctx, c.DirectoryDSN)
	if err != nil {
		return nil, err
	}
	return identity.NewPostgresRepository(db, identity.BcryptVerifier{}), nil
}

func (a *App) Run(ctx context.Context) {
	if err := a.session.Restore(ctx); err != nil {
		a.logger.Warn(ctx, "session restore failed, starting anonymous", "error", err)
	}

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isSignedIn() bool {
	return a.session.CurrentUser() != nil
}

func (a *App) status() string {
	if u := a.session.CurrentUser(); u != nil {
		return fmt.Sprintf("(%s)", u.Email)
	}
	return ""
}
