package identity

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/vitality-app/vitality/internal/dbx"
	"github.com/vitality-app/vitality/internal/identity/migrations"
)

// PostgresRepository is the credential directory backed by a Postgres
// identities table. It is the production-shaped substitute for the seeded
// in-memory directory and should be paired with a hashing Verifier.
type PostgresRepository struct {
	db       dbx.DBTX
	verifier Verifier
}

func NewPostgresRepository(db dbx.DBTX, v Verifier) *PostgresRepository {
	return &PostgresRepository{db: db, verifier: v}
}

// OpenPostgres connects to the directory database and applies the embedded
// migrations.
func OpenPostgres(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return nil, fmt.Errorf("failed to set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db, "."); err != nil {
		return nil, fmt.Errorf("directory migrations failed: %w", err)
	}

	return db, nil
}

func (r *PostgresRepository) FindByCredentials(ctx context.Context, email, secret string) (*Identity, error) {
	query :=
		`SELECT id, name, email, secret, avatar_ref FROM identities
		 WHERE lower(email) = lower($1)
		 `

	id := &Identity{}
	err := r.db.QueryRowContext(ctx, query, email).
		Scan(&id.ID, &id.Name, &id.Email, &id.Secret, &id.AvatarRef)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	if !r.verifier.Verify(id.Secret, secret) {
		return nil, ErrNotFound
	}

	return id, nil
}

func (r *PostgresRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query :=
		`SELECT EXISTS (SELECT 1 FROM identities WHERE lower(email) = lower($1))
		 `

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return exists, nil
}

func (r *PostgresRepository) Register(ctx context.Context, id *Identity) (*Identity, error) {
	exists, err := r.ExistsByEmail(ctx, id.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailTaken
	}

	stored := *id
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	if stored.AvatarRef == "" {
		stored.AvatarRef = DefaultAvatarRef
	}

	hashed, err := r.verifier.Hash(stored.Secret)
	if err != nil {
		return nil, err
	}
	stored.Secret = hashed

	query :=
		`INSERT INTO identities (id, name, email, secret, avatar_ref)
         VALUES ($1, $2, $3, $4, $5)
		 `

	if _, err := r.db.ExecContext(ctx, query,
		stored.ID, stored.Name, stored.Email, stored.Secret, stored.AvatarRef); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return &stored, nil
}
