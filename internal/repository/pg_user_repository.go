package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/model"
)

// PgUserRepository is the PostgreSQL implementation of UserRepository.
type PgUserRepository struct {
	pool *pgxpool.Pool
}

// NewPgUserRepository creates a PgUserRepository.
func NewPgUserRepository(pool *pgxpool.Pool) *PgUserRepository {
	return &PgUserRepository{pool: pool}
}

var _ UserRepository = (*PgUserRepository)(nil)

// Ping checks the database connection (DB interface).
func (r *PgUserRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func scanUser(scan func(...any) error) (*model.User, error) {
	var u model.User
	var name, googleID *string
	if err := scan(&u.ID, &u.Email, &name, &googleID, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt); err != nil {
		return nil, notFound(err)
	}
	if name != nil {
		u.Name = *name
	}
	if googleID != nil {
		u.GoogleID = *googleID
	}
	return &u, nil
}

const userSelectCols = `id, email, name, google_id, password_hash, created_at, updated_at`

// FindByID returns the user with the given id.
func (r *PgUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userSelectCols+` FROM users WHERE id = $1`, id)
	return scanUser(row.Scan)
}

// FindByEmail returns the user with the given email, compared case-insensitively.
func (r *PgUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+userSelectCols+` FROM users WHERE lower(email) = lower($1)`, email)
	return scanUser(row.Scan)
}

// Create inserts user and fills ID and timestamps.
func (r *PgUserRepository) Create(ctx context.Context, user *model.User) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO users (email, name, password_hash)
		 VALUES ($1, NULLIF($2, ''), $3)
		 RETURNING id, created_at, updated_at`,
		user.Email, user.Name, user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
}

// UpdatePassword replaces the stored bcrypt hash.
func (r *PgUserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	return affected(r.pool.Exec(ctx,
		`UPDATE users SET password_hash = $2, updated_at = NOW() WHERE id = $1`, id, passwordHash))
}

// SetGoogleID links a Google account to the user.
func (r *PgUserRepository) SetGoogleID(ctx context.Context, id, googleID string) error {
	return affected(r.pool.Exec(ctx,
		`UPDATE users SET google_id = $2, updated_at = NOW() WHERE id = $1`, id, googleID))
}
