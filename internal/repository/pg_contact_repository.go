package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/model"
)

// ContactRepository defines the persistence interface for contact messages.
// It is defined here (in repository) to avoid an import cycle with service.
type ContactRepository interface {
	Create(ctx context.Context, c *model.Contact) error
	List(ctx context.Context) ([]*model.Contact, error)
	SetHandled(ctx context.Context, id string, handled bool) error
}

// PgContactRepository is the PostgreSQL implementation of ContactRepository.
type PgContactRepository struct {
	pool *pgxpool.Pool
}

// NewPgContactRepository creates a PgContactRepository backed by the given pool.
func NewPgContactRepository(pool *pgxpool.Pool) *PgContactRepository {
	return &PgContactRepository{pool: pool}
}

// Ensure PgContactRepository implements ContactRepository at compile time.
var _ ContactRepository = (*PgContactRepository)(nil)

// Create inserts a new contacts row and populates c.ID and timestamps
// from the database RETURNING clause.
func (r *PgContactRepository) Create(ctx context.Context, c *model.Contact) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO contacts (name, email, subject, message)
		 VALUES (NULLIF($1, ''), $2, NULLIF($3, ''), $4)
		 RETURNING id, handled, created_at, updated_at`,
		c.Name, c.Email, c.Subject, c.Message,
	).Scan(&c.ID, &c.Handled, &c.CreatedAt, &c.UpdatedAt)
}

// List returns all contact messages, newest first.
func (r *PgContactRepository) List(ctx context.Context) ([]*model.Contact, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, COALESCE(name, ''), email, COALESCE(subject, ''), message, handled, created_at, updated_at
		 FROM contacts
		 ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var contacts []*model.Contact
	for rows.Next() {
		var c model.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.Handled, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, err
		}
		contacts = append(contacts, &c)
	}
	return contacts, rows.Err()
}

// SetHandled flags a message as handled (or not).
func (r *PgContactRepository) SetHandled(ctx context.Context, id string, handled bool) error {
	return affected(r.pool.Exec(ctx,
		`UPDATE contacts SET handled = $2, updated_at = NOW() WHERE id = $1`, id, handled))
}
