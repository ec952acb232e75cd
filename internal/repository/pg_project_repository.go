package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/model"
)

// PgProjectRepository is the PostgreSQL implementation of ContentRepository[model.Project].
type PgProjectRepository struct {
	pool *pgxpool.Pool
}

// NewPgProjectRepository creates a PgProjectRepository.
func NewPgProjectRepository(pool *pgxpool.Pool) *PgProjectRepository {
	return &PgProjectRepository{pool: pool}
}

var _ ContentRepository[model.Project] = (*PgProjectRepository)(nil)

// List returns projects, newest first.
func (r *PgProjectRepository) List(ctx context.Context) ([]*model.Project, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, slug, description, image, link, github, created_at, updated_at
		 FROM projects ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []*model.Project{}
	for rows.Next() {
		var p model.Project
		if err := rows.Scan(&p.ID, &p.Title, &p.Slug, &p.Description, &p.Image, &p.Link, &p.GitHub, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		projects = append(projects, &p)
	}
	return projects, rows.Err()
}

// Create inserts p and fills ID and timestamps.
func (r *PgProjectRepository) Create(ctx context.Context, p *model.Project) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO projects (title, slug, description, image, link, github)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		p.Title, p.Slug, p.Description, p.Image, p.Link, p.GitHub,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

// Update overwrites the project with the given id.
func (r *PgProjectRepository) Update(ctx context.Context, id string, p *model.Project) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE projects SET title = $2, slug = $3, description = $4, image = $5, link = $6, github = $7, updated_at = NOW()
		 WHERE id = $1
		 RETURNING id, created_at, updated_at`,
		id, p.Title, p.Slug, p.Description, p.Image, p.Link, p.GitHub,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	return notFound(err)
}

// Delete removes the project with the given id.
func (r *PgProjectRepository) Delete(ctx context.Context, id string) error {
	return affected(r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id))
}
