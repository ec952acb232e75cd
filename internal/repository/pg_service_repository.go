package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/model"
)

// PgServiceRepository stores the offered services. Listed in insertion order.
type PgServiceRepository struct {
	pool *pgxpool.Pool
}

// NewPgServiceRepository creates a PgServiceRepository.
func NewPgServiceRepository(pool *pgxpool.Pool) *PgServiceRepository {
	return &PgServiceRepository{pool: pool}
}

var _ ContentRepository[model.Service] = (*PgServiceRepository)(nil)

func (r *PgServiceRepository) List(ctx context.Context) ([]*model.Service, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, slug, description, icon, created_at, updated_at
		 FROM services ORDER BY seq ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := []*model.Service{}
	for rows.Next() {
		var s model.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Slug, &s.Description, &s.Icon, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		services = append(services, &s)
	}
	return services, rows.Err()
}

func (r *PgServiceRepository) Create(ctx context.Context, s *model.Service) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO services (name, slug, description, icon)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		s.Name, s.Slug, s.Description, s.Icon,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *PgServiceRepository) Update(ctx context.Context, id string, s *model.Service) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE services SET name = $2, slug = $3, description = $4, icon = $5, updated_at = NOW()
		 WHERE id = $1
		 RETURNING id, created_at, updated_at`,
		id, s.Name, s.Slug, s.Description, s.Icon,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	return notFound(err)
}

func (r *PgServiceRepository) Delete(ctx context.Context, id string) error {
	return affected(r.pool.Exec(ctx, `DELETE FROM services WHERE id = $1`, id))
}
