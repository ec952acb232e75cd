package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/model"
)

// PgSkillRepository stores skill bars, listed by sort_order.
type PgSkillRepository struct {
	pool *pgxpool.Pool
}

// NewPgSkillRepository creates a PgSkillRepository.
func NewPgSkillRepository(pool *pgxpool.Pool) *PgSkillRepository {
	return &PgSkillRepository{pool: pool}
}

var _ ContentRepository[model.Skill] = (*PgSkillRepository)(nil)

func (r *PgSkillRepository) List(ctx context.Context) ([]*model.Skill, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, level, sort_order, created_at, updated_at
		 FROM skills ORDER BY sort_order ASC, created_at ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	skills := []*model.Skill{}
	for rows.Next() {
		var s model.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Level, &s.Order, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		skills = append(skills, &s)
	}
	return skills, rows.Err()
}

func (r *PgSkillRepository) Create(ctx context.Context, s *model.Skill) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO skills (name, level, sort_order)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		s.Name, s.Level, s.Order,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
}

func (r *PgSkillRepository) Update(ctx context.Context, id string, s *model.Skill) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE skills SET name = $2, level = $3, sort_order = $4, updated_at = NOW()
		 WHERE id = $1
		 RETURNING id, created_at, updated_at`,
		id, s.Name, s.Level, s.Order,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	return notFound(err)
}

func (r *PgSkillRepository) Delete(ctx context.Context, id string) error {
	return affected(r.pool.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id))
}
