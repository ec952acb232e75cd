package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/model"
)

// PgTeamMemberRepository stores team members. Listed in insertion order.
type PgTeamMemberRepository struct {
	pool *pgxpool.Pool
}

// NewPgTeamMemberRepository creates a PgTeamMemberRepository.
func NewPgTeamMemberRepository(pool *pgxpool.Pool) *PgTeamMemberRepository {
	return &PgTeamMemberRepository{pool: pool}
}

var _ ContentRepository[model.TeamMember] = (*PgTeamMemberRepository)(nil)

func (r *PgTeamMemberRepository) List(ctx context.Context) ([]*model.TeamMember, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, role, bio, photo, linkedin, website, github, created_at, updated_at
		 FROM team_members ORDER BY seq ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []*model.TeamMember{}
	for rows.Next() {
		var m model.TeamMember
		if err := rows.Scan(&m.ID, &m.Name, &m.Role, &m.Bio, &m.Photo, &m.LinkedIn, &m.Website, &m.GitHub, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		members = append(members, &m)
	}
	return members, rows.Err()
}

func (r *PgTeamMemberRepository) Create(ctx context.Context, m *model.TeamMember) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO team_members (name, role, bio, photo, linkedin, website, github)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id, created_at, updated_at`,
		m.Name, m.Role, m.Bio, m.Photo, m.LinkedIn, m.Website, m.GitHub,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
}

func (r *PgTeamMemberRepository) Update(ctx context.Context, id string, m *model.TeamMember) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE team_members SET name = $2, role = $3, bio = $4, photo = $5, linkedin = $6,
		   website = $7, github = $8, updated_at = NOW()
		 WHERE id = $1
		 RETURNING id, created_at, updated_at`,
		id, m.Name, m.Role, m.Bio, m.Photo, m.LinkedIn, m.Website, m.GitHub,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	return notFound(err)
}

func (r *PgTeamMemberRepository) Delete(ctx context.Context, id string) error {
	return affected(r.pool.Exec(ctx, `DELETE FROM team_members WHERE id = $1`, id))
}
