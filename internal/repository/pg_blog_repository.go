package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/model"
)

// PgBlogRepository is the PostgreSQL implementation of ContentRepository[model.Blog].
type PgBlogRepository struct {
	pool *pgxpool.Pool
}

// NewPgBlogRepository creates a PgBlogRepository.
func NewPgBlogRepository(pool *pgxpool.Pool) *PgBlogRepository {
	return &PgBlogRepository{pool: pool}
}

var _ ContentRepository[model.Blog] = (*PgBlogRepository)(nil)

// List returns posts, newest first.
func (r *PgBlogRepository) List(ctx context.Context) ([]*model.Blog, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, slug, excerpt, content, image, external_link, cta_link, cta_text, created_at, updated_at
		 FROM blogs ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blogs := []*model.Blog{}
	for rows.Next() {
		var b model.Blog
		if err := rows.Scan(&b.ID, &b.Title, &b.Slug, &b.Excerpt, &b.Content, &b.Image,
			&b.ExternalLink, &b.CTALink, &b.CTAText, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		blogs = append(blogs, &b)
	}
	return blogs, rows.Err()
}

func (r *PgBlogRepository) Create(ctx context.Context, b *model.Blog) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO blogs (title, slug, excerpt, content, image, external_link, cta_link, cta_text)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING id, created_at, updated_at`,
		b.Title, b.Slug, b.Excerpt, b.Content, b.Image, b.ExternalLink, b.CTALink, b.CTAText,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *PgBlogRepository) Update(ctx context.Context, id string, b *model.Blog) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE blogs SET title = $2, slug = $3, excerpt = $4, content = $5, image = $6,
		   external_link = $7, cta_link = $8, cta_text = $9, updated_at = NOW()
		 WHERE id = $1
		 RETURNING id, created_at, updated_at`,
		id, b.Title, b.Slug, b.Excerpt, b.Content, b.Image, b.ExternalLink, b.CTALink, b.CTAText,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	return notFound(err)
}

func (r *PgBlogRepository) Delete(ctx context.Context, id string) error {
	return affected(r.pool.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id))
}
