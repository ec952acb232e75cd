package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/model"
)

// PgReviewRepository is the PostgreSQL implementation of ContentRepository[model.Review].
type PgReviewRepository struct {
	pool *pgxpool.Pool
}

// NewPgReviewRepository creates a PgReviewRepository.
func NewPgReviewRepository(pool *pgxpool.Pool) *PgReviewRepository {
	return &PgReviewRepository{pool: pool}
}

var _ ContentRepository[model.Review] = (*PgReviewRepository)(nil)

// List returns reviews, newest first.
func (r *PgReviewRepository) List(ctx context.Context) ([]*model.Review, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, author, role, text, rating, created_at, updated_at
		 FROM reviews ORDER BY created_at DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []*model.Review{}
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(&rv.ID, &rv.Author, &rv.Role, &rv.Text, &rv.Rating, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, &rv)
	}
	return reviews, rows.Err()
}

func (r *PgReviewRepository) Create(ctx context.Context, rv *model.Review) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO reviews (author, role, text, rating)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at, updated_at`,
		rv.Author, rv.Role, rv.Text, rv.Rating,
	).Scan(&rv.ID, &rv.CreatedAt, &rv.UpdatedAt)
}

// Update replaces a review. The stored rating is kept when the request
// body had no rating key.
func (r *PgReviewRepository) Update(ctx context.Context, id string, rv *model.Review) error {
	err := r.pool.QueryRow(ctx,
		`UPDATE reviews
		 SET author = $2, role = $3, text = $4,
		     rating = CASE WHEN $6::boolean THEN $5::integer ELSE rating END,
		     updated_at = NOW()
		 WHERE id = $1
		 RETURNING id, rating, created_at, updated_at`,
		id, rv.Author, rv.Role, rv.Text, rv.Rating, rv.RatingSet(),
	).Scan(&rv.ID, &rv.Rating, &rv.CreatedAt, &rv.UpdatedAt)
	return notFound(err)
}

func (r *PgReviewRepository) Delete(ctx context.Context, id string) error {
	return affected(r.pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id))
}
