package repository

import (
	"context"

	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/model"
)

// DB checks that the database is reachable.
type DB interface {
	Ping(ctx context.Context) error
}

// UserRepository persists admin accounts.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	SetGoogleID(ctx context.Context, id, googleID string) error
}

// ContentRepository is the CRUD contract shared by the site content tables.
// Update and Delete return ErrNotFound for an unknown id.
type ContentRepository[T any] interface {
	List(ctx context.Context) ([]*T, error)
	Create(ctx context.Context, item *T) error
	Update(ctx context.Context, id string, item *T) error
	Delete(ctx context.Context, id string) error
}
