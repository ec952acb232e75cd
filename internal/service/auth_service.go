package service

import (
	"context"

	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/model"
)

// GoogleUserInfo is the profile returned by Google OAuth.
type GoogleUserInfo struct {
	Sub   string
	Email string
	Name  string
}

// AuthService authenticates admins.
type AuthService interface {
	// Login checks email and password. Unknown email and wrong password both
	// return ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (*model.User, error)
	// LoginWithGoogle admits a Google account only when its verified email
	// belongs to an existing admin. New accounts are never created here.
	LoginWithGoogle(ctx context.Context, info *GoogleUserInfo) (*model.User, error)
	// ChangePassword replaces the password of user id.
	ChangePassword(ctx context.Context, id, password string) error
}

// MinPasswordLength is the shortest accepted admin password.
const MinPasswordLength = 8
