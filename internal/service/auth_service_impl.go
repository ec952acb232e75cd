package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/model"
	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/repository"
)

// ErrWeakPassword is returned for passwords shorter than MinPasswordLength.
var ErrWeakPassword = errors.New("password too short")

// AuthServiceImpl implements AuthService with bcrypt password hashes.
type AuthServiceImpl struct {
	userRepo repository.UserRepository
}

// NewAuthService creates an AuthServiceImpl.
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &AuthServiceImpl{userRepo: userRepo}
}

// HashPassword returns the bcrypt hash of password.
func HashPassword(password string) (string, error) {
	if len(password) < MinPasswordLength {
		return "", ErrWeakPassword
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.TrimSpace(email)
	u, err := s.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		slog.Info("login failed: unknown email")
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if u.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		slog.Info("login failed: wrong password", "user_id", u.ID)
		return nil, ErrInvalidCredentials
	}
	slog.Info("admin logged in", "user_id", u.ID)
	return u, nil
}

func (s *AuthServiceImpl) LoginWithGoogle(ctx context.Context, info *GoogleUserInfo) (*model.User, error) {
	if info == nil || info.Email == "" {
		return nil, ErrInvalidCredentials
	}
	u, err := s.userRepo.FindByEmail(ctx, info.Email)
	if errors.Is(err, repository.ErrNotFound) {
		slog.Warn("google login rejected: not an admin", "email", info.Email)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	if u.GoogleID == "" && info.Sub != "" {
		if err := s.userRepo.SetGoogleID(ctx, u.ID, info.Sub); err != nil {
			slog.Error("link google account failed", "error", err, "user_id", u.ID)
		} else {
			u.GoogleID = info.Sub
		}
	} else if u.GoogleID != info.Sub {
		slog.Warn("google login rejected: account mismatch", "user_id", u.ID)
		return nil, ErrInvalidCredentials
	}
	slog.Info("admin logged in", "user_id", u.ID, "provider", "google")
	return u, nil
}

func (s *AuthServiceImpl) ChangePassword(ctx context.Context, id, password string) error {
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	return s.userRepo.UpdatePassword(ctx, id, hash)
}
