package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/model"
	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/repository"
	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/pkg/auth"
)

// ErrSessionExpired is returned for a session past its expiry.
var ErrSessionExpired = errors.New("session expired")

// SessionService manages DB-backed admin sessions.
// Implements auth.SessionValidator.
type SessionService struct {
	repo repository.SessionRepository
	now  func() time.Time
}

var _ auth.SessionValidator = (*SessionService)(nil)

// NewSessionService creates a SessionService.
func NewSessionService(repo repository.SessionRepository) *SessionService {
	return &SessionService{repo: repo, now: time.Now}
}

// CreateSession generates a new opaque token, stores it and returns the session.
func (s *SessionService) CreateSession(ctx context.Context, userID string) (*model.Session, error) {
	token, err := auth.GenerateSessionToken()
	if err != nil {
		slog.Error("generate session token failed", "error", err)
		return nil, err
	}
	now := s.now()
	session := &model.Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(auth.SessionDuration),
	}
	if err := s.repo.Create(ctx, session); err != nil {
		slog.Error("store session failed", "error", err, "user_id", userID)
		return nil, err
	}
	slog.Debug("session created", "user_id", userID, "expires_at", session.ExpiresAt)
	return session, nil
}

// ValidateSession returns the user ID for token. Expired sessions are deleted.
func (s *SessionService) ValidateSession(ctx context.Context, token string) (string, error) {
	session, err := s.repo.FindByToken(ctx, token)
	if err != nil {
		slog.Debug("session lookup failed", "error", err)
		return "", auth.ErrUnauthorized
	}
	if s.now().After(session.ExpiresAt) {
		_ = s.repo.DeleteByToken(ctx, token)
		return "", ErrSessionExpired
	}
	return session.UserID, nil
}

// DeleteSession removes a session (logout).
func (s *SessionService) DeleteSession(ctx context.Context, token string) error {
	return s.repo.DeleteByToken(ctx, token)
}

// DeleteAllSessions removes all sessions of a user, e.g. after a password reset.
func (s *SessionService) DeleteAllSessions(ctx context.Context, userID string) error {
	return s.repo.DeleteByUserID(ctx, userID)
}

// PurgeExpired deletes expired sessions.
func (s *SessionService) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteExpired(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		slog.Info("expired sessions purged", "count", n)
	}
	return n, nil
}
