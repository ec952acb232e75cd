package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/model"
	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/repository"
)

// SettingsService reads and replaces the site settings document.
type SettingsService interface {
	// Get returns the stored document, or an empty one if none was saved.
	Get(ctx context.Context) (model.SiteSettings, error)
	// Update sanitizes raw, stores it in place of the previous document and
	// returns what was stored. Fields missing from raw are not kept.
	Update(ctx context.Context, raw map[string]any) (model.SiteSettings, error)
}

type settingsServiceImpl struct {
	repo repository.SettingsRepository
}

// NewSettingsService creates a SettingsService backed by repo.
func NewSettingsService(repo repository.SettingsRepository) SettingsService {
	return &settingsServiceImpl{repo: repo}
}

func (s *settingsServiceImpl) Get(ctx context.Context) (model.SiteSettings, error) {
	settings, err := s.repo.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return model.SiteSettings{}, nil
	}
	if err != nil {
		return model.SiteSettings{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return settings, nil
}

func (s *settingsServiceImpl) Update(ctx context.Context, raw map[string]any) (model.SiteSettings, error) {
	settings := SanitizeSettings(raw)
	if err := s.repo.Put(ctx, settings); err != nil {
		slog.Error("store site settings failed", "error", err)
		return model.SiteSettings{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	slog.Info("site settings updated", "platforms", len(settings.Platforms))
	return settings, nil
}
