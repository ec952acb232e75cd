package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/model"
)

// siteSettingsKey is the only row of site_settings.
const siteSettingsKey = "site"

// SettingsRepository stores the single site settings document.
type SettingsRepository interface {
	// Get returns ErrNotFound when nothing has been saved yet.
	Get(ctx context.Context) (model.SiteSettings, error)
	// Put replaces the stored document.
	Put(ctx context.Context, s model.SiteSettings) error
}

// PgSettingsRepository keeps the document as JSONB in site_settings.
type PgSettingsRepository struct {
	pool *pgxpool.Pool
}

// NewPgSettingsRepository creates a PgSettingsRepository.
func NewPgSettingsRepository(pool *pgxpool.Pool) *PgSettingsRepository {
	return &PgSettingsRepository{pool: pool}
}

var _ SettingsRepository = (*PgSettingsRepository)(nil)

func (r *PgSettingsRepository) Get(ctx context.Context) (model.SiteSettings, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx,
		`SELECT value FROM site_settings WHERE key = $1`, siteSettingsKey).Scan(&raw)
	if err != nil {
		return model.SiteSettings{}, notFound(err)
	}
	var s model.SiteSettings
	if err := json.Unmarshal(raw, &s); err != nil {
		return model.SiteSettings{}, fmt.Errorf("decode site settings: %w", err)
	}
	return s, nil
}

// Put upserts the document. Concurrent writers race; the last one wins.
func (r *PgSettingsRepository) Put(ctx context.Context, s model.SiteSettings) error {
	raw, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encode site settings: %w", err)
	}
	_, err = r.pool.Exec(ctx,
		`INSERT INTO site_settings (key, value, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()`,
		siteSettingsKey, raw)
	return err
}
