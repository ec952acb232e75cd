package service

import (
	"context"
	"errors"
	"sync"

	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/model"
	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/notify"
	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/ratelimit"
	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/repository"
)

// ---------------------------------------------------------------------------
// Func-field mocks shared by the service tests
// ---------------------------------------------------------------------------

type mockContactRepository struct {
	createFunc     func(ctx context.Context, c *model.Contact) error
	listFunc       func(ctx context.Context) ([]*model.Contact, error)
	setHandledFunc func(ctx context.Context, id string, handled bool) error
}

func (m *mockContactRepository) Create(ctx context.Context, c *model.Contact) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, c)
	}
	c.ID = "contact-1"
	return nil
}

func (m *mockContactRepository) List(ctx context.Context) ([]*model.Contact, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil, nil
}

func (m *mockContactRepository) SetHandled(ctx context.Context, id string, handled bool) error {
	if m.setHandledFunc != nil {
		return m.setHandledFunc(ctx, id, handled)
	}
	return nil
}

type mockSettingsRepository struct {
	getFunc func(ctx context.Context) (model.SiteSettings, error)
	putFunc func(ctx context.Context, s model.SiteSettings) error
}

func (m *mockSettingsRepository) Get(ctx context.Context) (model.SiteSettings, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx)
	}
	return model.SiteSettings{}, repository.ErrNotFound
}

func (m *mockSettingsRepository) Put(ctx context.Context, s model.SiteSettings) error {
	if m.putFunc != nil {
		return m.putFunc(ctx, s)
	}
	return nil
}

type mockUserRepository struct {
	findByIDFunc       func(ctx context.Context, id string) (*model.User, error)
	findByEmailFunc    func(ctx context.Context, email string) (*model.User, error)
	createFunc         func(ctx context.Context, u *model.User) error
	updatePasswordFunc func(ctx context.Context, id, hash string) error
	setGoogleIDFunc    func(ctx context.Context, id, googleID string) error
}

func (m *mockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.findByEmailFunc != nil {
		return m.findByEmailFunc(ctx, email)
	}
	return nil, repository.ErrNotFound
}

func (m *mockUserRepository) Create(ctx context.Context, u *model.User) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, id, hash string) error {
	if m.updatePasswordFunc != nil {
		return m.updatePasswordFunc(ctx, id, hash)
	}
	return nil
}

func (m *mockUserRepository) SetGoogleID(ctx context.Context, id, googleID string) error {
	if m.setGoogleIDFunc != nil {
		return m.setGoogleIDFunc(ctx, id, googleID)
	}
	return nil
}

type mockSessionRepository struct {
	createFunc         func(ctx context.Context, s *model.Session) error
	findByTokenFunc    func(ctx context.Context, token string) (*model.Session, error)
	deleteByTokenFunc  func(ctx context.Context, token string) error
	deleteByUserIDFunc func(ctx context.Context, userID string) error
	deleteExpiredFunc  func(ctx context.Context) (int64, error)
}

func (m *mockSessionRepository) Create(ctx context.Context, s *model.Session) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, s)
	}
	return nil
}

func (m *mockSessionRepository) FindByToken(ctx context.Context, token string) (*model.Session, error) {
	if m.findByTokenFunc != nil {
		return m.findByTokenFunc(ctx, token)
	}
	return nil, errors.New("not found")
}

func (m *mockSessionRepository) DeleteByToken(ctx context.Context, token string) error {
	if m.deleteByTokenFunc != nil {
		return m.deleteByTokenFunc(ctx, token)
	}
	return nil
}

func (m *mockSessionRepository) DeleteByUserID(ctx context.Context, userID string) error {
	if m.deleteByUserIDFunc != nil {
		return m.deleteByUserIDFunc(ctx, userID)
	}
	return nil
}

func (m *mockSessionRepository) DeleteExpired(ctx context.Context) (int64, error) {
	if m.deleteExpiredFunc != nil {
		return m.deleteExpiredFunc(ctx)
	}
	return 0, nil
}

// recordingDispatcher keeps every dispatched job.
type recordingDispatcher struct {
	mu     sync.Mutex
	jobs   []notify.Job
	accept bool
}

func (d *recordingDispatcher) Dispatch(job notify.Job) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.jobs = append(d.jobs, job)
	return d.accept
}

func (d *recordingDispatcher) Jobs() []notify.Job {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]notify.Job(nil), d.jobs...)
}

// stubLimiter returns the same decision for every key.
type stubLimiter struct {
	decision ratelimit.Decision
	keys     []string
}

func (l *stubLimiter) Allow(key string) ratelimit.Decision {
	l.keys = append(l.keys, key)
	return l.decision
}
