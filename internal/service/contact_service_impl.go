package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/metrics"
	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/model"
	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/notify"
	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/ratelimit"
	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/repository"
)

// Limiter decides whether a client key may submit now.
type Limiter interface {
	Allow(key string) ratelimit.Decision
}

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	limiter    Limiter
	repo       repository.ContactRepository
	dispatcher notify.Dispatcher
	metrics    *metrics.Metrics
	now        func() time.Time
}

// ContactOption configures the contact service.
type ContactOption func(*contactServiceImpl)

// WithDispatcher enables notifications for stored submissions.
func WithDispatcher(d notify.Dispatcher) ContactOption {
	return func(s *contactServiceImpl) { s.dispatcher = d }
}

// WithContactMetrics counts submission outcomes in m.
func WithContactMetrics(m *metrics.Metrics) ContactOption {
	return func(s *contactServiceImpl) { s.metrics = m }
}

// WithContactClock replaces time.Now when computing retry hints.
func WithContactClock(now func() time.Time) ContactOption {
	return func(s *contactServiceImpl) { s.now = now }
}

// NewContactService creates a ContactService. Without WithDispatcher no
// notifications are sent.
func NewContactService(limiter Limiter, repo repository.ContactRepository, opts ...ContactOption) ContactService {
	s := &contactServiceImpl{
		limiter: limiter,
		repo:    repo,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *contactServiceImpl) Submit(ctx context.Context, clientKey string, in model.ContactInput) (*model.Contact, error) {
	d := s.limiter.Allow(clientKey)
	if !d.Allowed {
		s.metrics.ObserveContact(ReasonRateLimited)
		retry := int(math.Ceil(d.RetryAfter(s.now()).Seconds()))
		if retry < 1 {
			retry = 1
		}
		slog.Warn("contact submission rate limited", "client", clientKey, "count", d.Count)
		return nil, &RateLimitError{RetryAfterSeconds: retry}
	}

	c, err := ValidateSubmission(in)
	if err != nil {
		var inv *InvalidSubmissionError
		if errors.As(err, &inv) {
			s.metrics.ObserveContact(inv.Reason)
			slog.Info("contact submission rejected", "client", clientKey, "reason", inv.Reason)
		}
		return nil, err
	}

	if err := s.repo.Create(ctx, c); err != nil {
		s.metrics.ObserveContact("storage_error")
		slog.Error("store contact submission failed", "error", err, "client", clientKey)
		return nil, fmt.Errorf("%w: %v", ErrStorage, err)
	}
	s.metrics.ObserveContact("accepted")
	slog.Info("contact submission stored", "contact_id", c.ID, "client", clientKey)

	if s.dispatcher != nil {
		s.dispatcher.Dispatch(notify.Job{Contact: *c, ClientAddr: clientKey})
	}
	return c, nil
}

func (s *contactServiceImpl) List(ctx context.Context) ([]*model.Contact, error) {
	return s.repo.List(ctx)
}

func (s *contactServiceImpl) SetHandled(ctx context.Context, id string, handled bool) error {
	return s.repo.SetHandled(ctx, id, handled)
}
