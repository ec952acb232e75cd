package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/metrics"
	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/model"
	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/ratelimit"
)

func validInput() model.ContactInput {
	return model.ContactInput{
		Name:    "  Alice ",
		Email:   " alice@example.com ",
		Subject: "Quote",
		Message: " Hello there ",
	}
}

func TestContactService_Submit_StoresAndDispatches(t *testing.T) {
	var stored *model.Contact
	repo := &mockContactRepository{
		createFunc: func(_ context.Context, c *model.Contact) error {
			c.ID = "abc"
			stored = c
			return nil
		},
	}
	disp := &recordingDispatcher{accept: true}
	limiter := ratelimit.NewFixedWindow(5, time.Minute)
	svc := NewContactService(limiter, repo, WithDispatcher(disp))

	c, err := svc.Submit(context.Background(), "203.0.113.7", validInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID != "abc" {
		t.Errorf("expected id abc, got %q", c.ID)
	}
	if stored == nil || stored.Email != "alice@example.com" || stored.Message != "Hello there" || stored.Name != "Alice" {
		t.Errorf("expected trimmed record to be stored, got %+v", stored)
	}

	jobs := disp.Jobs()
	if len(jobs) != 1 {
		t.Fatalf("expected 1 notification job, got %d", len(jobs))
	}
	if jobs[0].ClientAddr != "203.0.113.7" {
		t.Errorf("expected client address in job, got %q", jobs[0].ClientAddr)
	}
	if jobs[0].Contact.ID != "abc" || jobs[0].Contact.Subject != "Quote" {
		t.Errorf("expected submission fields in job, got %+v", jobs[0].Contact)
	}
}

func TestContactService_Submit_SixthInWindowIsRateLimited(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	limiter := ratelimit.NewFixedWindow(5, 60*time.Second, ratelimit.WithClock(clock))
	repo := &mockContactRepository{}
	svc := NewContactService(limiter, repo, WithContactClock(clock))

	for i := 0; i < 5; i++ {
		if _, err := svc.Submit(context.Background(), "1.2.3.4", validInput()); err != nil {
			t.Fatalf("submission %d: unexpected error %v", i+1, err)
		}
		now = now.Add(time.Second)
	}

	_, err := svc.Submit(context.Background(), "1.2.3.4", validInput())
	if !errors.Is(err, ErrRateLimited) {
		t.Fatalf("expected ErrRateLimited, got %v", err)
	}
	var rl *RateLimitError
	if !errors.As(err, &rl) {
		t.Fatalf("expected *RateLimitError, got %T", err)
	}
	if rl.RetryAfterSeconds != 55 {
		t.Errorf("expected retry after 55s, got %d", rl.RetryAfterSeconds)
	}

	// A different client is unaffected.
	if _, err := svc.Submit(context.Background(), "5.6.7.8", validInput()); err != nil {
		t.Errorf("expected other client to be accepted, got %v", err)
	}
}

func TestContactService_Submit_RateLimitCheckedBeforeValidation(t *testing.T) {
	limiter := &stubLimiter{decision: ratelimit.Decision{Allowed: false, ResetAt: time.Now().Add(30 * time.Second)}}
	svc := NewContactService(limiter, &mockContactRepository{})

	_, err := svc.Submit(context.Background(), "k", model.ContactInput{})
	if !errors.Is(err, ErrRateLimited) {
		t.Errorf("expected ErrRateLimited for invalid payload over the limit, got %v", err)
	}
}

func TestContactService_Submit_HoneypotNeverStored(t *testing.T) {
	created := false
	repo := &mockContactRepository{
		createFunc: func(_ context.Context, _ *model.Contact) error {
			created = true
			return nil
		},
	}
	disp := &recordingDispatcher{accept: true}
	svc := NewContactService(ratelimit.NewFixedWindow(5, time.Minute), repo, WithDispatcher(disp))

	in := validInput()
	in.Website = "http://spam.example"
	_, err := svc.Submit(context.Background(), "k", in)

	var inv *InvalidSubmissionError
	if !errors.As(err, &inv) || inv.Reason != ReasonHoneypot {
		t.Fatalf("expected honeypot rejection, got %v", err)
	}
	if created {
		t.Error("honeypot submission must not be stored")
	}
	if len(disp.Jobs()) != 0 {
		t.Error("honeypot submission must not be notified")
	}
}

func TestContactService_Submit_StorageFailure(t *testing.T) {
	repo := &mockContactRepository{
		createFunc: func(_ context.Context, _ *model.Contact) error {
			return errors.New("connection reset")
		},
	}
	disp := &recordingDispatcher{accept: true}
	svc := NewContactService(ratelimit.NewFixedWindow(5, time.Minute), repo, WithDispatcher(disp))

	_, err := svc.Submit(context.Background(), "k", validInput())
	if !errors.Is(err, ErrStorage) {
		t.Fatalf("expected ErrStorage, got %v", err)
	}
	if len(disp.Jobs()) != 0 {
		t.Error("failed submission must not be notified")
	}
}

func TestContactService_Submit_DroppedNotificationStillSucceeds(t *testing.T) {
	disp := &recordingDispatcher{accept: false}
	svc := NewContactService(ratelimit.NewFixedWindow(5, time.Minute), &mockContactRepository{}, WithDispatcher(disp))

	c, err := svc.Submit(context.Background(), "k", validInput())
	if err != nil {
		t.Fatalf("expected success when notification is dropped, got %v", err)
	}
	if c.ID == "" {
		t.Error("expected stored id")
	}
}

func TestContactService_Submit_NoDispatcher(t *testing.T) {
	svc := NewContactService(ratelimit.NewFixedWindow(5, time.Minute), &mockContactRepository{})
	if _, err := svc.Submit(context.Background(), "k", validInput()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestContactService_Submit_CountsOutcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	svc := NewContactService(ratelimit.NewFixedWindow(5, time.Minute), &mockContactRepository{}, WithContactMetrics(m))

	_, _ = svc.Submit(context.Background(), "k", validInput())
	bad := validInput()
	bad.Email = "not-an-email"
	_, _ = svc.Submit(context.Background(), "k", bad)

	if got := testutil.ToFloat64(m.ContactSubmissions.WithLabelValues("accepted")); got != 1 {
		t.Errorf("expected 1 accepted, got %v", got)
	}
	if got := testutil.ToFloat64(m.ContactSubmissions.WithLabelValues(ReasonInvalidEmail)); got != 1 {
		t.Errorf("expected 1 invalid_email, got %v", got)
	}
}

func TestContactService_SetHandled_PassesThrough(t *testing.T) {
	var gotID string
	var gotHandled bool
	repo := &mockContactRepository{
		setHandledFunc: func(_ context.Context, id string, handled bool) error {
			gotID, gotHandled = id, handled
			return nil
		},
	}
	svc := NewContactService(ratelimit.NewFixedWindow(5, time.Minute), repo)
	if err := svc.SetHandled(context.Background(), "c1", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotID != "c1" || !gotHandled {
		t.Errorf("unexpected args %q %v", gotID, gotHandled)
	}
}
