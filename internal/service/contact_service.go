package service

import (
	"context"

	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/model"
)

// ContactService defines the business logic for contact form submissions.
type ContactService interface {
	// Submit runs a submission from clientKey through the rate limiter and
	// validator, stores it and schedules the notification. Rejections are
	// returned as *RateLimitError or *InvalidSubmissionError; persistence
	// failures wrap ErrStorage.
	Submit(ctx context.Context, clientKey string, in model.ContactInput) (*model.Contact, error)

	// List returns stored submissions, newest first.
	List(ctx context.Context) ([]*model.Contact, error)

	// SetHandled marks a submission as handled or not.
	SetHandled(ctx context.Context, id string, handled bool) error
}
