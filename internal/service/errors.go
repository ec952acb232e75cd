package service

import (
	"errors"
	"fmt"
)

// Rejection reasons returned to contact form callers.
const (
	ReasonRateLimited   = "rate_limited"
	ReasonHoneypot      = "honeypot"
	ReasonMissingFields = "missing_fields"
	ReasonInvalidEmail  = "invalid_email"
)

var (
	// ErrRateLimited is returned when the caller exceeded the submission limit.
	ErrRateLimited = errors.New("rate limited")

	// ErrStorage wraps persistence failures. Callers must not expose the cause.
	ErrStorage = errors.New("storage failure")

	// ErrInvalidCredentials is returned by Login for an unknown email or a
	// wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// InvalidSubmissionError reports why a contact submission was rejected.
type InvalidSubmissionError struct {
	Reason string
}

func (e *InvalidSubmissionError) Error() string {
	return fmt.Sprintf("invalid submission: %s", e.Reason)
}

// RateLimitError carries the retry hint for a rate-limited submission.
// It matches ErrRateLimited with errors.Is.
type RateLimitError struct {
	RetryAfterSeconds int
}

func (e *RateLimitError) Error() string { return ErrRateLimited.Error() }

func (e *RateLimitError) Is(target error) bool { return target == ErrRateLimited }
