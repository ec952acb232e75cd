package service

import (
	"regexp"
	"strings"

	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/model"
)

// emailPattern accepts local@domain.tld with no whitespace or extra '@'.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s has the local@domain.tld shape.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidateSubmission checks a contact payload and returns the trimmed record
// to persist. On rejection it returns an *InvalidSubmissionError.
//
// The honeypot is checked first so a bot filling every field learns nothing
// from the other checks.
func ValidateSubmission(in model.ContactInput) (*model.Contact, error) {
	if strings.TrimSpace(in.Website) != "" {
		return nil, &InvalidSubmissionError{Reason: ReasonHoneypot}
	}

	email := strings.TrimSpace(in.Email)
	message := strings.TrimSpace(in.Message)
	if email == "" || message == "" {
		return nil, &InvalidSubmissionError{Reason: ReasonMissingFields}
	}
	if !ValidEmail(email) {
		return nil, &InvalidSubmissionError{Reason: ReasonInvalidEmail}
	}

	return &model.Contact{
		Name:    strings.TrimSpace(in.Name),
		Email:   email,
		Subject: strings.TrimSpace(in.Subject),
		Message: message,
	}, nil
}
