package mail

import (
	"context"
	"errors"
	"testing"

	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/notify"
)

func TestSMTPConfig_Enabled(t *testing.T) {
	if (SMTPConfig{}).Enabled() {
		t.Error("expected empty config to be disabled")
	}
	if (SMTPConfig{Host: "smtp.example.com"}).Enabled() {
		t.Error("expected config without From to be disabled")
	}
	if !(SMTPConfig{Host: "smtp.example.com", From: "site@example.com"}).Enabled() {
		t.Error("expected config with host and from to be enabled")
	}
}

func TestSMTPMailer_BuildHeaders(t *testing.T) {
	m := NewSMTPMailer(SMTPConfig{Host: "smtp.example.com", Port: 587, From: "site@example.com"})

	gm, err := m.build(notify.Message{
		To:      []string{"team@example.com", "owner@example.com"},
		ReplyTo: "alice@example.com",
		Subject: "[Website] Hello",
		Body:    "body",
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	if got := gm.GetHeader("From"); len(got) != 1 || got[0] != "site@example.com" {
		t.Errorf("unexpected From %v", got)
	}
	if got := gm.GetHeader("To"); len(got) != 2 {
		t.Errorf("expected 2 recipients, got %v", got)
	}
	if got := gm.GetHeader("Reply-To"); len(got) != 1 || got[0] != "alice@example.com" {
		t.Errorf("unexpected Reply-To %v", got)
	}
	if got := gm.GetHeader("Subject"); len(got) != 1 || got[0] != "[Website] Hello" {
		t.Errorf("unexpected Subject %v", got)
	}
}

func TestSMTPMailer_NoRecipients(t *testing.T) {
	m := NewSMTPMailer(SMTPConfig{Host: "smtp.example.com", From: "site@example.com"})
	if err := m.Send(context.Background(), notify.Message{Subject: "x"}); err == nil {
		t.Error("expected error for message without recipients")
	}
}

func TestSMTPMailer_CanceledContext(t *testing.T) {
	m := NewSMTPMailer(SMTPConfig{Host: "smtp.example.com", From: "site@example.com"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := m.Send(ctx, notify.Message{To: []string{"team@example.com"}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
