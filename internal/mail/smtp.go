// Package mail sends notification email over SMTP.
package mail

import (
	"context"
	"errors"

	"gopkg.in/gomail.v2"

	"github.com/Ndimih-Boclair-Nghochu/NBN-TECH-portfolio-website/internal/notify"
)

// SMTPConfig holds the SMTP server settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Enabled reports whether enough settings are present to send mail.
func (c SMTPConfig) Enabled() bool {
	return c.Host != "" && c.From != ""
}

// SMTPMailer implements notify.Mailer with gomail.
type SMTPMailer struct {
	from   string
	dialer *gomail.Dialer
}

var _ notify.Mailer = (*SMTPMailer)(nil)

// NewSMTPMailer creates a mailer for cfg.
func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{
		from:   cfg.From,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

// Send dials the server and delivers msg. The dialer's own timeouts apply.
func (m *SMTPMailer) Send(ctx context.Context, msg notify.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	gm, err := m.build(msg)
	if err != nil {
		return err
	}
	return m.dialer.DialAndSend(gm)
}

func (m *SMTPMailer) build(msg notify.Message) (*gomail.Message, error) {
	if len(msg.To) == 0 {
		return nil, errors.New("mail: no recipients")
	}
	gm := gomail.NewMessage()
	gm.SetHeader("From", m.from)
	gm.SetHeader("To", msg.To...)
	if msg.ReplyTo != "" {
		gm.SetHeader("Reply-To", msg.ReplyTo)
	}
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/plain", msg.Body)
	return gm, nil
}
