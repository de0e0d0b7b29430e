package notification

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"

	"github.com/AyushiSrivastava11/VRV-Backend/internal/config"
	"gopkg.in/gomail.v2"
)

//go:embed templates/*.html
var templateFS embed.FS

// Mail is an outbound message rendered from a named template.
type Mail struct {
	To       string
	Subject  string
	Template string
	Data     interface{}
}

// Mailer delivers mail out-of-band. Failures are delivery errors, distinct
// from any token error the caller may be handling.
type Mailer interface {
	Send(ctx context.Context, mail Mail) error
}

// SMTPMailer renders HTML templates and sends them through an SMTP relay.
type SMTPMailer struct {
	cfg       *config.SMTPConfig
	templates *template.Template
}

func NewSMTPMailer(cfg *config.SMTPConfig) (*SMTPMailer, error) {
	templates, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse mail templates: %w", err)
	}

	return &SMTPMailer{
		cfg:       cfg,
		templates: templates,
	}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, mail Mail) error {
	var body bytes.Buffer
	if err := m.templates.ExecuteTemplate(&body, mail.Template, mail.Data); err != nil {
		return fmt.Errorf("failed to render mail template %q: %w", mail.Template, err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.cfg.From)
	msg.SetHeader("To", mail.To)
	msg.SetHeader("Subject", mail.Subject)
	msg.SetBody("text/html", body.String())

	dialer := gomail.NewDialer(m.cfg.Host, m.cfg.Port, m.cfg.User, m.cfg.Password)

	done := make(chan error, 1)
	go func() {
		done <- dialer.DialAndSend(msg)
	}()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case err := <-done:
		if err != nil {
			return fmt.Errorf("failed to send mail to %s: %w", mail.To, err)
		}
	}

	return nil
}
