package pkg

import (
	"context"
	"fmt"
	"strings"
	"time"

	gomail "github.com/wneessen/go-mail"
)

// SmtpSettings are the credentials of one user's outgoing mail server.
type SmtpSettings struct {
	Host     string
	Port     int
	Secure   bool
	Username string
	Password string
	FromName string
}

type MailMessage struct {
	To      string
	Subject string
	HTML    string
}

// Mailer sends outreach emails through a user's SMTP server.
type Mailer interface {
	// Send delivers msg and returns the Message-ID it was sent with.
	Send(ctx context.Context, settings SmtpSettings, msg MailMessage) (string, error)
	// Verify dials and authenticates without sending anything.
	Verify(ctx context.Context, settings SmtpSettings) error
}

type SMTPMailer struct{}

func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{}
}

func (s *SMTPMailer) client(settings SmtpSettings) (*gomail.Client, error) {
	opts := []gomail.Option{
		gomail.WithPort(settings.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(settings.Username),
		gomail.WithPassword(settings.Password),
	}
	if settings.Secure {
		opts = append(opts, gomail.WithSSL())
	} else {
		opts = append(opts, gomail.WithTLSPolicy(gomail.TLSOpportunistic))
	}

	client, err := gomail.NewClient(settings.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}
	return client, nil
}

func (s *SMTPMailer) Send(ctx context.Context, settings SmtpSettings, msg MailMessage) (string, error) {
	m := gomail.NewMsg()
	if settings.FromName != "" {
		if err := m.FromFormat(settings.FromName, settings.Username); err != nil {
			return "", fmt.Errorf("failed to set from: %w", err)
		}
	} else if err := m.From(settings.Username); err != nil {
		return "", fmt.Errorf("failed to set from: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return "", fmt.Errorf("failed to set to: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetMessageID()
	m.SetDate()
	m.SetBodyString(gomail.TypeTextHTML, msg.HTML)

	client, err := s.client(settings)
	if err != nil {
		return "", err
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return "", fmt.Errorf("failed to send email: %w", err)
	}

	var messageID string
	if ids := m.GetGenHeader(gomail.HeaderMessageID); len(ids) > 0 {
		messageID = strings.Trim(ids[0], "<>")
	}
	return messageID, nil
}

func (s *SMTPMailer) Verify(ctx context.Context, settings SmtpSettings) error {
	client, err := s.client(settings)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("SMTP connection failed: %w", err)
	}
	_ = client.Close()
	return nil
}
