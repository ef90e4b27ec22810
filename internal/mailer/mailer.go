package mailer

import (
	"context"
	"fmt"
	"time"

	"legal-workspace-backend/internal/logger"

	"github.com/wneessen/go-mail"
)

// Config holds the configuration for the mailer
type Config struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromEmail    string
	FromName     string
}

// SMTPMailer delivers invite and password reset links over SMTP
type SMTPMailer struct {
	config *Config
}

// NewSMTPMailer creates a new SMTP mailer
func NewSMTPMailer(config *Config) *SMTPMailer {
	return &SMTPMailer{config: config}
}

// SendInviteEmail sends an invitation link to join a workspace
func (m *SMTPMailer) SendInviteEmail(ctx context.Context, to, link string) error {
	msg, err := m.newMessage(to, inviteSubject, inviteHTML(link), invitePlain(link))
	if err != nil {
		return err
	}
	if err := m.send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send invitation email: %w", err)
	}
	return nil
}

// SendPasswordResetEmail sends a password reset link
func (m *SMTPMailer) SendPasswordResetEmail(ctx context.Context, to, link string) error {
	msg, err := m.newMessage(to, resetSubject, resetHTML(link), resetPlain(link))
	if err != nil {
		return err
	}
	if err := m.send(ctx, msg); err != nil {
		return fmt.Errorf("failed to send password reset email: %w", err)
	}
	return nil
}

func (m *SMTPMailer) newMessage(to, subject, htmlBody, plainBody string) (*mail.Msg, error) {
	msg := mail.NewMsg(mail.WithNoDefaultUserAgent())

	if err := msg.FromFormat(m.config.FromName, m.config.FromEmail); err != nil {
		return nil, fmt.Errorf("failed to set email from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return nil, fmt.Errorf("failed to set email recipient: %w", err)
	}

	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)
	msg.AddAlternativeString(mail.TypeTextPlain, plainBody)
	return msg, nil
}

func (m *SMTPMailer) send(ctx context.Context, msg *mail.Msg) error {
	client, err := m.createSMTPClient()
	if err != nil {
		return err
	}
	return client.DialAndSendWithContext(ctx, msg)
}

func (m *SMTPMailer) createSMTPClient() (*mail.Client, error) {
	clientOptions := []mail.Option{
		mail.WithPort(m.config.SMTPPort),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(10 * time.Second),
	}

	// Unauthenticated relays are allowed when no credentials are configured
	if m.config.SMTPUsername != "" && m.config.SMTPPassword != "" {
		clientOptions = append(clientOptions,
			mail.WithUsername(m.config.SMTPUsername),
			mail.WithPassword(m.config.SMTPPassword),
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
		)
	}

	client, err := mail.NewClient(m.config.SMTPHost, clientOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	return client, nil
}

// ConsoleMailer logs links instead of sending them. Used in development.
type ConsoleMailer struct{}

// NewConsoleMailer creates a new console mailer
func NewConsoleMailer() *ConsoleMailer {
	return &ConsoleMailer{}
}

// SendInviteEmail logs the invitation link
func (m *ConsoleMailer) SendInviteEmail(ctx context.Context, to, link string) error {
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"to":   to,
		"link": link,
	}).Info("invite email")
	return nil
}

// SendPasswordResetEmail logs the reset link
func (m *ConsoleMailer) SendPasswordResetEmail(ctx context.Context, to, link string) error {
	logger.WithContext(ctx).WithFields(map[string]interface{}{
		"to":   to,
		"link": link,
	}).Info("password reset email")
	return nil
}
