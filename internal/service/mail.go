package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/resend/resend-go/v2"
)

// ContactNotifier relays a contact-form submission to the site owner.
type ContactNotifier interface {
	SendContactMessage(ctx context.Context, senderEmail, subject, body string) error
}

// MailService sends through the Resend API. One attempt per call, no
// retry, no queue; the call is bounded by timeout so a slow relay
// cannot hold a request open indefinitely.
type MailService struct {
	client       *resend.Client
	fromEmail    string
	contactEmail string
	timeout      time.Duration
	isDev        bool
}

func NewMailService(apiKey, fromEmail, contactEmail string, timeout time.Duration, isDev bool) *MailService {
	var client *resend.Client
	if !isDev {
		client = resend.NewClient(apiKey)
	}

	return &MailService{
		client:       client,
		fromEmail:    fromEmail,
		contactEmail: contactEmail,
		timeout:      timeout,
		isDev:        isDev,
	}
}

func (s *MailService) SendContactMessage(ctx context.Context, senderEmail, subject, body string) error {
	text := fmt.Sprintf("%s\n\nYou can reach me via this email: %s", body, senderEmail)

	if s.isDev {
		slog.Info("email sent (dev mode)", "type", "contact", "to", s.contactEmail, "reply_to", senderEmail, "subject", subject)
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{s.contactEmail},
		ReplyTo: senderEmail,
		Subject: subject,
		Text:    text,
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send contact message: %w", err)
	}

	slog.Info("email sent", "type", "contact", "to", s.contactEmail)
	return nil
}
