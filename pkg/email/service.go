package email

import (
	"context"
	"fmt"
	"strings"

	"form-relay-backend/config"
	"form-relay-backend/pkg/logger"
)

// EmailService delivers notifications to the fixed shop mailbox.
type EmailService struct {
	transport Transport
	fromName  string
	fromEmail string
	toEmail   string
}

// NewEmailService binds the process-wide sender/recipient identity to a transport.
func NewEmailService(cfg *config.Config, transport Transport) *EmailService {
	return &EmailService{
		transport: transport,
		fromName:  cfg.MailFromName,
		fromEmail: cfg.EmailUser, // Gmail only accepts the login address as sender
		toEmail:   cfg.MailTo,
	}
}

// Send fills in the fixed delivery parameters and makes exactly one attempt.
// A connection-class failure resets the transport handle for the next caller;
// the failed message itself is not retried.
func (s *EmailService) Send(ctx context.Context, msg *Message) error {
	if !s.IsConfigured() {
		return ErrNotConfigured
	}

	msg.FromName = s.fromName
	msg.From = s.fromEmail
	msg.To = []string{s.toEmail}
	if strings.TrimSpace(msg.ReplyTo) == "" {
		msg.ReplyTo = s.fromEmail
	}

	err := s.transport.Send(ctx, msg)
	if err == nil {
		logger.Log.Info("Notification email sent",
			"transport", s.transport.Name(),
			"subject", msg.Subject,
			"attachments", len(msg.Attachments),
		)
		return nil
	}

	if IsConnectionError(err) {
		logger.Log.Warn("Mail transport connection lost, recreating handle",
			"transport", s.transport.Name(),
			"error", err,
		)
		s.transport.Reset()
	}

	logger.Log.Error("Notification email failed",
		"transport", s.transport.Name(),
		"subject", msg.Subject,
		"error", err,
	)
	return fmt.Errorf("%w: %w", ErrSendFailed, err)
}

// IsConfigured checks if both addresses and the transport credentials are set
func (s *EmailService) IsConfigured() bool {
	return s.fromEmail != "" && s.toEmail != "" && s.transport.Configured()
}

// TransportName is the active provider, e.g. "smtp".
func (s *EmailService) TransportName() string {
	return s.transport.Name()
}

// Ready reports whether the transport currently holds a live handle.
func (s *EmailService) Ready() bool {
	return s.transport.Ready()
}
