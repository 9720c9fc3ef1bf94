package email

import (
	"fmt"

	"form-relay-backend/config"
)

// NewTransport picks the provider named by MAIL_TRANSPORT.
func NewTransport(cfg *config.Config) (Transport, error) {
	switch cfg.MailTransport {
	case "", "smtp":
		return NewSMTPTransport(SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			Username: cfg.EmailUser,
			Password: cfg.EmailPass,
			Timeout:  cfg.SMTPTimeout,
		}), nil
	case "resend":
		return NewResendTransport(cfg.ResendAPIKey), nil
	default:
		return nil, fmt.Errorf("unknown mail transport %q", cfg.MailTransport)
	}
}
