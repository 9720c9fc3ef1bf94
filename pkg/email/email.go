// Package email renders storefront notifications and delivers them to the
// shop mailbox through a pluggable Transport (SMTP session or Resend API).
package email

import (
	"context"
	"errors"
)

var (
	// ErrNotConfigured is returned when the sender or recipient address is missing.
	ErrNotConfigured = errors.New("email service is not configured")

	// ErrSendFailed wraps every transport failure surfaced to callers.
	ErrSendFailed = errors.New("failed to send email")
)

// Message is a fully rendered notification, ready for a single delivery attempt.
type Message struct {
	FromName    string
	From        string
	To          []string
	ReplyTo     string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// Attachment is an in-memory file forwarded with the notification.
type Attachment struct {
	Filename    string
	ContentType string
	Content     []byte
}

// Transport owns the reusable handle to the mail provider.
type Transport interface {
	// Name identifies the provider in logs and health output.
	Name() string
	// Configured reports whether credentials are present.
	Configured() bool
	// Ready reports whether a live handle currently exists.
	Ready() bool
	// Send makes exactly one delivery attempt, creating the handle lazily.
	Send(ctx context.Context, msg *Message) error
	// Reset discards the current handle and recreates it in the background.
	Reset()
}
