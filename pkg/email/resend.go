package email

import (
	"context"
	"fmt"
	"sync"

	"github.com/resend/resend-go/v3"
)

// ResendTransport delivers through the Resend HTTP API. The handle is the API
// client; it holds no connection of its own, so recreating it is cheap.
type ResendTransport struct {
	apiKey string

	mu     sync.Mutex
	client *resend.Client
}

func NewResendTransport(apiKey string) *ResendTransport {
	return &ResendTransport{apiKey: apiKey}
}

func (t *ResendTransport) Name() string { return "resend" }

func (t *ResendTransport) Configured() bool { return t.apiKey != "" }

func (t *ResendTransport) Ready() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.client != nil
}

// Send implements Transport.
func (t *ResendTransport) Send(ctx context.Context, msg *Message) error {
	req := &resend.SendEmailRequest{
		From:    fromHeader(msg.FromName, msg.From),
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
		ReplyTo: msg.ReplyTo,
	}
	if len(msg.Attachments) > 0 {
		req.Attachments = convertAttachments(msg.Attachments)
	}

	if _, err := t.handle().Emails.SendWithContext(ctx, req); err != nil {
		return fmt.Errorf("resend: failed to send email: %w", err)
	}
	return nil
}

func (t *ResendTransport) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.client = resend.NewClient(t.apiKey)
}

func (t *ResendTransport) handle() *resend.Client {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.client == nil {
		t.client = resend.NewClient(t.apiKey)
	}
	return t.client
}

func convertAttachments(attachments []Attachment) []*resend.Attachment {
	result := make([]*resend.Attachment, len(attachments))
	for i, a := range attachments {
		result[i] = &resend.Attachment{
			Filename:    a.Filename,
			Content:     a.Content,
			ContentType: a.ContentType,
		}
	}
	return result
}

func fromHeader(name, address string) string {
	if name == "" {
		return address
	}
	return fmt.Sprintf("%s <%s>", name, address)
}
