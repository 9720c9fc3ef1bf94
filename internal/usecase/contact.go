package usecase

import (
	"context"
	"fmt"
	"form-relay-backend/internal/domain"
	"form-relay-backend/pkg/email"
	"strings"

	"github.com/go-playground/validator/v10"
)

const MsgMissingRequiredFields = "Tous les champs obligatoires doivent être remplis."

type contactUsecase struct {
	notifier Notifier
	renderer *email.Renderer
	validate *validator.Validate
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(notifier Notifier, renderer *email.Renderer, validate *validator.Validate) domain.ContactUsecase {
	return &contactUsecase{
		notifier: notifier,
		renderer: renderer,
		validate: validate,
	}
}

// SendContactMessage validates the contact request and sends the email
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) error {
	if err := checkRequired(uc.validate, req, MsgMissingRequiredFields); err != nil {
		return err
	}

	// Prepare email data
	rendered := uc.renderer.Contact(email.ContactEmailData{
		SenderName:  strings.TrimSpace(req.Name),
		SenderEmail: strings.TrimSpace(req.Email),
		Phone:       strings.TrimSpace(req.PhoneOrEmpty()),
		Subject:     strings.TrimSpace(req.Subject),
		Message:     strings.TrimSpace(req.Message),
	})

	// Send the email
	err := uc.notifier.Send(ctx, &email.Message{
		Subject: rendered.Subject,
		HTML:    rendered.HTML,
		ReplyTo: strings.TrimSpace(req.Email),
	})
	if err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}

	return nil
}
