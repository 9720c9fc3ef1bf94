package usecase

import (
	"context"
	"fmt"
	"strings"

	"form-relay-backend/internal/domain"
	"form-relay-backend/pkg/email"

	"github.com/go-playground/validator/v10"
)

type quoteUsecase struct {
	notifier Notifier
	renderer *email.Renderer
	validate *validator.Validate
}

func NewQuoteUsecase(notifier Notifier, renderer *email.Renderer, validate *validator.Validate) domain.QuoteUsecase {
	return &quoteUsecase{
		notifier: notifier,
		renderer: renderer,
		validate: validate,
	}
}

func (uc *quoteUsecase) SubmitQuoteRequest(ctx context.Context, req *domain.QuoteRequest) error {
	if err := checkRequired(uc.validate, req, MsgMissingRequiredFields); err != nil {
		return err
	}

	var attachments []email.Attachment
	if req.LogoFile != nil {
		attachments = append(attachments, email.Attachment{
			Filename:    req.LogoFile.Filename,
			ContentType: req.LogoFile.ContentType,
			Content:     req.LogoFile.Content,
		})
	}

	rendered := uc.renderer.Quote(email.QuoteEmailData{
		Customer: email.CustomerEmailData{
			Name:       strings.TrimSpace(req.Name),
			Phone:      strings.TrimSpace(req.Phone),
			Email:      strings.TrimSpace(req.Email),
			PostalCode: strings.TrimSpace(req.PostalCode),
			Address:    strings.TrimSpace(req.Address),
		},
		ManufacturingProcess: strings.TrimSpace(req.ManufacturingProcess),
		PhotoMontage:         req.PhotoMontageRequested(),
		ProjectDescription:   strings.TrimSpace(req.ProjectDescription),
		HasAttachment:        len(attachments) > 0,
	})

	err := uc.notifier.Send(ctx, &email.Message{
		Subject:     rendered.Subject,
		HTML:        rendered.HTML,
		ReplyTo:     strings.TrimSpace(req.Email),
		Attachments: attachments,
	})
	if err != nil {
		return fmt.Errorf("failed to send quote email: %w", err)
	}
	return nil
}
