package usecase

import (
	"context"
	"fmt"
	"strings"

	"form-relay-backend/internal/domain"
	"form-relay-backend/pkg/email"

	"github.com/go-playground/validator/v10"
)

const MsgInvalidConfiguration = "Données de configuration invalides"

type configuratorUsecase struct {
	notifier Notifier
	renderer *email.Renderer
	validate *validator.Validate
}

func NewConfiguratorUsecase(notifier Notifier, renderer *email.Renderer, validate *validator.Validate) domain.ConfiguratorUsecase {
	return &configuratorUsecase{
		notifier: notifier,
		renderer: renderer,
		validate: validate,
	}
}

func (uc *configuratorUsecase) SubmitConfiguration(ctx context.Context, req *domain.ConfiguratorRequest) (*domain.ConfiguratorEcho, error) {
	if err := checkRequired(uc.validate, req, MsgInvalidConfiguration); err != nil {
		return nil, err
	}

	rendered := uc.renderer.Configurator(email.ConfiguratorEmailData{
		Name:     strings.TrimSpace(req.Name),
		Price:    req.Price,
		Material: req.Material,
		Details:  req.Details,
	})

	// Empty reply-to falls back to the shop address in EmailService
	err := uc.notifier.Send(ctx, &email.Message{
		Subject: rendered.Subject,
		HTML:    rendered.HTML,
		ReplyTo: req.ContactEmail(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send configurator email: %w", err)
	}

	return &domain.ConfiguratorEcho{ItemName: req.Name, Price: req.Price}, nil
}
