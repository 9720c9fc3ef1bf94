package usecase

import (
	"context"
	"fmt"
	"strings"

	"form-relay-backend/internal/domain"
	"form-relay-backend/pkg/email"

	"github.com/go-playground/validator/v10"
)

const MsgInvalidCheckout = "Données de requête invalides"

type checkoutUsecase struct {
	notifier Notifier
	renderer *email.Renderer
	validate *validator.Validate
}

func NewCheckoutUsecase(notifier Notifier, renderer *email.Renderer, validate *validator.Validate) domain.CheckoutUsecase {
	return &checkoutUsecase{
		notifier: notifier,
		renderer: renderer,
		validate: validate,
	}
}

func (uc *checkoutUsecase) SubmitOrder(ctx context.Context, req *domain.CheckoutRequest) error {
	var extra []string
	if req.FormData != nil && req.FormData.IsEmpty() {
		extra = append(extra, "formData")
	}
	if err := checkRequired(uc.validate, req, MsgInvalidCheckout, extra...); err != nil {
		return err
	}

	customer := req.FormData
	lines := make([]email.OrderLine, len(req.OrderSummary.Items))
	for i, item := range req.OrderSummary.Items {
		lines[i] = email.OrderLine{
			Name:      item.Name,
			Quantity:  item.Quantity.Float64(),
			UnitPrice: item.Price.Float64(),
		}
	}

	rendered := uc.renderer.Checkout(email.CheckoutEmailData{
		Customer: email.CustomerEmailData{
			Name:       customer.Name.String(),
			Phone:      customer.Phone.String(),
			Email:      customer.Email.String(),
			PostalCode: customer.PostalCode.String(),
			Address:    customer.Address.String(),
		},
		Items:    lines,
		TotalTTC: req.OrderSummary.TotalTTC,
	})

	err := uc.notifier.Send(ctx, &email.Message{
		Subject: rendered.Subject,
		HTML:    rendered.HTML,
		ReplyTo: strings.TrimSpace(customer.Email.String()),
	})
	if err != nil {
		return fmt.Errorf("failed to send order email: %w", err)
	}
	return nil
}
