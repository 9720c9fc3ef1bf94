package domain

import (
	"context"
	"strings"
)

// CustomerInfo is the buyer block of the checkout form.
type CustomerInfo struct {
	Name       Text `json:"name"`
	Phone      Text `json:"phone"`
	Email      Text `json:"email"`
	PostalCode Text `json:"postalCode"`
	Address    Text `json:"address"`
}

// IsEmpty reports whether every field was left blank.
func (c *CustomerInfo) IsEmpty() bool {
	for _, v := range []Text{c.Name, c.Phone, c.Email, c.PostalCode, c.Address} {
		if strings.TrimSpace(v.String()) != "" {
			return false
		}
	}
	return true
}

// OrderItem is one cart line; Price is the unit price.
type OrderItem struct {
	Name     string `json:"name"`
	Quantity Number `json:"quantity"`
	Price    Number `json:"price"`
}

// OrderSummary carries the cart as computed by the storefront. TotalTTC is
// relayed as sent, never recomputed.
type OrderSummary struct {
	Items    []OrderItem `json:"items"`
	TotalTTC any         `json:"totalTTC"`
}

// CheckoutRequest represents a completed order
type CheckoutRequest struct {
	FormData     *CustomerInfo `json:"formData" validate:"required"`
	OrderSummary *OrderSummary `json:"orderSummary" validate:"required"`
}

type CheckoutUsecase interface {
	// SubmitOrder validates the order and notifies the shop
	SubmitOrder(ctx context.Context, req *CheckoutRequest) error
}
