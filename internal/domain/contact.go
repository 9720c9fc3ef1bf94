package domain

import "context"

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string  `json:"name" validate:"required,notblank"`
	Email   string  `json:"email" validate:"required,notblank"`
	Phone   Text    `json:"phone"`
	Subject string  `json:"subject" validate:"required,notblank"`
	Message string  `json:"message" validate:"required,notblank"`
}

// PhoneOrEmpty returns the optional phone number, "" when omitted or null.
func (r *ContactRequest) PhoneOrEmpty() string {
	return r.Phone.String()
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SendContactMessage validates and sends a contact form message
	SendContactMessage(ctx context.Context, req *ContactRequest) error
}
