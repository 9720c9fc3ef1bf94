package domain

import "context"

// UploadedFile is a file received with a form, fully buffered in memory.
type UploadedFile struct {
	Filename    string
	ContentType string
	Content     []byte
}

// QuoteRequest is the multipart "devis" form, optionally carrying a logo.
type QuoteRequest struct {
	Name                 string `form:"name" validate:"required,notblank"`
	Phone                string `form:"phone" validate:"required,notblank"`
	Email                string `form:"email" validate:"required,notblank"`
	PostalCode           string `form:"postalCode" validate:"required,notblank"`
	Address              string `form:"address"`
	ManufacturingProcess string `form:"manufacturingProcess" validate:"required,notblank"`
	PhotoMontage         string `form:"photoMontage"`
	ProjectDescription   string `form:"projectDescription"`

	LogoFile *UploadedFile `form:"-"`
}

// PhotoMontageRequested is true only for the exact checkbox value "true".
func (r *QuoteRequest) PhotoMontageRequested() bool {
	return r.PhotoMontage == "true"
}

type QuoteUsecase interface {
	// SubmitQuoteRequest validates the quote and notifies the shop, forwarding the logo
	SubmitQuoteRequest(ctx context.Context, req *QuoteRequest) error
}
