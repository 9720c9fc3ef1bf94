package domain

import (
	"context"
	"strings"
)

// ConfiguratorRequest is a custom-sign quote built in the product configurator.
// Details holds arbitrary sign attributes (font, dimensions, colors, LED/neon
// options, fixation type, free-text options).
type ConfiguratorRequest struct {
	Name     string         `json:"name" validate:"required,notblank"`
	Price    any            `json:"price"`
	Material string         `json:"material"`
	Details  map[string]any `json:"details" validate:"required"`
}

// ContactEmail is the submitter's address when the configurator collected one.
func (r *ConfiguratorRequest) ContactEmail() string {
	if v, ok := r.Details["email"].(string); ok {
		return strings.TrimSpace(v)
	}
	return ""
}

// ConfiguratorEcho is returned to the storefront on success.
type ConfiguratorEcho struct {
	ItemName string `json:"itemName"`
	Price    any    `json:"price"`
}

type ConfiguratorUsecase interface {
	// SubmitConfiguration validates the configured sign and notifies the shop
	SubmitConfiguration(ctx context.Context, req *ConfiguratorRequest) (*ConfiguratorEcho, error)
}
