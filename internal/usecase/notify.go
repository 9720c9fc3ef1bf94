package usecase

import (
	"context"

	"form-relay-backend/pkg/apperror"
	"form-relay-backend/pkg/email"
	"form-relay-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// Notifier delivers one rendered notification; *email.EmailService implements it.
type Notifier interface {
	Send(ctx context.Context, msg *email.Message) error
}

// checkRequired runs struct validation and folds in any extra missing fields
// the tags cannot express. It returns a 400 AppError listing every missing field.
func checkRequired(validate *validator.Validate, req any, message string, extraMissing ...string) error {
	err := validate.Struct(req)

	var missing, fieldMessages []string
	if names := validation.MissingFields(err); len(names) > 0 {
		missing = names
		fieldMessages = validation.FormatValidationErrors(err)
	}
	for _, name := range extraMissing {
		missing = append(missing, name)
		fieldMessages = append(fieldMessages, validation.RequiredMessage(name))
	}
	if len(missing) > 0 {
		return apperror.Validation(message, missing, fieldMessages)
	}
	if err != nil {
		// InvalidValidationError: nil or non-struct input
		return apperror.BadRequest(message)
	}
	return nil
}
