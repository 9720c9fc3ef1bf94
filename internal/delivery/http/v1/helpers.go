package v1

import (
	"errors"
	"net/http"

	"form-relay-backend/pkg/apperror"
	"form-relay-backend/pkg/email"

	"github.com/gin-gonic/gin"
)

const (
	msgMailUnavailable = "Service de messagerie temporairement indisponible."
	msgFileTooLarge    = "Le fichier est trop volumineux."
	msgUnreadableFile  = "Le fichier joint est illisible."
)

// respondFailure maps a usecase error onto the response envelope. Validation
// errors keep their own status; anything else becomes failureMessage.
func respondFailure(c *gin.Context, err error, failureMessage string) {
	var appErr *apperror.AppError
	switch {
	case errors.As(err, &appErr):
		_ = c.Error(appErr)
	case errors.Is(err, email.ErrNotConfigured):
		_ = c.Error(apperror.Unavailable(msgMailUnavailable, err))
	default:
		_ = c.Error(apperror.Internal(failureMessage, err))
	}
}

// bindFailure answers a body that could not be decoded at all.
func bindFailure(c *gin.Context, err error, message string) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		_ = c.Error(appErr)
		return
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		_ = c.Error(apperror.New(http.StatusBadRequest, msgFileTooLarge, err))
		return
	}
	_ = c.Error(apperror.New(http.StatusBadRequest, message, err))
}
