package middleware

import (
	"errors"
	"fmt"
	"form-relay-backend/internal/delivery/http/response"
	"form-relay-backend/pkg/apperror"
	"form-relay-backend/pkg/logger"
	"net/http"

	"github.com/gin-gonic/gin"
)

const msgUnexpectedError = "Une erreur inattendue s'est produite. Veuillez réessayer plus tard."

// ErrorHandler renders the last error pushed with c.Error. Raw error detail
// is only included when verbose is set (non-production).
func ErrorHandler(verbose bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.Internal(msgUnexpectedError, err)
		}

		if appErr.Code >= http.StatusInternalServerError {
			logger.Log.Error("Request failed",
				"path", c.FullPath(),
				"status", appErr.Code,
				"request_id", c.GetString(response.RequestIDKey),
				"error", appErr.Err,
			)
		}

		response.Error(c, appErr.Code, appErr.Message, errorDetail(appErr, verbose))
	}
}

func errorDetail(appErr *apperror.AppError, verbose bool) interface{} {
	if appErr.Details != nil {
		return appErr.Details
	}
	if verbose && appErr.Err != nil {
		return appErr.Err.Error()
	}
	return nil
}

// Recovery turns a panic into the standard 500 envelope.
func Recovery(verbose bool) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Log.Error("Panic recovered", "path", c.FullPath(), "panic", recovered)
		var detail interface{}
		if verbose {
			detail = fmt.Sprint(recovered)
		}
		response.Error(c, http.StatusInternalServerError, msgUnexpectedError, detail)
		c.Abort()
	})
}
