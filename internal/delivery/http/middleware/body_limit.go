package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// multipartOverhead leaves room for the text fields and part headers around the file.
const multipartOverhead = 1 << 20

// MaxBodySize caps the request body; reads past the limit fail and the
// handler answers 400.
func MaxBodySize(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit+multipartOverhead)
		c.Next()
	}
}
