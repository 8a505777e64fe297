package middleware

import (
	apperrors "yelpcamp/internal/errors"
	"yelpcamp/internal/views"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the error page for the last error a handler recorded
// with c.Error. Responses that were already written are left alone.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		last := c.Errors.Last()
		if last == nil || c.Writer.Written() {
			return
		}

		httpErr := apperrors.Normalize(last.Err)
		c.HTML(httpErr.Status, views.Errors, gin.H{"err": httpErr})
	}
}
