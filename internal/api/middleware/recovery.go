package middleware

import (
	"fmt"

	apperrors "yelpcamp/internal/errors"
	"yelpcamp/internal/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a 500 handled by ErrorHandler
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.WithContext(c.Request.Context()).
			WithField("panic", fmt.Sprint(recovered)).
			Error("recovered from panic")

		_ = c.Error(apperrors.NewHTTPError(500, apperrors.DefaultMessage))
		c.Abort()
	})
}
