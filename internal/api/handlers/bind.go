package handlers

import (
	apperrors "yelpcamp/internal/errors"

	"github.com/gin-gonic/gin"
)

// bindForm binds the urlencoded body into obj. Malformed input is reported
// the same way as a failed validation. Unparseable numbers are left for the
// validator so they are reported together with the other fields.
func bindForm(c *gin.Context, obj any) error {
	if err := c.ShouldBind(obj); err != nil {
		return apperrors.NewValidationError("", err.Error())
	}
	return nil
}
