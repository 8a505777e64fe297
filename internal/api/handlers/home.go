package handlers

import (
	"net/http"

	apperrors "yelpcamp/internal/errors"
	"yelpcamp/internal/views"

	"github.com/gin-gonic/gin"
)

// Home renders the landing page
func Home(c *gin.Context) {
	c.HTML(http.StatusOK, views.Home, gin.H{})
}

// NotFound forwards unmatched routes to the error page
func NotFound(c *gin.Context) {
	_ = c.Error(apperrors.ErrPageNotFound)
}
