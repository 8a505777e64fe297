package handlers

import (
	"net/http"

	"yelpcamp/internal/service"

	"github.com/gin-gonic/gin"
)

// ReviewHandler handles HTTP requests for reviews
type ReviewHandler struct {
	reviewService service.ReviewServiceInterface
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewService service.ReviewServiceInterface) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// Create handles POST /campgrounds/:id/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	var input service.ReviewInput
	if err := bindForm(c, &input); err != nil {
		_ = c.Error(err)
		return
	}

	id := c.Param("id")
	if _, err := h.reviewService.AddReview(c.Request.Context(), id, &input); err != nil {
		_ = c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, "/campgrounds/"+id)
}

// Delete handles DELETE /campgrounds/:id/reviews/:reviewId
func (h *ReviewHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.reviewService.DeleteReview(c.Request.Context(), id, c.Param("reviewId")); err != nil {
		_ = c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, "/campgrounds/"+id)
}
