package handlers

import (
	"net/http"

	"yelpcamp/internal/service"
	"yelpcamp/internal/views"

	"github.com/gin-gonic/gin"
)

// CampgroundHandler handles HTTP requests for campground pages
type CampgroundHandler struct {
	campgroundService service.CampgroundServiceInterface
}

// NewCampgroundHandler creates a new campground handler
func NewCampgroundHandler(campgroundService service.CampgroundServiceInterface) *CampgroundHandler {
	return &CampgroundHandler{
		campgroundService: campgroundService,
	}
}

// Index handles GET /campgrounds
func (h *CampgroundHandler) Index(c *gin.Context) {
	campgrounds, err := h.campgroundService.ListCampgrounds(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.HTML(http.StatusOK, views.CampgroundIndex, gin.H{"campgrounds": campgrounds})
}

// New handles GET /campgrounds/new
func (h *CampgroundHandler) New(c *gin.Context) {
	c.HTML(http.StatusOK, views.CampgroundNew, gin.H{})
}

// Create handles POST /campgrounds
func (h *CampgroundHandler) Create(c *gin.Context) {
	var input service.CampgroundInput
	if err := bindForm(c, &input); err != nil {
		_ = c.Error(err)
		return
	}

	campground, err := h.campgroundService.CreateCampground(c.Request.Context(), &input)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, "/campgrounds/"+campground.ID)
}

// Show handles GET /campgrounds/:id
func (h *CampgroundHandler) Show(c *gin.Context) {
	campground, err := h.campgroundService.GetCampgroundDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.HTML(http.StatusOK, views.CampgroundShow, gin.H{"campground": campground})
}

// Edit handles GET /campgrounds/:id/edit
func (h *CampgroundHandler) Edit(c *gin.Context) {
	campground, err := h.campgroundService.GetCampground(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.HTML(http.StatusOK, views.CampgroundEdit, gin.H{"campground": campground})
}

// Update handles PUT /campgrounds/:id
func (h *CampgroundHandler) Update(c *gin.Context) {
	var input service.CampgroundInput
	if err := bindForm(c, &input); err != nil {
		_ = c.Error(err)
		return
	}

	campground, err := h.campgroundService.UpdateCampground(c.Request.Context(), c.Param("id"), &input)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, "/campgrounds/"+campground.ID)
}

// Delete handles DELETE /campgrounds/:id
func (h *CampgroundHandler) Delete(c *gin.Context) {
	if err := h.campgroundService.DeleteCampground(c.Request.Context(), c.Param("id")); err != nil {
		_ = c.Error(err)
		return
	}

	c.Redirect(http.StatusFound, "/campgrounds")
}
