package routes

import (
	"net/http"

	"yelpcamp/internal/api/handlers"
	"yelpcamp/internal/api/middleware"
	"yelpcamp/internal/database"
	"yelpcamp/internal/service"
	"yelpcamp/internal/views"

	"github.com/gin-gonic/gin"
)

// Version is reported by the health endpoints
const Version = "1.0.0"

// Services groups the business services the routes dispatch to
type Services struct {
	Campgrounds service.CampgroundServiceInterface
	Reviews     service.ReviewServiceInterface
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(services *Services, store database.Store) *gin.Engine {
	router := gin.New()
	router.HTMLRender = views.MustNew()
	router.HandleMethodNotAllowed = false

	// ErrorHandler sits outside Recovery so recovered panics are rendered too
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(store, Version)
	campgroundHandler := handlers.NewCampgroundHandler(services.Campgrounds)
	reviewHandler := handlers.NewReviewHandler(services.Reviews)

	health := router.Group("/health")
	{
		health.GET("", healthHandler.Health)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/live", healthHandler.Live)
	}

	router.GET("/", handlers.Home)

	campgrounds := router.Group("/campgrounds")
	{
		campgrounds.GET("", campgroundHandler.Index)
		campgrounds.GET("/new", campgroundHandler.New)
		campgrounds.POST("", campgroundHandler.Create)
		campgrounds.GET("/:id", campgroundHandler.Show)
		campgrounds.GET("/:id/edit", campgroundHandler.Edit)
		campgrounds.PUT("/:id", campgroundHandler.Update)
		campgrounds.DELETE("/:id", campgroundHandler.Delete)

		campgrounds.POST("/:id/reviews", reviewHandler.Create)
		campgrounds.DELETE("/:id/reviews/:reviewId", reviewHandler.Delete)
	}

	router.NoRoute(handlers.NotFound)

	return router
}

// NewHandler wraps the router so HTML forms can override the request method
func NewHandler(router *gin.Engine) http.Handler {
	return middleware.MethodOverride(router)
}
