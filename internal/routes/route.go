package routes

import (
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/eventhive/server/internal/container"
	"github.com/eventhive/server/internal/handlers"
	"github.com/eventhive/server/internal/middleware"
	"github.com/eventhive/server/internal/uploads"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	if container.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	// Uploaded media is served as static assets next to the API
	baseDir := container.UploadStore.BaseDir()
	r.Static("/"+uploads.KindEventImage, filepath.Join(baseDir, uploads.KindEventImage))
	r.Static("/"+uploads.KindEventStoryImage, filepath.Join(baseDir, uploads.KindEventStoryImage))
	r.Static("/"+uploads.KindEventStoryVideo, filepath.Join(baseDir, uploads.KindEventStoryVideo))

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "eventhive-api",
			})
		})

		// public routes
		api.GET("/get-event", handlers.ListEvents(container.EventService, container.Logger))
		api.GET("/get-event/:category", handlers.ListEventsByCategory(container.EventService, container.Logger))
		api.GET("/get-event-by-id/:id", handlers.GetEventByID(container.EventService, container.Logger))
		api.GET("/search-event/", handlers.SearchEvents(container.EventService, container.Logger))
	}

	protected := api.Group("/")
	protected.Use(middleware.AuthMiddleware(container.Logger))
	{
		protected.POST("/event-image-upload", handlers.UploadEventImage(container.UploadStore, container.Logger))
		protected.POST("/event-story-image-upload", handlers.UploadEventStoryImage(container.UploadStore, container.Logger))
		protected.POST("/event-story-video-upload", handlers.UploadEventStoryVideo(container.UploadStore, container.Logger))

		protected.POST("/create-event", handlers.CreateEvent(container.EventService, container.UploadStore, container.Logger))
		protected.PUT("/update-event/:id", handlers.UpdateEvent(container.EventService, container.Logger))
		protected.DELETE("/delete-event/:id", handlers.DeleteEvent(container.EventService, container.Logger))
		protected.PUT("/like-event/:id", handlers.LikeEvent(container.EventService, container.Logger))
		protected.PUT("/comment-event/:id", handlers.CommentEvent(container.EventService, container.Logger))
	}

	return r
}
