package routes

import (
	"github.com/gin-gonic/gin"

	"deepgram-transcriber/internal/api/middleware"
	"deepgram-transcriber/internal/api/v1/handlers"
	"deepgram-transcriber/internal/api/v1/services"
)

// ServiceContainer holds all services needed by handlers
type ServiceContainer struct {
	TranscriptionService services.TranscriptionService
	ProviderService      services.ProviderService
	// MaxUploadBytes bounds transcription request bodies; zero disables the cap
	MaxUploadBytes int64
}

// RegisterRoutes mounts the v1 API on router
func RegisterRoutes(router *gin.RouterGroup, container *ServiceContainer) {
	transcriptionHandler := handlers.NewTranscriptionHandler(container.TranscriptionService)
	transcriptions := router.Group("/transcriptions")
	if container.MaxUploadBytes > 0 {
		transcriptions.Use(middleware.BodyLimit(container.MaxUploadBytes + middleware.MultipartSlack))
	}
	transcriptions.POST("", transcriptionHandler.Create)
	transcriptions.POST("/download", transcriptionHandler.Download)

	providerHandler := handlers.NewProviderHandler(container.ProviderService)
	providers := router.Group("/providers")
	providers.GET("", providerHandler.List)
	providers.GET("/:id", providerHandler.Get)
	providers.GET("/:id/status", providerHandler.GetStatus)
	providers.GET("/:id/stats", providerHandler.GetStats)
}
