package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "deepgram-transcriber/docs" // swagger docs
	"deepgram-transcriber/internal/api/middleware"
	v1routes "deepgram-transcriber/internal/api/v1/routes"
	"deepgram-transcriber/internal/api/v1/services"
	"deepgram-transcriber/internal/config"
	"deepgram-transcriber/web"
	"deepgram-transcriber/web/handlers"
)

// Options holds what the server needs besides its network settings
type Options struct {
	TranscriptionService services.TranscriptionService
	ProviderService      services.ProviderService
	// Registry backs /metrics; the HTTP collectors are registered on it
	Registry       *prometheus.Registry
	MaxUploadBytes int64
	Model          string
}

// Server represents the API server
type Server struct {
	config     *config.ServerConfig
	router     *gin.Engine
	httpServer *http.Server
	listener   net.Listener
	logger     *slog.Logger
}

// NewServer creates a new API server
func NewServer(cfg *config.ServerConfig, opts Options, logger *slog.Logger) *Server {
	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}
	httpMetrics := middleware.NewHTTPMetrics(opts.Registry)

	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.StructuredLogging(logger))
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	router.Use(httpMetrics.Middleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})))

	serviceContainer := &v1routes.ServiceContainer{
		TranscriptionService: opts.TranscriptionService,
		ProviderService:      opts.ProviderService,
		MaxUploadBytes:       opts.MaxUploadBytes,
	}

	// Register API routes
	api := router.Group("/api")
	{
		api.GET("", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"message":       "Deepgram Transcriber API",
				"version":       "1.0",
				"documentation": "/swagger/index.html",
				"endpoints": gin.H{
					"health":         "/health",
					"metrics":        "/metrics",
					"transcriptions": "/api/v1/transcriptions",
					"providers":      "/api/v1/providers",
				},
			})
		})

		v1routes.RegisterRoutes(api.Group("/v1"), serviceContainer)
	}

	// Swagger documentation routes
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Browser upload page
	web.Register(router, opts.TranscriptionService, handlers.PageConfig{
		MaxUploadBytes: opts.MaxUploadBytes,
		Model:          opts.Model,
	}, logger)

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	return &Server{
		config:     cfg,
		router:     router,
		httpServer: httpServer,
		logger:     logger,
	}
}

// Start binds the listen address and serves in the background. Bind errors
// are returned; later serve errors are logged.
func (s *Server) Start() error {
	s.logger.Info("Starting API server",
		"host", s.config.Host,
		"port", s.config.Port,
		"environment", s.config.Environment,
	)

	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	s.listener = ln

	go func() {
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("Server stopped unexpectedly", "error", err)
		}
	}()

	s.logger.Info("API server started successfully",
		"address", ln.Addr().String(),
	)

	return nil
}

// Addr returns the bound address once Start has succeeded
func (s *Server) Addr() string {
	if s.listener == nil {
		return s.httpServer.Addr
	}
	return s.listener.Addr().String()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("Server forced to shutdown", "error", err)
		return err
	}

	s.logger.Info("API server shutdown complete")
	return nil
}

// Router returns the Gin router (useful for testing)
func (s *Server) Router() *gin.Engine {
	return s.router
}
