// Package web serves the browser upload page.
package web

import (
	"embed"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"deepgram-transcriber/internal/api/v1/services"
	"deepgram-transcriber/web/handlers"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Templates parses the embedded page templates
func Templates() *template.Template {
	return template.Must(template.ParseFS(templateFS, "templates/*.html"))
}

// Register mounts the upload page, the form endpoints and the static assets
// on router
func Register(router *gin.Engine, service services.TranscriptionService, page handlers.PageConfig, logger *slog.Logger) {
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}

	router.SetHTMLTemplate(Templates())
	router.StaticFS("/static", http.FS(static))

	ui := handlers.NewUIHandler(service, page, logger)
	router.GET("/", ui.Index)
	router.POST("/transcribe", ui.Transcribe)
	router.POST("/download", ui.Download)
}
