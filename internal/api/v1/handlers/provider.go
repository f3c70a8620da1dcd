package handlers

import (
	"context"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"deepgram-transcriber/internal/api/errors"
	"deepgram-transcriber/internal/api/middleware"
	"deepgram-transcriber/internal/api/v1/dto"
	"deepgram-transcriber/internal/api/v1/services"
)

// Registry names are config map keys; "default" is resolved by the service
var providerIDPattern = regexp.MustCompile(`^[a-z0-9_-]{1,64}$`)

// ProviderHandler exposes the provider registry read-only
type ProviderHandler struct {
	service services.ProviderService
}

func NewProviderHandler(service services.ProviderService) *ProviderHandler {
	return &ProviderHandler{service: service}
}

// List handles GET /api/v1/providers
//
// @Summary List providers
// @Description Lists the registered transcription providers with their capabilities and health
// @Tags providers
// @Produce json
// @Success 200 {object} dto.ProviderListResponse "Registered providers"
// @Failure 500 {object} errors.APIError "Internal server error"
// @Router /providers [get]
func (h *ProviderHandler) List(c *gin.Context) {
	providers, err := h.service.ListProviders(c.Request.Context())
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	resp := dto.ProviderListResponse{Providers: providers}
	if def, ok := lo.Find(providers, func(p dto.ProviderResponse) bool { return p.IsDefault }); ok {
		resp.Default = def.ID
	}
	c.JSON(http.StatusOK, resp)
}

// Get handles GET /api/v1/providers/:id
//
// @Summary Get provider details
// @Description Returns the capabilities, fixed options and health of a provider. The id "default" names the configured default provider.
// @Tags providers
// @Produce json
// @Param id path string true "Provider ID" example(deepgram)
// @Success 200 {object} dto.ProviderResponse "Provider details"
// @Failure 400 {object} errors.APIError "Malformed provider ID"
// @Failure 404 {object} errors.APIError "Provider not found"
// @Router /providers/{id} [get]
func (h *ProviderHandler) Get(c *gin.Context) {
	h.respond(c, func(ctx context.Context, id string) (interface{}, error) {
		return h.service.GetProvider(ctx, id)
	})
}

// GetStatus handles GET /api/v1/providers/:id/status
//
// @Summary Get provider health status
// @Description Checks the provider credential and reports the response time
// @Tags providers
// @Produce json
// @Param id path string true "Provider ID" example(deepgram)
// @Success 200 {object} dto.ProviderStatusResponse "Provider health status"
// @Failure 400 {object} errors.APIError "Malformed provider ID"
// @Failure 404 {object} errors.APIError "Provider not found"
// @Router /providers/{id}/status [get]
func (h *ProviderHandler) GetStatus(c *gin.Context) {
	h.respond(c, func(ctx context.Context, id string) (interface{}, error) {
		return h.service.GetProviderStatus(ctx, id)
	})
}

// GetStats handles GET /api/v1/providers/:id/stats
//
// @Summary Get provider usage statistics
// @Description Request counts, success rate and latency since the server started
// @Tags providers
// @Produce json
// @Param id path string true "Provider ID" example(deepgram)
// @Success 200 {object} dto.ProviderStatsResponse "Provider usage statistics"
// @Failure 400 {object} errors.APIError "Malformed provider ID"
// @Failure 404 {object} errors.APIError "Provider not found"
// @Router /providers/{id}/stats [get]
func (h *ProviderHandler) GetStats(c *gin.Context) {
	h.respond(c, func(ctx context.Context, id string) (interface{}, error) {
		return h.service.GetProviderStats(ctx, id)
	})
}

// respond validates the :id parameter and renders what fetch returns
func (h *ProviderHandler) respond(c *gin.Context, fetch func(context.Context, string) (interface{}, error)) {
	id := c.Param("id")
	if !providerIDPattern.MatchString(id) {
		middleware.HandleError(c, errors.NewBadRequestError("Provider ID is malformed"))
		return
	}

	body, err := fetch(c.Request.Context(), id)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}
	c.JSON(http.StatusOK, body)
}
