package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kairosml/kairos-go/internal/models"
	"github.com/kairosml/kairos-go/internal/services"
)

// ModelsHandler serves model discovery endpoints.
type ModelsHandler struct {
	forecastService *services.ForecastService
}

// NewModelsHandler creates a new models handler.
func NewModelsHandler(forecastService *services.ForecastService) *ModelsHandler {
	return &ModelsHandler{forecastService: forecastService}
}

// ModelsResponse is the payload for GET /api/v1/models.
type ModelsResponse struct {
	Models []models.ModelInfo `json:"models"`
}

// ListModels handles GET /api/v1/models
func (h *ModelsHandler) ListModels(c *gin.Context) {
	c.JSON(http.StatusOK, ModelsResponse{Models: h.forecastService.ListModels()})
}
