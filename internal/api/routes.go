package api

import (
	"github.com/gin-gonic/gin"

	"github.com/kairosml/kairos-go/internal/api/handlers"
)

// SetupRoutes registers all HTTP routes on the router.
func SetupRoutes(router *gin.Engine, forecastHandler *handlers.ForecastHandler, modelsHandler *handlers.ModelsHandler, healthHandler *handlers.HealthHandler) {
	// Health endpoints
	router.GET("/health", healthHandler.HealthCheck)
	router.GET("/live", healthHandler.LivenessCheck)
	router.GET("/ready", healthHandler.ReadinessCheck)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		v1.GET("/models", modelsHandler.ListModels)

		forecast := v1.Group("/forecast")
		{
			forecast.POST("", forecastHandler.Forecast)
			forecast.POST("/batch", forecastHandler.ForecastBatch)
		}
	}
}
