package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/kairosml/kairos-go/internal/cache"
	"github.com/kairosml/kairos-go/internal/database"
	"github.com/kairosml/kairos-go/internal/middleware"
	"github.com/kairosml/kairos-go/internal/models"
	"github.com/kairosml/kairos-go/internal/services"
)

// ForecastHandler serves the forecast endpoints. Cache and history are
// optional; either may be nil when the corresponding subsystem is disabled.
type ForecastHandler struct {
	forecastService *services.ForecastService
	cache           *cache.ForecastCache
	history         *database.ForecastLogRepository
	logger          *logrus.Logger
}

// NewForecastHandler creates a new forecast handler.
func NewForecastHandler(forecastService *services.ForecastService, forecastCache *cache.ForecastCache, history *database.ForecastLogRepository, logger *logrus.Logger) *ForecastHandler {
	if logger == nil {
		logger = logrus.New()
	}
	return &ForecastHandler{
		forecastService: forecastService,
		cache:           forecastCache,
		history:         history,
		logger:          logger,
	}
}

// Forecast handles POST /api/v1/forecast
func (h *ForecastHandler) Forecast(c *gin.Context) {
	var req models.ForecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	ctx := c.Request.Context()

	var cacheKey string
	if h.cache != nil {
		cacheKey = h.cache.Key(&req)
		if cached, hit := h.cache.Get(ctx, cacheKey); hit {
			middleware.AddSpanAttribute(c, "forecast.cache_hit", true)
			c.JSON(http.StatusOK, cached)
			return
		}
	}

	start := time.Now()
	resp, err := h.forecastService.Forecast(ctx, &req)
	durationMs := time.Since(start).Milliseconds()

	if err != nil {
		middleware.RecordError(c, err, "forecast failed")
		h.recordHistory(c, &req, durationMs, err)

		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Detail})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if h.cache != nil {
		h.cache.Set(ctx, cacheKey, resp)
	}
	h.recordHistory(c, &req, durationMs, nil)

	c.JSON(http.StatusOK, resp)
}

// ForecastBatch handles POST /api/v1/forecast/batch
func (h *ForecastHandler) ForecastBatch(c *gin.Context) {
	var req models.BatchForecastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.forecastService.ForecastBatch(c.Request.Context(), &req)
	if err != nil {
		middleware.RecordError(c, err, "batch forecast failed")

		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// recordHistory writes an audit row when the history repository is
// configured. Failures only degrade observability, so they are logged and
// dropped.
func (h *ForecastHandler) recordHistory(c *gin.Context, req *models.ForecastRequest, durationMs int64, forecastErr error) {
	if h.history == nil {
		return
	}

	entry := &database.ForecastLogEntry{
		RequestID:    middleware.GetRequestID(c),
		Model:        string(req.Model),
		Horizon:      req.Horizon,
		HistoryCount: len(req.Y),
		DurationMs:   durationMs,
		Status:       "ok",
	}
	if forecastErr != nil {
		entry.Status = "error"
		entry.ErrorDetail = forecastErr.Error()
	}

	if _, err := h.history.Record(c.Request.Context(), entry); err != nil {
		h.logger.WithError(err).Warn("Failed to record forecast history")
	}
}
