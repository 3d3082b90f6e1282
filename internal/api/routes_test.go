package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"

	"github.com/kairosml/kairos-go/internal/api/handlers"
	"github.com/kairosml/kairos-go/internal/config"
	"github.com/kairosml/kairos-go/internal/services"
	"github.com/kairosml/kairos-go/pkg/engine"
)

type noopEngine struct{}

func (noopEngine) Initialize(ctx context.Context) error { return nil }
func (noopEngine) IsHealthy(ctx context.Context) bool   { return true }
func (noopEngine) Close() error                         { return nil }
func (noopEngine) GetServiceURL() string                { return "" }
func (noopEngine) StatsForecast(ctx context.Context, req *engine.StatsForecastRequest) (*engine.StatsForecastResponse, error) {
	return &engine.StatsForecastResponse{Mean: make([]float64, req.Horizon)}, nil
}
func (noopEngine) Prophet(ctx context.Context, req *engine.ProphetRequest) (*engine.ProphetResponse, error) {
	return &engine.ProphetResponse{Yhat: make([]float64, req.Horizon)}, nil
}
func (noopEngine) NeuralProphet(ctx context.Context, req *engine.NeuralProphetRequest) (*engine.NeuralProphetResponse, error) {
	return &engine.NeuralProphetResponse{Yhat: make([]float64, req.Horizon)}, nil
}

func TestSetupRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	eng := noopEngine{}
	svc := services.NewForecastService(&config.Config{}, eng, logger)

	router := gin.New()
	SetupRoutes(router,
		handlers.NewForecastHandler(svc, nil, nil, logger),
		handlers.NewModelsHandler(svc),
		handlers.NewHealthHandler(eng, nil, nil, "test"),
	)

	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/health", http.StatusOK},
		{http.MethodGet, "/live", http.StatusOK},
		{http.MethodGet, "/ready", http.StatusOK},
		{http.MethodGet, "/api/v1/models", http.StatusOK},
		{http.MethodPost, "/api/v1/forecast", http.StatusBadRequest},       // empty body
		{http.MethodPost, "/api/v1/forecast/batch", http.StatusBadRequest}, // empty body
		{http.MethodGet, "/api/v1/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))
		assert.Equal(t, tt.status, w.Code, "%s %s", tt.method, tt.path)
	}
}
