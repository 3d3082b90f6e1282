package engine

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/kairosml/kairos-go/internal/config"
)

// Service wraps the engine client with lifecycle management and logging. The
// fitting calls themselves pass straight through: the engine is a black box
// and its failures are surfaced opaque.
type Service struct {
	client *Client
	config *config.EngineConfig
	logger *logrus.Logger
}

// NewService creates a new engine service wrapper.
func NewService(cfg *config.EngineConfig, logger *logrus.Logger) *Service {
	if logger == nil {
		logger = logrus.New()
	}
	return &Service{
		client: NewClient(cfg),
		config: cfg,
		logger: logger,
	}
}

// Initialize verifies connectivity to the engine sidecar.
func (s *Service) Initialize(ctx context.Context) error {
	health, err := s.client.HealthCheck(ctx)
	if err != nil {
		return fmt.Errorf("engine service health check failed: %w", err)
	}
	if health.Status != "ok" {
		return fmt.Errorf("engine service is not healthy: %s", health.Status)
	}

	s.logger.WithFields(logrus.Fields{
		"service_url": s.config.ServiceURL,
		"version":     health.Version,
	}).Info("Connected to forecasting engine service")
	return nil
}

// IsHealthy reports whether the engine sidecar currently answers its health
// probe.
func (s *Service) IsHealthy(ctx context.Context) bool {
	health, err := s.client.HealthCheck(ctx)
	return err == nil && health.Status == "ok"
}

// GetServiceURL returns the configured engine base URL.
func (s *Service) GetServiceURL() string {
	return s.client.BaseURL
}

// StatsForecast runs a statsforecast-family estimator.
func (s *Service) StatsForecast(ctx context.Context, req *StatsForecastRequest) (*StatsForecastResponse, error) {
	return s.client.StatsForecast(ctx, req)
}

// Prophet fits a Prophet model.
func (s *Service) Prophet(ctx context.Context, req *ProphetRequest) (*ProphetResponse, error) {
	return s.client.Prophet(ctx, req)
}

// NeuralProphet fits a NeuralProphet model.
func (s *Service) NeuralProphet(ctx context.Context, req *NeuralProphetRequest) (*NeuralProphetResponse, error) {
	return s.client.NeuralProphet(ctx, req)
}

// Close releases client resources.
func (s *Service) Close() error {
	return s.client.Close()
}
