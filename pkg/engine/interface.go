package engine

import (
	"context"
)

// EngineService defines the interface the forecast adapters depend on.
type EngineService interface {
	// Service lifecycle
	Initialize(ctx context.Context) error
	IsHealthy(ctx context.Context) bool
	Close() error
	GetServiceURL() string

	// Model fitting
	StatsForecast(ctx context.Context, req *StatsForecastRequest) (*StatsForecastResponse, error)
	Prophet(ctx context.Context, req *ProphetRequest) (*ProphetResponse, error)
	NeuralProphet(ctx context.Context, req *NeuralProphetRequest) (*NeuralProphetResponse, error)
}

// EngineClient defines the interface for low-level engine HTTP operations.
type EngineClient interface {
	HealthCheck(ctx context.Context) (*HealthResponse, error)
	StatsForecast(ctx context.Context, req *StatsForecastRequest) (*StatsForecastResponse, error)
	Prophet(ctx context.Context, req *ProphetRequest) (*ProphetResponse, error)
	NeuralProphet(ctx context.Context, req *NeuralProphetRequest) (*NeuralProphetResponse, error)
	Close() error
}

// Ensure our implementations satisfy the interfaces
var (
	_ EngineService = (*Service)(nil)
	_ EngineClient  = (*Client)(nil)
)
