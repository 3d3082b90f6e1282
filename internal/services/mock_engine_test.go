package services

import (
	"context"
	"errors"

	"github.com/kairosml/kairos-go/pkg/engine"
)

// mockEngine is a scriptable EngineService that records the last request it
// received for each endpoint.
type mockEngine struct {
	statsReq  *engine.StatsForecastRequest
	statsResp *engine.StatsForecastResponse
	statsErr  error

	prophetReq  *engine.ProphetRequest
	prophetResp *engine.ProphetResponse
	prophetErr  error

	neuralReq  *engine.NeuralProphetRequest
	neuralResp *engine.NeuralProphetResponse
	neuralErr  error

	healthy bool
}

func (m *mockEngine) Initialize(ctx context.Context) error {
	if !m.healthy {
		return errors.New("engine unavailable")
	}
	return nil
}

func (m *mockEngine) IsHealthy(ctx context.Context) bool { return m.healthy }

func (m *mockEngine) Close() error { return nil }

func (m *mockEngine) GetServiceURL() string { return "http://localhost:8001" }

func (m *mockEngine) StatsForecast(ctx context.Context, req *engine.StatsForecastRequest) (*engine.StatsForecastResponse, error) {
	m.statsReq = req
	if m.statsErr != nil {
		return nil, m.statsErr
	}
	return m.statsResp, nil
}

func (m *mockEngine) Prophet(ctx context.Context, req *engine.ProphetRequest) (*engine.ProphetResponse, error) {
	m.prophetReq = req
	if m.prophetErr != nil {
		return nil, m.prophetErr
	}
	return m.prophetResp, nil
}

func (m *mockEngine) NeuralProphet(ctx context.Context, req *engine.NeuralProphetRequest) (*engine.NeuralProphetResponse, error) {
	m.neuralReq = req
	if m.neuralErr != nil {
		return nil, m.neuralErr
	}
	return m.neuralResp, nil
}

// constantSeries builds an hourly test series of n observations.
func constantSeries(n int) Series {
	ds := make([]int64, n)
	y := make([]float64, n)
	for i := 0; i < n; i++ {
		ds[i] = int64(i) * 3600
		y[i] = float64(i)
	}
	return Series{Ds: ds, Y: y}
}

func statsResponse(horizon int, withBounds bool) *engine.StatsForecastResponse {
	resp := &engine.StatsForecastResponse{Mean: make([]float64, horizon)}
	for i := range resp.Mean {
		resp.Mean[i] = float64(100 + i)
	}
	if withBounds {
		resp.Lo95 = make([]float64, horizon)
		resp.Hi95 = make([]float64, horizon)
		for i := range resp.Lo95 {
			resp.Lo95[i] = resp.Mean[i] - 5
			resp.Hi95[i] = resp.Mean[i] + 5
		}
	}
	return resp
}
