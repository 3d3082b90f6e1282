package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/kairosml/kairos-go/internal/config"
)

// Client is the low-level HTTP client for the forecasting engine sidecar.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	timeout    time.Duration
}

// NewClient creates a new engine client instance.
func NewClient(cfg *config.EngineConfig) *Client {
	timeout := time.Duration(cfg.Timeout) * time.Second
	if timeout == 0 {
		timeout = 120 * time.Second
	}

	return &Client{
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
		BaseURL: strings.TrimSuffix(cfg.ServiceURL, "/"),
		timeout: timeout,
	}
}

// HealthCheck checks if the engine service is healthy.
func (c *Client) HealthCheck(ctx context.Context) (*HealthResponse, error) {
	var response HealthResponse
	if err := c.makeRequest(ctx, http.MethodGet, "/health", nil, &response); err != nil {
		return nil, err
	}
	return &response, nil
}

// StatsForecast runs one of the statsforecast estimators (AutoETS, AutoARIMA,
// Theta) and returns mean forecasts with optional bounds and fitted values.
func (c *Client) StatsForecast(ctx context.Context, req *StatsForecastRequest) (*StatsForecastResponse, error) {
	var response StatsForecastResponse
	err := c.makeRequest(ctx, http.MethodPost, "/api/statsforecast", req, &response)
	return &response, err
}

// Prophet fits a Prophet model, optionally with exogenous regressors.
func (c *Client) Prophet(ctx context.Context, req *ProphetRequest) (*ProphetResponse, error) {
	var response ProphetResponse
	err := c.makeRequest(ctx, http.MethodPost, "/api/prophet", req, &response)
	return &response, err
}

// NeuralProphet fits a NeuralProphet model.
func (c *Client) NeuralProphet(ctx context.Context, req *NeuralProphetRequest) (*NeuralProphetResponse, error) {
	var response NeuralProphetResponse
	err := c.makeRequest(ctx, http.MethodPost, "/api/neuralprophet", req, &response)
	return &response, err
}

// makeRequest is a helper method to make HTTP requests to the engine service.
func (c *Client) makeRequest(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	url := c.BaseURL + path

	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "Kairos-Go/1.0")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		// The engine's failure detail is captured verbatim, never parsed.
		var errorResp ErrorResponse
		if err := json.Unmarshal(respBody, &errorResp); err == nil && errorResp.Error != "" {
			return fmt.Errorf("engine service error (%d): %s", resp.StatusCode, errorResp.Error)
		}
		return fmt.Errorf("engine service error (%d): %s", resp.StatusCode, string(respBody))
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to unmarshal response: %w", err)
		}
	}

	return nil
}

// Close closes the HTTP client. Provided for interface compatibility; the
// underlying client needs no explicit cleanup.
func (c *Client) Close() error {
	return nil
}
