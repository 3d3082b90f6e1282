package engine

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kairosml/kairos-go/internal/config"
)

func newTestService(url string) *Service {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)
	return NewService(&config.EngineConfig{ServiceURL: url, Timeout: 5}, logger)
}

func TestService_Initialize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(HealthResponse{Status: "ok", Version: "1.0.0"})
	}))
	defer server.Close()

	svc := newTestService(server.URL)
	require.NoError(t, svc.Initialize(context.Background()))
	assert.True(t, svc.IsHealthy(context.Background()))
	assert.Equal(t, server.URL, svc.GetServiceURL())
	assert.NoError(t, svc.Close())
}

func TestService_Initialize_UnhealthyStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(HealthResponse{Status: "starting"})
	}))
	defer server.Close()

	svc := newTestService(server.URL)
	err := svc.Initialize(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not healthy")
	assert.False(t, svc.IsHealthy(context.Background()))
}

func TestService_Initialize_Unreachable(t *testing.T) {
	svc := newTestService("http://127.0.0.1:1")
	err := svc.Initialize(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "health check failed")
	assert.False(t, svc.IsHealthy(context.Background()))
}
