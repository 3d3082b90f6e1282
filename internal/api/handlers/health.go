package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"

	"github.com/kairosml/kairos-go/internal/database"
	"github.com/kairosml/kairos-go/pkg/engine"
)

var startTime = time.Now()

// HealthHandler reports service health. The engine sidecar is required;
// database and Redis are optional and report "disabled" when not configured.
type HealthHandler struct {
	engine  engine.EngineService
	db      *database.PostgresDB
	redis   *database.RedisClient
	version string
}

// HealthResponse is the payload for GET /health.
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    string            `json:"uptime"`
	Services  map[string]string `json:"services"`
	Resources *ResourceStats    `json:"resources,omitempty"`
}

// ResourceStats carries process host resource usage.
type ResourceStats struct {
	MemoryUsedPercent float64 `json:"memory_used_percent"`
	CPUPercent        float64 `json:"cpu_percent"`
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(engineSvc engine.EngineService, db *database.PostgresDB, redis *database.RedisClient, version string) *HealthHandler {
	return &HealthHandler{
		engine:  engineSvc,
		db:      db,
		redis:   redis,
		version: version,
	}
}

// HealthCheck handles GET /health
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	ctx := c.Request.Context()
	services := make(map[string]string)

	status := "healthy"

	if h.engine != nil && h.engine.IsHealthy(ctx) {
		services["engine"] = "healthy"
	} else {
		services["engine"] = "unhealthy"
		status = "unhealthy"
	}

	if h.db != nil {
		if err := h.db.HealthCheck(ctx); err != nil {
			services["database"] = "unhealthy: " + err.Error()
			if status == "healthy" {
				status = "degraded"
			}
		} else {
			services["database"] = "healthy"
		}
	} else {
		services["database"] = "disabled"
	}

	if h.redis != nil {
		if err := h.redis.HealthCheck(ctx); err != nil {
			services["redis"] = "unhealthy: " + err.Error()
			if status == "healthy" {
				status = "degraded"
			}
		} else {
			services["redis"] = "healthy"
		}
	} else {
		services["redis"] = "disabled"
	}

	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now(),
		Version:   h.version,
		Uptime:    time.Since(startTime).String(),
		Services:  services,
		Resources: collectResourceStats(),
	}

	statusCode := http.StatusOK
	if status == "unhealthy" {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, response)
}

// LivenessCheck handles GET /live
func (h *HealthHandler) LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"alive": true})
}

// ReadinessCheck handles GET /ready. Ready means the engine sidecar answers.
func (h *HealthHandler) ReadinessCheck(c *gin.Context) {
	if h.engine == nil || !h.engine.IsHealthy(c.Request.Context()) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ready": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ready": true})
}

func collectResourceStats() *ResourceStats {
	stats := &ResourceStats{}

	if vm, err := mem.VirtualMemory(); err == nil {
		stats.MemoryUsedPercent = vm.UsedPercent
	}
	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		stats.CPUPercent = percents[0]
	}

	return stats
}
