package services

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"ethocli/internal/infrastructure"
)

// HealthService provides health check functionality
type HealthService struct {
	version   string
	buildTime string
	startTime time.Time
	logger    *slog.Logger
}

// HealthStatus represents the health status response
type HealthStatus struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Runtime   map[string]interface{} `json:"runtime,omitempty"`
}

// NewHealthService creates a new health service
func NewHealthService(version, buildTime string, logger *slog.Logger) *HealthService {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthService{
		version:   version,
		buildTime: buildTime,
		startTime: time.Now(),
		logger:    infrastructure.WithComponent(logger, "health_service"),
	}
}

// GetHealthStatus returns the current process health
func (s *HealthService) GetHealthStatus(ctx context.Context) *HealthStatus {
	uptime := time.Since(s.startTime)

	status := &HealthStatus{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Version:   s.version,
		Runtime: map[string]interface{}{
			"go_version":     runtime.Version(),
			"os":             runtime.GOOS,
			"arch":           runtime.GOARCH,
			"num_goroutines": runtime.NumGoroutine(),
			"uptime":         uptime.String(),
			"uptime_seconds": uptime.Seconds(),
		},
	}
	if s.buildTime != "" {
		status.Runtime["build_time"] = s.buildTime
	}

	s.logger.DebugContext(ctx, "health check performed",
		slog.String("status", status.Status),
		slog.String("uptime", fmt.Sprintf("%.0fs", uptime.Seconds())))

	return status
}
