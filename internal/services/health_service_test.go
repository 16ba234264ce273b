package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthService_GetHealthStatus(t *testing.T) {
	svc := NewHealthService("1.2.3", "2026-08-01T00:00:00Z", testLogger())

	status := svc.GetHealthStatus(context.Background())
	require.NotNil(t, status)

	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, "1.2.3", status.Version)
	assert.False(t, status.Timestamp.IsZero())
	assert.Contains(t, status.Runtime, "go_version")
	assert.Contains(t, status.Runtime, "uptime_seconds")
	assert.Equal(t, "2026-08-01T00:00:00Z", status.Runtime["build_time"])
}

func TestHealthService_NilLogger(t *testing.T) {
	svc := NewHealthService("dev", "", nil)
	status := svc.GetHealthStatus(context.Background())
	require.NotNil(t, status)
	assert.NotContains(t, status.Runtime, "build_time")
}
