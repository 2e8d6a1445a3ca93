package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultLogConfig(), cfg.Log)
	assert.Equal(t, DefaultMetricsConfig(), cfg.Metrics)
	assert.Equal(t, DefaultTelemetryConfig(), cfg.Telemetry)
	assert.NotNil(t, cfg.Models)
	assert.Empty(t, cfg.DefaultModel)
}

func TestDefaultLogConfig(t *testing.T) {
	cfg := DefaultLogConfig()
	assert.Equal(t, "info", cfg.Level)
	assert.Equal(t, "console", cfg.Format)
	assert.Equal(t, []string{"stderr"}, cfg.OutputPaths)
	assert.False(t, cfg.EnableCaller)
}

func TestDefaultMetricsConfig(t *testing.T) {
	cfg := DefaultMetricsConfig()
	assert.Equal(t, "langchaingang", cfg.Namespace)
	assert.Empty(t, cfg.TextfilePath)
}

func TestDefaultTelemetryConfig(t *testing.T) {
	cfg := DefaultTelemetryConfig()
	assert.Empty(t, cfg.OTLPEndpoint)
	assert.Equal(t, "langchaingang", cfg.ServiceName)
	assert.Equal(t, 1.0, cfg.SampleRate)
}
