// 配置加载器与默认配置测试。
package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Loader 测试 ---

func TestLoader_LoadDefaults(t *testing.T) {
	// 不指定配置文件，应该返回默认值
	cfg, err := NewLoader().Load()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "langchaingang", cfg.Metrics.Namespace)
	assert.Empty(t, cfg.Models)
}

func TestLoader_LoadFromYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
log:
  level: debug
  format: json

metrics:
  textfile_path: /var/lib/node_exporter/tldr.prom

default_model: summarizer

models:
  summarizer:
    provider: openai
    params:
      model: gpt-4o-mini
      temperature: 0
  claude:
    provider: bedrock
    params:
      model: anthropic.claude-v2
      region_name: us-east-1
      stop: ["\n\nHuman:"]
`
	require.NoError(t, os.WriteFile(configPath, []byte(yamlContent), 0o644))

	cfg, err := NewLoader().WithConfigPath(configPath).Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, []string{"stderr"}, cfg.Log.OutputPaths)
	assert.Equal(t, "/var/lib/node_exporter/tldr.prom", cfg.Metrics.TextfilePath)
	assert.Equal(t, "summarizer", cfg.DefaultModel)

	require.Len(t, cfg.Models, 2)
	assert.Equal(t, []string{"claude", "summarizer"}, cfg.ModelNames())

	summarizer := cfg.Models["summarizer"]
	assert.Equal(t, "openai", summarizer.Provider)
	assert.Equal(t, "gpt-4o-mini", summarizer.Params["model"])
	assert.Equal(t, 0, summarizer.Params["temperature"])

	claude := cfg.Models["claude"]
	assert.Equal(t, []any{"\n\nHuman:"}, claude.Params["stop"])

	require.NoError(t, cfg.Validate())
}

func TestLoader_LoadFromEnv(t *testing.T) {
	t.Setenv("LANGCHAINGANG_LOG_LEVEL", "warn")
	t.Setenv("LANGCHAINGANG_LOG_OUTPUT_PATHS", "stdout, /tmp/app.log")
	t.Setenv("LANGCHAINGANG_LOG_ENABLE_CALLER", "true")
	t.Setenv("LANGCHAINGANG_METRICS_NAMESPACE", "tldr")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, []string{"stdout", "/tmp/app.log"}, cfg.Log.OutputPaths)
	assert.True(t, cfg.Log.EnableCaller)
	assert.Equal(t, "tldr", cfg.Metrics.Namespace)
}

func TestLoader_EnvOverridesYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(`
log:
  level: debug
default_model: a
models:
  a: {provider: ollama}
  b: {provider: openai}
`), 0o644))

	t.Setenv("LANGCHAINGANG_LOG_LEVEL", "error")
	t.Setenv("LANGCHAINGANG_DEFAULT_MODEL", "b")

	cfg, err := NewLoader().WithConfigPath(configPath).Load()
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "b", cfg.DefaultModel)
}

func TestLoader_CustomEnvPrefix(t *testing.T) {
	t.Setenv("TLDR_LOG_FORMAT", "json")

	cfg, err := NewLoader().WithEnvPrefix("TLDR").Load()
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoader_InvalidEnvValue(t *testing.T) {
	t.Setenv("LANGCHAINGANG_LOG_ENABLE_CALLER", "sometimes")

	_, err := NewLoader().Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LANGCHAINGANG_LOG_ENABLE_CALLER")
}

func TestLoader_WithValidator(t *testing.T) {
	_, err := NewLoader().
		WithValidator(func(c *Config) error { return c.Validate() }).
		Load()
	require.NoError(t, err)

	t.Setenv("LANGCHAINGANG_LOG_LEVEL", "verbose")
	_, err = NewLoader().
		WithValidator(func(c *Config) error { return c.Validate() }).
		Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestLoader_NonExistentFile(t *testing.T) {
	cfg, err := NewLoader().WithConfigPath("/nonexistent/path/config.yaml").Load()
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoader_InvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "invalid.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("models: [unclosed"), 0o644))

	_, err := NewLoader().WithConfigPath(configPath).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config file")
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			modify: func(*Config) {},
		},
		{
			name:    "invalid log level",
			modify:  func(c *Config) { c.Log.Level = "trace" },
			wantErr: "invalid log level",
		},
		{
			name:    "invalid log format",
			modify:  func(c *Config) { c.Log.Format = "xml" },
			wantErr: "invalid log format",
		},
		{
			name: "unsupported provider",
			modify: func(c *Config) {
				c.Models["x"] = ModelConfig{Provider: "nonexistent"}
			},
			wantErr: `unsupported provider "nonexistent"`,
		},
		{
			name: "missing provider",
			modify: func(c *Config) {
				c.Models["x"] = ModelConfig{}
			},
			wantErr: "provider is required",
		},
		{
			name:    "undefined default model",
			modify:  func(c *Config) { c.DefaultModel = "missing" },
			wantErr: "default_model",
		},
		{
			name: "registered provider without binding is valid",
			modify: func(c *Config) {
				c.Models["x"] = ModelConfig{Provider: "vertex"}
				c.DefaultModel = "x"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMustLoad(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("log:\n  level: warn\n"), 0o644))

	cfg := MustLoad(configPath)
	assert.Equal(t, "warn", cfg.Log.Level)

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("log: [x"), 0o644))
	assert.Panics(t, func() { MustLoad(bad) })
}

func TestLoadFromEnv_Function(t *testing.T) {
	t.Setenv("LANGCHAINGANG_METRICS_TEXTFILE_PATH", "/tmp/x.prom")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/x.prom", cfg.Metrics.TextfilePath)
}

func TestSetFieldValue(t *testing.T) {
	var target struct {
		Port    uint16
		Retries uint
		Timeout time.Duration
		Ratio   float64
	}
	v := reflect.ValueOf(&target).Elem()

	require.NoError(t, setFieldValue(v.FieldByName("Port"), "8080"))
	require.NoError(t, setFieldValue(v.FieldByName("Retries"), "3"))
	require.NoError(t, setFieldValue(v.FieldByName("Timeout"), "1m30s"))
	require.NoError(t, setFieldValue(v.FieldByName("Ratio"), "0.25"))

	assert.Equal(t, uint16(8080), target.Port)
	assert.Equal(t, uint(3), target.Retries)
	assert.Equal(t, 90*time.Second, target.Timeout)
	assert.Equal(t, 0.25, target.Ratio)

	// 超出 uint16 范围或为负数
	assert.Error(t, setFieldValue(v.FieldByName("Port"), "70000"))
	assert.Error(t, setFieldValue(v.FieldByName("Retries"), "-1"))
}

func TestLoader_TelemetryFromEnv(t *testing.T) {
	t.Setenv("LANGCHAINGANG_TELEMETRY_OTLP_ENDPOINT", "collector:4317")
	t.Setenv("LANGCHAINGANG_TELEMETRY_INSECURE", "true")
	t.Setenv("LANGCHAINGANG_TELEMETRY_SAMPLE_RATE", "0.1")

	cfg, err := NewLoader().Load()
	require.NoError(t, err)

	assert.Equal(t, "collector:4317", cfg.Telemetry.OTLPEndpoint)
	assert.True(t, cfg.Telemetry.Insecure)
	assert.Equal(t, 0.1, cfg.Telemetry.SampleRate)
	assert.Equal(t, "langchaingang", cfg.Telemetry.ServiceName)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_ValidateSampleRate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Telemetry.SampleRate = 1.5

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sample_rate")
}
