// =============================================================================
// 📦 langchaingang 默认配置
// =============================================================================
package config

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Log:       DefaultLogConfig(),
		Metrics:   DefaultMetricsConfig(),
		Telemetry: DefaultTelemetryConfig(),
		Models:    map[string]ModelConfig{},
	}
}

// DefaultLogConfig 返回默认日志配置
func DefaultLogConfig() LogConfig {
	return LogConfig{
		Level:       "info",
		Format:      "console",
		OutputPaths: []string{"stderr"},
	}
}

// DefaultMetricsConfig 返回默认指标配置
func DefaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "langchaingang",
	}
}

// DefaultTelemetryConfig 返回默认遥测配置（未配置端点，即关闭）
func DefaultTelemetryConfig() TelemetryConfig {
	return TelemetryConfig{
		ServiceName: "langchaingang",
		SampleRate:  1.0,
	}
}
