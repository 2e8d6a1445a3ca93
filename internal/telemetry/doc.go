// Package telemetry 封装 OpenTelemetry trace 导出的初始化逻辑。
// 未配置 OTLP 端点时保持全局 noop TracerProvider，不连接任何外部服务。
// 指标仍走 internal/metrics（Prometheus），这里只处理 trace。
package telemetry
