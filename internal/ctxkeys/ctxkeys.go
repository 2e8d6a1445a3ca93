// Package ctxkeys 定义在 context 中传递的请求级标识。
package ctxkeys

import "context"

// contextKey 用于在 context 中存储值的键类型
type contextKey string

const (
	runIDKey   contextKey = "run_id"
	profileKey contextKey = "model_profile"
)

// WithRunID 设置 RunID
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey, runID)
}

// RunID 获取 RunID
func RunID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(runIDKey).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// WithProfile 设置正在构造的模型配置名
func WithProfile(ctx context.Context, profile string) context.Context {
	return context.WithValue(ctx, profileKey, profile)
}

// Profile 获取模型配置名
func Profile(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(profileKey).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
