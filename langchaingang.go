// Package langchaingang maps a provider name to a langchaingo chat model.
//
// Usage:
//
//	import (
//		"github.com/BaSui01/langchaingang"
//		_ "github.com/BaSui01/langchaingang/providers/bedrock"
//	)
//
//	m, err := langchaingang.GetChatModel(ctx, "bedrock", provider.Params{
//		"model":       "anthropic.claude-v2",
//		"region_name": "us-east-1",
//	})
//
// Bindings are linked in with blank imports; providers/all links every one.
// This is a thin wrapper around [provider.Default].
package langchaingang

import (
	"context"
	"errors"
	"fmt"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"

	"github.com/BaSui01/langchaingang/config"
	"github.com/BaSui01/langchaingang/internal/ctxkeys"
	"github.com/BaSui01/langchaingang/provider"
)

// Version is the library version.
const Version = "0.1.0"

// ProviderList returns every supported provider name, whether or not its
// binding is linked.
func ProviderList() []string {
	return provider.Default().List()
}

// GetChatModel builds a chat model for providerName from params.
//
// Unknown names fail with [provider.ErrUnsupported] and names whose binding
// is not linked fail with [provider.ErrNotInstalled]. Provider-specific
// renames (bedrock "model" to "model_id", vertex "model" to "model_name") are
// applied to a copy of params. Constructor errors are returned unchanged.
func GetChatModel(ctx context.Context, providerName string, params provider.Params) (llms.Model, error) {
	return provider.Default().ChatModel(ctx, providerName, params)
}

// IsSupported reports whether providerName is known and its binding linked.
func IsSupported(providerName string) bool {
	return provider.Default().IsSupported(providerName)
}

// DefaultRegistry returns the registry used by the package-level functions.
func DefaultRegistry() *provider.Registry {
	return provider.Default()
}

// ChatModelsFromConfig builds every model profile in cfg on the default
// registry. See [ChatModelsFromRegistry].
func ChatModelsFromConfig(ctx context.Context, cfg *config.Config, logger *zap.Logger) (map[string]llms.Model, string, error) {
	return ChatModelsFromRegistry(ctx, provider.Default(), cfg, logger)
}

// ChatModelsFromRegistry builds every model profile in cfg on reg and returns
// the models keyed by profile name together with the default profile name.
// A profile that fails to build is logged as a warning and skipped. An error
// is returned only when the configured default profile could not be built; it
// wraps that profile's construction error.
func ChatModelsFromRegistry(ctx context.Context, reg *provider.Registry, cfg *config.Config, logger *zap.Logger) (map[string]llms.Model, string, error) {
	if cfg == nil {
		return nil, "", errors.New("langchaingang: nil config")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	models := make(map[string]llms.Model, len(cfg.Models))
	failed := make(map[string]error)

	for _, name := range cfg.ModelNames() {
		mc := cfg.Models[name]
		m, err := reg.ChatModel(ctxkeys.WithProfile(ctx, name), mc.Provider, provider.Params(mc.Params))
		if err != nil {
			logger.Warn("skipping model: initialization failed",
				zap.String("model", name),
				zap.String("provider", mc.Provider),
				zap.Error(err))
			failed[name] = err
			continue
		}
		models[name] = m
		logger.Info("model registered",
			zap.String("model", name),
			zap.String("provider", mc.Provider))
	}

	if cfg.DefaultModel != "" {
		if err, ok := failed[cfg.DefaultModel]; ok {
			return models, "", fmt.Errorf("default model %q is not available: %w", cfg.DefaultModel, err)
		}
		if _, ok := models[cfg.DefaultModel]; !ok {
			return models, "", fmt.Errorf("default model %q is not available: not defined in models", cfg.DefaultModel)
		}
	}
	return models, cfg.DefaultModel, nil
}
