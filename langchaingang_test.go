package langchaingang_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/BaSui01/langchaingang"
	"github.com/BaSui01/langchaingang/config"
	"github.com/BaSui01/langchaingang/provider"
	"github.com/BaSui01/langchaingang/testutil/mocks"
)

func TestProviderList(t *testing.T) {
	want := []string{"openai", "azure_openai", "bedrock", "vertex", "gemini", "anthropic", "ollama"}
	assert.Equal(t, want, langchaingang.ProviderList())
	// 两次调用结果一致
	assert.Equal(t, langchaingang.ProviderList(), langchaingang.ProviderList())
}

func TestGetChatModel_Unsupported(t *testing.T) {
	m, err := langchaingang.GetChatModel(context.Background(), "nonexistent", nil)
	require.Error(t, err)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, provider.ErrUnsupported)
	assert.EqualError(t, err, "unsupported provider: nonexistent")
}

func TestGetChatModel_NotInstalled(t *testing.T) {
	// 本测试包不链接任何 binding
	for _, name := range langchaingang.ProviderList() {
		assert.False(t, langchaingang.IsSupported(name), name)

		_, err := langchaingang.GetChatModel(context.Background(), name, provider.Params{"model": "x"})
		require.Error(t, err)
		assert.ErrorIs(t, err, provider.ErrNotInstalled, name)
	}
}

func TestDefaultRegistry(t *testing.T) {
	assert.Same(t, provider.Default(), langchaingang.DefaultRegistry())
	assert.Equal(t, "0.1.0", langchaingang.Version)
}

func newTestRegistry(t *testing.T) (*provider.Registry, *mocks.MockConstructor, *mocks.MockConstructor) {
	t.Helper()
	reg := provider.NewRegistry(provider.Builtin())
	openai := mocks.NewMockConstructor()
	bedrock := mocks.NewMockConstructor()
	require.NoError(t, reg.Install(provider.OpenAI, openai.Construct))
	require.NoError(t, reg.Install(provider.Bedrock, bedrock.Construct))
	return reg, openai, bedrock
}

func TestChatModelsFromRegistry(t *testing.T) {
	reg, openai, bedrock := newTestRegistry(t)
	core, logs := observer.New(zapcore.InfoLevel)

	cfg := config.DefaultConfig()
	cfg.DefaultModel = "summarizer"
	cfg.Models = map[string]config.ModelConfig{
		"summarizer": {Provider: "openai", Params: map[string]any{"model": "gpt-4o-mini", "temperature": 0}},
		"claude":     {Provider: "bedrock", Params: map[string]any{"model": "anthropic.claude-v2"}},
		"gecko":      {Provider: "vertex", Params: map[string]any{"model": "text-bison"}},
	}

	models, def, err := langchaingang.ChatModelsFromRegistry(context.Background(), reg, cfg, zap.New(core))
	require.NoError(t, err)

	assert.Equal(t, "summarizer", def)
	assert.Len(t, models, 2)
	assert.Contains(t, models, "summarizer")
	assert.Contains(t, models, "claude")
	assert.NotContains(t, models, "gecko")

	assert.Equal(t, provider.Params{"model": "gpt-4o-mini", "temperature": 0}, openai.LastParams())
	assert.Equal(t, provider.Params{"model_id": "anthropic.claude-v2"}, bedrock.LastParams())

	// 原始配置不被修改
	assert.Equal(t, map[string]any{"model": "anthropic.claude-v2"}, cfg.Models["claude"].Params)

	skipped := logs.FilterMessage("skipping model: initialization failed").All()
	require.Len(t, skipped, 1)
	assert.Equal(t, "gecko", skipped[0].ContextMap()["model"])
	assert.Equal(t, zapcore.WarnLevel, skipped[0].Level)
}

func TestChatModelsFromRegistry_DefaultUnavailable(t *testing.T) {
	reg, openai, _ := newTestRegistry(t)
	sdkErr := errors.New("missing api key")
	openai.WithError(sdkErr)

	cfg := config.DefaultConfig()
	cfg.DefaultModel = "summarizer"
	cfg.Models["summarizer"] = config.ModelConfig{Provider: "openai"}

	models, def, err := langchaingang.ChatModelsFromRegistry(context.Background(), reg, cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `default model "summarizer" is not available`)
	assert.Contains(t, err.Error(), "missing api key")
	assert.ErrorIs(t, err, sdkErr)
	assert.Empty(t, def)
	assert.Empty(t, models)
}

func TestChatModelsFromRegistry_DefaultNotInstalled(t *testing.T) {
	reg, _, _ := newTestRegistry(t)

	cfg := config.DefaultConfig()
	cfg.DefaultModel = "gecko"
	cfg.Models["gecko"] = config.ModelConfig{Provider: "vertex"}

	_, _, err := langchaingang.ChatModelsFromRegistry(context.Background(), reg, cfg, nil)
	assert.ErrorIs(t, err, provider.ErrNotInstalled)
}

func TestChatModelsFromRegistry_DefaultUndefined(t *testing.T) {
	reg, _, _ := newTestRegistry(t)

	cfg := config.DefaultConfig()
	cfg.DefaultModel = "missing"

	_, _, err := langchaingang.ChatModelsFromRegistry(context.Background(), reg, cfg, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not defined in models")
}

func TestChatModelsFromRegistry_NilConfig(t *testing.T) {
	reg, _, _ := newTestRegistry(t)

	models, def, err := langchaingang.ChatModelsFromRegistry(context.Background(), reg, nil, nil)
	require.Error(t, err)
	assert.Nil(t, models)
	assert.Empty(t, def)
}

func TestChatModelsFromRegistry_NoDefault(t *testing.T) {
	reg, _, _ := newTestRegistry(t)

	cfg := config.DefaultConfig()
	cfg.Models["a"] = config.ModelConfig{Provider: "openai"}

	models, def, err := langchaingang.ChatModelsFromRegistry(context.Background(), reg, cfg, nil)
	require.NoError(t, err)
	assert.Empty(t, def)
	assert.Len(t, models, 1)
}

func TestChatModelsFromConfig_DefaultRegistry(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Models["a"] = config.ModelConfig{Provider: "ollama"}

	models, _, err := langchaingang.ChatModelsFromConfig(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Empty(t, models)
}
