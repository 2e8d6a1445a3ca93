// Package gemini installs the "gemini" provider (Gemini API) backed by
// github.com/tmc/langchaingo/llms/googleai.
package gemini

import (
	"context"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/BaSui01/langchaingang/provider"
	"github.com/BaSui01/langchaingang/providers/internal/googleopts"
)

func init() {
	provider.MustInstall(provider.Gemini, New)
}

// Options are the parameters accepted by the "gemini" provider.
type Options struct {
	provider.CallDefaults `mapstructure:",squash"`
	googleopts.Common     `mapstructure:",squash"`

	Model        string `mapstructure:"model"`
	GoogleAPIKey string `mapstructure:"google_api_key"`
	// APIKey 是 google_api_key 的简写
	APIKey string `mapstructure:"api_key"`
}

// New builds a Gemini API chat model. Without a key or credentials the SDK
// reads GOOGLE_API_KEY.
func New(ctx context.Context, params provider.Params) (llms.Model, error) {
	opts, defaults, err := buildOptions(params)
	if err != nil {
		return nil, err
	}
	m, err := googleai.New(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return provider.WithCallDefaults(m, defaults), nil
}

func buildOptions(params provider.Params) ([]googleai.Option, provider.CallDefaults, error) {
	var o Options
	if err := provider.Decode(params, &o); err != nil {
		return nil, provider.CallDefaults{}, err
	}

	opts, err := o.Common.Options()
	if err != nil {
		return nil, provider.CallDefaults{}, err
	}
	if o.Model != "" {
		opts = append(opts, googleai.WithDefaultModel(o.Model))
	}
	key := o.GoogleAPIKey
	if key == "" {
		key = o.APIKey
	}
	if key != "" {
		opts = append(opts, googleai.WithAPIKey(key))
	}
	return opts, o.CallDefaults, nil
}
