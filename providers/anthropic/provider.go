// Package anthropic installs the "anthropic" provider backed by
// github.com/tmc/langchaingo/llms/anthropic.
package anthropic

import (
	"context"

	"github.com/tmc/langchaingo/llms"
	lcanthropic "github.com/tmc/langchaingo/llms/anthropic"

	"github.com/BaSui01/langchaingang/provider"
)

func init() {
	provider.MustInstall(provider.Anthropic, New)
}

// Options are the parameters accepted by the "anthropic" provider.
type Options struct {
	provider.CallDefaults `mapstructure:",squash"`

	Model      string `mapstructure:"model"`
	APIKey     string `mapstructure:"api_key"`
	BaseURL    string `mapstructure:"base_url"`
	BetaHeader string `mapstructure:"beta_header"`
}

// New builds an Anthropic chat model. The key falls back to ANTHROPIC_API_KEY.
func New(_ context.Context, params provider.Params) (llms.Model, error) {
	var o Options
	if err := provider.Decode(params, &o); err != nil {
		return nil, err
	}

	var opts []lcanthropic.Option
	if o.Model != "" {
		opts = append(opts, lcanthropic.WithModel(o.Model))
	}
	if o.APIKey != "" {
		opts = append(opts, lcanthropic.WithToken(o.APIKey))
	}
	if o.BaseURL != "" {
		opts = append(opts, lcanthropic.WithBaseURL(o.BaseURL))
	}
	if o.BetaHeader != "" {
		opts = append(opts, lcanthropic.WithAnthropicBetaHeader(o.BetaHeader))
	}

	m, err := lcanthropic.New(opts...)
	if err != nil {
		return nil, err
	}
	return provider.WithCallDefaults(m, o.CallDefaults), nil
}
