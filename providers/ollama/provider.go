// Package ollama installs the "ollama" provider backed by
// github.com/tmc/langchaingo/llms/ollama.
package ollama

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/tmc/langchaingo/llms"
	lcollama "github.com/tmc/langchaingo/llms/ollama"

	"github.com/BaSui01/langchaingang/provider"
)

func init() {
	provider.MustInstall(provider.Ollama, New)
}

// Options are the parameters accepted by the "ollama" provider.
type Options struct {
	provider.CallDefaults `mapstructure:",squash"`

	Model       string        `mapstructure:"model"`
	BaseURL     string        `mapstructure:"base_url"`
	Format      string        `mapstructure:"format"`
	KeepAlive   string        `mapstructure:"keep_alive"`
	System      string        `mapstructure:"system"`
	NumCtx      int           `mapstructure:"num_ctx"`
	NumGPU      int           `mapstructure:"num_gpu"`
	PullModel   bool          `mapstructure:"pull_model"`
	PullTimeout time.Duration `mapstructure:"pull_timeout"`
}

// New builds an Ollama chat model. base_url is validated here because the SDK
// exits the process on an unparsable server URL.
func New(_ context.Context, params provider.Params) (llms.Model, error) {
	var o Options
	if err := provider.Decode(params, &o); err != nil {
		return nil, err
	}

	var opts []lcollama.Option
	if o.Model != "" {
		opts = append(opts, lcollama.WithModel(o.Model))
	}
	if o.BaseURL != "" {
		u, err := url.Parse(o.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid base_url %q: %w", o.BaseURL, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return nil, fmt.Errorf("invalid base_url %q: scheme must be http or https", o.BaseURL)
		}
		opts = append(opts, lcollama.WithServerURL(o.BaseURL))
	}
	if o.Format != "" {
		opts = append(opts, lcollama.WithFormat(o.Format))
	}
	if o.KeepAlive != "" {
		opts = append(opts, lcollama.WithKeepAlive(o.KeepAlive))
	}
	if o.System != "" {
		opts = append(opts, lcollama.WithSystemPrompt(o.System))
	}
	if o.NumCtx > 0 {
		opts = append(opts, lcollama.WithRunnerNumCtx(o.NumCtx))
	}
	if o.NumGPU > 0 {
		opts = append(opts, lcollama.WithRunnerNumGPU(o.NumGPU))
	}
	if o.PullModel {
		opts = append(opts, lcollama.WithPullModel())
		if o.PullTimeout > 0 {
			opts = append(opts, lcollama.WithPullTimeout(o.PullTimeout))
		}
	}

	m, err := lcollama.New(opts...)
	if err != nil {
		return nil, err
	}
	return provider.WithCallDefaults(m, o.CallDefaults), nil
}
