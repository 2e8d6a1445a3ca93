package provider

import (
	"context"

	"github.com/tmc/langchaingo/llms"
)

// CallDefaults are generation settings given at construction time. langchaingo
// takes them per call, so they are replayed in front of every call's options.
// Bindings embed it with `mapstructure:",squash"`.
type CallDefaults struct {
	Temperature *float64 `mapstructure:"temperature"`
	MaxTokens   int      `mapstructure:"max_tokens"`
	TopP        *float64 `mapstructure:"top_p"`
	TopK        int      `mapstructure:"top_k"`
	Stop        []string `mapstructure:"stop"`
	Seed        *int     `mapstructure:"seed"`
}

// Options converts the defaults into langchaingo call options.
func (d CallDefaults) Options() []llms.CallOption {
	var opts []llms.CallOption
	if d.Temperature != nil {
		opts = append(opts, llms.WithTemperature(*d.Temperature))
	}
	if d.MaxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(d.MaxTokens))
	}
	if d.TopP != nil {
		opts = append(opts, llms.WithTopP(*d.TopP))
	}
	if d.TopK > 0 {
		opts = append(opts, llms.WithTopK(d.TopK))
	}
	if len(d.Stop) > 0 {
		opts = append(opts, llms.WithStopWords(d.Stop))
	}
	if d.Seed != nil {
		opts = append(opts, llms.WithSeed(*d.Seed))
	}
	return opts
}

// WithCallDefaults wraps m so every call starts from d. Options passed to a
// call are applied after the defaults and override them. When d is empty m is
// returned as is.
func WithCallDefaults(m llms.Model, d CallDefaults) llms.Model {
	opts := d.Options()
	if len(opts) == 0 {
		return m
	}
	return &defaultedModel{model: m, defaults: opts}
}

type defaultedModel struct {
	model    llms.Model
	defaults []llms.CallOption
}

var _ llms.Model = (*defaultedModel)(nil)

func (d *defaultedModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	opts := make([]llms.CallOption, 0, len(d.defaults)+len(options))
	opts = append(opts, d.defaults...)
	opts = append(opts, options...)
	return d.model.GenerateContent(ctx, messages, opts...)
}

func (d *defaultedModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, d, prompt, options...)
}

// Unwrap returns the SDK model.
func (d *defaultedModel) Unwrap() llms.Model {
	return d.model
}

// Unwrap returns the SDK model behind m, peeling off WithCallDefaults.
func Unwrap(m llms.Model) llms.Model {
	for {
		u, ok := m.(interface{ Unwrap() llms.Model })
		if !ok {
			return m
		}
		m = u.Unwrap()
	}
}
