// Package googleopts holds the parameters shared by the Gemini API and
// Vertex AI bindings; both build on googleai.Options.
package googleopts

import (
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms/googleai"
)

// Common are the parameters both Google bindings accept.
type Common struct {
	CredentialsFile string `mapstructure:"credentials"`
	HarmThreshold   string `mapstructure:"harm_threshold"`
	REST            bool   `mapstructure:"rest"`
}

var harmThresholds = map[string]googleai.HarmBlockThreshold{
	"unspecified":      googleai.HarmBlockUnspecified,
	"low_and_above":    googleai.HarmBlockLowAndAbove,
	"medium_and_above": googleai.HarmBlockMediumAndAbove,
	"only_high":        googleai.HarmBlockOnlyHigh,
	"none":             googleai.HarmBlockNone,
}

// ParseHarmThreshold accepts the snake_case names above, case-insensitive,
// with or without a "block_" prefix.
func ParseHarmThreshold(s string) (googleai.HarmBlockThreshold, error) {
	key := strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "block_")
	ht, ok := harmThresholds[key]
	if !ok {
		return 0, fmt.Errorf("invalid harm_threshold %q", s)
	}
	return ht, nil
}

// Options translates the common parameters into googleai options.
func (c Common) Options() ([]googleai.Option, error) {
	var opts []googleai.Option
	if c.CredentialsFile != "" {
		opts = append(opts, googleai.WithCredentialsFile(c.CredentialsFile))
	}
	if c.HarmThreshold != "" {
		ht, err := ParseHarmThreshold(c.HarmThreshold)
		if err != nil {
			return nil, err
		}
		opts = append(opts, googleai.WithHarmThreshold(ht))
	}
	if c.REST {
		opts = append(opts, googleai.WithRest())
	}
	return opts, nil
}

// Apply folds opts over googleai.DefaultOptions.
func Apply(opts []googleai.Option) googleai.Options {
	o := googleai.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
