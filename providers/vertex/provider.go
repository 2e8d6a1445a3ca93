// Package vertex installs the "vertex" provider (Vertex AI) backed by
// github.com/tmc/langchaingo/llms/googleai/vertex.
package vertex

import (
	"context"
	"os"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
	lcvertex "github.com/tmc/langchaingo/llms/googleai/vertex"

	"github.com/BaSui01/langchaingang/provider"
	"github.com/BaSui01/langchaingang/providers/internal/googleopts"
)

const (
	projectEnv      = "GOOGLE_CLOUD_PROJECT"
	locationEnv     = "GOOGLE_CLOUD_LOCATION"
	defaultLocation = "us-central1"
)

func init() {
	provider.MustInstall(provider.Vertex, New)
}

// Options are the parameters accepted by the "vertex" provider. Callers may
// pass "model"; the registry renames it to model_name.
type Options struct {
	provider.CallDefaults `mapstructure:",squash"`
	googleopts.Common     `mapstructure:",squash"`

	ModelName string `mapstructure:"model_name"`
	Project   string `mapstructure:"project"`
	Location  string `mapstructure:"location"`
}

// New builds a Vertex AI chat model. Credentials come from the credentials
// file when given, otherwise from Application Default Credentials.
func New(ctx context.Context, params provider.Params) (llms.Model, error) {
	opts, defaults, err := buildOptions(params)
	if err != nil {
		return nil, err
	}
	m, err := lcvertex.New(ctx, opts...)
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
	if o.ModelName != "" {
		opts = append(opts, googleai.WithDefaultModel(o.ModelName))
	}

	project := o.Project
	if project == "" {
		project = os.Getenv(projectEnv)
	}
	location := o.Location
	if location == "" {
		location = os.Getenv(locationEnv)
	}
	if location == "" {
		location = defaultLocation
	}
	opts = append(opts, googleai.WithCloudProject(project), googleai.WithCloudLocation(location))
	return opts, o.CallDefaults, nil
}
