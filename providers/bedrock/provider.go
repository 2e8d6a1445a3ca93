// Package bedrock installs the "bedrock" provider (AWS Bedrock) backed by
// github.com/tmc/langchaingo/llms/bedrock.
package bedrock

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
	"github.com/tmc/langchaingo/llms"
	lcbedrock "github.com/tmc/langchaingo/llms/bedrock"

	"github.com/BaSui01/langchaingang/provider"
)

func init() {
	provider.MustInstall(provider.Bedrock, New)
}

// Options are the parameters accepted by the "bedrock" provider. Callers may
// pass "model"; the registry renames it to model_id.
type Options struct {
	provider.CallDefaults `mapstructure:",squash"`

	ModelID       string `mapstructure:"model_id"`
	ModelProvider string `mapstructure:"model_provider"`
	RegionName    string `mapstructure:"region_name"`
	ProfileName   string `mapstructure:"credentials_profile_name"`
	EndpointURL   string `mapstructure:"endpoint_url"`
}

// New builds a Bedrock chat model. Credentials and region resolve through the
// default AWS chain (AWS_ACCESS_KEY_ID, AWS_DEFAULT_REGION, shared config)
// unless overridden by params.
func New(ctx context.Context, params provider.Params) (llms.Model, error) {
	var o Options
	if err := provider.Decode(params, &o); err != nil {
		return nil, err
	}

	client, err := newRuntimeClient(ctx, o)
	if err != nil {
		return nil, err
	}

	opts := []lcbedrock.Option{lcbedrock.WithClient(client)}
	if o.ModelID != "" {
		opts = append(opts, lcbedrock.WithModel(o.ModelID))
	}
	if o.ModelProvider != "" {
		opts = append(opts, lcbedrock.WithModelProvider(o.ModelProvider))
	}

	m, err := lcbedrock.NewWithContext(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return provider.WithCallDefaults(m, o.CallDefaults), nil
}

func newRuntimeClient(ctx context.Context, o Options) (*bedrockruntime.Client, error) {
	var loadOpts []func(*awsconfig.LoadOptions) error
	if o.RegionName != "" {
		loadOpts = append(loadOpts, awsconfig.WithRegion(o.RegionName))
	}
	if o.ProfileName != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(o.ProfileName))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return bedrockruntime.NewFromConfig(cfg, func(bo *bedrockruntime.Options) {
		if o.EndpointURL != "" {
			bo.BaseEndpoint = aws.String(o.EndpointURL)
		}
	}), nil
}
