// Package openai installs the "openai" and "azure_openai" providers backed by
// github.com/tmc/langchaingo/llms/openai.
package openai

import (
	"context"
	"errors"
	"os"

	"github.com/tmc/langchaingo/llms"
	lcopenai "github.com/tmc/langchaingo/llms/openai"

	"github.com/BaSui01/langchaingang/provider"
)

// Azure 环境变量，与 langchain-openai 保持一致
const (
	azureEndpointEnv   = "AZURE_OPENAI_ENDPOINT"
	azureAPIKeyEnv     = "AZURE_OPENAI_API_KEY"
	azureAPIVersionEnv = "AZURE_OPENAI_API_VERSION"
)

// ErrMissingAzureEndpoint is returned when neither azure_endpoint nor
// AZURE_OPENAI_ENDPOINT is set.
var ErrMissingAzureEndpoint = errors.New("azure_endpoint is required (or set " + azureEndpointEnv + ")")

func init() {
	provider.MustInstall(provider.OpenAI, New)
	provider.MustInstall(provider.AzureOpenAI, NewAzure)
}

// Options are the parameters accepted by the "openai" provider.
type Options struct {
	provider.CallDefaults `mapstructure:",squash"`

	Model               string `mapstructure:"model"`
	APIKey              string `mapstructure:"api_key"`
	BaseURL             string `mapstructure:"base_url"`
	Organization        string `mapstructure:"organization"`
	EmbeddingModel      string `mapstructure:"embedding_model"`
	EmbeddingDimensions int    `mapstructure:"embedding_dimensions"`
}

// AzureOptions are the parameters accepted by the "azure_openai" provider.
type AzureOptions struct {
	provider.CallDefaults `mapstructure:",squash"`

	Model           string `mapstructure:"model"`
	APIKey          string `mapstructure:"api_key"`
	AzureEndpoint   string `mapstructure:"azure_endpoint"`
	AzureDeployment string `mapstructure:"azure_deployment"`
	APIVersion      string `mapstructure:"api_version"`
	EmbeddingModel  string `mapstructure:"embedding_model"`
	// AzureAD 使用 Entra ID token 而非 API key 鉴权
	AzureAD bool `mapstructure:"azure_ad"`
}

// New builds an OpenAI chat model. Unset fields fall back to the SDK's
// OPENAI_* environment variables.
func New(_ context.Context, params provider.Params) (llms.Model, error) {
	var o Options
	if err := provider.Decode(params, &o); err != nil {
		return nil, err
	}

	var opts []lcopenai.Option
	if o.Model != "" {
		opts = append(opts, lcopenai.WithModel(o.Model))
	}
	if o.APIKey != "" {
		opts = append(opts, lcopenai.WithToken(o.APIKey))
	}
	if o.BaseURL != "" {
		opts = append(opts, lcopenai.WithBaseURL(o.BaseURL))
	}
	if o.Organization != "" {
		opts = append(opts, lcopenai.WithOrganization(o.Organization))
	}
	if o.EmbeddingModel != "" {
		opts = append(opts, lcopenai.WithEmbeddingModel(o.EmbeddingModel))
	}
	if o.EmbeddingDimensions > 0 {
		opts = append(opts, lcopenai.WithEmbeddingDimensions(o.EmbeddingDimensions))
	}

	m, err := lcopenai.New(opts...)
	if err != nil {
		return nil, err
	}
	return provider.WithCallDefaults(m, o.CallDefaults), nil
}

// NewAzure builds an Azure OpenAI chat model. The deployment defaults to the
// model name; the API version defaults to AZURE_OPENAI_API_VERSION and then to
// the SDK default.
func NewAzure(_ context.Context, params provider.Params) (llms.Model, error) {
	var o AzureOptions
	if err := provider.Decode(params, &o); err != nil {
		return nil, err
	}

	endpoint := firstNonEmpty(o.AzureEndpoint, os.Getenv(azureEndpointEnv))
	if endpoint == "" {
		return nil, ErrMissingAzureEndpoint
	}
	deployment := firstNonEmpty(o.AzureDeployment, o.Model)
	if deployment == "" {
		return nil, lcopenai.ErrMissingAzureModel
	}

	apiType := lcopenai.APITypeAzure
	if o.AzureAD {
		apiType = lcopenai.APITypeAzureAD
	}

	opts := []lcopenai.Option{
		lcopenai.WithAPIType(apiType),
		lcopenai.WithBaseURL(endpoint),
		lcopenai.WithModel(deployment),
		lcopenai.WithAPIVersion(firstNonEmpty(o.APIVersion, os.Getenv(azureAPIVersionEnv), lcopenai.DefaultAPIVersion)),
	}
	if key := firstNonEmpty(o.APIKey, os.Getenv(azureAPIKeyEnv)); key != "" {
		opts = append(opts, lcopenai.WithToken(key))
	}
	if o.EmbeddingModel != "" {
		opts = append(opts, lcopenai.WithEmbeddingModel(o.EmbeddingModel))
	}

	m, err := lcopenai.New(opts...)
	if err != nil {
		return nil, err
	}
	return provider.WithCallDefaults(m, o.CallDefaults), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
