package provider

// Provider keys of the built-in table.
const (
	OpenAI      = "openai"
	AzureOpenAI = "azure_openai"
	Bedrock     = "bedrock"
	Vertex      = "vertex"
	Gemini      = "gemini"
	Anthropic   = "anthropic"
	Ollama      = "ollama"
)

const bindingRoot = "github.com/BaSui01/langchaingang/providers/"

// Info describes one provider: where its binding lives, which SDK type it
// builds and how generic parameter names map onto the constructor's names.
type Info struct {
	// Name is the provider key, e.g. "bedrock".
	Name string `json:"name" yaml:"name"`
	// Package is the Go import path of the binding that installs the constructor.
	Package string `json:"package" yaml:"package"`
	// Model is the SDK type the constructor returns.
	Model string `json:"model" yaml:"model"`
	// Aliases maps generic parameter names to provider-specific ones.
	Aliases map[string]string `json:"aliases,omitempty" yaml:"aliases,omitempty"`
}

// Builtin returns the built-in provider table in registration order.
// Each call returns a fresh copy.
func Builtin() []Info {
	return []Info{
		{Name: OpenAI, Package: bindingRoot + "openai", Model: "openai.LLM"},
		{Name: AzureOpenAI, Package: bindingRoot + "openai", Model: "openai.LLM"},
		// Bedrock 使用 model_id 而不是 model
		{Name: Bedrock, Package: bindingRoot + "bedrock", Model: "bedrock.LLM",
			Aliases: map[string]string{"model": "model_id"}},
		// Vertex AI 使用 model_name 而不是 model
		{Name: Vertex, Package: bindingRoot + "vertex", Model: "vertex.Vertex",
			Aliases: map[string]string{"model": "model_name"}},
		{Name: Gemini, Package: bindingRoot + "gemini", Model: "googleai.GoogleAI"},
		{Name: Anthropic, Package: bindingRoot + "anthropic", Model: "anthropic.LLM"},
		{Name: Ollama, Package: bindingRoot + "ollama", Model: "ollama.LLM"},
	}
}
