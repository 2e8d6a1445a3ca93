// Package all links every provider binding. Import it for its side effects
// when the binary should support every provider:
//
//	import _ "github.com/BaSui01/langchaingang/providers/all"
package all

import (
	_ "github.com/BaSui01/langchaingang/providers/anthropic"
	_ "github.com/BaSui01/langchaingang/providers/bedrock"
	_ "github.com/BaSui01/langchaingang/providers/gemini"
	_ "github.com/BaSui01/langchaingang/providers/ollama"
	_ "github.com/BaSui01/langchaingang/providers/openai"
	_ "github.com/BaSui01/langchaingang/providers/vertex"
)
