package provider

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_Is(t *testing.T) {
	err := fmt.Errorf("resolve: %w", unsupportedError("foo"))

	assert.ErrorIs(t, err, ErrUnsupported)
	assert.NotErrorIs(t, err, ErrNotInstalled)
	assert.Equal(t, ErrCodeUnsupported, GetErrorCode(err))
	assert.Empty(t, GetErrorCode(errors.New("plain")))
}

func TestError_Message(t *testing.T) {
	info := Builtin()[2]
	err := notInstalledError(info)

	assert.Equal(t, "bedrock", err.Provider)
	assert.Contains(t, err.Error(), `import _ "github.com/BaSui01/langchaingang/providers/bedrock"`)
	assert.Contains(t, err.Error(), "bedrock.LLM")

	cause := errors.New("cause")
	wrapped := &Error{Code: ErrCodeNotInstalled, Message: "outer", Cause: cause}
	assert.Equal(t, "outer: cause", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)
	assert.Equal(t, string(ErrCodeUnsupported), ErrUnsupported.Error())
}
