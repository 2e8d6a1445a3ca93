package all

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/BaSui01/langchaingang/provider"
)

func TestAllInstalled(t *testing.T) {
	reg := provider.Default()
	assert.Equal(t, reg.List(), reg.Installed())
	for _, name := range reg.List() {
		assert.True(t, reg.IsSupported(name), name)
	}
}
