package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	t.Run("fallback", func(t *testing.T) {
		assert.NotEmpty(t, GetVersion())
	})

	t.Run("ldflags override", func(t *testing.T) {
		old := version
		t.Cleanup(func() { version = old })
		version = "v1.2.3"
		assert.Equal(t, "v1.2.3", GetVersion())
	})
}
