package cli_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonfoot/internal/config"
)

func TestConfigSetGet(t *testing.T) {
	globalDir := setupCLITest(t)

	out, _, err := runCLI(t, "", "config", "set", "suggestions.model", "gemini-1.5-flash")
	require.NoError(t, err)
	assert.Contains(t, out, "Set suggestions.model = gemini-1.5-flash")

	data, err := os.ReadFile(filepath.Join(globalDir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "gemini-1.5-flash")

	out, _, err = runCLI(t, "", "config", "get", "suggestions.model")
	require.NoError(t, err)
	assert.Equal(t, "gemini-1.5-flash", strings.TrimSpace(out))
}

func TestConfigSet_Rejected(t *testing.T) {
	globalDir := setupCLITest(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown key", args: []string{"config", "set", "output.colour", "red"}},
		{name: "section key", args: []string{"config", "set", "output", "json"}},
		{name: "wrong type", args: []string{"config", "set", "output.precision", "two"}},
		{name: "fails validation", args: []string{"config", "set", "output.default_format", "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := runCLI(t, "", tt.args...)
			require.Error(t, err)
			_, statErr := os.Stat(filepath.Join(globalDir, "config.yaml"))
			assert.True(t, os.IsNotExist(statErr), "nothing should be saved")
		})
	}
}

func TestConfigGet_Section(t *testing.T) {
	setupCLITest(t)

	out, _, err := runCLI(t, "", "config", "get", "comparison")
	require.NoError(t, err)
	assert.Contains(t, out, "regional_average_tonnes: 12")
}

func TestConfigList_MasksAPIKey(t *testing.T) {
	setupCLITest(t)
	t.Setenv(config.EnvGeminiAPIKey, "secret-key")

	out, _, err := runCLI(t, "", "config", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "output.default_format = table")
	assert.Contains(t, out, "suggestions.api_key = ********")
	assert.NotContains(t, out, "secret-key")
}

func TestConfigValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		setupCLITest(t)
		out, _, err := runCLI(t, "", "config", "validate", "--verbose")
		require.NoError(t, err)
		assert.Contains(t, out, "Configuration is valid")
		assert.Contains(t, out, "Configuration details:")
	})

	t.Run("broken global file", func(t *testing.T) {
		globalDir := setupCLITest(t)
		require.NoError(t, os.WriteFile(filepath.Join(globalDir, "config.yaml"), []byte("output: [\n"), 0o600))
		_, _, err := runCLI(t, "", "config", "validate")
		require.Error(t, err)
	})

	t.Run("invalid project overlay", func(t *testing.T) {
		setupCLITest(t)
		projectDir := filepath.Join(t.TempDir(), ".carbonfoot")
		require.NoError(t, os.MkdirAll(projectDir, 0o750))
		require.NoError(t, os.WriteFile(filepath.Join(projectDir, "config.yaml"),
			[]byte("suggestions:\n  provider: oracle\n"), 0o600))

		_, _, err := runCLI(t, "", "--project-dir", projectDir, "config", "validate")
		require.Error(t, err)
		assert.ErrorIs(t, err, config.ErrInvalidProvider)
	})
}
