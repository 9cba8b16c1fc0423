package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rshade/carbonfoot/internal/cli"
	"github.com/rshade/carbonfoot/internal/config"
)

// referenceYAML estimates to 2573.975 t CO2e.
const referenceYAML = `about:
  name: Asha
transport:
  transport_mode: car
  vehicle_fuel: petrol
  daily_travel: 10
household:
  household_members: 4
  monthly_electricity: 2000
  ac_usage: "no"
  home_type: apartment1
food:
  diet_type: vegetarian
  red_meat: never
  dairy: rarely
  food_waste: rarely
waste:
  weekly_waste: medium
  recycling: some
  waste_segregation: "yes"
lifestyle:
  yearly_clothes: moderate
  electronics: low
  online_shopping: monthly
`

// setupCLITest isolates the global config directory and disables suggestions
// so no test reaches the network. It returns the global config directory.
func setupCLITest(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvProjectDir, filepath.Join(t.TempDir(), "none"))
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvOutputFormat, "")
	t.Setenv(config.EnvSuggestionsEnabled, "false")
	t.Setenv(config.EnvGeminiAPIKey, "")
	t.Setenv(config.EnvSuggestionsAPIKey, "")
	t.Cleanup(func() {
		config.ResetGlobalConfigForTest()
		config.SetResolvedProjectDir("")
	})
	return home
}

// runCLI executes the root command with args and returns stdout and stderr.
func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(bytes.NewBufferString(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeFile writes content under a fresh temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}
