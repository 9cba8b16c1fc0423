// Package cli implements the carbonfoot command tree.
package cli

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/carbonfoot/internal/config"
	"github.com/rshade/carbonfoot/internal/logging"
)

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// terminalWidth returns the width of stdout, or 0 when it is not a terminal.
func terminalWidth() int {
	if !isTerminal(os.Stdout) {
		return 0
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 0
	}
	return w
}

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the carbonfoot CLI.
// It wires up configuration, logging, tracing and the subcommands
// (estimate, batch, rules, config).
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithArgs(ver, os.LookupEnv)
}

// NewRootCmdWithArgs creates the root command with an explicit env lookup for
// testability.
func NewRootCmdWithArgs(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	var (
		logResult  *logging.LogPathResult
		projectDir string
	)

	cmd := &cobra.Command{
		Use:           "carbonfoot",
		Short:         "Personal carbon footprint estimator",
		Long:          "carbonfoot: estimate an annual carbon footprint from a lifestyle profile and explain it",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			startDir, _ := os.Getwd()
			resolved := config.ResolveProjectDir(cmd.Context(), projectDir, startDir)
			config.SetResolvedProjectDir(resolved)
			config.SetGlobalConfig(config.NewWithProjectDir(cmd.Context(), resolved))

			result := setupLogging(cmd, lookupEnv)
			logResult = &result

			if resolved != "" {
				logger.Debug().Ctx(cmd.Context()).Str("project_dir", resolved).Msg("using project config")
			}
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return cleanupLogging(logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&projectDir, "project-dir", "",
		"project directory holding .carbonfoot/config.yaml (overrides "+config.EnvProjectDir+")")

	cmd.AddCommand(NewEstimateCmd(), NewBatchCmd(), NewRulesCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Estimate a footprint from a profile file
  carbonfoot estimate --profile me.yaml

  # Override answers on the command line
  carbonfoot estimate --profile me.yaml --set transport_mode=bus --set daily_travel=12

  # Explore what-if changes interactively
  carbonfoot estimate --profile me.yaml --interactive

  # Estimate many profiles, one JSON object per line
  carbonfoot batch --input profiles.ndjson --sort total:desc --limit 10

  # Show the lookup tables behind the estimate
  carbonfoot rules

  # Initialize configuration
  carbonfoot config init

  # Set configuration values
  carbonfoot config set output.default_format json`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(
		NewConfigInitCmd(), NewConfigSetCmd(), NewConfigGetCmd(),
		NewConfigListCmd(), NewConfigValidateCmd(),
	)
	return cmd
}
