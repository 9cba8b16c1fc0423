package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonfoot/internal/config"
)

// NewConfigValidateCmd creates the config validate command for validating configuration.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		Long: `Validates the global configuration file, and the project-local file when a
project directory is resolved, for syntax and semantic correctness.

This includes:
- YAML syntax and schema version
- Output format and precision
- Suggestion provider, timeout and count
- Regional average and equivalency factors`,
		Example: `  # Validate current configuration
  carbonfoot config validate

  # Validate and show detailed information
  carbonfoot config validate --verbose`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runConfigValidate(cmd, verbose)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show detailed validation information")

	return cmd
}

// runConfigValidate executes the configuration validation logic.
func runConfigValidate(cmd *cobra.Command, verbose bool) error {
	cfg, _, err := loadGlobalFile()
	if err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if projectDir := config.GetResolvedProjectDir(); projectDir != "" {
		overlay := filepath.Join(projectDir, configFileName)
		if mergeErr := config.ShallowMergeYAML(cfg, overlay); mergeErr != nil && !errors.Is(mergeErr, os.ErrNotExist) {
			return fmt.Errorf("configuration validation failed: %w", mergeErr)
		}
	}
	cfg.ApplyEnv()

	if err = cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	cmd.Printf("✅ Configuration is valid\n")

	if verbose {
		printVerboseDetails(cmd, cfg)
	}

	return nil
}

// printVerboseDetails prints detailed configuration information.
func printVerboseDetails(cmd *cobra.Command, cfg *config.Config) {
	cmd.Println()
	cmd.Println("Configuration details:")
	cmd.Printf("  Version: %s\n", cfg.Version)
	cmd.Printf("  Output format: %s\n", cfg.Output.DefaultFormat)
	cmd.Printf("  Output precision: %d\n", cfg.Output.Precision)
	cmd.Printf("  Logging level: %s\n", cfg.Logging.Level)
	cmd.Printf("  Log file: %s\n", cfg.Logging.File)
	cmd.Printf("  Regional average: %v t CO2e\n", cfg.Comparison.RegionalAverageTonnes)

	s := cfg.Suggestions
	if !s.Enabled {
		cmd.Println("  Suggestions: disabled")
		return
	}
	cmd.Printf("  Suggestions: %s (model %s, timeout %s, count %d)\n", s.Provider, s.Model, s.Timeout, s.Count)
	if s.Provider == config.ProviderGemini && s.APIKey == "" {
		cmd.Printf("  No API key set; static suggestions will be used\n")
	}
}
