package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonfoot/internal/config"
)

// configFileName is the file written by config init in either location.
const configFileName = "config.yaml"

// errConfigExists is returned when init would overwrite without --force.
var errConfigExists = errors.New("configuration file already exists, use --force to overwrite")

// NewConfigInitCmd creates the config init command for initializing configuration.
// When a project directory has been resolved (without --global), it creates
// the project-local .carbonfoot/config.yaml and .gitignore. Otherwise, it
// creates the global ~/.carbonfoot/config.yaml.
func NewConfigInitCmd() *cobra.Command {
	var (
		force  bool
		global bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Long: `Creates a new configuration file with default values.

With --project-dir or CARBONFOOT_PROJECT_DIR, or inside a directory tree that
already has a .carbonfoot/ directory, creates the project-local
.carbonfoot/config.yaml with a .gitignore. Use --global to initialize the
global configuration instead.`,
		Example: `  # Create global configuration
  carbonfoot config init --global

  # Create project-local configuration
  carbonfoot config init --project-dir .

  # Create configuration, overwriting existing
  carbonfoot config init --force`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			projectDir := config.GetResolvedProjectDir()

			if projectDir != "" && !global {
				return initProjectConfig(cmd, projectDir, force)
			}

			return initGlobalConfig(cmd, force)
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	cmd.Flags().BoolVar(&global, "global", false, "initialize the global configuration even inside a project")

	return cmd
}

// checkNotExists fails when path exists and force is unset.
func checkNotExists(path string, force bool) error {
	if force {
		return nil
	}
	_, err := os.Stat(path)
	if err == nil {
		return errConfigExists
	}
	if !os.IsNotExist(err) {
		return fmt.Errorf("cannot access config path %s: %w", path, err)
	}
	return nil
}

// initProjectConfig creates project-local config at projectDir/config.yaml with .gitignore.
func initProjectConfig(cmd *cobra.Command, projectDir string, force bool) error {
	configPath := filepath.Join(projectDir, configFileName)

	if err := checkNotExists(configPath, force); err != nil {
		return err
	}

	if err := config.Default().Save(configPath); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	// Never overwrites an existing .gitignore.
	created, err := config.EnsureGitignore(projectDir)
	if err != nil {
		return fmt.Errorf("failed to create .gitignore: %w", err)
	}

	cmd.Printf("Configuration initialized at %s\n", configPath)
	if created {
		cmd.Printf("Created .gitignore for project-local data\n")
	}

	return nil
}

// initGlobalConfig creates global config at ~/.carbonfoot/config.yaml.
func initGlobalConfig(cmd *cobra.Command, force bool) error {
	configPath, err := config.ConfigPath()
	if err != nil {
		return err
	}

	if err = checkNotExists(configPath, force); err != nil {
		return err
	}

	if err = config.Default().Save(configPath); err != nil {
		return fmt.Errorf("failed to save configuration: %w", err)
	}

	cmd.Printf("Configuration initialized successfully\n")
	cmd.Printf("Configuration file: %s\n", configPath)

	return nil
}
