package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonfoot/internal/config"
)

// loadGlobalFile returns the defaults overlaid with the global file only,
// without environment overrides, so that set never persists env values.
func loadGlobalFile() (*config.Config, string, error) {
	path, err := config.ConfigPath()
	if err != nil {
		return nil, "", err
	}
	cfg := config.Default()
	if err = cfg.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, "", err
	}
	return cfg, path, nil
}

// NewConfigGetCmd creates the config get command.
func NewConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print the effective value of a configuration key",
		Long: `Prints the effective value of a dotted configuration key, after the
project overlay and environment overrides are applied. Section keys print
their YAML.`,
		Example: `  carbonfoot config get suggestions.model
  carbonfoot config get output`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := config.GetGlobalConfig().Get(args[0])
			if err != nil {
				return err
			}
			cmd.Println(v)
			return nil
		},
	}
}

// NewConfigSetCmd creates the config set command.
func NewConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value in the global file",
		Example: `  carbonfoot config set output.default_format json
  carbonfoot config set suggestions.timeout 5s
  carbonfoot config set comparison.regional_average_tonnes 4.7`,
		Args: cobra.ExactArgs(2), //nolint:mnd // key and value
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := loadGlobalFile()
			if err != nil {
				return err
			}
			if err = cfg.Set(args[0], args[1]); err != nil {
				return err
			}
			if err = cfg.Validate(); err != nil {
				return fmt.Errorf("refusing to save invalid configuration: %w", err)
			}
			if err = cfg.Save(path); err != nil {
				return err
			}

			logger.Debug().Ctx(cmd.Context()).Str("key", args[0]).Str("path", path).Msg("config value set")
			cmd.Printf("Set %s = %s\n", args[0], args[1])
			return nil
		},
	}
}

// NewConfigListCmd creates the config list command.
func NewConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List every configuration key with its effective value",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.GetGlobalConfig()
			keys, err := cfg.Keys()
			if err != nil {
				return err
			}
			for _, k := range keys {
				v, getErr := cfg.Get(k)
				if getErr != nil {
					return getErr
				}
				if k == "suggestions.api_key" && v != "" {
					v = "********"
				}
				cmd.Printf("%s = %s\n", k, v)
			}
			return nil
		},
	}
}
