package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/carbonfoot/internal/config"
	"github.com/rshade/carbonfoot/internal/engine/cache"
	"github.com/rshade/carbonfoot/internal/footprint"
	"github.com/rshade/carbonfoot/internal/ingest"
	"github.com/rshade/carbonfoot/internal/logging"
	"github.com/rshade/carbonfoot/internal/report"
	"github.com/rshade/carbonfoot/internal/suggest"
	"github.com/rshade/carbonfoot/internal/tui"
)

// stdinPath selects standard input for --profile and --input.
const stdinPath = "-"

// maxStdinBytes caps a profile read from standard input.
const maxStdinBytes = 1 << 20

// EstimateParams holds the parameters for the estimate command execution.
// Exported for testing.
type EstimateParams struct {
	// ProfilePath is a .yaml, .yml or .json file, or "-" for stdin. Empty
	// estimates a profile with every answer left at its default.
	ProfilePath string

	// Format is the stdin profile format.
	Format string

	// Sets are key=value answer overrides applied after loading.
	Sets []string

	Output        string
	Precision     int
	Interactive   bool
	NoSuggestions bool
}

// NewEstimateCmd creates the "estimate" command.
func NewEstimateCmd() *cobra.Command {
	var params EstimateParams

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate the annual carbon footprint of one profile",
		Long: `Estimate the annual carbon footprint of a lifestyle profile.

The profile is read from a YAML or JSON file (or stdin with --profile -).
Individual answers can be overridden with --set key=value; see
"carbonfoot rules" for the recognized values of each categorical field.

The report lists per-category emissions, impact equivalents, the badge and
achievements earned, a comparison against the regional average and, unless
disabled, reduction suggestions.`,
		Example: `  # Estimate from a file
  carbonfoot estimate --profile me.yaml

  # Estimate from stdin as JSON
  cat me.json | carbonfoot estimate --profile - --format json --output json

  # What if I took the bus?
  carbonfoot estimate --profile me.yaml --set transport_mode=bus

  # Explore changes interactively
  carbonfoot estimate --profile me.yaml --interactive`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("output") {
				params.Output = config.GetDefaultOutputFormat()
			}
			if !cmd.Flags().Changed("precision") {
				params.Precision = config.GetOutputPrecision()
			}
			return executeEstimate(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.ProfilePath, "profile", "", "profile file (.yaml, .yml, .json) or - for stdin")
	cmd.Flags().StringVar(&params.Format, "format", string(ingest.FormatYAML), "stdin profile format (yaml, json)")
	cmd.Flags().StringArrayVar(&params.Sets, "set", nil, "answer override key=value (repeatable)")
	cmd.Flags().StringVar(&params.Output, "output", config.FormatTable, "output format (table, json, ndjson)")
	cmd.Flags().IntVar(&params.Precision, "precision", config.DefaultPrecision, "decimal places in table output")
	cmd.Flags().BoolVar(&params.Interactive, "interactive", false, "launch the what-if explorer")
	cmd.Flags().BoolVar(&params.NoSuggestions, "no-suggestions", false, "skip reduction suggestions")

	return cmd
}

// ValidateEstimateFlags validates that the estimate command flags are
// consistent. Exported for testing.
func ValidateEstimateFlags(params *EstimateParams) error {
	if err := validateOutputFormat(params.Output); err != nil {
		return err
	}
	if params.Precision < 0 {
		return fmt.Errorf("%w: %d", config.ErrInvalidPrecision, params.Precision)
	}
	if params.ProfilePath == stdinPath {
		switch ingest.Format(params.Format) {
		case ingest.FormatYAML, ingest.FormatJSON:
		default:
			return fmt.Errorf("%w: --format %q", ingest.ErrUnsupportedFormat, params.Format)
		}
		if params.Interactive {
			return errors.New("--interactive cannot read the profile from stdin")
		}
	}
	if params.Interactive && params.Output != config.FormatTable {
		return errors.New("--interactive only supports table output")
	}
	return nil
}

func executeEstimate(cmd *cobra.Command, params EstimateParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	if err := ValidateEstimateFlags(&params); err != nil {
		return err
	}

	p, err := loadEstimateProfile(ctx, cmd.InOrStdin(), params)
	if err != nil {
		return err
	}

	log.Debug().Ctx(ctx).
		Str("component", "cli").
		Str("profile", params.ProfilePath).
		Int("overrides", len(params.Sets)).
		Str("output", params.Output).
		Msg("estimating profile")

	if params.Interactive {
		if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
			return errors.New("--interactive requires a terminal")
		}
		p, err = runWhatIf(cmd, p, params.Precision)
		if err != nil {
			return err
		}
	}

	opts := reportOptions(ctx, config.GetGlobalConfig(), params.NoSuggestions)
	r := report.Build(ctx, p, opts)

	log.Info().Ctx(ctx).
		Str("component", "cli").
		Float64("total", r.Breakdown.Total).
		Str("badge", r.Badge.Title).
		Int("suggestions", len(r.Suggestions)).
		Msg("estimate complete")

	return renderReport(cmd.OutOrStdout(), params.Output, params.Precision, r)
}

// loadEstimateProfile reads the profile named by params and applies --set.
func loadEstimateProfile(ctx context.Context, stdin io.Reader, params EstimateParams) (footprint.Profile, error) {
	var (
		p   footprint.Profile
		err error
	)

	switch params.ProfilePath {
	case "":
	case stdinPath:
		data, readErr := io.ReadAll(io.LimitReader(stdin, maxStdinBytes))
		if readErr != nil {
			return p, fmt.Errorf("reading profile from stdin: %w", readErr)
		}
		p, err = ingest.ParseProfile(data, ingest.Format(params.Format))
		if err != nil {
			return p, fmt.Errorf("parsing profile from stdin: %w", err)
		}
	default:
		p, err = ingest.LoadProfileWithContext(ctx, params.ProfilePath)
		if err != nil {
			return p, err
		}
	}

	return ingest.ApplyOverrides(p, params.Sets)
}

// runWhatIf runs the explorer and returns the edited profile. The edits are
// echoed to stderr as --set flags so the session can be repeated.
func runWhatIf(cmd *cobra.Command, p footprint.Profile, precision int) (footprint.Profile, error) {
	model := tui.NewWhatIfModel(p, precision)
	program := tea.NewProgram(model, tea.WithContext(cmd.Context()))

	finalModel, err := program.Run()
	if err != nil {
		return p, fmt.Errorf("running interactive TUI: %w", err)
	}

	whatIf, ok := finalModel.(*tui.WhatIfModel)
	if !ok {
		return p, fmt.Errorf("unexpected model type: %T, expected *tui.WhatIfModel", finalModel)
	}

	if overrides := whatIf.Overrides(); len(overrides) > 0 {
		cmd.PrintErrf("Changes: --set %s\n", strings.Join(overrides, " --set "))
	}
	return whatIf.Profile(), nil
}

// reportOptions builds report options from the suggestions, comparison and
// equivalents sections of cfg.
func reportOptions(ctx context.Context, cfg *config.Config, noSuggestions bool) report.Options {
	factors := cfg.Equivalents
	return report.Options{
		Suggester:       buildSuggester(ctx, cfg.Suggestions, noSuggestions),
		Factors:         &factors,
		RegionalAverage: cfg.Comparison.RegionalAverageTonnes,
	}
}

// buildSuggester returns the configured Suggester, or nil when suggestions
// are off.
func buildSuggester(ctx context.Context, cfg config.SuggestionsConfig, disabled bool) suggest.Suggester {
	if disabled || !cfg.Enabled {
		return nil
	}

	if cfg.Provider == config.ProviderStatic {
		return suggest.Static{}
	}

	if cfg.APIKey == "" {
		log := logging.FromContext(ctx)
		log.Debug().Ctx(ctx).
			Str("component", "cli").
			Str("provider", cfg.Provider).
			Msgf("no API key set (%s), using static suggestions", config.EnvGeminiAPIKey)
		return suggest.Static{}
	}

	var s suggest.Suggester = suggest.NewGenerative(suggest.GenerativeConfig{
		Endpoint: cfg.Endpoint,
		Model:    cfg.Model,
		APIKey:   cfg.APIKey,
		Timeout:  cfg.Timeout,
		Count:    cfg.Count,
	})
	if store := openSuggestionCache(ctx, cfg.CacheTTL); store != nil {
		s = suggest.WithCache(s, store, cfg.Endpoint+"/"+cfg.Model, cfg.Count)
	}
	return suggest.WithFallback(s)
}

// openSuggestionCache opens the on-disk suggestion cache, pruning expired
// entries. It returns nil when the cache is disabled or cannot be opened.
func openSuggestionCache(ctx context.Context, ttl time.Duration) *cache.FileStore {
	if ttl <= 0 {
		return nil
	}
	log := logging.FromContext(ctx)

	dir, err := config.GetCacheDir()
	if err != nil {
		log.Warn().Ctx(ctx).Err(err).Msg("suggestion cache unavailable")
		return nil
	}
	store, err := cache.NewFileStore(dir, ttl)
	if err != nil {
		log.Warn().Ctx(ctx).Err(err).Str("dir", dir).Msg("suggestion cache unavailable")
		return nil
	}
	if err = store.CleanupExpired(); err != nil {
		log.Debug().Ctx(ctx).Err(err).Msg("suggestion cache cleanup failed")
	}
	return store
}

// renderReport writes r in the requested format.
func renderReport(w io.Writer, format string, precision int, r report.Report) error {
	switch format {
	case config.FormatJSON:
		return renderJSON(w, r)
	case config.FormatNDJSON:
		return renderNDJSON(w, r)
	default:
		_, err := fmt.Fprintln(w, tui.RenderReport(r, precision, terminalWidth()))
		return err
	}
}
