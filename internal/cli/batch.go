package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/carbonfoot/internal/cli/pagination"
	"github.com/rshade/carbonfoot/internal/config"
	"github.com/rshade/carbonfoot/internal/engine/batch"
	"github.com/rshade/carbonfoot/internal/ingest"
	"github.com/rshade/carbonfoot/internal/logging"
	"github.com/rshade/carbonfoot/internal/report"
	"github.com/rshade/carbonfoot/internal/tui"
)

// BatchParams holds the parameters for the batch command execution.
// Exported for testing.
type BatchParams struct {
	// InputPath is an NDJSON file, or "-" for stdin.
	InputPath string

	Concurrency int
	FailFast    bool
	Suggestions bool
	Output      string
	Precision   int

	// Sort is field[:asc|desc]; see pagination.ValidResultFields.
	Sort string
	Page pagination.Params
}

// batchRecord is one result as written in json and ndjson output.
type batchRecord struct {
	Line   int            `json:"line"`
	Report *report.Report `json:"report,omitempty"`
	Error  string         `json:"error,omitempty"`
}

// batchDocument is the json output shape.
type batchDocument struct {
	Summary batch.Summary `json:"summary"`
	Total   int           `json:"total"`
	Results []batchRecord `json:"results"`
}

// NewBatchCmd creates the "batch" command.
func NewBatchCmd() *cobra.Command {
	var params BatchParams

	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Estimate many profiles from NDJSON input",
		Long: `Estimate one profile per input line. Each line is a JSON profile object.

Malformed lines are reported on stderr with their line number and the rest of
the input is still processed; use --fail-fast to stop at the first bad line.
Suggestions are skipped unless --suggestions is given, since each profile
would otherwise call the suggestion provider.

The summary always covers every input line; --sort and the pagination flags
only select which results are printed.`,
		Example: `  # Summary table
  carbonfoot batch --input profiles.ndjson

  # The ten largest footprints as NDJSON
  carbonfoot batch --input profiles.ndjson --output ndjson --sort total:desc --limit 10

  # Second page of 20, read from stdin
  cat profiles.ndjson | carbonfoot batch --input - --page 2 --page-size 20`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !cmd.Flags().Changed("output") {
				params.Output = config.GetDefaultOutputFormat()
			}
			if !cmd.Flags().Changed("precision") {
				params.Precision = config.GetOutputPrecision()
			}
			return executeBatch(cmd, params)
		},
	}

	cmd.Flags().StringVar(&params.InputPath, "input", "", "NDJSON profile file or - for stdin (required)")
	cmd.Flags().IntVar(&params.Concurrency, "concurrency", 0, "batches estimated in parallel (0 = number of CPUs)")
	cmd.Flags().BoolVar(&params.FailFast, "fail-fast", false, "stop at the first malformed line")
	cmd.Flags().BoolVar(&params.Suggestions, "suggestions", false, "fetch suggestions for every profile")
	cmd.Flags().StringVar(&params.Output, "output", config.FormatTable, "output format (table, json, ndjson)")
	cmd.Flags().IntVar(&params.Precision, "precision", config.DefaultPrecision, "decimal places in table output")
	cmd.Flags().StringVar(&params.Sort, "sort", "", "sort results by field[:asc|desc] (e.g. total:desc)")
	cmd.Flags().IntVar(&params.Page.Limit, "limit", 0, "maximum results to print")
	cmd.Flags().IntVar(&params.Page.Offset, "offset", 0, "results to skip")
	cmd.Flags().IntVar(&params.Page.Page, "page", 0, "page number (1-based)")
	cmd.Flags().IntVar(&params.Page.PageSize, "page-size", 0, "results per page (with --page)")

	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// ValidateBatchFlags validates that the batch command flags are consistent.
// Exported for testing.
func ValidateBatchFlags(params *BatchParams) error {
	if params.InputPath == "" {
		return errors.New("--input is required")
	}
	if params.Concurrency < 0 {
		return fmt.Errorf("--concurrency must not be negative: %d", params.Concurrency)
	}
	if params.Precision < 0 {
		return fmt.Errorf("%w: %d", config.ErrInvalidPrecision, params.Precision)
	}
	if err := validateOutputFormat(params.Output); err != nil {
		return err
	}
	if err := params.Page.Validate(); err != nil {
		return err
	}
	field, _, err := pagination.ParseSort(params.Sort)
	if err != nil {
		return err
	}
	if field != "" && !pagination.IsValidResultField(field) {
		return fmt.Errorf("%w: %q (valid: %v)", pagination.ErrInvalidSortField, field, pagination.ValidResultFields())
	}
	return nil
}

func executeBatch(cmd *cobra.Command, params BatchParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)

	if err := ValidateBatchFlags(&params); err != nil {
		return err
	}

	records, err := readBatchInput(cmd.InOrStdin(), params.InputPath)
	if err != nil {
		return err
	}

	results, err := batch.Estimate(ctx, records, batch.Options{
		Concurrency: params.Concurrency,
		FailFast:    params.FailFast,
		Report:      reportOptions(ctx, config.GetGlobalConfig(), !params.Suggestions),
	})
	if err != nil {
		return err
	}

	summary := batch.Summarize(results)
	log.Info().Ctx(ctx).
		Str("component", "cli").
		Int("records", len(records)).
		Int("estimated", summary.Profiles).
		Int("failed", summary.Failed).
		Msg("batch complete")

	reportBatchFailures(cmd, results)

	field, order, _ := pagination.ParseSort(params.Sort)
	sorted, err := pagination.SortResults(results, field, order)
	if err != nil {
		return err
	}
	page := pagination.Apply(params.Page, sorted)

	return renderBatch(cmd.OutOrStdout(), params, summary, len(results), page)
}

// readBatchInput decodes NDJSON from path or stdin.
func readBatchInput(stdin io.Reader, path string) ([]ingest.Record, error) {
	if path == stdinPath {
		return ingest.ReadNDJSON(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening batch input: %w", err)
	}
	defer f.Close()

	return ingest.ReadNDJSON(f)
}

// reportBatchFailures writes one stderr line per failed record.
func reportBatchFailures(cmd *cobra.Command, results []batch.Result) {
	for _, res := range results {
		if res.Err != nil {
			cmd.PrintErrf("Warning: %v\n", res.Err)
		}
	}
}

func renderBatch(w io.Writer, params BatchParams, summary batch.Summary, total int, page []batch.Result) error {
	switch params.Output {
	case config.FormatJSON:
		return renderJSON(w, batchDocument{Summary: summary, Total: total, Results: toBatchRecords(page)})
	case config.FormatNDJSON:
		for _, rec := range toBatchRecords(page) {
			if err := renderNDJSON(w, rec); err != nil {
				return err
			}
		}
		return nil
	default:
		if _, err := fmt.Fprintln(w, tui.RenderBatchSummary(summary, params.Precision, terminalWidth())); err != nil {
			return err
		}
		if len(page) == 0 {
			return nil
		}
		_, err := fmt.Fprintf(w, "\n%s\n", tui.RenderBatchResults(page, params.Precision))
		return err
	}
}

func toBatchRecords(results []batch.Result) []batchRecord {
	out := make([]batchRecord, 0, len(results))
	for _, res := range results {
		rec := batchRecord{Line: res.Line, Report: res.Report}
		if res.Err != nil {
			rec.Error = res.Err.Error()
		}
		out = append(out, rec)
	}
	return out
}
