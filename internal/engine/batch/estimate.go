package batch

import (
	"context"
	"fmt"
	"math"
	"runtime"

	"github.com/rshade/carbonfoot/internal/greenops"
	"github.com/rshade/carbonfoot/internal/ingest"
	"github.com/rshade/carbonfoot/internal/logging"
	"github.com/rshade/carbonfoot/internal/report"
)

// Options controls Estimate.
type Options struct {
	// Concurrency bounds batches in flight. Zero uses runtime.NumCPU.
	Concurrency int

	// BatchSize is the number of records per batch. Zero uses DefaultBatchSize.
	BatchSize int

	// FailFast stops at the first malformed record.
	FailFast bool

	// Report is passed to report.Build for every profile.
	Report report.Options

	// OnProgress is called after each batch. It may be called concurrently.
	OnProgress ProgressCallback
}

// Result is the outcome for one input record.
type Result struct {
	Line   int            `json:"line"`
	Report *report.Report `json:"report,omitempty"`
	Err    error          `json:"-"`
}

// Estimate builds a report for every decoded record, keeping input order.
//
// Records that failed to decode carry their error into the Result. Without
// FailFast the returned error is always nil; with FailFast it is the first
// record error and results after it may be missing.
func Estimate(ctx context.Context, records []ingest.Record, opts Options) ([]Result, error) {
	if len(records) == 0 {
		return nil, ErrEmptyItems
	}

	size := opts.BatchSize
	if size == 0 {
		size = DefaultBatchSize
	}
	proc, err := NewProcessor[ingest.Record](size)
	if err != nil {
		return nil, err
	}
	proc.WithProgressCallback(opts.OnProgress)

	limit := opts.Concurrency
	if limit <= 0 {
		limit = runtime.NumCPU()
	}

	log := logging.FromContext(ctx)
	log.Debug().Ctx(ctx).
		Str("component", "batch").
		Int("records", len(records)).
		Int("batch_size", size).
		Int("concurrency", limit).
		Msg("estimating batch")

	results := make([]Result, len(records))
	err = proc.ProcessConcurrent(ctx, records, func(ctx context.Context, batch []ingest.Record, offset int) error {
		for i, rec := range batch {
			res := &results[offset+i]
			res.Line = rec.Line
			if rec.Err != nil {
				res.Err = rec.Err
				if opts.FailFast {
					return rec.Err
				}
				continue
			}
			r := report.Build(ctx, rec.Profile, opts.Report)
			res.Report = &r
		}
		return nil
	}, limit, opts.FailFast)
	if err != nil {
		return results, fmt.Errorf("estimating batch: %w", err)
	}
	return results, nil
}

// Summary aggregates a batch of results.
type Summary struct {
	Profiles int            `json:"profiles"`
	Failed   int            `json:"failed"`
	Mean     float64        `json:"mean_total"`
	Min      float64        `json:"min_total"`
	Max      float64        `json:"max_total"`
	ByBadge  map[string]int `json:"by_badge"`
}

// Summarize aggregates successful results. Min and Max are zero when no
// profile succeeded.
func Summarize(results []Result) Summary {
	s := Summary{ByBadge: make(map[string]int, len(greenops.Badges()))}
	sum := 0.0
	s.Min = math.Inf(1)

	for _, r := range results {
		if r.Err != nil {
			s.Failed++
			continue
		}
		if r.Report == nil {
			continue
		}
		total := r.Report.Breakdown.Total
		s.Profiles++
		sum += total
		s.Min = math.Min(s.Min, total)
		s.Max = math.Max(s.Max, total)
		s.ByBadge[r.Report.Badge.Title]++
	}

	if s.Profiles == 0 {
		s.Min = 0
		return s
	}
	s.Mean = sum / float64(s.Profiles)
	return s
}
