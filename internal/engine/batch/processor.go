package batch

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Batch size bounds.
const (
	DefaultBatchSize = 100
	MinBatchSize     = 1
	MaxBatchSize     = 1000
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors for batch processing.
var (
	ErrInvalidBatchSize = constError("batch size must be between 1 and 1000")
	ErrNilCallback      = constError("batch callback cannot be nil")
	ErrEmptyItems       = constError("items slice cannot be empty")
)

// Callback processes one batch. offset is the index of batch[0] in the
// full item slice.
type Callback[T any] func(ctx context.Context, batch []T, offset int) error

// ProgressCallback is invoked after each batch completes.
type ProgressCallback func(snapshot ProgressSnapshot)

// Processor splits items into batches and runs a Callback over them.
type Processor[T any] struct {
	batchSize  int
	onProgress ProgressCallback
}

// NewProcessor returns a processor with the given batch size.
func NewProcessor[T any](batchSize int) (*Processor[T], error) {
	if batchSize < MinBatchSize || batchSize > MaxBatchSize {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidBatchSize, batchSize)
	}
	return &Processor[T]{batchSize: batchSize}, nil
}

// NewProcessorWithDefaults returns a processor using DefaultBatchSize.
func NewProcessorWithDefaults[T any]() *Processor[T] {
	return &Processor[T]{batchSize: DefaultBatchSize}
}

// WithProgressCallback sets the progress callback.
func (p *Processor[T]) WithProgressCallback(cb ProgressCallback) *Processor[T] {
	p.onProgress = cb
	return p
}

// BatchSize returns the configured batch size.
func (p *Processor[T]) BatchSize() int {
	return p.batchSize
}

// Bounds returns the [start, end) index pair of every batch.
func (p *Processor[T]) Bounds(totalItems int) [][2]int {
	n := (totalItems + p.batchSize - 1) / p.batchSize
	out := make([][2]int, 0, n)
	for start := 0; start < totalItems; start += p.batchSize {
		out = append(out, [2]int{start, min(start+p.batchSize, totalItems)})
	}
	return out
}

// Process runs cb over each batch in order and stops at the first error.
func (p *Processor[T]) Process(ctx context.Context, items []T, cb Callback[T]) error {
	if err := validate(items, cb); err != nil {
		return err
	}

	bounds := p.Bounds(len(items))
	progress := NewProgress(len(items), len(bounds))
	for i, b := range bounds {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := cb(ctx, items[b[0]:b[1]], b[0]); err != nil {
			return fmt.Errorf("batch %d failed: %w", i, err)
		}
		p.report(progress, b[1]-b[0])
	}
	return nil
}

// ProcessConcurrent runs cb over batches with at most limit in flight.
//
// With failFast the first error cancels the context passed to remaining
// batches and is returned alone. Otherwise every batch runs and all errors
// are joined.
func (p *Processor[T]) ProcessConcurrent(
	ctx context.Context,
	items []T,
	cb Callback[T],
	limit int,
	failFast bool,
) error {
	if err := validate(items, cb); err != nil {
		return err
	}
	if limit < 1 {
		limit = 1
	}

	bounds := p.Bounds(len(items))
	progress := NewProgress(len(items), len(bounds))
	errs := make([]error, len(bounds))

	g, gctx := errgroup.WithContext(ctx)
	if !failFast {
		g = &errgroup.Group{}
		gctx = ctx
	}
	g.SetLimit(limit)

	for i, b := range bounds {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := cb(gctx, items[b[0]:b[1]], b[0]); err != nil {
				errs[i] = fmt.Errorf("batch %d failed: %w", i, err)
				return errs[i]
			}
			p.report(progress, b[1]-b[0])
			return nil
		})
	}

	err := g.Wait()
	if failFast {
		return err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return errors.Join(errs...)
}

func (p *Processor[T]) report(progress *Progress, n int) {
	snap := progress.Add(n)
	if p.onProgress != nil {
		p.onProgress(snap)
	}
}

func validate[T any](items []T, cb Callback[T]) error {
	if len(items) == 0 {
		return ErrEmptyItems
	}
	if cb == nil {
		return ErrNilCallback
	}
	return nil
}
