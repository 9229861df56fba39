package batch

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Batch size limits.
const (
	// DefaultBatchSize is the number of payloads per batch when none is set.
	DefaultBatchSize = 100

	MinBatchSize = 1
	MaxBatchSize = 1000
)

// Processor errors.
var (
	ErrInvalidBatchSize = errors.New("batch size must be between 1 and 1000")
	ErrNilCallback      = errors.New("batch callback cannot be nil")
	ErrEmptyItems       = errors.New("items slice cannot be empty")
)

// Callback processes one batch. offset is the index of the batch's first
// item in the full input.
type Callback[T any] func(ctx context.Context, batch []T, offset int) error

// ProgressCallback receives a snapshot after every finished batch.
type ProgressCallback func(ProgressSnapshot)

// Processor splits items into batches and runs a callback per batch.
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

// WithProgressCallback sets the progress callback and returns p.
func (p *Processor[T]) WithProgressCallback(callback ProgressCallback) *Processor[T] {
	p.onProgress = callback
	return p
}

// BatchSize returns the configured batch size.
func (p *Processor[T]) BatchSize() int {
	return p.batchSize
}

// Batches returns the [start, end) bounds of each batch for totalItems.
func (p *Processor[T]) Batches(totalItems int) [][2]int {
	n := (totalItems + p.batchSize - 1) / p.batchSize
	bounds := make([][2]int, n)
	for i := range n {
		start := i * p.batchSize
		bounds[i] = [2]int{start, min(start+p.batchSize, totalItems)}
	}
	return bounds
}

// Process runs callback over the batches in order and stops at the first
// error or when ctx is done.
func (p *Processor[T]) Process(ctx context.Context, items []T, callback Callback[T]) error {
	if err := check(items, callback); err != nil {
		return err
	}
	bounds := p.Batches(len(items))
	progress := NewProgress(len(items), len(bounds), p.batchSize)

	for i, b := range bounds {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := callback(ctx, items[b[0]:b[1]], b[0]); err != nil {
			return fmt.Errorf("batch %d failed: %w", i, err)
		}
		p.report(progress, b[1]-b[0])
	}
	return nil
}

// ProcessConcurrent runs up to maxConcurrency batches at a time. The first
// failing batch cancels the context of the others and its error is
// returned.
func (p *Processor[T]) ProcessConcurrent(
	ctx context.Context,
	items []T,
	callback Callback[T],
	maxConcurrency int,
) error {
	if err := check(items, callback); err != nil {
		return err
	}
	bounds := p.Batches(len(items))
	progress := NewProgress(len(items), len(bounds), p.batchSize)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(maxConcurrency, 1))
	for i, b := range bounds {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			if err := callback(gCtx, items[b[0]:b[1]], b[0]); err != nil {
				return fmt.Errorf("batch %d failed: %w", i, err)
			}
			p.report(progress, b[1]-b[0])
			return nil
		})
	}
	return g.Wait()
}

func (p *Processor[T]) report(progress *Progress, items int) {
	snap := progress.AddProcessed(items)
	if p.onProgress != nil {
		p.onProgress(snap)
	}
}

func check[T any](items []T, callback Callback[T]) error {
	if len(items) == 0 {
		return ErrEmptyItems
	}
	if callback == nil {
		return ErrNilCallback
	}
	return nil
}
