package batch

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/rshade/ileap/pkg/ileap"
	"github.com/rshade/ileap/pkg/pact"
)

// Request is the company identity and factor choice shared by every
// payload of a conversion.
type Request struct {
	CompanyName string
	CompanyURN  string
	Factors     []pact.CharacterizationFactors
	MapOptions  []ileap.Option
}

// Options tunes ConvertAll.
type Options struct {
	// BatchSize defaults to DefaultBatchSize.
	BatchSize int
	// Concurrency is the number of batches converted at once; 1 or less
	// converts sequentially.
	Concurrency int
	OnProgress  ProgressCallback
	Logger      zerolog.Logger
}

// ConvertAll maps every payload with ileap.ToPCF. The result has one
// footprint per payload at the payload's index. The first failure aborts
// the run and names the failing payload.
func ConvertAll(
	ctx context.Context,
	payloads []ileap.AnyPayload,
	req Request,
	opts Options,
) ([]*pact.ProductFootprint[ileap.AnyPayload], error) {
	size := opts.BatchSize
	if size == 0 {
		size = DefaultBatchSize
	}
	p, err := NewProcessor[ileap.AnyPayload](size)
	if err != nil {
		return nil, err
	}
	p.WithProgressCallback(opts.OnProgress)

	out := make([]*pact.ProductFootprint[ileap.AnyPayload], len(payloads))
	convert := func(ctx context.Context, batch []ileap.AnyPayload, offset int) error {
		for i, payload := range batch {
			if err := ctx.Err(); err != nil {
				return err
			}
			pf, err := ileap.ToPCF(payload, req.CompanyName, req.CompanyURN, req.Factors, req.MapOptions...)
			if err != nil {
				return fmt.Errorf("payload %d (%s %s): %w", offset+i, payload.Kind(), payload.ID(), err)
			}
			out[offset+i] = pf
		}
		return nil
	}

	if opts.Concurrency > 1 {
		err = p.ProcessConcurrent(ctx, payloads, convert, opts.Concurrency)
	} else {
		err = p.Process(ctx, payloads, convert)
	}
	if err != nil {
		return nil, err
	}
	opts.Logger.Debug().
		Int("payloads", len(payloads)).
		Int("batch_size", size).
		Int("concurrency", opts.Concurrency).
		Msg("converted payloads")
	return out, nil
}
