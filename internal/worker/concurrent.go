package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// processConcurrent converts files with bounded parallelism. Conversions
// share no state; each Run mints its own identifiers.
func processConcurrent(ctx context.Context, inputs []string, opts Options, limit int) error {
	slog.Info("starting concurrent conversion",
		"files", len(inputs),
		"max_concurrent", limit)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, input := range inputs {
		g.Go(func() error {
			o := opts
			o.InputPath = input
			if err := Run(gctx, o); err != nil {
				return fmt.Errorf("file %d/%d failed: %w", i+1, len(inputs), err)
			}
			return nil
		})
	}

	return g.Wait()
}

// ErrOutputWithBatch is returned when an explicit output path is given for
// more than one input.
var ErrOutputWithBatch = errors.New("an output path can only be set for a single input")

// RunBatch converts every input next to itself. OutputPath in opts may only be
// set when there is exactly one input.
func RunBatch(ctx context.Context, inputs []string, opts Options) error {
	if len(inputs) == 1 {
		o := opts
		o.InputPath = inputs[0]
		return Run(ctx, o)
	}
	if opts.OutputPath != "" {
		return fmt.Errorf("%w (got %d inputs)", ErrOutputWithBatch, len(inputs))
	}

	limit := 1
	if opts.Config != nil {
		limit = opts.Config.MaxConcurrent
	}
	if limit > 1 {
		return processConcurrent(ctx, inputs, opts, limit)
	}
	return processSequential(ctx, inputs, opts)
}
