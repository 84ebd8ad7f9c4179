package worker

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
)

// processSequential converts files one at a time.
func processSequential(ctx context.Context, inputs []string, opts Options) error {
	for i, input := range inputs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		slog.Debug("converting file",
			"file", fmt.Sprintf("%d/%d", i+1, len(inputs)),
			"name", filepath.Base(input))

		o := opts
		o.InputPath = input
		if err := Run(ctx, o); err != nil {
			return fmt.Errorf("file %d/%d failed: %w", i+1, len(inputs), err)
		}
	}
	return nil
}
