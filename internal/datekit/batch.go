package datekit

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/lucax88x/datekit/cmd/cli/config/args"
	"github.com/lucax88x/datekit/internal/dates"
	"golang.org/x/sync/errgroup"
)

// RunBatch evaluates every line as a request, at most limit at a time.
// Results keep the order of lines. A line that cannot be parsed or run
// gets an Out with Error set; only a cancelled ctx fails the batch.
func RunBatch(
	ctx context.Context,
	facade dates.Operations,
	lines []string,
	limit int,
) ([]args.Out, error) {
	results := make([]args.Out, len(lines))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(max(limit, 1))

	for i, line := range lines {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			results[i] = answer(facade, i+1, line)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, fmt.Errorf("batch: interrupted. %w", err)
	}

	return results, nil
}

func answer(facade dates.Operations, number int, line string) args.Out {
	out := args.Out{Line: number}

	in, err := args.FromLine(line)

	if err != nil {
		out.Error = err.Error()
		return out
	}

	out.Fn = in.Fn

	result, err := Call(facade, in)

	if err != nil {
		out.Error = err.Error()
		return out
	}

	out.Result = result

	return out
}

// Serve reads requests from source until it is exhausted, runs them as
// one batch and writes a JSON line per result to sink.
func (d *Datekit) Serve(ctx context.Context, source io.Reader, sink io.Writer) error {
	ch := make(chan string)
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		return d.Stream.Listen(groupCtx, source, ch)
	})

	var lines []string

	for line := range ch {
		lines = append(lines, line)
	}

	if err := group.Wait(); err != nil {
		return err
	}

	d.Logger.DebugContext(ctx, "batch: received requests", slog.Int("count", len(lines)))

	results, err := RunBatch(ctx, d.Dates, lines, d.Config.Concurrency)

	if err != nil {
		return err
	}

	failed := 0

	for _, result := range results {
		if result.Error != "" {
			failed++
			d.Logger.DebugContext(
				ctx,
				"batch: request failed",
				slog.Int("line", result.Line),
				slog.String("error", result.Error),
			)
		}

		serialized, err := result.Serialize()

		if err != nil {
			return err
		}

		if _, err = fmt.Fprintln(sink, serialized); err != nil {
			return fmt.Errorf("batch: could not write result. %w", err)
		}
	}

	d.Logger.InfoContext(
		ctx,
		"batch: completed",
		slog.Int("requests", len(results)),
		slog.Int("failed", failed),
	)

	return nil
}
