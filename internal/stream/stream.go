package stream

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/lucax88x/datekit/internal/encoding"
)

const Separator = '\n'

type Reader struct {
	logger *slog.Logger
}

func NewReader(logger *slog.Logger) *Reader {
	return &Reader{
		logger,
	}
}

// Listen sends every non blank line of source to ch, decoded to UTF-8,
// and closes ch when source is exhausted or ctx is done.
func (r *Reader) Listen(
	ctx context.Context,
	source io.Reader,
	ch chan<- string,
) error {
	defer close(ch)

	reader := bufio.NewReader(source)
	count := 0

	for {
		select {
		case <-ctx.Done():
			r.logger.InfoContext(ctx, "stream: context cancelled", slog.Int("lines", count))
			return ctx.Err()
		default:
		}

		line, readErr := reader.ReadBytes(Separator)

		if readErr != nil && !errors.Is(readErr, io.EOF) {
			r.logger.ErrorContext(ctx, "stream: read error", slog.Any("error", readErr))
			return fmt.Errorf("stream: could not read. %w", readErr)
		}

		if len(line) > 0 {
			decoded, err := encoding.DecodeInput(line)

			if err != nil {
				return fmt.Errorf("stream: could not decode line %d. %w", count+1, err)
			}

			if decoded != "" {
				count++

				select {
				case ch <- decoded:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
		}

		if errors.Is(readErr, io.EOF) {
			r.logger.DebugContext(ctx, "stream: received EOF", slog.Int("lines", count))
			return nil
		}
	}
}
