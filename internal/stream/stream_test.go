package stream_test

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/lucax88x/datekit/internal/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T, ctx context.Context, input string) ([]string, error) {
	t.Helper()

	reader := stream.NewReader(slog.New(slog.DiscardHandler))
	ch := make(chan string, 10)
	errCh := make(chan error, 1)

	go func() {
		errCh <- reader.Listen(ctx, strings.NewReader(input), ch)
	}()

	var lines []string
	for line := range ch {
		lines = append(lines, line)
	}

	return lines, <-errCh
}

func TestListenSkipsBlankLines(t *testing.T) {
	lines, err := collect(t, context.Background(), "first\n\n  \nsecond\r\nlast without newline")

	require.NoError(t, err)
	assert.Equal(t, []string{"first", "second", "last without newline"}, lines)
}

func TestListenStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	lines, err := collect(t, ctx, "first\nsecond\n")

	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, lines)
}
