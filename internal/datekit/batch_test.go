package datekit_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/lucax88x/datekit/cmd/cli/config"
	"github.com/lucax88x/datekit/internal/datekit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBatchKeepsOrder(t *testing.T) {
	facade := newFacade(t, "joda")

	lines := make([]string, 50)

	for i := range lines {
		lines[i] = fmt.Sprintf(
			`{"fn":"add","date":"2025-01-01T00:00:00Z","amount":%d,"unit":"day"}`,
			i,
		)
	}

	results, err := datekit.RunBatch(context.Background(), facade, lines, 4)
	require.NoError(t, err)
	require.Len(t, results, len(lines))

	for i, result := range results {
		assert.Equal(t, i+1, result.Line)
		assert.Equal(t, "add", result.Fn)
		assert.Empty(t, result.Error)
		assert.Equal(t, facade.Add("2025-01-01T00:00:00Z", i, "day").Format("2006-01-02T15:04:05Z07:00"), result.Result)
	}
}

func TestRunBatchReportsFailuresPerLine(t *testing.T) {
	facade := newFacade(t, "strftime")

	lines := []string{
		`{"fn":"isoDate","date":"2025-09-26T10:45:30Z"}`,
		`not json`,
		`{"fn":"explode","date":"2025-09-26T10:45:30Z"}`,
		`{"date":"2025-09-26T10:45:30Z"}`,
		`{"fn":"year","date":1758883530000}`,
	}

	results, err := datekit.RunBatch(context.Background(), facade, lines, 0)
	require.NoError(t, err)
	require.Len(t, results, 5)

	assert.Equal(t, "2025-09-26", results[0].Result)
	assert.NotEmpty(t, results[1].Error)
	assert.Equal(t, "explode", results[2].Fn)
	assert.Contains(t, results[2].Error, datekit.ErrUnknownOperation.Error())
	assert.Contains(t, results[3].Error, "missing fn")
	assert.Equal(t, "2025", results[4].Result)
	assert.Empty(t, results[4].Error)
}

func TestRunBatchStopsWhenCancelled(t *testing.T) {
	facade := newFacade(t, "joda")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := datekit.RunBatch(ctx, facade, []string{`{"fn":"year","date":"2025-09-26"}`}, 1)
	require.ErrorIs(t, err, context.Canceled)
}

func TestServe(t *testing.T) {
	cfg := config.Default()
	cfg.Timezone = "UTC"
	cfg.Concurrency = 2

	di, err := datekit.New(slog.New(slog.DiscardHandler), cfg)
	require.NoError(t, err)

	source := strings.NewReader(
		"{\"fn\":\"isoDate\",\"date\":\"2025-09-26T10:45:30Z\"}\n" +
			"\n" +
			"{\"fn\":\"isValid\",\"date\":\"invalid-date\"}\n",
	)

	var sink bytes.Buffer

	err = di.Serve(context.Background(), source, &sink)
	require.NoError(t, err)

	assert.Equal(
		t,
		"{\"line\":1,\"fn\":\"isoDate\",\"result\":\"2025-09-26\"}\n"+
			"{\"line\":2,\"fn\":\"isValid\",\"result\":\"false\"}\n",
		sink.String(),
	)
}
