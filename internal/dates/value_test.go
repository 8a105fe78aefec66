package dates_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/lucax88x/datekit/internal/dates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type wrapped struct {
	at time.Time
}

func (w wrapped) Time() time.Time {
	return w.at
}

func TestParseAcceptsDateLikeValues(t *testing.T) {
	reference := time.Date(2025, time.September, 26, 10, 45, 30, 0, time.UTC)

	testCases := []struct {
		Description string
		input       any
	}{
		{"time", reference},
		{"time pointer", &reference},
		{"wrapped time", wrapped{reference}},
		{"iso string", "2025-09-26T10:45:30Z"},
		{"iso string without zone", "2025-09-26T10:45:30"},
		{"epoch milliseconds", reference.UnixMilli()},
		{"epoch milliseconds as int", int(reference.UnixMilli())},
		{"epoch milliseconds as float", float64(reference.UnixMilli())},
		{"epoch milliseconds as json number", json.Number("1758883530000")},
	}

	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			parsed, err := dates.Parse(tc.input, time.UTC)

			require.NoError(t, err)
			assert.True(t, reference.Equal(parsed), "got %s", parsed)
		})
	}
}

func TestParseRejectsInvalidValues(t *testing.T) {
	var nilTime *time.Time

	testCases := []struct {
		Description string
		input       any
	}{
		{"unparseable string", "invalid-date"},
		{"empty string", "  "},
		{"zero time", time.Time{}},
		{"nil time pointer", nilTime},
		{"nil", nil},
		{"not a number", math.NaN()},
		{"unsupported type", []int{1}},
		{"json number that is not a number", json.Number("1.5e")},
		{"infinity", math.Inf(1)},
		{"float past the last instant", 1e300},
		{"float before the first instant", -8.64e15 - 1},
		{"int64 past the last instant", int64(dates.MaxEpochMillis + 1)},
		{"int before the first instant", -dates.MaxEpochMillis - 1},
		{"json number past the last instant", json.Number("1e300")},
	}

	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			_, err := dates.Parse(tc.input, time.UTC)

			require.ErrorIs(t, err, dates.ErrInvalidDate)
		})
	}
}

func TestParseAcceptsTheEpochRangeBounds(t *testing.T) {
	last, err := dates.Parse(int64(dates.MaxEpochMillis), time.UTC)
	require.NoError(t, err)
	assert.Equal(t, 275760, last.Year())

	first, err := dates.Parse(float64(-dates.MaxEpochMillis), time.UTC)
	require.NoError(t, err)
	assert.Equal(t, -271821, first.Year())

	fractional, err := dates.Parse(json.Number("1758883530000.0"), time.UTC)
	require.NoError(t, err)
	assert.Equal(t, int64(1758883530), fractional.Unix())
}

func TestParseUsesTheGivenLocation(t *testing.T) {
	loc := time.FixedZone("UTC-5", -5*60*60)

	parsed, err := dates.Parse("2025-09-26", loc)

	require.NoError(t, err)
	assert.Equal(t, 0, parsed.Hour())
	assert.Equal(t, loc, parsed.Location())
}

func TestResolve(t *testing.T) {
	_, ok := dates.Resolve("2025-09-26", time.UTC)
	assert.True(t, ok)

	_, ok = dates.Resolve("invalid-date", time.UTC)
	assert.False(t, ok)
}
