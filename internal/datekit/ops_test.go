package datekit_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/lucax88x/datekit/cmd/cli/config/args"
	"github.com/lucax88x/datekit/internal/clock"
	"github.com/lucax88x/datekit/internal/datekit"
	"github.com/lucax88x/datekit/internal/dates"
	"github.com/lucax88x/datekit/internal/dates/datestest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reference = "2025-09-26T10:45:30Z"

func newFacade(t *testing.T, backend string) dates.Operations {
	t.Helper()

	facade, err := datekit.NewFacade(nil, clock.NewFixedClock(datestest.Reference), backend, time.UTC)
	require.NoError(t, err)

	return facade
}

func TestCall(t *testing.T) {
	testCases := []struct {
		Description string
		in          args.In
		expected    string
	}{
		{"iso date from string", args.In{Fn: "isoDate", Date: reference}, "2025-09-26"},
		{"iso date from epoch millis", args.In{Fn: "isoDate", Date: json.Number("1758883530000")}, "2025-09-26"},
		{"long date", args.In{Fn: "longDate", Date: reference}, "Friday, September 26, 2025"},
		{"relative time to", args.In{Fn: "relativeTimeTo", Date: "2025-09-20T10:45:30Z", To: reference}, "6 days ago"},
		{"unix timestamp", args.In{Fn: "unixTimestamp", Date: reference}, "1758883530"},
		{"custom", args.In{Fn: "custom", Date: reference, Template: "DD/MM/YYYY"}, "26/09/2025"},
		{"add a month clamps", args.In{Fn: "add", Date: "2025-01-31T00:00:00Z", Amount: 1, Unit: "month"}, "2025-02-28T00:00:00Z"},
		{"subtract days", args.In{Fn: "subtract", Date: reference, Amount: 6, Unit: "d"}, "2025-09-20T10:45:30Z"},
		{"start of day", args.In{Fn: "startOf", Date: reference, Unit: "day"}, "2025-09-26T00:00:00Z"},
		{"end of day", args.In{Fn: "endOf", Date: reference, Unit: "days"}, "2025-09-26T23:59:59.999999999Z"},
		{"is before", args.In{Fn: "isBefore", Date: "2025-09-20T08:30:00Z", To: reference}, "true"},
		{"is after", args.In{Fn: "isAfter", Date: "2025-09-20T08:30:00Z", To: reference}, "false"},
		{
			"is between",
			args.In{Fn: "isBetween", Date: "2025-09-23T00:00:00Z", Start: "2025-09-20T08:30:00Z", End: reference},
			"true",
		},
		{"diff in days", args.In{Fn: "diff", Date: reference, To: "2025-09-20T08:30:00Z", Unit: "days"}, "6"},
		{"diff defaults to millis", args.In{Fn: "diff", Date: reference, To: "2025-09-20T08:30:00Z"}, "526530000"},
		{"is valid", args.In{Fn: "isValid", Date: reference}, "true"},
		{"is not valid", args.In{Fn: "isValid", Date: "invalid-date"}, "false"},
		{"invalid date degrades", args.In{Fn: "isoDate", Date: "invalid-date"}, dates.InvalidDate},
		{"invalid date manipulation", args.In{Fn: "add", Date: "invalid-date", Amount: 1, Unit: "day"}, dates.InvalidDate},
	}

	for _, backend := range datekit.Backends() {
		facade := newFacade(t, backend)

		for _, tc := range testCases {
			t.Run(backend+" "+tc.Description, func(t *testing.T) {
				result, err := datekit.Call(facade, &tc.in)

				require.NoError(t, err)
				assert.Equal(t, tc.expected, result)
			})
		}
	}
}

func TestCallErrors(t *testing.T) {
	facade := newFacade(t, "joda")

	_, err := datekit.Call(facade, &args.In{Fn: "nope", Date: reference})
	require.ErrorIs(t, err, datekit.ErrUnknownOperation)

	_, err = datekit.Call(facade, &args.In{Fn: "add", Date: reference, Amount: 1, Unit: "fortnight"})
	require.ErrorIs(t, err, dates.ErrUnknownUnit)

	_, err = datekit.Call(facade, &args.In{Fn: "diff", Date: reference, To: reference, Unit: "fortnight"})
	require.ErrorIs(t, err, dates.ErrUnknownUnit)

	_, err = datekit.Call(facade, &args.In{Fn: "custom", Date: reference})
	require.Error(t, err)
}

func TestOperations(t *testing.T) {
	operations := datekit.Operations()

	assert.Len(t, operations, 23)
	assert.IsNonDecreasing(t, operations)
	assert.Contains(t, operations, "readableDateTime")
	assert.Contains(t, operations, "isBetween")
}

func TestNewFacade(t *testing.T) {
	facade, err := datekit.NewFacade(nil, clock.NewSystemClock(), "", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "joda", facade.Name())

	facade, err = datekit.NewFacade(nil, clock.NewSystemClock(), "strftime", time.UTC)
	require.NoError(t, err)
	assert.Equal(t, "strftime", facade.Name())

	_, err = datekit.NewFacade(nil, clock.NewSystemClock(), "moment", time.UTC)
	require.ErrorIs(t, err, datekit.ErrUnknownBackend)
}
