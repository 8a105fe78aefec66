package strftime_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/lucax88x/datekit/internal/clock"
	"github.com/lucax88x/datekit/internal/dates"
	"github.com/lucax88x/datekit/internal/dates/datestest"
	"github.com/lucax88x/datekit/internal/dates/strftime"
	"github.com/stretchr/testify/assert"
)

func TestConformance(t *testing.T) {
	datestest.Run(t, func(c clock.Clock, loc *time.Location) dates.Operations {
		return strftime.New(slog.New(slog.DiscardHandler), c, loc)
	})
}

func TestName(t *testing.T) {
	f := strftime.New(nil, clock.NewSystemClock(), time.UTC)

	assert.Equal(t, "strftime", f.Name())
}

func TestZoneOffsets(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*60*60)
	f := strftime.New(nil, clock.NewSystemClock(), loc)

	assert.Equal(t, "2025-09-26T18:45:30+08:00", f.IsoDateTime(datestest.Reference))
	assert.Equal(t, "+0800", f.Custom(datestest.Reference, "ZZ"))
}

func TestRelativeTimeThresholds(t *testing.T) {
	now := datestest.Reference
	f := strftime.New(nil, clock.NewFixedClock(now), time.UTC)

	testCases := []struct {
		Description string
		offset      time.Duration
		expected    string
	}{
		{"seconds", -10 * time.Second, "a few seconds ago"},
		{"one minute", -time.Minute, "a minute ago"},
		{"minutes", -10 * time.Minute, "10 minutes ago"},
		{"one hour", -time.Hour, "an hour ago"},
		{"one day in the future", 30 * time.Hour, "a day from now"},
		{"months", -90 * 24 * time.Hour, "3 months ago"},
		{"years", -3 * 365 * 24 * time.Hour, "3 years ago"},
	}

	for _, tc := range testCases {
		t.Run(tc.Description, func(t *testing.T) {
			assert.Equal(t, tc.expected, f.RelativeTime(now.Add(tc.offset)))
		})
	}
}
