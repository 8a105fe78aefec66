package joda_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/lucax88x/datekit/internal/clock"
	"github.com/lucax88x/datekit/internal/dates"
	"github.com/lucax88x/datekit/internal/dates/datestest"
	"github.com/lucax88x/datekit/internal/dates/joda"
	"github.com/stretchr/testify/assert"
)

func TestConformance(t *testing.T) {
	datestest.Run(t, func(c clock.Clock, loc *time.Location) dates.Operations {
		return joda.New(slog.New(slog.DiscardHandler), c, loc)
	})
}

func TestName(t *testing.T) {
	f := joda.New(nil, clock.NewSystemClock(), time.UTC)

	assert.Equal(t, "joda", f.Name())
}

func TestWeekdayNumberStartsOnSunday(t *testing.T) {
	f := joda.New(nil, clock.NewSystemClock(), time.UTC)

	sunday := time.Date(2025, time.September, 21, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, "0", f.Custom(sunday, "d"))
	assert.Equal(t, "5", f.Custom(datestest.Reference, "d"))
}

func TestFormatsInTheConfiguredLocation(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*60*60)
	f := joda.New(nil, clock.NewSystemClock(), loc)

	assert.Equal(t, "18:45:30", f.TimeOnly(datestest.Reference))
	assert.Equal(t, "2025-09-26 00:00", f.Custom("2025-09-26", "YYYY-MM-DD HH:mm"))
}
