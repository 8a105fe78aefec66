// Package datestest checks that a façade honours the shared contract.
package datestest

import (
	"sync"
	"testing"
	"time"
	// the zoned cases must not depend on the host zone database
	_ "time/tzdata"

	"github.com/lucax88x/datekit/internal/clock"
	"github.com/lucax88x/datekit/internal/dates"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Builder creates the façade under test with the given clock and location.
type Builder func(clock clock.Clock, loc *time.Location) dates.Operations

//nolint:gochecknoglobals // ok
var (
	Reference = time.Date(2025, time.September, 26, 10, 45, 30, 0, time.UTC)
	Earlier   = time.Date(2025, time.September, 20, 8, 30, 0, 0, time.UTC)
)

func utc(year int, month time.Month, day, hour, minute, second int) time.Time {
	return time.Date(year, month, day, hour, minute, second, 0, time.UTC)
}

func Run(t *testing.T, build Builder) {
	t.Helper()

	f := build(clock.NewFixedClock(Reference.Add(2*time.Hour)), time.UTC)

	t.Run("formatters", func(t *testing.T) {
		testCases := []struct {
			Description string
			format      func(any) string
			expected    string
		}{
			{"iso date", f.IsoDate, "2025-09-26"},
			{"short date", f.ShortDate, "Sep 26, 2025"},
			{"long date", f.LongDate, "Friday, September 26, 2025"},
			{"date time", f.DateTime, "09/26/2025 10:45 AM"},
			{"readable date time", f.ReadableDateTime, "Sep 26, 2025 • 10:45 AM"},
			{"time only", f.TimeOnly, "10:45:30"},
			{"12 hour time", f.Time12Hour, "10:45 AM"},
			{"month and year", f.MonthYear, "September 2025"},
			{"year", f.Year, "2025"},
		}

		for _, tc := range testCases {
			t.Run(tc.Description, func(t *testing.T) {
				assert.Equal(t, tc.expected, tc.format(Reference))
			})
		}
	})

	t.Run("custom templates", func(t *testing.T) {
		assert.Equal(t, "26/09/2025", f.Custom(Reference, "DD/MM/YYYY"))
		assert.Equal(t, "2025-09-26 10:45", f.Custom(Reference, "YYYY-MM-DD HH:mm"))
		assert.Equal(t, "5/3/25 7:8:9", f.Custom(utc(2025, time.March, 5, 7, 8, 9), "D/M/YY H:m:s"))
		assert.Equal(t, "3:05 pm", f.Custom(utc(2025, time.March, 5, 15, 5, 0), "h:mm a"))
		assert.Equal(t, "Today is Friday", f.Custom(Reference, "[Today is] dddd"))
		assert.Equal(t, "1758883530", f.Custom(Reference, "X"))
	})

	t.Run("ordinals, quarters and days of the year", func(t *testing.T) {
		assert.Equal(t, "26th of September, Q3, 269 269, 5", f.Custom(Reference, "Do [of] MMMM, [Q]Q, DDD DDDD, E"))
		assert.Equal(t, "1st 060 60 Q1", f.Custom(utc(2025, time.March, 1, 0, 0, 0), "Do DDDD DDD [Q]Q"))
		assert.Equal(t, "2nd 3rd 11th 22nd", f.Custom(utc(2025, time.March, 2, 0, 0, 0), "Do")+" "+
			f.Custom(utc(2025, time.March, 3, 0, 0, 0), "Do")+" "+
			f.Custom(utc(2025, time.March, 11, 0, 0, 0), "Do")+" "+
			f.Custom(utc(2025, time.March, 22, 0, 0, 0), "Do"))
		assert.Equal(t, "7 0", f.Custom(utc(2025, time.September, 21, 0, 0, 0), "E d"))
		assert.Equal(t, "Q4", f.Custom(utc(2025, time.December, 31, 0, 0, 0), "[Q]Q"))
	})

	t.Run("afternoon and midnight hours", func(t *testing.T) {
		assert.Equal(t, "03:05 PM", f.Time12Hour(utc(2025, time.March, 5, 15, 5, 0)))
		assert.Equal(t, "23:59:00", f.TimeOnly(utc(2025, time.March, 5, 23, 59, 0)))
	})

	t.Run("iso date time", func(t *testing.T) {
		result := f.IsoDateTime(Reference)
		assert.Regexp(t, `^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}`, result)
		assert.Contains(t, result, "2025-09-26T10:45:30")
	})

	t.Run("unix timestamp", func(t *testing.T) {
		assert.Equal(t, int64(1758883530), f.UnixTimestamp(Reference))
	})

	t.Run("relative time", func(t *testing.T) {
		assert.Equal(t, "2 hours ago", f.RelativeTime(Reference))
		assert.Equal(t, "6 days from now", f.RelativeTimeTo(Reference, Earlier))
		assert.Equal(t, "6 days ago", f.RelativeTimeTo(Earlier, Reference))
	})

	t.Run("add and subtract", func(t *testing.T) {
		assert.Equal(t, utc(2025, time.October, 1, 10, 45, 30), f.Add(Reference, 5, "days"))
		assert.Equal(t, 7, f.Subtract(Reference, 3, "hours").Hour())
		assert.Equal(t, utc(2025, time.September, 26, 10, 46, 0), f.Add(Reference, 30, dates.Second))
		assert.Equal(t, utc(2025, time.October, 10, 10, 45, 30), f.Add(Reference, 2, dates.Week))
		assert.Equal(t, utc(2026, time.March, 26, 10, 45, 30), f.Add(Reference, 2, dates.Quarter))
		assert.Equal(t, utc(2025, time.September, 26, 10, 45, 29), f.Add(Reference, -1000, dates.Millisecond))
		assert.Equal(t, utc(2025, time.September, 26, 10, 45, 30).Add(1500*time.Millisecond), f.Add(Reference, 1500, dates.Millisecond))
	})

	t.Run("large clock shifts do not overflow", func(t *testing.T) {
		far := f.Add(Reference, 1<<40, dates.Hour)

		assert.True(t, far.After(Reference))
		assert.Greater(t, far.Year(), 125_000_000)
		assert.Equal(t, Reference, f.Subtract(far, 1<<40, dates.Hour))

		back := f.Subtract(Reference, 1<<40, "minutes")
		assert.True(t, back.Before(Reference))
		assert.Equal(t, Reference, f.Add(back, 1<<40, dates.Minute))
	})

	t.Run("month overflow clamps to the end of the month", func(t *testing.T) {
		next := f.Add(utc(2025, time.January, 31, 0, 0, 0), 1, "month")
		assert.Equal(t, time.February, next.Month())
		assert.Equal(t, utc(2025, time.February, 28, 0, 0, 0), next)

		assert.Equal(t, utc(2024, time.February, 29, 0, 0, 0), f.Add(utc(2024, time.January, 31, 0, 0, 0), 1, "M"))
		assert.Equal(t, utc(2025, time.February, 28, 0, 0, 0), f.Add(utc(2024, time.February, 29, 0, 0, 0), 1, dates.Year))
		assert.Equal(t, utc(2024, time.November, 30, 0, 0, 0), f.Subtract(utc(2025, time.March, 31, 0, 0, 0), 4, dates.Month))
	})

	t.Run("start of", func(t *testing.T) {
		testCases := []struct {
			Description string
			unit        dates.Unit
			expected    time.Time
		}{
			{"year", dates.Year, utc(2025, time.January, 1, 0, 0, 0)},
			{"quarter", dates.Quarter, utc(2025, time.July, 1, 0, 0, 0)},
			{"month", dates.Month, utc(2025, time.September, 1, 0, 0, 0)},
			{"week starts on sunday", dates.Week, utc(2025, time.September, 21, 0, 0, 0)},
			{"day", dates.Day, utc(2025, time.September, 26, 0, 0, 0)},
			{"hour", dates.Hour, utc(2025, time.September, 26, 10, 0, 0)},
			{"minute", dates.Minute, utc(2025, time.September, 26, 10, 45, 0)},
		}

		for _, tc := range testCases {
			t.Run(tc.Description, func(t *testing.T) {
				assert.Equal(t, tc.expected, f.StartOf(Reference, tc.unit))
			})
		}
	})

	t.Run("end of", func(t *testing.T) {
		last := func(t time.Time) time.Time {
			return t.Add(-time.Nanosecond)
		}

		testCases := []struct {
			Description string
			unit        dates.Unit
			expected    time.Time
		}{
			{"year", dates.Year, last(utc(2026, time.January, 1, 0, 0, 0))},
			{"quarter", dates.Quarter, last(utc(2025, time.October, 1, 0, 0, 0))},
			{"month", dates.Month, last(utc(2025, time.October, 1, 0, 0, 0))},
			{"week ends on saturday", dates.Week, last(utc(2025, time.September, 28, 0, 0, 0))},
			{"day", dates.Day, last(utc(2025, time.September, 27, 0, 0, 0))},
			{"hour", dates.Hour, last(utc(2025, time.September, 26, 11, 0, 0))},
		}

		for _, tc := range testCases {
			t.Run(tc.Description, func(t *testing.T) {
				assert.Equal(t, tc.expected, f.EndOf(Reference, tc.unit))
			})
		}

		end := f.EndOf(Reference, "day")
		assert.Equal(t, 23, end.Hour())
		assert.Equal(t, 59, end.Minute())
		assert.Equal(t, 59, end.Second())
	})

	t.Run("comparisons", func(t *testing.T) {
		middle := utc(2025, time.September, 23, 0, 0, 0)

		assert.True(t, f.IsBefore(Earlier, Reference))
		assert.False(t, f.IsBefore(Reference, Earlier))
		assert.True(t, f.IsAfter(Reference, Earlier))
		assert.False(t, f.IsAfter(Earlier, Reference))
		assert.True(t, f.IsBetween(middle, Earlier, Reference))
		assert.False(t, f.IsBetween(Earlier, middle, Reference))
		assert.False(t, f.IsBetween(Earlier, Earlier, Reference), "bounds are exclusive")
	})

	t.Run("diff", func(t *testing.T) {
		assert.Equal(t, int64(6), f.Diff(Reference, Earlier, "days"))
		assert.Greater(t, f.Diff(Reference, Earlier, "hours"), int64(140))
		assert.Equal(t, int64(146), f.Diff(Reference, Earlier, dates.Hour))
		assert.Equal(t, int64(526530000), f.Diff(Reference, Earlier))
		assert.Equal(t, int64(-6), f.Diff(Earlier, Reference, dates.Day))
		assert.Equal(t, int64(0), f.Diff(Reference, Earlier, dates.Week))

		assert.Equal(t, int64(2), f.Diff(utc(2025, time.March, 31, 0, 0, 0), utc(2025, time.January, 31, 0, 0, 0), dates.Month))
		assert.Equal(t, int64(1), f.Diff(utc(2025, time.February, 28, 0, 0, 0), utc(2025, time.January, 31, 0, 0, 0), dates.Month))
		assert.Equal(t, int64(0), f.Diff(utc(2025, time.February, 27, 0, 0, 0), utc(2025, time.January, 31, 0, 0, 0), dates.Month))
		assert.Equal(t, int64(-1), f.Diff(utc(2025, time.January, 1, 0, 0, 0), utc(2025, time.February, 1, 0, 0, 0), dates.Month))
		assert.Equal(t, int64(4), f.Diff(Reference, utc(2020, time.September, 27, 0, 0, 0), dates.Year))
		assert.Equal(t, int64(1), f.Diff(Reference, utc(2025, time.June, 1, 0, 0, 0), dates.Quarter))
	})

	t.Run("diff truncates toward zero below a second", func(t *testing.T) {
		later := Reference.Add(1500 * time.Microsecond)
		earlier := Reference.Add(600 * time.Microsecond)

		assert.Equal(t, int64(0), f.Diff(later, earlier))
		assert.Equal(t, int64(-1), f.Diff(Reference, later))
		assert.Equal(t, int64(0), f.Diff(Reference, Reference.Add(59500*time.Millisecond), dates.Minute))
		assert.Equal(t, int64(-59), f.Diff(Reference, Reference.Add(59500*time.Millisecond), dates.Second))
	})

	t.Run("diff over centuries", func(t *testing.T) {
		end := utc(2500, time.January, 1, 0, 0, 0)
		start := utc(1900, time.January, 1, 0, 0, 0)

		assert.Equal(t, int64(219146), f.Diff(end, start, dates.Day))
		assert.Equal(t, int64(-219146), f.Diff(start, end, dates.Day))
		assert.Equal(t, int64(31306), f.Diff(end, start, dates.Week))
		assert.Equal(t, int64(5259504), f.Diff(end, start, dates.Hour))
		assert.Equal(t, int64(18934214400000), f.Diff(end, start))
		assert.Equal(t, int64(600), f.Diff(end, start, dates.Year))
	})

	t.Run("validity", func(t *testing.T) {
		assert.True(t, f.IsValid(Reference))
		assert.True(t, f.IsValid(utc(2025, time.September, 26, 0, 0, 0)))
		assert.True(t, f.IsValid("2025-09-26"))
		assert.True(t, f.IsValid(Reference.UnixMilli()))
		assert.False(t, f.IsValid("invalid-date"))
		assert.False(t, f.IsValid(time.Time{}))
		assert.False(t, f.IsValid(nil))
		assert.False(t, f.IsValid(struct{}{}))
		assert.False(t, f.IsValid(1e300))
		assert.False(t, f.IsValid(int64(dates.MaxEpochMillis+1)))
		assert.True(t, f.IsValid(int64(dates.MaxEpochMillis)))
		assert.Equal(t, dates.InvalidDate, f.IsoDate(1e300))
	})

	t.Run("invalid input degrades silently", func(t *testing.T) {
		assert.Equal(t, dates.InvalidDate, f.IsoDate("invalid-date"))
		assert.Equal(t, dates.InvalidDate, f.Custom(time.Time{}, "YYYY"))
		assert.Equal(t, dates.InvalidDate, f.RelativeTimeTo(Reference, "invalid-date"))
		assert.Equal(t, int64(0), f.UnixTimestamp("invalid-date"))
		assert.True(t, f.Add("invalid-date", 1, dates.Day).IsZero())
		assert.True(t, f.StartOf("invalid-date", dates.Day).IsZero())
		assert.Equal(t, int64(0), f.Diff("invalid-date", Reference, dates.Day))
		assert.False(t, f.IsBefore("invalid-date", Reference))
		assert.False(t, f.IsAfter(Reference, "invalid-date"))
	})

	t.Run("unknown unit leaves the date unchanged", func(t *testing.T) {
		assert.Equal(t, Reference, f.Add(Reference, 1, "fortnight"))
		assert.Equal(t, Reference, f.StartOf(Reference, "fortnight"))
		assert.Equal(t, int64(526530000), f.Diff(Reference, Earlier, "fortnight"))
	})

	t.Run("date-like inputs", func(t *testing.T) {
		assert.Equal(t, "2025-09-26", f.IsoDate("2025-09-26"))
		assert.Equal(t, "2025-09-26", f.IsoDate(Reference.UnixMilli()))
		assert.Equal(t, "2025-09-26", f.IsoDate(&Reference))
		assert.Equal(t, "2025-09-26", f.IsoDate("2025-09-26T10:45:30Z"))
		assert.Equal(t, "2024-02-29", f.IsoDate(utc(2024, time.February, 29, 0, 0, 0)))
		assert.True(t, f.IsValid(utc(2024, time.February, 29, 0, 0, 0)))
	})

	t.Run("iso date survives a format and parse cycle", func(t *testing.T) {
		for _, value := range []any{Reference, Earlier, "2024-02-29", utc(1999, time.December, 31, 23, 59, 59)} {
			formatted := f.IsoDate(value)
			require.NotEqual(t, dates.InvalidDate, formatted)
			assert.Equal(t, formatted, f.IsoDate(formatted))
		}
	})

	t.Run("day diffs follow the wall clock across daylight saving", func(t *testing.T) {
		newYork, err := time.LoadLocation("America/New_York")
		require.NoError(t, err)

		zoned := build(clock.NewFixedClock(Reference), newYork)
		local := func(month time.Month, day int) time.Time {
			return time.Date(2025, month, day, 0, 0, 0, 0, newYork)
		}

		// spring forward: 23 hours make a day
		assert.Equal(t, int64(1), zoned.Diff(local(time.March, 10), local(time.March, 9), dates.Day))
		assert.Equal(t, int64(23), zoned.Diff(local(time.March, 10), local(time.March, 9), dates.Hour))
		assert.Equal(t, int64(-1), zoned.Diff(local(time.March, 9), local(time.March, 10), dates.Day))
		assert.Equal(t, int64(1), zoned.Diff(local(time.March, 16), local(time.March, 9), dates.Week))

		// fall back: 25 hours make a day
		assert.Equal(t, int64(1), zoned.Diff(local(time.November, 3), local(time.November, 2), dates.Day))
		assert.Equal(t, int64(25), zoned.Diff(local(time.November, 3), local(time.November, 2), dates.Hour))

		assert.Equal(t, local(time.March, 10), zoned.Add(local(time.March, 9), 1, dates.Day))
		assert.Equal(t, "2025-03-10 01:00", zoned.Custom(zoned.Add(local(time.March, 9), 24, dates.Hour), "YYYY-MM-DD HH:mm"))
	})

	t.Run("safe for concurrent use", func(t *testing.T) {
		var wg sync.WaitGroup
		results := make([]string, 32)

		for i := range results {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				results[i] = f.LongDate(f.Add(Reference, i, dates.Day))
			}(i)
		}

		wg.Wait()

		assert.Equal(t, "Friday, September 26, 2025", results[0])
		assert.Equal(t, "Saturday, September 27, 2025", results[1])
	})
}
