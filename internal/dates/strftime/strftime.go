// Package strftime is the date façade backed by leekchan/timeutil, whose
// Strftime renders C-style directives, and go-humanize with moment-like
// relative time thresholds.
package strftime

import (
	"log/slog"
	"math"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/leekchan/timeutil"
	"github.com/lucax88x/datekit/internal/clock"
	"github.com/lucax88x/datekit/internal/dates"
)

const Name = "strftime"

const day = 24 * time.Hour

type Engine struct{}

func New(logger *slog.Logger, clock clock.Clock, loc *time.Location) *dates.Facade {
	return dates.NewFacade(logger, clock, loc, Engine{})
}

//nolint:gochecknoglobals // ok
var vocabulary = dates.Vocabulary{
	"YYYY": {Spec: "%Y"},
	"YY":   {Spec: "%y"},
	"MMMM": {Spec: "%B"},
	"MMM":  {Spec: "%b"},
	"MM":   {Spec: "%m"},
	"M":    {Spec: "%m", Post: dates.TrimZero},
	"Q":    {Spec: "%m", Post: dates.QuarterOf},
	"DDDD": {Spec: "%j"},
	"DDD":  {Spec: "%j", Post: dates.TrimZeros},
	"DD":   {Spec: "%d"},
	"Do":   {Spec: "%d", Post: dates.Ordinal},
	"D":    {Spec: "%d", Post: dates.TrimZero},
	"dddd": {Spec: "%A"},
	"ddd":  {Spec: "%a"},
	"d":    {Spec: "%w"},
	"E":    {Spec: "%w", Post: dates.IsoWeekday},
	"HH":   {Spec: "%H"},
	"H":    {Spec: "%H", Post: dates.TrimZero},
	"hh":   {Spec: "%I"},
	"h":    {Spec: "%I", Post: dates.TrimZero},
	"mm":   {Spec: "%M"},
	"m":    {Spec: "%M", Post: dates.TrimZero},
	"ss":   {Spec: "%S"},
	"s":    {Spec: "%S", Post: dates.TrimZero},
	"SSS":  {Spec: "%f", Post: dates.Millis},
	"A":    {Spec: "%p"},
	"a":    {Spec: "%p", Post: dates.Lower},
	"ZZ":   {Spec: "%z"},
	"Z":    {Spec: "%z", Post: dates.ZoneColon},
}

// thresholds follow moment's relative time table
//
//nolint:gochecknoglobals // ok
var magnitudes = []humanize.RelTimeMagnitude{
	{D: 45 * time.Second, Format: "a few seconds %s", DivBy: 1},
	{D: 90 * time.Second, Format: "a minute %s", DivBy: 1},
	{D: 45 * time.Minute, Format: "%d minutes %s", DivBy: time.Minute},
	{D: 90 * time.Minute, Format: "an hour %s", DivBy: 1},
	{D: 22 * time.Hour, Format: "%d hours %s", DivBy: time.Hour},
	{D: 36 * time.Hour, Format: "a day %s", DivBy: 1},
	{D: 26 * day, Format: "%d days %s", DivBy: day},
	{D: 45 * day, Format: "a month %s", DivBy: 1},
	{D: 320 * day, Format: "%d months %s", DivBy: 30 * day},
	{D: 548 * day, Format: "a year %s", DivBy: 1},
	{D: math.MaxInt64, Format: "%d years %s", DivBy: 365 * day},
}

func render(t time.Time, spec string) string {
	return timeutil.Strftime(&t, spec)
}

func (Engine) Name() string {
	return Name
}

func (Engine) Format(t time.Time, template string) string {
	return dates.Render(t, template, vocabulary, render)
}

func (Engine) Shift(t time.Time, amount int, unit dates.Unit) time.Time {
	switch unit {
	case dates.Year:
		return addMonths(t, 12*amount)
	case dates.Quarter:
		return addMonths(t, 3*amount)
	case dates.Month:
		return addMonths(t, amount)
	case dates.Week:
		return t.AddDate(0, 0, 7*amount)
	case dates.Day:
		return t.AddDate(0, 0, amount)
	case dates.Hour:
		return dates.Advance(t, amount, delta(timeutil.Timedelta{Hours: 1}))
	case dates.Minute:
		return dates.Advance(t, amount, delta(timeutil.Timedelta{Minutes: 1}))
	case dates.Second:
		return dates.Advance(t, amount, delta(timeutil.Timedelta{Seconds: 1}))
	case dates.Millisecond:
		return dates.Advance(t, amount, delta(timeutil.Timedelta{Milliseconds: 1}))
	default:
		return t
	}
}

// delta is the length of one step of a clock unit.
func delta(td timeutil.Timedelta) time.Duration {
	return td.Duration()
}

func (Engine) StartOf(t time.Time, unit dates.Unit) time.Time {
	y, m, d := t.Date()
	loc := t.Location()

	switch unit {
	case dates.Year:
		return time.Date(y, time.January, 1, 0, 0, 0, 0, loc)
	case dates.Quarter:
		return time.Date(y, m-(m-1)%3, 1, 0, 0, 0, 0, loc)
	case dates.Month:
		return time.Date(y, m, 1, 0, 0, 0, 0, loc)
	case dates.Week:
		return time.Date(y, m, d-int(t.Weekday()), 0, 0, 0, 0, loc)
	case dates.Day:
		return time.Date(y, m, d, 0, 0, 0, 0, loc)
	case dates.Hour:
		return time.Date(y, m, d, t.Hour(), 0, 0, 0, loc)
	case dates.Minute:
		return time.Date(y, m, d, t.Hour(), t.Minute(), 0, 0, loc)
	case dates.Second:
		return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), 0, loc)
	case dates.Millisecond:
		return t.Truncate(time.Millisecond)
	default:
		return t
	}
}

// EndOf is the last nanosecond before the next period starts.
func (e Engine) EndOf(t time.Time, unit dates.Unit) time.Time {
	start := e.StartOf(t, unit)
	return e.Shift(start, 1, unit).Add(-time.Nanosecond)
}

func (Engine) Diff(a, b time.Time, unit dates.Unit) int64 {
	return dates.Difference(a, b, unit, addMonths)
}

func (Engine) Relative(t, reference time.Time) string {
	return humanize.CustomRelTime(t, reference, "ago", "from now", magnitudes)
}

func addMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	target := m + time.Month(months)
	// day 0 of the following month is the last day of target
	last := time.Date(y, target+1, 0, 0, 0, 0, 0, time.UTC).Day()

	return time.Date(y, target, min(d, last), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

var _ dates.Engine = Engine{}
