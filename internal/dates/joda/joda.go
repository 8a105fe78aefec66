// Package joda is the date façade backed by jodaTime for formatting,
// jinzhu/now for period boundaries and go-humanize for relative time.
package joda

import (
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jinzhu/now"
	"github.com/lucax88x/datekit/internal/clock"
	"github.com/lucax88x/datekit/internal/dates"
	"github.com/vjeantet/jodaTime"
)

const Name = "joda"

type Engine struct{}

func New(logger *slog.Logger, clock clock.Clock, loc *time.Location) *dates.Facade {
	return dates.NewFacade(logger, clock, loc, Engine{})
}

//nolint:gochecknoglobals // ok
var vocabulary = dates.Vocabulary{
	"YYYY": {Spec: "yyyy"},
	"YY":   {Spec: "yy"},
	"MMMM": {Spec: "MMMM"},
	"MMM":  {Spec: "MMM"},
	"MM":   {Spec: "MM"},
	"M":    {Spec: "M"},
	"Q":    {Spec: "M", Post: dates.QuarterOf},
	"DDDD": {Spec: "D", Post: dates.PadDayOfYear},
	"DDD":  {Spec: "D"},
	"DD":   {Spec: "dd"},
	"Do":   {Spec: "d", Post: dates.Ordinal},
	"D":    {Spec: "d"},
	"dddd": {Spec: "EEEE"},
	"ddd":  {Spec: "EEE"},
	// jodaTime's e counts from Sunday as 0
	"d":   {Spec: "e"},
	"E":   {Spec: "e", Post: dates.IsoWeekday},
	"HH":  {Spec: "HH"},
	"H":   {Spec: "H"},
	"hh":  {Spec: "hh"},
	"h":   {Spec: "h"},
	"mm":  {Spec: "mm"},
	"m":   {Spec: "m"},
	"ss":  {Spec: "ss"},
	"s":   {Spec: "s"},
	"SSS": {Spec: "SSS"},
	"A":   {Spec: "a"},
	"a":   {Spec: "a", Post: dates.Lower},
	"ZZ":  {Spec: "Z"},
	"Z":   {Spec: "ZZ"},
}

func render(t time.Time, spec string) string {
	return jodaTime.Format(spec, t)
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
		return dates.Advance(t, amount, time.Hour)
	case dates.Minute:
		return dates.Advance(t, amount, time.Minute)
	case dates.Second:
		return dates.Advance(t, amount, time.Second)
	case dates.Millisecond:
		return dates.Advance(t, amount, time.Millisecond)
	default:
		return t
	}
}

func (Engine) StartOf(t time.Time, unit dates.Unit) time.Time {
	n := now.With(t)

	switch unit {
	case dates.Year:
		return n.BeginningOfYear()
	case dates.Quarter:
		return n.BeginningOfQuarter()
	case dates.Month:
		return n.BeginningOfMonth()
	case dates.Week:
		return n.BeginningOfWeek()
	case dates.Day:
		return n.BeginningOfDay()
	case dates.Hour:
		return n.BeginningOfHour()
	case dates.Minute:
		return n.BeginningOfMinute()
	case dates.Second:
		return t.Truncate(time.Second)
	case dates.Millisecond:
		return t.Truncate(time.Millisecond)
	default:
		return t
	}
}

func (e Engine) EndOf(t time.Time, unit dates.Unit) time.Time {
	n := now.With(t)

	switch unit {
	case dates.Year:
		return n.EndOfYear()
	case dates.Quarter:
		return n.EndOfQuarter()
	case dates.Month:
		return n.EndOfMonth()
	case dates.Week:
		return n.EndOfWeek()
	case dates.Day:
		return n.EndOfDay()
	case dates.Hour:
		return n.EndOfHour()
	case dates.Minute:
		return n.EndOfMinute()
	case dates.Second:
		return e.StartOf(t, unit).Add(time.Second - time.Nanosecond)
	case dates.Millisecond:
		return e.StartOf(t, unit).Add(time.Millisecond - time.Nanosecond)
	default:
		return t
	}
}

func (Engine) Diff(a, b time.Time, unit dates.Unit) int64 {
	return dates.Difference(a, b, unit, addMonths)
}

func (Engine) Relative(t, reference time.Time) string {
	return humanize.RelTime(t, reference, "ago", "from now")
}

// addMonths keeps the day of month unless the target month is shorter,
// in which case it lands on its last day.
func addMonths(t time.Time, months int) time.Time {
	first := now.With(t).BeginningOfMonth().AddDate(0, months, 0)
	last := now.With(first).EndOfMonth().Day()

	return time.Date(
		first.Year(),
		first.Month(),
		min(t.Day(), last),
		t.Hour(),
		t.Minute(),
		t.Second(),
		t.Nanosecond(),
		t.Location(),
	)
}

var _ dates.Engine = Engine{}
