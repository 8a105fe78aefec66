// Package dates holds what the date façades share: the operation set,
// the date-like inputs they accept, units, format templates and the
// invalid-date sentinel. The façades themselves live in the joda and
// strftime subpackages, one per wrapped library.
package dates

import (
	"time"
)

// InvalidDate is what every string formatter answers for input that does
// not resolve to a date.
const InvalidDate = "Invalid Date"

const (
	IsoDateTemplate          = "YYYY-MM-DD"
	ShortDateTemplate        = "MMM DD, YYYY"
	LongDateTemplate         = "dddd, MMMM DD, YYYY"
	DateTimeTemplate         = "MM/DD/YYYY hh:mm A"
	ReadableDateTimeTemplate = "MMM DD, YYYY • hh:mm A"
	TimeOnlyTemplate         = "HH:mm:ss"
	Time12HourTemplate       = "hh:mm A"
	IsoDateTimeTemplate      = "YYYY-MM-DDTHH:mm:ssZ"
	MonthYearTemplate        = "MMMM YYYY"
	YearTemplate             = "YYYY"
)

type Formatter interface {
	IsoDate(date any) string
	ShortDate(date any) string
	LongDate(date any) string
	DateTime(date any) string
	ReadableDateTime(date any) string
	TimeOnly(date any) string
	Time12Hour(date any) string
	RelativeTime(date any) string
	RelativeTimeTo(date any, to any) string
	IsoDateTime(date any) string
	UnixTimestamp(date any) int64
	MonthYear(date any) string
	Year(date any) string
	Custom(date any, template string) string
}

type Manipulator interface {
	Add(date any, amount int, unit Unit) time.Time
	Subtract(date any, amount int, unit Unit) time.Time
	StartOf(date any, unit Unit) time.Time
	EndOf(date any, unit Unit) time.Time
	IsBefore(date any, compare any) bool
	IsAfter(date any, compare any) bool
	IsBetween(date any, start any, end any) bool
	Diff(date1 any, date2 any, unit ...Unit) int64
	IsValid(date any) bool
}

// Operations is the full surface of a façade.
type Operations interface {
	Name() string
	Formatter
	Manipulator
}

// Engine is the library-specific half of a façade. Units handed to an
// engine are always canonical.
type Engine interface {
	Name() string
	Format(t time.Time, template string) string
	Shift(t time.Time, amount int, unit Unit) time.Time
	StartOf(t time.Time, unit Unit) time.Time
	EndOf(t time.Time, unit Unit) time.Time
	Diff(a, b time.Time, unit Unit) int64
	Relative(t, reference time.Time) string
}
