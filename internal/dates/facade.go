package dates

import (
	"log/slog"
	"time"

	"github.com/lucax88x/datekit/internal/clock"
)

// Facade exposes the formatting and manipulation set over one Engine.
// Input that does not resolve to a date never fails loudly: formatters
// answer InvalidDate, manipulations the zero time, comparisons false and
// Diff 0.
type Facade struct {
	logger *slog.Logger
	clock  clock.Clock
	loc    *time.Location
	engine Engine
}

func NewFacade(
	logger *slog.Logger,
	clock clock.Clock,
	loc *time.Location,
	engine Engine,
) *Facade {
	if loc == nil {
		loc = time.Local
	}

	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Facade{
		logger.With(slog.String("backend", engine.Name())),
		clock,
		loc,
		engine,
	}
}

func (f *Facade) Name() string {
	return f.engine.Name()
}

func (f *Facade) Location() *time.Location {
	return f.loc
}

func (f *Facade) resolve(value any) (time.Time, bool) {
	t, err := Parse(value, f.loc)

	if err != nil {
		f.logger.Debug("dates: invalid date input", slog.Any("value", value), slog.Any("error", err))
		return time.Time{}, false
	}

	return t, true
}

func (f *Facade) unit(unit Unit) (Unit, bool) {
	canonical, ok := unit.Normalize()

	if !ok {
		f.logger.Debug("dates: unknown unit", slog.String("unit", string(unit)))
	}

	return canonical, ok
}

func (f *Facade) format(date any, template string) string {
	t, ok := f.resolve(date)

	if !ok {
		return InvalidDate
	}

	return f.engine.Format(t, template)
}

func (f *Facade) IsoDate(date any) string {
	return f.format(date, IsoDateTemplate)
}

func (f *Facade) ShortDate(date any) string {
	return f.format(date, ShortDateTemplate)
}

func (f *Facade) LongDate(date any) string {
	return f.format(date, LongDateTemplate)
}

func (f *Facade) DateTime(date any) string {
	return f.format(date, DateTimeTemplate)
}

func (f *Facade) ReadableDateTime(date any) string {
	return f.format(date, ReadableDateTimeTemplate)
}

func (f *Facade) TimeOnly(date any) string {
	return f.format(date, TimeOnlyTemplate)
}

func (f *Facade) Time12Hour(date any) string {
	return f.format(date, Time12HourTemplate)
}

// RelativeTime describes date relative to the clock's now.
func (f *Facade) RelativeTime(date any) string {
	return f.RelativeTimeTo(date, f.clock.Now())
}

// RelativeTimeTo describes date relative to to, "2 days ago" when date
// is the earlier one.
func (f *Facade) RelativeTimeTo(date any, to any) string {
	t, ok := f.resolve(date)

	if !ok {
		return InvalidDate
	}

	reference, ok := f.resolve(to)

	if !ok {
		return InvalidDate
	}

	return f.engine.Relative(t, reference)
}

func (f *Facade) IsoDateTime(date any) string {
	return f.format(date, IsoDateTimeTemplate)
}

// UnixTimestamp is seconds since the epoch, 0 for invalid input.
func (f *Facade) UnixTimestamp(date any) int64 {
	t, ok := f.resolve(date)

	if !ok {
		return 0
	}

	return t.Unix()
}

func (f *Facade) MonthYear(date any) string {
	return f.format(date, MonthYearTemplate)
}

func (f *Facade) Year(date any) string {
	return f.format(date, YearTemplate)
}

func (f *Facade) Custom(date any, template string) string {
	return f.format(date, template)
}

func (f *Facade) Add(date any, amount int, unit Unit) time.Time {
	t, ok := f.resolve(date)

	if !ok {
		return time.Time{}
	}

	canonical, ok := f.unit(unit)

	if !ok {
		return t
	}

	return f.engine.Shift(t, amount, canonical)
}

func (f *Facade) Subtract(date any, amount int, unit Unit) time.Time {
	return f.Add(date, -amount, unit)
}

func (f *Facade) StartOf(date any, unit Unit) time.Time {
	t, ok := f.resolve(date)

	if !ok {
		return time.Time{}
	}

	canonical, ok := f.unit(unit)

	if !ok {
		return t
	}

	return f.engine.StartOf(t, canonical)
}

func (f *Facade) EndOf(date any, unit Unit) time.Time {
	t, ok := f.resolve(date)

	if !ok {
		return time.Time{}
	}

	canonical, ok := f.unit(unit)

	if !ok {
		return t
	}

	return f.engine.EndOf(t, canonical)
}

func (f *Facade) IsBefore(date any, compare any) bool {
	t, ok := f.resolve(date)
	other, okOther := f.resolve(compare)
	return ok && okOther && t.Before(other)
}

func (f *Facade) IsAfter(date any, compare any) bool {
	t, ok := f.resolve(date)
	other, okOther := f.resolve(compare)
	return ok && okOther && t.After(other)
}

// IsBetween excludes both bounds.
func (f *Facade) IsBetween(date any, start any, end any) bool {
	t, ok := f.resolve(date)
	from, okFrom := f.resolve(start)
	to, okTo := f.resolve(end)
	return ok && okFrom && okTo && t.After(from) && t.Before(to)
}

// Diff is date1-date2 in unit (milliseconds when omitted or unknown),
// truncated toward zero.
func (f *Facade) Diff(date1 any, date2 any, unit ...Unit) int64 {
	a, ok := f.resolve(date1)
	b, okB := f.resolve(date2)

	if !ok || !okB {
		return 0
	}

	canonical := Millisecond

	if len(unit) > 0 {
		if u, known := f.unit(unit[0]); known {
			canonical = u
		}
	}

	return f.engine.Diff(a, b, canonical)
}

func (f *Facade) IsValid(date any) bool {
	_, ok := f.resolve(date)
	return ok
}

var _ Operations = (*Facade)(nil)
