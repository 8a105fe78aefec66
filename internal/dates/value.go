package dates

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var ErrInvalidDate = errors.New("invalid date")

// MaxEpochMillis bounds epoch inputs, 100 million days either side of
// 1970 as for an ECMAScript Date.
const MaxEpochMillis = 8_640_000_000_000_000

// Timer is implemented by values that already wrap an instant.
type Timer interface {
	Time() time.Time
}

// Parse resolves a date-like value into an instant in loc.
//
// Accepted values: time.Time (the zero value is invalid), *time.Time,
// Timer, strings understood by dateparse, and numbers holding epoch
// milliseconds (int, int64, float64, json.Number).
func Parse(value any, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}

	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return time.Time{}, fmt.Errorf("dates: zero time. %w", ErrInvalidDate)
		}
		return v.In(loc), nil
	case *time.Time:
		if v == nil {
			return time.Time{}, fmt.Errorf("dates: nil time. %w", ErrInvalidDate)
		}
		return Parse(*v, loc)
	case Timer:
		return Parse(v.Time(), loc)
	case string:
		return parseString(v, loc)
	case int:
		return fromMillis(int64(v), loc)
	case int64:
		return fromMillis(v, loc)
	case float64:
		return fromFloatMillis(v, loc)
	case json.Number:
		if ms, err := v.Int64(); err == nil {
			return fromMillis(ms, loc)
		}
		ms, err := v.Float64()
		if err != nil {
			return time.Time{}, fmt.Errorf("dates: %w. %w", ErrInvalidDate, err)
		}
		return fromFloatMillis(ms, loc)
	case nil:
		return time.Time{}, fmt.Errorf("dates: nil value. %w", ErrInvalidDate)
	default:
		return time.Time{}, fmt.Errorf("dates: unsupported type %T. %w", value, ErrInvalidDate)
	}
}

// Resolve is Parse for callers that only care whether the value is a date.
func Resolve(value any, loc *time.Location) (time.Time, bool) {
	t, err := Parse(value, loc)
	return t, err == nil
}

func parseString(raw string, loc *time.Location) (time.Time, error) {
	trimmed := strings.TrimSpace(raw)

	if trimmed == "" {
		return time.Time{}, fmt.Errorf("dates: empty string. %w", ErrInvalidDate)
	}

	t, err := dateparse.ParseIn(trimmed, loc)

	if err != nil {
		return time.Time{}, fmt.Errorf("dates: could not parse '%s'. %w. %w", trimmed, ErrInvalidDate, err)
	}

	return t.In(loc), nil
}

func fromMillis(ms int64, loc *time.Location) (time.Time, error) {
	if ms > MaxEpochMillis || ms < -MaxEpochMillis {
		return time.Time{}, fmt.Errorf("dates: %d ms is out of range. %w", ms, ErrInvalidDate)
	}
	return time.UnixMilli(ms).In(loc), nil
}

// fromFloatMillis checks the range before converting, as converting an
// out of range float64 to int64 is implementation defined.
func fromFloatMillis(ms float64, loc *time.Location) (time.Time, error) {
	if math.IsNaN(ms) || math.IsInf(ms, 0) || math.Abs(ms) > MaxEpochMillis {
		return time.Time{}, fmt.Errorf("dates: %v is not a timestamp. %w", ms, ErrInvalidDate)
	}
	return fromMillis(int64(ms), loc)
}
