package datekit

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/lucax88x/datekit/cmd/cli/config/args"
	"github.com/lucax88x/datekit/internal/dates"
)

var ErrUnknownOperation = errors.New("unknown operation")

// Operation runs one façade function for a request and renders its result.
type Operation func(f dates.Operations, in *args.In) (string, error)

//nolint:gochecknoglobals // ok
var operations = map[string]Operation{
	"isoDate":          formatter(dates.Operations.IsoDate),
	"shortDate":        formatter(dates.Operations.ShortDate),
	"longDate":         formatter(dates.Operations.LongDate),
	"dateTime":         formatter(dates.Operations.DateTime),
	"readableDateTime": formatter(dates.Operations.ReadableDateTime),
	"timeOnly":         formatter(dates.Operations.TimeOnly),
	"time12Hour":       formatter(dates.Operations.Time12Hour),
	"relativeTime":     formatter(dates.Operations.RelativeTime),
	"isoDateTime":      formatter(dates.Operations.IsoDateTime),
	"monthYear":        formatter(dates.Operations.MonthYear),
	"year":             formatter(dates.Operations.Year),
	"relativeTimeTo": func(f dates.Operations, in *args.In) (string, error) {
		return f.RelativeTimeTo(in.Date, in.To), nil
	},
	"unixTimestamp": func(f dates.Operations, in *args.In) (string, error) {
		return strconv.FormatInt(f.UnixTimestamp(in.Date), 10), nil
	},
	"custom": func(f dates.Operations, in *args.In) (string, error) {
		if in.Template == "" {
			return "", errors.New("datekit: custom needs a template")
		}
		return f.Custom(in.Date, in.Template), nil
	},
	"add":      shift(dates.Operations.Add),
	"subtract": shift(dates.Operations.Subtract),
	"startOf":  boundary(dates.Operations.StartOf),
	"endOf":    boundary(dates.Operations.EndOf),
	"isBefore": func(f dates.Operations, in *args.In) (string, error) {
		return strconv.FormatBool(f.IsBefore(in.Date, in.To)), nil
	},
	"isAfter": func(f dates.Operations, in *args.In) (string, error) {
		return strconv.FormatBool(f.IsAfter(in.Date, in.To)), nil
	},
	"isBetween": func(f dates.Operations, in *args.In) (string, error) {
		return strconv.FormatBool(f.IsBetween(in.Date, in.Start, in.End)), nil
	},
	"diff": func(f dates.Operations, in *args.In) (string, error) {
		if in.Unit == "" {
			return strconv.FormatInt(f.Diff(in.Date, in.To), 10), nil
		}

		unit, err := dates.ParseUnit(in.Unit)

		if err != nil {
			return "", err
		}

		return strconv.FormatInt(f.Diff(in.Date, in.To, unit), 10), nil
	},
	"isValid": func(f dates.Operations, in *args.In) (string, error) {
		return strconv.FormatBool(f.IsValid(in.Date)), nil
	},
}

func formatter(format func(dates.Operations, any) string) Operation {
	return func(f dates.Operations, in *args.In) (string, error) {
		return format(f, in.Date), nil
	}
}

func shift(move func(dates.Operations, any, int, dates.Unit) time.Time) Operation {
	return func(f dates.Operations, in *args.In) (string, error) {
		unit, err := dates.ParseUnit(in.Unit)

		if err != nil {
			return "", err
		}

		return instant(move(f, in.Date, in.Amount, unit)), nil
	}
}

func boundary(bound func(dates.Operations, any, dates.Unit) time.Time) Operation {
	return func(f dates.Operations, in *args.In) (string, error) {
		unit, err := dates.ParseUnit(in.Unit)

		if err != nil {
			return "", err
		}

		return instant(bound(f, in.Date, unit)), nil
	}
}

func instant(t time.Time) string {
	if t.IsZero() {
		return dates.InvalidDate
	}
	return t.Format(time.RFC3339Nano)
}

// Operations lists the names Call understands.
func Operations() []string {
	names := make([]string, 0, len(operations))

	for name := range operations {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func Call(f dates.Operations, in *args.In) (string, error) {
	operation, ok := operations[in.Fn]

	if !ok {
		return "", fmt.Errorf("datekit: %w '%s'", ErrUnknownOperation, in.Fn)
	}

	return operation(f, in)
}
