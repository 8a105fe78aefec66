package dates

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownUnit = errors.New("unknown unit")

type Unit string

const (
	Millisecond Unit = "millisecond"
	Second      Unit = "second"
	Minute      Unit = "minute"
	Hour        Unit = "hour"
	Day         Unit = "day"
	Week        Unit = "week"
	Month       Unit = "month"
	Quarter     Unit = "quarter"
	Year        Unit = "year"
)

//nolint:gochecknoglobals // ok
var Units = []Unit{Millisecond, Second, Minute, Hour, Day, Week, Month, Quarter, Year}

// short aliases are case sensitive: "M" is a month, "m" a minute
//
//nolint:gochecknoglobals // ok
var shortUnits = map[string]Unit{
	"ms": Millisecond,
	"s":  Second,
	"m":  Minute,
	"h":  Hour,
	"d":  Day,
	"w":  Week,
	"M":  Month,
	"Q":  Quarter,
	"y":  Year,
}

// Normalize maps plural, capitalised and short spellings to the canonical unit.
func (u Unit) Normalize() (Unit, bool) {
	raw := strings.TrimSpace(string(u))

	if short, ok := shortUnits[raw]; ok {
		return short, true
	}

	name := strings.TrimSuffix(strings.ToLower(raw), "s")

	for _, unit := range Units {
		if name == string(unit) {
			return unit, true
		}
	}

	return u, false
}

func ParseUnit(raw string) (Unit, error) {
	unit, ok := Unit(raw).Normalize()

	if !ok {
		return "", fmt.Errorf("dates: %w '%s'", ErrUnknownUnit, raw)
	}

	return unit, nil
}
