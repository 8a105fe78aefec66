package dates

import "time"

const (
	secondsPerMinute = 60
	secondsPerHour   = 60 * secondsPerMinute
	secondsPerDay    = 24 * secondsPerHour
	secondsPerWeek   = 7 * secondsPerDay
)

// MonthAdder moves t by whole months, clamping the day to the target month.
type MonthAdder func(t time.Time, months int) time.Time

// Difference is a-b in unit, truncated toward zero. Day and week diffs
// ignore zone offset changes between a and b; month, quarter and year
// diffs count calendar months with add. Clock units are counted on epoch
// seconds so spans longer than a time.Duration stay exact.
func Difference(a, b time.Time, unit Unit, add MonthAdder) int64 {
	switch unit {
	case Second:
		seconds, _ := span(a, b, 0)
		return seconds
	case Minute:
		seconds, _ := span(a, b, 0)
		return seconds / secondsPerMinute
	case Hour:
		seconds, _ := span(a, b, 0)
		return seconds / secondsPerHour
	case Day:
		seconds, _ := span(a, b, offsetShift(a, b))
		return seconds / secondsPerDay
	case Week:
		seconds, _ := span(a, b, offsetShift(a, b))
		return seconds / secondsPerWeek
	case Month:
		return monthsBetween(a, b, add)
	case Quarter:
		return monthsBetween(a, b, add) / 3
	case Year:
		return monthsBetween(a, b, add) / 12
	default:
		seconds, nanos := span(a, b, 0)
		return seconds*1000 + nanos/int64(time.Millisecond)
	}
}

// span is a-b plus shift seconds, split in whole seconds and nanoseconds
// that carry the same sign, so integer division truncates toward zero.
func span(a, b time.Time, shift int64) (int64, int64) {
	seconds := a.Unix() - b.Unix() + shift
	nanos := int64(a.Nanosecond() - b.Nanosecond())

	switch {
	case seconds > 0 && nanos < 0:
		seconds--
		nanos += int64(time.Second)
	case seconds < 0 && nanos > 0:
		seconds++
		nanos -= int64(time.Second)
	}

	return seconds, nanos
}

func offsetShift(a, b time.Time) int64 {
	_, offsetA := a.Zone()
	_, offsetB := b.Zone()
	return int64(offsetA - offsetB)
}

func monthsBetween(a, b time.Time, add MonthAdder) int64 {
	a = a.In(b.Location())
	months := (a.Year()-b.Year())*12 + int(a.Month()) - int(b.Month())
	anchor := add(b, months)

	switch {
	case months > 0 && anchor.After(a):
		months--
	case months < 0 && anchor.Before(a):
		months++
	}

	return int64(months)
}

// Advance moves t by amount steps of unit on the absolute timeline. The
// move is done on epoch seconds, so amounts whose total would overflow a
// time.Duration still land on the right instant. unit must divide or be
// a multiple of a second.
func Advance(t time.Time, amount int, unit time.Duration) time.Time {
	n := int64(amount)
	seconds := t.Unix()
	nanos := int64(t.Nanosecond())

	if unit >= time.Second {
		seconds += n * int64(unit/time.Second)
	} else {
		perSecond := int64(time.Second / unit)
		seconds += n / perSecond
		nanos += (n % perSecond) * int64(unit)
	}

	return time.Unix(seconds, nanos).In(t.Location())
}
