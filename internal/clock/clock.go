package clock

import "time"

type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func NewSystemClock() Clock {
	return &SystemClock{}
}

func (r *SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always answers the instant it was built with.
type FixedClock struct {
	at time.Time
}

func NewFixedClock(at time.Time) Clock {
	return &FixedClock{at}
}

func (r *FixedClock) Now() time.Time {
	return r.at
}
