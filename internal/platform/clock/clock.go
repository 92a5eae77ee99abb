package clock

import "time"

// Clock abstracts the wall clock so cache expiry and synthetic schedules can
// be tested against a fixed instant.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func System() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

// Fixed is a Clock pinned to a settable instant, for tests.
type Fixed struct {
	Instant time.Time
}

func NewFixed(at time.Time) *Fixed {
	return &Fixed{Instant: at}
}

func (f *Fixed) Now() time.Time {
	return f.Instant
}

// Advance moves the fixed clock forward.
func (f *Fixed) Advance(d time.Duration) {
	f.Instant = f.Instant.Add(d)
}
