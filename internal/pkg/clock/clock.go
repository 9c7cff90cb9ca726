package clock

import "time"

type Clock interface {
	Now() time.Time
}

type realClock struct{}

// NewRealClock reports wall-clock time in UTC so stored timestamps compare
// consistently across hosts.
func NewRealClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

// Fixed always reports the same instant until it is moved.
type Fixed struct {
	now time.Time
}

func NewFixed(t time.Time) *Fixed {
	return &Fixed{now: t}
}

func (c *Fixed) Now() time.Time {
	return c.now
}

func (c *Fixed) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
