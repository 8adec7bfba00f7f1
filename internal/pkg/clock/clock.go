// Package clock provides time utilities for the application
package clock

import "time"

// Clock provides time functionality. Transport timing goes through it so
// tests can pin request durations.
type Clock interface {
	Now() time.Time
}

// Real implements Clock using actual system time
type Real struct{}

// Now returns the current time
func (c *Real) Now() time.Time {
	return time.Now()
}

// New returns a new real clock
func New() Clock {
	return &Real{}
}

// Fixed is a Clock that advances by Step on every call to Now.
// Useful for deterministic durations in tests.
type Fixed struct {
	Current time.Time
	Step    time.Duration
}

// Now returns the current instant and advances the clock by Step
func (f *Fixed) Now() time.Time {
	now := f.Current
	f.Current = f.Current.Add(f.Step)
	return now
}
