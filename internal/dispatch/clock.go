package dispatch

import "time"

// Clock schedules the status auto-hide. Abstracted so tests can fire or
// withhold the hide deterministically instead of sleeping.
type Clock interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a scheduled call that can be cancelled before it fires.
type Timer interface {
	Stop() bool
}

// realClock delegates to the runtime timer.
type realClock struct{}

// NewClock returns the wall-clock implementation.
func NewClock() Clock {
	return realClock{}
}

func (realClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
