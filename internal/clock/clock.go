// Package clock isolates timer scheduling so the auto-scroll ticker and the
// long-press recognizer can be driven deterministically in tests.
package clock

import "time"

// Clock schedules deferred work.
type Clock interface {
	AfterFunc(d time.Duration, fn func()) Timer
}

// Timer is a cancellable scheduled call.
type Timer interface {
	Stop() bool
}

type systemClock struct{}

// System returns the wall clock.
func System() Clock { return systemClock{} }

func (systemClock) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}
