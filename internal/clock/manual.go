package clock

import (
	"sort"
	"time"
)

// Manual is a deterministic Clock for tests. Scheduled calls fire only when
// Advance moves the fake time past their deadline.
type Manual struct {
	now    time.Time
	timers []*manualTimer
}

type manualTimer struct {
	clock    *Manual
	deadline time.Time
	fn       func()
	stopped  bool
	fired    bool
}

// NewManual returns a manual clock starting at the zero time.
func NewManual() *Manual { return &Manual{} }

// AfterFunc schedules fn to run when the clock has advanced by d.
func (m *Manual) AfterFunc(d time.Duration, fn func()) Timer {
	t := &manualTimer{clock: m, deadline: m.now.Add(d), fn: fn}
	m.timers = append(m.timers, t)
	return t
}

// Advance moves the clock forward and fires due timers in deadline order.
// Callbacks may schedule further timers; those fire too if they fall within
// the advanced window.
func (m *Manual) Advance(d time.Duration) {
	target := m.now.Add(d)
	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}
		m.now = next.deadline
		next.fired = true
		next.fn()
	}
	m.now = target
}

// Pending reports how many timers are scheduled and not yet fired or stopped.
func (m *Manual) Pending() int {
	n := 0
	for _, t := range m.timers {
		if !t.fired && !t.stopped {
			n++
		}
	}
	return n
}

func (m *Manual) nextDue(until time.Time) *manualTimer {
	due := make([]*manualTimer, 0, len(m.timers))
	for _, t := range m.timers {
		if !t.fired && !t.stopped && !t.deadline.After(until) {
			due = append(due, t)
		}
	}
	if len(due) == 0 {
		return nil
	}
	sort.Slice(due, func(i, j int) bool { return due[i].deadline.Before(due[j].deadline) })
	return due[0]
}

func (t *manualTimer) Stop() bool {
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}
