package speech

import (
	"time"

	"fluentfield.org/boardgame-web/internal/clock"
)

// HoldThreshold is how long the pointer must stay down before the long-form
// utterance commits.
const HoldThreshold = 450 * time.Millisecond

type pressState int

const (
	pressIdle pressState = iota
	pressPending
	pressCommitted
)

// PressRecognizer distinguishes a tap from a press-and-hold on the pronounce
// control. A tap fires onTap on release; holding past the threshold fires
// onHold exactly once and swallows the release, so the two paths never both
// trigger for one gesture. Leaving the control cancels a pending hold
// without speaking.
type PressRecognizer struct {
	clk    clock.Clock
	hold   time.Duration
	onTap  func()
	onHold func()

	state pressState
	timer clock.Timer
}

// NewPressRecognizer wires the two gesture outcomes.
func NewPressRecognizer(clk clock.Clock, onTap, onHold func()) *PressRecognizer {
	return &PressRecognizer{clk: clk, hold: HoldThreshold, onTap: onTap, onHold: onHold}
}

// Down starts the hold timer. A second Down while a gesture is in flight
// restarts it.
func (r *PressRecognizer) Down() {
	r.cancelTimer()
	r.state = pressPending
	r.timer = r.clk.AfterFunc(r.hold, r.commit)
}

// Up ends the gesture. Before the threshold it is a tap; after the threshold
// the hold already committed and the release does nothing.
func (r *PressRecognizer) Up() {
	switch r.state {
	case pressPending:
		r.cancelTimer()
		r.state = pressIdle
		if r.onTap != nil {
			r.onTap()
		}
	case pressCommitted:
		r.state = pressIdle
	}
}

// Leave cancels a pending gesture without speaking, for pointer-out and
// touch-cancel events.
func (r *PressRecognizer) Leave() {
	r.cancelTimer()
	r.state = pressIdle
}

func (r *PressRecognizer) commit() {
	if r.state != pressPending {
		return
	}
	r.state = pressCommitted
	if r.onHold != nil {
		r.onHold()
	}
}

func (r *PressRecognizer) cancelTimer() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}
