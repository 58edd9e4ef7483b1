package view

import (
	"time"

	"fluentfield.org/boardgame-web/internal/clock"
)

// Auto-scroll cadence: one unit every frame-ish interval, restarted shortly
// after each presentation re-render so the new content metrics apply.
const (
	ScrollInterval = 16 * time.Millisecond
	ScrollStep     = 1
	RestartDelay   = 250 * time.Millisecond
)

// Port is the scrollable strip the ticker drives. Content and viewport are
// extents in the scroll axis; offset is the current scroll position.
type Port interface {
	Metrics() (content, viewport, offset int)
	SetOffset(offset int)
}

// AutoScroller advances the presentation strip on a fixed interval, wrapping
// to the start at the end. It pauses while the pointer hovers the strip and
// resumes on leave. At most one schedule chain runs: Start cancels any
// previous one.
type AutoScroller struct {
	clk  clock.Clock
	port Port

	timer   clock.Timer
	running bool
	paused  bool
}

// NewAutoScroller builds a stopped scroller over the strip.
func NewAutoScroller(clk clock.Clock, port Port) *AutoScroller {
	return &AutoScroller{clk: clk, port: port}
}

// Start cancels any previous run and begins ticking, unless the content does
// not overflow the viewport.
func (s *AutoScroller) Start() {
	s.Stop()
	content, viewport, _ := s.port.Metrics()
	if content <= viewport+2 {
		return
	}
	s.running = true
	s.paused = false
	s.schedule()
}

// Stop cancels the tick chain.
func (s *AutoScroller) Stop() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.running = false
	s.paused = false
}

// Pause suspends ticking while the pointer is over the strip.
func (s *AutoScroller) Pause() {
	if s.running {
		s.paused = true
	}
}

// Resume restarts ticking after the pointer leaves. Metrics are re-checked
// since the content may have changed while paused.
func (s *AutoScroller) Resume() {
	if s.running && s.paused {
		s.Start()
	}
}

// Running reports whether a tick chain is active (paused counts as running).
func (s *AutoScroller) Running() bool { return s.running }

func (s *AutoScroller) schedule() {
	s.timer = s.clk.AfterFunc(ScrollInterval, s.tick)
}

func (s *AutoScroller) tick() {
	if !s.running || s.paused {
		return
	}
	content, viewport, offset := s.port.Metrics()
	if offset+viewport >= content-1 {
		s.port.SetOffset(0)
	} else {
		s.port.SetOffset(offset + ScrollStep)
	}
	s.schedule()
}
