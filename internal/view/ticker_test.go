package view

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fluentfield.org/boardgame-web/internal/clock"
)

type fakePort struct {
	content  int
	viewport int
	offset   int
}

func (p *fakePort) Metrics() (int, int, int) { return p.content, p.viewport, p.offset }
func (p *fakePort) SetOffset(o int)          { p.offset = o }

func TestScrollerAdvancesAndWraps(t *testing.T) {
	clk := clock.NewManual()
	port := &fakePort{content: 100, viewport: 90}
	s := NewAutoScroller(clk, port)

	s.Start()
	clk.Advance(5 * ScrollInterval)
	assert.Equal(t, 5, port.offset)

	// offset+viewport >= content-1 wraps to the start
	clk.Advance(4 * ScrollInterval)
	assert.Equal(t, 9, port.offset)
	clk.Advance(ScrollInterval)
	assert.Equal(t, 0, port.offset)
}

func TestScrollerSkipsNonOverflowingContent(t *testing.T) {
	clk := clock.NewManual()
	port := &fakePort{content: 90, viewport: 90}
	s := NewAutoScroller(clk, port)

	s.Start()
	assert.False(t, s.Running())
	clk.Advance(10 * ScrollInterval)
	assert.Zero(t, port.offset)
}

func TestScrollerPauseAndResume(t *testing.T) {
	clk := clock.NewManual()
	port := &fakePort{content: 1000, viewport: 100}
	s := NewAutoScroller(clk, port)

	s.Start()
	clk.Advance(3 * ScrollInterval)
	assert.Equal(t, 3, port.offset)

	s.Pause()
	clk.Advance(10 * ScrollInterval)
	assert.Equal(t, 3, port.offset)

	s.Resume()
	clk.Advance(2 * ScrollInterval)
	assert.Equal(t, 5, port.offset)
}

func TestStartCancelsPreviousRun(t *testing.T) {
	clk := clock.NewManual()
	port := &fakePort{content: 1000, viewport: 100}
	s := NewAutoScroller(clk, port)

	s.Start()
	s.Start()
	clk.Advance(4 * ScrollInterval)
	// one tick chain, not two stacked ones
	assert.Equal(t, 4, port.offset)
}

func TestStopHaltsTicking(t *testing.T) {
	clk := clock.NewManual()
	port := &fakePort{content: 1000, viewport: 100}
	s := NewAutoScroller(clk, port)

	s.Start()
	clk.Advance(2 * ScrollInterval)
	s.Stop()
	clk.Advance(10 * ScrollInterval)
	assert.Equal(t, 2, port.offset)
	assert.False(t, s.Running())
}
