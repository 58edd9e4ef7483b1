// Package view turns a filtered catalog result into the paintable list view:
// presentation mode with viewport-tiered batching and an auto-scrolling
// strip, or grid mode showing everything at once.
package view

import (
	"fmt"

	"fluentfield.org/boardgame-web/internal/catalog"
	"fluentfield.org/boardgame-web/internal/format"
)

// Mode selects how the filtered result is painted.
type Mode string

const (
	ModePresentation Mode = "presentation"
	ModeGrid         Mode = "grid"
)

// ParseMode normalizes a raw mode value, defaulting to presentation.
func ParseMode(raw string) Mode {
	if raw == string(ModeGrid) {
		return ModeGrid
	}
	return ModePresentation
}

// Tiers holds the viewport-dependent batch sizes. Two tiers are sufficient:
// narrow viewports get the small batch, everything else the large one.
type Tiers struct {
	MobileBatch    int
	DesktopBatch   int
	MobileMaxWidth int
}

// DefaultTiers mirrors the shipped breakpoints.
func DefaultTiers() Tiers {
	return Tiers{MobileBatch: 12, DesktopBatch: 24, MobileMaxWidth: 600}
}

// BatchFor returns the batch size for a viewport width in CSS pixels.
func (t Tiers) BatchFor(width int) int {
	if width > 0 && width <= t.MobileMaxWidth {
		return t.MobileBatch
	}
	return t.DesktopBatch
}

// State is the per-session mutable render state. It is owned by the session
// and mutated only through its event handlers; nothing here persists beyond
// the URL parameters the session chooses to mirror.
type State struct {
	Mode         Mode
	VisibleLimit int
	TypeFilter   string
	SearchText   string
}

// NewState returns the initial state: presentation mode, all types, limit
// unset until the first render picks a batch.
func NewState() State {
	return State{Mode: ModePresentation, TypeFilter: catalog.AllTypes}
}

// Tile is one visible card in the list view, carrying its load-order index
// so a click can address the collection.
type Tile struct {
	Index int
	Slug  string
	Name  string
	Image string
}

// ListView is the paintable description of the card list.
type ListView struct {
	Mode        Mode
	Tiles       []Tile
	Total       int // filtered count
	Remaining   int // filtered but not yet visible (presentation only)
	ShowMore    bool
	MoreLabel   string
	Loading     bool
	Error       string
	Empty       bool
	ResetScroll bool
}

// LoadErrorMessage is the literal error placeholder text.
const LoadErrorMessage = "Failed to load cards. Please try again later."

// Renderer owns the batching rules. Render is synchronous and idempotent:
// unchanged inputs produce an identical view.
type Renderer struct {
	tiers Tiers
	width int
}

// NewRenderer builds a renderer for a viewport width.
func NewRenderer(tiers Tiers, viewportWidth int) *Renderer {
	return &Renderer{tiers: tiers, width: viewportWidth}
}

// SetViewportWidth records a breakpoint change; the caller re-renders with
// resetLimit afterwards.
func (r *Renderer) SetViewportWidth(w int) { r.width = w }

// Batch returns the current batch size.
func (r *Renderer) Batch() int { return r.tiers.BatchFor(r.width) }

// Render produces the list view for the load result and state, adjusting
// st.VisibleLimit per the batching rules. resetLimit is set for any filter,
// search, mode or breakpoint change; load-more renders without it so the
// scroll position survives.
func (r *Renderer) Render(res catalog.Result, st *State, resetLimit bool) ListView {
	if st.Mode == ModePresentation {
		batch := r.Batch()
		if resetLimit || st.VisibleLimit == 0 {
			st.VisibleLimit = batch
		} else if st.VisibleLimit < batch {
			st.VisibleLimit = batch
		}
	}

	v := ListView{Mode: st.Mode, ResetScroll: resetLimit || st.Mode == ModeGrid}

	switch res.State {
	case catalog.StateLoading:
		v.Loading = true
		return v
	case catalog.StateFailed:
		v.Error = LoadErrorMessage
		return v
	}

	entries := res.Catalog.Filter(st.TypeFilter, st.SearchText)
	v.Total = len(entries)
	if len(entries) == 0 {
		v.Empty = true
		return v
	}

	count := len(entries)
	if st.Mode == ModePresentation && st.VisibleLimit < count {
		count = st.VisibleLimit
	}
	v.Tiles = make([]Tile, 0, count)
	for _, e := range entries[:count] {
		v.Tiles = append(v.Tiles, Tile{
			Index: e.Index,
			Slug:  e.Card.Slug,
			Name:  e.Card.Name,
			Image: e.Card.Image,
		})
	}

	if st.Mode == ModePresentation {
		v.Remaining = v.Total - count
		if v.Remaining > 0 {
			v.ShowMore = true
			v.MoreLabel = fmt.Sprintf("Load more cards (%s)", format.Count(int64(v.Remaining)))
		}
	}
	return v
}

// LoadMore grows the visible window by one batch. It reports whether the
// request applies (presentation mode only).
func (r *Renderer) LoadMore(st *State) bool {
	if st.Mode != ModePresentation {
		return false
	}
	st.VisibleLimit += r.Batch()
	return true
}
