// Package app wires the catalog, renderer, modal, speech and URL-state
// components into one interactive session. The session owns all mutable
// state and mutates it only from its own event handlers; there are no
// package-level variables shared across instances.
package app

import (
	"context"
	"net/url"

	"fluentfield.org/boardgame-web/internal/catalog"
	"fluentfield.org/boardgame-web/internal/clock"
	"fluentfield.org/boardgame-web/internal/modal"
	"fluentfield.org/boardgame-web/internal/speech"
	"fluentfield.org/boardgame-web/internal/urlstate"
	"fluentfield.org/boardgame-web/internal/view"
)

// Surface is the rendering capability the session paints into. Every method
// is a plain attachment point; an environment missing one simply leaves that
// piece of UI unrendered.
type Surface interface {
	PaintList(view.ListView)
	PaintDetail(modal.DetailView)
	ClearDetail()
	SetSearch(text string)
	ViewportWidth() int
	Strip() view.Port
}

// Deps are the injected capabilities for a session.
type Deps struct {
	Surface Surface
	Clock   clock.Clock
	Device  speech.Synthesizer
	History urlstate.History
	Loader  *catalog.Loader
	Tiers   view.Tiers
}

// Session is the composition root for one catalog page lifetime.
type Session struct {
	surface Surface
	clk     clock.Clock

	loader   *catalog.Loader
	result   catalog.Result
	state    view.State
	renderer *view.Renderer
	scroller *view.AutoScroller

	player *speech.Player
	detail *modal.Controller
	press  *speech.PressRecognizer
	hist   urlstate.History
	sync   *urlstate.Sync
	opts   speech.Options

	restart clock.Timer
}

// NewSession builds a session; Start runs the load lifecycle.
func NewSession(deps Deps) *Session {
	tiers := deps.Tiers
	if tiers.DesktopBatch == 0 {
		tiers = view.DefaultTiers()
	}
	s := &Session{
		surface:  deps.Surface,
		clk:      deps.Clock,
		loader:   deps.Loader,
		result:   catalog.Loading(),
		state:    view.NewState(),
		renderer: view.NewRenderer(tiers, deps.Surface.ViewportWidth()),
		player:   speech.NewPlayer(deps.Device),
		detail:   modal.NewController(),
		hist:     deps.History,
		opts:     speech.DefaultOptions(),
	}
	s.scroller = view.NewAutoScroller(deps.Clock, deps.Surface.Strip())
	s.sync = urlstate.NewSync(deps.History, url.Values{})
	return s
}

// Start paints the loading placeholder, awaits the one-shot catalog fetch,
// re-renders, and resolves any deep link. The deep link never runs against
// an unresolved catalog.
func (s *Session) Start(ctx context.Context, query url.Values) {
	if query == nil {
		query = url.Values{}
	}
	s.opts = urlstate.ReadPlayback(query)
	s.sync = urlstate.NewSync(s.hist, query)

	s.result = catalog.Loading()
	s.render(true)

	s.result = s.loader.Load(ctx)
	s.render(true)

	if s.result.State == catalog.StateLoaded {
		s.openFromQuery(query)
	}
}

// Result exposes the load outcome (a failure leaves the rest of the page
// responsive; only the list shows the error placeholder).
func (s *Session) Result() catalog.Result { return s.result }

// State returns a copy of the render state for inspection.
func (s *Session) State() view.State { return s.state }

// Options returns the session playback settings.
func (s *Session) Options() speech.Options { return s.opts }

// SearchChanged handles search box input.
func (s *Session) SearchChanged(text string) {
	s.state.SearchText = text
	s.render(true)
}

// FilterClicked handles a per-type filter control.
func (s *Session) FilterClicked(typeName string) {
	if typeName == "" {
		typeName = catalog.AllTypes
	}
	s.state.TypeFilter = typeName
	s.render(true)
}

// LoadMoreClicked grows the presentation window by one batch, keeping the
// scroll position.
func (s *Session) LoadMoreClicked() {
	if s.renderer.LoadMore(&s.state) {
		s.render(false)
	}
}

// ViewToggleClicked flips between presentation and grid. Only the painting
// changes; filter state is untouched.
func (s *Session) ViewToggleClicked() {
	if s.state.Mode == view.ModeGrid {
		s.state.Mode = view.ModePresentation
	} else {
		s.state.Mode = view.ModeGrid
	}
	s.render(true)
}

// ViewportChanged handles a breakpoint crossing.
func (s *Session) ViewportChanged(width int) {
	s.renderer.SetViewportWidth(width)
	s.render(true)
}

// CardClicked opens the detail overlay for the card at the given load-order
// index. Out-of-range indexes are ignored.
func (s *Session) CardClicked(idx int) {
	if s.result.State != catalog.StateLoaded {
		return
	}
	v, ok := s.detail.Open(s.result.Catalog, idx, s.player.Ready(), s.opts)
	if !ok {
		return
	}
	s.press = speech.NewPressRecognizer(s.clk,
		func() { s.player.Speak(v.SpeakText, s.opts) },
		func() { s.player.Speak(v.SpeakLongText, s.opts) },
	)
	s.surface.PaintDetail(v)
}

// CloseModal closes the overlay and stops any in-flight speech, regardless
// of where it was started. Wire it to backdrop clicks, Escape and the close
// control.
func (s *Session) CloseModal() {
	if s.press != nil {
		s.press.Leave()
		s.press = nil
	}
	s.detail.Close()
	s.player.Stop()
	s.surface.ClearDetail()
}

// ModalOpen reports whether a detail overlay is showing.
func (s *Session) ModalOpen() bool { return s.detail.IsOpen() }

// Pronounce gesture events, forwarded from the voice control.

func (s *Session) PronounceDown() {
	if s.press != nil {
		s.press.Down()
	}
}

func (s *Session) PronounceUp() {
	if s.press != nil {
		s.press.Up()
	}
}

func (s *Session) PronounceLeave() {
	if s.press != nil {
		s.press.Leave()
	}
}

// StripEntered pauses the auto-scroll while the pointer hovers the strip.
func (s *Session) StripEntered() { s.scroller.Pause() }

// StripLeft resumes the auto-scroll.
func (s *Session) StripLeft() { s.scroller.Resume() }

// VoicesChanged re-arms voice classification when the platform announces a
// new voice list.
func (s *Session) VoicesChanged() { s.player.Provider().Refresh() }

// SettingsChanged applies the modal mini-settings. The new values gate every
// later playback this session and are mirrored into the address bar with a
// history replace.
func (s *Session) SettingsChanged(voiceRaw, rateRaw string) {
	s.opts.Preference = speech.ParsePreference(voiceRaw)
	s.opts.Rate = speech.ParseFloat(rateRaw, speech.DefaultOptions().Rate)
	s.opts = s.opts.Clamped()
	s.sync.SetPlayback(s.opts)
}

func (s *Session) openFromQuery(query url.Values) {
	slug, ok := urlstate.DeepLink(query)
	if !ok {
		return
	}
	_, idx, found := s.result.Catalog.FindBySlug(slug)
	if !found {
		return
	}
	s.state.TypeFilter = catalog.AllTypes
	s.state.SearchText = slug
	s.surface.SetSearch(slug)
	s.render(true)
	s.CardClicked(idx)
}

// render repaints the list and manages the ticker: every presentation
// re-render restarts it after a short delay so the new content metrics
// apply, and exactly one ticker instance ever runs.
func (s *Session) render(resetLimit bool) {
	v := s.renderer.Render(s.result, &s.state, resetLimit)
	s.surface.PaintList(v)

	if s.restart != nil {
		s.restart.Stop()
		s.restart = nil
	}
	if s.state.Mode == view.ModePresentation && len(v.Tiles) > 0 {
		s.restart = s.clk.AfterFunc(view.RestartDelay, s.scroller.Start)
	} else {
		s.scroller.Stop()
	}
}
