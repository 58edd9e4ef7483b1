package main

import (
	"net/url"
	"strconv"

	"fluentfield.org/boardgame-web/internal/catalog"
	"fluentfield.org/boardgame-web/internal/modal"
	"fluentfield.org/boardgame-web/internal/nav"
	"fluentfield.org/boardgame-web/internal/seo"
	"fluentfield.org/boardgame-web/internal/speech"
	"fluentfield.org/boardgame-web/internal/urlstate"
	"fluentfield.org/boardgame-web/internal/view"
)

const cardsPath = "/cards"

// FilterLink is one per-type filter control.
type FilterLink struct {
	Value  string
	Label  string
	Active bool
	Href   string
}

// TileLink pairs a visible card tile with its detail href.
type TileLink struct {
	Tile view.Tile
	Href string
}

// HiddenParam is a query parameter the search form re-submits unchanged so a
// new search keeps the rest of the page state.
type HiddenParam struct {
	Name  string
	Value string
}

// VoiceChoice is one option of the modal's voice mini-setting.
type VoiceChoice struct {
	Value    speech.Preference
	Label    string
	Selected bool
}

// CardsPage aggregates everything the catalog page template needs.
type CardsPage struct {
	Title string
	Meta  seo.Meta
	Nav   []nav.RenderedItem

	Query string
	// SearchCarry holds the parameters the search form must preserve: a
	// search resets only the visible window, never the filter, mode or
	// playback settings.
	SearchCarry []HiddenParam
	Filters     []FilterLink

	Mode        view.Mode
	ToggleHref  string
	ToggleLabel string

	List         view.ListView
	Tiles        []TileLink
	LoadMoreHref string

	Detail    modal.DetailView
	CloseHref string

	VoiceChoices []VoiceChoice
	Rate         string
}

// pageQuery is the decoded, clamped URL state for one request.
type pageQuery struct {
	raw    url.Values
	search string
	filter string
	mode   view.Mode
	limit  int
	slug   string
	opts   speech.Options
}

func decodePageQuery(q url.Values) pageQuery {
	pq := pageQuery{
		raw:    q,
		search: q.Get("q"),
		filter: q.Get("type"),
		mode:   view.ParseMode(q.Get("view")),
		opts:   urlstate.ReadPlayback(q),
	}
	if pq.filter == "" {
		pq.filter = catalog.AllTypes
	}
	if n, err := strconv.Atoi(q.Get("limit")); err == nil && n > 0 {
		pq.limit = n
	}
	pq.slug, _ = urlstate.DeepLink(q)
	return pq
}

// href rebuilds the page URL with the given parameters changed. Empty values
// drop the parameter, keeping shared links tidy.
func (pq pageQuery) href(changes map[string]string) string {
	cp := url.Values{}
	for k, vs := range pq.raw {
		for _, v := range vs {
			cp.Add(k, v)
		}
	}
	for k, v := range changes {
		if v == "" {
			cp.Del(k)
		} else {
			cp.Set(k, v)
		}
	}
	if enc := cp.Encode(); enc != "" {
		return cardsPath + "?" + enc
	}
	return cardsPath
}

// buildCardsPage assembles the page view model for the current load result
// and URL state. Synthesis capability is only knowable on the client, so the
// modal ships with the pronounce control enabled and cards.js hides it when
// speechSynthesis is absent.
func buildCardsPage(res catalog.Result, pq pageQuery, pageURL *url.URL, tiers view.Tiers) CardsPage {
	// A deep link overrides the filter state so the linked card is always
	// findable: all types, search box seeded with the slug.
	if pq.slug != "" && res.State == catalog.StateLoaded {
		if _, _, found := res.Catalog.FindBySlug(pq.slug); found {
			pq.filter = catalog.AllTypes
			pq.search = pq.slug
		}
	}

	st := view.State{
		Mode:       pq.mode,
		TypeFilter: pq.filter,
		SearchText: pq.search,
	}
	reset := pq.limit == 0
	if !reset {
		st.VisibleLimit = pq.limit
	}
	r := view.NewRenderer(tiers, 0)
	list := r.Render(res, &st, reset)

	page := CardsPage{
		Title: "Card Catalog",
		Nav:   nav.Build(cardsPath),
		Query: pq.search,
		Mode:  pq.mode,
		List:  list,
		Rate:  strconv.FormatFloat(pq.opts.Rate, 'f', -1, 64),
	}

	canonical := ""
	if pageURL != nil && pq.slug != "" {
		canonical = urlstate.CardLink(pageURL, pq.slug)
	}
	page.Meta = seo.ForCards(canonical)

	for _, name := range []string{"type", "view", "voice", "rate", "pitch", "vol"} {
		if v := pq.raw.Get(name); v != "" {
			page.SearchCarry = append(page.SearchCarry, HiddenParam{Name: name, Value: v})
		}
	}

	page.Filters = buildFilters(res, pq)
	page.Tiles = make([]TileLink, 0, len(list.Tiles))
	for _, tile := range list.Tiles {
		page.Tiles = append(page.Tiles, TileLink{
			Tile: tile,
			Href: pq.href(map[string]string{"card": tile.Slug}),
		})
	}

	if pq.mode == view.ModeGrid {
		page.ToggleHref = pq.href(map[string]string{"view": "", "limit": ""})
		page.ToggleLabel = "Switch to presentation view"
	} else {
		page.ToggleHref = pq.href(map[string]string{"view": string(view.ModeGrid), "limit": ""})
		page.ToggleLabel = "Switch to grid view"
	}
	if list.ShowMore {
		page.LoadMoreHref = pq.href(map[string]string{
			"limit": strconv.Itoa(st.VisibleLimit + r.Batch()),
		})
	}

	if pq.slug != "" && res.State == catalog.StateLoaded {
		if _, idx, found := res.Catalog.FindBySlug(pq.slug); found {
			card, _ := res.Catalog.At(idx)
			page.Detail = modal.Build(card, idx, true, pq.opts)
			page.CloseHref = pq.href(map[string]string{"card": ""})
		}
	}

	page.VoiceChoices = []VoiceChoice{
		{Value: speech.PrefAuto, Label: "Auto", Selected: pq.opts.Preference == speech.PrefAuto},
		{Value: speech.PrefUS, Label: "US", Selected: pq.opts.Preference == speech.PrefUS},
		{Value: speech.PrefUK, Label: "UK", Selected: pq.opts.Preference == speech.PrefUK},
	}
	return page
}

func buildFilters(res catalog.Result, pq pageQuery) []FilterLink {
	values := []string{catalog.AllTypes}
	if res.State == catalog.StateLoaded {
		values = append(values, res.Catalog.Types()...)
	}
	links := make([]FilterLink, 0, len(values))
	for _, v := range values {
		set := map[string]string{"type": v, "limit": "", "card": ""}
		if v == catalog.AllTypes {
			set["type"] = ""
		}
		links = append(links, FilterLink{
			Value:  v,
			Label:  v,
			Active: pq.filter == v,
			Href:   pq.href(set),
		})
	}
	return links
}
