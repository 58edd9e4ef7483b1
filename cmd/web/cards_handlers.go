package main

import (
	"encoding/json"
	"net/http"

	"fluentfield.org/boardgame-web/internal/catalog"
	mw "fluentfield.org/boardgame-web/internal/middleware"
	"fluentfield.org/boardgame-web/internal/nav"
)

// CardsHandler renders the catalog page. All browsing state lives in the
// query string, so the page is fully shareable and back/forward safe.
func CardsHandler(w http.ResponseWriter, r *http.Request) {
	pq := decodePageQuery(r.URL.Query())
	page := buildCardsPage(deck, pq, r.URL, tiers)
	render(w, r, page)
}

// CardListFrag renders the card list fragment for htmx-driven filter,
// search and load-more requests.
func CardListFrag(w http.ResponseWriter, r *http.Request) {
	pq := decodePageQuery(r.URL.Query())
	page := buildCardsPage(deck, pq, r.URL, tiers)
	w.Header().Set("HX-Push-Url", pq.href(nil))
	renderTemplate(w, r, "frag_card_list", page)
}

// CardModalFrag renders the detail overlay fragment for one card.
func CardModalFrag(w http.ResponseWriter, r *http.Request) {
	pq := decodePageQuery(r.URL.Query())
	if pq.slug == "" {
		mw.WriteError(w, r, http.StatusBadRequest, "missing card parameter")
		return
	}
	if deck.State != catalog.StateLoaded {
		mw.WriteError(w, r, http.StatusServiceUnavailable, "deck unavailable")
		return
	}
	if _, _, found := deck.Catalog.FindBySlug(pq.slug); !found {
		mw.WriteError(w, r, http.StatusNotFound, "unknown card")
		return
	}
	page := buildCardsPage(deck, pq, r.URL, tiers)
	renderTemplate(w, r, "frag_card_modal", page)
}

// HowToPlayHandler renders the rules page.
func HowToPlayHandler(w http.ResponseWriter, r *http.Request) {
	data := map[string]any{
		"Title": "How to play",
		"Nav":   nav.Build(r.URL.Path),
	}
	renderTemplate(w, r, "howto", data)
}

// DeckHandler serves the loaded deck back out as JSON so the site can host
// its own card data.
func DeckHandler(w http.ResponseWriter, r *http.Request) {
	if deck.State != catalog.StateLoaded {
		mw.WriteError(w, r, http.StatusServiceUnavailable, "deck unavailable")
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=300")
	_ = json.NewEncoder(w).Encode(deck.Catalog.Cards())
}
