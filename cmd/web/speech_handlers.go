package main

import (
	"encoding/json"
	"net/http"
	"strings"

	"fluentfield.org/boardgame-web/internal/catalog"
	mw "fluentfield.org/boardgame-web/internal/middleware"
	"fluentfield.org/boardgame-web/internal/modal"
	"fluentfield.org/boardgame-web/internal/speech"
)

// speechPlanRequest is the browser's view of a pronunciation request: the
// voices the device reported plus what should be spoken. Rate, pitch and
// volume arrive as strings so malformed values degrade to defaults the same
// way URL parameters do.
type speechPlanRequest struct {
	Voices []speech.Voice `json:"voices"`

	// Either literal text or a card slug; long selects the name+example
	// utterance for slugs.
	Text string `json:"text,omitempty"`
	Slug string `json:"slug,omitempty"`
	Long bool   `json:"long,omitempty"`

	Voice  string `json:"voice,omitempty"`
	Rate   string `json:"rate,omitempty"`
	Pitch  string `json:"pitch,omitempty"`
	Volume string `json:"vol,omitempty"`
}

type speechPlanResponse struct {
	Text    string        `json:"text"`
	Voice   *speech.Voice `json:"voice"`
	Matched bool          `json:"matched"`
	Rate    float64       `json:"rate"`
	Pitch   float64       `json:"pitch"`
	Volume  float64       `json:"volume"`
}

// SpeechPlanHandler resolves a pronunciation request into a concrete
// utterance plan: which voice to use and the clamped playback options.
// The voice heuristic lives server-side so every client ranks voices the
// same way.
func SpeechPlanHandler(w http.ResponseWriter, r *http.Request) {
	var req speechPlanRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10)).Decode(&req); err != nil {
		mw.WriteError(w, r, http.StatusBadRequest, "malformed request body")
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" && req.Slug != "" {
		if deck.State != catalog.StateLoaded {
			mw.WriteError(w, r, http.StatusServiceUnavailable, "deck unavailable")
			return
		}
		card, _, found := deck.Catalog.FindBySlug(req.Slug)
		if !found {
			mw.WriteError(w, r, http.StatusNotFound, "unknown card")
			return
		}
		if req.Long {
			text = modal.LongUtterance(card)
		} else {
			text = card.Name
		}
	}
	if text == "" {
		mw.WriteError(w, r, http.StatusBadRequest, "nothing to speak")
		return
	}

	opts := speech.Options{
		Preference: speech.ParsePreference(req.Voice),
		Rate:       speech.ParseFloat(req.Rate, 1),
		Pitch:      speech.ParseFloat(req.Pitch, 1),
		Volume:     speech.ParseFloat(req.Volume, 1),
	}.Clamped()

	resp := speechPlanResponse{
		Text:   text,
		Rate:   opts.Rate,
		Pitch:  opts.Pitch,
		Volume: opts.Volume,
	}
	if v, ok := speech.PickEnglish(req.Voices, opts.Preference); ok {
		resp.Voice = &v
		resp.Matched = true
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_ = json.NewEncoder(w).Encode(resp)
}
