// Package urlstate reads and writes the deep-link and TTS-preference query
// parameters. Writes go through a history-replace capability so the address
// bar changes without navigation or a new history entry.
package urlstate

import (
	"net/url"
	"strconv"

	"fluentfield.org/boardgame-web/internal/speech"
)

// Query parameter names. Unknown parameters are ignored everywhere.
const (
	ParamCard   = "card"
	ParamVoice  = "voice"
	ParamRate   = "rate"
	ParamPitch  = "pitch"
	ParamVolume = "vol"
)

// DeepLink extracts the card slug from the query, if present.
func DeepLink(q url.Values) (string, bool) {
	slug := q.Get(ParamCard)
	return slug, slug != ""
}

// ReadPlayback parses the TTS parameters with clamping. Missing or
// unparseable values fall back to the documented defaults.
func ReadPlayback(q url.Values) speech.Options {
	def := speech.DefaultOptions()
	return speech.Options{
		Preference: speech.ParsePreference(q.Get(ParamVoice)),
		Rate:       speech.ParseFloat(q.Get(ParamRate), def.Rate),
		Pitch:      speech.ParseFloat(q.Get(ParamPitch), def.Pitch),
		Volume:     speech.ParseFloat(q.Get(ParamVolume), def.Volume),
	}.Clamped()
}

// WritePlayback rewrites the voice and rate parameters in place, leaving
// every other parameter untouched. Pitch and volume are read-only inputs:
// the mini-settings never write them.
func WritePlayback(q url.Values, opts speech.Options) url.Values {
	opts = opts.Clamped()
	q.Set(ParamVoice, string(opts.Preference))
	q.Set(ParamRate, formatRate(opts.Rate))
	return q
}

// CardLink returns the canonical shareable URL for a card on the given page.
func CardLink(page *url.URL, slug string) string {
	u := *page
	q := u.Query()
	q.Set(ParamCard, slug)
	u.RawQuery = q.Encode()
	return u.String()
}

// History is the address-bar write capability: replace the current entry's
// query without reloading.
type History interface {
	ReplaceQuery(q url.Values)
}

// Sync mirrors the session's playback settings into the address bar.
type Sync struct {
	hist  History
	query url.Values
}

// NewSync starts from the query the page loaded with.
func NewSync(hist History, query url.Values) *Sync {
	if query == nil {
		query = url.Values{}
	}
	return &Sync{hist: hist, query: query}
}

// Query returns the current query values.
func (s *Sync) Query() url.Values { return s.query }

// SetPlayback rewrites voice/rate and pushes the replacement to the address
// bar.
func (s *Sync) SetPlayback(opts speech.Options) {
	s.query = WritePlayback(s.query, opts)
	if s.hist != nil {
		s.hist.ReplaceQuery(s.query)
	}
}

// formatRate keeps URLs tidy: "1" rather than "1.000000".
func formatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', -1, 64)
}
