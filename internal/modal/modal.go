// Package modal renders the type-specific card detail overlay and owns the
// Closed/Open state machine around it.
package modal

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	xhtml "golang.org/x/net/html"

	"fluentfield.org/boardgame-web/internal/catalog"
	"fluentfield.org/boardgame-web/internal/format"
	"fluentfield.org/boardgame-web/internal/speech"
)

// SettingsView carries the inline voice/rate mini-settings rendered inside
// the vocabulary detail.
type SettingsView struct {
	Preference speech.Preference
	Rate       float64
}

// DetailView is the paintable description of an open card.
type DetailView struct {
	Open  bool
	Index int
	Slug  string
	Title string
	Image string
	Type  string

	// Body is the primary content, already sanitized for direct template
	// injection. Deck authors may use markdown in desc/detail fields.
	Body template.HTML

	Pronounce   string
	Meaning     string
	Example     string
	Description string
	Hint        string
	Level       string
	Audio       string

	// Voice control wiring; vocabulary only.
	VoiceControls bool
	VoiceEnabled  bool
	VoiceLabel    string
	SpeakText     string
	SpeakLongText string
	Settings      *SettingsView
}

const voiceUnavailableLabel = "Text-to-speech is unavailable on this device/browser"

var (
	markdown = goldmark.New()
	sanitize = bluemonday.UGCPolicy()
)

// Controller is the Closed -> Open(card) state machine. Opening always
// rebuilds the view from scratch so no field from a previous card leaks
// through.
type Controller struct {
	view DetailView
}

// NewController starts closed.
func NewController() *Controller { return &Controller{} }

// IsOpen reports whether a card detail is showing.
func (c *Controller) IsOpen() bool { return c.view.Open }

// View returns the current detail view; zero-valued when closed.
func (c *Controller) View() DetailView { return c.view }

// Open builds and stores the detail view for the card at the given
// load-order index. Out-of-range indexes are a no-op. voiceReady reflects
// whether an English-capable voice is available and opts seeds the inline
// mini-settings.
func (c *Controller) Open(cat *catalog.Catalog, idx int, voiceReady bool, opts speech.Options) (DetailView, bool) {
	card, ok := cat.At(idx)
	if !ok {
		return DetailView{}, false
	}
	c.view = Build(card, idx, voiceReady, opts)
	return c.view, true
}

// Close resets to the closed state. The caller is responsible for cancelling
// any in-flight speech; closing must stop it unconditionally.
func (c *Controller) Close() {
	c.view = DetailView{}
}

// Build assembles the detail view for one card.
func Build(card catalog.Card, idx int, voiceReady bool, opts speech.Options) DetailView {
	v := DetailView{
		Open:  true,
		Index: idx,
		Slug:  card.Slug,
		Title: card.Name,
		Image: card.Image,
		Type:  string(card.Type),
	}

	switch card.Type {
	case catalog.TypeVocabulary:
		v.Body = renderBody(firstNonEmpty(card.Desc, card.Detail))
		v.Pronounce = card.Pronounce
		v.Meaning = card.Meaning
		v.Example = card.Example
		v.Level = format.Level(card.Level)
		v.Audio = card.Audio
		v.VoiceControls = true
		v.VoiceEnabled = voiceReady
		if !voiceReady {
			v.VoiceLabel = voiceUnavailableLabel
		}
		v.SpeakText = card.Name
		v.SpeakLongText = LongUtterance(card)
		o := opts.Clamped()
		v.Settings = &SettingsView{Preference: o.Preference, Rate: o.Rate}
	case catalog.TypeIdioms:
		if card.Meaning != "" {
			v.Meaning = card.Meaning
			v.Body = renderBody(card.Meaning)
		} else {
			v.Body = renderBody(card.Desc)
		}
		v.Example = card.Example
		v.Description = card.Desc
	case catalog.TypeDare:
		v.Body = renderBody(firstNonEmpty(card.Detail, card.Desc))
		v.Description = card.Desc
		v.Hint = card.Hint
	default:
		v.Body = renderBody(firstNonEmpty(card.Detail, card.Desc))
		v.Description = card.Desc
	}
	return v
}

// LongUtterance is the press-and-hold text: the name followed by the
// example, or the name alone when the card has none. Any markup in the
// example is flattened so the synthesizer only sees prose.
func LongUtterance(card catalog.Card) string {
	example := Flatten(string(renderBody(card.Example)))
	if example == "" {
		return card.Name
	}
	return card.Name + ". " + example
}

// renderBody runs deck text through markdown and the UGC sanitizer so it is
// safe to inject into templates.
func renderBody(src string) template.HTML {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		// fall back to the escaped source rather than dropping content
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(sanitize.SanitizeBytes(buf.Bytes()))
}

// Flatten strips markup from rendered body text, yielding the plain prose
// used for utterances.
func Flatten(rendered string) string {
	if strings.TrimSpace(rendered) == "" {
		return ""
	}
	root, err := xhtml.Parse(strings.NewReader(rendered))
	if err != nil {
		return strings.TrimSpace(rendered)
	}
	var sb strings.Builder
	var walk func(*xhtml.Node)
	walk = func(n *xhtml.Node) {
		if n.Type == xhtml.TextNode {
			sb.WriteString(n.Data)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)
	return strings.Join(strings.Fields(sb.String()), " ")
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
