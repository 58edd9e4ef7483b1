package speech

import "strings"

// Player turns text plus options into a cancel-and-replace utterance against
// the device. At most one utterance is ever live.
type Player struct {
	dev      Synthesizer
	provider *Provider
}

// NewPlayer builds a player and its voice provider over the device.
func NewPlayer(dev Synthesizer) *Player {
	return &Player{dev: dev, provider: NewProvider(dev)}
}

// Provider exposes the player's voice provider so callers can wire the
// platform's voices-changed notification and probe capability state.
func (p *Player) Provider() *Provider { return p.provider }

// Speak cancels any prior utterance and queues a new one. It returns false,
// without side effects, when synthesis is unsupported or the text is blank.
// When no English-capable voice matched, the utterance is still queued with
// no explicit voice: platforms that supply a system default speak it anyway,
// and the rest stay silent. Failures are never surfaced as errors; the UI
// already reflects capability absence.
func (p *Player) Speak(text string, opts Options) bool {
	if !p.dev.Supported() {
		return false
	}
	if strings.TrimSpace(text) == "" {
		return false
	}
	opts = opts.Clamped()

	var voice *Voice
	if v, ok := p.provider.Pick(opts.Preference); ok {
		voice = &v
	} else {
		// The voice list may have arrived since the last query.
		p.provider.Refresh()
		if v, ok := p.provider.Pick(opts.Preference); ok {
			voice = &v
		}
	}

	p.dev.Cancel()
	p.dev.Speak(Utterance{
		Text:   text,
		Voice:  voice,
		Rate:   opts.Rate,
		Pitch:  opts.Pitch,
		Volume: opts.Volume,
	})
	return true
}

// Ready reports whether the pronounce control should render enabled:
// synthesis is supported and an English-capable voice is available.
func (p *Player) Ready() bool {
	return p.dev.Supported() && p.provider.HasEnglish()
}

// Stop cancels whatever is speaking or queued.
func (p *Player) Stop() {
	if p.dev.Supported() {
		p.dev.Cancel()
	}
}
