// Package speech implements voice selection and playback for the pronounce
// control: classifying device voices as English-capable, picking one for a
// US/UK/auto preference, and issuing cancel-and-replace utterances against a
// narrow synthesizer device interface.
package speech

import (
	"regexp"
	"strings"
)

// Voice describes one synthesis voice available on the playback device.
type Voice struct {
	Name    string `json:"name"`
	Lang    string `json:"lang"`
	Default bool   `json:"default"`
}

// Preference is the user-selected region hint for voice selection. The game
// box instructs players to pick US or UK, so the values are fixed.
type Preference string

const (
	PrefAuto Preference = "auto"
	PrefUS   Preference = "us"
	PrefUK   Preference = "uk"
)

// ParsePreference normalizes a raw preference value, falling back to auto.
func ParsePreference(raw string) Preference {
	switch Preference(strings.ToLower(strings.TrimSpace(raw))) {
	case PrefUS:
		return PrefUS
	case PrefUK:
		return PrefUK
	default:
		return PrefAuto
	}
}

var (
	englishTag    = regexp.MustCompile(`(?i)\ben(-|_|$)`)
	englishMarker = regexp.MustCompile(`(?i)en-GB|en-US|English`)
	usName        = regexp.MustCompile(`(?i)US|American`)
	ukName        = regexp.MustCompile(`(?i)UK|British`)
)

// English reports whether the voice can speak English: either its language
// tag carries an "en" subtag or its combined tag+name carries an English
// marker.
func (v Voice) English() bool {
	return englishTag.MatchString(v.Lang) || englishMarker.MatchString(v.Lang+" "+v.Name)
}

// PickEnglish applies the selection heuristic over the device voice list.
// It returns false when no English-capable voice exists.
func PickEnglish(voices []Voice, pref Preference) (Voice, bool) {
	english := make([]Voice, 0, len(voices))
	for _, v := range voices {
		if v.English() {
			english = append(english, v)
		}
	}
	if len(english) == 0 {
		return Voice{}, false
	}

	byLang := func(tag string) (Voice, bool) {
		for _, v := range english {
			if strings.EqualFold(v.Lang, tag) {
				return v, true
			}
		}
		return Voice{}, false
	}
	byName := func(re *regexp.Regexp) (Voice, bool) {
		for _, v := range english {
			if re.MatchString(v.Name) {
				return v, true
			}
		}
		return Voice{}, false
	}

	switch pref {
	case PrefUS:
		if v, ok := byLang("en-US"); ok {
			return v, true
		}
		if v, ok := byName(usName); ok {
			return v, true
		}
	case PrefUK:
		if v, ok := byLang("en-GB"); ok {
			return v, true
		}
		if v, ok := byName(ukName); ok {
			return v, true
		}
	default:
		for _, v := range english {
			if v.Default {
				return v, true
			}
		}
	}
	return english[0], true
}

// Synthesizer is the on-device speech capability: enumerate voices and speak
// text with a chosen voice, cancellable. Implementations run on whatever
// platform hosts the catalog; tests use a scripted fake.
type Synthesizer interface {
	// Supported reports whether the device can synthesize speech at all.
	Supported() bool
	// Voices lists the currently available voices. The list may be empty
	// until the platform announces voices.
	Voices() []Voice
	// Speak queues an utterance. The device applies its own default voice
	// when u.Voice is nil.
	Speak(u Utterance)
	// Cancel stops any in-flight or queued utterance.
	Cancel()
}

// Utterance is one playback request.
type Utterance struct {
	Text   string
	Voice  *Voice
	Rate   float64
	Pitch  float64
	Volume float64
}

// Provider caches the device voice list and re-queries it after the platform
// announces a change. State is owned by the session's single execution
// context, so no locking is needed.
type Provider struct {
	dev    Synthesizer
	cached []Voice
}

// NewProvider builds a provider over the device and primes the cache.
func NewProvider(dev Synthesizer) *Provider {
	p := &Provider{dev: dev}
	p.Refresh()
	return p
}

// Refresh re-reads the device voice list. Wire it to the platform's
// voices-changed notification.
func (p *Provider) Refresh() {
	p.cached = p.dev.Voices()
}

// Pick selects a voice for the preference. An empty cache is re-queried once
// at call time: an early empty list must not bake in a permanent failure.
func (p *Provider) Pick(pref Preference) (Voice, bool) {
	if len(p.cached) == 0 {
		p.Refresh()
	}
	return PickEnglish(p.cached, pref)
}

// HasEnglish reports whether any English-capable voice is available, for
// rendering the pronounce control enabled or disabled.
func (p *Provider) HasEnglish() bool {
	_, ok := p.Pick(PrefAuto)
	return ok
}
