package speech

import "strconv"

// Playback bounds. Out-of-range values are clamped, unparseable values fall
// back to the defaults.
const (
	MinRate   = 0.5
	MaxRate   = 2.0
	MinPitch  = 0.5
	MaxPitch  = 2.0
	MinVolume = 0.0
	MaxVolume = 1.0
)

// Options carries the per-session playback settings.
type Options struct {
	Preference Preference
	Rate       float64
	Pitch      float64
	Volume     float64
}

// DefaultOptions returns the documented defaults: auto voice, neutral rate
// and pitch, full volume.
func DefaultOptions() Options {
	return Options{Preference: PrefAuto, Rate: 1.0, Pitch: 1.0, Volume: 1.0}
}

// Clamped returns a copy with every field forced into its documented range.
func (o Options) Clamped() Options {
	o.Preference = ParsePreference(string(o.Preference))
	o.Rate = clamp(o.Rate, MinRate, MaxRate)
	o.Pitch = clamp(o.Pitch, MinPitch, MaxPitch)
	o.Volume = clamp(o.Volume, MinVolume, MaxVolume)
	return o
}

// ParseFloat parses a playback parameter, substituting def when the input is
// empty or unparseable. Clamping is the caller's concern.
func ParseFloat(raw string, def float64) float64 {
	if raw == "" {
		return def
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return f
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
