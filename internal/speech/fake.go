package speech

// FakeDevice is a scripted synthesizer for tests and for running the site
// without a playback device attached.
type FakeDevice struct {
	Unsupported bool
	VoiceList   []Voice

	// Spoken records every utterance that survived cancellation, newest
	// last. Live is the currently playing utterance, if any.
	Spoken  []Utterance
	Live    *Utterance
	Cancels int

	// VoicesAfterQueries simulates a platform that reports an empty voice
	// list for the first N queries and only then announces VoiceList.
	VoicesAfterQueries int
	queries            int
}

func (d *FakeDevice) Supported() bool { return !d.Unsupported }

func (d *FakeDevice) Voices() []Voice {
	d.queries++
	if d.queries <= d.VoicesAfterQueries {
		return nil
	}
	return d.VoiceList
}

func (d *FakeDevice) Speak(u Utterance) {
	d.Spoken = append(d.Spoken, u)
	d.Live = &u
}

func (d *FakeDevice) Cancel() {
	d.Cancels++
	d.Live = nil
}
