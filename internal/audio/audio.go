// Package audio hosts the beeper. The core exposes only the sound timer
// value; this package turns "timer above zero" into an audible beep.
package audio

import (
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
)

// Beeper plays the beep sample while the sound timer is active. If the
// sample file can't be opened or decoded the beeper stays disabled and
// Update is a no-op, so the emulator still runs without audio assets.
type Beeper struct {
	streamer beep.StreamSeekCloser
	enabled  bool
	playing  bool
}

// NewBeeper reads and decodes the beep sample and initializes the speaker.
func NewBeeper(path string) *Beeper {
	f, err := os.Open(path)
	if err != nil {
		return &Beeper{}
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		f.Close()
		return &Beeper{}
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		streamer.Close()
		return &Beeper{}
	}

	return &Beeper{streamer: streamer, enabled: true}
}

// Update starts the beep on a rising edge of the sound timer and rearms
// once the timer runs out. Called once per frame.
func (b *Beeper) Update(active bool) {
	if !b.enabled {
		return
	}
	if active && !b.playing {
		speaker.Lock()
		b.streamer.Seek(0)
		speaker.Unlock()
		speaker.Play(b.streamer)
		b.playing = true
	} else if !active {
		b.playing = false
	}
}

// Close releases the decoded sample.
func (b *Beeper) Close() {
	if b.enabled {
		b.streamer.Close()
	}
}
