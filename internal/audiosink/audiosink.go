// Package audiosink plays a beep whenever the host signals it, decoding
// the tone once at startup and re-playing the decoded stream on each
// signal. It is driven entirely from outside: the core never imports this
// package, matching spec.md's exclusion of audio output from the VM core.
package audiosink

import (
	"fmt"
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
)

// Sink owns the decoded beep stream and the channel the host signals on
// the sound-timer rising edge (soundTimer transitioning from 0 to nonzero).
type Sink struct {
	streamer beep.StreamSeekCloser
	events   chan struct{}
	done     chan struct{}
}

// Open decodes the mp3 tone at path and initializes the speaker. If the
// asset can't be opened or decoded, Open returns an error and the caller
// may run muted (the host's --mute flag skips calling Open at all).
func Open(path string) (*Sink, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("audiosink: opening %s: %w", path, err)
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("audiosink: decoding %s: %w", path, err)
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		streamer.Close()
		return nil, fmt.Errorf("audiosink: initializing speaker: %w", err)
	}

	return &Sink{
		streamer: streamer,
		events:   make(chan struct{}),
		done:     make(chan struct{}),
	}, nil
}

// Run plays the tone once per event, until Close is called. Intended to
// run in its own goroutine, mirroring the teacher's ManageAudio loop.
func (s *Sink) Run() {
	for {
		select {
		case <-s.events:
			speaker.Lock()
			err := s.streamer.Seek(0)
			speaker.Unlock()
			if err != nil {
				continue
			}
			speaker.Play(s.streamer)
		case <-s.done:
			return
		}
	}
}

// Trigger signals one beep. It blocks until Run receives the signal or
// Close has been called; a trigger racing with Close is simply dropped.
func (s *Sink) Trigger() {
	select {
	case s.events <- struct{}{}:
	case <-s.done:
	}
}

// Close stops Run and releases the decoded stream.
func (s *Sink) Close() error {
	close(s.done)
	return s.streamer.Close()
}
