// Package host composes the chip8 core with its external collaborators —
// the renderer, the audio sink, and key input — into the tick loop a
// standalone program needs. None of this lives in the core itself: spec.md
// §5 gives the host exclusive responsibility for pacing and for pumping
// key events.
package host

import (
	"fmt"
	"log"
	"time"

	"github.com/nvestern/chippy-core/internal/audiosink"
	"github.com/nvestern/chippy-core/internal/chip8"
	"github.com/nvestern/chippy-core/internal/renderer"
)

// Config controls the session's pacing and presentation. A non-positive
// CPUHz is replaced with 500 by NewSession, and a non-positive Scale with 1
// by the renderer; other fields are used as given.
type Config struct {
	// CPUHz is the rate tick() is called at. The canonical rate is
	// ~500Hz, which yields ~62.5Hz timer decrements under the VM's
	// every-8th-tick gate.
	CPUHz int

	// Scale multiplies the renderer's 1024x768 base window size.
	Scale float64

	// Mute skips wiring the audio sink even if BeepAssetPath is set.
	Mute bool

	// BeepAssetPath is the mp3 file played once each time ST goes from
	// zero to nonzero; playback is not stopped when ST returns to zero.
	// Empty disables audio regardless of Mute.
	BeepAssetPath string

	// WindowTitle labels the renderer window.
	WindowTitle string
}

const defaultCPUHz = 500

// Session owns the VM, its CPU-rate ticker, and the external collaborators
// wired around it. Generalizes the teacher's VM.Run/ManageAudio goroutine
// pair into a configurable, core-agnostic composition root.
type Session struct {
	vm     *chip8.VM
	window *renderer.Window
	sink   *audiosink.Sink
	logger *log.Logger

	clock    *time.Ticker
	Shutdown chan struct{}
}

// NewSession builds a Session around vm, opening a renderer window and
// (unless muted or unavailable) an audio sink per cfg.
func NewSession(vm *chip8.VM, cfg Config, logger *log.Logger) (*Session, error) {
	if cfg.CPUHz <= 0 {
		cfg.CPUHz = defaultCPUHz
	}
	if logger == nil {
		logger = log.New(log.Writer(), "chippy: ", 0)
	}

	win, err := renderer.NewWindow(cfg.WindowTitle, cfg.Scale)
	if err != nil {
		return nil, fmt.Errorf("host: opening renderer: %w", err)
	}

	var sink *audiosink.Sink
	if !cfg.Mute && cfg.BeepAssetPath != "" {
		sink, err = audiosink.Open(cfg.BeepAssetPath)
		if err != nil {
			logger.Printf("audio disabled: %v", err)
			sink = nil
		}
	}

	return &Session{
		vm:       vm,
		window:   win,
		sink:     sink,
		logger:   logger,
		clock:    time.NewTicker(time.Second / time.Duration(cfg.CPUHz)),
		Shutdown: make(chan struct{}),
	}, nil
}

// Run drives the tick loop until the window closes or Shutdown is
// signaled. Any fatal VM error is logged and ends the session.
func (s *Session) Run() {
	defer s.clock.Stop()

	if s.sink != nil {
		go s.sink.Run()
		defer s.sink.Close()
	}

	prevSoundTimer := byte(0)

	for {
		select {
		case <-s.clock.C:
			if s.window.Closed() {
				s.logger.Println("window closed, shutting down")
				return
			}

			if err := s.vm.Tick(); err != nil {
				s.logger.Printf("fatal VM error: %v", err)
				return
			}

			if s.vm.HasDisplayUpdate() {
				s.window.DrawGraphics(s.vm.ViewDisplay())
			} else {
				s.window.UpdateInput()
			}

			s.window.PollKeys(s.vm.SetKeyPressed, s.vm.SetKeyReleased)

			// Rising edge only: ST went from silent to sounding. The sink
			// plays one decoded beep per trigger; it doesn't need to be
			// re-triggered every tick ST stays nonzero.
			if st := s.vm.SoundTimer(); st > 0 && prevSoundTimer == 0 && s.sink != nil {
				s.sink.Trigger()
			}
			prevSoundTimer = s.vm.SoundTimer()
		case <-s.Shutdown:
			s.logger.Println("shutdown requested")
			return
		}
	}
}
