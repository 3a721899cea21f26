// Package audio plays clips as fire-and-forget background units.
package audio

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
)

const (
	// Buffer length for the output device. Small enough that a clip starts
	// promptly after its trigger, large enough to survive a busy UI frame.
	bufferLength = 100 * time.Millisecond

	resampleQuality = 4
)

// Launcher starts one independent playback unit per triggered clip. Each
// unit decodes the clip and plays it to completion in its own goroutine; the
// caller is never blocked and retains no handle to the unit. Failures inside
// a unit are delivered to the notify callback and nowhere else, so a corrupt
// clip or missing output device cannot disturb the UI loop or other units.
type Launcher struct {
	notify     func(error)
	run        func(clip []byte) error
	openOutput func(rate beep.SampleRate) error

	speakerMu   sync.Mutex
	speakerOpen bool
	speakerRate beep.SampleRate
}

// NewLauncher returns a Launcher reporting unit failures to notify, which
// may be called from any goroutine. A nil notify discards failures.
func NewLauncher(notify func(error)) *Launcher {
	if notify == nil {
		notify = func(error) {}
	}
	l := &Launcher{notify: notify}
	l.run = l.playToEnd
	l.openOutput = func(rate beep.SampleRate) error {
		return speaker.Init(rate, rate.N(bufferLength))
	}
	return l
}

// Play launches a playback unit for the clip bytes and returns immediately.
// Overlapping triggers each get their own unit; nothing is de-duplicated or
// cancelled, and units finish in no particular order.
func (l *Launcher) Play(clip []byte) {
	go func() {
		if err := l.run(clip); err != nil {
			l.notify(err)
		}
	}()
}

// PlayAndWait plays the clip in the caller's goroutine and returns its
// error. Used by the command-line path, which has nothing else to do while
// the clip plays.
func (l *Launcher) PlayAndWait(clip []byte) error {
	return l.run(clip)
}

func (l *Launcher) playToEnd(clip []byte) error {
	streamer, format, err := wav.Decode(bytes.NewReader(clip))
	if err != nil {
		return fmt.Errorf("decode clip: %w", err)
	}
	defer streamer.Close()

	outRate, err := l.ensureSpeaker(format.SampleRate)
	if err != nil {
		return fmt.Errorf("open audio output: %w", err)
	}

	var src beep.Streamer = streamer
	if format.SampleRate != outRate {
		src = beep.Resample(resampleQuality, format.SampleRate, outRate, streamer)
	}

	done := make(chan struct{})
	speaker.Play(beep.Seq(src, beep.Callback(func() { close(done) })))
	<-done
	return nil
}

// ensureSpeaker opens the output device at the sample rate of the first
// clip that plays, and returns the rate the device runs at. The OS audio
// backends only support one open device per process, so overlapping units
// share the mixer and resample into its rate rather than opening a stream
// of their own; each unit still owns its decoder and streamer for its
// whole lifetime.
//
// Only a successful open is latched. A failed open (no output device yet)
// stays local to the unit that saw it, and the next trigger retries.
func (l *Launcher) ensureSpeaker(rate beep.SampleRate) (beep.SampleRate, error) {
	l.speakerMu.Lock()
	defer l.speakerMu.Unlock()
	if l.speakerOpen {
		return l.speakerRate, nil
	}
	if err := l.openOutput(rate); err != nil {
		return 0, err
	}
	l.speakerOpen = true
	l.speakerRate = rate
	return l.speakerRate, nil
}
