// Package audio plays a short detector click whenever electrons reach the
// collector plate. Sound is optional; a Clicker that was never initialised
// stays silent.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	SampleRate = beep.SampleRate(44100)
	ClickFreq  = 1760.0
	ClickLen   = 8 * time.Millisecond
	MinGap     = 40 * time.Millisecond // fastest click rate, roughly 25/s
)

// Clicker issues rate-limited clicks.
type Clicker struct {
	play  func(beep.Streamer)
	now   func() time.Time
	last  time.Time
	ready bool
}

// Option configures a Clicker.
type Option func(*Clicker)

// WithPlayer routes clicks to play instead of the speaker. The clicker is
// ready immediately.
func WithPlayer(play func(beep.Streamer)) Option {
	return func(c *Clicker) {
		c.play = play
		c.ready = true
	}
}

// WithClock replaces time.Now for rate limiting.
func WithClock(now func() time.Time) Option {
	return func(c *Clicker) {
		c.now = now
	}
}

// NewClicker creates a silent clicker. Call Init, or pass WithPlayer, to
// make it audible.
func NewClicker(opts ...Option) *Clicker {
	c := &Clicker{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Init opens the speaker.
func (c *Clicker) Init() error {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}
	c.play = func(s beep.Streamer) { speaker.Play(s) }
	c.ready = true
	return nil
}

// Ready reports whether clicks will be heard.
func (c *Clicker) Ready() bool {
	return c.ready
}

// Click plays one click unless the previous one was less than MinGap ago.
// It reports whether a click was played.
func (c *Clicker) Click() bool {
	if !c.ready {
		return false
	}
	now := c.now()
	if !c.last.IsZero() && now.Sub(c.last) < MinGap {
		return false
	}

	tone, err := generators.SineTone(SampleRate, ClickFreq)
	if err != nil {
		return false
	}
	c.last = now
	c.play(beep.Take(SampleRate.N(ClickLen), tone))
	return true
}
