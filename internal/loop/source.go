package loop

import (
	"sync"
	"time"
)

// FrameSource delivers "next frame" ticks to the driver.
type FrameSource interface {
	// Frames yields one value per frame. A closed channel ends the run.
	Frames() <-chan time.Time
	// Stop releases the source. The driver calls it when Run returns.
	Stop()
}

// TickerSource paces frames with a time.Ticker.
type TickerSource struct {
	ticker *time.Ticker
}

// NewTickerSource ticks every interval.
func NewTickerSource(interval time.Duration) *TickerSource {
	return &TickerSource{ticker: time.NewTicker(interval)}
}

func (t *TickerSource) Frames() <-chan time.Time { return t.ticker.C }

func (t *TickerSource) Stop() { t.ticker.Stop() }

// ManualSource emits a frame only when Tick is called. Useful wherever
// the caller owns the clock.
type ManualSource struct {
	ch   chan time.Time
	once sync.Once
}

// NewManualSource creates an unbuffered manual source.
func NewManualSource() *ManualSource {
	return &ManualSource{ch: make(chan time.Time)}
}

// Tick blocks until the driver accepts the frame. Calling Tick after Stop
// panics.
func (m *ManualSource) Tick(at time.Time) {
	m.ch <- at
}

func (m *ManualSource) Frames() <-chan time.Time { return m.ch }

// Stop closes the frame channel. Safe to call more than once.
func (m *ManualSource) Stop() {
	m.once.Do(func() { close(m.ch) })
}
