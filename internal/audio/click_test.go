package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) Now() time.Time { return f.t }

func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func TestSilentUntilReady(t *testing.T) {
	c := NewClicker()
	if c.Ready() {
		t.Error("Expected a new clicker to be silent")
	}
	if c.Click() {
		t.Error("Expected no click before Init")
	}
}

func TestClickRateLimit(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	var played []beep.Streamer
	c := NewClicker(
		WithPlayer(func(s beep.Streamer) { played = append(played, s) }),
		WithClock(clock.Now),
	)

	if !c.Click() {
		t.Fatal("Expected the first click to play")
	}
	clock.Advance(MinGap / 2)
	if c.Click() {
		t.Error("Expected a click inside the gap to be dropped")
	}
	clock.Advance(MinGap)
	if !c.Click() {
		t.Error("Expected a click after the gap to play")
	}
	if len(played) != 2 {
		t.Errorf("Expected 2 clicks, got %d", len(played))
	}
}

func TestClickLength(t *testing.T) {
	var played beep.Streamer
	c := NewClicker(WithPlayer(func(s beep.Streamer) { played = s }))
	c.Click()
	if played == nil {
		t.Fatal("Expected a streamer")
	}

	buf := make([][2]float64, 128)
	total := 0
	for {
		n, ok := played.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if want := SampleRate.N(ClickLen); total != want {
		t.Errorf("Expected %d samples, got %d", want, total)
	}
}
