package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/olivierh59500/photoelectric-go/internal/audio"
	"github.com/olivierh59500/photoelectric-go/internal/loop"
	"github.com/olivierh59500/photoelectric-go/internal/scene"
	"github.com/olivierh59500/photoelectric-go/internal/sim"
)

// meterReporter logs the readout once per reportEvery frames.
type meterReporter struct {
	reportEvery uint64
	limit       uint64 // 0 means no limit
	clicker     *audio.Clicker
	done        func()
}

func (r *meterReporter) frame(s *sim.Simulation, res sim.StepResult) {
	if res.Collected > 0 {
		r.clicker.Click()
	}
	if s.Frame > 0 && s.Frame%r.reportEvery == 0 {
		st := s.State()
		log.Printf("frame=%d %s material=%s wavelength=%gnm intensity=%g photons=%d electrons=%d collected=%d",
			s.Frame, scene.Readout(st.CurrentAmps), st.Material, st.WavelengthNm, st.Intensity,
			len(s.Photons), len(s.Electrons), s.Collected)
	}
	if r.limit > 0 && s.Frame >= r.limit {
		r.done()
	}
}

// runHeadless drives the simulation from a ticker until the frame limit,
// SIGINT or SIGTERM.
func runHeadless(s *sim.Simulation, clicker *audio.Clicker, frameTime time.Duration, limit uint64) error {
	if frameTime <= 0 {
		return fmt.Errorf("invalid frame time %v", frameTime)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	every := uint64(time.Second / frameTime)
	if every == 0 {
		every = 1
	}
	reporter := &meterReporter{
		reportEvery: every,
		limit:       limit,
		clicker:     clicker,
	}
	driver := loop.NewDriver(s, reporter.frame)
	reporter.done = driver.Stop

	log.Printf("Running headless at %v per frame", frameTime)
	if err := driver.Run(ctx, loop.NewTickerSource(frameTime)); err != nil {
		return err
	}
	log.Printf("Stopped after %d frames, %d electrons collected", s.Frame, s.Collected)
	return nil
}
