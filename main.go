package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/photoelectric-go/internal/audio"
	"github.com/olivierh59500/photoelectric-go/internal/config"
	"github.com/olivierh59500/photoelectric-go/internal/loop"
	"github.com/olivierh59500/photoelectric-go/internal/render"
	"github.com/olivierh59500/photoelectric-go/internal/scene"
	"github.com/olivierh59500/photoelectric-go/internal/sim"
)

func main() {
	tun := config.DefaultTunables()

	var (
		wavelength = flag.Float64("wavelength", config.DefaultWavelength, "Photon wavelength in nm")
		material   = flag.String("material", config.DefaultMaterial, "Emitter material: sodium, zinc, copper or platinum")
		intensity  = flag.Float64("intensity", config.DefaultIntensity, "Light intensity (photon density)")
		width      = flag.Int("width", config.WindowWidth, "Initial canvas width")
		height     = flag.Int("height", config.WindowHeight, "Initial canvas height")
		tps        = flag.Int("tps", config.TPS, "Frames per second")
		seed       = flag.Int64("seed", 0, "Random seed (0 seeds from the clock)")
		sound      = flag.Bool("sound", false, "Click when electrons reach the collector")
		headless   = flag.Bool("headless", false, "Run without a window and log the meter")
		frames     = flag.Uint64("frames", 0, "Headless only: stop after this many frames (0 runs until interrupted)")
	)
	flag.Float64Var(&tun.CurrentScale, "current-scale", tun.CurrentScale, "Meter scale in A per J of surplus energy per unit intensity")
	flag.Float64Var(&tun.BeamShimmer, "shimmer", tun.BeamShimmer, "Beam flicker amplitude (0 keeps it steady)")
	flag.Parse()

	frameTime, err := frameInterval(*tps)
	if err != nil {
		log.Fatal(err)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	controls := sim.Controls{
		WavelengthNm: *wavelength,
		Material:     *material,
		Intensity:    *intensity,
	}
	s, err := sim.NewSimulation(float64(*width), float64(*height), controls,
		sim.WithRand(rand.New(rand.NewSource(*seed))),
		sim.WithTunables(tun),
	)
	if err != nil {
		log.Fatal(err)
	}

	clicker := audio.NewClicker()
	if *sound {
		if err := clicker.Init(); err != nil {
			// Non-fatal, the simulation runs without sound
			log.Printf("Audio initialization failed: %v", err)
		}
	}

	if *headless {
		if err := runHeadless(s, clicker, frameTime, *frames); err != nil {
			log.Fatal(err)
		}
		return
	}

	driver := loop.NewDriver(s, func(_ *sim.Simulation, res sim.StepResult) {
		if res.Collected > 0 {
			clicker.Click()
		}
	})
	game := NewSimulation(driver, render.New(scene.NewShimmer(tun.BeamShimmer, *seed)))

	// Set up Ebitengine game
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(*tps)

	// Run the game loop
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
	driver.Stop()
}

// frameInterval turns a -tps value into a frame period.
func frameInterval(tps int) (time.Duration, error) {
	if tps < 1 || tps > config.MaxTPS {
		return 0, fmt.Errorf("invalid -tps %d: must be between 1 and %d", tps, config.MaxTPS)
	}
	return time.Second / time.Duration(tps), nil
}
