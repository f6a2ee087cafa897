//go:build !js

package main

import (
	"errors"
	"log"
	"strconv"
	"sync/atomic"

	"github.com/ncruces/zenity"

	"github.com/olivierh59500/photoelectric-go/internal/loop"
	"github.com/olivierh59500/photoelectric-go/internal/physics"
	"github.com/olivierh59500/photoelectric-go/internal/sim"
)

// prompter opens native dialogs for typed input. Dialogs block, so each
// runs on its own goroutine and applies its result through the driver.
// Only one dialog is open at a time.
type prompter struct {
	driver *loop.Driver
	busy   atomic.Bool
}

func newPrompter(d *loop.Driver) *prompter {
	return &prompter{driver: d}
}

func (p *prompter) wavelength() {
	p.open(func(cur sim.Controls) error {
		s, err := zenity.Entry("Wavelength (nm):",
			zenity.Title("Photon wavelength"),
			zenity.EntryText(formatNumber(cur.WavelengthNm)),
		)
		if err != nil {
			return err
		}
		return p.driver.UpdateControls(func(c *sim.Controls) {
			c.WavelengthNm = physics.ParseNumber(s)
		})
	})
}

func (p *prompter) intensity() {
	p.open(func(cur sim.Controls) error {
		s, err := zenity.Entry("Intensity:",
			zenity.Title("Light intensity"),
			zenity.EntryText(formatNumber(cur.Intensity)),
		)
		if err != nil {
			return err
		}
		return p.driver.UpdateControls(func(c *sim.Controls) {
			c.Intensity = physics.ParseNumber(s)
		})
	})
}

func (p *prompter) material() {
	p.open(func(cur sim.Controls) error {
		name, err := zenity.List("Emitter material (now "+cur.Material+"):", physics.Names(),
			zenity.Title("Material"),
		)
		if err != nil {
			return err
		}
		return p.driver.UpdateControls(func(c *sim.Controls) {
			c.Material = name
		})
	})
}

func (p *prompter) open(run func(cur sim.Controls) error) {
	if !p.busy.CompareAndSwap(false, true) {
		return
	}

	var cur sim.Controls
	p.driver.Inspect(func(s *sim.Simulation) { cur = s.Controls() })

	go func() {
		defer p.busy.Store(false)
		if err := run(cur); err != nil && !errors.Is(err, zenity.ErrCanceled) {
			log.Printf("dialog: %v", err)
		}
	}()
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
