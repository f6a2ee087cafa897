package main

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/photoelectric-go/internal/config"
	"github.com/olivierh59500/photoelectric-go/internal/loop"
	"github.com/olivierh59500/photoelectric-go/internal/physics"
	"github.com/olivierh59500/photoelectric-go/internal/render"
	"github.com/olivierh59500/photoelectric-go/internal/scene"
	"github.com/olivierh59500/photoelectric-go/internal/sim"
)

// Key repeat timing, in ticks
const (
	repeatDelay    = 30
	repeatInterval = 4
)

// Help panel
const (
	helpX       = 10
	helpY       = 10
	helpWidth   = 330
	helpLineH   = 16
	helpPadding = 6
)

var materialKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4}

// Simulation adapts the frame driver to ebiten: Update steps it, Draw
// renders it and Layout keeps the canvas the size of its window or page.
type Simulation struct {
	driver   *loop.Driver
	renderer *render.Renderer
	prompts  *prompter

	ShowHelp bool
	Paused   bool
}

// NewSimulation wires an ebiten game around d.
func NewSimulation(d *loop.Driver, r *render.Renderer) *Simulation {
	return &Simulation{
		driver:   d,
		renderer: r,
		prompts:  newPrompter(d),
		ShowHelp: true,
	}
}

// Update is called each tick by Ebitengine
func (s *Simulation) Update() error {
	if err := s.handleInput(); err != nil {
		return err
	}
	s.driver.Step()
	return nil
}

// Draw is called each frame by Ebitengine
func (s *Simulation) Draw(screen *ebiten.Image) {
	s.driver.Inspect(func(sm *sim.Simulation) {
		s.renderer.Draw(screen, sm)
		if s.ShowHelp {
			s.drawHelp(screen, sm)
		}
	})
}

// Layout sizes the canvas to its container and resizes the scene with it
func (s *Simulation) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth < 1 {
		outsideWidth = 1
	}
	if outsideHeight < 1 {
		outsideHeight = 1
	}
	s.driver.Resize(float64(outsideWidth), float64(outsideHeight))
	return outsideWidth, outsideHeight
}

// handleInput processes keyboard input
func (s *Simulation) handleInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.Paused = s.driver.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		s.ShowHelp = !s.ShowHelp
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.driver.Reset()
	}

	// Native dialogs
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		s.prompts.wavelength()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		s.prompts.intensity()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.prompts.material()
	}

	var edits []func(c *sim.Controls)

	if repeating(ebiten.KeyUp) {
		edits = append(edits, func(c *sim.Controls) { c.WavelengthNm = stepUp(c.WavelengthNm, config.WavelengthStep) })
	}
	if repeating(ebiten.KeyDown) {
		edits = append(edits, func(c *sim.Controls) {
			c.WavelengthNm = math.Max(config.WavelengthStep, stepDown(c.WavelengthNm, config.WavelengthStep))
		})
	}
	if repeating(ebiten.KeyRight) {
		edits = append(edits, func(c *sim.Controls) { c.Intensity = stepUp(c.Intensity, config.IntensityStep) })
	}
	if repeating(ebiten.KeyLeft) {
		edits = append(edits, func(c *sim.Controls) { c.Intensity = math.Max(0, stepDown(c.Intensity, config.IntensityStep)) })
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		edits = append(edits, func(c *sim.Controls) { c.Material = physics.Next(c.Material) })
	}
	names := physics.Names()
	for i, k := range materialKeys {
		if i < len(names) && inpututil.IsKeyJustPressed(k) {
			name := names[i]
			edits = append(edits, func(c *sim.Controls) { c.Material = name })
		}
	}

	if len(edits) == 0 {
		return nil
	}
	return s.driver.UpdateControls(func(c *sim.Controls) {
		for _, edit := range edits {
			edit(c)
		}
	})
}

// repeating reports a press on the first tick and then at a steady rate
// while the key is held.
func repeating(key ebiten.Key) bool {
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= repeatDelay && (d-repeatDelay)%repeatInterval == 0
}

// stepUp and stepDown recover from a NaN left behind by a dialog entry.
func stepUp(v, step float64) float64 {
	if math.IsNaN(v) {
		return step
	}
	return v + step
}

func stepDown(v, step float64) float64 {
	if math.IsNaN(v) {
		return 0
	}
	return v - step
}

func (s *Simulation) drawHelp(screen *ebiten.Image, sm *sim.Simulation) {
	lines := helpLines(sm, s.Paused)

	h := len(lines)*helpLineH + 2*helpPadding
	vector.DrawFilledRect(screen, helpX, helpY, helpWidth, float32(h), color.RGBA{A: 170}, false)
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, helpX+helpPadding, helpY+helpPadding+i*helpLineH)
	}
}

// helpLines lists the live values followed by the key bindings.
func helpLines(sm *sim.Simulation, paused bool) []string {
	c := sm.Controls()
	st := sm.State()

	status := "running"
	if paused {
		status = "paused"
	}
	return []string{
		fmt.Sprintf("wavelength %g nm   intensity %g", c.WavelengthNm, c.Intensity),
		fmt.Sprintf("material %s (%g eV)   %s", c.Material, sm.Material().WorkFunctionEV, status),
		fmt.Sprintf("photon %s J   work fn %s J", scene.Exponential(st.PhotonEnergyJ, 2), scene.Exponential(st.WorkFunctionJ, 2)),
		fmt.Sprintf("photons %d  electrons %d  collected %d", len(sm.Photons), len(sm.Electrons), sm.Collected),
		"Up/Down wavelength   Left/Right intensity",
		"1-4 or M material   W/I/P type a value",
		"Space pause  R reset  H help  Esc/Q quit",
	}
}
