// Package render draws the simulation onto an ebiten image. It keeps no
// scene state of its own: every call works from the canvas size and the
// simulation passed in.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/olivierh59500/photoelectric-go/internal/scene"
	"github.com/olivierh59500/photoelectric-go/internal/sim"
)

const readoutMargin = 10

// Renderer draws frames.
type Renderer struct {
	face    font.Face
	shimmer *scene.Shimmer
}

// New creates a renderer. shimmer may be nil for a steady beam.
func New(shimmer *scene.Shimmer) *Renderer {
	return &Renderer{
		face:    basicfont.Face7x13,
		shimmer: shimmer,
	}
}

// Draw renders one full frame: circuit, beam, particles and readout.
func (r *Renderer) Draw(screen *ebiten.Image, s *sim.Simulation) {
	g := s.Geometry()

	screen.Fill(scene.Background)

	r.drawCircuit(screen, g, s.Material().PlateColor)
	fillRect(screen, g.Beam, r.beamColor(s.Frame))
	drawParticles(screen, s.Photons)
	drawParticles(screen, s.Electrons)
	r.drawReadout(screen, g, s.State())
}

func (r *Renderer) drawCircuit(screen *ebiten.Image, g scene.Geometry, plate color.Color) {
	// Light source
	fillCircle(screen, g.Lamp, scene.Ink)

	// Plates
	fillRect(screen, g.Emitter, plate)
	fillRect(screen, g.Collector, scene.Collector)

	// Wire legs either side of the meter
	strokeSegment(screen, g.WireIn, scene.Ink)
	strokeSegment(screen, g.WireOut, scene.Ink)

	// Ammeter
	fillCircle(screen, g.Meter, scene.MeterFace)
	vector.StrokeCircle(screen, float32(g.Meter.X), float32(g.Meter.Y), float32(g.Meter.R), scene.WireWidth, scene.Ink, true)
	text.Draw(screen, "A", r.face, int(g.Label.X), int(g.Label.Y), scene.Ink)
}

// beamColor is the translucent photon colour for the given frame.
func (r *Renderer) beamColor(frame uint64) color.NRGBA {
	return scene.Translucent(scene.Photon, r.shimmer.Alpha(frame))
}

func drawParticles(screen *ebiten.Image, particles []*sim.Particle) {
	for _, p := range particles {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius), p.Color, true)
	}
}

func (r *Renderer) drawReadout(screen *ebiten.Image, g scene.Geometry, st sim.State) {
	x, y := readoutOrigin(g)
	text.Draw(screen, scene.Readout(st.CurrentAmps), r.face, x, y, scene.Ink)
}

// readoutOrigin is the text baseline of the meter readout, bottom left.
func readoutOrigin(g scene.Geometry) (int, int) {
	return readoutMargin, int(g.Height) - readoutMargin
}

func fillCircle(screen *ebiten.Image, c scene.Circle, clr color.Color) {
	vector.DrawFilledCircle(screen, float32(c.X), float32(c.Y), float32(c.R), clr, true)
}

func fillRect(screen *ebiten.Image, r scene.Rect, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func strokeSegment(screen *ebiten.Image, s scene.Segment, clr color.Color) {
	vector.StrokeLine(screen, float32(s.From.X), float32(s.From.Y), float32(s.To.X), float32(s.To.Y), scene.WireWidth, clr, true)
}
