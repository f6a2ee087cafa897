// Package scene computes where everything sits on the canvas. Every
// coordinate is a fixed fraction of the canvas size, so a resize only
// needs a fresh Compute.
package scene

// Point is a canvas position in pixels.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Circle is a disc centred on (X, Y).
type Circle struct {
	X, Y, R float64
}

// Segment is a straight wire run.
type Segment struct {
	From, To Point
}

// Fixed pixel sizes that do not scale with the canvas.
const (
	LampRadius   = 30.0
	MeterRadius  = 20.0
	WireWidth    = 5.0
	BeamHeight   = 50.0
	LabelOffsetX = -6.0
	LabelOffsetY = 6.0
)

// Geometry is the full layout for one canvas size.
type Geometry struct {
	Width, Height float64

	Lamp      Circle
	Emitter   Rect
	Collector Rect
	Beam      Rect

	WireIn  Segment // emitter side to meter
	WireOut Segment // meter to collector
	Meter   Circle
	Label   Point // baseline origin of the "A" glyph

	// Photons are absorbed while EmitMinX <= x < EmitMaxX.
	EmitMinX, EmitMaxX float64
	// Electrons are collected once x > CollectX.
	CollectX float64

	PhotonOrigin   Point
	ElectronOrigin Point
}

// Compute lays the scene out on a w×h canvas.
func Compute(w, h float64) Geometry {
	plateW := w * 0.1
	plateH := h * 0.5
	wireY := h * 0.75
	meterX := w * 0.4

	return Geometry{
		Width:  w,
		Height: h,

		Lamp:      Circle{X: w / 2, Y: h * 0.2, R: LampRadius},
		Emitter:   Rect{X: w * 0.1, Y: h * 0.25, W: plateW, H: plateH},
		Collector: Rect{X: w * 0.7, Y: h * 0.25, W: plateW, H: plateH},
		Beam:      Rect{X: w * 0.2, Y: h * 0.2, W: w * 0.6, H: BeamHeight},

		WireIn: Segment{
			From: Point{X: w*0.15 + plateW, Y: wireY},
			To:   Point{X: meterX, Y: wireY},
		},
		WireOut: Segment{
			From: Point{X: meterX + MeterRadius, Y: wireY},
			To:   Point{X: w * 0.7, Y: wireY},
		},
		Meter: Circle{X: meterX, Y: wireY, R: MeterRadius},
		Label: Point{X: meterX + LabelOffsetX, Y: wireY + LabelOffsetY},

		EmitMinX: w * 0.1,
		EmitMaxX: w * 0.15,
		CollectX: w * 0.7,

		PhotonOrigin:   Point{X: w / 2, Y: h * 0.2},
		ElectronOrigin: Point{X: w * 0.15, Y: h * 0.35},
	}
}

// InEmitBand reports whether x lies on the emitter's absorbing strip.
func (g Geometry) InEmitBand(x float64) bool {
	return x >= g.EmitMinX && x < g.EmitMaxX
}

// PastCollector reports whether x has reached the collector plate.
func (g Geometry) PastCollector(x float64) bool {
	return x > g.CollectX
}
