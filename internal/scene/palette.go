package scene

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Named canvas colours.
var (
	Background = mustHex("#ffffff")
	Ink        = mustHex("#000000")
	Collector  = mustHex("#808080")
	MeterFace  = mustHex("#ffffff")
	Photon     = mustHex("#ffff00")
	Electron   = mustHex("#0000ff")
)

// BeamAlpha is the resting opacity of the photon beam.
const BeamAlpha = 0.5

// Translucent returns c with the given opacity in [0, 1]. Out-of-range and
// NaN alphas are clamped so a noisy shimmer can never wrap around.
func Translucent(c colorful.Color, alpha float64) color.NRGBA {
	if !(alpha > 0) {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha*255 + 0.5)}
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
