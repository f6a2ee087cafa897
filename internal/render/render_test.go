package render

import (
	"image/color"
	"testing"

	"github.com/olivierh59500/photoelectric-go/internal/scene"
)

func TestBeamColorSteady(t *testing.T) {
	want := color.NRGBA{R: 255, G: 255, B: 0, A: 128}
	for _, r := range []*Renderer{New(nil), New(scene.NewShimmer(0, 1))} {
		for _, frame := range []uint64{0, 1, 500} {
			if got := r.beamColor(frame); got != want {
				t.Errorf("Expected %v at frame %d, got %v", want, frame, got)
			}
		}
	}
}

func TestBeamColorShimmers(t *testing.T) {
	r := New(scene.NewShimmer(0.4, 7))
	first := r.beamColor(0)
	varied := false
	for f := uint64(0); f < 400; f++ {
		c := r.beamColor(f)
		if c.R != 255 || c.G != 255 || c.B != 0 {
			t.Fatalf("Expected the beam to stay yellow, got %v at frame %d", c, f)
		}
		if c.A != first.A {
			varied = true
		}
	}
	if !varied {
		t.Error("Expected the shimmer to change the beam opacity")
	}
}

func TestReadoutOrigin(t *testing.T) {
	tests := []struct {
		w, h float64
		x, y int
	}{
		{800, 600, 10, 590},
		{400, 300, 10, 290},
		{1, 1, 10, -9},
	}
	for _, tt := range tests {
		x, y := readoutOrigin(scene.Compute(tt.w, tt.h))
		if x != tt.x || y != tt.y {
			t.Errorf("Expected readout at (%d, %d) for %gx%g, got (%d, %d)", tt.x, tt.y, tt.w, tt.h, x, y)
		}
	}
}

func TestNewUsesBasicFont(t *testing.T) {
	r := New(nil)
	if r.face == nil {
		t.Fatal("Expected a font face")
	}
	if r.shimmer != nil {
		t.Error("Expected nil shimmer to be kept")
	}
}
