package scene

import "github.com/aquilax/go-perlin"

const (
	shimmerAlpha = 2.0
	shimmerBeta  = 2.0
	shimmerN     = 3
	shimmerSpeed = 0.05 // noise units per frame
)

// Shimmer modulates the beam opacity with 1D Perlin noise so the light
// flickers gently. Amplitude zero keeps it at BeamAlpha.
type Shimmer struct {
	noise     *perlin.Perlin
	amplitude float64
}

// NewShimmer creates a shimmer with a reproducible noise seed.
func NewShimmer(amplitude float64, seed int64) *Shimmer {
	return &Shimmer{
		noise:     perlin.NewPerlin(shimmerAlpha, shimmerBeta, shimmerN, seed),
		amplitude: amplitude,
	}
}

// Alpha returns the beam opacity for the given frame number.
func (s *Shimmer) Alpha(frame uint64) float64 {
	if s == nil || s.amplitude == 0 {
		return BeamAlpha
	}
	a := BeamAlpha + s.amplitude*s.noise.Noise1D(float64(frame)*shimmerSpeed)
	if a < 0 {
		return 0
	}
	if a > 1 {
		return 1
	}
	return a
}
