// Package config centralizes the defaults and cosmetic tuning constants.
package config

import (
	"os"
	"time"
)

// Window
const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "Photoelectric Effect"
	TPS          = 60
	MaxTPS       = 1000
	FrameTime    = time.Second / TPS
)

// Initial controls
const (
	DefaultWavelength = 400.0 // nm
	DefaultMaterial   = "sodium"
	DefaultIntensity  = 10.0
)

// Keyboard steps
const (
	WavelengthStep = 10.0 // nm per key press
	IntensityStep  = 1.0
)

// Particles
const (
	ParticleRadius = 5.0
	SpawnJitter    = 50.0 // max offset either side of the spawn point, px
)

// Tunables are the purely cosmetic constants of the animation. None of them
// has a physical derivation; they are kept configurable rather than guessed.
type Tunables struct {
	CurrentScale float64 // A per joule per unit intensity

	PhotonVX, PhotonVY     float64 // px/frame
	ElectronVX, ElectronVY float64 // px/frame

	// BeamShimmer is the Perlin amplitude applied to the beam alpha.
	// Zero draws the beam at a constant 0.5 alpha.
	BeamShimmer float64
}

// DefaultTunables returns the values the visualization was tuned with.
func DefaultTunables() Tunables {
	return Tunables{
		CurrentScale: 1e16,
		PhotonVX:     -0.5,
		PhotonVY:     0.3,
		ElectronVX:   0.2,
		ElectronVY:   0,
	}
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
