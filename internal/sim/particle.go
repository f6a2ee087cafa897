package sim

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/olivierh59500/photoelectric-go/internal/config"
	"github.com/olivierh59500/photoelectric-go/internal/scene"
)

// Particle is a photon or an emitted electron.
type Particle struct {
	X, Y   float64 // Position, px
	VX, VY float64 // Velocity, px/frame
	Color  colorful.Color
	Radius float64
}

// Move advances the particle by one frame of its velocity.
func (p *Particle) Move() {
	p.X += p.VX
	p.Y += p.VY
}

func newPhoton(x, y float64, tun config.Tunables) *Particle {
	return &Particle{
		X:      x,
		Y:      y,
		VX:     tun.PhotonVX,
		VY:     tun.PhotonVY,
		Color:  scene.Photon,
		Radius: config.ParticleRadius,
	}
}

func newElectron(x, y float64, tun config.Tunables) *Particle {
	return &Particle{
		X:      x,
		Y:      y,
		VX:     tun.ElectronVX,
		VY:     tun.ElectronVY,
		Color:  scene.Electron,
		Radius: config.ParticleRadius,
	}
}
