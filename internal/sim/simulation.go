// Package sim owns the simulation state: the controls, the values derived
// from them each frame and the two particle populations.
package sim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/olivierh59500/photoelectric-go/internal/config"
	"github.com/olivierh59500/photoelectric-go/internal/physics"
	"github.com/olivierh59500/photoelectric-go/internal/scene"
)

// Controls are the three user inputs.
type Controls struct {
	WavelengthNm float64
	Material     string
	Intensity    float64
}

// State holds the values derived from Controls for the current frame.
type State struct {
	WavelengthNm  float64
	Material      string
	Intensity     float64
	PhotonEnergyJ float64
	WorkFunctionJ float64
	CanEmit       bool
	CurrentAmps   float64
}

// StepResult counts what happened to the particles during one frame.
type StepResult struct {
	Spawned   int // photons created
	Absorbed  int // photons that hit the emitter
	Emitted   int // electrons freed by absorbed photons
	Culled    int // photons that left the canvas without touching the emitter
	Collected int // electrons that reached the collector
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithRand sets the source of the spawn jitter.
func WithRand(rng *rand.Rand) Option {
	return func(s *Simulation) {
		s.rng = rng
	}
}

// WithTunables overrides the cosmetic constants.
func WithTunables(tun config.Tunables) Option {
	return func(s *Simulation) {
		s.tun = tun
	}
}

// Simulation is the photoelectric scene on a canvas of Width×Height pixels.
type Simulation struct {
	Width, Height float64
	Photons       []*Particle
	Electrons     []*Particle
	Collected     uint64 // electrons that reached the collector since the last reset
	Frame         uint64

	controls Controls
	material physics.Material
	state    State
	geom     scene.Geometry
	tun      config.Tunables
	rng      *rand.Rand
}

// NewSimulation creates a simulation with no particles.
func NewSimulation(width, height float64, c Controls, opts ...Option) (*Simulation, error) {
	s := &Simulation{
		tun: config.DefaultTunables(),
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.Resize(width, height)
	if err := s.SetControls(c); err != nil {
		return nil, err
	}
	return s, nil
}

// SetControls replaces the inputs and recomputes the derived state. An
// unknown material leaves the simulation untouched. Numeric inputs are
// taken as they are, NaN included.
func (s *Simulation) SetControls(c Controls) error {
	m, err := physics.Lookup(c.Material)
	if err != nil {
		return fmt.Errorf("set controls: %w", err)
	}
	s.controls = c
	s.material = m
	s.Refresh()
	return nil
}

// Controls returns the current inputs.
func (s *Simulation) Controls() Controls {
	return s.controls
}

// Material returns the selected emitter material.
func (s *Simulation) Material() physics.Material {
	return s.material
}

// Resize moves the canvas boundaries. Live particles keep their positions.
func (s *Simulation) Resize(width, height float64) {
	s.Width = width
	s.Height = height
	s.geom = scene.Compute(width, height)
}

// Geometry returns the layout for the current canvas size.
func (s *Simulation) Geometry() scene.Geometry {
	return s.geom
}

// State returns the values derived at the last Refresh or Step.
func (s *Simulation) State() State {
	return s.state
}

// Tunables returns the cosmetic constants in use.
func (s *Simulation) Tunables() config.Tunables {
	return s.tun
}

// Refresh recomputes the derived state from the controls without moving
// any particle.
func (s *Simulation) Refresh() State {
	energy := physics.PhotonEnergy(s.controls.WavelengthNm)
	wf := physics.WorkFunctionJoules(s.material)

	s.state = State{
		WavelengthNm:  s.controls.WavelengthNm,
		Material:      s.material.Name,
		Intensity:     s.controls.Intensity,
		PhotonEnergyJ: energy,
		WorkFunctionJ: wf,
		CanEmit:       physics.CanEmit(energy, wf),
		CurrentAmps:   physics.CurrentAmps(energy, wf, s.controls.Intensity, s.tun.CurrentScale),
	}
	return s.state
}

// Reset drops every particle and the collected count.
func (s *Simulation) Reset() {
	s.Photons = nil
	s.Electrons = nil
	s.Collected = 0
}

// Step runs one frame: derive the state, spawn at most one photon, advance
// the photons (absorbing those on the emitter), then advance the electrons
// (collecting those past the collector).
func (s *Simulation) Step() StepResult {
	var res StepResult

	s.Refresh()

	if float64(len(s.Photons)) < s.state.Intensity/2 {
		s.spawnPhoton()
		res.Spawned++
	}

	s.advancePhotons(&res)
	s.advanceElectrons(&res)

	s.Collected += uint64(res.Collected)
	s.Frame++
	return res
}

func (s *Simulation) spawnPhoton() {
	o := s.geom.PhotonOrigin
	p := newPhoton(o.X+s.jitter(), o.Y+s.jitter(), s.tun)
	s.Photons = append(s.Photons, p)
}

func (s *Simulation) emitElectron() {
	o := s.geom.ElectronOrigin
	e := newElectron(o.X, o.Y+s.jitter(), s.tun)
	s.Electrons = append(s.Electrons, e)
}

// jitter is a uniform offset in [-SpawnJitter, SpawnJitter).
func (s *Simulation) jitter() float64 {
	return (s.rng.Float64() - 0.5) * 2 * config.SpawnJitter
}

func (s *Simulation) advancePhotons(res *StepResult) {
	kept := s.Photons[:0]
	for _, p := range s.Photons {
		p.Move()

		switch {
		case s.geom.InEmitBand(p.X):
			res.Absorbed++
			if s.state.CanEmit {
				s.emitElectron()
				res.Emitted++
			}
		case p.X < -p.Radius:
			res.Culled++
		default:
			kept = append(kept, p)
		}
	}
	s.Photons = truncate(s.Photons, kept)
}

func (s *Simulation) advanceElectrons(res *StepResult) {
	kept := s.Electrons[:0]
	for _, e := range s.Electrons {
		e.Move()

		if s.geom.PastCollector(e.X) {
			res.Collected++
			continue
		}
		kept = append(kept, e)
	}
	s.Electrons = truncate(s.Electrons, kept)
}

// truncate clears the dropped tail of all so removed particles can be
// collected, and returns kept.
func truncate(all, kept []*Particle) []*Particle {
	for i := len(kept); i < len(all); i++ {
		all[i] = nil
	}
	return kept
}
