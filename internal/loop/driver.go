// Package loop drives the simulation frame by frame.
//
// A Driver is Idle until its first frame, Running while frames arrive and
// Stopped once its context is cancelled, its source closes or Stop is
// called. Input and resize events may arrive from any goroutine; they are
// applied under the driver's lock and re-render immediately.
package loop

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/olivierh59500/photoelectric-go/internal/sim"
)

// State of a Driver.
type State int32

const (
	Idle State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

var (
	ErrAlreadyRunning = errors.New("loop: driver already running")
	ErrStopped        = errors.New("loop: driver stopped")
)

// FrameFunc renders or reports a frame. It runs with the driver's lock
// held and must not call back into the Driver. res is zero for re-renders
// triggered by input or resize.
type FrameFunc func(s *sim.Simulation, res sim.StepResult)

// Driver owns a Simulation and serialises every access to it.
type Driver struct {
	mu      sync.Mutex
	sim     *sim.Simulation
	onFrame FrameFunc
	paused  bool

	state    atomic.Int32
	done     chan struct{}
	stopOnce sync.Once
}

// NewDriver wraps s. onFrame may be nil.
func NewDriver(s *sim.Simulation, onFrame FrameFunc) *Driver {
	return &Driver{
		sim:     s,
		onFrame: onFrame,
		done:    make(chan struct{}),
	}
}

// State returns the current lifecycle state.
func (d *Driver) State() State {
	return State(d.state.Load())
}

// Run steps the simulation once per frame from src until ctx is done, src
// closes or Stop is called. It stops src before returning.
func (d *Driver) Run(ctx context.Context, src FrameSource) error {
	defer src.Stop()

	if !d.state.CompareAndSwap(int32(Idle), int32(Running)) {
		if d.State() == Stopped {
			return ErrStopped
		}
		return ErrAlreadyRunning
	}
	defer d.Stop()

	frames := src.Frames()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-d.done:
			return nil
		case _, ok := <-frames:
			if !ok {
				return nil
			}
			d.Step()
		}
	}
}

// Stop moves the driver to Stopped and ends any Run in progress.
func (d *Driver) Stop() {
	d.stopOnce.Do(func() {
		d.state.Store(int32(Stopped))
		close(d.done)
	})
}

// Step runs one frame. Hosts with their own frame clock (ebiten's tick)
// call it directly; the first call leaves Idle. A paused driver only
// recomputes the derived state. After Stop it does nothing.
func (d *Driver) Step() sim.StepResult {
	d.state.CompareAndSwap(int32(Idle), int32(Running))

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.State() == Stopped {
		return sim.StepResult{}
	}

	var res sim.StepResult
	if d.paused {
		d.sim.Refresh()
	} else {
		res = d.sim.Step()
	}
	d.emit(res)
	return res
}

// SetControls applies new inputs and re-renders without advancing the
// particles.
func (d *Driver) SetControls(c sim.Controls) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.sim.SetControls(c); err != nil {
		return err
	}
	d.emit(sim.StepResult{})
	return nil
}

// UpdateControls edits the current inputs in place.
func (d *Driver) UpdateControls(edit func(c *sim.Controls)) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	c := d.sim.Controls()
	edit(&c)
	if err := d.sim.SetControls(c); err != nil {
		return err
	}
	d.emit(sim.StepResult{})
	return nil
}

// Resize recomputes the canvas geometry and re-renders. Unchanged sizes
// are ignored.
func (d *Driver) Resize(width, height float64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.sim.Width == width && d.sim.Height == height {
		return
	}
	d.sim.Resize(width, height)
	d.sim.Refresh()
	d.emit(sim.StepResult{})
}

// Reset drops every live particle.
func (d *Driver) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.sim.Reset()
	d.emit(sim.StepResult{})
}

// TogglePause freezes or resumes particle motion and reports whether the
// driver is now paused.
func (d *Driver) TogglePause() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.paused = !d.paused
	return d.paused
}

// Inspect runs fn with exclusive access to the simulation, typically to
// draw it. fn must not retain s.
func (d *Driver) Inspect(fn func(s *sim.Simulation)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	fn(d.sim)
}

func (d *Driver) emit(res sim.StepResult) {
	if d.onFrame != nil {
		d.onFrame(d.sim, res)
	}
}
