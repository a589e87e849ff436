// Package scheduler drives the fixed-cadence render loop: advance the
// animation clock, fade the previous frame into a trail, decay stale
// features, and dispatch to the active visualizer. The host owns the
// cadence mechanism and calls Tick; Stop turns further ticks into no-ops.
package scheduler

import (
	"time"

	"github.com/poetics22/glowjack-receiver/internal/feature"
	"github.com/poetics22/glowjack-receiver/internal/visualizer"
)

const (
	// ClockStep is the fixed clock increment per tick, decoupled from wall
	// time so animation phase is deterministic under any real frame rate.
	ClockStep = 0.02

	// trailFactor is the per-frame retention of prior pixels, the
	// exponential afterimage in place of a hard clear.
	trailFactor = 0.82
)

// Scheduler owns the render clock and the active-variant selection.
type Scheduler struct {
	state   *feature.State
	surface visualizer.Surface
	modes   []visualizer.Visualizer

	active    int
	clock     float64
	running   bool
	stale     bool
	staleness time.Duration
}

// New builds a scheduler over the shared feature state and surface.
// staleness is the silence window after which features start decaying.
func New(state *feature.State, surface visualizer.Surface, modes []visualizer.Visualizer, staleness time.Duration) *Scheduler {
	return &Scheduler{
		state:     state,
		surface:   surface,
		modes:     modes,
		staleness: staleness,
	}
}

// Start enables ticking.
func (sc *Scheduler) Start() { sc.running = true }

// Stop halts further rendering; subsequent Tick calls do nothing, so the
// host can keep a timer running without drawing.
func (sc *Scheduler) Stop() { sc.running = false }

// Running reports whether ticks currently render.
func (sc *Scheduler) Running() bool { return sc.running }

// SetActive selects the variant to dispatch to. Any value is accepted;
// out-of-range indices resolve to variant 0 at dispatch time.
func (sc *Scheduler) SetActive(i int) { sc.active = i }

// Active returns the raw selected index.
func (sc *Scheduler) Active() int { return sc.active }

// ActiveVisualizer resolves the selection, falling back to variant 0 for
// any index outside the mode set.
func (sc *Scheduler) ActiveVisualizer() visualizer.Visualizer {
	if sc.active < 0 || sc.active >= len(sc.modes) {
		return sc.modes[0]
	}
	return sc.modes[sc.active]
}

// State returns the shared feature state the scheduler reads each frame.
func (sc *Scheduler) State() *feature.State { return sc.state }

// Clock returns the monotonic render clock. It never resets.
func (sc *Scheduler) Clock() float64 { return sc.clock }

// Stale reports whether the last tick found the feature state stale.
func (sc *Scheduler) Stale() bool { return sc.stale }

// Tick renders one frame. now is only consulted for staleness; the
// animation clock advances by the fixed step regardless.
func (sc *Scheduler) Tick(now time.Time) {
	if !sc.running {
		return
	}
	sc.clock += ClockStep
	sc.surface.Fade(trailFactor)
	sc.stale = sc.state.DecayIfStale(now, sc.staleness)
	sc.ActiveVisualizer().Draw(sc.surface, sc.state.Vector(), sc.clock, ClockStep)
}
