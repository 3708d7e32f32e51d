package banner

import (
	"errors"
	"time"

	"golang.org/x/exp/rand"
)

// ErrStopped is returned when starting an animation that was torn down
var ErrStopped = errors.New("banner: animation stopped")

// State is the lifecycle state of an Animation
type State int

const (
	StateIdle State = iota
	StateRunning
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// FrameStats describes the animation after a pipeline run
type FrameStats struct {
	Frame    uint64        // host frames seen while running
	Runs     uint64        // pipeline executions
	Edges    int           // edges drawn by the last run
	Duration time.Duration // wall time of the last run
}

// Animation owns the particle state and drives the simulate, link and
// render pipeline from host frames. All methods must be called from the
// goroutine that pumps the frame requester.
type Animation struct {
	config   Config
	surface  Surface
	frames   FrameRequester
	viewport *ViewportManager
	linker   Linker
	renderer *Renderer

	particles []Particle

	state    State
	disabled bool
	pending  FrameID
	waiting  bool
	stats    FrameStats

	// OnFrame, when set, is called after every pipeline run
	OnFrame func(FrameStats)
}

// Mount builds an animation bound to surface and window. The viewport is
// sized and the particles seeded immediately; frames are requested only
// after Start. A nil or invalid surface, or a nil frame requester, yields
// a disabled animation that never renders. A nil rng seeds from the clock.
func Mount(config Config, surface Surface, window Window, frames FrameRequester, rng *rand.Rand) *Animation {
	if !usable(surface) || frames == nil {
		return &Animation{config: config, disabled: true}
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}

	viewport := NewViewportManager(window, surface)
	viewport.Attach()

	return &Animation{
		config:    config,
		surface:   surface,
		frames:    frames,
		viewport:  viewport,
		linker:    NewLinker(config),
		renderer:  NewRenderer(config),
		particles: Seed(rng, config, viewport.Viewport()),
	}
}

// Start moves Idle to Running and requests the first frame. Starting a
// running animation is a no-op; a stopped one cannot be restarted.
func (a *Animation) Start() error {
	switch a.state {
	case StateRunning:
		return nil
	case StateStopped:
		return ErrStopped
	}
	a.state = StateRunning
	if a.disabled {
		return nil
	}
	a.request()
	return nil
}

// Stop tears the animation down: the pending frame is cancelled and the
// resize subscription released. No pipeline run happens afterwards.
func (a *Animation) Stop() {
	if a.state == StateStopped {
		return
	}
	a.state = StateStopped
	if a.disabled {
		return
	}
	if a.waiting {
		a.frames.CancelFrame(a.pending)
		a.waiting = false
	}
	a.viewport.Detach()
}

// State returns the lifecycle state
func (a *Animation) State() State {
	return a.state
}

// Enabled reports whether the animation has a surface to draw on
func (a *Animation) Enabled() bool {
	return !a.disabled
}

// Stats returns the counters of the last pipeline run
func (a *Animation) Stats() FrameStats {
	return a.stats
}

// Particles returns the live particle set; callers must not modify it
func (a *Animation) Particles() []Particle {
	return a.particles
}

// Viewport returns the current bounds
func (a *Animation) Viewport() Viewport {
	if a.disabled {
		return Viewport{}
	}
	return a.viewport.Viewport()
}

func (a *Animation) request() {
	a.pending = a.frames.RequestFrame(a.onFrame)
	a.waiting = true
}

func (a *Animation) onFrame() {
	a.waiting = false
	if a.state != StateRunning {
		return
	}

	a.stats.Frame++
	if a.stats.Frame%uint64(max(a.config.FrameSkip, 1)) == 0 {
		a.runPipeline()
	}

	// OnFrame may have stopped the animation
	if a.state == StateRunning {
		a.request()
	}
}

func (a *Animation) runPipeline() {
	start := time.Now()

	Step(a.particles, a.viewport.Viewport())
	edges := a.renderer.Render(a.surface, a.particles, a.linker.Links(a.particles))

	a.stats.Runs++
	a.stats.Edges = edges
	a.stats.Duration = time.Since(start)

	if a.OnFrame != nil {
		a.OnFrame(a.stats)
	}
}
