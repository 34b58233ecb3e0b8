package snake

import (
	"sync"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Controller binds an Engine to a Scheduler, a Renderer and Listeners.
// It owns the scheduling side of the state machine: arm on start, re-arm on
// speed change, disarm on pause, game over and reset. All methods are safe
// for concurrent use.
type Controller struct {
	mu        sync.Mutex
	armed     uint64 // Generation of the timer the controller last armed
	engine    *Engine
	sched     Scheduler
	renderer  Renderer
	listeners []Listener
}

// NewController wires the collaborators. renderer may be nil.
func NewController(engine *Engine, sched Scheduler, renderer Renderer, listeners ...Listener) *Controller {
	return &Controller{
		engine:    engine,
		sched:     sched,
		renderer:  renderer,
		listeners: listeners,
	}
}

// AddListener registers another event listener.
func (c *Controller) AddListener(l Listener) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, l)
}

// Reset stops the loop and starts a new game on a cols×rows grid.
// The game stays Idle until Start.
func (c *Controller) Reset(cols, rows int) {
	c.mu.Lock()
	c.disarm()
	c.engine.Reset(cols, rows)
	snap := c.engine.Snapshot()
	c.mu.Unlock()

	c.publish(snap, EventReset)
}

// Start (re)arms the loop at the current speed. Starting after game over
// begins a new game on the same grid.
func (c *Controller) Start() bool {
	c.mu.Lock()
	wasOver := c.engine.Status() == StatusGameOver
	if !c.engine.Start() {
		c.mu.Unlock()
		return false
	}
	c.arm()
	snap := c.engine.Snapshot()
	c.mu.Unlock()

	if wasOver {
		c.publish(snap, EventReset, EventStarted)
	} else {
		c.publish(snap, EventStarted)
	}
	return true
}

// Pause disarms the loop, keeping the game state.
func (c *Controller) Pause() bool {
	c.mu.Lock()
	if !c.engine.Pause() {
		c.mu.Unlock()
		return false
	}
	c.disarm()
	snap := c.engine.Snapshot()
	c.mu.Unlock()

	c.publish(snap, EventPaused)
	return true
}

// Toggle pauses a running game and starts anything else.
func (c *Controller) Toggle() {
	c.mu.Lock()
	running := c.engine.Status() == StatusRunning
	c.mu.Unlock()

	if running {
		c.Pause()
	} else {
		c.Start()
	}
}

// SetDirection queues a direction change for the next tick.
func (c *Controller) SetDirection(d core.Direction) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.SetDirection(d)
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.engine.Snapshot()
}

// arm starts a timer at the current speed. Must be called with c.mu held.
func (c *Controller) arm() {
	c.armed++
	gen := c.armed
	c.sched.Arm(c.engine.Interval(), func() { c.step(gen) })
}

// disarm stops the timer. Must be called with c.mu held.
func (c *Controller) disarm() {
	c.armed++
	c.sched.Disarm()
}

// step is the scheduler callback for the timer of generation gen.
func (c *Controller) step(gen uint64) {
	c.mu.Lock()
	// A callback of a replaced timer, or one racing a pause or reset, is
	// dropped even if the game was started again in the meantime.
	if gen != c.armed || c.engine.Status() != StatusRunning {
		c.mu.Unlock()
		return
	}

	res := c.engine.Tick()

	var kinds []EventKind
	switch {
	case res.GameOver:
		c.disarm()
		kinds = append(kinds, EventGameOver)
	case res.Ate:
		kinds = append(kinds, EventAte)
		if res.SpeedChanged {
			c.arm()
			kinds = append(kinds, EventSpeedUp)
		}
	}
	c.mu.Unlock()

	c.publish(res.Snapshot, kinds...)
}

// publish renders snap and notifies listeners of each event kind.
func (c *Controller) publish(snap Snapshot, kinds ...EventKind) {
	if c.renderer != nil {
		c.renderer.Render(snap)
	}

	c.mu.Lock()
	listeners := c.listeners
	c.mu.Unlock()

	for _, kind := range kinds {
		ev := Event{Kind: kind, Snapshot: snap}
		for _, l := range listeners {
			l.HandleEvent(ev)
		}
	}
}
