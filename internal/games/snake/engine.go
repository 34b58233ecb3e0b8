// Package snake implements the snake game: a pure engine that advances one
// cell per tick on a wrapping grid, plus the controller that binds it to a
// scheduler, a renderer and event listeners.
package snake

import (
	"math/rand"
	"slices"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// Status is the engine's lifecycle state.
type Status int

const (
	StatusIdle Status = iota
	StatusRunning
	StatusPaused
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// TickResult describes what a single Tick did.
type TickResult struct {
	Moved        bool // Snake advanced one cell
	Ate          bool // Head landed on food; the snake grew
	SpeedChanged bool // Speed went up; the tick interval changed
	GameOver     bool // Head hit the body; nothing else changed
	Snapshot     Snapshot
}

// Engine owns the whole game state. It performs no I/O and never blocks;
// callers serialise access (see Controller).
type Engine struct {
	rules config.Rules
	rng   *rand.Rand

	cols, rows int
	snake      []core.Point // Head at index 0
	dir        core.Direction
	pending    core.Direction // Applied at the next tick
	food       core.Point
	score      int
	speed      int
	status     Status
	tick       uint64
}

// NewEngine creates an engine with the given rules and RNG seed.
// Call Reset before use.
func NewEngine(rules config.Rules, seed int64) *Engine {
	return &Engine{
		rules: rules,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// Reset starts a new game on a cols×rows grid: snake centred horizontally
// with its head at (cols/2-1, rows/2) extending left, heading right, score 0,
// initial speed, fresh food. The engine ends up Idle.
// The snake is shortened to cols-1 segments on grids too narrow to hold it,
// so it never overlaps itself or starts with its tail in front of the head.
func (e *Engine) Reset(cols, rows int) {
	e.cols = cols
	e.rows = rows

	headX := cols/2 - 1
	y := rows / 2
	length := min(e.rules.InitialLength, max(1, cols-1))
	e.snake = make([]core.Point, 0, length)
	for i := 0; i < length; i++ {
		e.snake = append(e.snake, core.Point{X: headX - i, Y: y}.Wrap(cols, rows))
	}

	e.dir = core.DirRight
	e.pending = core.DirRight
	e.score = 0
	e.speed = e.rules.InitialSpeed
	e.status = StatusIdle
	e.tick = 0
	e.spawnFood()
}

// SetDirection queues d for the next tick. The exact reverse of the current
// direction and anything that is not a unit vector are ignored.
func (e *Engine) SetDirection(d core.Direction) bool {
	if !d.Valid() || d.IsReverseOf(e.dir) {
		return false
	}
	e.pending = d
	return true
}

// Start moves the engine to Running. Starting after game over begins a new
// game on the same grid. It reports whether the status changed.
func (e *Engine) Start() bool {
	switch e.status {
	case StatusRunning:
		return false
	case StatusGameOver:
		e.Reset(e.cols, e.rows)
	}
	e.status = StatusRunning
	return true
}

// Pause suspends a running game. It reports whether the status changed.
func (e *Engine) Pause() bool {
	if e.status != StatusRunning {
		return false
	}
	e.status = StatusPaused
	return true
}

// Tick advances the snake one cell. It is a no-op unless the engine is Running.
func (e *Engine) Tick() TickResult {
	if e.status != StatusRunning {
		return TickResult{Snapshot: e.Snapshot()}
	}

	// The pending direction was checked against the direction current at
	// input time; check again against the one we actually move in.
	if !e.pending.IsReverseOf(e.dir) {
		e.dir = e.pending
	}

	head := e.snake[0].Add(e.dir).Wrap(e.cols, e.rows)

	if e.occupied(head) {
		e.status = StatusGameOver
		return TickResult{GameOver: true, Snapshot: e.Snapshot()}
	}

	e.tick++
	e.snake = slices.Insert(e.snake, 0, head)

	res := TickResult{Moved: true}
	if head == e.food {
		e.score++
		e.speed, res.SpeedChanged = e.rules.NextSpeed(e.speed, e.score)
		res.Ate = true
		e.spawnFood()
	} else {
		e.snake = e.snake[:len(e.snake)-1]
	}

	res.Snapshot = e.Snapshot()
	return res
}

// spawnFood samples random cells until one is free of the snake. After
// FoodAttempts misses the last sample is used even if occupied, so a nearly
// full board cannot stall the game.
func (e *Engine) spawnFood() {
	taken := make(map[core.Point]struct{}, len(e.snake))
	for _, p := range e.snake {
		taken[p] = struct{}{}
	}

	var p core.Point
	for i := 0; i < e.rules.FoodAttempts; i++ {
		p = core.Point{X: e.rng.Intn(e.cols), Y: e.rng.Intn(e.rows)}
		if _, ok := taken[p]; !ok {
			break
		}
	}
	e.food = p
}

func (e *Engine) occupied(p core.Point) bool {
	return slices.Contains(e.snake, p)
}

// Status returns the current lifecycle state.
func (e *Engine) Status() Status {
	return e.status
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Speed returns the current speed in ticks per second.
func (e *Engine) Speed() int {
	return e.speed
}

// Interval returns the tick period for the current speed.
func (e *Engine) Interval() time.Duration {
	return e.rules.Interval(e.speed)
}

// Size returns the grid dimensions.
func (e *Engine) Size() (cols, rows int) {
	return e.cols, e.rows
}
