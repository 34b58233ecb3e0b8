package snake

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Snapshot is a read-only copy of the engine state handed to renderers and
// listeners. Mutating it never affects the engine.
type Snapshot struct {
	Tick     uint64
	Cols     int
	Rows     int
	Snake    []core.Point // Head at index 0
	Food     core.Point
	Dir      core.Direction
	Pending  core.Direction
	Score    int
	Speed    int
	Interval time.Duration
	Status   Status
}

// Snapshot captures the current engine state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Tick:     e.tick,
		Cols:     e.cols,
		Rows:     e.rows,
		Snake:    slices.Clone(e.snake),
		Food:     e.food,
		Dir:      e.dir,
		Pending:  e.pending,
		Score:    e.score,
		Speed:    e.speed,
		Interval: e.Interval(),
		Status:   e.status,
	}
}

// Head returns the head position.
func (s Snapshot) Head() core.Point {
	if len(s.Snake) == 0 {
		return core.Point{}
	}
	return s.Snake[0]
}

// String returns a compact multi-line dump, handy in test failures.
func (s Snapshot) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Status: %s, Score: %d, Speed: %d\n", s.Tick, s.Status, s.Score, s.Speed)
	fmt.Fprintf(&b, "Grid: %dx%d, Dir: %s, Pending: %s\n", s.Cols, s.Rows, s.Dir, s.Pending)
	fmt.Fprintf(&b, "Snake: %v, Food: %v\n", s.Snake, s.Food)
	return b.String()
}
