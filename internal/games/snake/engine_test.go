package snake

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

func newRunningEngine(t *testing.T, cols, rows int, seed int64) *Engine {
	t.Helper()
	e := NewEngine(config.DefaultRules(), seed)
	e.Reset(cols, rows)
	if !e.Start() {
		t.Fatal("Start() on a fresh engine should succeed")
	}
	return e
}

// feed places food directly in front of the head.
func feed(e *Engine) {
	next := e.pending
	if next.IsReverseOf(e.dir) {
		next = e.dir
	}
	e.food = e.snake[0].Add(next).Wrap(e.cols, e.rows)
}

func TestResetInitialState(t *testing.T) {
	e := NewEngine(config.DefaultRules(), 1)
	e.Reset(10, 10)
	snap := e.Snapshot()

	expected := []core.Point{{X: 4, Y: 5}, {X: 3, Y: 5}, {X: 2, Y: 5}}
	if !slices.Equal(snap.Snake, expected) {
		t.Errorf("snake = %v, expected %v", snap.Snake, expected)
	}
	if snap.Dir != core.DirRight || snap.Pending != core.DirRight {
		t.Errorf("direction = %s/%s, expected right/right", snap.Dir, snap.Pending)
	}
	if snap.Score != 0 || snap.Speed != 6 {
		t.Errorf("score/speed = %d/%d, expected 0/6", snap.Score, snap.Speed)
	}
	if snap.Status != StatusIdle {
		t.Errorf("status = %s, expected idle", snap.Status)
	}
	if slices.Contains(snap.Snake, snap.Food) || !snap.Food.In(10, 10) {
		t.Errorf("bad initial food %v", snap.Food)
	}
}

func TestResetOddAndTinyGrids(t *testing.T) {
	e := NewEngine(config.DefaultRules(), 1)

	e.Reset(11, 7)
	if head := e.Snapshot().Head(); head != (core.Point{X: 4, Y: 3}) {
		t.Errorf("11x7 head = %v, expected (4,3)", head)
	}

	// On a 4-wide grid the tail would start at x=-1; it wraps instead.
	e.Reset(4, 3)
	for _, p := range e.Snapshot().Snake {
		if !p.In(4, 3) {
			t.Errorf("segment %v outside 4x3 grid", p)
		}
	}
}

func TestResetShortensSnakeOnNarrowGrid(t *testing.T) {
	tests := []struct {
		name       string
		length     int
		cols, rows int
		wantLen    int
	}{
		{"fits", 3, 10, 10, 3},
		{"as long as the row", 4, 4, 3, 3},
		{"longer than the row", 10, 8, 6, 7},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rules := config.DefaultRules()
			rules.InitialLength = tc.length
			e := NewEngine(rules, 1)
			e.Reset(tc.cols, tc.rows)

			snap := e.Snapshot()
			if len(snap.Snake) != tc.wantLen {
				t.Fatalf("length = %d, expected %d: %v", len(snap.Snake), tc.wantLen, snap.Snake)
			}
			seen := make(map[core.Point]bool)
			for _, p := range snap.Snake {
				if seen[p] {
					t.Fatalf("segment %v appears twice: %v", p, snap.Snake)
				}
				seen[p] = true
			}

			e.Start()
			e.food = core.Point{X: -1, Y: -1}
			if res := e.Tick(); res.GameOver {
				t.Errorf("first tick ended the game: %v", snap.Snake)
			}
		})
	}
}

func TestEatFoodScenario(t *testing.T) {
	e := newRunningEngine(t, 10, 10, 7)
	e.snake = []core.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}
	e.food = core.Point{X: 6, Y: 5}

	res := e.Tick()

	expected := []core.Point{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}
	if !slices.Equal(res.Snapshot.Snake, expected) {
		t.Errorf("snake = %v, expected %v", res.Snapshot.Snake, expected)
	}
	if !res.Ate || res.Snapshot.Score != 1 {
		t.Errorf("expected food eaten with score 1, got ate=%v score=%d", res.Ate, res.Snapshot.Score)
	}
	if res.SpeedChanged || res.Snapshot.Speed != 6 {
		t.Errorf("speed should stay 6 at score 1, got %d", res.Snapshot.Speed)
	}
	if slices.Contains(res.Snapshot.Snake, res.Snapshot.Food) {
		t.Errorf("new food %v spawned on the snake", res.Snapshot.Food)
	}
}

func TestSelfCollisionScenario(t *testing.T) {
	e := newRunningEngine(t, 10, 10, 7)
	// Head at (5,5) moving left, body curls below it.
	e.snake = []core.Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}, {X: 4, Y: 6}}
	e.dir = core.DirLeft
	e.pending = core.DirLeft
	e.food = core.Point{X: 0, Y: 0}
	before := e.Snapshot()

	if !e.SetDirection(core.DirDown) {
		t.Fatal("down should be accepted while moving left")
	}
	res := e.Tick()

	if !res.GameOver || res.Moved {
		t.Fatalf("expected game over without a move, got %+v", res)
	}
	if e.Status() != StatusGameOver {
		t.Errorf("status = %s, expected game over", e.Status())
	}
	if !slices.Equal(res.Snapshot.Snake, before.Snake) {
		t.Errorf("snake changed on collision: %v -> %v", before.Snake, res.Snapshot.Snake)
	}
	if res.Snapshot.Score != before.Score || res.Snapshot.Food != before.Food {
		t.Error("score or food changed on collision")
	}

	// Terminal until reset: further ticks do nothing.
	again := e.Tick()
	if again.Moved || again.GameOver || !slices.Equal(again.Snapshot.Snake, before.Snake) {
		t.Errorf("tick after game over should be a no-op, got %+v", again)
	}
}

func TestMovingIntoTailCellCollides(t *testing.T) {
	// The tail has not moved away yet when the head arrives.
	e := newRunningEngine(t, 10, 10, 7)
	e.snake = []core.Point{{X: 5, Y: 5}, {X: 5, Y: 4}, {X: 6, Y: 4}, {X: 6, Y: 5}}
	e.dir = core.DirDown
	e.pending = core.DirRight
	e.food = core.Point{X: 0, Y: 0}

	if res := e.Tick(); !res.GameOver {
		t.Errorf("expected collision with tail cell, got %+v", res)
	}
}

func TestWrapAtEveryEdge(t *testing.T) {
	tests := []struct {
		name     string
		head     core.Point
		dir      core.Direction
		expected core.Point
	}{
		{"right edge", core.Point{X: 9, Y: 5}, core.DirRight, core.Point{X: 0, Y: 5}},
		{"left edge", core.Point{X: 0, Y: 5}, core.DirLeft, core.Point{X: 9, Y: 5}},
		{"bottom edge", core.Point{X: 5, Y: 9}, core.DirDown, core.Point{X: 5, Y: 0}},
		{"top edge", core.Point{X: 5, Y: 0}, core.DirUp, core.Point{X: 5, Y: 9}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := newRunningEngine(t, 10, 10, 3)
			e.snake = []core.Point{tc.head}
			e.dir = tc.dir
			e.pending = tc.dir
			e.food = core.Point{X: 2, Y: 2}

			res := e.Tick()
			if head := res.Snapshot.Head(); head != tc.expected {
				t.Errorf("head = %v, expected %v", head, tc.expected)
			}
		})
	}
}

func TestSetDirectionRejectsReverse(t *testing.T) {
	e := newRunningEngine(t, 10, 10, 1)

	if e.SetDirection(core.DirLeft) {
		t.Error("reverse of right should be rejected")
	}
	if e.pending != core.DirRight {
		t.Errorf("pending = %s, expected right", e.pending)
	}

	if !e.SetDirection(core.DirUp) {
		t.Error("up should be accepted while moving right")
	}
	// Still moving right, so left stays illegal even though pending is up.
	if e.SetDirection(core.DirLeft) {
		t.Error("left should still be rejected before the tick")
	}
	if e.pending != core.DirUp {
		t.Errorf("pending = %s, expected up", e.pending)
	}

	if e.SetDirection(core.Direction{DX: 1, DY: 1}) {
		t.Error("diagonal should be rejected")
	}
}

func TestTickRechecksPendingReversal(t *testing.T) {
	e := newRunningEngine(t, 10, 10, 1)
	e.food = core.Point{X: 0, Y: 0}
	e.pending = core.DirLeft // only reachable by bypassing SetDirection

	res := e.Tick()
	if res.Snapshot.Dir != core.DirRight {
		t.Errorf("dir = %s, expected right", res.Snapshot.Dir)
	}
	if head := res.Snapshot.Head(); head != (core.Point{X: 5, Y: 5}) {
		t.Errorf("head = %v, expected (5,5)", head)
	}
}

func TestDirectionAppliedOncePerTick(t *testing.T) {
	e := newRunningEngine(t, 10, 10, 1)
	e.food = core.Point{X: 0, Y: 0}

	// Several inputs between ticks: only the last accepted one counts.
	e.SetDirection(core.DirUp)
	e.SetDirection(core.DirDown)
	res := e.Tick()

	if res.Snapshot.Dir != core.DirDown {
		t.Errorf("dir = %s, expected down", res.Snapshot.Dir)
	}
	if head := res.Snapshot.Head(); head != (core.Point{X: 4, Y: 6}) {
		t.Errorf("head = %v, expected (4,6)", head)
	}
}

func TestSpeedProgression(t *testing.T) {
	e := newRunningEngine(t, 70, 10, 5) // wide enough to grow in a straight line

	for i := 1; i <= 60; i++ {
		feed(e)
		prevSpeed := e.speed
		res := e.Tick()
		if !res.Ate {
			t.Fatalf("tick %d: expected to eat", i)
		}
		if res.Snapshot.Score != i {
			t.Fatalf("tick %d: score = %d", i, res.Snapshot.Score)
		}

		wantSpeed := prevSpeed
		if i%3 == 0 && prevSpeed < 20 {
			wantSpeed = prevSpeed + 1
		}
		if res.Snapshot.Speed != wantSpeed {
			t.Fatalf("score %d: speed = %d, expected %d", i, res.Snapshot.Speed, wantSpeed)
		}
		if res.SpeedChanged != (wantSpeed != prevSpeed) {
			t.Fatalf("score %d: SpeedChanged = %v", i, res.SpeedChanged)
		}
	}

	if e.Speed() != 20 {
		t.Errorf("speed after 60 food = %d, expected max 20", e.Speed())
	}
	if e.Interval().Milliseconds() != 60 {
		t.Errorf("interval at max speed = %v, expected 60ms", e.Interval())
	}
}

func TestSpawnFoodAvoidsSnake(t *testing.T) {
	e := NewEngine(config.DefaultRules(), 99)
	e.Reset(20, 10)

	for i := 0; i < 500; i++ {
		e.spawnFood()
		if !e.food.In(20, 10) {
			t.Fatalf("food %v out of bounds", e.food)
		}
		if e.occupied(e.food) {
			t.Fatalf("food spawned on snake at %v", e.food)
		}
	}
}

func TestSpawnFoodFindsLastFreeCell(t *testing.T) {
	e := NewEngine(config.DefaultRules(), 5)
	e.Reset(4, 3)

	free := core.Point{X: 2, Y: 1}
	e.snake = e.snake[:0]
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if p := (core.Point{X: x, Y: y}); p != free {
				e.snake = append(e.snake, p)
			}
		}
	}

	e.spawnFood()
	if e.food != free {
		t.Errorf("food = %v, expected the only free cell %v", e.food, free)
	}
}

func TestSpawnFoodFallbackOnFullBoard(t *testing.T) {
	rules := config.DefaultRules()
	rules.FoodAttempts = 10
	e := NewEngine(rules, 5)
	e.Reset(4, 3)

	e.snake = e.snake[:0]
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			e.snake = append(e.snake, core.Point{X: x, Y: y})
		}
	}

	// Must terminate and accept an occupied cell.
	e.spawnFood()
	if !e.food.In(4, 3) {
		t.Errorf("fallback food %v out of bounds", e.food)
	}
	if !e.occupied(e.food) {
		t.Errorf("on a full board the fallback must land on the snake, got %v", e.food)
	}
}

func TestStateMachine(t *testing.T) {
	e := NewEngine(config.DefaultRules(), 1)
	e.Reset(10, 10)

	if e.Pause() {
		t.Error("idle game cannot pause")
	}
	if res := e.Tick(); res.Moved {
		t.Error("idle game must not move")
	}

	if !e.Start() || e.Status() != StatusRunning {
		t.Fatal("idle -> running failed")
	}
	if e.Start() {
		t.Error("starting a running game should report no change")
	}

	if !e.Pause() || e.Status() != StatusPaused {
		t.Fatal("running -> paused failed")
	}
	head := e.Snapshot().Head()
	if res := e.Tick(); res.Moved || res.Snapshot.Head() != head {
		t.Error("paused game must not move")
	}

	if !e.Start() || e.Status() != StatusRunning {
		t.Fatal("paused -> running failed")
	}

	// Force game over, then start again on the same grid.
	e.snake = []core.Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}}
	e.dir = core.DirLeft
	e.pending = core.DirDown
	e.score = 7
	e.Tick()
	if e.Status() != StatusGameOver {
		t.Fatalf("status = %s, expected game over", e.Status())
	}

	if !e.Start() {
		t.Fatal("game over -> running failed")
	}
	snap := e.Snapshot()
	if snap.Score != 0 || len(snap.Snake) != 3 || snap.Cols != 10 || snap.Rows != 10 {
		t.Errorf("start after game over should reset on the same grid, got\n%s", snap)
	}

	e.Reset(12, 8)
	if e.Status() != StatusIdle {
		t.Errorf("reset should leave the game idle, got %s", e.Status())
	}
}

func TestRandomPlayInvariants(t *testing.T) {
	dirs := []core.Direction{core.DirUp, core.DirDown, core.DirLeft, core.DirRight}
	input := rand.New(rand.NewSource(2024))

	for _, size := range [][2]int{{10, 10}, {5, 4}, {23, 7}} {
		cols, rows := size[0], size[1]
		e := newRunningEngine(t, cols, rows, int64(cols*rows))

		for i := 0; i < 3000; i++ {
			if input.Intn(3) == 0 {
				e.SetDirection(dirs[input.Intn(len(dirs))])
			}
			// Lure the snake towards growth now and then.
			if input.Intn(4) == 0 {
				feed(e)
			}

			before := e.Snapshot()
			res := e.Tick()
			after := res.Snapshot

			if res.GameOver {
				if !slices.Equal(after.Snake, before.Snake) || after.Score != before.Score {
					t.Fatalf("%dx%d: collision mutated state", cols, rows)
				}
				e.Start()
				continue
			}

			grew := len(after.Snake) - len(before.Snake)
			switch {
			case res.Ate && (grew != 1 || after.Score != before.Score+1):
				t.Fatalf("%dx%d: eating should grow by 1 and score +1, got %d/%d", cols, rows, grew, after.Score-before.Score)
			case !res.Ate && (grew != 0 || after.Score != before.Score):
				t.Fatalf("%dx%d: plain move changed length by %d", cols, rows, grew)
			}

			if !after.Head().In(cols, rows) {
				t.Fatalf("%dx%d: head %v out of bounds", cols, rows, after.Head())
			}
			if after.Speed < 6 || after.Speed > 20 {
				t.Fatalf("%dx%d: speed %d out of range", cols, rows, after.Speed)
			}

			seen := make(map[core.Point]bool, len(after.Snake))
			for _, p := range after.Snake {
				if seen[p] {
					t.Fatalf("%dx%d: segment %v duplicated", cols, rows, p)
				}
				seen[p] = true
			}

			if res.Ate && len(after.Snake) < cols*rows-1 && seen[after.Food] {
				t.Fatalf("%dx%d: food %v spawned on the snake", cols, rows, after.Food)
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	// Two engines with the same seed and input produce identical snapshots.
	run := func() Snapshot {
		e := newRunningEngine(t, 16, 12, 12345)
		for i := 0; i < 200; i++ {
			switch i % 40 {
			case 10:
				e.SetDirection(core.DirDown)
			case 20:
				e.SetDirection(core.DirLeft)
			case 30:
				e.SetDirection(core.DirUp)
			case 0:
				e.SetDirection(core.DirRight)
			}
			if e.Tick().GameOver {
				e.Start()
			}
		}
		return e.Snapshot()
	}

	s1, s2 := run(), run()
	if s1.String() != s2.String() {
		t.Errorf("snapshots differ:\n%s\n%s", s1, s2)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	e := newRunningEngine(t, 10, 10, 1)
	snap := e.Snapshot()
	snap.Snake[0] = core.Point{X: 9, Y: 9}

	if e.snake[0] == (core.Point{X: 9, Y: 9}) {
		t.Error("mutating a snapshot changed the engine")
	}
}
