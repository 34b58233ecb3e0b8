// Package term provides a tcell frontend for the snake game.
//
// All game calls happen on the event loop goroutine: key events come from
// PollEvent and ticks are handed over by the scheduler's dispatcher.
package term

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Options configures a tcell game session.
type Options struct {
	Runtime   core.RuntimeConfig
	Config    config.SnakeConfig
	Listeners []snake.Listener
}

// Frontend runs one game on a tcell screen.
type Frontend struct {
	screen tcell.Screen
	buf    *core.Screen
	ctrl   *snake.Controller
	sched  *snake.TickerScheduler
	keys   map[string]core.Action
	draw   snake.DrawOptions
	config core.RuntimeConfig
	frame  snake.Snapshot
	help   string
	ticks  chan func()
	done   chan struct{}
}

// New creates a frontend on an initialised screen.
func New(screen tcell.Screen, opts Options) (*Frontend, error) {
	pal, err := opts.Config.Theme.Palette()
	if err != nil {
		return nil, fmt.Errorf("term: %w", err)
	}

	cfg := opts.Runtime
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Cols == 0 {
		cfg.Cols = opts.Config.Grid.Cols
	}
	if cfg.Rows == 0 {
		cfg.Rows = opts.Config.Grid.Rows
	}
	cfg.ScreenW, cfg.ScreenH = screen.Size()

	f := &Frontend{
		screen: screen,
		buf:    core.NewScreen(cfg.ScreenW, max(0, cfg.ScreenH-1)),
		keys:   make(map[string]core.Action),
		config: cfg,
		ticks:  make(chan func(), 1),
		done:   make(chan struct{}),
	}

	for action, names := range opts.Config.Keys.Bindings() {
		for _, name := range names {
			f.keys[name] = action
		}
	}
	toggle := "space"
	if names := opts.Config.Keys.Toggle; len(names) > 0 && names[0] != " " {
		toggle = names[0]
	}
	f.draw = snake.DrawOptions{Palette: pal, ToggleKey: toggle}
	f.help = helpLine(opts.Config.Keys)

	f.sched = snake.NewTickerScheduler(f.dispatch)
	engine := snake.NewEngine(opts.Config.Rules, cfg.Seed)
	f.ctrl = snake.NewController(engine, f.sched, snake.RenderFunc(f.render), opts.Listeners...)

	return f, nil
}

// dispatch hands a tick to the event loop.
func (f *Frontend) dispatch(fn func()) {
	select {
	case f.ticks <- fn:
	case <-f.done:
	}
}

// Run plays until the quit key is pressed.
func (f *Frontend) Run() {
	defer f.sched.Disarm()
	defer close(f.done)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := f.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-f.done:
				return
			}
		}
	}()

	f.ctrl.Reset(f.config.GridSize())
	for {
		select {
		case fn := <-f.ticks:
			fn()
		case ev := <-events:
			if !f.handleEvent(ev) {
				return
			}
		}
	}
}

// handleEvent processes one terminal event. It returns false on quit.
func (f *Frontend) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return f.handleAction(f.keys[keyName(ev.Key(), ev.Rune())])
	case *tcell.EventResize:
		f.handleResize(ev.Size())
	}
	return true
}

// handleAction applies a game action. It returns false on quit.
func (f *Frontend) handleAction(action core.Action) bool {
	switch action {
	case core.ActionQuit:
		return false
	case core.ActionToggle:
		f.ctrl.Toggle()
	case core.ActionReset:
		f.ctrl.Reset(f.config.GridSize())
	default:
		if d, ok := action.Direction(); ok {
			f.ctrl.SetDirection(d)
		}
	}
	return true
}

// handleResize refits an idle game and redraws anything else.
func (f *Frontend) handleResize(w, h int) {
	f.config.ScreenW, f.config.ScreenH = w, h
	f.buf.Resize(w, max(0, h-1))
	f.screen.Sync()

	if f.frame.Status == snake.StatusIdle {
		cols, rows := f.config.GridSize()
		if cols != f.frame.Cols || rows != f.frame.Rows {
			f.ctrl.Reset(cols, rows)
			return
		}
	}
	f.render(f.frame)
}

// render draws a frame and flushes it to the terminal.
func (f *Frontend) render(snap snake.Snapshot) {
	f.frame = snap
	snake.Draw(f.buf, snap, f.draw)

	f.screen.Clear()
	for y := 0; y < f.buf.Height(); y++ {
		for x := 0; x < f.buf.Width(); x++ {
			cell := f.buf.GetCell(x, y)
			f.screen.SetContent(x, y, cell.Rune, nil, styleFor(cell.Color))
		}
	}
	for i, r := range []rune(f.help) {
		f.screen.SetContent(i, f.buf.Height(), r, nil, styleFor(core.ColorGray))
	}
	f.screen.Show()
}

// Run initialises the terminal, plays one session and restores the terminal.
func Run(opts Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: %w", err)
	}
	defer screen.Fini()

	screen.SetStyle(tcell.StyleDefault)
	screen.HideCursor()

	f, err := New(screen, opts)
	if err != nil {
		return err
	}
	f.Run()
	return nil
}
