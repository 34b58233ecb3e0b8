package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Options configures a game model.
type Options struct {
	Runtime   core.RuntimeConfig
	Config    config.SnakeConfig
	Listeners []snake.Listener
}

// Model is the Bubble Tea model for one snake game.
type Model struct {
	ctrl     *snake.Controller
	sched    *teaScheduler
	frame    *snake.Snapshot // Last frame published by the controller
	screen   *core.Screen
	config   core.RuntimeConfig
	keys     KeyMap
	help     help.Model
	draw     snake.DrawOptions
	quitting bool
}

// NewModel creates a model with its own engine, controller and scheduler.
func NewModel(opts Options) (Model, error) {
	pal, err := opts.Config.Theme.Palette()
	if err != nil {
		return Model{}, fmt.Errorf("tui: %w", err)
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

	keys := NewKeyMap(opts.Config.Keys)
	frame := &snake.Snapshot{}
	sched := newTeaScheduler()
	renderer := snake.RenderFunc(func(snap snake.Snapshot) { *frame = snap })
	engine := snake.NewEngine(opts.Config.Rules, cfg.Seed)

	return Model{
		ctrl:   snake.NewController(engine, sched, renderer, opts.Listeners...),
		sched:  sched,
		frame:  frame,
		screen: core.NewScreen(cfg.ScreenW, max(0, cfg.ScreenH-1)),
		config: cfg,
		keys:   keys,
		help:   help.New(),
		draw:   snake.DrawOptions{Palette: pal, ToggleKey: keys.ToggleLabel()},
	}, nil
}

// Init starts an idle game sized to the screen.
func (m Model) Init() tea.Cmd {
	m.ctrl.Reset(m.config.GridSize())
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m, m.sched.Handle(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.quitting = true
		m.sched.Disarm()
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case core.ActionToggle:
		m.ctrl.Toggle()
	case core.ActionReset:
		m.ctrl.Reset(m.config.GridSize())
	default:
		if d, ok := action.Direction(); ok {
			m.ctrl.SetDirection(d)
		}
	}

	return m, m.sched.Cmd()
}

// handleResize processes window resize events. An idle game is refitted
// to the new size; a game in progress keeps its grid and is clipped.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(0, msg.Height-1))
	m.help.Width = msg.Width

	if m.frame.Status == snake.StatusIdle {
		cols, rows := m.config.GridSize()
		if cols != m.frame.Cols || rows != m.frame.Rows {
			m.ctrl.Reset(cols, rows)
		}
	}

	return m, nil
}

// saveScreenshot saves the current screen to ~/.snake/screenshots.
func (m *Model) saveScreenshot() {
	snake.Draw(m.screen, *m.frame, m.draw)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("snake_%s.txt", time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// Snapshot returns the last published frame.
func (m Model) Snapshot() snake.Snapshot {
	return *m.frame
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snake.Draw(m.screen, *m.frame, m.draw)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
