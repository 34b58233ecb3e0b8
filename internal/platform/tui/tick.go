// Package tui provides the Bubble Tea frontend for the snake game: the
// terminal UI loop, key bindings, rendering and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent when a game tick is due. Gen identifies the timer that
// produced it; ticks of a replaced or cancelled timer are dropped.
type TickMsg struct {
	Gen  uint64
	Time time.Time
}

// tickCmd returns a command that delivers one TickMsg after interval.
func tickCmd(gen uint64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Gen: gen, Time: t}
	})
}

// teaScheduler implements snake.Scheduler on top of tea.Tick.
//
// Bubble Tea has no cancellable timers, so every Arm starts a new
// generation and a TickMsg is honoured only if its generation is current.
// It is used only from the program's update loop and needs no locking.
type teaScheduler struct {
	gen      uint64
	armed    bool
	interval time.Duration
	fn       func()
	pending  bool // armed but no tick command issued yet
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{}
}

// Arm implements snake.Scheduler.
func (s *teaScheduler) Arm(interval time.Duration, fn func()) {
	s.gen++
	s.armed = true
	s.interval = interval
	s.fn = fn
	s.pending = true
}

// Disarm implements snake.Scheduler.
func (s *teaScheduler) Disarm() {
	s.gen++
	s.armed = false
	s.fn = nil
	s.pending = false
}

// Cmd returns the tick command for a timer armed since the last call,
// or nil.
func (s *teaScheduler) Cmd() tea.Cmd {
	if !s.pending {
		return nil
	}
	s.pending = false
	return tickCmd(s.gen, s.interval)
}

// Handle runs the callback for a current tick and schedules the next one.
func (s *teaScheduler) Handle(msg TickMsg) tea.Cmd {
	if !s.armed || msg.Gen != s.gen {
		return nil
	}

	gen := s.gen
	s.fn()

	// The callback may have re-armed or disarmed the timer.
	if s.armed && s.gen == gen {
		return tickCmd(gen, s.interval)
	}
	return s.Cmd()
}
