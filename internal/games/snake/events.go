package snake

// EventKind identifies a game event.
type EventKind int

const (
	EventStarted EventKind = iota
	EventPaused
	EventReset
	EventAte
	EventSpeedUp
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventPaused:
		return "paused"
	case EventReset:
		return "reset"
	case EventAte:
		return "ate"
	case EventSpeedUp:
		return "speed_up"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted by the Controller after the state change it describes.
type Event struct {
	Kind     EventKind
	Snapshot Snapshot
}

// Listener receives game events. Listeners run outside the controller lock
// but must not block: they are called on the game loop.
type Listener interface {
	HandleEvent(ev Event)
}

// ListenerFunc adapts a function to a Listener.
type ListenerFunc func(ev Event)

// HandleEvent calls f(ev).
func (f ListenerFunc) HandleEvent(ev Event) {
	f(ev)
}

// Renderer draws a frame from a snapshot. It is called after every tick,
// after reset and on every status change.
type Renderer interface {
	Render(snap Snapshot)
}

// RenderFunc adapts a function to a Renderer.
type RenderFunc func(snap Snapshot)

// Render calls f(snap).
func (f RenderFunc) Render(snap Snapshot) {
	f(snap)
}
