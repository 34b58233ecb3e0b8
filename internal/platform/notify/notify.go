// Package notify fans game events out to side channels such as the log.
package notify

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Log returns a listener that writes every game event to logger.
// Frequent events (food eaten, speed changes) are logged at debug level.
func Log(logger *log.Logger) snake.Listener {
	return snake.ListenerFunc(func(ev snake.Event) {
		snap := ev.Snapshot
		kv := []any{
			"score", snap.Score,
			"speed", snap.Speed,
			"length", len(snap.Snake),
			"tick", snap.Tick,
		}

		switch ev.Kind {
		case snake.EventAte, snake.EventSpeedUp:
			logger.Debug(ev.Kind.String(), kv...)
		case snake.EventReset:
			logger.Info(ev.Kind.String(), "cols", snap.Cols, "rows", snap.Rows)
		default:
			logger.Info(ev.Kind.String(), kv...)
		}
	})
}

// Multi returns a listener that forwards each event to every non-nil
// listener in order.
func Multi(listeners ...snake.Listener) snake.Listener {
	var ls []snake.Listener
	for _, l := range listeners {
		if l != nil {
			ls = append(ls, l)
		}
	}
	return snake.ListenerFunc(func(ev snake.Event) {
		for _, l := range ls {
			l.HandleEvent(ev)
		}
	})
}
