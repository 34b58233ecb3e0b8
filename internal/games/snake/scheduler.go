package snake

import (
	"sync"
	"time"
)

// Scheduler drives the game loop. At most one timer is armed at a time:
// Arm replaces any active timer and Disarm cancels it. Once Arm or Disarm
// returns, no new callback of the replaced timer starts.
type Scheduler interface {
	Arm(interval time.Duration, fn func())
	Disarm()
}

// TickerScheduler is a Scheduler backed by a time.Ticker goroutine.
//
// Without a dispatcher fn runs on the ticker goroutine. With one, each tick
// is handed to dispatch so the caller can run it on its own event loop;
// generation checks make ticks queued before a re-arm harmless. Without a
// dispatcher a callback that passed its check just before Arm or Disarm may
// still run once afterwards; Controller discards such ticks itself.
type TickerScheduler struct {
	mu       sync.Mutex
	gen      uint64
	stop     chan struct{}
	dispatch func(func())
}

// NewTickerScheduler creates a scheduler. dispatch may be nil.
func NewTickerScheduler(dispatch func(func())) *TickerScheduler {
	return &TickerScheduler{dispatch: dispatch}
}

// Arm starts ticking every interval, cancelling the previous timer.
func (s *TickerScheduler) Arm(interval time.Duration, fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.disarmLocked()
	s.gen++
	s.stop = make(chan struct{})

	go s.run(interval, s.gen, s.stop, fn)
}

// Disarm stops ticking. It does not wait for the ticker goroutine, so it is
// safe to call from inside a tick callback.
func (s *TickerScheduler) Disarm() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disarmLocked()
}

func (s *TickerScheduler) disarmLocked() {
	if s.stop == nil {
		return
	}
	close(s.stop)
	s.stop = nil
	s.gen++
}

func (s *TickerScheduler) run(interval time.Duration, gen uint64, stop <-chan struct{}, fn func()) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	call := func() {
		if s.current(gen) {
			fn()
		}
	}

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			if s.dispatch != nil {
				s.dispatch(call)
			} else {
				call()
			}
		}
	}
}

func (s *TickerScheduler) current(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stop != nil && s.gen == gen
}
