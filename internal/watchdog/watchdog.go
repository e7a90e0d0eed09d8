// Package watchdog restarts the process when the main loop stops feeding it.
//
// It stands in for a hardware watchdog: once started, Feed must be called at
// least every Timeout or the expiry handler runs. The handler normally exits
// the process so a supervisor can start it again.
package watchdog

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// DefaultTimeout is the longest gap allowed between feeds.
const DefaultTimeout = 16 * time.Second

// Watchdog fires onExpire when it is not fed in time.
type Watchdog struct {
	clock    clockwork.Clock
	timeout  time.Duration
	onExpire func()

	mu      sync.Mutex
	timer   clockwork.Timer
	fired   bool
	stopped bool
}

// New builds a stopped Watchdog. A nil clock uses the real clock.
func New(clock clockwork.Clock, timeout time.Duration, onExpire func()) *Watchdog {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Watchdog{clock: clock, timeout: timeout, onExpire: onExpire}
}

// Start arms the watchdog. Calling Start twice is a no-op.
func (w *Watchdog) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil || w.stopped {
		return
	}
	log.Info().Dur("timeout", w.timeout).Msg("watchdog enabled")
	w.timer = w.clock.AfterFunc(w.timeout, w.expire)
}

// Feed pushes the deadline out by one timeout.
func (w *Watchdog) Feed() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer == nil || w.stopped || w.fired {
		return
	}
	w.timer.Reset(w.timeout)
}

// Stop disarms the watchdog for good.
func (w *Watchdog) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.stopped = true
	if w.timer != nil {
		w.timer.Stop()
	}
}

// Timeout returns the configured timeout.
func (w *Watchdog) Timeout() time.Duration {
	return w.timeout
}

func (w *Watchdog) expire() {
	w.mu.Lock()
	if w.stopped || w.fired {
		w.mu.Unlock()
		return
	}
	w.fired = true
	handler := w.onExpire
	w.mu.Unlock()

	log.Error().Dur("timeout", w.timeout).Msg("watchdog expired")
	if handler != nil {
		handler()
	}
}
