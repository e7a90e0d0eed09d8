package displaytest

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// StepClock is a fake clock whose Sleep advances time instead of blocking,
// so loops that sleep run to completion on the test goroutine.
type StepClock struct {
	*clockwork.FakeClock
}

// NewStepClock returns a StepClock starting at a fixed instant.
func NewStepClock() StepClock {
	return StepClock{FakeClock: clockwork.NewFakeClockAt(time.Date(2023, 2, 1, 12, 0, 0, 0, time.UTC))}
}

func (c StepClock) Sleep(d time.Duration) {
	c.Advance(d)
}

var _ clockwork.Clock = StepClock{}

// Feeds counts liveness signals.
type Feeds struct {
	Count int
}

func (f *Feeds) Feed() {
	f.Count++
}
