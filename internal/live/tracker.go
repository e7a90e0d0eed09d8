package live

import (
	"time"
)

// Delta is the outcome of comparing two consecutive polls.
type Delta struct {
	Current      Set
	NewlyLive    []string // case-insensitive alphabetical order
	NewlyOffline Set
	Boot         bool // first successful poll; NewlyLive is always empty
}

// Diff compares previous and current. It is pure and returns the same result
// for the same two sets.
func Diff(previous, current Set) Delta {
	newly := current.Minus(previous)
	return Delta{
		Current:      current,
		NewlyLive:    newly.Sorted(),
		NewlyOffline: previous.Minus(current),
	}
}

// Snapshot is a copy of the tracker state.
type Snapshot struct {
	Previous            Set
	Current             Set
	HasStatus           bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsOffline returns true when the API has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Tracker holds the previous and current live sets. It is owned by a single
// thread of control and does no locking.
type Tracker struct {
	snapshot Snapshot
}

// Observe records a successful poll and returns the transitions it caused. On
// the first observation previous is defined to equal current, so channels that
// are already live at boot never produce notifications.
func (t *Tracker) Observe(current Set, at time.Time) Delta {
	boot := !t.snapshot.HasStatus
	previous := t.snapshot.Current
	if boot {
		previous = current
	}

	t.snapshot.Previous = previous
	t.snapshot.Current = current
	t.snapshot.HasStatus = true
	t.snapshot.LastUpdated = at
	t.snapshot.LastError = nil
	t.snapshot.ConsecutiveFailures = 0

	delta := Diff(previous, current)
	delta.Boot = boot
	return delta
}

// Fail records a failed poll. Previous and current are left untouched.
func (t *Tracker) Fail(err error, at time.Time) {
	t.snapshot.LastError = err
	t.snapshot.LastUpdated = at
	t.snapshot.ConsecutiveFailures++
}

// Snapshot returns the current tracker state.
func (t Tracker) Snapshot() Snapshot {
	return t.snapshot
}
