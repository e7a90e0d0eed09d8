package scheduler

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/five82/onair/internal/display"
	"github.com/five82/onair/internal/live"
	"github.com/five82/onair/internal/logging"
	"github.com/five82/onair/internal/twitch"
)

const (
	DefaultUpdateDelay = 63 * time.Second
	DefaultScrollDelay = 30 * time.Millisecond
)

// Options configure a Scheduler.
type Options struct {
	Client   twitch.StatusFetcher
	Token    twitch.Token
	Channels []string
	Machine  *display.Machine
	Clock    clockwork.Clock
	Liveness display.Liveness
	// UpdateDelay is the minimum time between polls.
	UpdateDelay time.Duration
	// ScrollDelay is the render tick.
	ScrollDelay time.Duration
	// Zone is used for the poll time in the log. Nil means UTC.
	Zone *time.Location
}

// State is everything the loop owns between ticks.
type State struct {
	Tracker  live.Tracker
	LastPoll time.Time
	Polls    int
	// Offline is set once consecutive failures mark the API unreachable and
	// cleared by the next successful poll.
	Offline bool
}

// Scheduler is the top-level loop. It polls at most once per UpdateDelay and
// renders one animation frame on every other tick. All work happens on the
// calling goroutine.
type Scheduler struct {
	client      twitch.StatusFetcher
	token       twitch.Token
	channels    []string
	machine     *display.Machine
	clock       clockwork.Clock
	liveness    display.Liveness
	updateDelay time.Duration
	scrollDelay time.Duration
	zone        *time.Location

	state State
}

type nopLiveness struct{}

func (nopLiveness) Feed() {}

// New builds a Scheduler. Client and Machine are required.
func New(opts Options) *Scheduler {
	s := &Scheduler{
		client:      opts.Client,
		token:       opts.Token,
		channels:    append([]string(nil), opts.Channels...),
		machine:     opts.Machine,
		clock:       opts.Clock,
		liveness:    opts.Liveness,
		updateDelay: opts.UpdateDelay,
		scrollDelay: opts.ScrollDelay,
		zone:        opts.Zone,
	}
	if s.clock == nil {
		s.clock = clockwork.NewRealClock()
	}
	if s.liveness == nil {
		s.liveness = nopLiveness{}
	}
	if s.updateDelay <= 0 {
		s.updateDelay = DefaultUpdateDelay
	}
	if s.scrollDelay <= 0 {
		s.scrollDelay = DefaultScrollDelay
	}
	if s.zone == nil {
		s.zone = time.UTC
	}
	return s
}

// State returns a copy of the loop state.
func (s *Scheduler) State() State {
	return s.state
}

// Run ticks until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) error {
	for ctx.Err() == nil {
		s.Tick(ctx)
	}
	return nil
}

// Tick runs one iteration: feed liveness, then either poll or render.
func (s *Scheduler) Tick(ctx context.Context) {
	s.liveness.Feed()
	if s.clock.Since(s.state.LastPoll) >= s.updateDelay {
		_ = s.Poll(ctx)
		return
	}
	s.clock.Sleep(s.scrollDelay)
	s.machine.Render()
}

// Poll fetches live status once and hands the result to the display. A failed
// poll is logged and changes nothing but the failure count; the next attempt
// waits a full UpdateDelay. Poll blocks for any splashes the result triggers.
func (s *Scheduler) Poll(ctx context.Context) error {
	now := s.clock.Now()
	s.state.LastPoll = now
	s.state.Polls++
	log.Info().Str("time", now.In(s.zone).Format(logging.TimeFormat)).Msg("checking live status")

	current, err := s.client.LiveStatus(ctx, s.token, s.channels)
	if err != nil {
		s.state.Tracker.Fail(err, now)
		snap := s.state.Tracker.Snapshot()
		log.Warn().Err(err).
			Int("consecutive_failures", snap.ConsecutiveFailures).
			Msg("live status poll failed")
		if snap.IsOffline() && !s.state.Offline {
			s.state.Offline = true
			log.Error().Err(err).
				Int("consecutive_failures", snap.ConsecutiveFailures).
				Msg("status API unreachable")
		}
		return err
	}

	if s.state.Offline {
		s.state.Offline = false
		log.Info().Msg("status API reachable again")
	}
	delta := s.state.Tracker.Observe(current, now)
	for _, name := range delta.NewlyOffline.Sorted() {
		log.Info().Str("channel", name).Msg("has gone offline")
	}
	log.Info().Str("roster", live.Roster(delta.Current)).Bool("boot", delta.Boot).Msg("currently live")

	s.machine.OnPollResult(ctx, delta)
	return nil
}
