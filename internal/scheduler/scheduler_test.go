package scheduler_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/onair/internal/anim"
	"github.com/five82/onair/internal/display"
	"github.com/five82/onair/internal/display/displaytest"
	"github.com/five82/onair/internal/live"
	"github.com/five82/onair/internal/scheduler"
	"github.com/five82/onair/internal/twitch"
)

type result struct {
	names []string
	err   error
}

// fakeFetcher returns queued results in order and repeats the last one.
type fakeFetcher struct {
	results []result
	calls   int
	tokens  []twitch.Token
	asked   [][]string
}

func (f *fakeFetcher) Authenticate(context.Context) (twitch.Token, error) {
	return "token", nil
}

func (f *fakeFetcher) LiveStatus(_ context.Context, token twitch.Token, names []string) (live.Set, error) {
	f.tokens = append(f.tokens, token)
	f.asked = append(f.asked, names)
	i := f.calls
	if i >= len(f.results) {
		i = len(f.results) - 1
	}
	f.calls++
	r := f.results[i]
	if r.err != nil {
		return live.Set{}, r.err
	}
	return live.NewSet(r.names...), nil
}

type fixture struct {
	fetcher *fakeFetcher
	rec     *displaytest.Recorder
	clock   displaytest.StepClock
	feeds   *displaytest.Feeds
	machine *display.Machine
	s       *scheduler.Scheduler
}

func newFixture(t *testing.T, results ...result) *fixture {
	t.Helper()
	f := &fixture{
		fetcher: &fakeFetcher{results: results},
		rec:     displaytest.New(),
		clock:   displaytest.NewStepClock(),
		feeds:   &displaytest.Feeds{},
	}
	f.machine = display.New(display.Options{
		Renderer: f.rec,
		Clock:    f.clock,
		Liveness: f.feeds,
	})
	f.s = scheduler.New(scheduler.Options{
		Client:   f.fetcher,
		Token:    "token",
		Channels: []string{"alice", "bob", "carol"},
		Machine:  f.machine,
		Clock:    f.clock,
		Liveness: f.feeds,
	})
	return f
}

// tickUntilPoll ticks until the fetcher has been called n times in total.
func (f *fixture) tickUntilPoll(t *testing.T, n int) {
	t.Helper()
	for i := 0; f.fetcher.calls < n; i++ {
		require.Less(t, i, 10000, "scheduler never polled")
		f.s.Tick(context.Background())
	}
}

func ok(names ...string) result { return result{names: names} }

func fail(err error) result { return result{err: err} }

// A: channels live at boot never splash; a later newcomer does.
func TestScheduler_BootThenNewlyLive(t *testing.T) {
	f := newFixture(t, ok("bob"), ok("alice", "bob"))

	require.NoError(t, f.s.Poll(context.Background()))
	assert.Equal(t, display.ModeRoster, f.machine.Mode())
	assert.Empty(t, f.rec.Splashes())
	assert.Equal(t, "bob  ", f.rec.Roster())

	f.tickUntilPoll(t, 2)
	assert.Equal(t, []string{"alice"}, f.rec.Splashes())
	assert.Equal(t, "alice  bob  ", f.rec.Roster())
	assert.Equal(t, display.ModeRoster, f.machine.Mode())
	assert.Equal(t, []twitch.Token{"token", "token"}, f.fetcher.tokens)
	assert.Equal(t, []string{"alice", "bob", "carol"}, f.fetcher.asked[0])
}

// B: a failing boot poll keeps BOOT; the first success applies the boot rule.
func TestScheduler_BootPollFailureKeepsBoot(t *testing.T) {
	f := newFixture(t, fail(fmt.Errorf("%w: dial", twitch.ErrTransport)), ok("alice", "bob"))

	err := f.s.Poll(context.Background())
	require.ErrorIs(t, err, twitch.ErrTransport)
	assert.Equal(t, display.ModeBoot, f.machine.Mode())
	assert.Equal(t, 1, f.s.State().Tracker.Snapshot().ConsecutiveFailures)

	f.tickUntilPoll(t, 2)
	assert.Equal(t, display.ModeRoster, f.machine.Mode())
	assert.Empty(t, f.rec.Splashes())
	assert.Equal(t, "alice  bob  ", f.rec.Roster())
	assert.Zero(t, f.s.State().Tracker.Snapshot().ConsecutiveFailures)
}

// C: a steady-state failure changes nothing on the display.
func TestScheduler_FailureIsNoOp(t *testing.T) {
	f := newFixture(t,
		ok("bob"),
		fail(fmt.Errorf("%w: bad json", twitch.ErrMalformed)),
		ok("bob", "carol"),
	)

	require.NoError(t, f.s.Poll(context.Background()))
	rosterCalls := len(f.rec.RosterTexts)
	modeCalls := len(f.rec.Modes)

	f.tickUntilPoll(t, 2)
	snap := f.s.State().Tracker.Snapshot()
	assert.Equal(t, 1, snap.ConsecutiveFailures)
	assert.True(t, errors.Is(snap.LastError, twitch.ErrMalformed))
	assert.True(t, snap.Current.Equal(live.NewSet("bob")))
	assert.Len(t, f.rec.RosterTexts, rosterCalls)
	assert.Len(t, f.rec.Modes, modeCalls)
	assert.Empty(t, f.rec.Splashes())

	f.tickUntilPoll(t, 3)
	assert.Equal(t, []string{"carol"}, f.rec.Splashes())
	assert.Equal(t, "bob  carol  ", f.rec.Roster())
}

func TestScheduler_AllOfflineGoesIdle(t *testing.T) {
	f := newFixture(t, ok("bob"), ok())

	require.NoError(t, f.s.Poll(context.Background()))
	f.tickUntilPoll(t, 2)
	assert.Equal(t, display.ModeIdle, f.machine.Mode())
	assert.Equal(t, "", f.rec.Roster())
}

func TestScheduler_PollsOncePerUpdateDelay(t *testing.T) {
	f := newFixture(t, ok("bob"))

	require.NoError(t, f.s.Poll(context.Background()))
	start := f.clock.Now()

	f.tickUntilPoll(t, 2)
	assert.GreaterOrEqual(t, f.clock.Since(start), scheduler.DefaultUpdateDelay)
	assert.Less(t, f.clock.Since(start), scheduler.DefaultUpdateDelay+scheduler.DefaultScrollDelay)
	assert.Equal(t, 2, f.s.State().Polls)
}

func TestScheduler_TickRendersAndFeeds(t *testing.T) {
	f := newFixture(t, ok("bob"))
	require.NoError(t, f.s.Poll(context.Background()))

	ticks := f.rec.Ticks
	feeds := f.feeds.Count
	start := f.clock.Now()

	for i := 0; i < 14; i++ {
		f.s.Tick(context.Background())
	}
	assert.Equal(t, ticks+14, f.rec.Ticks)
	assert.Equal(t, feeds+14, f.feeds.Count)
	assert.Equal(t, 14*scheduler.DefaultScrollDelay, f.clock.Since(start))
	assert.Equal(t, 1, f.fetcher.calls)
	assert.Equal(t, 1, f.s.State().Polls)
	assert.Contains(t, f.rec.Positions, anim.ElementLogo)
}

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })
	return &buf
}

func TestScheduler_WarnsOnceWhenOffline(t *testing.T) {
	dial := fmt.Errorf("%w: no route to host", twitch.ErrTransport)
	f := newFixture(t, ok("bob"), fail(dial), fail(dial), fail(dial), ok("bob"))
	logs := captureLog(t)

	require.NoError(t, f.s.Poll(context.Background()))

	f.tickUntilPoll(t, 2)
	assert.False(t, f.s.State().Offline)
	assert.Equal(t, 0, strings.Count(logs.String(), "status API unreachable"))

	f.tickUntilPoll(t, 3)
	assert.True(t, f.s.State().Offline)
	assert.True(t, f.s.State().Tracker.Snapshot().IsOffline())
	assert.Equal(t, 1, strings.Count(logs.String(), "status API unreachable"))

	f.tickUntilPoll(t, 4)
	assert.Equal(t, 1, strings.Count(logs.String(), "status API unreachable"))

	f.tickUntilPoll(t, 5)
	assert.False(t, f.s.State().Offline)
	assert.Contains(t, logs.String(), "status API reachable again")
	assert.Equal(t, "bob  ", f.rec.Roster())
	assert.Empty(t, f.rec.Splashes())
}

func TestScheduler_RunStopsOnCancel(t *testing.T) {
	f := newFixture(t, ok("bob"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, f.s.Run(ctx))
	assert.Zero(t, f.fetcher.calls)
}

func TestScheduler_Defaults(t *testing.T) {
	assert.Equal(t, 63*time.Second, scheduler.DefaultUpdateDelay)
	assert.Equal(t, 30*time.Millisecond, scheduler.DefaultScrollDelay)
}
