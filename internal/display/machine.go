package display

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/five82/onair/internal/anim"
	"github.com/five82/onair/internal/live"
)

const (
	DefaultDwell = 15 * time.Second
	DefaultStep  = 100 * time.Millisecond
)

// Liveness is fed while the machine is doing real work, including inside
// the blocking splash loop.
type Liveness interface {
	Feed()
}

type nopLiveness struct{}

func (nopLiveness) Feed() {}

// Options configure a Machine.
type Options struct {
	Renderer Renderer
	Clock    clockwork.Clock
	Liveness Liveness
	// Animator drives the roster composition. Nil uses anim.NewMain.
	Animator anim.Animator
	// NewSplash builds the animator for one splash. Nil uses anim.NewSplash.
	NewSplash func(viewport int) anim.Animator
	Dwell     time.Duration // how long each splash stays up
	Step      time.Duration // splash animation step
}

// Machine selects the active composition and runs "now live" splashes.
// It is driven from a single thread of control and does no locking.
type Machine struct {
	renderer  Renderer
	clock     clockwork.Clock
	liveness  Liveness
	animator  anim.Animator
	newSplash func(viewport int) anim.Animator
	dwell     time.Duration
	step      time.Duration

	mode   Mode
	queue  []string
	roster string
}

// New builds a Machine in ModeBoot.
func New(opts Options) *Machine {
	m := &Machine{
		renderer:  opts.Renderer,
		clock:     opts.Clock,
		liveness:  opts.Liveness,
		animator:  opts.Animator,
		newSplash: opts.NewSplash,
		dwell:     opts.Dwell,
		step:      opts.Step,
		mode:      ModeBoot,
	}
	if m.clock == nil {
		m.clock = clockwork.NewRealClock()
	}
	if m.liveness == nil {
		m.liveness = nopLiveness{}
	}
	if m.animator == nil {
		m.animator = anim.NewMain(m.renderer.Width())
	}
	if m.newSplash == nil {
		m.newSplash = func(viewport int) anim.Animator { return anim.NewSplash(viewport) }
	}
	if m.dwell <= 0 {
		m.dwell = DefaultDwell
	}
	if m.step <= 0 {
		m.step = DefaultStep
	}
	m.renderer.SetMode(ModeBoot)
	return m
}

// Mode returns the current mode.
func (m *Machine) Mode() Mode {
	return m.mode
}

// Pending returns the channels still waiting for a splash.
func (m *Machine) Pending() []string {
	out := make([]string, len(m.queue))
	copy(out, m.queue)
	return out
}

// ShowStatus puts a short status line on the boot screen. It has no effect
// once the first poll has succeeded.
func (m *Machine) ShowStatus(text string) {
	if m.mode != ModeBoot {
		return
	}
	m.renderer.SetStatusText(text)
	m.renderer.Tick()
}

// OnPollResult consumes one poll's delta. Every newly live channel gets its
// own splash, strictly one after another; the call blocks until all of them
// have been shown. It then updates the roster and returns the resting mode.
func (m *Machine) OnPollResult(ctx context.Context, delta live.Delta) Mode {
	m.queue = append(m.queue, delta.NewlyLive...)
	for len(m.queue) > 0 {
		if ctx.Err() != nil {
			m.queue = nil
			break
		}
		name := m.queue[0]
		m.queue = m.queue[1:]
		m.notify(ctx, name)
	}

	m.setRoster(live.Roster(delta.Current))

	resting := ModeRoster
	if delta.Current.Empty() {
		resting = ModeIdle
	}
	m.setMode(resting)
	return resting
}

// Render advances the roster animations by one tick and presents a frame.
func (m *Machine) Render() {
	for _, tr := range m.animator.Tracks() {
		Apply(m.renderer, m.animator.Advance(tr))
	}
	m.renderer.Tick()
}

func (m *Machine) setMode(mode Mode) {
	if m.mode == mode {
		return
	}
	log.Debug().Stringer("from", m.mode).Stringer("to", mode).Msg("display mode change")
	m.mode = mode
	m.renderer.SetMode(mode)
}

func (m *Machine) setRoster(text string) {
	if text == m.roster {
		return
	}
	m.roster = text
	width := m.renderer.TextWidth(anim.ElementRoster, text)
	if m.animator.SetContent(anim.TrackRosterScroll, width) {
		text += text
	}
	m.renderer.SetRosterText(text)
	m.renderer.SetElementPosition(anim.ElementRoster, 0, anim.RosterY)
}

// notify runs one splash. It blocks for the dwell and feeds liveness on every
// step so a long splash never looks like a hang.
func (m *Machine) notify(ctx context.Context, name string) {
	log.Info().Str("channel", name).Msg("has gone live")

	splash := m.newSplash(m.renderer.Width())
	text := name
	width := m.renderer.TextWidth(anim.ElementNotifyName, name)
	if splash.SetContent(anim.TrackNotifyScroll, width) {
		text = name + " " + name
	}
	m.renderer.SetNotifyText(text)
	m.renderer.SetElementPosition(anim.ElementNotifyName, 0, anim.MatrixHeight)
	m.renderer.SetElementPosition(anim.ElementNotifyLogo, anim.NotifyLogoX, 0)
	m.setMode(ModeNotify)

	start := m.clock.Now()
	for m.clock.Since(start) < m.dwell {
		if ctx.Err() != nil {
			break
		}
		m.liveness.Feed()
		for _, tr := range splash.Tracks() {
			Apply(m.renderer, splash.Advance(tr))
		}
		m.renderer.Tick()
		m.clock.Sleep(m.step)
	}
	m.renderer.SetNotifyText("")
}
