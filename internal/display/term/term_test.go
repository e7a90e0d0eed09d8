package term

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/onair/internal/anim"
	"github.com/five82/onair/internal/display"
)

func plain(s string) []string {
	return strings.Split(ansi.Strip(s), "\n")
}

func TestCompose_BootShowsStatus(t *testing.T) {
	f := newFrame()
	f.Status = "Get Token"

	lines := plain(compose(f))
	require.Len(t, lines, rows+2)
	assert.Contains(t, lines[1], "twitch")
	assert.Contains(t, lines[1+statusRow], "Get Token")
}

func TestCompose_RosterClipsToMatrix(t *testing.T) {
	f := newFrame()
	f.Mode = display.ModeRoster
	f.Roster = "alice  bob  "
	f.Positions[anim.ElementRoster] = [2]int{-3, anim.RosterY}
	f.Positions[anim.ElementLogo] = [2]int{10, 0}

	lines := plain(compose(f))
	for _, line := range lines[1 : rows+1] {
		assert.Equal(t, cols+2, textWidth(line))
	}
	assert.Contains(t, lines[1+anim.RosterY/2], "ce  bob")
	assert.NotContains(t, lines[1+anim.RosterY/2], "alice")
	assert.Contains(t, lines[1+anim.LiveTextY/2], liveText)
	assert.True(t, strings.HasPrefix(lines[1], "│"+strings.Repeat(" ", 10)+"▌"))
}

func TestCompose_IdleHasNoLiveLabel(t *testing.T) {
	f := newFrame()
	f.Mode = display.ModeIdle
	f.Roster = "stale"

	out := ansi.Strip(compose(f))
	assert.NotContains(t, out, liveText)
	assert.NotContains(t, out, "stale")
}

func TestCompose_NotifyShowsBannerAndName(t *testing.T) {
	f := newFrame()
	f.Mode = display.ModeNotify
	f.Notify = "kruge"
	f.Frames[anim.ElementNotifyBackground] = 2
	f.Positions[anim.ElementNotifyName] = [2]int{0, anim.MatrixHeight}
	f.Positions[anim.ElementNotifyLogo] = [2]int{anim.NotifyLogoX, 0}

	lines := plain(compose(f))
	assert.Contains(t, lines[1+bannerRow], bannerText)
	assert.True(t, strings.HasPrefix(strings.TrimPrefix(lines[rows], "│"), "kruge"))
	assert.Contains(t, lines[2], "▓")
}

func TestScene_CloneIsIndependent(t *testing.T) {
	s := scene{frame: newFrame()}
	s.SetElementPosition(anim.ElementLogo, 1, 0)
	snap := s.frame.clone()
	s.SetElementPosition(anim.ElementLogo, 2, 0)

	assert.Equal(t, [2]int{1, 0}, snap.Positions[anim.ElementLogo])
	assert.Equal(t, anim.MatrixWidth, s.Width())
	assert.Equal(t, 5, s.TextWidth(anim.ElementRoster, "alice"))
}

func TestModel_QuitKey(t *testing.T) {
	quit := 0
	m := model{frame: newFrame(), keys: defaultKeyMap(), onQuit: func() { quit++ }}

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Nil(t, cmd)
	assert.Zero(t, quit)

	f := newFrame()
	f.Status = "Get status"
	next, _ = next.Update(f)
	assert.Equal(t, "Get status", next.(model).frame.Status)

	_, cmd = next.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, 1, quit)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestScreen_OpenTickClose(t *testing.T) {
	var out bytes.Buffer
	s := Open(nil, tea.WithInput(nil), tea.WithOutput(&out), tea.WithoutSignals())

	s.SetStatusText("Starting!")
	s.Tick()

	done := make(chan error, 1)
	go func() { done <- s.Close() }()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Close did not return")
	}
	require.NoError(t, s.Close())

	// Ticks after the program exits must not block.
	s.Tick()
	assert.NotEmpty(t, out.String())
}

func TestHeadless_KeepsText(t *testing.T) {
	h := NewHeadless()
	h.SetMode(display.ModeRoster)
	h.SetRosterText("alice  ")
	h.SetElementPosition(anim.ElementRoster, 0, anim.RosterY)
	h.SetElementColor(anim.ElementRoster, anim.RGB{R: 1})
	h.Tick()

	f := h.Frame()
	assert.Equal(t, display.ModeRoster, f.Mode)
	assert.Equal(t, "alice  ", f.Roster)
	assert.Equal(t, [2]int{0, anim.RosterY}, f.Positions[anim.ElementRoster])
	assert.Empty(t, f.Colors)
}

func TestHeadless_LogsRosterChanges(t *testing.T) {
	var buf bytes.Buffer
	prev := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = prev })

	h := NewHeadless()
	h.SetRosterText("alice  ")
	h.SetRosterText("alice  ")
	h.SetRosterText("alice  bob  ")

	out := buf.String()
	assert.Equal(t, 2, strings.Count(out, `"roster":`))
	assert.Contains(t, out, `"roster":"alice  bob  "`)
}
