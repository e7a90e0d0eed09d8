// Package displaytest provides a recording display.Renderer for tests.
package displaytest

import (
	"fmt"
	"unicode/utf8"

	"github.com/five82/onair/internal/anim"
	"github.com/five82/onair/internal/display"
)

// Recorder remembers every call made to it.
type Recorder struct {
	// CharWidth is the pixel width of one character. Zero means 1.
	CharWidth int
	// Viewport is the display width. Zero means anim.MatrixWidth.
	Viewport int

	Modes       []display.Mode
	StatusTexts []string
	RosterTexts []string
	NotifyTexts []string
	Positions   map[anim.Element][2]int
	Colors      map[anim.Element]anim.RGB
	Frames      map[anim.Element]int
	Ticks       int
	Calls       []string
}

var _ display.Renderer = (*Recorder)(nil)

// New returns an empty Recorder.
func New() *Recorder {
	return &Recorder{
		Positions: map[anim.Element][2]int{},
		Colors:    map[anim.Element]anim.RGB{},
		Frames:    map[anim.Element]int{},
	}
}

// Mode returns the last mode set, or ModeBoot when none was set.
func (r *Recorder) Mode() display.Mode {
	if len(r.Modes) == 0 {
		return display.ModeBoot
	}
	return r.Modes[len(r.Modes)-1]
}

// Roster returns the last roster text set.
func (r *Recorder) Roster() string {
	if len(r.RosterTexts) == 0 {
		return ""
	}
	return r.RosterTexts[len(r.RosterTexts)-1]
}

// Splashes returns the non-empty notify texts in the order they were shown.
func (r *Recorder) Splashes() []string {
	var out []string
	for _, text := range r.NotifyTexts {
		if text != "" {
			out = append(out, text)
		}
	}
	return out
}

func (r *Recorder) SetMode(mode display.Mode) {
	r.Modes = append(r.Modes, mode)
	r.Calls = append(r.Calls, "mode:"+mode.String())
}

func (r *Recorder) SetStatusText(text string) {
	r.StatusTexts = append(r.StatusTexts, text)
	r.Calls = append(r.Calls, "status:"+text)
}

func (r *Recorder) SetRosterText(text string) {
	r.RosterTexts = append(r.RosterTexts, text)
	r.Calls = append(r.Calls, "roster:"+text)
}

func (r *Recorder) SetNotifyText(text string) {
	r.NotifyTexts = append(r.NotifyTexts, text)
	r.Calls = append(r.Calls, "notify:"+text)
}

func (r *Recorder) SetElementPosition(id anim.Element, x, y int) {
	r.Positions[id] = [2]int{x, y}
	r.Calls = append(r.Calls, fmt.Sprintf("pos:%s:%d,%d", id, x, y))
}

func (r *Recorder) SetElementColor(id anim.Element, color anim.RGB) {
	r.Colors[id] = color
	r.Calls = append(r.Calls, fmt.Sprintf("color:%s:%d,%d,%d", id, color.R, color.G, color.B))
}

func (r *Recorder) SetElementFrame(id anim.Element, index int) {
	r.Frames[id] = index
	r.Calls = append(r.Calls, fmt.Sprintf("frame:%s:%d", id, index))
}

func (r *Recorder) TextWidth(_ anim.Element, text string) int {
	w := r.CharWidth
	if w <= 0 {
		w = 1
	}
	return utf8.RuneCountInString(text) * w
}

func (r *Recorder) Width() int {
	if r.Viewport > 0 {
		return r.Viewport
	}
	return anim.MatrixWidth
}

func (r *Recorder) Tick() {
	r.Ticks++
}
