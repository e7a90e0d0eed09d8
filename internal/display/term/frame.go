package term

import (
	"maps"

	"github.com/five82/onair/internal/anim"
	"github.com/five82/onair/internal/display"
)

// Frame is one presented picture of the matrix. It is a value copy; the
// program goroutine never sees the core's working state.
type Frame struct {
	Mode      display.Mode
	Status    string
	Roster    string
	Notify    string
	Positions map[anim.Element][2]int
	Colors    map[anim.Element]anim.RGB
	Frames    map[anim.Element]int
}

func newFrame() Frame {
	return Frame{
		Mode:      display.ModeBoot,
		Positions: map[anim.Element][2]int{},
		Colors:    map[anim.Element]anim.RGB{},
		Frames:    map[anim.Element]int{},
	}
}

func (f Frame) clone() Frame {
	out := f
	out.Positions = maps.Clone(f.Positions)
	out.Colors = maps.Clone(f.Colors)
	out.Frames = maps.Clone(f.Frames)
	return out
}

// scene accumulates draw commands between ticks. It implements everything in
// display.Renderer except Tick.
type scene struct {
	frame Frame
}

func (s *scene) SetMode(mode display.Mode) { s.frame.Mode = mode }

func (s *scene) SetStatusText(text string) { s.frame.Status = text }

func (s *scene) SetRosterText(text string) { s.frame.Roster = text }

func (s *scene) SetNotifyText(text string) { s.frame.Notify = text }

func (s *scene) SetElementPosition(id anim.Element, x, y int) {
	s.frame.Positions[id] = [2]int{x, y}
}

func (s *scene) SetElementColor(id anim.Element, color anim.RGB) {
	s.frame.Colors[id] = color
}

func (s *scene) SetElementFrame(id anim.Element, index int) {
	s.frame.Frames[id] = index
}

// TextWidth is measured in terminal cells, one cell per matrix pixel column.
func (s *scene) TextWidth(_ anim.Element, text string) int {
	return textWidth(text)
}

func (s *scene) Width() int {
	return anim.MatrixWidth
}
