package display

import "github.com/five82/onair/internal/anim"

// Renderer is the device boundary. Implementations draw; they hold no
// polling or mode logic.
type Renderer interface {
	SetMode(mode Mode)
	SetStatusText(text string)
	SetRosterText(text string)
	SetNotifyText(text string)
	SetElementPosition(id anim.Element, x, y int)
	SetElementColor(id anim.Element, color anim.RGB)
	SetElementFrame(id anim.Element, index int)
	// TextWidth reports how many pixels text occupies when drawn as element id.
	TextWidth(id anim.Element, text string) int
	// Width is the visible viewport width in pixels.
	Width() int
	// Tick presents one frame.
	Tick()
}

// Apply forwards a directive to r. Directives that did not cross a threshold
// are skipped.
func Apply(r Renderer, d anim.Directive) {
	if !d.Changed {
		return
	}
	switch d.Kind {
	case anim.KindPosition:
		r.SetElementPosition(d.Element, d.X, d.Y)
	case anim.KindColor:
		r.SetElementColor(d.Element, d.Color)
	case anim.KindFrame:
		r.SetElementFrame(d.Element, d.Frame)
	}
}
