package anim

// Element names a drawable on the display.
type Element int

const (
	ElementLogo Element = iota
	ElementSprite
	ElementLiveText
	ElementRoster
	ElementNotifyBackground
	ElementNotifyLogo
	ElementNotifyBanner
	ElementNotifyName
)

var elementNames = map[Element]string{
	ElementLogo:             "logo",
	ElementSprite:           "sprite",
	ElementLiveText:         "live_text",
	ElementRoster:           "roster",
	ElementNotifyBackground: "notify_background",
	ElementNotifyLogo:       "notify_logo",
	ElementNotifyBanner:     "notify_banner",
	ElementNotifyName:       "notify_name",
}

func (e Element) String() string {
	if name, ok := elementNames[e]; ok {
		return name
	}
	return "unknown"
}

// Track names one independently timed animation. Several tracks may target
// the same element (the roster scrolls and changes color on separate tracks).
type Track int

const (
	TrackLogoPatrol Track = iota
	TrackSpriteFrame
	TrackLiveTextColor
	TrackRosterScroll
	TrackRosterColor
	TrackNotifyBackground
	TrackNotifyBanner
	TrackNotifyScroll
)

// Kind says which property a Directive sets.
type Kind int

const (
	KindNone Kind = iota
	KindPosition
	KindColor
	KindFrame
)

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// Directive is the render instruction produced by one Advance call.
type Directive struct {
	Track   Track
	Element Element
	Kind    Kind
	X, Y    int
	Color   RGB
	Frame   int
	Changed bool // a threshold was crossed on this call
}

// Animator is the tick-driven animation source used by the display. Clock is
// the tick-counted implementation; a wall-clock one can replace it.
type Animator interface {
	Tracks() []Track
	Advance(t Track) Directive
	SetContent(t Track, width int) bool
}

type track struct {
	element Element
	kind    Kind
	div     Divider
	y       int
	patrol  *Patrol
	cycle   *Cycle
	scroll  *Scroll
	palette []RGB
}

func (t *track) step() {
	switch {
	case t.patrol != nil:
		t.patrol.Step()
	case t.cycle != nil:
		t.cycle.Step()
	case t.scroll != nil:
		t.scroll.Step()
	}
}

func (t *track) directive(id Track, changed bool) Directive {
	d := Directive{Track: id, Element: t.element, Kind: t.kind, Y: t.y, Changed: changed}
	switch {
	case t.patrol != nil:
		d.X = t.patrol.Pos
	case t.scroll != nil:
		d.X = t.scroll.Pos
	case t.cycle != nil && t.kind == KindColor:
		d.Color = t.palette[t.cycle.Index]
	case t.cycle != nil:
		d.Frame = t.cycle.Index
	}
	return d
}

// Clock is a set of tracks, each with its own tick divider.
type Clock struct {
	viewport int
	order    []Track
	tracks   map[Track]*track
}

func newClock(viewport int) *Clock {
	return &Clock{viewport: viewport, tracks: map[Track]*track{}}
}

func (c *Clock) add(id Track, t *track) {
	c.order = append(c.order, id)
	c.tracks[id] = t
}

// Tracks lists the tracks in the order they should be advanced.
func (c *Clock) Tracks() []Track {
	out := make([]Track, len(c.order))
	copy(out, c.order)
	return out
}

// Advance counts one tick on track t and returns its render directive.
// Unknown tracks return a zero Directive.
func (c *Clock) Advance(id Track) Directive {
	t, ok := c.tracks[id]
	if !ok {
		return Directive{Track: id}
	}
	crossed := t.div.Step()
	if crossed {
		t.step()
	}
	return t.directive(id, crossed)
}

// SetContent gives a scrolling track new content of the given width. The
// position goes back to 0. It reports whether the content must be drawn twice
// for seamless wraparound. Non-scrolling tracks return false.
func (c *Clock) SetContent(id Track, width int) bool {
	t, ok := c.tracks[id]
	if !ok || t.scroll == nil {
		return false
	}
	return t.scroll.Reset(width, c.viewport)
}

var _ Animator = (*Clock)(nil)
