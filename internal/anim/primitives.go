package anim

// Divider fires once every Every calls to Step. Animation speed is tied to
// how often the loop calls Step, not to wall time.
type Divider struct {
	Every int
	count int
}

// Step counts one call and reports whether this call crossed the threshold.
func (d *Divider) Step() bool {
	d.count++
	if d.count >= d.Every {
		d.count = 0
		return true
	}
	return false
}

// Patrol moves back and forth between Lo and Hi inclusive.
type Patrol struct {
	Lo, Hi int
	Pos    int
	Dir    int // +1 or -1
}

// Step moves one unit and turns around on reaching either bound.
func (p *Patrol) Step() {
	if p.Lo >= p.Hi {
		p.Pos = p.Lo
		return
	}
	if p.Dir == 0 {
		p.Dir = 1
	}
	if next := p.Pos + p.Dir; next > p.Hi || next < p.Lo {
		p.Dir = -p.Dir
	}
	p.Pos += p.Dir
	if p.Pos >= p.Hi || p.Pos <= p.Lo {
		p.Dir = -p.Dir
	}
}

// Cycle steps an index through 0..N-1 and wraps.
type Cycle struct {
	N     int
	Index int
}

// Step advances the index.
func (c *Cycle) Step() {
	if c.N <= 0 {
		return
	}
	c.Index = (c.Index + 1) % c.N
}

// Scroll moves content left one unit per step while it is wider than the
// viewport. Content is expected to be drawn twice back to back, so wrapping
// from -(Width+Margin) to 0 is seamless.
type Scroll struct {
	Width    int
	Viewport int
	Margin   int
	Pos      int
}

// Reset sets new content width and returns the position to 0. It reports
// whether the content needs to be duplicated for wraparound.
func (s *Scroll) Reset(width, viewport int) bool {
	s.Width = width
	s.Viewport = viewport
	s.Pos = 0
	return s.Active()
}

// Active reports whether the content is wider than the viewport.
func (s *Scroll) Active() bool {
	return s.Width > s.Viewport
}

// Step moves one unit left, or wraps to 0 at the end of the first copy.
func (s *Scroll) Step() {
	if !s.Active() {
		s.Pos = 0
		return
	}
	if s.Pos <= -(s.Width + s.Margin) {
		s.Pos = 0
		return
	}
	s.Pos--
}
