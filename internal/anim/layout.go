package anim

// Layout constants for the 64x32 matrix.
const (
	MatrixWidth  = 64
	MatrixHeight = 32

	LogoMinX = 0
	LogoMaxX = 28
	SpriteX  = 43

	SpriteFrames     = 15
	NotifyBackFrames = 3

	LiveTextX   = 5
	LiveTextY   = 7
	RosterY     = 22
	NotifyLogoX = 24

	rosterScrollMargin = 0
	notifyScrollMargin = 3
)

// Tick divisors for the main composition.
const (
	LiveTextColorEvery = 7
	LogoMoveEvery      = 7
	SpriteFrameEvery   = 4
	RosterScrollEvery  = 2
	RosterColorEvery   = 5
)

// LiveTextColors cycle the "LIVE" label.
var LiveTextColors = []RGB{
	{0, 255, 0},
	{0, 255, 255},
	{0, 0, 255},
	{255, 255, 0},
}

// RosterColors pulse the list of live channel names.
var RosterColors = []RGB{
	{255, 255, 255},
	{200, 200, 200},
	{180, 180, 180},
	{150, 150, 150},
	{180, 180, 180},
	{200, 200, 200},
}

// NotifyBannerColors cycle the "LIVE NOW" banner during the splash.
var NotifyBannerColors = LiveTextColors[1:]

// NewMain builds the clock for the roster composition: patrolling logo,
// sprite, color-cycling "LIVE" label and the scrolling roster.
func NewMain(viewport int) *Clock {
	c := newClock(viewport)
	c.add(TrackLiveTextColor, &track{
		element: ElementLiveText, kind: KindColor, div: Divider{Every: LiveTextColorEvery},
		cycle: &Cycle{N: len(LiveTextColors), Index: len(LiveTextColors) - 1}, palette: LiveTextColors,
	})
	c.add(TrackLogoPatrol, &track{
		element: ElementLogo, kind: KindPosition, div: Divider{Every: LogoMoveEvery},
		patrol: &Patrol{Lo: LogoMinX, Hi: LogoMaxX, Dir: 1},
	})
	c.add(TrackSpriteFrame, &track{
		element: ElementSprite, kind: KindFrame, div: Divider{Every: SpriteFrameEvery},
		cycle: &Cycle{N: SpriteFrames},
	})
	c.add(TrackRosterScroll, &track{
		element: ElementRoster, kind: KindPosition, div: Divider{Every: RosterScrollEvery}, y: RosterY,
		scroll: &Scroll{Viewport: viewport, Margin: rosterScrollMargin},
	})
	c.add(TrackRosterColor, &track{
		element: ElementRoster, kind: KindColor, div: Divider{Every: RosterColorEvery},
		cycle: &Cycle{N: len(RosterColors), Index: len(RosterColors) - 1}, palette: RosterColors,
	})
	return c
}

// NewSplash builds the clock for one "now live" splash. Every track steps on
// every call; the splash loop runs at its own slower step.
func NewSplash(viewport int) *Clock {
	c := newClock(viewport)
	c.add(TrackNotifyBackground, &track{
		element: ElementNotifyBackground, kind: KindFrame, div: Divider{Every: 1},
		cycle: &Cycle{N: NotifyBackFrames, Index: NotifyBackFrames - 1},
	})
	c.add(TrackNotifyBanner, &track{
		element: ElementNotifyBanner, kind: KindColor, div: Divider{Every: 1},
		cycle: &Cycle{N: len(NotifyBannerColors), Index: len(NotifyBannerColors) - 1}, palette: NotifyBannerColors,
	})
	c.add(TrackNotifyScroll, &track{
		element: ElementNotifyName, kind: KindPosition, div: Divider{Every: 1}, y: MatrixHeight,
		scroll: &Scroll{Viewport: viewport, Margin: notifyScrollMargin},
	})
	return c
}
