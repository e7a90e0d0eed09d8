package term

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/onair/internal/anim"
	"github.com/five82/onair/internal/display"
)

// The terminal shows the 64x32 matrix at one cell per column and one row per
// two pixel rows.
const (
	cols = anim.MatrixWidth
	rows = anim.MatrixHeight / 2
)

const (
	logoText   = "▌twitch▐"
	liveText   = "LIVE"
	bannerText = "LIVE NOW"
	bannerRow  = 5
	statusRow  = 8
)

var (
	logoColor    = anim.RGB{R: 145, G: 70, B: 255}
	defaultColor = anim.RGB{R: 255, G: 255, B: 255}
	dimColor     = anim.RGB{R: 60, G: 60, B: 60}

	// Sprite frames come from the spinner set so the idle screen has motion
	// even with nobody live.
	spriteFrames = spinner.MiniDot.Frames

	backgroundFill = []rune{'░', '▒', '▓'}
)

func textWidth(text string) int {
	return lipgloss.Width(text)
}

type cell struct {
	r     rune
	color anim.RGB
}

type canvas [rows][cols]cell

func newCanvas() *canvas {
	var c canvas
	for y := range c {
		for x := range c[y] {
			c[y][x] = cell{r: ' ', color: defaultColor}
		}
	}
	return &c
}

func (c *canvas) fill(r rune, color anim.RGB) {
	for y := range c {
		for x := range c[y] {
			c[y][x] = cell{r: r, color: color}
		}
	}
}

// text draws s starting at pixel column x on the row holding pixel y.
// Anything outside the matrix is clipped.
func (c *canvas) text(x, y int, s string, color anim.RGB) {
	row := min(max(y/2, 0), rows-1)
	for _, r := range s {
		if x >= 0 && x < cols {
			c[row][x] = cell{r: r, color: color}
		}
		x++
	}
}

func (c *canvas) render() string {
	lines := make([]string, rows)
	for y := range c {
		var b strings.Builder
		start := 0
		for x := 1; x <= cols; x++ {
			if x < cols && c[y][x].color == c[y][start].color {
				continue
			}
			var run strings.Builder
			for i := start; i < x; i++ {
				run.WriteRune(c[y][i].r)
			}
			b.WriteString(style(c[y][start].color).Render(run.String()))
			start = x
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

func style(color anim.RGB) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex(color)))
}

func hex(color anim.RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", color.R, color.G, color.B)
}

func colorOf(f Frame, id anim.Element) anim.RGB {
	if c, ok := f.Colors[id]; ok {
		return c
	}
	return defaultColor
}

// compose draws one frame as styled terminal text.
func compose(f Frame) string {
	c := newCanvas()
	switch f.Mode {
	case display.ModeBoot:
		c.text((cols-textWidth(logoText))/2, 0, logoText, logoColor)
		c.text((cols-textWidth(f.Status))/2, statusRow*2, f.Status, defaultColor)
	case display.ModeIdle, display.ModeRoster:
		pos := f.Positions[anim.ElementLogo]
		c.text(pos[0], pos[1], logoText, logoColor)
		frame := f.Frames[anim.ElementSprite] % len(spriteFrames)
		c.text(anim.SpriteX, 0, spriteFrames[frame], defaultColor)
		if f.Mode == display.ModeRoster {
			c.text(anim.LiveTextX, anim.LiveTextY, liveText, colorOf(f, anim.ElementLiveText))
			roster := f.Positions[anim.ElementRoster]
			c.text(roster[0], roster[1], f.Roster, colorOf(f, anim.ElementRoster))
		}
	case display.ModeNotify:
		fill := backgroundFill[f.Frames[anim.ElementNotifyBackground]%len(backgroundFill)]
		c.fill(fill, dimColor)
		logo := f.Positions[anim.ElementNotifyLogo]
		c.text(logo[0], logo[1], logoText, logoColor)
		c.text((cols-textWidth(bannerText))/2, bannerRow*2, bannerText, colorOf(f, anim.ElementNotifyBanner))
		name := f.Positions[anim.ElementNotifyName]
		c.text(name[0], name[1], f.Notify, defaultColor)
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(hex(dimColor))).
		Render(c.render())
}
