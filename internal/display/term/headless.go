package term

import (
	"github.com/rs/zerolog/log"

	"github.com/five82/onair/internal/anim"
	"github.com/five82/onair/internal/display"
)

// Headless is a display.Renderer with no screen. Text changes go to the log,
// animation is dropped.
type Headless struct {
	scene
}

var _ display.Renderer = (*Headless)(nil)

// NewHeadless returns a log-only renderer.
func NewHeadless() *Headless {
	return &Headless{scene: scene{frame: newFrame()}}
}

func (h *Headless) SetMode(mode display.Mode) {
	if mode != h.frame.Mode {
		log.Debug().Stringer("mode", mode).Msg("display")
	}
	h.scene.SetMode(mode)
}

func (h *Headless) SetStatusText(text string) {
	log.Info().Str("status", text).Msg("display")
	h.scene.SetStatusText(text)
}

func (h *Headless) SetRosterText(text string) {
	if text != h.frame.Roster {
		log.Info().Str("roster", text).Msg("display")
	}
	h.scene.SetRosterText(text)
}

func (h *Headless) SetNotifyText(text string) {
	if text != "" {
		log.Debug().Str("notify", text).Msg("display")
	}
	h.scene.SetNotifyText(text)
}

// SetElementColor is ignored; only text and positions are kept.
func (h *Headless) SetElementColor(anim.Element, anim.RGB) {}

func (h *Headless) SetElementFrame(anim.Element, int) {}

func (h *Headless) Tick() {}

// Frame returns a copy of what would be on screen.
func (h *Headless) Frame() Frame {
	return h.frame.clone()
}
