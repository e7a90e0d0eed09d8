package display

// Mode is the active composition on the matrix.
type Mode int

const (
	// ModeBoot shows startup status text until the first successful poll.
	ModeBoot Mode = iota
	// ModeIdle is a blank screen: nobody is live.
	ModeIdle
	// ModeRoster shows the patrolling logo, sprite and scrolling roster.
	ModeRoster
	// ModeNotify is the "now live" splash for one channel.
	ModeNotify
)

func (m Mode) String() string {
	switch m {
	case ModeBoot:
		return "BOOT"
	case ModeIdle:
		return "IDLE"
	case ModeRoster:
		return "ROSTER"
	case ModeNotify:
		return "NOTIFY"
	default:
		return "UNKNOWN"
	}
}
