package term

import (
	"sync"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/onair/internal/display"
)

type keyMap struct {
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q", "esc"),
			key.WithHelp("q", "Quit"),
		),
	}
}

// model is the bubbletea side of the display. It only ever holds the last
// Frame it was sent.
type model struct {
	frame  Frame
	keys   keyMap
	onQuit func()
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case Frame:
		m.frame = msg
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			if m.onQuit != nil {
				m.onQuit()
			}
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	return compose(m.frame)
}

// Screen is a display.Renderer that presents frames in a terminal program.
// Draw calls only touch local state; Tick hands a copy to the program.
type Screen struct {
	scene
	program *tea.Program
	done    chan error
	once    sync.Once
	err     error
}

var _ display.Renderer = (*Screen)(nil)

// Open starts the terminal program. onQuit runs on the program goroutine when
// the user presses the quit key.
func Open(onQuit func(), opts ...tea.ProgramOption) *Screen {
	m := model{frame: newFrame(), keys: defaultKeyMap(), onQuit: onQuit}
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	s := &Screen{
		scene:   scene{frame: newFrame()},
		program: tea.NewProgram(m, opts...),
		done:    make(chan error, 1),
	}
	go func() {
		_, err := s.program.Run()
		s.done <- err
	}()
	return s
}

// Tick presents the current scene. It returns immediately once the program
// has exited.
func (s *Screen) Tick() {
	s.program.Send(s.frame.clone())
}

// Close stops the program and restores the terminal.
func (s *Screen) Close() error {
	s.once.Do(func() {
		s.program.Quit()
		s.err = <-s.done
	})
	return s.err
}
