package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"soundpad/internal/audio"
	"soundpad/internal/board"
)

// Run starts the interactive board and blocks until the user quits. The
// alternate screen, raw mode, and mouse capture are released by Bubble Tea
// on every exit path, including errors.
func Run(reg *board.Registry) error {
	applyColorProfilePreference()
	applyThemePreference()

	notifier := &programNotifier{}
	launcher := audio.NewLauncher(notifier.playbackFailed)

	m := newAppModel(reg, launcher)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	notifier.attach(p)

	_, err := p.Run()
	return err
}

// programNotifier forwards playback failures from detached playback
// goroutines into the Bubble Tea message loop. The program is attached
// after construction, so access is guarded: a failure racing startup is
// dropped rather than dereferencing a nil program.
type programNotifier struct {
	mu      sync.Mutex
	program *tea.Program
}

func (n *programNotifier) attach(p *tea.Program) {
	n.mu.Lock()
	n.program = p
	n.mu.Unlock()
}

func (n *programNotifier) playbackFailed(err error) {
	n.mu.Lock()
	p := n.program
	n.mu.Unlock()
	if p != nil {
		p.Send(playbackFailedMsg{err: err})
	}
}
