package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"soundpad/internal/board"
	"soundpad/internal/layout"
)

// player launches fire-and-forget playback for clip bytes. Satisfied by
// *audio.Launcher; tests substitute a recorder.
type player interface {
	Play(clip []byte)
}

type playbackFailedMsg struct {
	err error
}

// statusFadeMsg clears the transient status line. seq guards against a
// stale fade wiping a newer status.
type statusFadeMsg struct {
	seq int
}

const statusFadeDelay = 3 * time.Second

type keyMap struct {
	Help key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Help, k.Quit}}
}

type appModel struct {
	registry *board.Registry
	launcher player

	// The tree's shape is fixed at construction: one leaf per registry
	// entry for the process lifetime. binding maps each leaf back to its
	// clip and is read-only after this.
	tree    *layout.Tree
	binding map[layout.NodeID]board.Clip

	// hits is the frame-local hit-map, repopulated by every View call.
	hits hitMap

	width  int
	height int
	ready  bool

	keys     keyMap
	helpBar  help.Model
	showHelp bool

	status    string
	statusSeq int
}

func newAppModel(reg *board.Registry, launcher player) appModel {
	tree := layout.New(layout.DefaultSpec(), reg.Len())
	binding := make(map[layout.NodeID]board.Clip, reg.Len())
	for i, id := range tree.Tiles() {
		binding[id] = reg.At(i)
	}

	return appModel{
		registry: reg,
		launcher: launcher,
		tree:     tree,
		binding:  binding,
		hits:     make(hitMap),
		keys:     defaultKeyMap(),
		helpBar:  help.New(),
	}
}

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.helpBar.Width = msg.Width
		m.tree.Resolve(m.boardViewport())
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case playbackFailedMsg:
		return m.setStatus(fmt.Sprintf("playback failed: %v", msg.err))

	case statusFadeMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}
	return m, nil
}

// handleKey resolves a key press: first against every clip trigger (all
// matches fire; triggers are not assumed unique), then against the quit and
// help bindings. Quit intentionally comes after trigger matching.
func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		// Any key closes the overlay without dispatching, except quit,
		// which still quits.
		m.showHelp = false
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	fired := m.registry.Match(msg.String())
	for _, c := range fired {
		m.launcher.Play(c.Data)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	}

	if len(fired) > 0 {
		return m.setStatus("playing " + fired[len(fired)-1].Label)
	}
	return m, nil
}

// handleMouse fires playback for every hit-map rectangle containing a
// button release. Rectangles are disjoint by layout construction, so at
// most one tile is expected, but overlaps would all fire. Everything other
// than a release is ignored.
func (m appModel) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease {
		return m, nil
	}
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	var last board.Clip
	hit := false
	for _, clip := range m.hits.at(msg.X, msg.Y) {
		m.launcher.Play(clip.Data)
		last = clip
		hit = true
	}
	if hit {
		return m.setStatus("playing " + last.Label)
	}
	return m, nil
}

func (m appModel) setStatus(s string) (tea.Model, tea.Cmd) {
	m.status = s
	m.statusSeq++
	seq := m.statusSeq
	return m, tea.Tick(statusFadeDelay, func(time.Time) tea.Msg {
		return statusFadeMsg{seq: seq}
	})
}

// boardViewport is the region handed to the layout engine: everything above
// the one-row footer.
func (m appModel) boardViewport() layout.Size {
	return layout.Size{W: m.width, H: max(0, m.height-footerHeight)}
}
