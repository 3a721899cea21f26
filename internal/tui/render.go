package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"soundpad/internal/board"
	"soundpad/internal/layout"
)

// footerHeight is the single status/help row under the board.
const footerHeight = 1

func (m appModel) View() string {
	// The hit-map only ever describes the frame being drawn. Clearing it
	// up front also covers the help overlay, where no tile is clickable.
	clear(m.hits)

	if !m.ready {
		return ""
	}
	if m.showHelp {
		return m.helpView()
	}

	boardH := max(0, m.height-footerHeight)
	body := lipgloss.NewStyle().
		Height(boardH).
		MaxHeight(boardH).
		Render(renderBoard(m.tree, m.binding, m.hits))

	return body + "\n" + m.footerView()
}

// renderBoard walks the resolved layout tree depth-first, drawing every
// bound tile and recording its rectangle in hits. Nodes without a binding
// (only the container, in practice) draw nothing and record nothing. Each
// node is visited exactly once per frame.
func renderBoard(tree *layout.Tree, binding map[layout.NodeID]board.Clip, hits hitMap) string {
	var rows []string
	var row []string
	rowY := -1
	flush := func() {
		if len(row) > 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}

	var walk func(id layout.NodeID)
	walk = func(id layout.NodeID) {
		if clip, ok := binding[id]; ok {
			if r := tree.Rect(id); !r.Empty() {
				if r.Y != rowY {
					flush()
					rowY = r.Y
				}
				row = append(row, renderTile(clip, r))
				hits[r] = clip
			}
		}
		for _, child := range tree.Children(id) {
			walk(child)
		}
	}
	walk(tree.Root())
	flush()

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderTile draws one bordered tile filling exactly r: trigger key above
// the label, both centered. Rects too small for a border (clipped rows,
// extremely narrow viewports) degrade to a bare block so the drawn region
// still matches the hit rectangle.
func renderTile(clip board.Clip, r layout.Rect) string {
	if r.W < 5 || r.H < 3 {
		return lipgloss.NewStyle().
			Width(r.W).MaxWidth(r.W).
			Height(r.H).MaxHeight(r.H).
			Render(ansi.Truncate(clip.Trigger, r.W, ""))
	}

	trigger := triggerStyle().Render(fmt.Sprintf("[%s]", clip.Trigger))
	label := ansi.Truncate(clip.Label, r.W-2, "…")
	block := tileStyle().
		Width(r.W - 2).
		Height(r.H - 2).
		Render(trigger + "\n" + label)

	// Height is only a minimum in lipgloss; hard-clamp so a clipped rect
	// never draws taller than it hit-tests.
	return lipgloss.NewStyle().MaxHeight(r.H).Render(block)
}

func (m appModel) footerView() string {
	if m.status != "" {
		return statusStyle().Width(m.width).MaxHeight(1).Render(m.status)
	}
	return m.helpBar.View(m.keys)
}
