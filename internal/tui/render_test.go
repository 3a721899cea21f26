package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"soundpad/internal/board"
	"soundpad/internal/layout"
)

func TestViewShowsTriggerAndLabelPerTile(t *testing.T) {
	m, _ := newTestModel(testClips())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 24})

	out := ansi.Strip(m.View())
	for _, want := range []string{"[a]", "airhorn", "[b]", "badum-tss", "[c]", "applause"} {
		if !strings.Contains(out, want) {
			t.Fatalf("view missing %q:\n%s", want, out)
		}
	}
}

func TestViewPopulatesOneHitPerTile(t *testing.T) {
	m, _ := newTestModel(testClips())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 24})
	m.View()

	if len(m.hits) != 3 {
		t.Fatalf("expected 3 hit rectangles, got %d", len(m.hits))
	}
	for r, clip := range m.hits {
		if m.tree.Rect(tileID(t, m, clip)) != r {
			t.Fatalf("hit rect %+v does not match the layout rect for %q", r, clip.Label)
		}
	}
}

func tileID(t *testing.T, m appModel, clip board.Clip) layout.NodeID {
	t.Helper()
	for id, c := range m.binding {
		if c.Label == clip.Label {
			return id
		}
	}
	t.Fatalf("no tile bound to %q", clip.Label)
	return 0
}

func TestUnboundNodeRendersNothing(t *testing.T) {
	// The contract tolerates tiles without a binding: no block, no hit.
	tree := layout.New(layout.DefaultSpec(), 2)
	tree.Resolve(layout.Size{W: 80, H: 24})
	binding := map[layout.NodeID]board.Clip{
		tree.Tiles()[0]: {Trigger: "a", Label: "bound", Data: []byte("a")},
	}

	hits := make(hitMap)
	out := ansi.Strip(renderBoard(tree, binding, hits))
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit entry, got %d", len(hits))
	}
	if !strings.Contains(out, "bound") {
		t.Fatalf("bound tile missing from output:\n%s", out)
	}
}

func TestTileBlockOccupiesItsRect(t *testing.T) {
	clip := board.Clip{Trigger: "a", Label: "airhorn", Data: []byte("a")}
	r := layout.Rect{X: 0, Y: 0, W: 20, H: 5}

	block := renderTile(clip, r)
	lines := strings.Split(block, "\n")
	if len(lines) != r.H {
		t.Fatalf("tile rendered %d lines, want %d", len(lines), r.H)
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != r.W {
			t.Fatalf("tile line %d is %d cells wide, want %d", i, w, r.W)
		}
	}
}

func TestTinyTileDegradesWithoutPanicking(t *testing.T) {
	clip := board.Clip{Trigger: "a", Label: "airhorn", Data: []byte("a")}
	for _, r := range []layout.Rect{
		{W: 3, H: 5},
		{W: 10, H: 2},
		{W: 1, H: 1},
	} {
		block := renderTile(clip, r)
		if got := len(strings.Split(block, "\n")); got > r.H {
			t.Fatalf("tile for %+v rendered %d lines, taller than its rect", r, got)
		}
	}
}

func TestLongLabelIsTruncated(t *testing.T) {
	clip := board.Clip{Trigger: "a", Label: strings.Repeat("x", 100), Data: []byte("a")}
	block := renderTile(clip, layout.Rect{W: 12, H: 5})
	for _, line := range strings.Split(block, "\n") {
		if w := ansi.StringWidth(line); w > 12 {
			t.Fatalf("label overflowed its tile: line %d cells wide", w)
		}
	}
}

func TestFooterShowsStatusOverHelp(t *testing.T) {
	m, _ := newTestModel(testClips())
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})

	if out := ansi.Strip(m.footerView()); !strings.Contains(out, "quit") {
		t.Fatalf("idle footer should show key help, got=%q", out)
	}

	m.status = "playing airhorn"
	if out := ansi.Strip(m.footerView()); !strings.Contains(out, "playing airhorn") {
		t.Fatalf("footer should show the status line, got=%q", out)
	}
}
