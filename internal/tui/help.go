package tui

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

var (
	mdRendererMu sync.Mutex
	// Cache renderers by wrap width + style. Creating a renderer with
	// WithAutoStyle can trigger terminal capability/background queries that
	// may block on some terminals, so we pick the style ourselves and cache.
	mdRenderers = map[string]*glamour.TermRenderer{}
)

func renderMarkdown(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 10 {
		width = 10
	}

	style := "light"
	if lipgloss.HasDarkBackground() {
		style = "dark"
	}
	key := fmt.Sprintf("%s:%d", style, width)

	mdRendererMu.Lock()
	r := mdRenderers[key]
	if r == nil {
		rr, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			mdRendererMu.Unlock()
			return md
		}
		mdRenderers[key] = rr
		r = rr
	}
	mdRendererMu.Unlock()

	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(out, "\n")
}

const helpIntro = `# soundpad

Every tile is one clip. Press the key shown on a tile, or click the tile,
to play its clip. Overlapping triggers all play; nothing is queued or cut
short.

## Clips
`

// helpMarkdown lists the board's actual bindings under the static intro.
func (m appModel) helpMarkdown() string {
	var b strings.Builder
	b.WriteString(helpIntro)
	for i := 0; i < m.registry.Len(); i++ {
		c := m.registry.At(i)
		fmt.Fprintf(&b, "- `%s` — %s\n", c.Trigger, c.Label)
	}
	b.WriteString("\nPress any key to close this help. Esc quits.\n")
	return b.String()
}

func (m appModel) helpView() string {
	width := min(m.width-6, 64)
	body := renderMarkdown(m.helpMarkdown(), width)
	box := helpBoxStyle().Render(body)
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
