package tui

import (
	"soundpad/internal/board"
	"soundpad/internal/layout"
)

// hitMap maps a tile's screen rectangle to the clip a pointer release
// inside it plays. It is authoritative only for the frame that built it:
// every View clears and repopulates it, so entries never outlive a redraw
// or a resize.
type hitMap map[layout.Rect]board.Clip

// at returns the clip behind every rectangle containing (x, y). Layout
// keeps rectangles disjoint, so at most one match is expected; if they ever
// overlapped, all matches are returned.
func (h hitMap) at(x, y int) []board.Clip {
	var out []board.Clip
	for r, clip := range h {
		if r.Contains(x, y) {
			out = append(out, clip)
		}
	}
	return out
}
