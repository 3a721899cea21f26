// Package layout computes the tile grid for the soundboard.
//
// The tree is a single container holding one leaf per clip; its shape is
// fixed at construction and only the derived geometry changes. Tiles flow
// row-major into as many columns as fit the viewport, with each column's
// width clamped to the grid's [ColMin, ColMax] range. Resolution is memoized
// on the viewport size, so repeated frames at a stable size cost nothing.
//
// Nodes are identified by lightweight NodeID handles rather than pointers;
// callers keep their own side maps (clip bindings, hit rectangles) keyed by
// NodeID, which keeps the tree free of back-references.
package layout

// NodeID identifies a node in a Tree. The root container is always RootID;
// tile leaves are numbered 1..N in board order.
type NodeID int

const RootID NodeID = 0

// Spec is the sizing constraint set for the board grid.
type Spec struct {
	ColMin     int // narrowest a column may be, in cells
	ColMax     int // widest a column may grow, in cells
	TileHeight int
}

// DefaultSpec is the board grid used by the TUI.
func DefaultSpec() Spec {
	return Spec{ColMin: 10, ColMax: 40, TileHeight: 5}
}

// Tree is the constraint tree plus its most recent geometry resolution.
// It is not safe for concurrent use; the TUI owns it on its update path.
type Tree struct {
	spec  Spec
	tiles []NodeID

	resolved bool
	lastSize Size
	rects    map[NodeID]Rect
}

// New builds a tree with one tile leaf per clip. The shape never changes
// afterwards; only Resolve updates the geometry.
func New(spec Spec, tiles int) *Tree {
	t := &Tree{
		spec:  spec,
		rects: make(map[NodeID]Rect, tiles+1),
	}
	for i := 0; i < tiles; i++ {
		t.tiles = append(t.tiles, NodeID(i+1))
	}
	return t
}

func (t *Tree) Root() NodeID { return RootID }

// Tiles returns the tile leaves in board order.
func (t *Tree) Tiles() []NodeID { return t.tiles }

// Children returns the children of id: the tiles for the root, nothing for
// a leaf.
func (t *Tree) Children(id NodeID) []NodeID {
	if id == RootID {
		return t.tiles
	}
	return nil
}

// Rect returns the rectangle resolved for id by the last Resolve call.
// Unresolved or clipped-away nodes yield the zero Rect.
func (t *Tree) Rect(id NodeID) Rect {
	return t.rects[id]
}
