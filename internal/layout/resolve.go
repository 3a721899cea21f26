package layout

// Resolve computes a rectangle for every node given the viewport. The
// container occupies exactly the viewport; tiles flow row-major into the
// fitted columns and are clipped to the container, so the union of all tile
// rects never escapes it.
//
// Resolution is lazy: if the viewport matches the one used for the previous
// resolution, the stored geometry is reused untouched. The computation is
// pure, so identical (tree, viewport) inputs always produce identical rects.
func (t *Tree) Resolve(viewport Size) {
	if t.resolved && viewport == t.lastSize {
		return
	}
	t.resolved = true
	t.lastSize = viewport

	clear(t.rects)
	container := Rect{W: max(viewport.W, 0), H: max(viewport.H, 0)}
	t.rects[RootID] = container
	if len(t.tiles) == 0 {
		return
	}

	cols := t.columns(container.W)
	width := t.columnWidth(container.W, cols)
	for i, id := range t.tiles {
		r := Rect{
			X: (i % cols) * width,
			Y: (i / cols) * t.spec.TileHeight,
			W: width,
			H: t.spec.TileHeight,
		}
		if r = r.Intersect(container); !r.Empty() {
			t.rects[id] = r
		}
	}
}

// columns picks the column count for the given container width: as many
// columns as can hold ColMin, never fewer than one (a viewport narrower than
// ColMin still gets a single clamped column), and never more than there are
// tiles (empty trailing tracks collapse, letting the rest widen).
func (t *Tree) columns(width int) int {
	cols := width / t.spec.ColMin
	if cols < 1 {
		cols = 1
	}
	if n := len(t.tiles); cols > n {
		cols = n
	}
	return cols
}

// columnWidth distributes the container width across cols, clamped to the
// spec's range and never wider than the container itself.
func (t *Tree) columnWidth(width, cols int) int {
	w := width / cols
	if w < t.spec.ColMin {
		w = t.spec.ColMin
	}
	if w > t.spec.ColMax {
		w = t.spec.ColMax
	}
	if w > width {
		w = width
	}
	return w
}
