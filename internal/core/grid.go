package core

import "mad-maze/pkg/maze"

// ByteGrid stores a 2D grid of byte-sized cell values in row-major order.
type ByteGrid struct {
	W, H int
	data []uint8
}

// NewByteGrid allocates a grid with the given dimensions.
func NewByteGrid(w, h int) *ByteGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &ByteGrid{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read values directly.
func (g *ByteGrid) Cells() []uint8 { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *ByteGrid) Index(x, y int) int { return y*g.W + x }

// At returns the value at (x, y), or CellNone outside the grid.
func (g *ByteGrid) At(x, y int) uint8 {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return CellNone
	}
	return g.data[g.Index(x, y)]
}

// Clear fills the grid with zeros.
func (g *ByteGrid) Clear() {
	for i := range g.data {
		g.data[i] = 0
	}
}

// Resize reallocates the grid when the dimensions change and clears it.
func (g *ByteGrid) Resize(w, h int) {
	if w == g.W && h == g.H {
		g.Clear()
		return
	}
	*g = *NewByteGrid(w, h)
}

// Paint clears the grid and rasterizes layers in order, so later layers
// overwrite earlier ones. Cells outside the grid are ignored.
func (g *ByteGrid) Paint(layers []maze.CellLayer) {
	g.Clear()
	seen := map[string]int{}
	for _, l := range layers {
		v := LayerCell(l.Name, seen[l.Name])
		seen[l.Name]++
		for _, p := range l.Cells {
			g.set(p, v)
		}
	}
}

// Mark sets a single cell, typically the current position.
func (g *ByteGrid) Mark(p maze.Point, v uint8) { g.set(p, v) }

func (g *ByteGrid) set(p maze.Point, v uint8) {
	if p.X < 0 || p.Y < 0 || p.X >= g.W || p.Y >= g.H {
		return
	}
	g.data[g.Index(p.X, p.Y)] = v
}
