package maze

import (
	"fmt"
	"strings"
)

// MaxDimension caps the width and height a grid may be given.
const MaxDimension = 10000

// Grid stores the interior walls of a rectangular maze in two row-major
// bitmaps. The outer border is always closed and is never stored: the
// vertical bit of the last column and the horizontal bit of the last row
// stay false and cannot be queried.
type Grid struct {
	w, h       int
	vertical   []bool
	horizontal []bool
}

// NewGrid allocates a fully walled grid with the given dimensions.
func NewGrid(w, h int) (*Grid, error) {
	if err := checkDimensions(w, h); err != nil {
		return nil, err
	}
	g := &Grid{}
	g.alloc(w, h)
	g.Fill()
	return g, nil
}

func checkDimensions(w, h int) error {
	if w < 1 || h < 1 || w > MaxDimension || h > MaxDimension {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, w, h)
	}
	return nil
}

func (g *Grid) alloc(w, h int) {
	g.w, g.h = w, h
	g.vertical = make([]bool, w*h)
	g.horizontal = make([]bool, w*h)
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.w }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.h }

// Fill closes every interior wall.
func (g *Grid) Fill() { g.setAll(true) }

// Clear opens every interior wall.
func (g *Grid) Clear() { g.setAll(false) }

func (g *Grid) setAll(wall bool) {
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			idx := g.index(x, y)
			g.vertical[idx] = wall && x < g.w-1
			g.horizontal[idx] = wall && y < g.h-1
		}
	}
}

// Resize reallocates the grid and leaves it fully walled. On error the grid
// is unchanged.
func (g *Grid) Resize(w, h int) error {
	if err := checkDimensions(w, h); err != nil {
		return err
	}
	g.alloc(w, h)
	g.Fill()
	return nil
}

// HasVerticalWall reports whether the wall between (x, y) and (x+1, y) is
// closed. Columns x >= Width()-1 address the implicit right border and fail
// with ErrOutOfRange.
func (g *Grid) HasVerticalWall(x, y int) (bool, error) {
	if x < 0 || y < 0 || x >= g.w-1 || y >= g.h {
		return false, fmt.Errorf("%w: vertical wall (%d,%d) on %dx%d grid", ErrOutOfRange, x, y, g.w, g.h)
	}
	return g.vertical[g.index(x, y)], nil
}

// HasHorizontalWall reports whether the wall between (x, y) and (x, y+1) is
// closed. Rows y >= Height()-1 address the implicit bottom border and fail
// with ErrOutOfRange.
func (g *Grid) HasHorizontalWall(x, y int) (bool, error) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h-1 {
		return false, fmt.Errorf("%w: horizontal wall (%d,%d) on %dx%d grid", ErrOutOfRange, x, y, g.w, g.h)
	}
	return g.horizontal[g.index(x, y)], nil
}

// Contains reports whether p lies inside the grid.
func (g *Grid) Contains(p Point) bool {
	return p.X >= 0 && p.Y >= 0 && p.X < g.w && p.Y < g.h
}

// Closed reports whether the wall addressed by c is present. Border walls
// count as closed.
func (g *Grid) Closed(c WallChange) bool {
	var ok bool
	var err error
	if c.Type == Vertical {
		ok, err = g.HasVerticalWall(c.X, c.Y)
	} else {
		ok, err = g.HasHorizontalWall(c.X, c.Y)
	}
	return ok || err != nil
}

func (g *Grid) index(x, y int) int { return y*g.w + x }

func (g *Grid) point(idx int) Point { return Point{X: idx % g.w, Y: idx / g.w} }

// set writes the wall bit addressed by c and reports whether it flipped.
func (g *Grid) set(c WallChange, wall bool) bool {
	bits := g.vertical
	if c.Type == Horizontal {
		bits = g.horizontal
	}
	idx := g.index(c.X, c.Y)
	if bits[idx] == wall {
		return false
	}
	bits[idx] = wall
	return true
}

// between returns the wall separating two orthogonally adjacent cells.
func between(a, b Point) WallChange {
	if a.Y == b.Y {
		return WallChange{X: min(a.X, b.X), Y: a.Y, Type: Vertical}
	}
	return WallChange{X: a.X, Y: min(a.Y, b.Y), Type: Horizontal}
}

// neighbors appends the in-bounds 4-neighbours of p to buf in east, west,
// south, north order.
func (g *Grid) neighbors(p Point, buf []Point) []Point {
	buf = buf[:0]
	if p.X+1 < g.w {
		buf = append(buf, Point{p.X + 1, p.Y})
	}
	if p.X > 0 {
		buf = append(buf, Point{p.X - 1, p.Y})
	}
	if p.Y+1 < g.h {
		buf = append(buf, Point{p.X, p.Y + 1})
	}
	if p.Y > 0 {
		buf = append(buf, Point{p.X, p.Y - 1})
	}
	return buf
}

// String renders the grid as ASCII art with the closed border included.
func (g *Grid) String() string {
	var b strings.Builder
	b.WriteString("+" + strings.Repeat("---+", g.w) + "\n")
	for y := 0; y < g.h; y++ {
		b.WriteString("|")
		for x := 0; x < g.w; x++ {
			if x == g.w-1 || g.vertical[g.index(x, y)] {
				b.WriteString("   |")
			} else {
				b.WriteString("    ")
			}
		}
		b.WriteString("\n+")
		for x := 0; x < g.w; x++ {
			if y == g.h-1 || g.horizontal[g.index(x, y)] {
				b.WriteString("---+")
			} else {
				b.WriteString("   +")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
