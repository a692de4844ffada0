package maze

import (
	"image"

	"mad-maze/pkg/core"
)

// divisionState splits chambers of an open grid with single-gap walls. A
// chamber one cell wide or tall is a corridor and is never split: every
// line through it would be the gap itself.
type divisionState struct {
	chambers []image.Rectangle
	active   image.Rectangle
	passage  Point
	split    bool
}

func newDivisionState(g *Grid) *divisionState {
	return &divisionState{chambers: []image.Rectangle{image.Rect(0, 0, g.w, g.h)}}
}

func (d *divisionState) step(g *Grid, rng core.Source) ([]WallChange, bool) {
	if len(d.chambers) == 0 {
		return nil, true
	}
	last := len(d.chambers) - 1
	c := d.chambers[last]
	d.chambers = d.chambers[:last]
	d.active = c
	if c.Dx() < 2 || c.Dy() < 2 {
		return nil, len(d.chambers) == 0
	}

	var changes []WallChange
	if splitHorizontally(c, rng) {
		wy := c.Min.Y + rng.IntN(c.Dy()-1)
		gap := c.Min.X + rng.IntN(c.Dx())
		for x := c.Min.X; x < c.Max.X; x++ {
			wc := WallChange{X: x, Y: wy, Type: Horizontal}
			if x != gap && g.set(wc, true) {
				changes = append(changes, wc)
			}
		}
		d.passage = Point{X: gap, Y: wy}
		d.chambers = append(d.chambers,
			image.Rect(c.Min.X, c.Min.Y, c.Max.X, wy+1),
			image.Rect(c.Min.X, wy+1, c.Max.X, c.Max.Y))
	} else {
		wx := c.Min.X + rng.IntN(c.Dx()-1)
		gap := c.Min.Y + rng.IntN(c.Dy())
		for y := c.Min.Y; y < c.Max.Y; y++ {
			wc := WallChange{X: wx, Y: y, Type: Vertical}
			if y != gap && g.set(wc, true) {
				changes = append(changes, wc)
			}
		}
		d.passage = Point{X: wx, Y: gap}
		d.chambers = append(d.chambers,
			image.Rect(c.Min.X, c.Min.Y, wx+1, c.Max.Y),
			image.Rect(wx+1, c.Min.Y, c.Max.X, c.Max.Y))
	}
	d.split = true
	return changes, false
}

// splitHorizontally favours cutting across the longer side 3:1 and flips a
// fair coin for square chambers.
func splitHorizontally(c image.Rectangle, rng core.Source) bool {
	switch {
	case c.Dx() > c.Dy():
		return rng.IntN(4) == 0
	case c.Dy() > c.Dx():
		return rng.IntN(4) != 0
	default:
		return rng.IntN(2) == 0
	}
}

func (d *divisionState) layers(g *Grid) []CellLayer {
	if d.active.Empty() {
		return nil
	}
	cells := make([]Point, 0, d.active.Dx()*d.active.Dy())
	for y := d.active.Min.Y; y < d.active.Max.Y; y++ {
		for x := d.active.Min.X; x < d.active.Max.X; x++ {
			cells = append(cells, Point{X: x, Y: y})
		}
	}
	return []CellLayer{{Name: "chamber", Cells: cells}}
}

func (d *divisionState) current() (Point, bool) { return d.passage, d.split }
