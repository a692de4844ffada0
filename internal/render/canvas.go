package render

import (
	"image"
	"image/color"
	"image/draw"

	"mad-maze/pkg/maze"
)

// Geometry sets the pixel layout: cells are Cell pixels apart and walls are
// Wall pixels thick.
type Geometry struct {
	Cell int
	Wall int
}

// DefaultGeometry matches a 12 pixel pitch with 4 pixel walls.
func DefaultGeometry() Geometry { return Geometry{Cell: 12, Wall: 4} }

// GeometryForScale derives a geometry from a cell pitch.
func GeometryForScale(scale int) Geometry {
	return Geometry{Cell: scale, Wall: scale / 3}.normalized()
}

func (g Geometry) normalized() Geometry {
	if g.Wall < 1 {
		g.Wall = 1
	}
	if g.Cell <= g.Wall {
		g.Cell = g.Wall + 1
	}
	return g
}

// Size returns the pixel size of a w*h maze.
func (g Geometry) Size(w, h int) (int, int) {
	return w*g.Cell + g.Wall, h*g.Cell + g.Wall
}

// CellRect is the interior of cell (x, y), excluding every wall strip.
func (g Geometry) CellRect(x, y int) image.Rectangle {
	return image.Rect(x*g.Cell+g.Wall, y*g.Cell+g.Wall, (x+1)*g.Cell, (y+1)*g.Cell)
}

// WallRect is the strip covered by an interior wall, excluding the corner
// posts at both ends.
func (g Geometry) WallRect(c maze.WallChange) image.Rectangle {
	if c.Type == maze.Vertical {
		x := (c.X + 1) * g.Cell
		return image.Rect(x, c.Y*g.Cell+g.Wall, x+g.Wall, (c.Y+1)*g.Cell)
	}
	y := (c.Y + 1) * g.Cell
	return image.Rect(c.X*g.Cell+g.Wall, y, (c.X+1)*g.Cell, y+g.Wall)
}

// WallReader is the read side of a maze grid.
type WallReader interface {
	Width() int
	Height() int
	Closed(c maze.WallChange) bool
}

// Canvas rasterizes walls into an RGBA image whose open areas stay
// transparent, so layers can be drawn underneath.
type Canvas struct {
	w, h int
	geo  Geometry
	wall *image.Uniform
	img  *image.RGBA
}

// NewCanvas allocates a canvas for a w*h maze.
func NewCanvas(w, h int, geo Geometry, wall color.RGBA) *Canvas {
	c := &Canvas{geo: geo.normalized(), wall: image.NewUniform(wall)}
	c.resize(w, h)
	return c
}

func (c *Canvas) resize(w, h int) {
	c.w, c.h = w, h
	pw, ph := c.geo.Size(w, h)
	c.img = image.NewRGBA(image.Rect(0, 0, pw, ph))
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Geometry returns the pixel layout in use.
func (c *Canvas) Geometry() Geometry { return c.geo }

// Cells returns the maze dimensions the canvas is laid out for.
func (c *Canvas) Cells() (int, int) { return c.w, c.h }

// Redraw repaints everything from r, reallocating when the maze dimensions
// changed.
func (c *Canvas) Redraw(r WallReader) {
	if r.Width() != c.w || r.Height() != c.h {
		c.resize(r.Width(), r.Height())
	} else {
		draw.Draw(c.img, c.img.Bounds(), image.Transparent, image.Point{}, draw.Src)
	}
	b := c.img.Bounds()
	t := c.geo.Wall
	c.fill(image.Rect(0, 0, b.Dx(), t))
	c.fill(image.Rect(0, b.Dy()-t, b.Dx(), b.Dy()))
	c.fill(image.Rect(0, 0, t, b.Dy()))
	c.fill(image.Rect(b.Dx()-t, 0, b.Dx(), b.Dy()))
	for y := 1; y < c.h; y++ {
		for x := 1; x < c.w; x++ {
			px, py := x*c.geo.Cell, y*c.geo.Cell
			c.fill(image.Rect(px, py, px+t, py+t))
		}
	}
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			if x < c.w-1 {
				c.paint(r, maze.WallChange{X: x, Y: y, Type: maze.Vertical})
			}
			if y < c.h-1 {
				c.paint(r, maze.WallChange{X: x, Y: y, Type: maze.Horizontal})
			}
		}
	}
}

// Apply repaints only the walls named in changes, reading their state from
// r. The result equals a Redraw of the same grid.
func (c *Canvas) Apply(r WallReader, changes []maze.WallChange) {
	if r.Width() != c.w || r.Height() != c.h {
		c.Redraw(r)
		return
	}
	for _, wc := range changes {
		c.paint(r, wc)
	}
}

func (c *Canvas) paint(r WallReader, wc maze.WallChange) {
	rect := c.geo.WallRect(wc)
	if r.Closed(wc) {
		c.fill(rect)
		return
	}
	draw.Draw(c.img, rect, image.Transparent, image.Point{}, draw.Src)
}

func (c *Canvas) fill(rect image.Rectangle) {
	draw.Draw(c.img, rect, c.wall, image.Point{}, draw.Src)
}

// Compose flattens background, cell layers and walls into one opaque image.
func Compose(c *Canvas, cells []uint8, pal Palette) *image.RGBA {
	out := image.NewRGBA(c.img.Bounds())
	draw.Draw(out, out.Bounds(), image.NewUniform(pal.Background), image.Point{}, draw.Src)
	if len(cells) == c.w*c.h && len(pal.Cells) > 0 {
		last := len(pal.Cells) - 1
		for y := 0; y < c.h; y++ {
			for x := 0; x < c.w; x++ {
				v := int(cells[y*c.w+x])
				if v == 0 {
					continue
				}
				if v > last {
					v = last
				}
				draw.Draw(out, c.geo.CellRect(x, y), image.NewUniform(pal.Cells[v]), image.Point{}, draw.Over)
			}
		}
	}
	draw.Draw(out, out.Bounds(), c.img, image.Point{}, draw.Over)
	return out
}
