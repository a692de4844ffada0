// Package term renders a maze session onto a terminal through tcell and runs
// an interactive loop around it.
package term

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"

	"mad-maze/internal/core"
	"mad-maze/internal/render"
	"mad-maze/pkg/maze"
)

// View draws a session as a block-character maze. Every maze glyph spans two
// terminal columns so cells look roughly square.
type View struct {
	screen tcell.Screen
	wall   tcell.Style
	open   tcell.Style
	text   tcell.Style
	cells  []tcell.Style
}

// NewView binds a view to an initialized screen.
func NewView(screen tcell.Screen, pal render.Palette) *View {
	v := &View{
		screen: screen,
		wall:   tcell.StyleDefault.Background(tcellColor(pal.Wall)),
		open:   tcell.StyleDefault.Background(tcellColor(pal.Background)),
		text:   tcell.StyleDefault,
		cells:  make([]tcell.Style, len(pal.Cells)),
	}
	for i, c := range pal.Cells {
		if c.A == 0 {
			v.cells[i] = v.open
			continue
		}
		v.cells[i] = tcell.StyleDefault.Background(tcellColor(flatten(c, pal.Background)))
	}
	return v
}

// flatten composes a premultiplied color over an opaque background.
func flatten(c, bg color.RGBA) color.RGBA {
	inv := 255 - uint32(c.A)
	mix := func(fg, back uint8) uint8 { return uint8(uint32(fg) + uint32(back)*inv/255) }
	return color.RGBA{R: mix(c.R, bg.R), G: mix(c.G, bg.G), B: mix(c.B, bg.B), A: 255}
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Origin returns the terminal position of maze glyph (gx, gy). Glyph (1, 1)
// is cell (0, 0); even glyph coordinates are walls and posts.
func Origin(gx, gy int) (int, int) { return 2 * gx, gy }

// Draw repaints the maze, the layers and a status line, then shows the
// screen.
func (v *View) Draw(s *core.Session) {
	s.Drain()
	v.screen.Clear()
	g := s.Generator().Grid()
	cells := s.Cells()
	w, h := g.Width(), g.Height()

	cellStyle := func(x, y int) tcell.Style {
		c := int(cells[y*w+x])
		if c < len(v.cells) {
			return v.cells[c]
		}
		return v.open
	}

	for gy := 0; gy <= 2*h; gy++ {
		for gx := 0; gx <= 2*w; gx++ {
			v.put(gx, gy, v.glyphStyle(g, gx, gy, w, h, cellStyle))
		}
	}

	state := "running"
	switch {
	case s.Done():
		state = "done"
	case !s.Generator().Active():
		state = "idle"
	case s.Paused():
		state = "paused"
	}
	status := fmt.Sprintf("%s  %s  steps %d  speed %d", s.Name(), state, s.Steps(), s.Speed())
	v.print(0, 2*h+2, status)
	v.print(0, 2*h+3, "space pause  n step  r restart  s seed  1-5 algorithm  i instant  c/f clear/fill  q quit")
	v.screen.Show()
}

func (v *View) glyphStyle(g *maze.Grid, gx, gy, w, h int, cellStyle func(x, y int) tcell.Style) tcell.Style {
	oddX, oddY := gx%2 == 1, gy%2 == 1
	switch {
	case oddX && oddY:
		return cellStyle(gx/2, gy/2)
	case !oddX && !oddY:
		return v.wall
	case !oddX:
		// Vertical wall to the east of cell (gx/2-1, gy/2).
		x, y := gx/2-1, gy/2
		if x < 0 || x >= w-1 {
			return v.wall
		}
		wc := maze.WallChange{X: x, Y: y, Type: maze.Vertical}
		if g.Closed(wc) {
			return v.wall
		}
		return v.passage(cellStyle(x, y), cellStyle(x+1, y))
	default:
		x, y := gx/2, gy/2-1
		if y < 0 || y >= h-1 {
			return v.wall
		}
		wc := maze.WallChange{X: x, Y: y, Type: maze.Horizontal}
		if g.Closed(wc) {
			return v.wall
		}
		return v.passage(cellStyle(x, y), cellStyle(x, y+1))
	}
}

// passage colors an open wall like its cells when both agree.
func (v *View) passage(a, b tcell.Style) tcell.Style {
	if a == b {
		return a
	}
	return v.open
}

func (v *View) put(gx, gy int, style tcell.Style) {
	x, y := Origin(gx, gy)
	v.screen.SetContent(x, y, ' ', nil, style)
	v.screen.SetContent(x+1, y, ' ', nil, style)
}

func (v *View) print(x, y int, s string) {
	for _, r := range s {
		v.screen.SetContent(x, y, r, nil, v.text)
		x++
	}
}
