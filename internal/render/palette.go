package render

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"mad-maze/internal/core"
)

// Palette holds the colors used to draw a maze. Cells is indexed by the cell
// values Session.Cells produces.
type Palette struct {
	Background color.RGBA
	Wall       color.RGBA
	Cells      []color.RGBA
}

// DefaultPalette returns dark walls over a pale background, with a
// distinct hue per layer and a golden-angle hue wheel for Kruskal sets.
func DefaultPalette() Palette {
	cells := make([]color.RGBA, 256)
	named := map[uint8]string{
		core.CellVisited:  "#cfe3f7",
		core.CellPath:     "#f6a15a",
		core.CellMaze:     "#d4efd6",
		core.CellFrontier: "#f7b6d2",
		core.CellWalk:     "#ffe066",
		core.CellChamber:  "#e3dcf5",
		core.CellEdge:     "#ff6b6b",
	}
	for v, hex := range named {
		cells[v] = opaque(mustParseHex(hex))
	}
	// 40% red, premultiplied.
	cells[core.CellCurrent] = color.RGBA{R: 102, A: 102}
	for i := int(core.CellSetBase); i < len(cells); i++ {
		hue := math.Mod(float64(i-int(core.CellSetBase))*137.508, 360)
		cells[i] = opaque(colorful.Hsv(hue, 0.35, 0.97))
	}
	return Palette{
		Background: opaque(mustParseHex("#f5f5f5")),
		Wall:       opaque(mustParseHex("#1a1a1a")),
		Cells:      cells,
	}
}

func opaque(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// mustParseHex parses a hex colour literal via colorful.Hex, panicking on
// malformed input.
func mustParseHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
