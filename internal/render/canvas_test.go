package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mad-maze/internal/core"
	random "mad-maze/pkg/core"
	"mad-maze/pkg/maze"
)

func TestIncrementalMatchesRedraw(t *testing.T) {
	for _, kind := range maze.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			gen, err := maze.NewWithSource(9, 6, random.NewRNG(4))
			require.NoError(t, err)
			require.NoError(t, gen.StartGeneration(kind))

			pal := DefaultPalette()
			live := NewCanvas(9, 6, DefaultGeometry(), pal.Wall)
			live.Redraw(gen.Grid())
			for {
				res, err := gen.GenerationStepWithChanges()
				require.NoError(t, err)
				live.Apply(gen.Grid(), res.Changes)
				if res.Finished {
					break
				}
			}

			fresh := NewCanvas(9, 6, DefaultGeometry(), pal.Wall)
			fresh.Redraw(gen.Grid())
			assert.Equal(t, fresh.Image().Pix, live.Image().Pix)
		})
	}
}

func TestCanvasGeometry(t *testing.T) {
	g, err := maze.NewGrid(2, 1)
	require.NoError(t, err)
	wall := color.RGBA{R: 1, G: 2, B: 3, A: 255}
	c := NewCanvas(2, 1, Geometry{Cell: 10, Wall: 2}, wall)
	c.Redraw(g)

	img := c.Image()
	assert.Equal(t, image.Rect(0, 0, 22, 12), img.Bounds())
	assert.Equal(t, wall, img.RGBAAt(0, 0), "corner")
	assert.Equal(t, wall, img.RGBAAt(11, 5), "closed interior wall")
	assert.Equal(t, color.RGBA{}, img.RGBAAt(5, 5), "cell interior")

	vertical := maze.WallChange{X: 0, Y: 0, Type: maze.Vertical}
	require.True(t, g.Closed(vertical))
	g.Clear()
	c.Apply(g, []maze.WallChange{vertical})
	assert.Equal(t, color.RGBA{}, img.RGBAAt(11, 5), "opened wall")
	assert.Equal(t, wall, img.RGBAAt(10, 0), "border stays")
}

func TestCanvasFollowsResize(t *testing.T) {
	g, err := maze.NewGrid(3, 3)
	require.NoError(t, err)
	c := NewCanvas(3, 3, DefaultGeometry(), DefaultPalette().Wall)
	c.Redraw(g)
	require.NoError(t, g.Resize(5, 2))
	c.Apply(g, nil)
	w, h := c.Cells()
	assert.Equal(t, 5, w)
	assert.Equal(t, 2, h)
	pw, ph := DefaultGeometry().Size(5, 2)
	assert.Equal(t, image.Rect(0, 0, pw, ph), c.Image().Bounds())
}

func TestComposeLayersUnderWalls(t *testing.T) {
	g, err := maze.NewGrid(2, 2)
	require.NoError(t, err)
	pal := DefaultPalette()
	geo := DefaultGeometry()
	c := NewCanvas(2, 2, geo, pal.Wall)
	c.Redraw(g)

	cells := []uint8{core.CellVisited, 0, 0, core.CellPath}
	out := Compose(c, cells, pal)

	inside := geo.CellRect(0, 0).Min
	assert.Equal(t, pal.Cells[core.CellVisited], out.RGBAAt(inside.X, inside.Y))
	other := geo.CellRect(1, 0).Min
	assert.Equal(t, pal.Background, out.RGBAAt(other.X, other.Y))
	last := geo.CellRect(1, 1).Min
	assert.Equal(t, pal.Cells[core.CellPath], out.RGBAAt(last.X, last.Y))
	assert.Equal(t, pal.Wall, out.RGBAAt(0, 0))
}

func TestLayerImage(t *testing.T) {
	pal := DefaultPalette()
	img := LayerImage([]uint8{0, core.CellEdge, core.CellSetBase}, 3, 1, pal)
	assert.Equal(t, color.RGBA{}, img.RGBAAt(0, 0))
	assert.Equal(t, pal.Cells[core.CellEdge], img.RGBAAt(1, 0))
	assert.Equal(t, pal.Cells[core.CellSetBase], img.RGBAAt(2, 0))

	empty := LayerImage([]uint8{1}, 3, 1, pal)
	assert.Equal(t, color.RGBA{}, empty.RGBAAt(1, 0), "mismatched input leaves the image blank")
}

func TestPaletteSetHuesDiffer(t *testing.T) {
	pal := DefaultPalette()
	require.Len(t, pal.Cells, 256)
	assert.Equal(t, color.RGBA{}, pal.Cells[core.CellNone])
	seen := map[color.RGBA]bool{}
	for i := int(core.CellSetBase); i < int(core.CellSetBase)+12; i++ {
		c := pal.Cells[i]
		assert.Equal(t, uint8(255), c.A)
		assert.False(t, seen[c], "set color %d repeats", i)
		seen[c] = true
	}
	assert.Equal(t, GeometryForScale(2), Geometry{Cell: 2, Wall: 1})
}
