//go:build ebiten

package ui

import (
	"image/color"

	"mad-maze/internal/core"
	"mad-maze/internal/render"
	"mad-maze/pkg/maze"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type generatorProvider interface {
	Generator() *maze.Generator
}

// Overlay draws a legend of the active run's layers over the maze.
type Overlay struct {
	sim        core.Sim
	pal        render.Palette
	showLegend bool
	pixel      *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, pal render.Palette) *Overlay {
	o := &Overlay{sim: sim, pal: pal, showLegend: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update toggles the legend.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		o.showLegend = !o.showLegend
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.showLegend {
		return
	}
	provider, ok := o.sim.(generatorProvider)
	if !ok {
		return
	}
	entries := Legend(provider.Generator())
	if len(entries) == 0 {
		return
	}

	const (
		swatch = 10
		row    = 16
		pad    = 8
		width  = 120
	)
	face := basicfont.Face7x13
	o.fill(screen, pad, pad, width, pad+row*len(entries), color.RGBA{R: 16, G: 16, B: 20, A: 200})
	for i, e := range entries {
		y := pad + pad/2 + i*row
		col := color.RGBA{}
		if int(e.Cell) < len(o.pal.Cells) {
			col = o.pal.Cells[e.Cell]
		}
		o.fill(screen, 2*pad, y+2, swatch, swatch, col)
		text.Draw(screen, e.Name, face, 2*pad+swatch+6, y+swatch+1, labelColor)
	}
}

func (o *Overlay) fill(dst *ebiten.Image, x, y, w, h int, col color.RGBA) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	dst.DrawImage(o.pixel, op)
}
