//go:build ebiten

package render

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"mad-maze/pkg/maze"
)

// MazePainter keeps two GPU images in sync with a maze: the wall canvas and
// a one-pixel-per-cell layer image stretched underneath it.
type MazePainter struct {
	canvas *Canvas
	pal    Palette

	walls    *ebiten.Image
	layers   *ebiten.Image
	layerBuf []byte
}

// NewMazePainter allocates a painter for a grid of size w*h.
func NewMazePainter(w, h int, geo Geometry, pal Palette) *MazePainter {
	mp := &MazePainter{canvas: NewCanvas(w, h, geo, pal.Wall), pal: pal}
	mp.alloc()
	return mp
}

func (mp *MazePainter) alloc() {
	w, h := mp.canvas.Cells()
	pw, ph := mp.canvas.Geometry().Size(w, h)
	mp.walls = ebiten.NewImage(pw, ph)
	mp.layers = ebiten.NewImage(w, h)
	mp.layerBuf = make([]byte, 4*w*h)
}

// Sync brings the wall image up to date, either from changes or, when full
// is set, from the whole grid.
func (mp *MazePainter) Sync(r WallReader, changes []maze.WallChange, full bool) {
	w, h := mp.canvas.Cells()
	resized := r.Width() != w || r.Height() != h
	switch {
	case full || resized:
		mp.canvas.Redraw(r)
		if resized {
			mp.alloc()
		}
	case len(changes) > 0:
		mp.canvas.Apply(r, changes)
	default:
		return
	}
	mp.walls.ReplacePixels(mp.canvas.Image().Pix)
}

// Draw paints background, layers and walls onto dst.
func (mp *MazePainter) Draw(dst *ebiten.Image, cells []uint8) {
	w, h := mp.canvas.Cells()
	pw, ph := mp.canvas.Geometry().Size(w, h)
	dst.SubImage(image.Rect(0, 0, pw, ph)).(*ebiten.Image).Fill(mp.pal.Background)

	if len(cells) == w*h {
		fillPaletteRGBA(mp.layerBuf, cells, mp.pal.Cells)
		mp.layers.ReplacePixels(mp.layerBuf)
		geo := mp.canvas.Geometry()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(geo.Cell), float64(geo.Cell))
		op.GeoM.Translate(float64(geo.Wall)/2, float64(geo.Wall)/2)
		dst.DrawImage(mp.layers, op)
	}
	dst.DrawImage(mp.walls, nil)
}

// Size returns the pixel dimensions of the painted maze.
func (mp *MazePainter) Size() (int, int) {
	w, h := mp.canvas.Cells()
	return mp.canvas.Geometry().Size(w, h)
}
