//go:build ebiten

package ui

import (
	"image"
	"image/color"
	"strconv"

	"mad-maze/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type parameterProvider interface {
	Parameters() core.ParameterSnapshot
}

var keyHelp = []string{
	"space  pause/resume",
	"n      single step",
	"r      restart",
	"s      new seed",
	"1-5    algorithm",
	"i      instant",
	"c / f  clear / fill",
	"l      legend",
	"q      quit",
}

// HUD renders the status and control panel to the right of the maze.
type HUD struct {
	sim      core.Sim
	width    int
	panel    *ebiten.Image
	pixel    *ebiten.Image
	snapshot core.ParameterSnapshot

	controls []hudControl
	setter   core.IntParameterSetter
	offsetX  int
}

type hudControl struct {
	control   core.ParameterControl
	value     int
	known     bool
	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD for the provided session and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		for _, ctrl := range provider.ParameterControls() {
			h.controls = append(h.controls, hudControl{control: ctrl})
		}
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		h.setter = setter
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes the snapshot and handles clicks on the +/- buttons.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	h.offsetX = panelOffsetX
	if provider, ok := h.sim.(parameterProvider); ok {
		h.snapshot = provider.Parameters()
	}
	for i := range h.controls {
		c := &h.controls[i]
		p, ok := h.snapshot.Lookup(c.control.Key)
		c.known = false
		if !ok {
			continue
		}
		if v, err := strconv.Atoi(p.Value); err == nil {
			c.value = v
			c.known = true
		}
	}
	h.handleInput()
}

func (h *HUD) handleInput() {
	if h.setter == nil || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	px := mx - h.offsetX
	if px < 0 {
		return
	}
	for i := range h.controls {
		c := &h.controls[i]
		if !c.known {
			continue
		}
		switch {
		case image.Pt(px, my).In(c.minusRect):
			h.adjust(c, -1)
			return
		case image.Pt(px, my).In(c.plusRect):
			h.adjust(c, 1)
			return
		}
	}
}

func (h *HUD) adjust(c *hudControl, direction int) {
	step := c.control.Step
	if step <= 0 {
		step = 1
	}
	target := c.value + direction*step
	if target < c.control.Min {
		target = c.control.Min
	}
	if target > c.control.Max {
		target = c.control.Max
	}
	if target != c.value && h.setter.SetIntParameter(c.control.Key, target) {
		c.value = target
	}
}

// Draw paints the panel at offsetX.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int) {
	if h == nil || h.width <= 0 {
		return
	}
	height := screen.Bounds().Dy()
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.sim.Name(), face, panelPadding, y, titleColor)
	y += lineSpacing

	for _, group := range h.snapshot.Groups {
		if group.Name != "Run" {
			continue
		}
		for _, p := range group.Params {
			if p.Key == "algorithm" {
				continue
			}
			text.Draw(h.panel, p.Label+": "+p.Value, face, panelPadding, y, labelColor)
			y += lineSpacing
		}
	}

	y += lineSpacing / 2
	for i := range h.controls {
		c := &h.controls[i]
		c.top = y - labelBaseline
		btnY := c.top + (rowHeight-buttonSize)/2
		c.plusRect = image.Rect(h.width-panelPadding-buttonSize, btnY, h.width-panelPadding, btnY+buttonSize)
		c.minusRect = c.plusRect.Sub(image.Pt(buttonSize+buttonGap, 0))

		text.Draw(h.panel, c.control.Label, face, panelPadding, y, labelColor)
		value := "--"
		if c.known {
			value = strconv.Itoa(c.value)
		}
		vw := text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, c.minusRect.Min.X-buttonGap-vw, y, labelColor)
		h.drawButton(c.minusRect, "-", c.known && c.value > c.control.Min)
		h.drawButton(c.plusRect, "+", c.known && c.value < c.control.Max)
		y += rowHeight
	}

	y += lineSpacing / 2
	for _, line := range keyHelp {
		text.Draw(h.panel, line, face, panelPadding, y, dimColor)
		y += lineSpacing
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = dimColor
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

var (
	titleColor = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelColor = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimColor   = color.RGBA{R: 120, G: 120, B: 130, A: 255}
)

const (
	// PanelWidth is the default HUD width.
	PanelWidth = 220

	panelPadding   = 12
	lineSpacing    = 18
	rowHeight      = 32
	buttonSize     = 22
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 16
)
