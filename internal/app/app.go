//go:build ebiten

package app

import (
	"time"

	"mad-maze/internal/core"
	"mad-maze/internal/render"
	"mad-maze/internal/ui"
	"mad-maze/pkg/maze"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var kindKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3, ebiten.KeyDigit4, ebiten.KeyDigit5,
}

// Game adapts a maze session to the ebiten.Game interface.
type Game struct {
	session *core.Session
	painter *render.MazePainter
	hud     *ui.HUD
	overlay *ui.Overlay
	frame   time.Duration
}

// New constructs a Game for the provided session.
func New(session *core.Session, cfg *Config) *Game {
	pal := render.DefaultPalette()
	size := session.Size()
	tps := cfg.TPS
	if tps <= 0 {
		tps = 60
	}
	return &Game{
		session: session,
		painter: render.NewMazePainter(size.W, size.H, render.GeometryForScale(cfg.Scale), pal),
		hud:     ui.NewHUD(session, ui.PanelWidth),
		overlay: ui.NewOverlay(session, pal),
		frame:   time.Second / time.Duration(tps),
	}
}

// Update handles per-frame input and advances the session.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	s := g.session
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		s.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		s.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := s.Restart(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.Reset(time.Now().UnixNano())
		if err := s.Err(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		s.SetInstant(!s.Instant())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		s.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		s.Fill()
	}
	kinds := maze.Kinds()
	for i, key := range kindKeys {
		if i < len(kinds) && inpututil.IsKeyJustPressed(key) {
			if err := s.SetKind(kinds[i]); err != nil {
				return err
			}
		}
	}

	w, _ := g.painter.Size()
	g.hud.Update(w)
	g.overlay.Update()
	s.Advance(g.frame)
	return nil
}

// Draw renders the maze, the legend and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	changes, full := g.session.Drain()
	g.painter.Sync(g.session.Generator().Grid(), changes, full)
	g.painter.Draw(screen, g.session.Cells())
	g.overlay.Draw(screen)
	w, _ := g.painter.Size()
	g.hud.Draw(screen, w)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.painter.Size()
	if g.hud.Width() > 0 && h < minPanelHeight {
		h = minPanelHeight
	}
	return w + g.hud.Width(), h
}

const minPanelHeight = 420
