//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"mad-maze/internal/app"
	"mad-maze/internal/core"
	"mad-maze/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	log.SetPrefix("[maze] ")
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(".env"); err != nil {
		log.Fatal(err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()
	cfg.Normalize()

	sc, err := cfg.Session()
	if err != nil {
		log.Fatal(err)
	}
	session, err := core.NewSession(sc)
	if err != nil {
		log.Fatalf("start session: %v", err)
	}

	game := app.New(session, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("mad-maze: " + session.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	log.Printf("%s %dx%d speed %d, panel %dpx", session.Name(), sc.Width, sc.Height, sc.Speed, ui.PanelWidth)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
