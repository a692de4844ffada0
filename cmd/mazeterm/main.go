package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"mad-maze/internal/app"
	"mad-maze/internal/core"
	"mad-maze/internal/term"
)

func main() {
	log.SetPrefix("[maze] ")
	cfg := app.NewConfig()
	cfg.TPS = 30
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

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("open terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("init terminal: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = term.Run(ctx, screen, session, cfg.TPS)
	stop()
	screen.Fini()
	if err != nil {
		log.Fatal(err)
	}
}
