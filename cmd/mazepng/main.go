// Command mazepng renders a generated maze, or a snapshot of a run in
// progress, to a PNG file.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"

	"github.com/yalue/image_utils"

	"mad-maze/internal/app"
	"mad-maze/internal/core"
	"mad-maze/internal/render"
)

const arrowLength = 16

func main() {
	log.SetPrefix("[maze] ")
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(".env"); err != nil {
		log.Fatal(err)
	}
	cfg.Bind(flag.CommandLine)
	out := flag.String("out", "maze.png", "output PNG path")
	stopAfter := flag.Int("stop-after", 0, "stop after this many steps and include the run's layers")
	flag.Parse()
	cfg.Normalize()

	pic, err := renderMaze(cfg, *stopAfter)
	if err != nil {
		log.Fatal(err)
	}
	if err := writePNG(*out, pic); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %s (%dx%d px)", *out, pic.Bounds().Dx(), pic.Bounds().Dy())
}

func renderMaze(cfg *app.Config, stopAfter int) (*image.RGBA, error) {
	sc, err := cfg.Session()
	if err != nil {
		return nil, err
	}
	sc.Instant = stopAfter <= 0
	session, err := core.NewSession(sc)
	if err != nil {
		return nil, err
	}
	for i := 0; i < stopAfter && !session.Done(); i++ {
		session.Step()
	}

	pal := render.DefaultPalette()
	geo := render.GeometryForScale(cfg.Scale)
	canvas := render.NewCanvas(sc.Width, sc.Height, geo, pal.Wall)
	canvas.Redraw(session.Generator().Grid())
	flat := render.Compose(canvas, session.Cells(), pal)
	return decorate(flat, geo, sc.Width, sc.Height)
}

// decorate adds an entrance arrow left of the top-left cell and an exit arrow
// right of the bottom-right cell.
func decorate(pic *image.RGBA, geo render.Geometry, w, h int) (*image.RGBA, error) {
	margin := arrowLength + 2
	composite := image_utils.NewCompositeImage()
	if err := composite.AddImage(pic, image.Pt(margin, 0)); err != nil {
		return nil, fmt.Errorf("add maze image: %w", err)
	}

	entrance := outlinedArrow(color.RGBA{R: 40, G: 180, B: 70, A: 255})
	entranceY := geo.CellRect(0, 0).Min.Y + (geo.Cell-geo.Wall)/2 - arrowLength/2
	if err := composite.AddImage(entrance, image.Pt(0, entranceY)); err != nil {
		return nil, fmt.Errorf("add entrance arrow: %w", err)
	}

	exit := outlinedArrow(color.RGBA{R: 100, G: 120, B: 255, A: 255})
	exitY := geo.CellRect(w-1, h-1).Min.Y + (geo.Cell-geo.Wall)/2 - arrowLength/2
	if err := composite.AddImage(exit, image.Pt(margin+pic.Bounds().Dx()+2, exitY)); err != nil {
		return nil, fmt.Errorf("add exit arrow: %w", err)
	}
	return image_utils.ToRGBA(composite), nil
}

func outlinedArrow(c color.Color) image.Image {
	outer := image_utils.ResizeImage(image_utils.RightArrow(c), arrowLength, arrowLength)
	inner := image_utils.ResizeImage(image_utils.RightArrow(color.White), arrowLength/2, arrowLength/2)
	arrow := image_utils.NewCompositeImage()
	arrow.AddImage(outer, image.Pt(0, 0))
	arrow.AddImage(inner, image.Pt(arrowLength/4, arrowLength/4))
	return image_utils.ToRGBA(arrow)
}

func writePNG(path string, pic image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, pic); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}
