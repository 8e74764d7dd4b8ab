// Command sierpinski animates the subdivision of a Sierpinski triangle in
// an 800x800 window. It takes no arguments; close the window to exit.
package main

import (
	"errors"
	"log"
	"log/slog"

	"github.com/gogpu/sierpinski"
	"github.com/gogpu/sierpinski/raster"
	"github.com/gogpu/sierpinski/window"
)

var root = sierpinski.Tri(
	sierpinski.Pt(100, 620),
	sierpinski.Pt(400, 100),
	sierpinski.Pt(700, 620),
)

func main() {
	sierpinski.SetLogger(slog.Default())

	cfg := window.DefaultConfig()
	win, err := window.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create window: %v", err)
	}

	canvas, err := raster.New(cfg.Width, cfg.Height,
		raster.WithBackground(sierpinski.Background),
		raster.WithPresenter(win))
	if err != nil {
		log.Fatalf("Failed to create canvas: %v", err)
	}

	go draw(canvas)

	if err := win.Run(); err != nil {
		log.Fatal(err)
	}
}

// draw runs the subdivision and presents the final result. Closing the
// window makes the next Present fail with window.ErrClosed, which ends it.
func draw(canvas *raster.Canvas) {
	defer canvas.Close()

	err := canvas.Present()
	if err == nil {
		err = sierpinski.Subdivide(canvas, root)
	}
	if err == nil {
		err = canvas.Present()
	}

	switch {
	case err == nil:
		log.Println("Sierpinski triangle complete")
	case errors.Is(err, window.ErrClosed):
	default:
		log.Printf("Drawing failed: %v", err)
	}
}
