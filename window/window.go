// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package window shows presented frames in a gogpu window.
//
// The data flow is:
//
//	raster.Canvas (draw goroutine) -> Window.Present -> frame (mutex)
//	    -> ggcanvas.Canvas pixmap (render thread) -> GPU texture -> window
//
// Present may be called from any goroutine. Run must be called from the
// main goroutine and blocks until the window is closed.
package window

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/sierpinski"
)

// Common errors returned by Window operations.
var (
	// ErrClosed is returned by Present once the window has been closed.
	ErrClosed = errors.New("window: closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("window: invalid dimensions")
)

// Config describes the window.
type Config struct {
	Title  string
	Width  int
	Height int
}

// DefaultConfig returns an 800x800 window titled for the visualization.
func DefaultConfig() Config {
	return Config{
		Title:  "Sierpinski Triangle Visualization",
		Width:  800,
		Height: 800,
	}
}

// Window displays the most recently presented pixmap.
type Window struct {
	cfg   Config
	frame *frame

	// Render thread only.
	canvas   *ggcanvas.Canvas
	seen     uint64
	uploads  int
	lastSize [2]int
}

// New creates a window description. Nothing is opened until Run.
func New(cfg Config) (*Window, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, cfg.Width, cfg.Height)
	}
	return &Window{
		cfg:   cfg,
		frame: newFrame(cfg.Width, cfg.Height),
	}, nil
}

// Present copies pm into the window's frame. The copy is shown on the
// next redraw. After the window is closed Present returns ErrClosed.
func (w *Window) Present(pm *gg.Pixmap) error {
	return w.frame.store(pm)
}

// Closed reports whether the window has been closed.
func (w *Window) Closed() bool {
	return w.frame.isClosed()
}

// Run opens the window and processes events until it is closed.
func (w *Window) Run() error {
	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(w.cfg.Title).
		WithSize(w.cfg.Width, w.cfg.Height))

	app.OnDraw(func(dc *gogpu.Context) {
		w.draw(app, dc)
	})
	app.OnClose(w.close)

	sierpinski.Logger().Info("window: open", "title", w.cfg.Title, "width", w.cfg.Width, "height", w.cfg.Height)
	return app.Run()
}

func (w *Window) draw(app *gogpu.App, dc *gogpu.Context) {
	width, height := dc.Width(), dc.Height()
	if width <= 0 || height <= 0 {
		return
	}

	if w.canvas == nil {
		provider := app.GPUContextProvider()
		if provider == nil {
			return
		}
		c, err := newSurface(provider, width, height)
		if err != nil {
			sierpinski.Logger().Warn("window: create canvas", "err", err)
			return
		}
		w.canvas = c
		w.lastSize = [2]int{width, height}
	}

	if w.lastSize != [2]int{width, height} {
		if err := w.canvas.Resize(width, height); err != nil {
			sierpinski.Logger().Warn("window: resize canvas", "err", err)
			return
		}
		w.lastSize = [2]int{width, height}
		w.seen = 0
	}

	pm := w.canvas.Context().ResizeTarget()
	if seq, ok := w.frame.copyTo(pm.Data(), width, height, w.seen); ok {
		w.seen = seq
		w.uploads++
		w.canvas.MarkDirty()
	}

	if err := w.canvas.RenderTo(dc.AsTextureDrawer()); err != nil {
		sierpinski.Logger().Warn("window: render", "err", err)
	}
}

// newSurface creates the GPU-backed gg canvas sharing the app's device.
func newSurface(provider gpucontext.DeviceProvider, width, height int) (*ggcanvas.Canvas, error) {
	c, err := ggcanvas.New(provider, width, height)
	if err != nil {
		return nil, fmt.Errorf("window: ggcanvas: %w", err)
	}
	sierpinski.Logger().Debug("window: canvas created", "width", width, "height", height)
	return c, nil
}

func (w *Window) close() {
	w.frame.close()
	if w.canvas != nil {
		_ = w.canvas.Close()
		w.canvas = nil
	}
	sierpinski.Logger().Info("window: closed", "uploads", w.uploads)
}
