// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster implements sierpinski.Canvas on a gg software context.
//
// Outlines are stroked with gg's anti-aliased rasterizer into a Pixmap the
// Canvas owns. Present hands that Pixmap to a Presenter, usually a
// window.Window; without one the Canvas works headless.
package raster

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/gogpu/gg"
	"github.com/gogpu/sierpinski"
)

// Common errors returned by Canvas operations.
var (
	// ErrClosed is returned when drawing on a closed canvas.
	ErrClosed = errors.New("raster: canvas is closed")

	// ErrInvalidDimensions is returned when width or height is invalid.
	ErrInvalidDimensions = errors.New("raster: invalid dimensions")
)

// Presenter receives the canvas buffer on every Present.
// The Pixmap is only valid for the duration of the call.
type Presenter interface {
	Present(pm *gg.Pixmap) error
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(pm *gg.Pixmap) error

// Present calls f(pm).
func (f PresenterFunc) Present(pm *gg.Pixmap) error {
	return f(pm)
}

// Option configures a Canvas during creation.
type Option func(*options)

type options struct {
	background color.Color
	presenter  Presenter
	lineWidth  float64
	sleep      func(time.Duration)
}

func defaultOptions() options {
	return options{
		background: sierpinski.Background,
		lineWidth:  1,
		sleep:      time.Sleep,
	}
}

// WithBackground sets the color the canvas is cleared to. A nil color
// keeps the default.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		if c != nil {
			o.background = c
		}
	}
}

// WithPresenter sets where Present delivers the buffer.
func WithPresenter(p Presenter) Option {
	return func(o *options) {
		o.presenter = p
	}
}

// WithLineWidth sets the outline stroke width in pixels.
func WithLineWidth(w float64) Option {
	return func(o *options) {
		o.lineWidth = w
	}
}

// Canvas draws triangle outlines into a gg.Pixmap.
//
// Canvas is NOT safe for concurrent use. The Presenter is called on the
// goroutine that calls Present.
type Canvas struct {
	dc     *gg.Context
	pm     *gg.Pixmap
	opts   options
	width  int
	height int
	closed bool
}

var _ sierpinski.Canvas = (*Canvas)(nil)

// New creates a width x height canvas cleared to the background color.
func New(width, height int, opts ...Option) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: width=%d, height=%d", ErrInvalidDimensions, width, height)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	pm := gg.NewPixmap(width, height)
	pm.Clear(gg.FromColor(o.background))

	return &Canvas{
		dc:     gg.NewContext(width, height, gg.WithPixmap(pm)),
		pm:     pm,
		opts:   o,
		width:  width,
		height: height,
	}, nil
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (width, height int) {
	return c.width, c.height
}

// Pixmap returns the pixel buffer. It is updated in place by DrawTriangle.
func (c *Canvas) Pixmap() *gg.Pixmap {
	return c.pm
}

// DrawTriangle strokes the outline of t in col. Vertices are placed at
// pixel centers so one-pixel lines cover whole pixels.
func (c *Canvas) DrawTriangle(t sierpinski.Triangle, col color.Color) error {
	if c.closed {
		return ErrClosed
	}

	c.dc.SetColor(col)
	c.dc.SetLineWidth(c.opts.lineWidth)
	for i, p := range t.Points() {
		x, y := center(p)
		if i == 0 {
			c.dc.MoveTo(x, y)
		} else {
			c.dc.LineTo(x, y)
		}
	}
	c.dc.ClosePath()
	if err := c.dc.Stroke(); err != nil {
		return fmt.Errorf("raster: stroke %v: %w", t, err)
	}
	return nil
}

// Present delivers the buffer to the Presenter, if any.
func (c *Canvas) Present() error {
	if c.closed {
		return ErrClosed
	}
	if c.opts.presenter == nil {
		return nil
	}
	if err := c.dc.FlushGPU(); err != nil {
		sierpinski.Logger().Warn("raster: flush before present", "err", err)
	}
	return c.opts.presenter.Present(c.pm)
}

// Wait blocks for d.
func (c *Canvas) Wait(d time.Duration) {
	if d <= 0 {
		return
	}
	c.opts.sleep(d)
}

// Close releases the gg context. Close is idempotent.
func (c *Canvas) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	return c.dc.Close()
}

func center(p sierpinski.Point) (x, y float64) {
	return float64(p.X) + 0.5, float64(p.Y) + 0.5
}
