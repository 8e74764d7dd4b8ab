// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sierpinski

import (
	"fmt"
	"image/color"
	"time"
)

// Canvas is the drawing surface the subdivider writes to. It is never
// read back.
type Canvas interface {
	// DrawTriangle draws an anti-aliased outline of t in color c, no fill.
	DrawTriangle(t Triangle, c color.Color) error

	// Present publishes everything drawn so far to the visible surface.
	Present() error

	// Wait blocks for d.
	Wait(d time.Duration)
}

// Subdivider draws Sierpinski triangles with a fixed configuration.
// A Subdivider holds no per-call state and may be reused.
type Subdivider struct {
	opts Options
}

// New creates a Subdivider from DefaultOptions with opts applied.
// It returns an error wrapping ErrInvalidThreshold or ErrNegativeDelay
// if the resulting configuration is rejected by Options.Validate.
func New(opts ...Option) (*Subdivider, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.Outline == nil {
		o.Outline = DefaultOutline
	}
	if o.Hole == nil {
		o.Hole = DefaultHole
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return &Subdivider{opts: o}, nil
}

// Options returns the configuration in use.
func (s *Subdivider) Options() Options {
	return s.opts
}

// Subdivide draws the fractal rooted at t onto c.
//
// The first error returned by the canvas stops the recursion and is
// returned wrapped with the triangle being drawn.
func (s *Subdivider) Subdivide(c Canvas, t Triangle) error {
	w := walk{canvas: c, opts: &s.opts}
	start := time.Now()
	err := w.triangle(t, 0)

	log := Logger()
	if err != nil {
		log.Debug("sierpinski: subdivide aborted", "root", t.String(), "err", err)
		return err
	}
	log.Debug("sierpinski: subdivide done",
		"root", t.String(),
		"span", t.Span(),
		"options", s.opts,
		"outlines", w.outlines,
		"holes", w.holes,
		"leaves", w.leaves,
		"presents", w.presents,
		"depth", w.maxDepth,
		"elapsed", time.Since(start))
	return nil
}

// Subdivide draws the fractal rooted at t onto c with DefaultOptions and
// opts applied. See Subdivider.Subdivide.
func Subdivide(c Canvas, t Triangle, opts ...Option) error {
	s, err := New(opts...)
	if err != nil {
		return err
	}
	return s.Subdivide(c, t)
}

// walk carries one Subdivide call: the canvas, the options and counters
// for the debug summary.
type walk struct {
	canvas Canvas
	opts   *Options

	outlines int
	holes    int
	leaves   int
	presents int
	maxDepth int
}

func (w *walk) triangle(t Triangle, depth int) error {
	if depth > w.maxDepth {
		w.maxDepth = depth
	}

	if err := w.draw(t, w.opts.Outline); err != nil {
		return err
	}
	w.outlines++

	if t.Span() < w.opts.Threshold {
		w.leaves++
		return nil
	}

	hole, corners := t.Split()

	if err := w.step(); err != nil {
		return err
	}
	if err := w.draw(hole, w.opts.Hole); err != nil {
		return err
	}
	w.holes++
	if err := w.step(); err != nil {
		return err
	}

	for _, c := range corners {
		if err := w.triangle(c, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (w *walk) draw(t Triangle, c color.Color) error {
	if err := w.canvas.DrawTriangle(t, c); err != nil {
		return fmt.Errorf("sierpinski: draw %v: %w", t, err)
	}
	return nil
}

// step presents and pauses when visualization is on.
func (w *walk) step() error {
	if !w.opts.Visualize {
		return nil
	}
	if err := w.canvas.Present(); err != nil {
		return fmt.Errorf("sierpinski: present: %w", err)
	}
	w.presents++
	w.canvas.Wait(w.opts.Delay)
	return nil
}
