// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sierpinski

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"time"
)

// Defaults used by New when no option overrides them.
const (
	// DefaultThreshold is the smallest span that is still subdivided.
	DefaultThreshold = 2

	// DefaultDelay is the pause between animated steps.
	DefaultDelay = 3 * time.Millisecond

	// DefaultVisualize enables per-step animation.
	DefaultVisualize = true

	// MinThreshold is the smallest accepted threshold. A triangle of span 1
	// has a right corner of span ceil(1/2) = 1, so lower thresholds never
	// reach the base case.
	MinThreshold = 2
)

// Default colors.
var (
	// Background is the canvas fill color.
	Background = color.RGBA{R: 40, G: 40, B: 40, A: 255}

	// DefaultOutline is the color of every subdivided and leaf triangle.
	DefaultOutline = color.RGBA{R: 141, G: 192, B: 255, A: 255}

	// DefaultHole is the color of the inverted midpoint triangle.
	DefaultHole = color.RGBA{R: 41, G: 192, B: 255, A: 255}
)

// Configuration errors.
var (
	// ErrInvalidThreshold is returned for a threshold below MinThreshold.
	ErrInvalidThreshold = errors.New("sierpinski: threshold below minimum")

	// ErrNegativeDelay is returned for a negative animation delay.
	ErrNegativeDelay = errors.New("sierpinski: delay must not be negative")
)

// Options configures a Subdivider.
type Options struct {
	// Threshold stops subdivision once a triangle's span is below it.
	Threshold int

	// Visualize presents the canvas and waits Delay after each step.
	Visualize bool

	// Delay is the pause between animated steps.
	Delay time.Duration

	// Outline is the color of outer triangles.
	Outline color.Color

	// Hole is the color of the inner midpoint triangles.
	Hole color.Color
}

// DefaultOptions returns the options used when none are given.
func DefaultOptions() Options {
	return Options{
		Threshold: DefaultThreshold,
		Visualize: DefaultVisualize,
		Delay:     DefaultDelay,
		Outline:   DefaultOutline,
		Hole:      DefaultHole,
	}
}

// Validate reports whether o can drive a terminating subdivision.
func (o Options) Validate() error {
	if o.Threshold < MinThreshold {
		return fmt.Errorf("%w %d: got %d", ErrInvalidThreshold, MinThreshold, o.Threshold)
	}
	if o.Delay < 0 {
		return fmt.Errorf("%w: got %v", ErrNegativeDelay, o.Delay)
	}
	return nil
}

// LogValue implements slog.LogValuer.
func (o Options) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("threshold", o.Threshold),
		slog.Bool("visualize", o.Visualize),
		slog.Duration("delay", o.Delay),
	)
}

// Option configures a Subdivider during creation.
//
// Example:
//
//	s, err := sierpinski.New(
//	    sierpinski.WithThreshold(8),
//	    sierpinski.WithVisualization(false),
//	)
type Option func(*Options)

// WithThreshold sets the span below which triangles are drawn as leaves.
func WithThreshold(n int) Option {
	return func(o *Options) {
		o.Threshold = n
	}
}

// WithVisualization enables or disables per-step animation.
func WithVisualization(on bool) Option {
	return func(o *Options) {
		o.Visualize = on
	}
}

// WithDelay sets the pause between animated steps.
func WithDelay(d time.Duration) Option {
	return func(o *Options) {
		o.Delay = d
	}
}

// WithColors sets the outline and hole colors. A nil color keeps the
// current value.
func WithColors(outline, hole color.Color) Option {
	return func(o *Options) {
		if outline != nil {
			o.Outline = outline
		}
		if hole != nil {
			o.Hole = hole
		}
	}
}

// WithOptions replaces the whole configuration with opts.
func WithOptions(opts Options) Option {
	return func(o *Options) {
		*o = opts
	}
}
