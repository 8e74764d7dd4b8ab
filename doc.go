// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package sierpinski draws a Sierpinski triangle by recursive subdivision.
//
// # Overview
//
// A triangle whose horizontal span is below the threshold is drawn as a
// leaf. Any larger triangle is outlined, its edge midpoints are joined into
// an inner "hole" triangle, and the three corner triangles are subdivided
// in turn, depth-first from left to right.
//
// # Quick Start
//
//	c, _ := raster.New(800, 800)
//	err := sierpinski.Subdivide(c, sierpinski.Tri(
//	    sierpinski.Pt(100, 620),
//	    sierpinski.Pt(400, 100),
//	    sierpinski.Pt(700, 620),
//	), sierpinski.WithVisualization(false))
//
// # Canvas
//
// Drawing goes through the [Canvas] interface: outline a triangle, present
// the buffer, wait. The raster sub-package implements it on top of
// github.com/gogpu/gg and the window sub-package shows presented frames in
// a gogpu window.
//
// # Animation
//
// With visualization enabled (the default) the canvas is presented and the
// subdivider pauses for [Options.Delay] after each outline and after each
// hole. Visualization changes pacing only: the sequence of outlines drawn
// is identical either way.
//
// # Coordinate System
//
// Integer pixel coordinates, origin at top-left, Y increasing down.
package sierpinski
