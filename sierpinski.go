// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sierpinski

import "fmt"

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// String returns a string representation of p like "(3,4)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Midpoint returns the midpoint of a and b, rounding each coordinate
// toward negative infinity.
func Midpoint(a, b Point) Point {
	return Point{X: floorDiv2(a.X + b.X), Y: floorDiv2(a.Y + b.Y)}
}

// floorDiv2 halves n rounding down. Go's / truncates toward zero, which
// differs for negative odd sums.
func floorDiv2(n int) int {
	return n >> 1
}

// Triangle is an ordered triple of vertices: V1 lower-left, V2 apex,
// V3 lower-right. The order only names the midpoints; any three points
// are accepted, including collinear or coincident ones.
type Triangle struct {
	V1, V2, V3 Point
}

// Tri is shorthand for Triangle{v1, v2, v3}.
func Tri(v1, v2, v3 Point) Triangle {
	return Triangle{V1: v1, V2: v2, V3: v3}
}

// Span returns the signed horizontal extent V3.X - V1.X between the base
// vertices. It is the size measure compared against the threshold.
func (t Triangle) Span() int {
	return t.V3.X - t.V1.X
}

// Points returns the vertices in order.
func (t Triangle) Points() [3]Point {
	return [3]Point{t.V1, t.V2, t.V3}
}

// Split returns the inner triangle formed by the edge midpoints and the
// three corner triangles, in drawing order.
//
//	m1 = mid(V1, V2), m2 = mid(V1, V3), m3 = mid(V2, V3)
//	hole    = (m1, m2, m3)
//	corners = (V1, m1, m2), (m1, V2, m3), (m2, m3, V3)
func (t Triangle) Split() (hole Triangle, corners [3]Triangle) {
	m1 := Midpoint(t.V1, t.V2)
	m2 := Midpoint(t.V1, t.V3)
	m3 := Midpoint(t.V2, t.V3)
	hole = Triangle{m1, m2, m3}
	corners = [3]Triangle{
		{t.V1, m1, m2},
		{m1, t.V2, m3},
		{m2, m3, t.V3},
	}
	return hole, corners
}

// String returns a string representation of t like "[(0,4) (2,0) (4,4)]".
func (t Triangle) String() string {
	return fmt.Sprintf("[%v %v %v]", t.V1, t.V2, t.V3)
}
