// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sierpinski

import "testing"

func TestMidpoint(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want Point
	}{
		{"even", Pt(100, 620), Pt(400, 100), Pt(250, 360)},
		{"odd floors", Pt(0, 4), Pt(1, 2), Pt(0, 3)},
		{"same point", Pt(7, 7), Pt(7, 7), Pt(7, 7)},
		{"negative odd floors down", Pt(-1, -3), Pt(0, 0), Pt(-1, -2)},
		{"negative even", Pt(-4, -6), Pt(0, 2), Pt(-2, -2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Midpoint(tt.a, tt.b); got != tt.want {
				t.Errorf("Midpoint(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMidpointSymmetric(t *testing.T) {
	pts := []Point{
		Pt(0, 0), Pt(1, 0), Pt(-1, 5), Pt(100, 620), Pt(400, 100),
		Pt(-7, -9), Pt(3, -2), Pt(699, 1),
	}
	for _, a := range pts {
		for _, b := range pts {
			if ab, ba := Midpoint(a, b), Midpoint(b, a); ab != ba {
				t.Errorf("Midpoint(%v, %v) = %v, Midpoint(%v, %v) = %v", a, b, ab, b, a, ba)
			}
		}
	}
}

func TestTriangleSpan(t *testing.T) {
	tests := []struct {
		name string
		tri  Triangle
		want int
	}{
		{"root", Tri(Pt(100, 620), Pt(400, 100), Pt(700, 620)), 600},
		{"degenerate", Tri(Pt(5, 5), Pt(5, 5), Pt(5, 5)), 0},
		{"reversed", Tri(Pt(10, 0), Pt(5, 5), Pt(0, 0)), -10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tri.Span(); got != tt.want {
				t.Errorf("Span() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTriangleSplit(t *testing.T) {
	tri := Tri(Pt(100, 620), Pt(400, 100), Pt(700, 620))
	hole, corners := tri.Split()

	wantHole := Tri(Pt(250, 360), Pt(400, 620), Pt(550, 360))
	if hole != wantHole {
		t.Errorf("hole = %v, want %v", hole, wantHole)
	}

	wantCorners := [3]Triangle{
		Tri(Pt(100, 620), Pt(250, 360), Pt(400, 620)),
		Tri(Pt(250, 360), Pt(400, 100), Pt(550, 360)),
		Tri(Pt(400, 620), Pt(550, 360), Pt(700, 620)),
	}
	if corners != wantCorners {
		t.Errorf("corners = %v, want %v", corners, wantCorners)
	}

	for i, c := range corners {
		if c.Span() != 300 {
			t.Errorf("corners[%d].Span() = %d, want 300", i, c.Span())
		}
	}
}

func TestStrings(t *testing.T) {
	if got := Pt(3, -4).String(); got != "(3,-4)" {
		t.Errorf("Point.String() = %q, want %q", got, "(3,-4)")
	}
	tri := Tri(Pt(0, 4), Pt(2, 0), Pt(4, 4))
	if got := tri.String(); got != "[(0,4) (2,0) (4,4)]" {
		t.Errorf("Triangle.String() = %q, want %q", got, "[(0,4) (2,0) (4,4)]")
	}
	if got := tri.Points(); got != [3]Point{Pt(0, 4), Pt(2, 0), Pt(4, 4)} {
		t.Errorf("Points() = %v", got)
	}
}
