// seehuhn.de/go/sdf - signed distance fields for 2D shapes
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package shape

import (
	"math"
	"testing"

	"seehuhn.de/go/sdf"
)

func TestCircle(t *testing.T) {
	c := Circle(sdf.Vec2{X: 0, Y: -1}, 10)

	type testCase struct {
		pos  sdf.Vec2
		want float64
	}
	cases := []testCase{
		{sdf.Vec2{X: 0, Y: -1}, -10},
		{sdf.Vec2{X: 10, Y: -1}, 0},
		{sdf.Vec2{X: 20, Y: -1}, 10},
		{sdf.Vec2{X: 0, Y: 9}, 0},
		{sdf.Vec2{X: 3, Y: 3}, -5},
	}
	for _, tc := range cases {
		if got := c.Sample(tc.pos); got != tc.want {
			t.Errorf("Sample(%v) = %g, want %g", tc.pos, got, tc.want)
		}
	}
}

// rectangleDistance is the closed form of the rectangle distance function.
func rectangleDistance(p sdf.Vec2, w, h float64) float64 {
	qx := math.Abs(p.X) - w
	qy := math.Abs(p.Y) - h
	outside := math.Hypot(math.Max(qx, 0), math.Max(qy, 0))
	inside := math.Min(math.Max(qx, qy), 0)
	return outside + inside
}

func TestRectangle(t *testing.T) {
	type size struct{ w, h float64 }
	sizes := []size{{1, 1}, {3, 2}, {0.5, 7}, {0, 0}}

	for _, s := range sizes {
		r := Rectangle(s.w, s.h)
		for x := -10.0; x <= 10; x += 0.75 {
			for y := -10.0; y <= 10; y += 1.25 {
				p := sdf.Vec2{X: x, Y: y}
				got := r.Sample(p)
				want := rectangleDistance(p, s.w, s.h)
				if math.Abs(got-want) > 1e-12 {
					t.Errorf("%gx%g rectangle at %v: got %g, want %g",
						s.w, s.h, p, got, want)
				}
			}
		}
	}
}

func TestRectangleSigns(t *testing.T) {
	r := Rectangle(3, 2)
	if d := r.Sample(sdf.Vec2{}); d != -2 {
		t.Errorf("center: got %g, want -2", d)
	}
	if d := r.Sample(sdf.Vec2{X: 3, Y: 0}); d != 0 {
		t.Errorf("edge: got %g, want 0", d)
	}
	if d := r.Sample(sdf.Vec2{X: 6, Y: 6}); d != 5 {
		t.Errorf("corner region: got %g, want 5", d)
	}
}
