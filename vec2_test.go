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

package sdf

import (
	"math"
	"testing"
)

var testVectors = []Vec2{
	{0, 0},
	{1, 0},
	{0, -1},
	{3, 4},
	{-3, 4},
	{-0.5, -2.25},
	{1e10, -1e-10},
}

func TestVec2Length(t *testing.T) {
	for _, v := range testVectors {
		l := v.Length()
		if l < 0 {
			t.Errorf("%v.Length() = %g < 0", v, l)
		}
		if want := math.Hypot(v.X, v.Y); math.Abs(l-want) > 1e-9*want {
			t.Errorf("%v.Length() = %g, want %g", v, l, want)
		}
	}
	if l := (Vec2{3, 4}).Length(); l != 5 {
		t.Errorf("(3,4).Length() = %g, want 5", l)
	}
}

func TestVec2AbsIdempotent(t *testing.T) {
	for _, v := range testVectors {
		a := v.Abs()
		if a.Abs() != a {
			t.Errorf("abs(abs(%v)) = %v, want %v", v, a.Abs(), a)
		}
		if a.X < 0 || a.Y < 0 {
			t.Errorf("abs(%v) = %v has negative components", v, a)
		}
	}
}

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{1, -2}
	b := Vec2{3, 5}

	type testCase struct {
		name      string
		got, want Vec2
	}
	cases := []testCase{
		{"Add", a.Add(b), Vec2{4, 3}},
		{"AddScalar", a.AddScalar(2), Vec2{3, 0}},
		{"Sub", a.Sub(b), Vec2{-2, -7}},
		{"Neg", a.Neg(), Vec2{-1, 2}},
		{"Mul", a.Mul(-2), Vec2{-2, 4}},
		{"Max", a.Max(Vec2{0, 0}), Vec2{1, 0}},
		{"Min", a.Min(Vec2{0, 0}), Vec2{0, -2}},
		{"Abs", a.Abs(), Vec2{1, 2}},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s: got %v, want %v", c.name, c.got, c.want)
		}
	}

	if d := a.Dot(b); d != 1*3+(-2)*5 {
		t.Errorf("Dot: got %g, want %g", d, float64(1*3+(-2)*5))
	}
}
