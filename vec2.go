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

	"seehuhn.de/go/geom/vec"
)

// Vec2 is a point or a displacement in the plane.
//
// Vec2 is a value type.  All methods return a new vector and leave
// the receiver unchanged.
type Vec2 vec.Vec2

// Add returns the component-wise sum v + w.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2(vec.Vec2(v).Add(vec.Vec2(w)))
}

// AddScalar adds c to both components of v.
func (v Vec2) AddScalar(c float64) Vec2 {
	return Vec2{X: v.X + c, Y: v.Y + c}
}

// Sub returns the component-wise difference v - w.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2(vec.Vec2(v).Sub(vec.Vec2(w)))
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Mul scales v by the factor c.
func (v Vec2) Mul(c float64) Vec2 {
	return Vec2(vec.Vec2(v).Mul(c))
}

// Dot returns the inner product of v and w.
func (v Vec2) Dot(w Vec2) float64 {
	return v.X*w.X + v.Y*w.Y
}

// Max returns the component-wise maximum of v and w.
func (v Vec2) Max(w Vec2) Vec2 {
	return Vec2{X: math.Max(v.X, w.X), Y: math.Max(v.Y, w.Y)}
}

// Min returns the component-wise minimum of v and w.
func (v Vec2) Min(w Vec2) Vec2 {
	return Vec2{X: math.Min(v.X, w.X), Y: math.Min(v.Y, w.Y)}
}

// Abs replaces both components of v by their absolute values.
func (v Vec2) Abs() Vec2 {
	return Vec2{X: math.Abs(v.X), Y: math.Abs(v.Y)}
}

// Length returns the Euclidean norm of v.
func (v Vec2) Length() float64 {
	return vec.Vec2(v).Length()
}
