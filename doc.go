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

// Package sdf implements signed distance functions for 2D shapes as
// expression trees.
//
// A shape is described by a [Tree].  The leaves of the tree are
// [Expression] values, which apply an operator to one or two [Variable]
// operands.  A variable is a scalar constant, a vector constant, or a
// placeholder for the point at which the tree is sampled.  Inner nodes
// ([Node]) apply an operator to the values of their subtrees.
//
// Shapes are combined using [Union], [Intersection], [Difference],
// [Complement], [Offset] and [Blend].  Primitive shapes are provided by
// the package seehuhn.de/go/sdf/shape.
//
// Arithmetic between variables broadcasts scalars over vectors.  The
// only exception is [Multiply]: the product of two vectors is their dot
// product.
package sdf
