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

// Package shape provides primitive shapes as signed distance trees.
//
// The shapes are built using the public construction API of package
// seehuhn.de/go/sdf and can be combined with [sdf.Union] and friends.
package shape

import "seehuhn.de/go/sdf"

// Circle returns a disc with the given center and radius.
//
// The distance is |p - center| - radius.
func Circle(center sdf.Vec2, radius float64) *sdf.Tree {
	fromCenter := sdf.Binary(sdf.Position(), sdf.Vector(center), sdf.Subtract)
	dist := sdf.UnaryLeaf(fromCenter, sdf.Length)

	root := sdf.NewNodeBuilder().
		WithLeftNode(dist).
		WithRightLeaf(sdf.Value(sdf.Scalar(-radius))).
		Build(sdf.Add)
	return sdf.NewTree(root)
}

// Rectangle returns an axis-aligned rectangle centered at the origin.
// The rectangle extends from -width to width horizontally and from
// -height to height vertically.
//
// With q = abs(p) - (width, height), the distance is
// length(max(q, 0)) + min(max(q.x, q.y), 0).
func Rectangle(width, height float64) *sdf.Tree {
	size := sdf.Vec2{X: width, Y: height}

	// outside: length(max(q, 0))
	outside := sdf.UnaryBranch(
		sdf.NewNodeBuilder().
			WithLeftNode(cornerOffset(size)).
			WithRightLeaf(sdf.Value(sdf.Scalar(0))).
			Build(sdf.Max),
		sdf.Length)

	// inside: min(max(q.x, q.y), 0)
	inside := sdf.NewNodeBuilder().
		WithLeftNode(
			sdf.NewNodeBuilder().
				WithLeftNode(sdf.UnaryBranch(cornerOffset(size), sdf.ComponentX)).
				WithRightNode(sdf.UnaryBranch(cornerOffset(size), sdf.ComponentY)).
				Build(sdf.Max)).
		WithRightLeaf(sdf.Value(sdf.Scalar(0))).
		Build(sdf.Min)

	root := sdf.NewNodeBuilder().
		WithLeftNode(outside).
		WithRightNode(inside).
		Build(sdf.Add)
	return sdf.NewTree(root)
}

// cornerOffset returns a new subtree computing abs(p) - size.
// Every use needs its own copy, since subtrees are never shared.
func cornerOffset(size sdf.Vec2) sdf.Node {
	return sdf.NewNodeBuilder().
		WithLeftLeaf(sdf.Unary(sdf.Position(), sdf.Abs)).
		WithRightLeaf(sdf.Value(sdf.Vector(size))).
		Build(sdf.Subtract)
}
