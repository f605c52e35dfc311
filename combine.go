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

// The functions in this file build new trees from existing ones.  The
// root nodes of the arguments become subtrees of the result.  The
// arguments must not be used to build further trees afterwards.

// Union returns the union of the shapes a and b,
// which is the point-wise minimum of the two distances.
func Union(a, b *Tree) *Tree {
	return combine("Union", a, b, Min)
}

// Intersection returns the intersection of the shapes a and b,
// which is the point-wise maximum of the two distances.
func Intersection(a, b *Tree) *Tree {
	return combine("Intersection", a, b, Max)
}

// Difference returns the shape a with b cut out, max(a, -b).
func Difference(a, b *Tree) *Tree {
	checkArgs("Difference", a, b)
	return NewTree(NewNodeBuilder().
		WithLeftNode(a.root).
		WithRightNode(negate(b.root)).
		Build(Max))
}

// Complement returns the shape consisting of all points outside a.
func Complement(a *Tree) *Tree {
	checkArgs("Complement", a)
	return NewTree(negate(a.root))
}

// Offset grows the shape a by r in every direction.
// Negative values of r shrink the shape.
func Offset(a *Tree, r float64) *Tree {
	checkArgs("Offset", a)
	return NewTree(NewNodeBuilder().
		WithLeftNode(a.root).
		WithRightLeaf(Value(Scalar(-r))).
		Build(Add))
}

// Blend interpolates between the distance functions of a and b:
// the result is (1-factor)*a + factor*b.
//
// The factor is stored as a constant in the resulting tree.
func Blend(a, b *Tree, factor float64) *Tree {
	checkArgs("Blend", a, b)

	aPart := NewNodeBuilder().
		WithLeftLeaf(Binary(Scalar(1), Scalar(factor), Subtract)).
		WithRightNode(a.root).
		Build(Multiply)
	bPart := NewNodeBuilder().
		WithLeftLeaf(Value(Scalar(factor))).
		WithRightNode(b.root).
		Build(Multiply)

	return NewTree(NewNodeBuilder().
		WithLeftNode(aPart).
		WithRightNode(bPart).
		Build(Add))
}

func combine(name string, a, b *Tree, op BinaryOp) *Tree {
	checkArgs(name, a, b)
	return NewTree(NewNodeBuilder().
		WithLeftNode(a.root).
		WithRightNode(b.root).
		Build(op))
}

func negate(n Node) Node {
	return NewNodeBuilder().
		WithLeftLeaf(Value(Scalar(-1))).
		WithRightNode(n).
		Build(Multiply)
}

func checkArgs(name string, trees ...*Tree) {
	for _, t := range trees {
		if t == nil || t.root == nil {
			panic("sdf: nil tree passed to " + name)
		}
	}
}
