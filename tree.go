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

// Tree is a signed distance function, represented as an expression tree.
//
// Evaluating the tree at a point gives the signed distance of the point
// to the shape: negative inside, zero on the boundary and positive
// outside.
//
// The shape of a tree never changes after construction.  [Tree.Sample] and
// [Tree.Distance] do not modify the tree and can be called concurrently.
type Tree struct {
	root Node
}

// NewTree returns a tree with the given root node.
func NewTree(root Node) *Tree {
	if root == nil {
		panic("sdf: nil root node")
	}
	return &Tree{root: root}
}

// Root returns the root node of the tree.
func (t *Tree) Root() Node {
	return t.root
}

// Distance returns the signed distance of pos to the shape.
//
// A [*NonScalarResultError] is returned if the tree evaluates to a vector,
// and a [*ShapeMismatchError] if a component operator inside the tree
// receives a scalar.  Both indicate a malformed tree.
func (t *Tree) Distance(pos Vec2) (float64, error) {
	return result(t.root.Evaluate(pos))
}

// Sample returns the signed distance of pos to the shape.
// Sample panics if the tree is malformed, see [Tree.Distance].
func (t *Tree) Sample(pos Vec2) float64 {
	d, err := t.Distance(pos)
	if err != nil {
		panic(err)
	}
	return d
}

// SampleBound is like [Tree.Sample], but first stores pos in every
// placeholder leaf of the tree and then evaluates the stored values.
//
// SampleBound modifies the tree.  It must not be called concurrently with
// any other method.
func (t *Tree) SampleBound(pos Vec2) float64 {
	t.root.Bind(pos)
	d, err := result(t.root.eval(nil))
	if err != nil {
		panic(err)
	}
	return d
}

func result(v Variable, err error) (float64, error) {
	if err != nil {
		return 0, err
	}
	d, ok := v.Float()
	if !ok {
		return 0, &NonScalarResultError{Result: v}
	}
	return d, nil
}

func (t *Tree) String() string {
	return t.root.String()
}
