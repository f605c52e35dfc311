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

// Node is an inner vertex of an expression tree.
//
// Each operand slot of a node holds either a leaf [Expression] or a nested
// Node.  Evaluation is the same for both: the operands are first reduced
// to a [Variable] each, and then the node's operator is applied to these
// values exactly as a leaf expression would apply it.
//
// The implementations are [*UnaryNode] and [*BinaryNode].
type Node interface {
	// Evaluate computes the value of the subtree, with every placeholder
	// standing for pos.  The subtree is not modified.
	Evaluate(pos Vec2) (Variable, error)

	// Bind stores pos in every placeholder reachable from the node.
	Bind(pos Vec2)

	// Size returns the number of nodes and leaves in the subtree.
	Size() int

	// Depth returns the number of levels of the subtree, counting
	// leaves as one level.
	Depth() int

	String() string

	eval(pos *Vec2) (Variable, error)
}

// child is an operand slot.  Exactly one of the fields is set.
type child struct {
	leaf   Expression
	branch Node
}

func (c child) eval(pos *Vec2) (Variable, error) {
	if c.branch != nil {
		return c.branch.eval(pos)
	}
	return c.leaf.eval(pos)
}

func (c child) bind(pos Vec2) {
	if c.branch != nil {
		c.branch.Bind(pos)
		return
	}
	c.leaf.Bind(pos)
}

func (c child) size() int {
	if c.branch != nil {
		return c.branch.Size()
	}
	return 1
}

func (c child) depth() int {
	if c.branch != nil {
		return c.branch.Depth()
	}
	return 1
}

func (c child) String() string {
	if c.branch != nil {
		return c.branch.String()
	}
	return c.leaf.String()
}

// zeroLeaf is used for operand slots which the caller did not set.
func zeroLeaf() child {
	return child{leaf: Value(Scalar(0))}
}

// UnaryNode applies a unary operator to the value of one operand slot.
type UnaryNode struct {
	arg child
	op  UnaryOp
}

// UnaryLeaf returns a node which applies op to the value of e.
func UnaryLeaf(e Expression, op UnaryOp) *UnaryNode {
	if e == nil {
		panic("sdf: nil expression in UnaryLeaf")
	}
	return &UnaryNode{arg: child{leaf: e}, op: op}
}

// UnaryBranch returns a node which applies op to the value of the subtree n.
func UnaryBranch(n Node, op UnaryOp) *UnaryNode {
	if n == nil {
		panic("sdf: nil node in UnaryBranch")
	}
	return &UnaryNode{arg: child{branch: n}, op: op}
}

// Op returns the operator of the node.
func (n *UnaryNode) Op() UnaryOp {
	return n.op
}

// Evaluate implements the [Node] interface.
func (n *UnaryNode) Evaluate(pos Vec2) (Variable, error) {
	return n.eval(&pos)
}

func (n *UnaryNode) eval(pos *Vec2) (Variable, error) {
	a, err := n.arg.eval(pos)
	if err != nil {
		return Variable{}, err
	}
	return Unary(a, n.op).eval(nil)
}

// Bind implements the [Node] interface.
func (n *UnaryNode) Bind(pos Vec2) {
	n.arg.bind(pos)
}

// Size implements the [Node] interface.
func (n *UnaryNode) Size() int {
	return 1 + n.arg.size()
}

// Depth implements the [Node] interface.
func (n *UnaryNode) Depth() int {
	return 1 + n.arg.depth()
}

func (n *UnaryNode) String() string {
	return formatUnary(n.op, n.arg.String())
}

// BinaryNode applies a binary operator to the values of two operand slots.
// Use a [NodeBuilder] to construct binary nodes.
type BinaryNode struct {
	left, right child
	op          BinaryOp
}

// Op returns the operator of the node.
func (n *BinaryNode) Op() BinaryOp {
	return n.op
}

// Evaluate implements the [Node] interface.
func (n *BinaryNode) Evaluate(pos Vec2) (Variable, error) {
	return n.eval(&pos)
}

func (n *BinaryNode) eval(pos *Vec2) (Variable, error) {
	a, err := n.left.eval(pos)
	if err != nil {
		return Variable{}, err
	}
	b, err := n.right.eval(pos)
	if err != nil {
		return Variable{}, err
	}
	return Binary(a, b, n.op).eval(nil)
}

// Bind implements the [Node] interface.
func (n *BinaryNode) Bind(pos Vec2) {
	n.left.bind(pos)
	n.right.bind(pos)
}

// Size implements the [Node] interface.
func (n *BinaryNode) Size() int {
	return 1 + n.left.size() + n.right.size()
}

// Depth implements the [Node] interface.
func (n *BinaryNode) Depth() int {
	return 1 + max(n.left.depth(), n.right.depth())
}

func (n *BinaryNode) String() string {
	return formatBinary(n.op, n.left.String(), n.right.String())
}

// NodeBuilder assembles a [BinaryNode].
//
// Each side can be set to a leaf expression or to a subtree.  A side which
// is never set (or set to nil) becomes the constant zero.
//
//	n := sdf.NewNodeBuilder().
//		WithLeftNode(dist).
//		WithRightLeaf(sdf.Value(sdf.Scalar(-r))).
//		Build(sdf.Add)
type NodeBuilder struct {
	left, right child
}

// NewNodeBuilder returns a builder with both sides unset.
func NewNodeBuilder() *NodeBuilder {
	return &NodeBuilder{}
}

// WithLeftLeaf sets the left operand to the expression e.
func (b *NodeBuilder) WithLeftLeaf(e Expression) *NodeBuilder {
	b.left = child{leaf: e}
	return b
}

// WithLeftNode sets the left operand to the subtree n.
func (b *NodeBuilder) WithLeftNode(n Node) *NodeBuilder {
	b.left = child{branch: n}
	return b
}

// WithRightLeaf sets the right operand to the expression e.
func (b *NodeBuilder) WithRightLeaf(e Expression) *NodeBuilder {
	b.right = child{leaf: e}
	return b
}

// WithRightNode sets the right operand to the subtree n.
func (b *NodeBuilder) WithRightNode(n Node) *NodeBuilder {
	b.right = child{branch: n}
	return b
}

// Build returns a node which applies op to the two operands.
func (b *NodeBuilder) Build(op BinaryOp) *BinaryNode {
	n := &BinaryNode{left: b.left, right: b.right, op: op}
	if n.left.leaf == nil && n.left.branch == nil {
		n.left = zeroLeaf()
	}
	if n.right.leaf == nil && n.right.branch == nil {
		n.right = zeroLeaf()
	}
	return n
}
