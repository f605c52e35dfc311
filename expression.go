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

// Expression is a leaf of an expression tree: an operator applied
// directly to one or two [Variable] operands.
//
// The implementations are [*UnaryExpression] and [*BinaryExpression].
type Expression interface {
	// Evaluate computes the value of the expression, with every
	// placeholder operand standing for pos.  The expression is not
	// modified.
	Evaluate(pos Vec2) (Variable, error)

	// Bind stores pos in every placeholder operand.
	Bind(pos Vec2)

	String() string

	// eval evaluates the expression.  If pos is nil, placeholders use
	// their current payload.
	eval(pos *Vec2) (Variable, error)
}

// UnaryExpression applies a unary operator to a single variable.
type UnaryExpression struct {
	Operand Variable
	Op      UnaryOp
}

// Unary returns the expression op(a).
func Unary(a Variable, op UnaryOp) *UnaryExpression {
	return &UnaryExpression{Operand: a, Op: op}
}

// Value returns an expression which evaluates to a.
func Value(a Variable) *UnaryExpression {
	return Unary(a, NoOp)
}

// Evaluate implements the [Expression] interface.
func (e *UnaryExpression) Evaluate(pos Vec2) (Variable, error) {
	return e.eval(&pos)
}

// Bind implements the [Expression] interface.
func (e *UnaryExpression) Bind(pos Vec2) {
	e.Operand = e.Operand.Bind(pos)
}

func (e *UnaryExpression) eval(pos *Vec2) (Variable, error) {
	a := e.Operand
	if pos != nil {
		a = a.Bind(*pos)
	}
	return e.Op.Apply(a)
}

func (e *UnaryExpression) String() string {
	return formatUnary(e.Op, e.Operand.String())
}

// BinaryExpression applies a binary operator to two variables.
type BinaryExpression struct {
	Left, Right Variable
	Op          BinaryOp
}

// Binary returns the expression op(a, b).
func Binary(a, b Variable, op BinaryOp) *BinaryExpression {
	return &BinaryExpression{Left: a, Right: b, Op: op}
}

// Evaluate implements the [Expression] interface.
func (e *BinaryExpression) Evaluate(pos Vec2) (Variable, error) {
	return e.eval(&pos)
}

// Bind implements the [Expression] interface.
func (e *BinaryExpression) Bind(pos Vec2) {
	e.Left = e.Left.Bind(pos)
	e.Right = e.Right.Bind(pos)
}

func (e *BinaryExpression) eval(pos *Vec2) (Variable, error) {
	a, b := e.Left, e.Right
	if pos != nil {
		a = a.Bind(*pos)
		b = b.Bind(*pos)
	}
	return e.Op.Apply(a, b)
}

func (e *BinaryExpression) String() string {
	return formatBinary(e.Op, e.Left.String(), e.Right.String())
}

func formatUnary(op UnaryOp, arg string) string {
	switch op {
	case NoOp:
		return arg
	case ComponentX:
		return arg + ".x"
	case ComponentY:
		return arg + ".y"
	default:
		return op.String() + "(" + arg + ")"
	}
}

func formatBinary(op BinaryOp, a, b string) string {
	switch op {
	case Add:
		return "(" + a + " + " + b + ")"
	case Subtract:
		return "(" + a + " - " + b + ")"
	case Multiply:
		return "(" + a + " * " + b + ")"
	default:
		return op.String() + "(" + a + ", " + b + ")"
	}
}
