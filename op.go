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

import "strconv"

// UnaryOp is an operator taking a single operand.
type UnaryOp uint8

// These are the supported unary operators.
const (
	NoOp       UnaryOp = iota // identity
	Abs                       // absolute value, component-wise for vectors
	Length                    // Euclidean norm; scalars pass through
	ComponentX                // first component of a vector
	ComponentY                // second component of a vector
)

var unaryNames = [...]string{
	NoOp:       "noop",
	Abs:        "abs",
	Length:     "length",
	ComponentX: "x",
	ComponentY: "y",
}

func (op UnaryOp) String() string {
	if int(op) < len(unaryNames) {
		return unaryNames[op]
	}
	return "UnaryOp(" + strconv.Itoa(int(op)) + ")"
}

// Apply applies op to a.
//
// A [*ShapeMismatchError] is returned if a component operator is applied to
// a scalar.
func (op UnaryOp) Apply(a Variable) (Variable, error) {
	switch op {
	case NoOp:
		return a, nil
	case Abs:
		return a.Abs(), nil
	case Length:
		return a.Length(), nil
	case ComponentX, ComponentY:
		v, ok := a.Vec()
		if !ok {
			return Variable{}, &ShapeMismatchError{Op: op, Operand: a}
		}
		if op == ComponentX {
			return Scalar(v.X), nil
		}
		return Scalar(v.Y), nil
	default:
		return Variable{}, &InvalidOperatorError{Arity: 1, Code: uint8(op)}
	}
}

// BinaryOp is an operator taking two operands.
type BinaryOp uint8

// These are the supported binary operators.
// See [Variable.Add], [Variable.Sub], [Variable.Mul], [Variable.Min] and
// [Variable.Max] for how scalars and vectors are combined.
const (
	Add BinaryOp = iota
	Subtract
	Multiply
	Min
	Max
)

var binaryNames = [...]string{
	Add:      "add",
	Subtract: "sub",
	Multiply: "mul",
	Min:      "min",
	Max:      "max",
}

func (op BinaryOp) String() string {
	if int(op) < len(binaryNames) {
		return binaryNames[op]
	}
	return "BinaryOp(" + strconv.Itoa(int(op)) + ")"
}

// Apply applies op to a and b.
func (op BinaryOp) Apply(a, b Variable) (Variable, error) {
	switch op {
	case Add:
		return a.Add(b), nil
	case Subtract:
		return a.Sub(b), nil
	case Multiply:
		return a.Mul(b), nil
	case Min:
		return a.Min(b), nil
	case Max:
		return a.Max(b), nil
	default:
		return Variable{}, &InvalidOperatorError{Arity: 2, Code: uint8(op)}
	}
}
