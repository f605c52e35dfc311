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
	"strconv"
)

// Kind identifies which of the three variants a [Variable] holds.
type Kind uint8

// These are the possible kinds of a [Variable].
const (
	KindScalar      Kind = iota // a constant number
	KindVector                  // a constant vector
	KindPlaceholder             // the sample position, substituted before evaluation
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindVector:
		return "vector"
	case KindPlaceholder:
		return "placeholder"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Variable is an operand of an [Expression].
//
// A Variable is either a scalar constant, a vector constant, or a
// placeholder for the sample position.  A placeholder always carries a
// vector payload; the payload is overwritten by [Variable.Bind], but the
// variable stays a placeholder, so it is substituted again on every
// sampling call.  For arithmetic a placeholder behaves exactly like a
// vector constant.
type Variable struct {
	kind Kind
	s    float64
	v    Vec2
}

// Scalar returns a scalar constant.
func Scalar(x float64) Variable {
	return Variable{kind: KindScalar, s: x}
}

// Vector returns a vector constant.
func Vector(v Vec2) Variable {
	return Variable{kind: KindVector, v: v}
}

// Position returns a placeholder for the sample position.
// The initial payload is the origin.
func Position() Variable {
	return Variable{kind: KindPlaceholder}
}

// Kind returns the variant held by a.
func (a Variable) Kind() Kind {
	return a.kind
}

// IsPlaceholder reports whether a is a sample position placeholder.
// The result only depends on the variant, not on the current payload.
func (a Variable) IsPlaceholder() bool {
	return a.kind == KindPlaceholder
}

// IsScalar reports whether a holds a number.
func (a Variable) IsScalar() bool {
	return a.kind == KindScalar
}

// Float returns the value of a scalar variable.
// The second return value is false if a holds a vector.
func (a Variable) Float() (float64, bool) {
	if a.kind != KindScalar {
		return 0, false
	}
	return a.s, true
}

// Vec returns the payload of a vector or placeholder variable.
// The second return value is false if a holds a scalar.
func (a Variable) Vec() (Vec2, bool) {
	if a.kind == KindScalar {
		return Vec2{}, false
	}
	return a.v, true
}

// Bind returns a copy of a with the payload replaced by pos, if a is a
// placeholder.  Constants are returned unchanged.
func (a Variable) Bind(pos Vec2) Variable {
	if a.kind == KindPlaceholder {
		a.v = pos
	}
	return a
}

// Neg changes the sign of a scalar, or of both components of a vector.
func (a Variable) Neg() Variable {
	if a.kind == KindScalar {
		return Scalar(-a.s)
	}
	return Vector(a.v.Neg())
}

// Abs returns the absolute value of a scalar, or the component-wise
// absolute value of a vector.
func (a Variable) Abs() Variable {
	if a.kind == KindScalar {
		return Scalar(math.Abs(a.s))
	}
	return Vector(a.v.Abs())
}

// Length returns the Euclidean norm of a vector as a scalar.
// Scalars are returned unchanged.
func (a Variable) Length() Variable {
	if a.kind == KindScalar {
		return a
	}
	return Scalar(a.v.Length())
}

// Add returns a + b.  If exactly one operand is a scalar, it is added to
// both components of the other.
func (a Variable) Add(b Variable) Variable {
	return broadcast(a, b, func(x, y float64) float64 { return x + y })
}

// Sub returns a - b.  This is the same as a.Add(b.Neg()).
func (a Variable) Sub(b Variable) Variable {
	return a.Add(b.Neg())
}

// Mul returns the product of a and b.
//
// A scalar times a scalar is their product, a scalar times a vector (in
// either order) scales the vector, and a vector times a vector is the
// dot product.
func (a Variable) Mul(b Variable) Variable {
	switch {
	case a.kind == KindScalar && b.kind == KindScalar:
		return Scalar(a.s * b.s)
	case a.kind == KindScalar:
		return Vector(b.v.Mul(a.s))
	case b.kind == KindScalar:
		return Vector(a.v.Mul(b.s))
	default:
		return Scalar(a.v.Dot(b.v))
	}
}

// Min returns the minimum of a and b, component-wise for vectors.
// A scalar operand is compared against both components of a vector.
func (a Variable) Min(b Variable) Variable {
	return broadcast(a, b, math.Min)
}

// Max returns the maximum of a and b, component-wise for vectors.
// A scalar operand is compared against both components of a vector.
func (a Variable) Max(b Variable) Variable {
	return broadcast(a, b, math.Max)
}

// broadcast applies f to two scalars, or per component if at least one
// operand is a vector.
func broadcast(a, b Variable, f func(x, y float64) float64) Variable {
	if a.kind == KindScalar && b.kind == KindScalar {
		return Scalar(f(a.s, b.s))
	}
	av, bv := a.v, b.v
	if a.kind == KindScalar {
		av = Vec2{X: a.s, Y: a.s}
	}
	if b.kind == KindScalar {
		bv = Vec2{X: b.s, Y: b.s}
	}
	return Vector(Vec2{X: f(av.X, bv.X), Y: f(av.Y, bv.Y)})
}

func (a Variable) String() string {
	switch a.kind {
	case KindScalar:
		return formatFloat(a.s)
	case KindPlaceholder:
		return "p"
	default:
		return "(" + formatFloat(a.v.X) + ", " + formatFloat(a.v.Y) + ")"
	}
}

func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
