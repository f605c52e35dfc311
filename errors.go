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

import "fmt"

// ShapeMismatchError is returned when a component extraction operator
// is applied to a scalar.
type ShapeMismatchError struct {
	Op      UnaryOp
	Operand Variable
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("sdf: %s needs a vector operand, got scalar %s", e.Op, e.Operand)
}

func (e *ShapeMismatchError) Is(target error) bool {
	_, ok := target.(*ShapeMismatchError)
	return ok
}

// NonScalarResultError is returned when the root of a tree evaluates to
// a vector instead of a distance.
type NonScalarResultError struct {
	Result Variable
}

func (e *NonScalarResultError) Error() string {
	return fmt.Sprintf("sdf: tree evaluated to vector %s instead of a distance", e.Result)
}

func (e *NonScalarResultError) Is(target error) bool {
	_, ok := target.(*NonScalarResultError)
	return ok
}

// InvalidOperatorError is returned when an operator value outside the
// defined set is encountered.
type InvalidOperatorError struct {
	Arity int
	Code  uint8
}

func (e *InvalidOperatorError) Error() string {
	return fmt.Sprintf("sdf: invalid %d-ary operator code %d", e.Arity, e.Code)
}

func (e *InvalidOperatorError) Is(target error) bool {
	_, ok := target.(*InvalidOperatorError)
	return ok
}
