// Copyright (C) 2022 Sneller, Inc.
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

// Package numeric implements the tagged scalar/array numeric tower:
// int64, uint64 ("usize") and float64 values, each either a lone scalar
// or a homogeneous array, any of which may carry NaN in place of a
// value. Dyadic operators cast across kinds through a fixed 3x3 caster
// matrix and never fault: out-of-range results become NaN of the left
// operand's kind.
package numeric

import "errors"

// Primitive is the set of scalar kinds the numeric tower carries.
// Go's "usize" stand-in is uint64, the widest stable unsigned width.
type Primitive interface {
	~int64 | ~uint64 | ~float64
}

// Value is a single scalar that is either a concrete value or NaN.
type Value[T Primitive] struct {
	v   T
	nan bool
}

// Of wraps a concrete value.
func Of[T Primitive](v T) Value[T] { return Value[T]{v: v} }

// NaNOf returns the NaN value of kind T.
func NaNOf[T Primitive]() Value[T] { return Value[T]{nan: true} }

// IsNaN reports whether v carries no value.
func (v Value[T]) IsNaN() bool { return v.nan }

// Value returns the underlying value; callers must check IsNaN first.
func (v Value[T]) Value() T { return v.v }

// Number is either a single Value or a homogeneous array of Values.
type Number[T Primitive] struct {
	Array   []Value[T]
	Scalar  Value[T]
	IsArray bool
}

// Scalar builds a scalar Number.
func Scalar[T Primitive](v Value[T]) Number[T] { return Number[T]{Scalar: v} }

// ArrayOf builds an array Number from the given elements.
func ArrayOf[T Primitive](vs []Value[T]) Number[T] { return Number[T]{Array: vs, IsArray: true} }

// ErrLengthMismatch is returned by array/array dyadic operators when the
// two operand arrays have different lengths.
var ErrLengthMismatch = errors.New("numeric: length mismatch")

// ErrIllNan is returned when an index-shaped numeric value is NaN.
var ErrIllNan = errors.New("numeric: illegal NaN used as index")

// ErrIllNeg is returned when an index-shaped numeric value is negative.
var ErrIllNeg = errors.New("numeric: illegal negative used as index")
