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

package numeric

// liftMonadic applies a checked per-element kernel to every value of n,
// turning a failed kernel call into NaN rather than an error: monadic
// and dyadic operators on this tower never fault, they only produce NaN.
func liftMonadic[T Primitive](n Number[T], kernel func(T) (T, bool)) Number[T] {
	apply := func(v Value[T]) Value[T] {
		if v.IsNaN() {
			return v
		}
		if r, ok := kernel(v.Value()); ok {
			return Of(r)
		}
		return NaNOf[T]()
	}
	if !n.IsArray {
		return Scalar(apply(n.Scalar))
	}
	out := make([]Value[T], len(n.Array))
	for i, v := range n.Array {
		out[i] = apply(v)
	}
	return ArrayOf(out)
}

// liftDyadic implements the four cardinality rules shared by every
// dyadic operator: scalar/scalar applies once; array/array zips
// element-wise and requires equal lengths; array/scalar broadcasts the
// scalar across the array; scalar/array left-folds the scalar through
// the array, one element at a time. The result always has lhs's
// cardinality, matching the tower's "result takes the shape of its
// first operand" rule.
func liftDyadic[T, U Primitive, M any](lhs Number[T], rhs Number[U],
	cast func(T, U) (M, M), backCast func(M) (T, bool), kernel func(M, M) (M, bool)) (Number[T], error) {

	step := func(l Value[T], r Value[U]) Value[T] {
		if l.IsNaN() || r.IsNaN() {
			return NaNOf[T]()
		}
		lm, rm := cast(l.Value(), r.Value())
		mid, ok := kernel(lm, rm)
		if !ok {
			return NaNOf[T]()
		}
		back, ok := backCast(mid)
		if !ok {
			return NaNOf[T]()
		}
		return Of(back)
	}

	switch {
	case !lhs.IsArray && !rhs.IsArray:
		return Scalar(step(lhs.Scalar, rhs.Scalar)), nil

	case lhs.IsArray && rhs.IsArray:
		if len(lhs.Array) != len(rhs.Array) {
			return Number[T]{}, ErrLengthMismatch
		}
		out := make([]Value[T], len(lhs.Array))
		for i := range out {
			out[i] = step(lhs.Array[i], rhs.Array[i])
		}
		return ArrayOf(out), nil

	case lhs.IsArray && !rhs.IsArray:
		out := make([]Value[T], len(lhs.Array))
		for i, l := range lhs.Array {
			out[i] = step(l, rhs.Scalar)
		}
		return ArrayOf(out), nil

	default: // scalar lhs, array rhs: left-fold
		acc := lhs.Scalar
		for _, r := range rhs.Array {
			acc = step(acc, r)
		}
		return Scalar(acc), nil
	}
}
