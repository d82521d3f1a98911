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

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Kind tags which of the three primitive towers a Num carries.
type Kind int

const (
	KindInt Kind = iota
	KindUSize
	KindFloat
)

// Num is the numeric frame kind: a tagged union over the three typed
// Number towers. Every arithmetic method dispatches on (self kind, rhs
// kind) and always returns a Num carrying self's kind, matching the
// "result takes the shape and kind of its left operand" rule.
type Num struct {
	kind Kind
	i    Number[int64]
	u    Number[uint64]
	f    Number[float64]
}

func NumInt(n Number[int64]) Num     { return Num{kind: KindInt, i: n} }
func NumUSize(n Number[uint64]) Num  { return Num{kind: KindUSize, u: n} }
func NumFloat(n Number[float64]) Num { return Num{kind: KindFloat, f: n} }

// Kind reports which tower this Num carries.
func (n Num) Kind() Kind { return n.kind }

// Neg and Cos apply the corresponding monadic kernel to whichever
// tower this Num carries.
func (n Num) Neg() (Num, error) {
	switch n.kind {
	case KindInt:
		return NumInt(liftMonadic(n.i, checkedNegI64)), nil
	case KindUSize:
		return NumUSize(liftMonadic(n.u, checkedNegU64)), nil
	default:
		return NumFloat(liftMonadic(n.f, checkedNegF64)), nil
	}
}

func (n Num) Cos() (Num, error) {
	switch n.kind {
	case KindInt:
		return NumInt(liftMonadic(n.i, cosI64)), nil
	case KindUSize:
		return NumUSize(liftMonadic(n.u, cosU64)), nil
	default:
		return NumFloat(liftMonadic(n.f, cosF64)), nil
	}
}

// dyadic dispatches lhs (self) against rhs across all nine kind
// combinations, picking the cast/backCast pair from the caster matrix
// in caster.go and the kernel field matching the pair's intermediate
// kind, then running liftDyadic to apply the cardinality rules.
func (lhs Num) dyadic(k dyadicKernel, rhs Num) (Num, error) {
	switch lhs.kind {
	case KindInt:
		switch rhs.kind {
		case KindInt:
			r, err := liftDyadic(lhs.i, rhs.i, castI64I64, backCastI64I64, k.i64)
			return NumInt(r), err
		case KindUSize:
			r, err := liftDyadic(lhs.i, rhs.u, castI64U64, backCastBigI64, k.big)
			return NumInt(r), err
		default:
			r, err := liftDyadic(lhs.i, rhs.f, castI64F64, castFromFloatI64, k.f64)
			return NumInt(r), err
		}
	case KindUSize:
		switch rhs.kind {
		case KindInt:
			r, err := liftDyadic(lhs.u, rhs.i, castU64I64, backCastBigU64, k.big)
			return NumUSize(r), err
		case KindUSize:
			r, err := liftDyadic(lhs.u, rhs.u, castU64U64, backCastU64U64, k.u64)
			return NumUSize(r), err
		default:
			r, err := liftDyadic(lhs.u, rhs.f, castU64F64, castFromFloatU64, k.f64)
			return NumUSize(r), err
		}
	default:
		switch rhs.kind {
		case KindInt:
			r, err := liftDyadic(lhs.f, rhs.i, castF64I64, backCastF64F64, k.f64)
			return NumFloat(r), err
		case KindUSize:
			r, err := liftDyadic(lhs.f, rhs.u, castF64U64, backCastF64F64, k.f64)
			return NumFloat(r), err
		default:
			r, err := liftDyadic(lhs.f, rhs.f, castF64F64, backCastF64F64, k.f64)
			return NumFloat(r), err
		}
	}
}

func (lhs Num) Add(rhs Num) (Num, error) { return lhs.dyadic(addKernel, rhs) }
func (lhs Num) Sub(rhs Num) (Num, error) { return lhs.dyadic(subKernel, rhs) }
func (lhs Num) Mul(rhs Num) (Num, error) { return lhs.dyadic(mulKernel, rhs) }
func (lhs Num) Div(rhs Num) (Num, error) { return lhs.dyadic(divKernel, rhs) }

// ErrOpType is returned when an operator receives an operand of a kind
// it was not defined to accept (here: a non-scalar Num where an index
// is required).
var ErrOpType = errors.New("numeric: wrong operand type")

// ToIndex converts a scalar Num to a slice/array index, matching the
// to_index/from_num rules: NaN is illegal, negative is illegal, and
// only a scalar (never an array) may serve as an index.
func ToIndex(n Num) (int, error) {
	switch n.kind {
	case KindInt:
		if n.i.IsArray {
			return 0, ErrOpType
		}
		if n.i.Scalar.IsNaN() {
			return 0, ErrIllNan
		}
		v := n.i.Scalar.Value()
		if v < 0 {
			return 0, ErrIllNeg
		}
		return int(v), nil
	case KindUSize:
		if n.u.IsArray {
			return 0, ErrOpType
		}
		if n.u.Scalar.IsNaN() {
			return 0, ErrIllNan
		}
		v := n.u.Scalar.Value()
		if v > math.MaxInt64 {
			return 0, ErrIllNeg
		}
		return int(v), nil
	default:
		return 0, ErrOpType
	}
}

// String renders a Num the way the tower it is modeled on displays
// NumericValue/Number: a scalar prints its value or "*" for NaN; an
// array prints its elements space-joined.
func (n Num) String() string {
	switch n.kind {
	case KindInt:
		return formatNumber(n.i, func(v int64) string { return strconv.FormatInt(v, 10) })
	case KindUSize:
		return formatNumber(n.u, func(v uint64) string { return strconv.FormatUint(v, 10) })
	default:
		return formatNumber(n.f, func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) })
	}
}

func formatNumber[T Primitive](n Number[T], show func(T) string) string {
	one := func(v Value[T]) string {
		if v.IsNaN() {
			return "*"
		}
		return show(v.Value())
	}
	if !n.IsArray {
		return one(n.Scalar)
	}
	parts := make([]string, len(n.Array))
	for i, v := range n.Array {
		parts[i] = one(v)
	}
	return strings.Join(parts, " ")
}
