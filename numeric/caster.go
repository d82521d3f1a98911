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

import "math/big"

// dyadicKernel bundles one operator's checked kernel for each of the
// four intermediate kinds a caster can land on. Exactly one field of
// the four is ever invoked for a given (lhs, rhs) kind pair; the other
// three exist so the same kernel set serves every entry of the 3x3
// caster matrix below.
type dyadicKernel struct {
	i64 func(int64, int64) (int64, bool)
	u64 func(uint64, uint64) (uint64, bool)
	f64 func(float64, float64) (float64, bool)
	big func(*big.Int, *big.Int) (*big.Int, bool)
}

var (
	addKernel = dyadicKernel{i64: checkedAddI64, u64: checkedAddU64, f64: checkedAddF64, big: checkedAddBig}
	subKernel = dyadicKernel{i64: checkedSubI64, u64: checkedSubU64, f64: checkedSubF64, big: checkedSubBig}
	mulKernel = dyadicKernel{i64: checkedMulI64, u64: checkedMulU64, f64: checkedMulF64, big: checkedMulBig}
	divKernel = dyadicKernel{i64: checkedDivI64, u64: checkedDivU64, f64: checkedDivF64, big: checkedDivBig}
)

// The nine cast/backCast pairs below mirror the caster_simple! and
// caster_back! macro tables this tower is modeled on: same-kind pairs
// and pairs with a float64 lhs cast and back-cast trivially; pairs with
// an int64 or uint64 lhs and a float64 rhs back-cast through
// castFromFloatI64/castFromFloatU64 (kernels.go), which yield NaN when
// out of range; the two int64/uint64 cross pairs route through a big.Int intermediate
// (standing in for the original's i128) since one of int64 or uint64
// alone cannot hold the full range of the other.

func castI64I64(l, r int64) (int64, int64)     { return l, r }
func backCastI64I64(m int64) (int64, bool)     { return m, true }
func castU64U64(l, r uint64) (uint64, uint64)  { return l, r }
func backCastU64U64(m uint64) (uint64, bool)   { return m, true }
func castF64F64(l, r float64) (float64, float64) { return l, r }
func backCastF64F64(m float64) (float64, bool) { return m, true }

func castF64I64(l float64, r int64) (float64, float64) { return l, float64(r) }
func castF64U64(l float64, r uint64) (float64, float64) { return l, float64(r) }

func castI64F64(l int64, r float64) (float64, float64)  { return float64(l), r }
func castU64F64(l uint64, r float64) (float64, float64) { return float64(l), r }

func castI64U64(l int64, r uint64) (*big.Int, *big.Int) {
	return big.NewInt(l), new(big.Int).SetUint64(r)
}

func castU64I64(l uint64, r int64) (*big.Int, *big.Int) {
	return new(big.Int).SetUint64(l), big.NewInt(r)
}

func backCastBigI64(m *big.Int) (int64, bool) {
	if !m.IsInt64() {
		return 0, false
	}
	return m.Int64(), true
}

func backCastBigU64(m *big.Int) (uint64, bool) {
	if m.Sign() < 0 || !m.IsUint64() {
		return 0, false
	}
	return m.Uint64(), true
}
