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
	"math"
	"math/big"
)

// Checked arithmetic kernels, one set per primitive kind. These mirror
// the per-primitive CheckedAdd/Sub/Mul/Div/Neg impls of the numeric
// tower this package is modeled on: rather than one generic overflow
// check, each kind gets its own (signed wraparound, unsigned wraparound
// and float non-finiteness all differ).

func checkedAddI64(a, b int64) (int64, bool) {
	r := a + b
	if (a >= 0 && b >= 0 && r < 0) || (a < 0 && b < 0 && r >= 0) {
		return 0, false
	}
	return r, true
}

func checkedSubI64(a, b int64) (int64, bool) {
	r := a - b
	if (b >= 0 && r > a) || (b < 0 && r < a) {
		return 0, false
	}
	return r, true
}

func checkedMulI64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, false
	}
	r := a * b
	if r/b != a {
		return 0, false
	}
	return r, true
}

func checkedDivI64(a, b int64) (int64, bool) {
	if b == 0 {
		return 0, false
	}
	if a == math.MinInt64 && b == -1 {
		return 0, false
	}
	return a / b, true
}

func checkedNegI64(a int64) (int64, bool) {
	if a == math.MinInt64 {
		return 0, false
	}
	return -a, true
}

func checkedAddU64(a, b uint64) (uint64, bool) {
	r := a + b
	if r < a {
		return 0, false
	}
	return r, true
}

func checkedSubU64(a, b uint64) (uint64, bool) {
	if b > a {
		return 0, false
	}
	return a - b, true
}

func checkedMulU64(a, b uint64) (uint64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	r := a * b
	if r/b != a {
		return 0, false
	}
	return r, true
}

func checkedDivU64(a, b uint64) (uint64, bool) {
	if b == 0 {
		return 0, false
	}
	return a / b, true
}

// checkedNegU64 always fails: there is no checked negation for an
// unsigned type, so neg on a usize is unconditionally NaN.
func checkedNegU64(uint64) (uint64, bool) { return 0, false }

func checkedAddF64(a, b float64) (float64, bool) {
	r := a + b
	return r, !math.IsInf(r, 0) && !math.IsNaN(r)
}

func checkedSubF64(a, b float64) (float64, bool) {
	r := a - b
	return r, !math.IsInf(r, 0) && !math.IsNaN(r)
}

func checkedMulF64(a, b float64) (float64, bool) {
	r := a * b
	return r, !math.IsInf(r, 0) && !math.IsNaN(r)
}

func checkedDivF64(a, b float64) (float64, bool) {
	r := a / b
	return r, !math.IsInf(r, 0) && !math.IsNaN(r)
}

func checkedNegF64(a float64) (float64, bool) { return -a, true }

func checkedAddBig(a, b *big.Int) (*big.Int, bool) { return new(big.Int).Add(a, b), true }
func checkedSubBig(a, b *big.Int) (*big.Int, bool) { return new(big.Int).Sub(a, b), true }
func checkedMulBig(a, b *big.Int) (*big.Int, bool) { return new(big.Int).Mul(a, b), true }

func checkedDivBig(a, b *big.Int) (*big.Int, bool) {
	if b.Sign() == 0 {
		return nil, false
	}
	return new(big.Int).Quo(a, b), true
}

// castFromFloat casts a float64 kernel result back to a target integer
// kind, failing on non-finite or out-of-range values, matching
// CastFromFloat in the original caster: non-finite or out-of-range
// values become NaN rather than wrapping or truncating silently.

func castFromFloatI64(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= float64(math.MaxInt64) || f < float64(math.MinInt64) {
		return 0, false
	}
	return int64(math.Round(f)), true
}

func castFromFloatU64(f float64) (uint64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f >= float64(math.MaxUint64) || f < 0 {
		return 0, false
	}
	return uint64(math.Round(f)), true
}

// cosI64, cosU64, cosF64 implement the "cos" monadic kernel for each
// kind: convert to float64 (infallible), take the cosine, cast back
// through castFromFloat. For usize this yields NaN whenever the cosine
// is negative, since a negative value has no usize representation.
func cosI64(v int64) (int64, bool)     { return castFromFloatI64(math.Cos(float64(v))) }
func cosU64(v uint64) (uint64, bool)   { return castFromFloatU64(math.Cos(float64(v))) }
func cosF64(v float64) (float64, bool) { return math.Cos(v), true }
