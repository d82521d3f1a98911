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
	"testing"
)

func scalarInt(v int64) Num     { return NumInt(Scalar(Of(v))) }
func scalarUSize(v uint64) Num  { return NumUSize(Scalar(Of(v))) }
func scalarFloat(v float64) Num { return NumFloat(Scalar(Of(v))) }
func nanInt() Num               { return NumInt(Scalar(NaNOf[int64]())) }

func wantScalarInt(t *testing.T, n Num, want int64) {
	t.Helper()
	if n.Kind() != KindInt || n.i.IsArray || n.i.Scalar.IsNaN() || n.i.Scalar.Value() != want {
		t.Fatalf("got %v, want scalar int %d", n, want)
	}
}

func wantNaN(t *testing.T, n Num) {
	t.Helper()
	var isNaN bool
	switch n.Kind() {
	case KindInt:
		isNaN = !n.i.IsArray && n.i.Scalar.IsNaN()
	case KindUSize:
		isNaN = !n.u.IsArray && n.u.Scalar.IsNaN()
	default:
		isNaN = !n.f.IsArray && n.f.Scalar.IsNaN()
	}
	if !isNaN {
		t.Fatalf("got %v, want NaN", n)
	}
}

func TestAddSameKind(t *testing.T) {
	r, err := scalarInt(2).Add(scalarInt(3))
	if err != nil {
		t.Fatal(err)
	}
	wantScalarInt(t, r, 5)
}

func TestAddCrossKindResultTakesLhsKind(t *testing.T) {
	r, err := scalarInt(2).Add(scalarFloat(3.5))
	if err != nil {
		t.Fatal(err)
	}
	if r.Kind() != KindInt {
		t.Fatalf("result kind = %v, want KindInt (lhs kind)", r.Kind())
	}
	wantScalarInt(t, r, 6) // 2 + 3.5 = 5.5, rounds to 6, cast back to int64
}

func TestAddUSizeIntCastsThroughBig(t *testing.T) {
	r, err := scalarUSize(10).Add(scalarInt(5))
	if err != nil {
		t.Fatal(err)
	}
	if r.Kind() != KindUSize {
		t.Fatalf("result kind = %v, want KindUSize", r.Kind())
	}
	if r.u.Scalar.IsNaN() || r.u.Scalar.Value() != 15 {
		t.Fatalf("got %v, want 15", r)
	}
}

func TestAddUSizeNegativeIntUnderflowsToNaN(t *testing.T) {
	r, err := scalarUSize(1).Add(scalarInt(-5))
	if err != nil {
		t.Fatal(err)
	}
	wantNaN(t, r)
}

func TestNaNPropagatesThroughArithmetic(t *testing.T) {
	r, err := nanInt().Add(scalarInt(3))
	if err != nil {
		t.Fatal(err)
	}
	wantNaN(t, r)
}

func TestIntOverflowNeverFaults(t *testing.T) {
	r, err := scalarInt(math.MaxInt64).Add(scalarInt(1))
	if err != nil {
		t.Fatal(err)
	}
	wantNaN(t, r)
}

func TestDivByZeroIsNaNNotPanic(t *testing.T) {
	r, err := scalarInt(10).Div(scalarInt(0))
	if err != nil {
		t.Fatal(err)
	}
	wantNaN(t, r)
}

func TestArrayArrayLengthMismatch(t *testing.T) {
	lhs := NumInt(ArrayOf([]Value[int64]{Of[int64](1), Of[int64](2)}))
	rhs := NumInt(ArrayOf([]Value[int64]{Of[int64](1)}))
	_, err := lhs.Add(rhs)
	if err != ErrLengthMismatch {
		t.Fatalf("err = %v, want ErrLengthMismatch", err)
	}
}

func TestArrayScalarBroadcasts(t *testing.T) {
	lhs := NumInt(ArrayOf([]Value[int64]{Of[int64](1), Of[int64](2), Of[int64](3)}))
	r, err := lhs.Add(scalarInt(10))
	if err != nil {
		t.Fatal(err)
	}
	if !r.i.IsArray || len(r.i.Array) != 3 {
		t.Fatalf("got %v, want 3-element array", r)
	}
	for i, want := range []int64{11, 12, 13} {
		if r.i.Array[i].Value() != want {
			t.Errorf("element %d = %d, want %d", i, r.i.Array[i].Value(), want)
		}
	}
}

func TestScalarArrayLeftFolds(t *testing.T) {
	rhs := NumInt(ArrayOf([]Value[int64]{Of[int64](1), Of[int64](2), Of[int64](3)}))
	r, err := scalarInt(100).Sub(rhs)
	if err != nil {
		t.Fatal(err)
	}
	wantScalarInt(t, r, 94) // ((100-1)-2)-3
}

func TestNegOverflow(t *testing.T) {
	r, err := scalarInt(math.MinInt64).Neg()
	if err != nil {
		t.Fatal(err)
	}
	wantNaN(t, r)
}

func TestNegUSizeAlwaysNaN(t *testing.T) {
	r, err := scalarUSize(5).Neg()
	if err != nil {
		t.Fatal(err)
	}
	wantNaN(t, r)
}

func TestCosUSizeNegativeResultIsNaN(t *testing.T) {
	// cos(0) == 1, representable; cos(pi-ish inputs) can go negative,
	// which has no usize representation.
	r, err := scalarUSize(0).Cos()
	if err != nil {
		t.Fatal(err)
	}
	if r.u.Scalar.IsNaN() {
		t.Fatalf("cos(0) unexpectedly NaN")
	}
	// cos(3) is about -0.99.
	r, err = scalarUSize(3).Cos()
	if err != nil {
		t.Fatal(err)
	}
	wantNaN(t, r)
}

func TestToIndexRejectsNaN(t *testing.T) {
	_, err := ToIndex(nanInt())
	if err != ErrIllNan {
		t.Fatalf("err = %v, want ErrIllNan", err)
	}
}

func TestToIndexRejectsNegative(t *testing.T) {
	_, err := ToIndex(scalarInt(-1))
	if err != ErrIllNeg {
		t.Fatalf("err = %v, want ErrIllNeg", err)
	}
}

func TestToIndexRejectsOversizeUSize(t *testing.T) {
	_, err := ToIndex(scalarUSize(math.MaxUint64))
	if err != ErrIllNeg {
		t.Fatalf("err = %v, want ErrIllNeg", err)
	}
}

func TestToIndexAcceptsUSize(t *testing.T) {
	idx, err := ToIndex(scalarUSize(3))
	if err != nil {
		t.Fatal(err)
	}
	if idx != 3 {
		t.Fatalf("idx = %d, want 3", idx)
	}
}

func TestToIndexRejectsArray(t *testing.T) {
	n := NumInt(ArrayOf([]Value[int64]{Of[int64](1)}))
	_, err := ToIndex(n)
	if err != ErrOpType {
		t.Fatalf("err = %v, want ErrOpType", err)
	}
}

func TestToIndexAccepts(t *testing.T) {
	idx, err := ToIndex(scalarInt(3))
	if err != nil {
		t.Fatal(err)
	}
	if idx != 3 {
		t.Fatalf("idx = %d, want 3", idx)
	}
}

func TestStringScalarAndNaN(t *testing.T) {
	if got := scalarInt(5).String(); got != "5" {
		t.Errorf("got %q, want 5", got)
	}
	if got := nanInt().String(); got != "*" {
		t.Errorf("got %q, want *", got)
	}
}

func TestStringArrayIsSpaceJoined(t *testing.T) {
	n := NumInt(ArrayOf([]Value[int64]{Of[int64](1), NaNOf[int64](), Of[int64](3)}))
	if got := n.String(); got != "1 * 3" {
		t.Errorf("got %q, want %q", got, "1 * 3")
	}
}
