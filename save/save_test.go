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

package save

import (
	"errors"
	"testing"

	"github.com/apeyser/neumundtiere/intern"
)

// strFrame is a trivial Frame for exercising List/Dict without
// depending on the frame package (which itself depends on save).
type strFrame string

func (s strFrame) String() string { return string(s) }

func TestListGetPutRange(t *testing.T) {
	box := Base()
	list, err := box.PutList([]Frame{strFrame("a"), strFrame("b"), strFrame("c")})
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := list.Len(); n != 3 {
		t.Fatalf("len = %d, want 3", n)
	}
	if f, err := list.Get(1); err != nil || f.String() != "b" {
		t.Fatalf("get(1) = %v, %v", f, err)
	}
	if err := list.Put(1, strFrame("z")); err != nil {
		t.Fatal(err)
	}
	if f, _ := list.Get(1); f.String() != "z" {
		t.Fatalf("after put, get(1) = %v", f)
	}
	sub, err := list.Range(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	if n, _ := sub.Len(); n != 2 {
		t.Fatalf("sub len = %d, want 2", n)
	}
	if f, _ := sub.Get(0); f.String() != "z" {
		t.Fatalf("sub.Get(0) = %v, want z", f)
	}
}

func TestListOutOfRange(t *testing.T) {
	box := Base()
	list, _ := box.PutList([]Frame{strFrame("a")})
	_, err := list.Get(5)
	var rangeErr *RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("err = %v, want *RangeError", err)
	}
}

func TestReleaseInvalidatesView(t *testing.T) {
	box := Base()
	list, _ := box.PutList([]Frame{strFrame("a")})
	box.Release()
	if _, err := list.Get(0); !errors.Is(err, ErrDropped) {
		t.Fatalf("err = %v, want ErrDropped", err)
	}
}

func TestReleaseCascadesToNestedBox(t *testing.T) {
	outer := Base()
	inner, err := outer.PutBox()
	if err != nil {
		t.Fatal(err)
	}
	list, err := inner.PutBox()
	_ = list
	if err != nil {
		t.Fatal(err)
	}
	outer.Release()
	if _, err := inner.Len(); !errors.Is(err, ErrDropped) {
		t.Fatalf("inner box err = %v, want ErrDropped", err)
	}
}

func TestDictGetPutMissingKey(t *testing.T) {
	table := intern.New()
	box := Base()
	dict, err := box.PutDict(nil)
	if err != nil {
		t.Fatal(err)
	}
	name := table.Intern("x")
	if err := dict.Put(name, strFrame("1")); err != nil {
		t.Fatal(err)
	}
	if f, err := dict.Get(name); err != nil || f.String() != "1" {
		t.Fatalf("get = %v, %v", f, err)
	}
	other := table.Intern("y")
	_, err = dict.Get(other)
	var missing *MissingKeyError
	if !errors.As(err, &missing) {
		t.Fatalf("err = %v, want *MissingKeyError", err)
	}
}

func TestListDisplayCycleGuard(t *testing.T) {
	box := Base()
	// build a list, then wrap a Frame whose String() re-enters the
	// same list's Display, simulating a self-referential structure.
	list, _ := box.PutList([]Frame{strFrame("x")})
	cyclic := cyclicFrame{l: list}
	if err := list.Put(0, cyclic); err != nil {
		t.Fatal(err)
	}
	s := list.String()
	if s == "" {
		t.Fatalf("expected non-empty display")
	}
	if s != "[...]" {
		t.Fatalf("display = %q, want %q", s, "[...]")
	}
}

type cyclicFrame struct{ l List }

func (c cyclicFrame) String() string { return "[" + c.l.String() + "]" }
