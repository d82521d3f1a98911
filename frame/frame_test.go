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

package frame

import (
	"testing"

	"github.com/apeyser/neumundtiere/intern"
	"github.com/apeyser/neumundtiere/numeric"
)

func TestActiveDisplay(t *testing.T) {
	table := intern.New()
	name := table.Intern("foo")
	cases := []struct {
		a    Active
		want string
	}{
		{ActiveString("hi"), "~(hi)"},
		{ActiveName(name), "~/(foo)"},
		{ActiveMark, "{"},
	}
	for _, c := range cases {
		if got := c.a.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestPassiveDisplay(t *testing.T) {
	table := intern.New()
	name := table.Intern("foo")
	cases := []struct {
		p    Passive
		want string
	}{
		{PassiveString("hi"), "(hi)"},
		{PassiveName(name), "/(foo)"},
		{PassiveMark, "["},
	}
	for _, c := range cases {
		if got := c.p.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestActivePassiveRoundTrip(t *testing.T) {
	table := intern.New()
	name := table.Intern("bar")
	a := ActiveName(name)
	p := a.ToPassive()
	if got, ok := p.AsName(); !ok || got != name {
		t.Fatalf("ToPassive lost the name: %v, %v", got, ok)
	}
	back := p.ToActive()
	if got, ok := back.AsName(); !ok || got != name {
		t.Fatalf("ToActive lost the name: %v, %v", got, ok)
	}
}

func TestMarkIdentity(t *testing.T) {
	if !ActiveMark.IsMark() {
		t.Error("ActiveMark.IsMark() = false")
	}
	if !PassiveMark.IsMark() {
		t.Error("PassiveMark.IsMark() = false")
	}
	if ActiveString("x").IsMark() {
		t.Error("non-mark reported as mark")
	}
}

func TestNullAndNumDisplay(t *testing.T) {
	if (Null{}).String() != "null" {
		t.Errorf("Null String = %q, want null", Null{}.String())
	}
	n := NumFrame{Num: numeric.NumInt(numeric.Scalar(numeric.Of[int64](5)))}
	if n.String() != "5" {
		t.Errorf("NumFrame String = %q, want 5", n.String())
	}
}
