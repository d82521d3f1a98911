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
	"fmt"

	"github.com/apeyser/neumundtiere/intern"
	"github.com/apeyser/neumundtiere/save"
)

// datumKind tags which of the four shapes an Active or Passive datum
// carries: a sub-parseable string, an interned name, the mark
// sentinel, or a list view.
type datumKind int

const (
	kindString datumKind = iota
	kindName
	kindMark
	kindList
)

// Active is a datum the exec loop will act on rather than push
// verbatim: an active string gets lexed and executed, an active name
// is looked up in the dict stack and the result executed, an active
// list is unrolled one element at a time, and an active mark opens a
// procedure-collection scope.
type Active struct {
	kind datumKind
	str  string
	name intern.Name
	list save.List
}

func ActiveString(s string) Active    { return Active{kind: kindString, str: s} }
func ActiveName(n intern.Name) Active { return Active{kind: kindName, name: n} }
func ActiveList(l save.List) Active   { return Active{kind: kindList, list: l} }

// ActiveMark is the sentinel pushed by "{" to open a procedure scope.
var ActiveMark = Active{kind: kindMark}

func (a Active) isFrame() {}

func (a Active) Kind() datumKind { return a.kind }

func (a Active) IsMark() bool { return a.kind == kindMark }

// AsString, AsName and AsList report the datum's payload along with
// whether it actually carries that shape.
func (a Active) AsString() (string, bool)    { return a.str, a.kind == kindString }
func (a Active) AsName() (intern.Name, bool) { return a.name, a.kind == kindName }
func (a Active) AsList() (save.List, bool)   { return a.list, a.kind == kindList }

func (a Active) String() string {
	switch a.kind {
	case kindString:
		return fmt.Sprintf("~(%s)", a.str)
	case kindName:
		return fmt.Sprintf("~/(%s)", a.name.String())
	case kindMark:
		return "{"
	default:
		return fmt.Sprintf("{ %s }", a.list.String())
	}
}

// ToPassive converts an active datum to its passive counterpart,
// preserving payload (the "mkpass" operator).
func (a Active) ToPassive() Passive {
	switch a.kind {
	case kindString:
		return PassiveString(a.str)
	case kindName:
		return PassiveName(a.name)
	case kindMark:
		return PassiveMark
	default:
		return PassiveList(a.list)
	}
}
