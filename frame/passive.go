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

// Passive is a datum the exec loop pushes verbatim: a quoted string, a
// name, the mark sentinel, or a list view, none of which trigger
// further evaluation on their own.
type Passive struct {
	kind datumKind
	str  string
	name intern.Name
	list save.List
}

func PassiveString(s string) Passive    { return Passive{kind: kindString, str: s} }
func PassiveName(n intern.Name) Passive { return Passive{kind: kindName, name: n} }
func PassiveList(l save.List) Passive   { return Passive{kind: kindList, list: l} }

// PassiveMark is the sentinel pushed by "[" to open a list-collection
// scope.
var PassiveMark = Passive{kind: kindMark}

func (p Passive) isFrame() {}

func (p Passive) Kind() datumKind { return p.kind }

func (p Passive) IsMark() bool { return p.kind == kindMark }

func (p Passive) AsString() (string, bool)    { return p.str, p.kind == kindString }
func (p Passive) AsName() (intern.Name, bool) { return p.name, p.kind == kindName }
func (p Passive) AsList() (save.List, bool)   { return p.list, p.kind == kindList }

func (p Passive) String() string {
	switch p.kind {
	case kindString:
		return fmt.Sprintf("(%s)", p.str)
	case kindName:
		return fmt.Sprintf("/(%s)", p.name.String())
	case kindMark:
		return "["
	default:
		return fmt.Sprintf("[ %s ]", p.list.String())
	}
}

// ToActive converts a passive datum to its active counterpart,
// preserving payload (the "mkact" operator).
func (p Passive) ToActive() Active {
	switch p.kind {
	case kindString:
		return ActiveString(p.str)
	case kindName:
		return ActiveName(p.name)
	case kindMark:
		return ActiveMark
	default:
		return ActiveList(p.list)
	}
}
