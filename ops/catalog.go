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

package ops

import (
	"github.com/apeyser/neumundtiere/frame"
	"github.com/apeyser/neumundtiere/numeric"
)

// Catalog pairs every built-in operator with the name it is bound to
// in a fresh VM's base dict, standing in for base_map's list of
// Op::mkpair calls.
var Catalog = []struct {
	Name string
	F    frame.Frame
}{
	{"neg", Neg},
	{"cos", Cos},
	{"add", Add},
	{"sub", Sub},
	{"mul", Mul},
	{"div", Div},
	{"clear", Clear},
	{"show", Show},
	{"peek", Peek},
	{"name", Name},
	{"mkname", MkName},
	{"exec", Exec},
	{"mklist", MkList},
	{"mkproc", MkProc},
	{"list", List},
	{"pop", Pop},
	{"dup", Dup},
	{"exch", Exch},
	{"get", Get},
	{"put", Put},
	{"length", Length},
	{"getinterval", GetInterval},
	{"quit", Quit},
	{"mkstr", MkStr},
	{"mkpass", MkPass},
	{"mkact", MkAct},
}

// Aliases pairs short operator symbols and base-dict-only literals
// that are not themselves Op::mkpair entries: symbol aliases for neg
// and the four arithmetic operators (^ + - × ÷) and for show/peek
// (== =), plus the "mark", "null" and "*" (a lone NaN int) literals.
var Aliases = []struct {
	Name string
	F    frame.Frame
}{
	{"^", Neg},
	{"+", Add},
	{"-", Sub},
	{"×", Mul},
	{"÷", Div},
	{"*", frame.NumFrame{Num: numeric.NumInt(numeric.Scalar(numeric.NaNOf[int64]()))}},
	{"==", Show},
	{"=", Peek},
	{"mark", frame.PassiveMark},
	{"null", frame.Null{}},
}
