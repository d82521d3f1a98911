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

var Add = frame.BinaryOp{Name: "add", Fn: numeric.Num.Add}
var Sub = frame.BinaryOp{Name: "sub", Fn: numeric.Num.Sub}
var Mul = frame.BinaryOp{Name: "mul", Fn: numeric.Num.Mul}
var Div = frame.BinaryOp{Name: "div", Fn: numeric.Num.Div}
