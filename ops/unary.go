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

// Package ops is the built-in operator catalog: one package-level
// value per operator, each built from one of the five shapes in
// frame, grounded on the per-file split of the tower this one is
// modeled on (unary, binary, n-ary, stack-level and vm-level
// operators each get their own file).
package ops

import (
	"github.com/apeyser/neumundtiere/frame"
	"github.com/apeyser/neumundtiere/numeric"
)

var Neg = frame.UnaryOp{Name: "neg", Fn: numeric.Num.Neg}
var Cos = frame.UnaryOp{Name: "cos", Fn: numeric.Num.Cos}
