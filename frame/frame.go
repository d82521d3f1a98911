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

// Package frame defines the stack machine's value sum type: the kinds
// of thing that can sit on the operand or exec stack, and the operator
// shapes (unary, binary, n-ary, stack-level, vm-level) that dispatch
// against it. It is the Go analogue of a tagged union: Frame is an
// interface every concrete variant implements, and a type switch
// stands in for pattern matching.
package frame

import (
	"errors"
	"fmt"

	"github.com/apeyser/neumundtiere/numeric"
	"github.com/apeyser/neumundtiere/save"
)

// Frame is any value that can occupy a stack slot: a number, null, an
// active or passive datum, or one of the five operator shapes. isFrame
// is unexported so only this package may introduce new variants,
// mirroring a closed Rust enum.
type Frame interface {
	fmt.Stringer
	isFrame()
}

// ErrStackUnderflow is returned when an operator needs more operands
// than the stack currently holds.
var ErrStackUnderflow = errors.New("frame: stack underflow")

// ErrOpType is returned when an operand is present but of the wrong
// shape for the operator invoked.
var ErrOpType = errors.New("frame: illegal operand type")

// NumFrame wraps a numeric value as a stack frame.
type NumFrame struct{ Num numeric.Num }

func (NumFrame) isFrame()         {}
func (f NumFrame) String() string { return f.Num.String() }

// Null is the frame pushed by the "null" literal.
type Null struct{}

func (Null) isFrame()       {}
func (Null) String() string { return "null" }

// ToSaveFrames adapts a slice of Frame to the save package's narrower
// Frame interface, needed wherever a Box.PutList/PutDict call takes a
// slice: Go does not implicitly convert []Frame to []save.Frame even
// though every Frame already satisfies save.Frame.
func ToSaveFrames(fs []Frame) []save.Frame {
	out := make([]save.Frame, len(fs))
	for i, f := range fs {
		out[i] = f
	}
	return out
}
