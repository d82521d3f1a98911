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

package engine

import (
	"errors"
	"fmt"

	"github.com/apeyser/neumundtiere/frame"
	"github.com/apeyser/neumundtiere/lexer"
	"github.com/apeyser/neumundtiere/numeric"
	"github.com/apeyser/neumundtiere/ops"
	"github.com/apeyser/neumundtiere/save"
)

// Kind enumerates every way a dispatch step can fail.
type Kind int

const (
	Quit Kind = iota
	StackUnderflow
	OpType
	Unknown
	IntParse
	FloatParse
	USizeParse
	IllegalSym
	Illformed
	Range
	IllNeg
	IllNan
	Dropped
	MissingKey
	LengthMismatch
)

var kindNames = [...]string{
	Quit:            "quit",
	StackUnderflow:  "stack underflow",
	OpType:          "illegal operand type",
	Unknown:         "unknown",
	IntParse:        "int parse error",
	FloatParse:      "float parse error",
	USizeParse:      "usize parse error",
	IllegalSym:      "illegal symbol",
	Illformed:       "illformed input",
	Range:           "index out of range",
	IllNeg:          "illegal negative index",
	IllNan:          "illegal NaN index",
	Dropped:         "use of dropped composite",
	MissingKey:      "missing key",
	LengthMismatch:  "length mismatch",
}

func (k Kind) String() string {
	if int(k) < 0 || int(k) >= len(kindNames) {
		return "unknown kind"
	}
	return kindNames[k]
}

// Error is the one structured error type every VM dispatch step raises
// in place of a family of panics: a Kind tag plus whichever contextual
// fields that Kind carries.
type Error struct {
	Kind  Kind
	Len   int
	Index int
	Name  string
	Err   error
}

func (e *Error) Error() string {
	switch e.Kind {
	case Range:
		return fmt.Sprintf("engine: %s: index %d, length %d", e.Kind, e.Index, e.Len)
	case MissingKey:
		return fmt.Sprintf("engine: %s: %q", e.Kind, e.Name)
	case IntParse, FloatParse, USizeParse, IllegalSym, Illformed:
		return fmt.Sprintf("engine: %s: %q", e.Kind, e.Name)
	case Unknown:
		return fmt.Sprintf("engine: %v", e.Err)
	default:
		return fmt.Sprintf("engine: %s", e.Kind)
	}
}

func (e *Error) Unwrap() error { return e.Err }

// errProcDepth reports that opening another "{" scope would exceed
// the configured procedure-nesting limit. There is no dedicated Kind
// for this in the taxonomy carried over from spec.md, so it surfaces
// as Unknown with a descriptive Err, the way an out-of-band ambient
// limit (not one of the original error cases) ought to.
func errProcDepth(limit int) error {
	return fmt.Errorf("procedure nesting exceeds configured limit %d", limit)
}

// classify maps an error bubbled up from save/frame/numeric/ops/lexer
// into the unified Error taxonomy. The first error any dispatch step
// raises is what Vm.Exec surfaces, unwrapped exactly once.
func classify(err error) *Error {
	if err == nil {
		return nil
	}
	var already *Error
	if errors.As(err, &already) {
		return already
	}

	switch {
	case errors.Is(err, ops.ErrQuit):
		return &Error{Kind: Quit}
	case errors.Is(err, frame.ErrStackUnderflow):
		return &Error{Kind: StackUnderflow}
	case errors.Is(err, frame.ErrOpType), errors.Is(err, numeric.ErrOpType):
		return &Error{Kind: OpType}
	case errors.Is(err, save.ErrDropped):
		return &Error{Kind: Dropped}
	case errors.Is(err, numeric.ErrIllNan):
		return &Error{Kind: IllNan}
	case errors.Is(err, numeric.ErrIllNeg):
		return &Error{Kind: IllNeg}
	case errors.Is(err, numeric.ErrLengthMismatch):
		return &Error{Kind: LengthMismatch}
	}

	var rangeErr *save.RangeError
	if errors.As(err, &rangeErr) {
		return &Error{Kind: Range, Len: rangeErr.Len, Index: rangeErr.Index}
	}
	var missing *save.MissingKeyError
	if errors.As(err, &missing) {
		return &Error{Kind: MissingKey, Name: missing.Name}
	}
	var parse *lexer.ParseError
	if errors.As(err, &parse) {
		k := FloatParse
		switch parse.Kind {
		case "int":
			k = IntParse
		case "usize":
			k = USizeParse
		}
		return &Error{Kind: k, Name: parse.Text, Err: parse.Err}
	}
	var illformed *lexer.IllformedError
	if errors.As(err, &illformed) {
		return &Error{Kind: Illformed, Name: illformed.Text}
	}
	var illegal *lexer.IllegalSymError
	if errors.As(err, &illegal) {
		return &Error{Kind: IllegalSym, Name: illegal.Sym}
	}

	return &Error{Kind: Unknown, Err: err}
}
