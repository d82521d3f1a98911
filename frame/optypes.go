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
	"github.com/apeyser/neumundtiere/intern"
	"github.com/apeyser/neumundtiere/numeric"
	"github.com/apeyser/neumundtiere/save"
)

// VM is the slice of engine state an operator body is allowed to
// touch. Unary and binary arithmetic never need it (they're pure
// functions over numeric.Num); n-ary and stack operators only need the
// operand stack; only vm-level operators reach into the dict stack,
// save stack, exec stack and intern table. Defining it here, rather
// than importing the engine package, is what lets engine, frame and
// ops avoid an import cycle: engine implements VM, frame and ops only
// depend on the interface.
type VM interface {
	StackLen() int
	StackSplit(n int) []Frame
	StackPush(f Frame)
	StackAppend(fs []Frame)
	StackTruncate(n int)
	StackView() []Frame
	SplitAtMark(active bool) ([]Frame, bool)

	Intern(s string) intern.Name
	Dict() save.Dict
	PushExec(f Frame)
	Save() *save.Box
	ProcDepth() int
	DecProcDepth()
}

// Operator is any Frame that dispatches against a VM: the common
// contract shared by all five operator shapes is arity check, operand
// shape check, invoke, then push or append the result — each shape
// implements that contract for its own operand rules.
type Operator interface {
	Frame
	Exec(vm VM) error
}

// UnaryOpFunc is a pure function over the numeric tower.
type UnaryOpFunc func(numeric.Num) (numeric.Num, error)

// UnaryOp pops one Num, applies Fn, pushes the result.
type UnaryOp struct {
	Name string
	Fn   UnaryOpFunc
}

func (UnaryOp) isFrame()         {}
func (op UnaryOp) String() string { return op.Name }

func (op UnaryOp) Exec(vm VM) error {
	if vm.StackLen() < 1 {
		return ErrStackUnderflow
	}
	args := vm.StackSplit(1)
	n, ok := args[0].(NumFrame)
	if !ok {
		return ErrOpType
	}
	r, err := op.Fn(n.Num)
	if err != nil {
		return err
	}
	vm.StackPush(NumFrame{r})
	return nil
}

// BinaryOpFunc is a pure function over two numeric values.
type BinaryOpFunc func(a, b numeric.Num) (numeric.Num, error)

// BinaryOp pops two Nums, applies Fn, pushes the result.
type BinaryOp struct {
	Name string
	Fn   BinaryOpFunc
}

func (BinaryOp) isFrame()          {}
func (op BinaryOp) String() string { return op.Name }

func (op BinaryOp) Exec(vm VM) error {
	if vm.StackLen() < 2 {
		return ErrStackUnderflow
	}
	args := vm.StackSplit(2)
	a, ok1 := args[0].(NumFrame)
	b, ok2 := args[1].(NumFrame)
	if !ok1 || !ok2 {
		return ErrOpType
	}
	r, err := op.Fn(a.Num, b.Num)
	if err != nil {
		return err
	}
	vm.StackPush(NumFrame{r})
	return nil
}

// NaryOpFunc consumes exactly N frames and produces zero or more
// replacement frames; it never reaches outside the stack it was
// handed.
type NaryOpFunc func(args []Frame) ([]Frame, error)

// NaryOp pops N frames, applies Fn, appends the result.
type NaryOp struct {
	Name string
	Fn   NaryOpFunc
	N    int
}

func (NaryOp) isFrame()          {}
func (op NaryOp) String() string { return op.Name }

func (op NaryOp) Exec(vm VM) error {
	if vm.StackLen() < op.N {
		return ErrStackUnderflow
	}
	args := vm.StackSplit(op.N)
	out, err := op.Fn(args)
	if err != nil {
		return err
	}
	vm.StackAppend(out)
	return nil
}

// StackOpFunc sees the whole remaining stack (after its own N operands
// are removed) plus those N operands, and returns a replacement for
// them together with how many further frames, counting from the top
// of the remaining stack, to discard.
type StackOpFunc func(stack []Frame, args []Frame) (replacement []Frame, truncate int, err error)

// StackOp is for operators that need visibility into the whole
// operand stack, not just their own arity's worth: clear, show, peek.
type StackOp struct {
	Name string
	Fn   StackOpFunc
	N    int
}

func (StackOp) isFrame()          {}
func (op StackOp) String() string { return op.Name }

func (op StackOp) Exec(vm VM) error {
	if vm.StackLen() < op.N {
		return ErrStackUnderflow
	}
	args := vm.StackSplit(op.N)
	remaining := vm.StackView()
	out, truncate, err := op.Fn(remaining, args)
	if err != nil {
		return err
	}
	if vm.StackLen() < truncate {
		return ErrStackUnderflow
	}
	vm.StackTruncate(vm.StackLen() - truncate)
	vm.StackAppend(out)
	return nil
}

// VmOpFunc is for operators that need the full machine: binding names
// into the current dict, interning strings, allocating list/dict
// storage in the current save box, or pushing onto the exec stack.
type VmOpFunc func(args []Frame, vm VM) ([]Frame, error)

// VmOp pops N frames, applies Fn with full VM access, appends the
// result.
type VmOp struct {
	Name string
	Fn   VmOpFunc
	N    int
}

func (VmOp) isFrame()          {}
func (op VmOp) String() string { return op.Name }

func (op VmOp) Exec(vm VM) error {
	if vm.StackLen() < op.N {
		return ErrStackUnderflow
	}
	args := vm.StackSplit(op.N)
	out, err := op.Fn(args, vm)
	if err != nil {
		return err
	}
	vm.StackAppend(out)
	return nil
}
