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

// Package engine implements the stack machine itself: the operand,
// exec, dict and save stacks, and the fetch-decode-execute loop that
// drives them. Every other package in this module (numeric, intern,
// save, frame, ops) is a pure collaborator; engine is the only piece
// that wires them into something that runs a program.
package engine

import (
	"github.com/google/uuid"

	"github.com/apeyser/neumundtiere/frame"
	"github.com/apeyser/neumundtiere/intern"
	"github.com/apeyser/neumundtiere/lexer"
	"github.com/apeyser/neumundtiere/ops"
	"github.com/apeyser/neumundtiere/save"
)

// Debugf is a package-level diagnostic hook, settable by an embedder
// and defaulting to a no-op, mirroring the corpus's vm.Errorf pattern:
// a core package that wants to trace its own dispatch steps without
// forcing a logging dependency on every caller.
var Debugf = func(f string, args ...any) {}

func debugf(f string, args ...any) { Debugf(f, args...) }

// Vm is one instance of the stack machine: its operand stack, exec
// stack, dict stack, save arena and intern table, plus the procedure-
// collection depth counter.
type Vm struct {
	ID uuid.UUID

	cfg *Config

	operand []frame.Frame
	exec    []frame.Frame

	dictStack []save.Dict
	box       *save.Box
	names     *intern.Table

	procDepth int
}

// NewVM builds a fresh Vm with a base dict populated from the
// built-in operator catalog, the way Vm::new seeds base_map.
func NewVM(cfg *Config) *Vm {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	vm := &Vm{
		ID:    uuid.New(),
		cfg:   cfg,
		box:   save.Base(),
		names: intern.New(),
	}

	entries := make(map[intern.Name]save.Frame, cfg.DictCapacity)
	for _, e := range ops.Catalog {
		entries[vm.names.Intern(e.Name)] = e.F
	}
	for _, a := range ops.Aliases {
		entries[vm.names.Intern(a.Name)] = a.F
	}
	base, err := vm.box.PutDict(entries)
	if err != nil {
		// the freshly-built root box cannot already be dropped.
		panic(err)
	}
	vm.dictStack = []save.Dict{base}
	debugf("engine: new vm %s with %d base entries", vm.ID, len(entries))
	return vm
}

// Stack returns the current operand stack, top last, read-only.
func (vm *Vm) Stack() []frame.Frame {
	return vm.operand
}

// Names returns the intern table backing this Vm's names, so a caller
// can tokenize further source against the same symbol space.
func (vm *Vm) Names() *intern.Table {
	return vm.names
}

// Exec runs frames to completion: pushed onto the exec stack in
// reverse so that they pop in program order, then popped and dispatched one at a time until the
// exec stack empties, "quit" unwinds cleanly, or a step fails. It
// returns the top of the operand stack, whether the stack was
// non-empty, and the first error any step raised.
func (vm *Vm) Exec(frames []frame.Frame) (frame.Frame, bool, error) {
	for i := len(frames) - 1; i >= 0; i-- {
		vm.exec = append(vm.exec, frames[i])
	}
	for len(vm.exec) > 0 {
		f := vm.exec[len(vm.exec)-1]
		vm.exec = vm.exec[:len(vm.exec)-1]
		if err := vm.step(f); err != nil {
			ce := classify(err)
			vm.exec = vm.exec[:0]
			if ce.Kind == Quit {
				return vm.top(), len(vm.operand) > 0, nil
			}
			return nil, false, ce
		}
	}
	return vm.top(), len(vm.operand) > 0, nil
}

func (vm *Vm) top() frame.Frame {
	if len(vm.operand) == 0 {
		return nil
	}
	return vm.operand[len(vm.operand)-1]
}

// step dispatches a single frame popped off the exec stack: marks
// always increment/push, active data is either collected verbatim
// (while a procedure-collection scope is open) or resolved, every
// other frame that happens to be an Operator (including the literal
// mklist/mkproc tokens the lexer injects for "]"/"}", which always run
// regardless of procDepth) executes, and anything left over is pushed
// as plain data.
func (vm *Vm) step(f frame.Frame) error {
	if a, ok := f.(frame.Active); ok {
		if a.IsMark() {
			if vm.cfg.MaxProcDepth > 0 && vm.procDepth+1 > vm.cfg.MaxProcDepth {
				return &Error{Kind: Unknown, Err: errProcDepth(vm.cfg.MaxProcDepth)}
			}
			vm.procDepth++
			vm.StackPush(f)
			return nil
		}
		if vm.procDepth > 0 {
			vm.StackPush(f)
			return nil
		}
		if list, isList := a.AsList(); isList {
			return vm.runList(list)
		}
		if name, isName := a.AsName(); isName {
			return vm.runName(name)
		}
		str, _ := a.AsString()
		return vm.runString(str)
	}
	if op, ok := f.(frame.Operator); ok {
		return op.Exec(vm)
	}
	vm.StackPush(f)
	return nil
}

// runList unrolls one step of an active list: the head executes, the
// tail (still active) is pushed back onto the exec stack so it
// continues unrolling one element at a time rather than recursing,
// keeping a long procedure body from growing the Go call stack. The
// head is retained: the list keeps its own copy of it.
func (vm *Vm) runList(list save.List) error {
	n, err := list.Len()
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	headRaw, err := list.Get(0)
	if err != nil {
		return err
	}
	head, ok := headRaw.(frame.Frame)
	if !ok {
		return frame.ErrOpType
	}
	if n > 1 {
		tail, err := list.Range(1, n-1)
		if err != nil {
			return err
		}
		vm.exec = append(vm.exec, frame.ActiveList(tail))
	}
	vm.exec = append(vm.exec, frame.RetainName(head))
	return nil
}

// runName looks the name up through the dict stack and defers to
// whatever it finds: pushing it back onto the exec stack lets the
// main loop's step re-dispatch it, whether it turns out to be an
// operator, a procedure, or plain data bound by a previous "name".
//
// The name handle itself is only needed for this one lookup: nothing
// else keeps a reference to this particular occurrence once find
// returns, so it is released here rather than leaking one interned
// reference per name token ever executed. The found frame is retained,
// since the dict keeps its own copy of it.
func (vm *Vm) runName(name intern.Name) error {
	found, err := vm.find(name)
	name.Release()
	if err != nil {
		return err
	}
	vm.exec = append(vm.exec, frame.RetainName(found))
	return nil
}

// runString lexes an active string and pushes the resulting frames
// onto the exec stack in the string's own order, the sub-parse-and-
// exec behavior an active string triggers.
func (vm *Vm) runString(src string) error {
	toks, err := lexer.Tokenize(vm.names, src)
	if err != nil {
		return err
	}
	for i := len(toks) - 1; i >= 0; i-- {
		vm.exec = append(vm.exec, toks[i])
	}
	return nil
}

// find scans the dict stack front-to-back, matching find() in the
// tower this one is modeled on.
func (vm *Vm) find(name intern.Name) (frame.Frame, error) {
	for _, d := range vm.dictStack {
		f, ok, err := d.Find(name)
		if err != nil {
			return nil, err
		}
		if ok {
			ff, ok := f.(frame.Frame)
			if !ok {
				return nil, frame.ErrOpType
			}
			return ff, nil
		}
	}
	return nil, &save.MissingKeyError{Name: name.String()}
}

// --- frame.VM ---

func (vm *Vm) StackLen() int { return len(vm.operand) }

func (vm *Vm) StackSplit(n int) []frame.Frame {
	l := len(vm.operand)
	out := append([]frame.Frame(nil), vm.operand[l-n:]...)
	vm.operand = vm.operand[:l-n]
	return out
}

func (vm *Vm) StackPush(f frame.Frame) { vm.operand = append(vm.operand, f) }

func (vm *Vm) StackAppend(fs []frame.Frame) { vm.operand = append(vm.operand, fs...) }

func (vm *Vm) StackTruncate(n int) { vm.operand = vm.operand[:n] }

func (vm *Vm) StackView() []frame.Frame { return vm.operand }

func (vm *Vm) SplitAtMark(active bool) ([]frame.Frame, bool) {
	for i := len(vm.operand) - 1; i >= 0; i-- {
		isMark := false
		if active {
			if a, ok := vm.operand[i].(frame.Active); ok {
				isMark = a.IsMark()
			}
		} else {
			if p, ok := vm.operand[i].(frame.Passive); ok {
				isMark = p.IsMark()
			}
		}
		if isMark {
			above := append([]frame.Frame(nil), vm.operand[i+1:]...)
			vm.operand = vm.operand[:i]
			return above, true
		}
	}
	return nil, false
}

func (vm *Vm) Intern(s string) intern.Name { return vm.names.Intern(s) }

func (vm *Vm) Dict() save.Dict { return vm.dictStack[0] }

func (vm *Vm) PushExec(f frame.Frame) { vm.exec = append(vm.exec, f) }

func (vm *Vm) Save() *save.Box { return vm.box }

func (vm *Vm) ProcDepth() int { return vm.procDepth }

func (vm *Vm) DecProcDepth() {
	if vm.procDepth > 0 {
		vm.procDepth--
	}
}
