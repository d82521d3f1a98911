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

var Name = frame.VmOp{Name: "name", N: 2, Fn: func(args []frame.Frame, vm frame.VM) ([]frame.Frame, error) {
	p, ok := args[1].(frame.Passive)
	name, okName := p.AsName()
	if !ok || !okName {
		return nil, frame.ErrOpType
	}
	// binding a name that is not yet a key transfers this occurrence's
	// reference into the dict; rebinding an existing key leaves the
	// original key in place and only replaces its value, so this
	// occurrence's reference is otherwise dropped on the floor.
	_, existed, err := vm.Dict().Find(name)
	if err != nil {
		return nil, err
	}
	if existed {
		name.Release()
	}
	if err := vm.Dict().Put(name, args[0]); err != nil {
		return nil, err
	}
	return nil, nil
}}

var MkName = frame.VmOp{Name: "mkname", N: 1, Fn: func(args []frame.Frame, vm frame.VM) ([]frame.Frame, error) {
	p, ok := args[0].(frame.Passive)
	str, okStr := p.AsString()
	if !ok || !okStr {
		return nil, frame.ErrOpType
	}
	name := vm.Intern(str)
	return []frame.Frame{frame.PassiveName(name)}, nil
}}

var Exec = frame.VmOp{Name: "exec", N: 1, Fn: func(args []frame.Frame, vm frame.VM) ([]frame.Frame, error) {
	if _, ok := args[0].(frame.Active); !ok {
		return nil, frame.ErrOpType
	}
	vm.PushExec(args[0])
	return nil, nil
}}

var MkList = frame.VmOp{Name: "mklist", N: 0, Fn: func(args []frame.Frame, vm frame.VM) ([]frame.Frame, error) {
	above, ok := vm.SplitAtMark(false)
	if !ok {
		return nil, frame.ErrStackUnderflow
	}
	list, err := vm.Save().PutList(frame.ToSaveFrames(above))
	if err != nil {
		return nil, err
	}
	return []frame.Frame{frame.PassiveList(list)}, nil
}}

var MkProc = frame.VmOp{Name: "mkproc", N: 0, Fn: func(args []frame.Frame, vm frame.VM) ([]frame.Frame, error) {
	above, ok := vm.SplitAtMark(true)
	if !ok {
		return nil, frame.ErrStackUnderflow
	}
	list, err := vm.Save().PutList(frame.ToSaveFrames(above))
	if err != nil {
		return nil, err
	}
	vm.DecProcDepth()
	return []frame.Frame{frame.ActiveList(list)}, nil
}}

var List = frame.VmOp{Name: "list", N: 1, Fn: func(args []frame.Frame, vm frame.VM) ([]frame.Frame, error) {
	n, ok := args[0].(frame.NumFrame)
	if !ok {
		return nil, frame.ErrOpType
	}
	idx, err := numeric.ToIndex(n.Num)
	if err != nil {
		return nil, err
	}
	frames := make([]frame.Frame, idx)
	for i := range frames {
		frames[i] = frame.Null{}
	}
	list, err := vm.Save().PutList(frame.ToSaveFrames(frames))
	if err != nil {
		return nil, err
	}
	return []frame.Frame{frame.PassiveList(list)}, nil
}}
