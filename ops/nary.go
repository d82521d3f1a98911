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
	"errors"

	"github.com/apeyser/neumundtiere/frame"
	"github.com/apeyser/neumundtiere/numeric"
)

// ErrQuit unwinds the exec loop back to its caller, the way the
// "quit" operator does.
var ErrQuit = errors.New("ops: quit")

func fromNum(f frame.Frame) (int, error) {
	n, ok := f.(frame.NumFrame)
	if !ok {
		return 0, frame.ErrOpType
	}
	return numeric.ToIndex(n.Num)
}

var Pop = frame.NaryOp{Name: "pop", N: 1, Fn: func(args []frame.Frame) ([]frame.Frame, error) {
	frame.ReleaseName(args[0])
	return nil, nil
}}

var Dup = frame.NaryOp{Name: "dup", N: 1, Fn: func(args []frame.Frame) ([]frame.Frame, error) {
	return []frame.Frame{args[0], frame.RetainName(args[0])}, nil
}}

var Exch = frame.NaryOp{Name: "exch", N: 2, Fn: func(args []frame.Frame) ([]frame.Frame, error) {
	return []frame.Frame{args[1], args[0]}, nil
}}

var Get = frame.NaryOp{Name: "get", N: 2, Fn: func(args []frame.Frame) ([]frame.Frame, error) {
	p, ok := args[0].(frame.Passive)
	list, okList := p.AsList()
	if !ok || !okList {
		return nil, frame.ErrOpType
	}
	idx, err := fromNum(args[1])
	if err != nil {
		return nil, err
	}
	sv, err := list.Get(idx)
	if err != nil {
		return nil, err
	}
	f, ok := sv.(frame.Frame)
	if !ok {
		return nil, frame.ErrOpType
	}
	// the list keeps its own copy of the element; the stack now holds a
	// second, independent one.
	return []frame.Frame{frame.RetainName(f)}, nil
}}

var Put = frame.NaryOp{Name: "put", N: 3, Fn: func(args []frame.Frame) ([]frame.Frame, error) {
	p, ok := args[1].(frame.Passive)
	list, okList := p.AsList()
	if !ok || !okList {
		return nil, frame.ErrOpType
	}
	idx, err := fromNum(args[2])
	if err != nil {
		return nil, err
	}
	// the slot being overwritten releases whatever it held before.
	if old, err := list.Get(idx); err == nil {
		if oldFrame, ok := old.(frame.Frame); ok {
			frame.ReleaseName(oldFrame)
		}
	}
	if err := list.Put(idx, args[0]); err != nil {
		return nil, err
	}
	return nil, nil
}}

var Length = frame.NaryOp{Name: "length", N: 1, Fn: func(args []frame.Frame) ([]frame.Frame, error) {
	p, ok := args[0].(frame.Passive)
	list, okList := p.AsList()
	if !ok || !okList {
		return nil, frame.ErrOpType
	}
	n, err := list.Len()
	if err != nil {
		return nil, err
	}
	return []frame.Frame{frame.NumFrame{Num: numeric.NumUSize(numeric.Scalar(numeric.Of(uint64(n))))}}, nil
}}

var GetInterval = frame.NaryOp{Name: "getinterval", N: 3, Fn: func(args []frame.Frame) ([]frame.Frame, error) {
	p, ok := args[0].(frame.Passive)
	list, okList := p.AsList()
	if !ok || !okList {
		return nil, frame.ErrOpType
	}
	start, err := fromNum(args[1])
	if err != nil {
		return nil, err
	}
	length, err := fromNum(args[2])
	if err != nil {
		return nil, err
	}
	sub, err := list.Range(start, length)
	if err != nil {
		return nil, err
	}
	return []frame.Frame{frame.PassiveList(sub)}, nil
}}

var Quit = frame.NaryOp{Name: "quit", N: 0, Fn: func(args []frame.Frame) ([]frame.Frame, error) {
	return nil, ErrQuit
}}

var MkStr = frame.NaryOp{Name: "mkstr", N: 1, Fn: func(args []frame.Frame) ([]frame.Frame, error) {
	p, ok := args[0].(frame.Passive)
	if !ok {
		return nil, frame.ErrOpType
	}
	name, ok := p.AsName()
	if !ok {
		return nil, frame.ErrOpType
	}
	s := name.String()
	name.Release()
	return []frame.Frame{frame.PassiveString(s)}, nil
}}

var MkPass = frame.NaryOp{Name: "mkpass", N: 1, Fn: func(args []frame.Frame) ([]frame.Frame, error) {
	a, ok := args[0].(frame.Active)
	if !ok {
		return nil, frame.ErrOpType
	}
	return []frame.Frame{a.ToPassive()}, nil
}}

var MkAct = frame.NaryOp{Name: "mkact", N: 1, Fn: func(args []frame.Frame) ([]frame.Frame, error) {
	p, ok := args[0].(frame.Passive)
	if !ok {
		return nil, frame.ErrOpType
	}
	return []frame.Frame{p.ToActive()}, nil
}}
