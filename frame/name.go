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

import "github.com/apeyser/neumundtiere/intern"

func nameOf(f Frame) (intern.Name, bool) {
	if a, ok := f.(Active); ok {
		return a.AsName()
	}
	if p, ok := f.(Passive); ok {
		return p.AsName()
	}
	return intern.Name{}, false
}

// ReleaseName releases the interned name a frame carries, if any. Every
// call site that discards a frame outright (pop, clear, overwriting a
// list slot, converting a name to a string) without moving it somewhere
// else still reachable must call this, so the intern table's refcount
// reflects the frame actually being gone.
func ReleaseName(f Frame) {
	if n, ok := nameOf(f); ok {
		n.Release()
	}
}

// RetainName returns f with its interned name's reference count bumped,
// if it carries one. Needed wherever a frame ends up with two
// independent holders at once: "dup" duplicating it on the stack, or
// "get" copying an element out of a list while the list keeps its own
// copy.
func RetainName(f Frame) Frame {
	switch v := f.(type) {
	case Active:
		if n, ok := v.AsName(); ok {
			v.name = n.Retain()
			return v
		}
	case Passive:
		if n, ok := v.AsName(); ok {
			v.name = n.Retain()
			return v
		}
	}
	return f
}
