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

// Package save implements the composite arena: a Box owns the storage
// behind every list, dict and nested box created inside it, and hands
// out List/Dict views onto that storage. Releasing a Box invalidates
// every view and nested Box it ever produced, whether or not anything
// else still references them, mirroring the strong/weak ownership
// graph this tower is modeled on: a Box is the strong owner, List and
// Dict are weak views that report Dropped once their owner is gone.
package save

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/apeyser/neumundtiere/intern"
)

// Frame is the minimal contract List and Dict need from the values
// they store: every concrete frame variant must be displayable, since
// list/dict Display recurses into its elements.
type Frame interface {
	fmt.Stringer
}

// dropper is implemented by anything a Box can own: list storage, dict
// storage, or a nested Box. Releasing a Box cascades drop() to every
// child it directly produced.
type dropper interface {
	drop()
}

type listState struct {
	dropped bool
	frames  []Frame
}

func (s *listState) drop() { s.dropped = true }

type dictState struct {
	dropped bool
	entries map[intern.Name]Frame
}

func (s *dictState) drop() { s.dropped = true }

// Box is an arena: the strong owner of zero or more list, dict and
// nested-box slots. A Box created directly (Base) or via Put lives
// until Release is called on it or on an ancestor Box that owns it.
type Box struct {
	ID       uuid.UUID
	dropped  bool
	children []dropper
}

// Base returns a new, independently-owned root Box, analogous to
// SaveBox::base(): a box with no parent, pinned for as long as the
// caller holds it.
func Base() *Box {
	return &Box{ID: uuid.New()}
}

func (b *Box) drop() { b.Release() }

// Release invalidates this Box and every list, dict or nested Box it
// has ever produced. Release is idempotent.
func (b *Box) Release() {
	if b.dropped {
		return
	}
	b.dropped = true
	for _, c := range b.children {
		c.drop()
	}
}

func (b *Box) alive() error {
	if b.dropped {
		return ErrDropped
	}
	return nil
}

// Len reports how many slots this Box has ever produced, matching
// Save::len (the savebox vector length).
func (b *Box) Len() (int, error) {
	if err := b.alive(); err != nil {
		return 0, err
	}
	return len(b.children), nil
}

// PutList interns frames as new list storage owned by this Box and
// returns a view onto the whole of it.
func (b *Box) PutList(frames []Frame) (List, error) {
	if err := b.alive(); err != nil {
		return List{}, err
	}
	// Clone so later mutation of the caller's backing array (or its
	// reuse for another PutList) can never alias this slot's storage,
	// matching ion.Symtab.init's use of maps.Clone to take ownership
	// of a map handed in from outside.
	st := &listState{frames: slices.Clone(frames)}
	b.children = append(b.children, st)
	return List{st: st, len: len(st.frames)}, nil
}

// PutDict interns entries as new dict storage owned by this Box and
// returns a view onto it.
func (b *Box) PutDict(entries map[intern.Name]Frame) (Dict, error) {
	if err := b.alive(); err != nil {
		return Dict{}, err
	}
	if entries == nil {
		entries = make(map[intern.Name]Frame)
	} else {
		entries = maps.Clone(entries)
	}
	st := &dictState{entries: entries}
	b.children = append(b.children, st)
	return Dict{st: st}, nil
}

// PutBox allocates a new Box nested inside this one: releasing the
// parent releases the child too, but the child may also be released
// independently before the parent is.
func (b *Box) PutBox() (*Box, error) {
	if err := b.alive(); err != nil {
		return nil, err
	}
	child := &Box{ID: uuid.New()}
	b.children = append(b.children, child)
	return child, nil
}

// String matches SaveBox's Display: "-- Dropped --" once released,
// otherwise the number of slots it has produced.
func (b *Box) String() string {
	if b.dropped {
		return "-- Dropped --"
	}
	return fmt.Sprintf("len=%d", len(b.children))
}

// pending is the process-global, mutex-guarded set of composites
// currently being formatted, keyed by list window (storage, start,
// length) or by dict storage, so a cyclic list/dict graph prints "..."
// at the point it revisits a window or dict instead of recursing
// forever. A single set spans both List and Dict since a cycle can
// alternate between the two kinds.
var pending = struct {
	mu  sync.Mutex
	set map[any]struct{}
}{set: make(map[any]struct{})}

func enterPending(key any) bool {
	pending.mu.Lock()
	defer pending.mu.Unlock()
	if _, ok := pending.set[key]; ok {
		return false
	}
	pending.set[key] = struct{}{}
	return true
}

func exitPending(key any) {
	pending.mu.Lock()
	defer pending.mu.Unlock()
	delete(pending.set, key)
}

// List is a weak, offset-bounded view onto a contiguous run of frames
// owned by some Box. Range produces narrower views of the same
// storage without copying it.
type List struct {
	st    *listState
	start int
	len   int
}

func (l List) alive() error {
	if l.st == nil || l.st.dropped {
		return ErrDropped
	}
	return nil
}

// Len reports the view's length, not the underlying storage's.
func (l List) Len() (int, error) {
	if err := l.alive(); err != nil {
		return 0, err
	}
	return l.len, nil
}

// Get returns the frame at index, relative to this view's window.
func (l List) Get(index int) (Frame, error) {
	if err := l.alive(); err != nil {
		return nil, err
	}
	if index >= l.len {
		return nil, &RangeError{Len: l.len, Index: index}
	}
	return l.st.frames[l.start+index], nil
}

// Put replaces the frame at index, relative to this view's window.
func (l List) Put(index int, f Frame) error {
	if err := l.alive(); err != nil {
		return err
	}
	if index >= l.len {
		return &RangeError{Len: l.len, Index: index}
	}
	l.st.frames[l.start+index] = f
	return nil
}

// Range narrows this view to [start, start+length) of its own window.
func (l List) Range(start, length int) (List, error) {
	if err := l.alive(); err != nil {
		return List{}, err
	}
	if start+length > l.len {
		return List{}, &RangeError{Len: l.len, Index: start + length}
	}
	return List{st: l.st, start: l.start + start, len: length}, nil
}

// listKey is the identity of one list window in the pending set.
type listKey struct {
	st         *listState
	start, len int
}

// String joins the view's frames space-separated, guarding against
// cycles the way the list tower's Display impl does.
func (l List) String() string {
	if err := l.alive(); err != nil {
		return "-- Dropped --"
	}
	key := listKey{st: l.st, start: l.start, len: l.len}
	if !enterPending(key) {
		return "..."
	}
	defer exitPending(key)

	parts := make([]string, l.len)
	for i := 0; i < l.len; i++ {
		parts[i] = l.st.frames[l.start+i].String()
	}
	return strings.Join(parts, " ")
}

// Dict is a weak view onto a name-keyed map of frames owned by some
// Box.
type Dict struct {
	st *dictState
}

func (d Dict) alive() error {
	if d.st == nil || d.st.dropped {
		return ErrDropped
	}
	return nil
}

// Len reports the number of entries currently in the dict.
func (d Dict) Len() (int, error) {
	if err := d.alive(); err != nil {
		return 0, err
	}
	return len(d.st.entries), nil
}

// Find looks up name without erroring when absent.
func (d Dict) Find(name intern.Name) (Frame, bool, error) {
	if err := d.alive(); err != nil {
		return nil, false, err
	}
	f, ok := d.st.entries[name]
	return f, ok, nil
}

// Get looks up name, failing with MissingKeyError when absent.
func (d Dict) Get(name intern.Name) (Frame, error) {
	f, ok, err := d.Find(name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &MissingKeyError{Name: name.String()}
	}
	return f, nil
}

// Put inserts or overwrites the entry for name.
func (d Dict) Put(name intern.Name, f Frame) error {
	if err := d.alive(); err != nil {
		return err
	}
	d.st.entries[name] = f
	return nil
}

// String renders "/name frame" pairs space-separated, guarding against
// cycles the same way List does.
func (d Dict) String() string {
	if err := d.alive(); err != nil {
		return "-- Dropped --"
	}
	if !enterPending(d.st) {
		return "..."
	}
	defer exitPending(d.st)

	names := maps.Keys(d.st.entries)
	slices.SortFunc(names, func(a, b intern.Name) bool {
		return a.String() < b.String()
	})
	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("/%s %s", name.String(), d.st.entries[name].String()))
	}
	return strings.Join(parts, " ")
}
