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

// Package intern canonicalizes strings into compact, O(1)-comparable
// handles and evicts entries once nothing references them.
package intern

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/dchest/siphash"
)

// entry is the canonical, shared record for one interned string.
// count tracks the number of live Name handles referencing it; the
// table drops the entry from its bucket once count reaches zero.
type entry struct {
	s     string
	count int32
}

// Table is a set of canonical strings identified by pointer. It is not
// safe for concurrent use, matching the single-threaded execution model
// of the VM that owns it.
type Table struct {
	k0, k1  uint64
	buckets map[uint64][]*entry
}

// New returns an empty intern table.
func New() *Table {
	var key [16]byte
	if _, err := rand.Read(key[:]); err != nil {
		// crypto/rand failing is catastrophic for the process;
		// fall back to a fixed key rather than a degraded table.
		key = [16]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	}
	return &Table{
		k0:      binary.LittleEndian.Uint64(key[0:8]),
		k1:      binary.LittleEndian.Uint64(key[8:16]),
		buckets: make(map[uint64][]*entry),
	}
}

func (t *Table) hash(s string) uint64 {
	return siphash.Hash(t.k0, t.k1, []byte(s))
}

// Intern returns a Name canonically identifying s, reusing the existing
// canonical string when the table already holds one equal to s.
func (t *Table) Intern(s string) Name {
	h := t.hash(s)
	for _, e := range t.buckets[h] {
		if e.s == s {
			e.count++
			return Name{table: t, ent: e}
		}
	}
	e := &entry{s: s, count: 1}
	t.buckets[h] = append(t.buckets[h], e)
	return Name{table: t, ent: e}
}

// Len reports the number of distinct strings currently interned.
func (t *Table) Len() int {
	n := 0
	for _, bucket := range t.buckets {
		n += len(bucket)
	}
	return n
}

func (t *Table) evict(e *entry) {
	h := t.hash(e.s)
	bucket := t.buckets[h]
	for i, c := range bucket {
		if c == e {
			bucket[i] = bucket[len(bucket)-1]
			t.buckets[h] = bucket[:len(bucket)-1]
			if len(t.buckets[h]) == 0 {
				delete(t.buckets, h)
			}
			return
		}
	}
}

// Name is an interned-string handle. Two Names are equal (via ==) iff
// they share the same canonical string; Name is comparable and usable
// directly as a map key.
type Name struct {
	table *Table
	ent   *entry
}

// String returns the canonical string this Name identifies.
func (n Name) String() string {
	if n.ent == nil {
		return ""
	}
	return n.ent.s
}

// Retain returns a new independent handle to the same canonical string,
// incrementing its reference count. Every call site that duplicates a
// Name into a second, independently-released location (a second dict
// entry, a second list slot, a second stack slot produced by dup) must
// call Retain on the copy.
func (n Name) Retain() Name {
	if n.ent != nil {
		n.ent.count++
	}
	return n
}

// Release drops one reference to the canonical string. Once the last
// reference is released the table evicts the entry, so the table never
// retains strings nobody references any longer.
func (n Name) Release() {
	if n.ent == nil {
		return
	}
	n.ent.count--
	if n.ent.count <= 0 {
		n.table.evict(n.ent)
	}
}

// Valid reports whether n was produced by Table.Intern (as opposed to
// the zero Name).
func (n Name) Valid() bool {
	return n.ent != nil
}
