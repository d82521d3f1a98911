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

package save

import (
	"errors"
	"fmt"
)

// ErrDropped is returned by any operation against a List, Dict or Box
// whose owning Box has been released.
var ErrDropped = errors.New("save: dropped")

// RangeError is returned when an index falls outside a List's current
// length.
type RangeError struct {
	Len, Index int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("save: index %d out of range for length %d", e.Index, e.Len)
}

// MissingKeyError is returned when a Dict lookup finds no entry for
// the given name.
type MissingKeyError struct {
	Name string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("save: missing key %q", e.Name)
}
