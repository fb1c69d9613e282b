// seehuhn.de/go/cgm - read and write CGM graphics for NITF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package optional implements values which may be unset.
//
// CGM attribute records are only present in a metafile if the
// corresponding attribute was specified.  The types in this package keep
// track of whether a value was set, so that "absent" never needs to be
// encoded as a magic number.
package optional

import "fmt"

// Value represents an optional value of type T.
// The zero value is unset.
type Value[T comparable] struct {
	isSet bool
	val   T
}

// New creates a new Value which is set to v.
func New[T comparable](v T) Value[T] {
	var k Value[T]
	k.Set(v)
	return k
}

// Get returns the value and whether it is set.
// If the value is unset, the zero value of T is returned.
func (k Value[T]) Get() (T, bool) {
	return k.val, k.isSet
}

// IsSet reports whether the value is set.
func (k Value[T]) IsSet() bool {
	return k.isSet
}

// Set sets the value.
func (k *Value[T]) Set(v T) {
	k.isSet = true
	k.val = v
}

// Clear clears the value.
func (k *Value[T]) Clear() {
	var zero T
	k.isSet = false
	k.val = zero
}

// Equal compares two Values for equality.
// Two unset values are always equal.
func (k Value[T]) Equal(other Value[T]) bool {
	return k.isSet == other.isSet && k.val == other.val
}

// String returns the value formatted with %v, or "unset".
func (k Value[T]) String() string {
	if !k.isSet {
		return "unset"
	}
	return fmt.Sprintf("%v", k.val)
}
