// Copyright 2025 The pffkit Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package array is a growable index-to-value mapping modelled on the
// values_array that backs a table block's decoded slots: entries are
// appended or inserted in sorted order one at a time, the array grows
// geometrically, and shrinking it runs a caller hook over the entries being
// dropped before their slots are reused.
package array

import "github.com/pffkit/pff/internal/pfferr"

// FreeFunc is called on every entry a shrinking or clearing operation is
// about to drop, before its slot is reused. It may be nil, in which case
// dropped entries are simply discarded (ownership stays with the caller, or
// T needs no cleanup beyond garbage collection).
type FreeFunc[T any] func(T)

// Array is a growable array of T, indexed from 0.
//
// The zero value is an empty, ready-to-use array.
type Array[T any] struct {
	entries []T
}

// New returns an array pre-sized to hold capacity entries, all zero-valued.
func New[T any](capacity int) *Array[T] {
	return &Array[T]{entries: make([]T, capacity)}
}

// Len returns the number of entries currently in the array.
func (a *Array[T]) Len() int { return len(a.entries) }

// Resize changes the array's length to n.
//
// Growing zero-fills the new entries. Shrinking calls free (if non-nil) on
// every entry about to be dropped, in index order, before truncating.
func (a *Array[T]) Resize(n int, free FreeFunc[T]) error {
	const context = "array.Array.Resize"
	if n < 0 {
		return pfferr.New(pfferr.KindInvalidArgument, context, "negative size")
	}

	switch {
	case n == len(a.entries):
		return nil
	case n < len(a.entries):
		if free != nil {
			for _, v := range a.entries[n:] {
				free(v)
			}
		}
		a.entries = a.entries[:n]
	default:
		if n <= cap(a.entries) {
			grown := a.entries[:n]
			var zero T
			for i := len(a.entries); i < n; i++ {
				grown[i] = zero
			}
			a.entries = grown
			return nil
		}
		grown := make([]T, n)
		copy(grown, a.entries)
		a.entries = grown
	}
	return nil
}

// Clear drops every entry, calling free (if non-nil) on each first, but
// keeps the array's allocated capacity.
func (a *Array[T]) Clear(free FreeFunc[T]) {
	if free != nil {
		for _, v := range a.entries {
			free(v)
		}
	}
	a.entries = a.entries[:0]
}

// Empty is Clear followed by releasing the array's allocated capacity, so
// the next Append or Resize starts from a fresh backing array rather than
// reusing the old one.
func (a *Array[T]) Empty(free FreeFunc[T]) {
	a.Clear(free)
	a.entries = nil
}

// ByIndex returns the entry at i and whether i was in range.
func (a *Array[T]) ByIndex(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(a.entries) {
		return zero, false
	}
	return a.entries[i], true
}

// SetByIndex overwrites the entry at i. The caller is responsible for
// anything the previous occupant owned.
func (a *Array[T]) SetByIndex(i int, v T) error {
	const context = "array.Array.SetByIndex"
	if i < 0 || i >= len(a.entries) {
		return pfferr.New(pfferr.KindOutOfBounds, context, "index out of range")
	}
	a.entries[i] = v
	return nil
}

// Append adds v to the end of the array, growing capacity geometrically if
// needed, and returns its index.
func (a *Array[T]) Append(v T) int {
	a.entries = append(a.entries, v)
	return len(a.entries) - 1
}

// InsertFlag modifies the behaviour of [Array.Insert].
type InsertFlag uint8

const (
	AllowDuplicates InsertFlag = 0
	UniqueEntries   InsertFlag = 1 << 0
)

// Ordering is the result of comparing two candidate values for ordered
// insertion.
type Ordering int

const (
	Less Ordering = iota
	Equal
	Greater
)

// AlreadyPresent is returned by [Array.Insert] when flags includes
// UniqueEntries and an equal entry is already present; it is a sentinel,
// not an error.
var AlreadyPresent = &alreadyPresent{}

type alreadyPresent struct{}

func (*alreadyPresent) Error() string { return "array: equal entry already present" }

// Insert performs a linear scan for the first entry comparing Greater than
// v and inserts v immediately before it, keeping the array sorted by
// compare. Ties are broken by insertion order (v lands after existing
// equal entries). If compare returns Equal for some entry and flags
// includes UniqueEntries, no insertion happens and [AlreadyPresent] is
// returned.
func (a *Array[T]) Insert(v T, compare func(a, b T) (Ordering, error), flags InsertFlag) (int, error) {
	const context = "array.Array.Insert"

	at := len(a.entries)
	for i, existing := range a.entries {
		order, err := compare(v, existing)
		if err != nil {
			return -1, pfferr.Wrap(pfferr.KindCorruption, context, err)
		}
		if order == Equal && flags&UniqueEntries != 0 {
			return -1, AlreadyPresent
		}
		if order == Less {
			at = i
			break
		}
		if order != Equal && order != Greater {
			return -1, pfferr.New(pfferr.KindCorruption, context, "comparator returned an invalid ordering")
		}
	}

	a.entries = append(a.entries, v)
	copy(a.entries[at+1:], a.entries[at:])
	a.entries[at] = v
	return at, nil
}

// Slice returns the array's entries as a plain slice, in index order.
func (a *Array[T]) Slice() []T {
	out := make([]T, len(a.entries))
	copy(out, a.entries)
	return out
}
