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

// Package list is a doubly-linked list with ordered, duplicate-rejecting
// insertion, used by decoders that need to accumulate a run of values in
// sorted order without re-sorting the whole run on every insert.
//
// This is a generic, GC-owned rewrite of the value-free-hook list that the
// format this package supports was originally specified against: because
// Go's runtime already owns element lifetime, the free_value callback is
// an optional [FreeFunc] taken only by [List.Empty], and Clone takes an
// optional, rather than mandatory, element-copy function. The structural invariants are unchanged: every
// resident element has neighbour pointers that are the exact inverse of its
// neighbours', the list's head/tail presence agrees with its element count,
// and a detached element always has both neighbours absent.
package list

import (
	"github.com/pffkit/pff/internal/pfferr"
)

// FreeFunc is called on every element's value as [List.Empty] detaches it,
// before the element is discarded. It may be nil, in which case detached
// values are simply discarded (ownership stays with the caller, or T needs
// no cleanup beyond garbage collection).
type FreeFunc[T any] func(T)

// Element is one node of a [List]. An Element not currently held by any
// list has both Prev and Next nil.
type Element[T any] struct {
	prev, next *Element[T]
	Value      T
}

// NewElement allocates a detached element holding value.
func NewElement[T any](value T) *Element[T] {
	return &Element[T]{Value: value}
}

// Next returns the following element, or nil at the tail.
func (e *Element[T]) Next() *Element[T] { return e.next }

// Prev returns the preceding element, or nil at the head.
func (e *Element[T]) Prev() *Element[T] { return e.prev }

// List is a doubly-linked list of [Element] values.
//
// The zero value is an empty, ready-to-use list.
type List[T any] struct {
	first, last *Element[T]
	n           int
}

// Len returns the number of elements currently held by l.
func (l *List[T]) Len() int { return l.n }

// First returns the head element, or nil if l is empty.
func (l *List[T]) First() *Element[T] { return l.first }

// Last returns the tail element, or nil if l is empty.
func (l *List[T]) Last() *Element[T] { return l.last }

// check verifies the head/tail/count invariant and returns a KindCorruption
// error describing the first violation found, or nil.
func (l *List[T]) check(context string) error {
	if l.n == 0 {
		if l.first != nil || l.last != nil {
			return pfferr.New(pfferr.KindCorruption, context, "empty list has a resident head or tail")
		}
		return nil
	}
	if l.first == nil || l.last == nil {
		return pfferr.New(pfferr.KindCorruption, context, "non-empty list is missing its head or tail")
	}
	if l.first.prev != nil || l.last.next != nil {
		return pfferr.New(pfferr.KindCorruption, context, "list head or tail has a dangling outward link")
	}
	return nil
}

// Prepend inserts e at the head of l in O(1). e must not already belong to
// any list (both of its neighbour pointers must be nil).
func (l *List[T]) Prepend(e *Element[T]) error {
	const context = "list.List.Prepend"
	if e == nil {
		return pfferr.New(pfferr.KindInvalidArgument, context, "nil element")
	}
	if e.prev != nil || e.next != nil || l.first == e {
		return pfferr.New(pfferr.KindInvalidArgument, context, "element already belongs to a list")
	}
	if err := l.check(context); err != nil {
		return err
	}

	e.next = l.first
	if l.first != nil {
		l.first.prev = e
	} else {
		l.last = e
	}
	l.first = e
	l.n++
	return nil
}

// Append inserts e at the tail of l in O(1). e must not already belong to
// any list.
func (l *List[T]) Append(e *Element[T]) error {
	const context = "list.List.Append"
	if e == nil {
		return pfferr.New(pfferr.KindInvalidArgument, context, "nil element")
	}
	if e.prev != nil || e.next != nil || l.last == e {
		return pfferr.New(pfferr.KindInvalidArgument, context, "element already belongs to a list")
	}
	if err := l.check(context); err != nil {
		return err
	}

	e.prev = l.last
	if l.last != nil {
		l.last.next = e
	} else {
		l.first = e
	}
	l.last = e
	l.n++
	return nil
}

// ByIndex returns the element at position i, traversing from whichever end
// is nearer. 0 <= i < Len() is required.
func (l *List[T]) ByIndex(i int) (*Element[T], error) {
	const context = "list.List.ByIndex"
	if i < 0 || i >= l.n {
		return nil, pfferr.New(pfferr.KindOutOfBounds, context, "index out of range")
	}

	var e *Element[T]
	if i <= l.n/2 {
		e = l.first
		for step := 0; step < i; step++ {
			if e == nil {
				return nil, pfferr.New(pfferr.KindCorruption, context, "broken forward link before reaching index")
			}
			e = e.next
		}
	} else {
		e = l.last
		for step := l.n - 1; step > i; step-- {
			if e == nil {
				return nil, pfferr.New(pfferr.KindCorruption, context, "broken backward link before reaching index")
			}
			e = e.prev
		}
	}
	if e == nil {
		return nil, pfferr.New(pfferr.KindCorruption, context, "traversal ended before reaching index")
	}
	return e, nil
}

// Remove detaches e from l. The caller retains ownership of e and may
// re-insert it into any list afterwards.
func (l *List[T]) Remove(e *Element[T]) error {
	const context = "list.List.Remove"
	if e == nil {
		return pfferr.New(pfferr.KindInvalidArgument, context, "nil element")
	}

	if e.prev != nil {
		e.prev.next = e.next
	} else {
		l.first = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		l.last = e.prev
	}
	e.prev, e.next = nil, nil
	l.n--
	return nil
}

// Empty removes every element from l, calling free (if non-nil) on each
// value as its element is detached. If a broken link is found before the
// declared element count is reached, Empty stops immediately and reports
// corruption rather than continuing over an inconsistent list.
func (l *List[T]) Empty(free FreeFunc[T]) error {
	const context = "list.List.Empty"

	n := l.n
	for i := 0; i < n; i++ {
		e := l.first
		if e == nil {
			return pfferr.New(pfferr.KindCorruption, context, "corruption detected in element")
		}
		l.first = e.next
		if l.last == e {
			l.last = e.next
		}
		if e.next != nil {
			e.next.prev = nil
		}
		e.next = nil
		l.n--

		if free != nil {
			free(e.Value)
		}
	}
	return nil
}

// Ordering is the result of comparing two candidate values for ordered
// insertion.
type Ordering int

const (
	Less Ordering = iota
	Equal
	Greater
)

// InsertFlag modifies the behaviour of [List.Insert].
type InsertFlag uint8

const (
	// AllowDuplicates permits more than one element comparing Equal.
	AllowDuplicates InsertFlag = 0
	// UniqueEntries rejects an insert that would compare Equal to an
	// existing element.
	UniqueEntries InsertFlag = 1 << 0
)

// AlreadyPresent is returned by [List.Insert] when flags includes
// UniqueEntries and an equal element is already resident; it is a sentinel,
// not an error.
var AlreadyPresent = &alreadyPresent{}

type alreadyPresent struct{}

func (*alreadyPresent) Error() string { return "list: equal element already present" }

// Insert walks from the head of l, locating the first resident element
// whose value compares Greater than e's, and inserts e immediately before
// it (or at the tail, if none does). This keeps the list sorted by compare
// and stable: an element equal to existing entries is appended after them.
//
// If compare returns Equal for some resident element and flags includes
// UniqueEntries, no insertion happens and [AlreadyPresent] is returned.
func (l *List[T]) Insert(e *Element[T], compare func(a, b T) (Ordering, error), flags InsertFlag) error {
	const context = "list.List.Insert"
	if e == nil {
		return pfferr.New(pfferr.KindInvalidArgument, context, "nil element")
	}
	if e.prev != nil || e.next != nil {
		return pfferr.New(pfferr.KindInvalidArgument, context, "element already belongs to a list")
	}

	cur := l.first
	for cur != nil {
		order, err := compare(e.Value, cur.Value)
		if err != nil {
			return pfferr.Wrap(pfferr.KindCorruption, context, err)
		}
		switch order {
		case Less, Equal:
			if order == Equal && flags&UniqueEntries != 0 {
				return AlreadyPresent
			}
			if order == Equal {
				// Stable: skip past every existing equal entry so the new
				// one lands after them, not before.
				for cur != nil {
					eq, err := compare(e.Value, cur.Value)
					if err != nil {
						return pfferr.Wrap(pfferr.KindCorruption, context, err)
					}
					if eq != Equal {
						break
					}
					cur = cur.next
				}
				continue
			}
		case Greater:
			cur = cur.next
			continue
		default:
			return pfferr.New(pfferr.KindCorruption, context, "comparator returned an invalid ordering")
		}
		break
	}

	if cur == nil {
		return l.Append(e)
	}
	return l.insertBefore(e, cur)
}

func (l *List[T]) insertBefore(e, mark *Element[T]) error {
	e.next = mark
	e.prev = mark.prev
	if mark.prev != nil {
		mark.prev.next = e
	} else {
		l.first = e
	}
	mark.prev = e
	l.n++
	return nil
}

// Clone returns a new list holding the same values in the same order. If
// cloneValue is non-nil, it is applied to each value before insertion into
// the destination list (useful for types that need a deep copy); otherwise
// values are copied as-is, matching Go's usual pass-by-value semantics.
func (l *List[T]) Clone(cloneValue func(T) T) *List[T] {
	dst := &List[T]{}
	for e := l.first; e != nil; e = e.next {
		v := e.Value
		if cloneValue != nil {
			v = cloneValue(v)
		}
		// Append cannot fail for a freshly allocated element.
		_ = dst.Append(NewElement(v))
	}
	return dst
}

// Slice returns the list's values, head to tail, as a plain slice.
func (l *List[T]) Slice() []T {
	out := make([]T, 0, l.n)
	for e := l.first; e != nil; e = e.next {
		out = append(out, e.Value)
	}
	return out
}
