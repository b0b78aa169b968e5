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

package pff

import "github.com/pffkit/pff/internal/pfferr"

// Kind classifies why a decode operation failed.
type Kind = pfferr.Kind

const (
	// KindInvalidArgument means a caller-supplied pointer or slice was
	// absent, or an out-parameter that must be unset already held a value.
	KindInvalidArgument = pfferr.KindInvalidArgument
	// KindOutOfBounds means an index or offset would read past the end of
	// the given buffer.
	KindOutOfBounds = pfferr.KindOutOfBounds
	// KindUnsupported means a recognised field carried a value outside the
	// versioned set this package understands (an unknown flag bit, an
	// unexpected value type for an entry type, a non-zero version field).
	KindUnsupported = pfferr.KindUnsupported
	// KindCorruption means a structural invariant failed: a broken list
	// link, a back-index range that crosses itself, non-monotonic slot
	// boundaries.
	KindCorruption = pfferr.KindCorruption
	// KindOutOfMemory means an allocation failed.
	KindOutOfMemory = pfferr.KindOutOfMemory
	// KindIO means the byte source returned a failure.
	KindIO = pfferr.KindIO
)

// Error is the single error type returned by every decoder in this module.
// It carries a [Kind], a function/parameter context string, and the
// underlying cause, if any.
type Error = pfferr.Error

// NewError builds an [Error] of the given kind with a fixed message.
func NewError(kind Kind, context, message string) *Error {
	return pfferr.New(kind, context, message)
}

// Wrap builds an [Error] of the given kind around an existing error, such as
// one surfaced from a [Source].
func Wrap(kind Kind, context string, err error) *Error {
	return pfferr.Wrap(kind, context, err)
}

// ErrEndOfStream is returned by a [Source] when a read runs past the end of
// the underlying container.
var ErrEndOfStream = pfferr.ErrEndOfStream
