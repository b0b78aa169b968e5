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

// Source is the abstract random-access byte provider every decoder in this
// module reads from. It is pure input: nothing in this package ever calls
// back into a Source with an intent to mutate the underlying container.
//
// Implementations backed by the PFF page/B-tree layout, a memory-mapped
// file, or a plain []byte all satisfy this interface identically; this
// package is agnostic to how a Source resolves an offset to bytes.
type Source interface {
	// Size returns the total size of the underlying container, in bytes.
	Size() (uint64, error)

	// ReadAt reads len(into) bytes starting at offset into into, returning
	// the number of bytes read.
	//
	// ReadAt returns ErrEndOfStream (wrapped in an *Error of kind KindIO)
	// when offset+len(into) exceeds Size, even if some bytes could be
	// read before the end was reached.
	ReadAt(offset uint64, into []byte) (int, error)
}

// SliceSource is a [Source] backed by an in-memory byte slice. It is the
// simplest possible Source and is primarily useful for tests and for small
// containers that have already been read into memory in full.
type SliceSource struct {
	data []byte
}

// NewSliceSource wraps data as a [Source]. The caller retains ownership of
// data; SliceSource never modifies it.
func NewSliceSource(data []byte) *SliceSource {
	return &SliceSource{data: data}
}

// Size implements [Source].
func (s *SliceSource) Size() (uint64, error) {
	return uint64(len(s.data)), nil
}

// ReadAt implements [Source].
func (s *SliceSource) ReadAt(offset uint64, into []byte) (int, error) {
	if offset > uint64(len(s.data)) {
		return 0, Wrap(KindIO, "SliceSource.ReadAt", ErrEndOfStream)
	}
	avail := s.data[offset:]
	if uint64(len(avail)) < uint64(len(into)) {
		return 0, Wrap(KindIO, "SliceSource.ReadAt", ErrEndOfStream)
	}
	n := copy(into, avail)
	return n, nil
}
