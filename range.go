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

// RangeFlag is a bitfield carried alongside a [Range].
type RangeFlag uint32

const (
	// IsSparse marks a range that reads as all-zero without occupying
	// space in the underlying container.
	IsSparse RangeFlag = 1 << iota
	// IsCompressed marks a range whose bytes must be inflated before use.
	IsCompressed
	// IsTainted marks a range the container itself flagged as suspect.
	IsTainted
	// IsCorrupted marks a range this package determined to be malformed.
	IsCorrupted

	// User-defined bits, reserved for callers layering their own metadata
	// onto a Range; this package never sets or inspects them.
	UserFlag0
	UserFlag1
	UserFlag2
	UserFlag3
)

// Has reports whether every bit set in want is also set in f.
func (f RangeFlag) Has(want RangeFlag) bool { return f&want == want }

// Range is an (offset, size, flags) triple describing one contiguous span
// of a logical stream overlaid on a [Source].
type Range struct {
	Offset uint64
	Size   uint64
	Flags  RangeFlag
}

// End returns Offset+Size.
func (r Range) End() uint64 { return r.Offset + r.Size }

// Overlaps reports whether r and other describe intersecting byte spans.
func (r Range) Overlaps(other Range) bool {
	return r.Offset < other.End() && other.Offset < r.End()
}
