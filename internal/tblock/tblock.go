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

// Package tblock decodes a table block: a length-prefixed container whose
// trailer is a monotonically increasing array of 16-bit boundary offsets
// delimiting variable-size value slots.
//
// A table block is parsed atomically; there is no partial or streaming
// decode, and the result is immutable once returned from [Parse].
package tblock

import (
	"github.com/pffkit/pff/internal/container/array"
	"github.com/pffkit/pff/internal/endian"
	"github.com/pffkit/pff/internal/pfferr"
)

// Slot is a (offset, size) pair within a table block, pointing at one
// logical value payload relative to the block's base.
type Slot struct {
	Offset uint16
	Size   uint16
}

// End returns Offset+Size.
func (s Slot) End() uint16 { return s.Offset + s.Size }

// Block is a parsed, immutable table block.
type Block struct {
	values              *array.Array[Slot]
	indexOffset         uint16
	numberOfUnusedSlots uint16
	firstBoundary       uint16
	trailingDeadSpace   bool
}

// IndexOffset returns the offset of the back-index trailer within the
// block, as it appeared on the wire.
func (b *Block) IndexOffset() uint16 { return b.indexOffset }

// NumberOfUnusedSlots returns the declared count of unused index offsets
// carried in the trailer. It does not change how many [Slot] values Parse
// produces; it is informational, carried straight from the wire.
func (b *Block) NumberOfUnusedSlots() uint16 { return b.numberOfUnusedSlots }

// HasTrailingDeadSpace reports whether the final slot boundary fell short
// of IndexOffset, leaving unaccounted bytes between the last value and the
// trailer. This is not an error condition.
func (b *Block) HasTrailingDeadSpace() bool { return b.trailingDeadSpace }

// NumberOfValues returns the number of slots this block decoded.
func (b *Block) NumberOfValues() int { return b.values.Len() }

// Value returns the slot at index i.
func (b *Block) Value(i int) (Slot, error) {
	const context = "tblock.Block.Value"
	s, ok := b.values.ByIndex(i)
	if !ok {
		return Slot{}, pfferr.New(pfferr.KindOutOfBounds, context, "value index out of range")
	}
	return s, nil
}

// Slots returns every slot this block decoded, in order.
func (b *Block) Slots() []Slot { return b.values.Slice() }

// Bytes returns the bytes of slot i as a sub-slice of blockData, the same
// slice Parse was called with.
func (b *Block) Bytes(blockData []byte, i int) ([]byte, error) {
	const context = "tblock.Block.Bytes"
	s, err := b.Value(i)
	if err != nil {
		return nil, err
	}
	if int(s.End()) > len(blockData) {
		return nil, pfferr.New(pfferr.KindOutOfBounds, context, "slot extends past block data")
	}
	return blockData[s.Offset:s.End()], nil
}

// Parse decodes a table block's header and back-index, producing the
// ordered sequence of value slots it describes.
//
// Every bounds and ordering check below is fatal: on any failure the
// partially built slot sequence is discarded and Parse returns a non-nil
// error.
func Parse(blockData []byte) (*Block, error) {
	const context = "tblock.Parse"

	if len(blockData) < 2 {
		return nil, pfferr.New(pfferr.KindOutOfBounds, context, "block too small for a header")
	}
	indexOffset := endian.U16(blockData)

	if indexOffset == 0 {
		return nil, pfferr.New(pfferr.KindCorruption, context, "index offset is zero")
	}
	if int(indexOffset)+4 > len(blockData) {
		return nil, pfferr.New(pfferr.KindOutOfBounds, context, "index offset leaves no room for the index header")
	}

	indexData := blockData[indexOffset:]
	numberOfIndexOffsets := endian.U16(indexData)
	numberOfUnusedIndexOffsets := endian.U16(indexData[2:])

	trailerLen := 4 + (int(numberOfIndexOffsets)+1)*2
	if int(indexOffset)+trailerLen > len(blockData) {
		return nil, pfferr.New(pfferr.KindOutOfBounds, context, "number of index offsets does not fit in the block")
	}

	boundaries := make([]uint16, numberOfIndexOffsets+1)
	boundaryData := indexData[4:]
	for i := range boundaries {
		boundaries[i] = endian.U16(boundaryData[i*2:])
	}

	values := array.New[Slot](0)
	for k := 0; k < len(boundaries)-1; k++ {
		start, end := boundaries[k], boundaries[k+1]
		if start > end {
			return nil, pfferr.New(pfferr.KindCorruption, context, "slot boundary decreases")
		}
		values.Append(Slot{Offset: start, Size: end - start})
	}

	block := &Block{
		values:              values,
		indexOffset:         indexOffset,
		numberOfUnusedSlots: numberOfUnusedIndexOffsets,
		firstBoundary:       boundaries[0],
	}
	if len(boundaries) > 0 {
		final := boundaries[len(boundaries)-1]
		if final > indexOffset {
			return nil, pfferr.New(pfferr.KindCorruption, context, "final slot boundary crosses the index offset")
		}
		block.trailingDeadSpace = final < indexOffset
	}
	return block, nil
}

// Trailer re-encodes this block's slots back into the back-index bytes
// (number_of_offsets, number_of_unused_offsets, boundary[0..n]) that Parse
// would have consumed to produce them.
func (b *Block) Trailer() []byte {
	n := b.values.Len()
	out := make([]byte, 4+(n+1)*2)
	putU16 := func(at int, v uint16) {
		out[at] = byte(v)
		out[at+1] = byte(v >> 8)
	}
	putU16(0, uint16(n))
	putU16(2, b.numberOfUnusedSlots)

	if n == 0 {
		putU16(4, b.firstBoundary)
		return out
	}
	first, _ := b.values.ByIndex(0)
	putU16(4, first.Offset)
	for i := 0; i < n; i++ {
		s, _ := b.values.ByIndex(i)
		putU16(4+(i+1)*2, s.End())
	}
	return out
}
