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

// Package nameid decodes the name-to-id map's composite value shapes:
// lists of GUIDs, lists of reference-or-immediate entries, and lists of
// crc-or-value validation entries. Any shape that does not satisfy the
// decoder's length modulus is surfaced as an opaque blob rather than
// treated as fatal.
package nameid

import (
	"github.com/google/uuid"

	"github.com/pffkit/pff/internal/endian"
)

const (
	entryTypeClassIDs   = 0x0002
	entryTypeNames      = 0x0003
	entryTypeValidation = 0x1000 // validation entries use entry_type >= this

	valueTypeScalarU32 = 0x0003
	valueTypeMultiple  = 0x0102
)

// Kind identifies which shape a Decode call produced.
type Kind int

const (
	// KindOpaque is an unrecognised or malformed shape, passed through
	// as the raw bytes it was given.
	KindOpaque Kind = iota
	// KindScalar is a bare 32-bit scalar rather than a 0x0102 list;
	// entry_type 0x0001, value_type 0x0003 (BucketCount) is its canonical
	// instance. Only value_type 0x0003 with at least 4 bytes decodes as a
	// scalar; any other value_type != 0x0102 is surfaced as KindOpaque.
	KindScalar
	// KindClassIDs is a list of GUIDs (entry_type 0x0002).
	KindClassIDs
	// KindEntries is a list of name entries (entry_type 0x0003).
	KindEntries
	// KindValidation is a list of validation entries (entry_type >= 0x1000).
	KindValidation
)

// Entry is one 8-byte record in an EntryList or ValidationList: a 32-bit
// value-or-reference, a 16-bit type-and-flags word, and a 16-bit ordinal.
// Bit 0 of Type distinguishes reference from immediate value in an
// EntryList, and crc from value in a ValidationList.
type Entry struct {
	ValueOrReference uint32
	Type             uint16
	Number           uint16
}

// IsReference reports whether bit 0 of the entry's type word is set.
func (e Entry) IsReference() bool { return e.Type&1 != 0 }

// Value is a decoded name-to-id map value.
type Value struct {
	Kind      Kind
	ClassIDs  []uuid.UUID
	Entries   []Entry
	ScalarU32 uint32
	Opaque    []byte
}

// Decode interprets data as a name-to-id map value for the given
// (entry_type, value_type) pair.
func Decode(entryType uint32, valueType uint32, data []byte) Value {
	if valueType != valueTypeMultiple {
		if valueType == valueTypeScalarU32 && len(data) >= 4 {
			return Value{Kind: KindScalar, ScalarU32: endian.U32(data)}
		}
		return Value{Kind: KindOpaque, Opaque: data}
	}

	switch {
	case entryType == entryTypeClassIDs:
		if len(data)%16 != 0 {
			return Value{Kind: KindOpaque, Opaque: data}
		}
		ids := make([]uuid.UUID, len(data)/16)
		for i := range ids {
			g := endian.DecodeGUID(data[i*16:])
			rfc := g.RFC4122()
			ids[i] = uuid.Must(uuid.FromBytes(rfc[:]))
		}
		return Value{Kind: KindClassIDs, ClassIDs: ids}

	case entryType == entryTypeNames:
		entries, ok := decodeEntries(data)
		if !ok {
			return Value{Kind: KindOpaque, Opaque: data}
		}
		return Value{Kind: KindEntries, Entries: entries}

	case entryType >= entryTypeValidation:
		entries, ok := decodeEntries(data)
		if !ok {
			return Value{Kind: KindOpaque, Opaque: data}
		}
		return Value{Kind: KindValidation, Entries: entries}

	default:
		return Value{Kind: KindOpaque, Opaque: data}
	}
}

func decodeEntries(data []byte) ([]Entry, bool) {
	if len(data)%8 != 0 {
		return nil, false
	}
	entries := make([]Entry, len(data)/8)
	for i := range entries {
		rec := data[i*8:]
		entries[i] = Entry{
			ValueOrReference: endian.U32(rec),
			Type:             endian.U16(rec[4:]),
			Number:           endian.U16(rec[6:]),
		}
	}
	return entries, true
}
