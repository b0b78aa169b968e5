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

// Package mapiprop is the MAPI property dispatcher: it maps an
// (entry_type, value_type) tag and its raw bytes to a typed Go value,
// delegating to the string bridge, the one-off decoder, and the
// name-to-id decoder for the value types that need them.
package mapiprop

import (
	"math"

	"github.com/pffkit/pff/internal/codepage"
	"github.com/pffkit/pff/internal/endian"
	"github.com/pffkit/pff/internal/nameid"
	"github.com/pffkit/pff/internal/oneoff"
	"github.com/pffkit/pff/internal/pfferr"
)

// ValueType is a MAPI property type tag (the low word of a property tag,
// e.g. PT_LONG, PT_UNICODE).
type ValueType uint16

// The fixed- and variable-width MAPI property types this dispatcher
// recognises. Names follow the MS-OXCDATA PT_* convention.
const (
	TypeI2       ValueType = 0x0002
	TypeLong     ValueType = 0x0003
	TypeFloat    ValueType = 0x0004
	TypeDouble   ValueType = 0x0005
	TypeCurrency ValueType = 0x0006
	TypeAppTime  ValueType = 0x0007
	TypeBoolean  ValueType = 0x000B
	TypeI8       ValueType = 0x0014
	TypeString8  ValueType = 0x001E
	TypeUnicode  ValueType = 0x001F
	TypeSysTime  ValueType = 0x0040
	TypeClassID  ValueType = 0x0048
	TypeBinary   ValueType = 0x0102
)

// Kind identifies the shape of a dispatched property value.
type Kind int

const (
	KindUnsupported Kind = iota
	KindInt16
	KindInt32
	KindInt64
	KindFloat32
	KindFloat64
	KindBool
	KindFileTime
	KindString
	KindGUID
	KindOneOff
	KindNameID
	KindBinary
)

// Value is a dispatched MAPI property value. Exactly one field matching
// Kind is populated.
type Value struct {
	Kind     Kind
	Int16    int16
	Int32    int32
	Int64    int64
	Float32  float32
	Float64  float64
	Bool     bool
	FileTime uint64
	String   string
	GUID     endian.GUID
	OneOff   *oneoff.Identifier
	NameID   nameid.Value
	Binary   []byte
}

// Dispatch decodes data as a MAPI property of the given value type. table
// is used to decode PT_STRING8 payloads and is ignored otherwise; it may
// be nil for value types that don't need it.
//
// entryType and data are passed through to the name-to-id decoder when
// valueType is PT_BINARY and nameToID is true; this lets callers route
// PT_BINARY payloads belonging to a name-to-id stream through
// nameid.Decode instead of treating them as opaque blobs.
func Dispatch(entryType uint32, valueType ValueType, data []byte, table *codepage.Table, nameToID bool) (Value, error) {
	const context = "mapiprop.Dispatch"

	switch valueType {
	case TypeI2:
		if len(data) < 2 {
			return Value{}, pfferr.New(pfferr.KindOutOfBounds, context, "PT_I2 payload too small")
		}
		return Value{Kind: KindInt16, Int16: int16(endian.U16(data))}, nil

	case TypeLong:
		if len(data) < 4 {
			return Value{}, pfferr.New(pfferr.KindOutOfBounds, context, "PT_LONG payload too small")
		}
		return Value{Kind: KindInt32, Int32: int32(endian.U32(data))}, nil

	case TypeFloat:
		if len(data) < 4 {
			return Value{}, pfferr.New(pfferr.KindOutOfBounds, context, "PT_FLOAT payload too small")
		}
		return Value{Kind: KindFloat32, Float32: math.Float32frombits(endian.U32(data))}, nil

	case TypeDouble, TypeAppTime:
		if len(data) < 8 {
			return Value{}, pfferr.New(pfferr.KindOutOfBounds, context, "8-byte numeric payload too small")
		}
		return Value{Kind: KindFloat64, Float64: math.Float64frombits(endian.U64(data))}, nil

	case TypeBoolean:
		if len(data) < 2 {
			return Value{}, pfferr.New(pfferr.KindOutOfBounds, context, "PT_BOOLEAN payload too small")
		}
		return Value{Kind: KindBool, Bool: endian.U16(data) != 0}, nil

	case TypeI8, TypeCurrency:
		if len(data) < 8 {
			return Value{}, pfferr.New(pfferr.KindOutOfBounds, context, "8-byte integer payload too small")
		}
		return Value{Kind: KindInt64, Int64: int64(endian.U64(data))}, nil

	case TypeSysTime:
		if len(data) < 8 {
			return Value{}, pfferr.New(pfferr.KindOutOfBounds, context, "PT_SYSTIME payload too small")
		}
		return Value{Kind: KindFileTime, FileTime: endian.U64(data)}, nil

	case TypeClassID:
		if len(data) < 16 {
			return Value{}, pfferr.New(pfferr.KindOutOfBounds, context, "PT_CLSID payload too small")
		}
		return Value{Kind: KindGUID, GUID: endian.DecodeGUID(data)}, nil

	case TypeString8:
		if table == nil {
			return Value{}, pfferr.New(pfferr.KindInvalidArgument, context, "codepage table required for PT_STRING8")
		}
		return Value{Kind: KindString, String: codepage.DecodeToUTF8(data, table)}, nil

	case TypeUnicode:
		s, err := codepage.DecodeUTF16ToUTF8(data, codepage.LittleEndian)
		if err != nil {
			return Value{}, err
		}
		return Value{Kind: KindString, String: s}, nil

	case TypeBinary:
		if nameToID {
			return Value{Kind: KindNameID, NameID: nameid.Decode(entryType, uint32(valueType), data)}, nil
		}
		// An entry identifier opens with a 4-byte flags field and a
		// 16-byte provider GUID; only the one-off provider's payload is
		// handed to the one-off decoder, everything else stays opaque.
		if len(data) >= 20 {
			provider := endian.DecodeGUID(data[4:20])
			if provider == ServiceProviderOneOffEntryIdentifier {
				id, err := oneoff.Parse(data[20:])
				if err != nil {
					return Value{}, err
				}
				return Value{Kind: KindOneOff, OneOff: id}, nil
			}
		}
		return Value{Kind: KindBinary, Binary: data}, nil

	default:
		return Value{Kind: KindUnsupported, Binary: data}, nil
	}
}
