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

// Package oneoff decodes the one-off recipient entry identifier: a
// version/flags header followed by three null-terminated strings
// (display name, address type, email address), each carried either as
// codepage-encoded bytes or little-endian UTF-16 depending on a flag bit.
package oneoff

import (
	"github.com/pffkit/pff/internal/codepage"
	"github.com/pffkit/pff/internal/endian"
	"github.com/pffkit/pff/internal/pfferr"
)

// Flag is a bit in the one-off identifier's flags field.
type Flag uint16

const (
	FlagNoRichInfo Flag = 0x0001
	Flag0x1000     Flag = 0x1000
	FlagUnicode    Flag = 0x8000

	supportedFlags = FlagNoRichInfo | Flag0x1000 | FlagUnicode
)

// Has reports whether f is set in flags.
func (f Flag) Has(flags Flag) bool { return flags&f != 0 }

// Identifier is a decoded one-off entry identifier. Its three string
// fields are owned buffers, each including the terminator that ended
// its scan.
type Identifier struct {
	flags       Flag
	displayName []byte
	addressType []byte
	email       []byte
}

// Flags returns the identifier's flag bits.
func (id *Identifier) Flags() Flag { return id.flags }

// Unicode reports whether the identifier's string fields are
// little-endian UTF-16 rather than codepage bytes.
func (id *Identifier) Unicode() bool { return FlagUnicode.Has(id.flags) }

func scanField(data []byte, unicode bool, context string) (field []byte, rest []byte, err error) {
	if len(data) == 0 {
		return nil, nil, pfferr.New(pfferr.KindOutOfBounds, context, "byte stream too small")
	}
	i := 0
	if unicode {
		for i+1 < len(data) {
			if data[i] == 0 && data[i+1] == 0 {
				break
			}
			i += 2
		}
		if i+1 >= len(data) || data[i] != 0 || data[i+1] != 0 {
			return nil, nil, pfferr.New(pfferr.KindCorruption, context, "unterminated unicode field")
		}
		i += 2
	} else {
		for i < len(data) {
			if data[i] == 0 {
				break
			}
			i++
		}
		if i >= len(data) || data[i] != 0 {
			return nil, nil, pfferr.New(pfferr.KindCorruption, context, "unterminated field")
		}
		i++
	}
	out := make([]byte, i)
	copy(out, data[:i])
	return out, data[i:], nil
}

// Parse decodes a one-off entry identifier from the start of data.
// Bytes beyond the email address field are ignored.
func Parse(data []byte) (*Identifier, error) {
	const context = "oneoff.Parse"

	if len(data) < 4 {
		return nil, pfferr.New(pfferr.KindOutOfBounds, context, "byte stream too small")
	}
	version := endian.U16(data)
	if version != 0 {
		return nil, pfferr.New(pfferr.KindUnsupported, context, "unsupported one-off version")
	}
	flags := Flag(endian.U16(data[2:]))
	if flags&^supportedFlags != 0 {
		return nil, pfferr.New(pfferr.KindUnsupported, context, "unsupported one-off flags")
	}

	rest := data[4:]
	unicode := FlagUnicode.Has(flags)

	displayName, rest, err := scanField(rest, unicode, context)
	if err != nil {
		return nil, err
	}
	addressType, rest, err := scanField(rest, unicode, context)
	if err != nil {
		return nil, err
	}
	email, _, err := scanField(rest, unicode, context)
	if err != nil {
		return nil, err
	}

	return &Identifier{
		flags:       flags,
		displayName: displayName,
		addressType: addressType,
		email:       email,
	}, nil
}

func decodeUTF8(field []byte, unicode bool, table *codepage.Table, context string) (string, error) {
	if unicode {
		return codepage.DecodeUTF16ToUTF8(field, codepage.LittleEndian)
	}
	if table == nil {
		return "", pfferr.New(pfferr.KindInvalidArgument, context, "codepage required for non-unicode field")
	}
	return codepage.DecodeToUTF8(field, table), nil
}

func decodeUTF16(field []byte, unicode bool, table *codepage.Table, context string) ([]uint16, error) {
	if unicode {
		units := make([]uint16, len(field)/2)
		for i := range units {
			units[i] = uint16(field[i*2]) | uint16(field[i*2+1])<<8
		}
		return units, nil
	}
	if table == nil {
		return nil, pfferr.New(pfferr.KindInvalidArgument, context, "codepage required for non-unicode field")
	}
	units := make([]uint16, codepage.SizeFromCodepageUTF16(field))
	codepage.CopyFromCodepageUTF16(units, field, table)
	return units, nil
}

// UTF8DisplayName returns the display name as UTF-8. codepage is ignored
// in Unicode mode and required otherwise.
func (id *Identifier) UTF8DisplayName(table *codepage.Table) (string, error) {
	return decodeUTF8(id.displayName, id.Unicode(), table, "oneoff.Identifier.UTF8DisplayName")
}

// UTF8AddressType returns the address type as UTF-8.
func (id *Identifier) UTF8AddressType(table *codepage.Table) (string, error) {
	return decodeUTF8(id.addressType, id.Unicode(), table, "oneoff.Identifier.UTF8AddressType")
}

// UTF8EmailAddress returns the email address as UTF-8.
func (id *Identifier) UTF8EmailAddress(table *codepage.Table) (string, error) {
	return decodeUTF8(id.email, id.Unicode(), table, "oneoff.Identifier.UTF8EmailAddress")
}

// UTF16DisplayName returns the display name as UTF-16 code units.
func (id *Identifier) UTF16DisplayName(table *codepage.Table) ([]uint16, error) {
	return decodeUTF16(id.displayName, id.Unicode(), table, "oneoff.Identifier.UTF16DisplayName")
}

// UTF16AddressType returns the address type as UTF-16 code units.
func (id *Identifier) UTF16AddressType(table *codepage.Table) ([]uint16, error) {
	return decodeUTF16(id.addressType, id.Unicode(), table, "oneoff.Identifier.UTF16AddressType")
}

// UTF16EmailAddress returns the email address as UTF-16 code units.
func (id *Identifier) UTF16EmailAddress(table *codepage.Table) ([]uint16, error) {
	return decodeUTF16(id.email, id.Unicode(), table, "oneoff.Identifier.UTF16EmailAddress")
}
