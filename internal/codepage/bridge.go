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

package codepage

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/pffkit/pff/internal/pfferr"
)

// ByteOrder selects how a UTF-16 stream's 16-bit units are packed into
// bytes.
type ByteOrder int

const (
	LittleEndian ByteOrder = iota
	BigEndian
)

func (o ByteOrder) unit(b []byte) uint16 {
	if o == BigEndian {
		return uint16(b[0])<<8 | uint16(b[1])
	}
	return uint16(b[0]) | uint16(b[1])<<8
}

func (o ByteOrder) putUnit(b []byte, u uint16) {
	if o == BigEndian {
		b[0], b[1] = byte(u>>8), byte(u)
		return
	}
	b[0], b[1] = byte(u), byte(u>>8)
}

// --- codepage -> UTF-8 ---

// SizeFromCodepage returns the number of UTF-8 bytes decoding data through
// table would produce.
func SizeFromCodepage(data []byte, table *Table) int {
	n := 0
	for _, b := range data {
		n += utf8.RuneLen(table.DecodeByte(b))
	}
	return n
}

// CopyFromCodepage decodes data through table into dst, which must be at
// least SizeFromCodepage(data, table) bytes long, and returns the number of
// bytes written.
func CopyFromCodepage(dst []byte, data []byte, table *Table) int {
	n := 0
	for _, b := range data {
		n += utf8.EncodeRune(dst[n:], table.DecodeByte(b))
	}
	return n
}

// DecodeToUTF8 decodes data through table into a UTF-8 string.
func DecodeToUTF8(data []byte, table *Table) string {
	buf := make([]byte, SizeFromCodepage(data, table))
	CopyFromCodepage(buf, data, table)
	return string(buf)
}

// --- UTF-8 -> codepage ---

// SizeToCodepage returns the number of codepage bytes encoding s through
// table would produce, which is always one byte per rune.
func SizeToCodepage(s string, table *Table, opts ...Option) (int, error) {
	o := resolve(opts)
	if o.strict {
		for _, r := range s {
			if _, ok := table.EncodeRune(r); !ok {
				return 0, pfferr.New(pfferr.KindUnsupported, "codepage.SizeToCodepage", "rune not representable in codepage")
			}
		}
	}
	return len([]rune(s)), nil
}

// CopyToCodepage encodes s through table into dst, which must be at least
// SizeToCodepage(s, table) bytes long, and returns the number of bytes
// written.
func CopyToCodepage(dst []byte, s string, table *Table, opts ...Option) (int, error) {
	o := resolve(opts)
	n := 0
	for _, r := range s {
		b, ok := table.EncodeRune(r)
		if !ok {
			if o.strict {
				return n, pfferr.New(pfferr.KindUnsupported, "codepage.CopyToCodepage", "rune not representable in codepage")
			}
			b = substitute
		}
		dst[n] = b
		n++
	}
	return n, nil
}

// EncodeFromUTF8 encodes s through table into codepage bytes.
func EncodeFromUTF8(s string, table *Table, opts ...Option) ([]byte, error) {
	size, err := SizeToCodepage(s, table, opts...)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, size)
	if _, err := CopyToCodepage(buf, s, table, opts...); err != nil {
		return nil, err
	}
	return buf, nil
}

// --- UTF-16 stream -> UTF-8 ---

// decodeUnits turns a stream of UTF-16 code units into runes, applying the
// package's surrogate policy: a high surrogate followed by a valid low
// surrogate combines into one rune; any other surrogate is replaced with
// U+FFFD, or rejected, if opts requests strict mode.
func decodeUnits(units []uint16, strict bool, context string) ([]rune, error) {
	runes := make([]rune, 0, len(units))
	for i := 0; i < len(units); i++ {
		u := units[i]
		switch {
		case u < 0xd800 || u > 0xdfff:
			runes = append(runes, rune(u))
		case u <= 0xdbff: // high surrogate
			if i+1 < len(units) {
				low := units[i+1]
				if low >= 0xdc00 && low <= 0xdfff {
					runes = append(runes, utf16.DecodeRune(rune(u), rune(low)))
					i++
					continue
				}
			}
			if strict {
				return nil, pfferr.New(pfferr.KindUnsupported, context, "unpaired high surrogate")
			}
			runes = append(runes, replacement)
		default: // lone low surrogate
			if strict {
				return nil, pfferr.New(pfferr.KindUnsupported, context, "unpaired low surrogate")
			}
			runes = append(runes, replacement)
		}
	}
	return runes, nil
}

func unitsFromBytes(data []byte, order ByteOrder, context string) ([]uint16, error) {
	if len(data)%2 != 0 {
		return nil, pfferr.New(pfferr.KindOutOfBounds, context, "odd-length UTF-16 stream")
	}
	units := make([]uint16, len(data)/2)
	for i := range units {
		units[i] = order.unit(data[i*2 : i*2+2])
	}
	return units, nil
}

// SizeFromUTF16 returns the number of UTF-8 bytes decoding data (a UTF-16
// stream in the given byte order) would produce.
func SizeFromUTF16(data []byte, order ByteOrder, opts ...Option) (int, error) {
	const context = "codepage.SizeFromUTF16"
	o := resolve(opts)
	units, err := unitsFromBytes(data, order, context)
	if err != nil {
		return 0, err
	}
	runes, err := decodeUnits(units, o.strict, context)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, r := range runes {
		n += utf8.RuneLen(r)
	}
	return n, nil
}

// CopyFromUTF16 decodes data (a UTF-16 stream in the given byte order) into
// dst, which must be at least SizeFromUTF16(data, order, opts...) bytes
// long, and returns the number of bytes written.
func CopyFromUTF16(dst []byte, data []byte, order ByteOrder, opts ...Option) (int, error) {
	const context = "codepage.CopyFromUTF16"
	o := resolve(opts)
	units, err := unitsFromBytes(data, order, context)
	if err != nil {
		return 0, err
	}
	runes, err := decodeUnits(units, o.strict, context)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, r := range runes {
		n += utf8.EncodeRune(dst[n:], r)
	}
	return n, nil
}

// DecodeUTF16ToUTF8 decodes a UTF-16 byte stream into a UTF-8 string.
func DecodeUTF16ToUTF8(data []byte, order ByteOrder, opts ...Option) (string, error) {
	size, err := SizeFromUTF16(data, order, opts...)
	if err != nil {
		return "", err
	}
	buf := make([]byte, size)
	if _, err := CopyFromUTF16(buf, data, order, opts...); err != nil {
		return "", err
	}
	return string(buf), nil
}

// --- UTF-8 -> UTF-16 stream ---

// SizeToUTF16 returns the number of bytes encoding s as a UTF-16 stream in
// the given byte order would produce.
func SizeToUTF16(s string) int {
	n := 0
	for _, r := range s {
		n += 2 * utf16.RuneLen(r)
	}
	return n
}

// CopyToUTF16 encodes s as a UTF-16 stream in the given byte order into
// dst, which must be at least SizeToUTF16(s) bytes long, and returns the
// number of bytes written.
func CopyToUTF16(dst []byte, s string, order ByteOrder) int {
	n := 0
	for _, r := range s {
		for _, u := range utf16.Encode([]rune{r}) {
			order.putUnit(dst[n:], u)
			n += 2
		}
	}
	return n
}

// EncodeToUTF16 encodes s as a UTF-16 byte stream in the given byte order.
func EncodeToUTF16(s string, order ByteOrder) []byte {
	buf := make([]byte, SizeToUTF16(s))
	CopyToUTF16(buf, s, order)
	return buf
}

// --- codepage -> UTF-16 ---

// SizeFromCodepageUTF16 returns the number of UTF-16 code units decoding
// data through table would produce: always one per input byte, since no
// supported codepage maps a byte outside the Basic Multilingual Plane.
func SizeFromCodepageUTF16(data []byte) int { return len(data) }

// CopyFromCodepageUTF16 decodes data through table into dst, a buffer of
// UTF-16 code units at least SizeFromCodepageUTF16(data) long, and returns
// the number of units written.
func CopyFromCodepageUTF16(dst []uint16, data []byte, table *Table) int {
	for i, b := range data {
		dst[i] = uint16(table.DecodeByte(b))
	}
	return len(data)
}
