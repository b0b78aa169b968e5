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

// Package codepage bridges codepage-encoded and UTF-16 byte streams to and
// from UTF-8 and UTF-16, with an explicit, uniform policy for unmappable
// input: the Unicode replacement character U+FFFD on decode, the ASCII
// substitution character 0x1a on encode. Encoding to a codepage and
// decoding a UTF-16 stream accept a strict mode ([WithStrict]) that fails
// on the first unmappable unit instead; decoding codepage bytes takes no
// options and always substitutes U+FFFD.
//
// The single-byte codepage tables are provided by
// golang.org/x/text/encoding/charmap rather than hand-rolled, since that
// package already ships the ISO-8859, Windows, and KOI8 tables this format
// references, each exposing a DecodeByte/EncodeRune pair that is a direct
// match for the size-then-copy primitives below.
package codepage

import "golang.org/x/text/encoding/charmap"

// substitute is the ASCII substitution character used in place of a
// Unicode code point that a codepage's encoder cannot represent.
const substitute = 0x1a

// replacement is the Unicode replacement character used in place of a
// codepage byte or UTF-16 unit that cannot be decoded.
const replacement = '�'

// Table is a single-byte codepage lookup table.
type Table struct {
	cm   *charmap.Charmap
	name string
}

// DecodeByte returns the Unicode code point for a codepage byte. Charmap
// tables already map unmapped bytes to the Unicode replacement character.
func (t *Table) DecodeByte(b byte) rune {
	return t.cm.DecodeByte(b)
}

// EncodeRune returns the codepage byte for a Unicode code point, and
// whether r is representable in this table.
func (t *Table) EncodeRune(r rune) (byte, bool) {
	return t.cm.EncodeRune(r)
}

// String implements [fmt.Stringer].
func (t *Table) String() string { return t.name }

// tables maps a Microsoft codepage identifier to its lookup table. Every
// codepage named in the format's specification that golang.org/x/text ships
// a table for is listed; ISO-8859-11 and ISO-8859-12 are absent from both,
// since those two numbers were reserved and never assigned a character set.
var tables = map[uint32]*Table{
	437:   {cm: charmap.CodePage437, name: "IBM437"},
	850:   {cm: charmap.CodePage850, name: "IBM850"},
	852:   {cm: charmap.CodePage852, name: "IBM852"},
	855:   {cm: charmap.CodePage855, name: "IBM855"},
	858:   {cm: charmap.CodePage858, name: "IBM858"},
	860:   {cm: charmap.CodePage860, name: "IBM860"},
	862:   {cm: charmap.CodePage862, name: "IBM862"},
	863:   {cm: charmap.CodePage863, name: "IBM863"},
	865:   {cm: charmap.CodePage865, name: "IBM865"},
	866:   {cm: charmap.CodePage866, name: "IBM866"},
	874:   {cm: charmap.Windows874, name: "windows-874"},
	1250:  {cm: charmap.Windows1250, name: "windows-1250"},
	1251:  {cm: charmap.Windows1251, name: "windows-1251"},
	1252:  {cm: charmap.Windows1252, name: "windows-1252"},
	1253:  {cm: charmap.Windows1253, name: "windows-1253"},
	1254:  {cm: charmap.Windows1254, name: "windows-1254"},
	1255:  {cm: charmap.Windows1255, name: "windows-1255"},
	1256:  {cm: charmap.Windows1256, name: "windows-1256"},
	1257:  {cm: charmap.Windows1257, name: "windows-1257"},
	1258:  {cm: charmap.Windows1258, name: "windows-1258"},
	10000: {cm: charmap.Macintosh, name: "macintosh"},
	10007: {cm: charmap.MacintoshCyrillic, name: "x-mac-cyrillic"},
	20866: {cm: charmap.KOI8R, name: "KOI8-R"},
	21866: {cm: charmap.KOI8U, name: "KOI8-U"},
	28591: {cm: charmap.ISO8859_1, name: "ISO-8859-1"},
	28592: {cm: charmap.ISO8859_2, name: "ISO-8859-2"},
	28593: {cm: charmap.ISO8859_3, name: "ISO-8859-3"},
	28594: {cm: charmap.ISO8859_4, name: "ISO-8859-4"},
	28595: {cm: charmap.ISO8859_5, name: "ISO-8859-5"},
	28596: {cm: charmap.ISO8859_6, name: "ISO-8859-6"},
	28597: {cm: charmap.ISO8859_7, name: "ISO-8859-7"},
	28598: {cm: charmap.ISO8859_8, name: "ISO-8859-8"},
	28599: {cm: charmap.ISO8859_9, name: "ISO-8859-9"},
	28600: {cm: charmap.ISO8859_10, name: "ISO-8859-10"},
	28603: {cm: charmap.ISO8859_13, name: "ISO-8859-13"},
	28604: {cm: charmap.ISO8859_14, name: "ISO-8859-14"},
	28605: {cm: charmap.ISO8859_15, name: "ISO-8859-15"},
	28606: {cm: charmap.ISO8859_16, name: "ISO-8859-16"},
}

// Lookup returns the table for a Microsoft codepage identifier, and whether
// one is known.
func Lookup(codepage uint32) (*Table, bool) {
	t, ok := tables[codepage]
	return t, ok
}
