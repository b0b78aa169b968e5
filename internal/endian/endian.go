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

// Package endian holds the little-endian byte-stream primitives every
// decoder in this module is built on. Every function here is non-failing on
// in-bounds input; callers are responsible for checking that src is long
// enough before calling.
package endian

// U16 decodes a little-endian uint16 from the first two bytes of src.
func U16(src []byte) uint16 {
	_ = src[1]
	return uint16(src[0]) | uint16(src[1])<<8
}

// U32 decodes a little-endian uint32 from the first four bytes of src.
func U32(src []byte) uint32 {
	_ = src[3]
	return uint32(src[0]) | uint32(src[1])<<8 | uint32(src[2])<<16 | uint32(src[3])<<24
}

// U64 decodes a little-endian uint64 from the first eight bytes of src.
func U64(src []byte) uint64 {
	_ = src[7]
	return uint64(src[0]) | uint64(src[1])<<8 | uint64(src[2])<<16 | uint64(src[3])<<24 |
		uint64(src[4])<<32 | uint64(src[5])<<40 | uint64(src[6])<<48 | uint64(src[7])<<56
}

// GUID is a 16-byte globally unique identifier, stored in the mixed-endian
// layout Microsoft uses on the wire: the first three fields are
// little-endian, the fourth field and the trailing node bytes are kept in
// the order they appear.
type GUID [16]byte

// DecodeGUID reads a 16-byte GUID from the first 16 bytes of src.
func DecodeGUID(src []byte) GUID {
	_ = src[15]
	var g GUID
	copy(g[:], src[:16])
	return g
}

// RFC4122 converts the wire's mixed-endian layout to the big-endian layout
// RFC 4122 (and github.com/google/uuid) expects, by reversing the
// little-endian time_low/time_mid/time_hi_and_version fields in place.
func (g GUID) RFC4122() [16]byte {
	var out [16]byte
	out[0], out[1], out[2], out[3] = g[3], g[2], g[1], g[0]
	out[4], out[5] = g[5], g[4]
	out[6], out[7] = g[7], g[6]
	copy(out[8:], g[8:])
	return out
}
