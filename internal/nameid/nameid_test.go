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

package nameid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pffkit/pff/internal/nameid"
)

func TestDecodeClassIDs(t *testing.T) {
	t.Parallel()

	// Two back-to-back copies of the one-off entry identifier GUID.
	guid := []byte{0x81, 0x2b, 0x1f, 0xa4, 0xbe, 0xa3, 0x10, 0x19, 0x9d, 0x6e, 0x00, 0xdd, 0x01, 0x0f, 0x54, 0x02}
	data := append(append([]byte{}, guid...), guid...)

	v := nameid.Decode(0x0002, 0x0102, data)
	require.Equal(t, nameid.KindClassIDs, v.Kind)
	require.Len(t, v.ClassIDs, 2)
	assert.Equal(t, "a41f2b81-a3be-1910-9d6e-00dd010f5402", v.ClassIDs[0].String())
	assert.Equal(t, v.ClassIDs[0], v.ClassIDs[1])
}

func TestDecodeClassIDsOpaqueOnBadLength(t *testing.T) {
	t.Parallel()
	data := make([]byte, 17) // not a multiple of 16
	v := nameid.Decode(0x0002, 0x0102, data)
	assert.Equal(t, nameid.KindOpaque, v.Kind)
	assert.Equal(t, data, v.Opaque)
}

func TestDecodeEntries(t *testing.T) {
	t.Parallel()

	data := []byte{
		0x01, 0x00, 0x00, 0x00, // value_or_reference = 1
		0x01, 0x00, // type = 1, bit 0 set => reference
		0x05, 0x00, // number = 5
		0x02, 0x00, 0x00, 0x00, // value_or_reference = 2
		0x00, 0x00, // type = 0 => immediate
		0x06, 0x00, // number = 6
	}
	v := nameid.Decode(0x0003, 0x0102, data)
	require.Equal(t, nameid.KindEntries, v.Kind)
	require.Len(t, v.Entries, 2)
	assert.True(t, v.Entries[0].IsReference())
	assert.Equal(t, uint32(1), v.Entries[0].ValueOrReference)
	assert.Equal(t, uint16(5), v.Entries[0].Number)
	assert.False(t, v.Entries[1].IsReference())
}

func TestDecodeValidationEntries(t *testing.T) {
	t.Parallel()

	data := make([]byte, 8)
	v := nameid.Decode(0x1000, 0x0102, data)
	assert.Equal(t, nameid.KindValidation, v.Kind)

	v = nameid.Decode(0x2000, 0x0102, data)
	assert.Equal(t, nameid.KindValidation, v.Kind)
}

func TestDecodeEntriesOpaqueOnBadLength(t *testing.T) {
	t.Parallel()
	data := make([]byte, 9) // not a multiple of 8
	v := nameid.Decode(0x0003, 0x0102, data)
	assert.Equal(t, nameid.KindOpaque, v.Kind)
}

func TestDecodeScalar(t *testing.T) {
	t.Parallel()
	data := []byte{0x2A, 0x00, 0x00, 0x00}
	v := nameid.Decode(0x0001, 0x0003, data)
	assert.Equal(t, nameid.KindScalar, v.Kind)
	assert.Equal(t, uint32(42), v.ScalarU32)
}

func TestDecodeOtherShapeOpaque(t *testing.T) {
	t.Parallel()
	data := []byte{0xFF, 0xFE, 0xFD}
	v := nameid.Decode(0x0009, 0x0040, data)
	assert.Equal(t, nameid.KindOpaque, v.Kind)
	assert.Equal(t, data, v.Opaque)
}
