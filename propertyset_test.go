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

package pff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pffkit/pff"
	"github.com/pffkit/pff/internal/codepage"
	"github.com/pffkit/pff/internal/mapiprop"
)

// blockWithTwoSlots lays out two value slots after the 2-byte index_offset
// header: slot 0 (offset 2, size 4) holds a PT_LONG, slot 1 (offset 6,
// size 2) holds a PT_BOOLEAN.
func blockWithTwoSlots() []byte {
	return []byte{
		0x08, 0x00, // index_offset
		0x2A, 0x00, 0x00, 0x00, // slot 0: PT_LONG = 42
		0x01, 0x00, // slot 1: PT_BOOLEAN = true
		0x02, 0x00, // number_of_index_offsets
		0x01, 0x00, // number_of_unused_index_offsets
		0x02, 0x00, // boundary[0]
		0x06, 0x00, // boundary[1]
		0x08, 0x00, // boundary[2]
	}
}

func TestParsePropertySet(t *testing.T) {
	t.Parallel()

	tags := []pff.PropertyTag{
		{EntryType: 0, ValueType: mapiprop.TypeLong},
		{EntryType: 0, ValueType: mapiprop.TypeBoolean},
	}
	ps, err := pff.ParsePropertySet(blockWithTwoSlots(), tags, pff.ParsePropertySetOptions{})
	require.NoError(t, err)
	require.Equal(t, 2, ps.NumberOfProperties())

	props, err := ps.Properties()
	require.NoError(t, err)
	require.Len(t, props, 2)

	assert.Equal(t, mapiprop.KindInt32, props[0].Value.Kind)
	assert.Equal(t, int32(42), props[0].Value.Int32)

	assert.Equal(t, mapiprop.KindBool, props[1].Value.Kind)
	assert.True(t, props[1].Value.Bool)
}

func TestParsePropertySetRejectsTagCountMismatch(t *testing.T) {
	t.Parallel()

	_, err := pff.ParsePropertySet(blockWithTwoSlots(), nil, pff.ParsePropertySetOptions{})
	assert.Error(t, err)
}

func TestPropertySetIndexOutOfRange(t *testing.T) {
	t.Parallel()

	tags := []pff.PropertyTag{
		{EntryType: 0, ValueType: mapiprop.TypeLong},
		{EntryType: 0, ValueType: mapiprop.TypeBoolean},
	}
	ps, err := pff.ParsePropertySet(blockWithTwoSlots(), tags, pff.ParsePropertySetOptions{})
	require.NoError(t, err)

	_, err = ps.Property(5)
	assert.Error(t, err)
}

func TestPropertySetString8UsesCodepage(t *testing.T) {
	t.Parallel()

	data := []byte{
		0x06, 0x00, // index_offset
		'h', 'i', // slot 0: PT_STRING8 = "hi"
		0x00, 0x00, // filler up to the index offset
		0x01, 0x00, // number_of_index_offsets
		0x00, 0x00, // number_of_unused_index_offsets
		0x02, 0x00, // boundary[0]
		0x04, 0x00, // boundary[1]
	}
	tbl, ok := codepage.Lookup(1252)
	require.True(t, ok)

	tags := []pff.PropertyTag{{EntryType: 0, ValueType: mapiprop.TypeString8}}
	ps, err := pff.ParsePropertySet(data, tags, pff.ParsePropertySetOptions{Codepage: tbl})
	require.NoError(t, err)

	p, err := ps.Property(0)
	require.NoError(t, err)
	assert.Equal(t, "hi", p.Value.String)
}
