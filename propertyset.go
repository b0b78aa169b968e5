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

import (
	"github.com/pffkit/pff/internal/codepage"
	"github.com/pffkit/pff/internal/mapiprop"
	"github.com/pffkit/pff/internal/tblock"
)

// PropertyTag identifies a MAPI property within a property set.
type PropertyTag struct {
	EntryType uint32
	ValueType mapiprop.ValueType
}

// Property is a decoded MAPI property value, together with the tag that
// produced it.
type Property struct {
	Tag   PropertyTag
	Value mapiprop.Value
}

// PropertySet is a parsed table block together with the per-slot tags
// needed to dispatch each slot through the MAPI property decoder. It is
// the top-level read surface this package exposes: a Source supplies raw
// block bytes, [ParsePropertySet] decodes the block's slot index, and
// [PropertySet.Property] decodes one slot on demand.
type PropertySet struct {
	block     *tblock.Block
	blockData []byte
	tags      []PropertyTag
	codepage  *codepage.Table
	nameToID  bool
}

// ParsePropertySetOptions configures [ParsePropertySet].
type ParsePropertySetOptions struct {
	// Codepage decodes PT_STRING8 property values. It is optional; callers
	// that never access a PT_STRING8 slot need not set it.
	Codepage *codepage.Table
	// NameToID routes PT_BINARY slots through the name-to-id decoder
	// instead of the entry-identifier/opaque-binary path. Set this when
	// parsing a name-to-id map's table block.
	NameToID bool
}

// ParsePropertySet decodes blockData's table block and pairs each
// resulting slot with the tag at the same index in tags. len(tags) must
// equal the number of slots tblock.Parse produces from blockData;
// otherwise ParsePropertySet fails rather than guess a pairing.
func ParsePropertySet(blockData []byte, tags []PropertyTag, opts ParsePropertySetOptions) (*PropertySet, error) {
	const context = "pff.ParsePropertySet"

	block, err := tblock.Parse(blockData)
	if err != nil {
		return nil, err
	}
	if block.NumberOfValues() != len(tags) {
		return nil, NewError(KindInvalidArgument, context, "tag count does not match slot count")
	}
	return &PropertySet{
		block:     block,
		blockData: blockData,
		tags:      tags,
		codepage:  opts.Codepage,
		nameToID:  opts.NameToID,
	}, nil
}

// NumberOfProperties returns the number of properties in the set.
func (ps *PropertySet) NumberOfProperties() int { return len(ps.tags) }

// Property decodes and returns the property at index i.
func (ps *PropertySet) Property(i int) (Property, error) {
	const context = "pff.PropertySet.Property"

	if i < 0 || i >= len(ps.tags) {
		return Property{}, NewError(KindOutOfBounds, context, "property index out of range")
	}
	raw, err := ps.block.Bytes(ps.blockData, i)
	if err != nil {
		return Property{}, err
	}
	tag := ps.tags[i]
	value, err := mapiprop.Dispatch(tag.EntryType, tag.ValueType, raw, ps.codepage, ps.nameToID)
	if err != nil {
		return Property{}, err
	}
	return Property{Tag: tag, Value: value}, nil
}

// Properties decodes and returns every property in the set, in slot
// order. Decoding stops at the first property that fails; its error is
// returned alongside the properties decoded before it, and the
// properties after it are not decoded.
func (ps *PropertySet) Properties() ([]Property, error) {
	out := make([]Property, 0, len(ps.tags))
	for i := range ps.tags {
		p, err := ps.Property(i)
		if err != nil {
			return out, err
		}
		out = append(out, p)
	}
	return out, nil
}
