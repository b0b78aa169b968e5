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

// Package pff is a read-only decoder for the tabular data found inside
// Microsoft Personal Folder File (PFF/PST/OST) containers.
//
// It does not parse the PFF page and B-tree layout used to locate blocks
// within a container (that is the job of a byte source, see [Source]); it
// starts from a raw block of bytes and turns it into typed MAPI property
// values. The pieces involved are, from the bottom up:
//
//   - [Source], the abstract random-access byte provider that the decoders
//     read from.
//   - The internal codepage package, which bridges codepage and UTF-16 byte
//     streams to and from UTF-8/UTF-16.
//   - The internal tblock package, which parses a table block's back-index
//     into an ordered sequence of value slots.
//   - The internal oneoff and nameid packages, which decode two
//     self-describing composite MAPI values: one-off address entries and
//     name-to-id map entries.
//   - The internal mapiprop package, which dispatches a (entry type, value
//     type) pair to one of the above.
//
// This package never writes to, repairs, or transmits the underlying
// container. Malformed records are reported through [Error] and discarded;
// the caller decides whether to keep reading the surrounding container.
package pff
