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

package mapiprop

import "github.com/pffkit/pff/internal/endian"

// ServiceProviderOneOffEntryIdentifier identifies a PT_BINARY payload as a
// one-off recipient entry identifier.
var ServiceProviderOneOffEntryIdentifier = endian.GUID{
	0x81, 0x2b, 0x1f, 0xa4, 0xbe, 0xa3, 0x10, 0x19,
	0x9d, 0x6e, 0x00, 0xdd, 0x01, 0x0f, 0x54, 0x02,
}

// ServiceProviderX500Address identifies a PT_BINARY payload as an X.500
// address book entry identifier.
var ServiceProviderX500Address = endian.GUID{
	0xdc, 0xa7, 0x40, 0xc8, 0xc0, 0x42, 0x10, 0x1a,
	0xb4, 0xb9, 0x08, 0x00, 0x2b, 0x2f, 0xe1, 0x82,
}

// ServiceProviderName returns the human-readable name of a known service
// provider identifier, or "" if g is not recognised.
func ServiceProviderName(g endian.GUID) string {
	switch g {
	case ServiceProviderOneOffEntryIdentifier:
		return "One-off entry identifier"
	case ServiceProviderX500Address:
		return "X500 address"
	default:
		return ""
	}
}
