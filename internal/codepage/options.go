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

// Option configures a conversion in this package.
type Option struct{ apply func(*options) }

type options struct {
	strict bool
}

func resolve(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt.apply(&o)
	}
	return o
}

// WithStrict makes a conversion fail on the first unmappable unit instead
// of substituting U+FFFD (decode) or 0x1a (encode).
func WithStrict(strict bool) Option {
	return Option{func(o *options) { o.strict = strict }}
}
