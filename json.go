// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package xdrjson

import (
	"fmt"

	"github.com/blinklabs-io/xdrjson/value"
)

// DecodeJSON parses a JSON document, runs Decode on it and returns the result
// as JSON. Only malformed input is an error; fields that fail to decode are
// left as they are.
func (d *Decoder) DecodeJSON(data []byte, ctx Context) ([]byte, error) {
	root, err := value.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	return d.Decode(root, ctx).MarshalJSON()
}

// DecodeAllJSON parses a JSON document, runs DecodeAll on it and returns the
// result as JSON
func (g *GuessDecoder) DecodeAllJSON(data []byte) ([]byte, error) {
	root, err := value.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("decode JSON: %w", err)
	}
	return g.DecodeAll(root).MarshalJSON()
}
