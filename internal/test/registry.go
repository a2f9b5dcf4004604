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

package test

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/blinklabs-io/xdrjson/value"
	"github.com/blinklabs-io/xdrjson/xdr"
)

// ValidPrefix marks strings that the fake decoders accept
const ValidPrefix = "ok:"

var errNotEncoded = errors.New("missing " + ValidPrefix + " prefix")

// DecodeFunc decodes a single string for a fake registry
type DecodeFunc func(encoded string, format xdr.Format) (value.Value, error)

// Registry is an xdr.Registry backed by plain functions
type Registry map[xdr.TypeName]DecodeFunc

func (r Registry) Has(name xdr.TypeName) bool {
	_, ok := r[name]
	return ok
}

func (r Registry) Decode(
	name xdr.TypeName,
	encoded string,
	format xdr.Format,
) (value.Value, error) {
	fn, ok := r[name]
	if !ok {
		return value.Value{}, fmt.Errorf("%w: %s", xdr.ErrUnknownType, name)
	}
	ret, err := fn(encoded, format)
	if err != nil {
		return value.Value{}, xdr.NewDecodeError(name, err)
	}
	return ret, nil
}

// NewRegistry returns a Registry with a TaggingDecoder for every known type
func NewRegistry() Registry {
	ret := Registry{}
	for _, name := range xdr.TypeNames() {
		ret[name] = TaggingDecoder(name)
	}
	return ret
}

// TaggingDecoder returns a DecodeFunc that accepts strings starting with
// ValidPrefix and decodes them to the value returned by Tagged
func TaggingDecoder(name xdr.TypeName) DecodeFunc {
	return func(encoded string, format xdr.Format) (value.Value, error) {
		data, ok := strings.CutPrefix(encoded, ValidPrefix)
		if !ok {
			return value.Value{}, errNotEncoded
		}
		return TaggedFormat(name, data, format), nil
	}
}

// Tagged returns the value a TaggingDecoder produces for base64 input
func Tagged(name xdr.TypeName, data string) value.Value {
	return TaggedFormat(name, data, xdr.FormatBase64)
}

// TaggedFormat returns the value a TaggingDecoder produces
func TaggedFormat(name xdr.TypeName, data string, format xdr.Format) value.Value {
	return value.Object(map[string]value.Value{
		"type":   value.String(string(name)),
		"data":   value.String(data),
		"format": value.String(string(format)),
	})
}

// PanickingDecoder is a DecodeFunc that always panics
func PanickingDecoder(string, xdr.Format) (value.Value, error) {
	panic("decoder exploded")
}

// MustDecodeHex decodes hex test fixtures inline. Surrounding whitespace is
// ignored and invalid input panics.
func MustDecodeHex(hexData string) []byte {
	ret, err := hex.DecodeString(strings.TrimSpace(hexData))
	if err != nil {
		panic(fmt.Sprintf("invalid hex fixture %q: %s", hexData, err))
	}
	return ret
}
