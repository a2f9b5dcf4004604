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
	"errors"
	"fmt"

	"github.com/blinklabs-io/xdrjson/value"
	"github.com/blinklabs-io/xdrjson/xdr"
)

var ErrNilOracle = errors.New("oracle must not be nil")

// GuessDecoder decodes every string in a value by asking an oracle for its
// type. Unlike Decoder it does not consult field keys, so any string that
// happens to parse as XDR is decoded. It is safe for concurrent use.
type GuessDecoder struct {
	oracle xdr.Oracle
	sink   DiagnosticSink
}

// NewGuessDecoder returns a GuessDecoder using the provided oracle. Field and
// context binding options are ignored.
func NewGuessDecoder(oracle xdr.Oracle, opts ...OptionFunc) (*GuessDecoder, error) {
	if oracle == nil {
		return nil, ErrNilOracle
	}
	c := newConfig(opts)
	g := &GuessDecoder{
		oracle: oracle,
		sink:   c.sink,
	}
	return g, nil
}

// DecodeAll returns a copy of root with every string the oracle can classify
// replaced by its decoded value. Decoded values are inserted as is and not
// walked again.
func (g *GuessDecoder) DecodeAll(root value.Value) value.Value {
	return g.DecodeAllWithSink(root, g.sink)
}

// DecodeAllWithSink is like DecodeAll but sends diagnostics for this call to
// sink
func (g *GuessDecoder) DecodeAllWithSink(root value.Value, sink DiagnosticSink) value.Value {
	if sink == nil {
		sink = DiscardSink
	}
	return g.walk(root, "", sink)
}

func (g *GuessDecoder) walk(v value.Value, key string, sink DiagnosticSink) value.Value {
	switch v.Kind() {
	case value.KindString:
		encoded, _ := v.AsString()
		return g.decodeString(key, encoded, sink)
	case value.KindArray:
		items := v.Items()
		ret := make([]value.Value, len(items))
		for idx, item := range items {
			ret[idx] = g.walk(item, key, sink)
		}
		return value.Array(ret...)
	case value.KindObject:
		fields := v.Fields()
		ret := make(map[string]value.Value, len(fields))
		for fieldKey, item := range fields {
			ret[fieldKey] = g.walk(item, fieldKey, sink)
		}
		return value.Object(ret)
	default:
		return v
	}
}

// decodeString guesses the type of encoded and decodes it with the first
// candidate. The key is only used for diagnostics.
func (g *GuessDecoder) decodeString(key string, encoded string, sink DiagnosticSink) value.Value {
	original := value.String(encoded)
	if encoded == "" {
		return original
	}
	names, err := callDecoder("", func() ([]xdr.TypeName, error) {
		return g.oracle.Guess(encoded)
	})
	if err == nil && len(names) == 0 {
		err = xdr.ErrGuessFailure
	}
	if err != nil {
		if !errors.Is(err, xdr.ErrGuessFailure) {
			err = fmt.Errorf("%w: %w", xdr.ErrGuessFailure, err)
		}
		sink(Diagnostic{
			Kind: DiagnosticGuessFailure,
			Key:  key,
			Err:  err,
		})
		return original
	}
	name := names[0]
	jsonData, err := callDecoder(name, func() ([]byte, error) {
		return g.oracle.DecodeGeneric(name, encoded)
	})
	if err == nil {
		var decoded value.Value
		decoded, err = value.Parse(jsonData)
		if err == nil {
			return decoded
		}
	}
	kind := DiagnosticDecodeFailure
	if errors.Is(err, xdr.ErrUnknownType) {
		kind = DiagnosticUnknownType
	} else {
		err = xdr.NewDecodeError(name, err)
	}
	sink(Diagnostic{
		Kind: kind,
		Key:  key,
		Type: name,
		Err:  err,
	})
	return original
}
