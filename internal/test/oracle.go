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
	"fmt"
	"strings"

	"github.com/blinklabs-io/xdrjson/xdr"
)

// Oracle is a fake xdr.Oracle. Strings of the form "ok:<Type>:<data>" are
// guessed as <Type>, with ScVal offered as a second candidate. Everything else
// fails to guess.
type Oracle struct {
	// Registry used by DecodeGeneric. NewRegistry is used when nil.
	Registry Registry
	// GuessFunc replaces the default guessing when set
	GuessFunc func(encoded string) ([]xdr.TypeName, error)
}

func (o *Oracle) Guess(encoded string) ([]xdr.TypeName, error) {
	if o.GuessFunc != nil {
		return o.GuessFunc(encoded)
	}
	rest, ok := strings.CutPrefix(encoded, ValidPrefix)
	if !ok {
		return nil, fmt.Errorf("%w: %q", xdr.ErrGuessFailure, encoded)
	}
	typeName, _, ok := strings.Cut(rest, ":")
	if !ok {
		return nil, fmt.Errorf("%w: %q", xdr.ErrGuessFailure, encoded)
	}
	return []xdr.TypeName{xdr.TypeName(typeName), xdr.ScVal}, nil
}

// DecodeGeneric strips the type name from "ok:<Type>:<data>" and decodes the
// remaining "ok:<data>" with the registry
func (o *Oracle) DecodeGeneric(name xdr.TypeName, encoded string) ([]byte, error) {
	registry := o.Registry
	if registry == nil {
		registry = NewRegistry()
	}
	if rest, ok := strings.CutPrefix(encoded, ValidPrefix); ok {
		if _, data, ok := strings.Cut(rest, ":"); ok {
			encoded = ValidPrefix + data
		}
	}
	decoded, err := registry.Decode(name, encoded, xdr.FormatBase64)
	if err != nil {
		return nil, err
	}
	return decoded.MarshalJSON()
}
