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

// callDecoder runs a registry or oracle call and turns a panic inside it into
// a decode failure for the named type
func callDecoder[T any](name xdr.TypeName, fn func() (T, error)) (ret T, err error) {
	defer func() {
		if r := recover(); r != nil {
			var zero T
			ret = zero
			err = xdr.NewDecodeError(name, fmt.Errorf("decoder panic: %v", r))
		}
	}()
	return fn()
}

// decodeString decodes a single encoded string with the registry. It never
// fails: on any error the original string is returned and a diagnostic is
// sent to sink.
func decodeString(
	registry xdr.Registry,
	format xdr.Format,
	sink DiagnosticSink,
	key string,
	encoded string,
	name xdr.TypeName,
) value.Value {
	original := value.String(encoded)
	if encoded == "" || name == "" {
		return original
	}
	if !registry.Has(name) {
		sink(Diagnostic{
			Kind: DiagnosticUnknownType,
			Key:  key,
			Type: name,
			Err:  fmt.Errorf("%w: %s", xdr.ErrUnknownType, name),
		})
		return original
	}
	decoded, err := callDecoder(name, func() (value.Value, error) {
		return registry.Decode(name, encoded, format)
	})
	if err != nil {
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
	return decoded
}
