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

package xdr

import (
	"github.com/blinklabs-io/xdrjson/value"
)

// Registry decodes encoded strings for a closed set of named types
type Registry interface {
	// Has returns true if the registry can decode the named type
	Has(name TypeName) bool
	// Decode decodes encoded as the named type. It returns an error matching
	// ErrUnknownType when the name has no entry and ErrDecodeFailure when the
	// input is rejected.
	Decode(name TypeName, encoded string, format Format) (value.Value, error)
}

// Oracle classifies encoded strings without a type hint
type Oracle interface {
	// Guess returns the candidate types for encoded, best first. It returns an
	// error matching ErrGuessFailure when there are none.
	Guess(encoded string) ([]TypeName, error)
	// DecodeGeneric decodes base64 encoded as the named type and returns JSON text
	DecodeGeneric(name TypeName, encoded string) ([]byte, error)
}
