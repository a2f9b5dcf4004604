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

// Package value implements a JSON value as a tagged union.
//
// A Value is one of null, bool, number, string, array or object. Values are
// immutable once built: constructors take ownership of the slices and maps
// passed to them, and accessors return the underlying storage without copying.
//
// Values convert to and from JSON (Parse, MarshalJSON) and CBOR (MarshalCBOR,
// UnmarshalCBOR).
package value
