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

package value

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Parse decodes a single JSON document into a Value
func Parse(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var tmp any
	if err := dec.Decode(&tmp); err != nil {
		return Value{}, fmt.Errorf("parse JSON: %w", err)
	}
	// Anything other than whitespace after the document is an error
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Value{}, errors.New("parse JSON: trailing data after document")
	}
	return FromAny(tmp)
}

// MustParse is like Parse but panics on error. It is meant for tests and
// package-level fixtures.
func MustParse(data string) Value {
	ret, err := Parse([]byte(data))
	if err != nil {
		panic(err)
	}
	return ret
}

// MarshalJSON renders the Value as compact JSON. Object members are sorted by
// key.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.ToAny())
}

func (v *Value) UnmarshalJSON(data []byte) error {
	tmp, err := Parse(data)
	if err != nil {
		return err
	}
	*v = tmp
	return nil
}
