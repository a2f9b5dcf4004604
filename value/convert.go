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
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/blinklabs-io/xdrjson/cbor"
)

var ErrUnsupportedType = errors.New("unsupported type")

// FromAny converts a generic Go value, as produced by encoding/json or the CBOR
// decoder, into a Value.
//
// Byte strings become base64 strings and CBOR tags are replaced by their
// content. Maps must have string keys.
func FromAny(v any) (Value, error) {
	switch tmp := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return tmp, nil
	case *Value:
		if tmp == nil {
			return Null(), nil
		}
		return *tmp, nil
	case bool:
		return Bool(tmp), nil
	case json.Number:
		if !isNumberLiteral(string(tmp)) {
			return Value{}, fmt.Errorf("invalid number %q", string(tmp))
		}
		return Number(tmp), nil
	case string:
		return String(tmp), nil
	case int:
		return Int(int64(tmp)), nil
	case int8:
		return Int(int64(tmp)), nil
	case int16:
		return Int(int64(tmp)), nil
	case int32:
		return Int(int64(tmp)), nil
	case int64:
		return Int(tmp), nil
	case uint:
		return Uint(uint64(tmp)), nil
	case uint8:
		return Uint(uint64(tmp)), nil
	case uint16:
		return Uint(uint64(tmp)), nil
	case uint32:
		return Uint(uint64(tmp)), nil
	case uint64:
		return Uint(tmp), nil
	case float32:
		return Float(float64(tmp)), nil
	case float64:
		return Float(tmp), nil
	case big.Int:
		return Number(json.Number(tmp.String())), nil
	case *big.Int:
		if tmp == nil {
			return Null(), nil
		}
		return Number(json.Number(tmp.String())), nil
	case []byte:
		return String(base64.StdEncoding.EncodeToString(tmp)), nil
	case cbor.Tag:
		ret, err := FromAny(tmp.Content)
		if err != nil {
			return Value{}, fmt.Errorf("tag %d: %w", tmp.Number, err)
		}
		return ret, nil
	case []any:
		items := make([]Value, len(tmp))
		for idx, item := range tmp {
			itemValue, err := FromAny(item)
			if err != nil {
				return Value{}, fmt.Errorf("element %d: %w", idx, err)
			}
			items[idx] = itemValue
		}
		return Array(items...), nil
	case map[string]any:
		fields := make(map[string]Value, len(tmp))
		for key, item := range tmp {
			itemValue, err := FromAny(item)
			if err != nil {
				return Value{}, fmt.Errorf("member %q: %w", key, err)
			}
			fields[key] = itemValue
		}
		return Object(fields), nil
	case map[any]any:
		fields := make(map[string]Value, len(tmp))
		for key, item := range tmp {
			strKey, ok := key.(string)
			if !ok {
				return Value{}, fmt.Errorf(
					"map key %v (%T): %w",
					key,
					key,
					ErrUnsupportedType,
				)
			}
			itemValue, err := FromAny(item)
			if err != nil {
				return Value{}, fmt.Errorf("member %q: %w", strKey, err)
			}
			fields[strKey] = itemValue
		}
		return Object(fields), nil
	default:
		return Value{}, fmt.Errorf("%T: %w", v, ErrUnsupportedType)
	}
}

// ToAny converts the Value into the generic form used by encoding/json:
// nil, bool, json.Number, string, []any and map[string]any
func (v Value) ToAny() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return json.Number(v.s)
	case KindString:
		return v.s
	case KindArray:
		ret := make([]any, len(v.items))
		for idx, item := range v.items {
			ret[idx] = item.ToAny()
		}
		return ret
	case KindObject:
		ret := make(map[string]any, len(v.fields))
		for key, item := range v.fields {
			ret[key] = item.ToAny()
		}
		return ret
	default:
		return nil
	}
}

// isNumberLiteral reports whether s is exactly one JSON number
func isNumberLiteral(s string) bool {
	if s == "" {
		return false
	}
	if s[0] != '-' && (s[0] < '0' || s[0] > '9') {
		return false
	}
	return json.Valid([]byte(s))
}
