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
	"encoding/json"
	"fmt"
	"math/big"
	"strconv"

	"github.com/blinklabs-io/xdrjson/cbor"
)

// MarshalCBOR encodes the Value as CBOR. Integers are encoded as CBOR integers
// (bignums when they do not fit in 64 bits) and other numbers as floats.
func (v Value) MarshalCBOR() ([]byte, error) {
	tmp, err := v.toCborAny()
	if err != nil {
		return nil, err
	}
	return cbor.Encode(tmp)
}

func (v *Value) UnmarshalCBOR(data []byte) error {
	var tmp any
	if err := cbor.DecodeFull(data, &tmp); err != nil {
		return fmt.Errorf("decode CBOR: %w", err)
	}
	ret, err := FromAny(tmp)
	if err != nil {
		return fmt.Errorf("convert CBOR: %w", err)
	}
	*v = ret
	return nil
}

func (v Value) toCborAny() (any, error) {
	switch v.kind {
	case KindNumber:
		return numberToCbor(json.Number(v.s))
	case KindArray:
		ret := make([]any, len(v.items))
		for idx, item := range v.items {
			tmp, err := item.toCborAny()
			if err != nil {
				return nil, err
			}
			ret[idx] = tmp
		}
		return ret, nil
	case KindObject:
		ret := make(map[string]any, len(v.fields))
		for key, item := range v.fields {
			tmp, err := item.toCborAny()
			if err != nil {
				return nil, err
			}
			ret[key] = tmp
		}
		return ret, nil
	default:
		return v.ToAny(), nil
	}
}

func numberToCbor(n json.Number) (any, error) {
	if i, err := strconv.ParseInt(string(n), 10, 64); err == nil {
		return i, nil
	}
	if u, err := strconv.ParseUint(string(n), 10, 64); err == nil {
		return u, nil
	}
	if b, ok := new(big.Int).SetString(string(n), 10); ok {
		return b, nil
	}
	f, err := strconv.ParseFloat(string(n), 64)
	if err != nil {
		return nil, fmt.Errorf("number %q: %w", string(n), err)
	}
	return f, nil
}
