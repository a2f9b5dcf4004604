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

package stellar

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sync"

	"github.com/blinklabs-io/xdrjson/value"
	"github.com/blinklabs-io/xdrjson/xdr"
	stellarxdr "github.com/stellar/go/xdr"
)

var (
	sharedCodec     *Codec
	sharedCodecOnce sync.Once
)

// Codec decodes Stellar XDR for every type in xdr.TypeNames. It implements
// both xdr.Registry and xdr.Oracle and is safe for concurrent use.
type Codec struct {
	types map[xdr.TypeName]reflect.Type
	// guess order
	order []xdr.TypeName
}

var (
	_ xdr.Registry = (*Codec)(nil)
	_ xdr.Oracle   = (*Codec)(nil)
)

// New returns the process-wide Codec, building its type table on first use.
// It is safe to call any number of times.
func New() *Codec {
	sharedCodecOnce.Do(func() {
		sharedCodec = &Codec{
			types: map[xdr.TypeName]reflect.Type{
				xdr.TransactionEnvelope:                   reflect.TypeFor[stellarxdr.TransactionEnvelope](),
				xdr.TransactionResult:                     reflect.TypeFor[stellarxdr.TransactionResult](),
				xdr.TransactionMeta:                       reflect.TypeFor[stellarxdr.TransactionMeta](),
				xdr.DiagnosticEvent:                       reflect.TypeFor[stellarxdr.DiagnosticEvent](),
				xdr.TransactionEvent:                      reflect.TypeFor[stellarxdr.TransactionEvent](),
				xdr.ContractEvent:                         reflect.TypeFor[stellarxdr.ContractEvent](),
				xdr.ScVal:                                 reflect.TypeFor[stellarxdr.ScVal](),
				xdr.LedgerKey:                             reflect.TypeFor[stellarxdr.LedgerKey](),
				xdr.LedgerEntryData:                       reflect.TypeFor[stellarxdr.LedgerEntryData](),
				xdr.LedgerHeaderHistoryEntry:              reflect.TypeFor[stellarxdr.LedgerHeaderHistoryEntry](),
				xdr.LedgerCloseMeta:                       reflect.TypeFor[stellarxdr.LedgerCloseMeta](),
				xdr.SorobanTransactionData:                reflect.TypeFor[stellarxdr.SorobanTransactionData](),
				xdr.ConfigSettingContractHistoricalDataV0: reflect.TypeFor[stellarxdr.ConfigSettingContractHistoricalDataV0](),
			},
			order: xdr.TypeNames(),
		}
	})
	return sharedCodec
}

func (c *Codec) Has(name xdr.TypeName) bool {
	_, ok := c.types[name]
	return ok
}

// Decode decodes encoded as the named type and converts the result to a
// value.Value via its JSON form
func (c *Codec) Decode(
	name xdr.TypeName,
	encoded string,
	format xdr.Format,
) (value.Value, error) {
	jsonData, err := c.decodeJSON(name, encoded, format)
	if err != nil {
		return value.Value{}, err
	}
	ret, err := value.Parse(jsonData)
	if err != nil {
		return value.Value{}, xdr.NewDecodeError(name, err)
	}
	return ret, nil
}

// Guess returns every type that encoded decodes as, consuming all of its
// bytes, in xdr.TypeNames order
func (c *Codec) Guess(encoded string) ([]xdr.TypeName, error) {
	data, err := xdr.FormatBase64.Decode(encoded)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", xdr.ErrGuessFailure, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", xdr.ErrGuessFailure)
	}
	var ret []xdr.TypeName
	for _, name := range c.order {
		if _, err := c.unmarshal(name, data); err == nil {
			ret = append(ret, name)
		}
	}
	if len(ret) == 0 {
		return nil, fmt.Errorf("%w: no type matches", xdr.ErrGuessFailure)
	}
	return ret, nil
}

// DecodeGeneric decodes base64 encoded as the named type and returns its JSON
// form
func (c *Codec) DecodeGeneric(name xdr.TypeName, encoded string) ([]byte, error) {
	return c.decodeJSON(name, encoded, xdr.FormatBase64)
}

func (c *Codec) decodeJSON(
	name xdr.TypeName,
	encoded string,
	format xdr.Format,
) ([]byte, error) {
	if !c.Has(name) {
		return nil, fmt.Errorf("%w: %s", xdr.ErrUnknownType, name)
	}
	data, err := format.Decode(encoded)
	if err != nil {
		return nil, xdr.NewDecodeError(name, err)
	}
	obj, err := c.unmarshal(name, data)
	if err != nil {
		return nil, xdr.NewDecodeError(name, err)
	}
	jsonData, err := json.Marshal(obj)
	if err != nil {
		return nil, xdr.NewDecodeError(name, err)
	}
	return jsonData, nil
}

// unmarshal decodes data into a new instance of the named type. All bytes must
// be consumed.
func (c *Codec) unmarshal(name xdr.TypeName, data []byte) (any, error) {
	ty, ok := c.types[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", xdr.ErrUnknownType, name)
	}
	dest := reflect.New(ty).Interface()
	if err := stellarxdr.SafeUnmarshal(data, dest); err != nil {
		return nil, err
	}
	return dest, nil
}
