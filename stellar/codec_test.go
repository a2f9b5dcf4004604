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

package stellar_test

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/blinklabs-io/xdrjson/stellar"
	"github.com/blinklabs-io/xdrjson/value"
	"github.com/blinklabs-io/xdrjson/xdr"
	stellarxdr "github.com/stellar/go/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func encodeU32(t *testing.T, v uint32) []byte {
	t.Helper()
	u32 := stellarxdr.Uint32(v)
	scVal := stellarxdr.ScVal{Type: stellarxdr.ScValTypeScvU32, U32: &u32}
	data, err := scVal.MarshalBinary()
	require.NoError(t, err)
	return data
}

func requireU32(t *testing.T, decoded value.Value, expected uint32) {
	t.Helper()
	require.Equal(t, value.KindObject, decoded.Kind(), decoded.String())
	u32, ok := decoded.Get("U32")
	require.True(t, ok, decoded.String())
	assert.Equal(t, fmt.Sprint(expected), fmt.Sprint(u32.ToAny()))
}

func TestNewIsIdempotent(t *testing.T) {
	assert.Same(t, stellar.New(), stellar.New())
}

func TestHasEveryTypeName(t *testing.T) {
	codec := stellar.New()
	for _, name := range xdr.TypeNames() {
		assert.True(t, codec.Has(name), name)
	}
	assert.False(t, codec.Has("NotARealType"))
}

func TestDecodeScVal(t *testing.T) {
	data := encodeU32(t, 7)
	codec := stellar.New()
	decoded, err := codec.Decode(
		xdr.ScVal,
		base64.StdEncoding.EncodeToString(data),
		xdr.FormatBase64,
	)
	require.NoError(t, err)
	requireU32(t, decoded, 7)
	// Same bytes in hex
	decoded, err = codec.Decode(xdr.ScVal, hex.EncodeToString(data), xdr.FormatHex)
	require.NoError(t, err)
	requireU32(t, decoded, 7)
}

func TestDecodeErrors(t *testing.T) {
	codec := stellar.New()
	data := encodeU32(t, 7)
	testDefs := []struct {
		name     xdr.TypeName
		encoded  string
		expected error
	}{
		{
			name:     "NotARealType",
			encoded:  base64.StdEncoding.EncodeToString(data),
			expected: xdr.ErrUnknownType,
		},
		{
			name:     xdr.TransactionEnvelope,
			encoded:  "not-valid-base64-xdr",
			expected: xdr.ErrDecodeFailure,
		},
		{
			// Truncated
			name:     xdr.ScVal,
			encoded:  base64.StdEncoding.EncodeToString(data[:6]),
			expected: xdr.ErrDecodeFailure,
		},
		{
			// Trailing bytes
			name:     xdr.ScVal,
			encoded:  base64.StdEncoding.EncodeToString(append(data, 0, 0, 0, 0)),
			expected: xdr.ErrDecodeFailure,
		},
	}
	for _, testDef := range testDefs {
		_, err := codec.Decode(testDef.name, testDef.encoded, xdr.FormatBase64)
		assert.ErrorIs(t, err, testDef.expected, "%s %s", testDef.name, testDef.encoded)
	}
}

func TestGuess(t *testing.T) {
	codec := stellar.New()
	encoded := base64.StdEncoding.EncodeToString(encodeU32(t, 42))
	names, err := codec.Guess(encoded)
	require.NoError(t, err)
	assert.Contains(t, names, xdr.ScVal)
	assert.NotContains(t, names, xdr.TransactionEnvelope)
}

func TestGuessFailure(t *testing.T) {
	codec := stellar.New()
	for _, encoded := range []string{"", "hello world", "abc", "!!!!"} {
		_, err := codec.Guess(encoded)
		assert.ErrorIs(t, err, xdr.ErrGuessFailure, encoded)
	}
}

func TestDecodeGeneric(t *testing.T) {
	codec := stellar.New()
	encoded := base64.StdEncoding.EncodeToString(encodeU32(t, 9))
	jsonData, err := codec.DecodeGeneric(xdr.ScVal, encoded)
	require.NoError(t, err)
	decoded, err := value.Parse(jsonData)
	require.NoError(t, err)
	requireU32(t, decoded, 9)
}
