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

package xdrjson_test

import (
	"testing"

	"github.com/blinklabs-io/xdrjson"
	"github.com/blinklabs-io/xdrjson/internal/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSON(t *testing.T) {
	dec, _ := newTestDecoder(t)
	out, err := dec.DecodeJSON(
		[]byte(`{"id": 1, "result": {"entries": [{"key": "ok:k", "xdr": "ok:x"}]}}`),
		xdrjson.ContextGetLedgerEntries,
	)
	require.NoError(t, err)
	assert.JSONEq(
		t,
		`{"id": 1, "result": {"entries": [{
			"key": {"type": "LedgerKey", "data": "k", "format": "base64"},
			"xdr": {"type": "LedgerEntryData", "data": "x", "format": "base64"}
		}]}}`,
		string(out),
	)
}

func TestDecodeJSONLargeIntegers(t *testing.T) {
	dec, _ := newTestDecoder(t)
	out, err := dec.DecodeJSON(
		[]byte(`{"ledger": 18446744073709551615, "fee": -9223372036854775808}`),
		xdrjson.ContextNone,
	)
	require.NoError(t, err)
	assert.Equal(
		t,
		`{"fee":-9223372036854775808,"ledger":18446744073709551615}`,
		string(out),
	)
}

func TestDecodeJSONMalformed(t *testing.T) {
	dec, _ := newTestDecoder(t)
	_, err := dec.DecodeJSON([]byte(`{"envelopeXdr":`), xdrjson.ContextNone)
	assert.Error(t, err)
	guess, _ := newTestGuessDecoder(t, &test.Oracle{})
	_, err = guess.DecodeAllJSON([]byte(`[1, 2`))
	assert.Error(t, err)
}

func TestDecodeAllJSON(t *testing.T) {
	guess, _ := newTestGuessDecoder(t, &test.Oracle{})
	out, err := guess.DecodeAllJSON([]byte(`{"v": "ok:ScVal:abc", "s": "text"}`))
	require.NoError(t, err)
	assert.JSONEq(
		t,
		`{"v": {"type": "ScVal", "data": "abc", "format": "base64"}, "s": "text"}`,
		string(out),
	)
}
