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

package value_test

import (
	"encoding/hex"
	"testing"

	"github.com/blinklabs-io/xdrjson/internal/test"
	"github.com/blinklabs-io/xdrjson/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCborRoundTrip(t *testing.T) {
	v := value.MustParse(`{
		"small": 1,
		"negative": -5,
		"fraction": 1.5,
		"big": 123456789012345678901234567890,
		"list": ["x", true, null, []],
		"nested": {"a": {}}
	}`)
	cborData, err := v.MarshalCBOR()
	require.NoError(t, err)
	var out value.Value
	require.NoError(t, out.UnmarshalCBOR(cborData))
	assert.True(t, value.Equal(v, out), "got %s", out)
}

func TestCborEncodingIsDeterministic(t *testing.T) {
	v := value.MustParse(`{"b": 2, "a": 1}`)
	cborData, err := v.MarshalCBOR()
	require.NoError(t, err)
	assert.Equal(t, "a2616101616202", hex.EncodeToString(cborData))
}

func TestCborUnmarshalErrors(t *testing.T) {
	testDefs := []string{
		// Truncated list
		"81",
		// Integer map key
		"a10102",
		// Trailing data
		"0101",
	}
	for _, cborHex := range testDefs {
		cborData := test.MustDecodeHex(cborHex)
		var out value.Value
		assert.Error(t, out.UnmarshalCBOR(cborData), cborHex)
	}
}

func TestCborByteStringBecomesBase64(t *testing.T) {
	cborData := test.MustDecodeHex("420102")
	var out value.Value
	require.NoError(t, out.UnmarshalCBOR(cborData))
	assert.Equal(t, `"AQI="`, out.String())
}
