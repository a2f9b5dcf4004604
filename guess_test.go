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
	"errors"
	"testing"

	"github.com/blinklabs-io/xdrjson"
	"github.com/blinklabs-io/xdrjson/internal/test"
	"github.com/blinklabs-io/xdrjson/value"
	"github.com/blinklabs-io/xdrjson/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGuessDecoder(
	t *testing.T,
	oracle xdr.Oracle,
) (*xdrjson.GuessDecoder, *xdrjson.Collector) {
	t.Helper()
	collector := &xdrjson.Collector{}
	dec, err := xdrjson.NewGuessDecoder(
		oracle,
		xdrjson.WithDiagnosticSink(collector.Sink()),
	)
	require.NoError(t, err)
	return dec, collector
}

func TestNewGuessDecoderNilOracle(t *testing.T) {
	_, err := xdrjson.NewGuessDecoder(nil)
	assert.ErrorIs(t, err, xdrjson.ErrNilOracle)
}

func TestDecodeAll(t *testing.T) {
	dec, collector := newTestGuessDecoder(t, &test.Oracle{})
	root := value.MustParse(`{
		"a": "ok:ScVal:v",
		"b": ["plain", "ok:LedgerKey:k"],
		"n": 1,
		"flag": false,
		"empty": ""
	}`)
	expected := value.Object(map[string]value.Value{
		"a": test.Tagged(xdr.ScVal, "v"),
		"b": value.Array(
			value.String("plain"),
			test.Tagged(xdr.LedgerKey, "k"),
		),
		"n":     value.Int(1),
		"flag":  value.Bool(false),
		"empty": value.String(""),
	})
	decoded := dec.DecodeAll(root)
	assertValue(t, expected, decoded)
	assert.True(t, value.PreservesShape(root, decoded))
	diags := collector.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, xdrjson.DiagnosticGuessFailure, diags[0].Kind)
	assert.Equal(t, "b", diags[0].Key)
	assert.Empty(t, diags[0].Type)
	assert.ErrorIs(t, diags[0].Err, xdr.ErrGuessFailure)
}

func TestDecodeAllNullAndScalarRoots(t *testing.T) {
	dec, collector := newTestGuessDecoder(t, &test.Oracle{})
	assert.True(t, dec.DecodeAll(value.Null()).IsNull())
	assertValue(t, value.Int(42), dec.DecodeAll(value.Int(42)))
	assertValue(
		t,
		test.Tagged(xdr.ScVal, "root"),
		dec.DecodeAll(value.String("ok:ScVal:root")),
	)
	assert.Empty(t, collector.Diagnostics())
}

func TestDecodeAllDoesNotRewalkDecoded(t *testing.T) {
	dec, collector := newTestGuessDecoder(t, &test.Oracle{})
	root := value.MustParse(`["ok:ScVal:ok:ScVal:z"]`)
	// The decoded object carries a string the oracle would accept
	expected := value.Array(test.Tagged(xdr.ScVal, "ok:ScVal:z"))
	assertValue(t, expected, dec.DecodeAll(root))
	assert.Empty(t, collector.Diagnostics())
}

func TestDecodeAllUsesFirstGuess(t *testing.T) {
	dec, collector := newTestGuessDecoder(t, &test.Oracle{})
	// The oracle offers Bogus then ScVal, only Bogus is tried
	root := value.MustParse(`{"x": "ok:Bogus:x"}`)
	assertValue(t, root, dec.DecodeAll(root))
	diags := collector.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, xdrjson.DiagnosticUnknownType, diags[0].Kind)
	assert.Equal(t, xdr.TypeName("Bogus"), diags[0].Type)
	assert.ErrorIs(t, diags[0].Err, xdr.ErrUnknownType)
}

func TestDecodeAllOracleFailures(t *testing.T) {
	testDefs := []struct {
		name      string
		oracle    *test.Oracle
		kind      xdrjson.DiagnosticKind
		errTarget error
	}{
		{
			name: "EmptyGuess",
			oracle: &test.Oracle{
				GuessFunc: func(string) ([]xdr.TypeName, error) {
					return nil, nil
				},
			},
			kind:      xdrjson.DiagnosticGuessFailure,
			errTarget: xdr.ErrGuessFailure,
		},
		{
			name: "GuessError",
			oracle: &test.Oracle{
				GuessFunc: func(string) ([]xdr.TypeName, error) {
					return nil, errors.New("oracle offline")
				},
			},
			kind:      xdrjson.DiagnosticGuessFailure,
			errTarget: xdr.ErrGuessFailure,
		},
		{
			name: "GuessPanic",
			oracle: &test.Oracle{
				GuessFunc: func(string) ([]xdr.TypeName, error) {
					panic("oracle exploded")
				},
			},
			kind:      xdrjson.DiagnosticGuessFailure,
			errTarget: xdr.ErrGuessFailure,
		},
		{
			name: "DecodePanic",
			oracle: &test.Oracle{
				Registry: test.Registry{
					xdr.ScVal: test.PanickingDecoder,
				},
			},
			kind:      xdrjson.DiagnosticDecodeFailure,
			errTarget: xdr.ErrDecodeFailure,
		},
		{
			name: "DecodeRejected",
			oracle: &test.Oracle{
				Registry: test.Registry{
					xdr.ScVal: func(string, xdr.Format) (value.Value, error) {
						return value.Value{}, errors.New("short buffer")
					},
				},
			},
			kind:      xdrjson.DiagnosticDecodeFailure,
			errTarget: xdr.ErrDecodeFailure,
		},
	}
	for _, testDef := range testDefs {
		t.Run(testDef.name, func(t *testing.T) {
			dec, collector := newTestGuessDecoder(t, testDef.oracle)
			root := value.MustParse(`{"value": "ok:ScVal:v"}`)
			assertValue(t, root, dec.DecodeAll(root))
			diags := collector.Diagnostics()
			require.Len(t, diags, 1)
			assert.Equal(t, testDef.kind, diags[0].Kind)
			assert.Equal(t, "value", diags[0].Key)
			assert.ErrorIs(t, diags[0].Err, testDef.errTarget)
		})
	}
}

type badJSONOracle struct{}

func (badJSONOracle) Guess(string) ([]xdr.TypeName, error) {
	return []xdr.TypeName{xdr.ScVal}, nil
}

func (badJSONOracle) DecodeGeneric(xdr.TypeName, string) ([]byte, error) {
	return []byte(`{"truncated":`), nil
}

func TestDecodeAllInvalidOracleJSON(t *testing.T) {
	dec, collector := newTestGuessDecoder(t, badJSONOracle{})
	assertValue(t, value.String("abc"), dec.DecodeAll(value.String("abc")))
	diags := collector.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, xdrjson.DiagnosticDecodeFailure, diags[0].Kind)
	assert.Equal(t, xdr.ScVal, diags[0].Type)
	assert.ErrorIs(t, diags[0].Err, xdr.ErrDecodeFailure)
}

func TestDecodeAllWithSink(t *testing.T) {
	dec, collector := newTestGuessDecoder(t, &test.Oracle{})
	perCall := &xdrjson.Collector{}
	dec.DecodeAllWithSink(value.String("plain"), perCall.Sink())
	assert.Len(t, perCall.Diagnostics(), 1)
	assert.Empty(t, collector.Diagnostics())
	assertValue(
		t,
		value.String("plain"),
		dec.DecodeAllWithSink(value.String("plain"), nil),
	)
}
