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

package xdrjson

import (
	"errors"
	"fmt"

	"github.com/blinklabs-io/xdrjson/value"
	"github.com/blinklabs-io/xdrjson/xdr"
)

var ErrNilRegistry = errors.New("registry must not be nil")

// ErrNoContextBinding is returned when a binding is configured for ContextNone.
// Without a call context the "xdr" key is never decoded.
var ErrNoContextBinding = errors.New("no binding allowed without a call context")

// Decoder replaces encoded XDR strings found under known field keys with their
// decoded form. It is safe for concurrent use.
type Decoder struct {
	registry        xdr.Registry
	format          xdr.Format
	sink            DiagnosticSink
	table           fieldTable
	contextBindings map[Context]xdr.TypeName
}

// NewDecoder returns a Decoder using the provided registry. Every configured
// binding must name a type the registry knows.
func NewDecoder(registry xdr.Registry, opts ...OptionFunc) (*Decoder, error) {
	if registry == nil {
		return nil, ErrNilRegistry
	}
	c := newConfig(opts)
	if !c.format.Valid() {
		return nil, fmt.Errorf("%w: %q", xdr.ErrUnsupportedFormat, string(c.format))
	}
	if _, ok := c.fieldBindings[ContextKey]; ok {
		return nil, fmt.Errorf(
			"field %q depends on the call context, use WithContextBinding",
			ContextKey,
		)
	}
	for key, name := range c.fieldBindings {
		if !registry.Has(name) {
			return nil, fmt.Errorf("field %q: %w: %s", key, xdr.ErrUnknownType, name)
		}
	}
	for ctx, name := range c.contextBindings {
		if ctx == ContextNone {
			return nil, fmt.Errorf(
				"context binding for %q: %w",
				ContextKey,
				ErrNoContextBinding,
			)
		}
		if !registry.Has(name) {
			return nil, fmt.Errorf("context %q: %w: %s", ctx, xdr.ErrUnknownType, name)
		}
	}
	d := &Decoder{
		registry:        registry,
		format:          c.format,
		sink:            c.sink,
		table:           fieldTable{Bindings: c.fieldBindings},
		contextBindings: c.contextBindings,
	}
	// The table is copied on every call
	if _, err := buildFieldTable(d.table, d.contextBindings, ContextNone); err != nil {
		return nil, err
	}
	return d, nil
}

// Decode returns a copy of root with every encoded string under a known field
// key replaced by its decoded value. Strings that fail to decode are kept and
// reported to the decoder's diagnostic sink. The result always has the same
// container structure as root.
func (d *Decoder) Decode(root value.Value, ctx Context) value.Value {
	return d.DecodeWithSink(root, ctx, d.sink)
}

// DecodeWithSink is like Decode but sends diagnostics for this call to sink
func (d *Decoder) DecodeWithSink(
	root value.Value,
	ctx Context,
	sink DiagnosticSink,
) value.Value {
	if root.IsNull() {
		return root
	}
	if sink == nil {
		sink = DiscardSink
	}
	table, err := buildFieldTable(d.table, d.contextBindings, ctx)
	if err != nil {
		// Nothing can be looked up, so nothing is decoded
		sink(Diagnostic{
			Kind: DiagnosticDecodeFailure,
			Err:  err,
		})
		return root
	}
	w := &keyedWalker{
		decoder: d,
		table:   table,
		sink:    sink,
	}
	return w.walk(root)
}

// DecodeOne decodes a single encoded string as the named type. On failure the
// original string is returned and a diagnostic is reported.
func (d *Decoder) DecodeOne(encoded string, name xdr.TypeName) value.Value {
	return decodeString(d.registry, d.format, d.sink, "", encoded, name)
}

// FieldBindings returns a copy of the field table that Decode uses for ctx
func (d *Decoder) FieldBindings(ctx Context) (map[string]xdr.TypeName, error) {
	table, err := buildFieldTable(d.table, d.contextBindings, ctx)
	if err != nil {
		return nil, err
	}
	return table.Bindings, nil
}

type keyedWalker struct {
	decoder *Decoder
	table   fieldTable
	sink    DiagnosticSink
}

// walk recurses structurally. Only object members are looked up in the field
// table, so array elements reached from here are never decoded directly.
func (w *keyedWalker) walk(v value.Value) value.Value {
	switch v.Kind() {
	case value.KindArray:
		items := v.Items()
		ret := make([]value.Value, len(items))
		for idx, item := range items {
			ret[idx] = w.walk(item)
		}
		return value.Array(ret...)
	case value.KindObject:
		fields := v.Fields()
		ret := make(map[string]value.Value, len(fields))
		for key, item := range fields {
			ret[key] = w.member(key, item)
		}
		return value.Object(ret)
	default:
		return v
	}
}

// member handles a value found under key
func (w *keyedWalker) member(key string, v value.Value) value.Value {
	name, ok := w.table.lookup(key)
	if !ok {
		return w.walk(v)
	}
	switch v.Kind() {
	case value.KindString:
		encoded, _ := v.AsString()
		return decodeString(
			w.decoder.registry,
			w.decoder.format,
			w.sink,
			key,
			encoded,
			name,
		)
	case value.KindArray:
		// Elements inherit the key: strings and nested arrays decode with the
		// same type, objects fall back to their own keys
		items := v.Items()
		ret := make([]value.Value, len(items))
		for idx, item := range items {
			ret[idx] = w.member(key, item)
		}
		return value.Array(ret...)
	case value.KindObject:
		return w.walk(v)
	default:
		return v
	}
}
