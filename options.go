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
	"log/slog"

	"github.com/blinklabs-io/xdrjson/xdr"
)

type config struct {
	logger          *slog.Logger
	sink            DiagnosticSink
	format          xdr.Format
	fieldBindings   map[string]xdr.TypeName
	contextBindings map[Context]xdr.TypeName
}

func newConfig(opts []OptionFunc) config {
	c := config{
		format:          xdr.FormatBase64,
		fieldBindings:   DefaultFieldBindings(),
		contextBindings: DefaultContextBindings(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	if c.sink == nil {
		c.sink = LogSink(c.logger)
	}
	return c
}

// OptionFunc configures a Decoder or GuessDecoder
type OptionFunc func(*config)

// WithLogger specifies the logger used by the default diagnostic sink
func WithLogger(logger *slog.Logger) OptionFunc {
	return func(c *config) {
		c.logger = logger
	}
}

// WithDiagnosticSink specifies where diagnostics for fields that could not be
// decoded are delivered. It replaces logging of diagnostics.
func WithDiagnosticSink(sink DiagnosticSink) OptionFunc {
	return func(c *config) {
		c.sink = sink
	}
}

// WithFormat specifies the text encoding of XDR fields. The default is base64.
// This has no effect on a GuessDecoder, which always uses base64.
func WithFormat(format xdr.Format) OptionFunc {
	return func(c *config) {
		c.format = format
	}
}

// WithFieldBinding binds a field key to an XDR type, replacing any existing
// binding for the key
func WithFieldBinding(key string, name xdr.TypeName) OptionFunc {
	return func(c *config) {
		c.fieldBindings[key] = name
	}
}

// WithoutFieldBinding removes a field key from the field table
func WithoutFieldBinding(key string) OptionFunc {
	return func(c *config) {
		delete(c.fieldBindings, key)
	}
}

// WithContextBinding binds the "xdr" key to an XDR type for the given context
func WithContextBinding(ctx Context, name xdr.TypeName) OptionFunc {
	return func(c *config) {
		c.contextBindings[ctx] = name
	}
}
