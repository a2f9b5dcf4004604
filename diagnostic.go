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
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/blinklabs-io/xdrjson/xdr"
)

// DiagnosticKind classifies why a string was left undecoded
type DiagnosticKind int

const (
	// DiagnosticDecodeFailure means the decoder rejected the input
	DiagnosticDecodeFailure DiagnosticKind = iota
	// DiagnosticUnknownType means the type name has no registry entry
	DiagnosticUnknownType
	// DiagnosticGuessFailure means the oracle could not classify the input
	DiagnosticGuessFailure
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagnosticDecodeFailure:
		return "DecodeFailure"
	case DiagnosticUnknownType:
		return "UnknownType"
	case DiagnosticGuessFailure:
		return "GuessFailure"
	default:
		return "Unknown"
	}
}

// Diagnostic describes a single string that was left undecoded
type Diagnostic struct {
	Kind DiagnosticKind
	// Field key the string was found under. Empty for DecodeOne and for array
	// elements visited without a key.
	Key string
	// Type the string was decoded as. Empty when no type was resolved.
	Type xdr.TypeName
	Err  error
}

// DiagnosticSink receives diagnostics. It is called synchronously from the
// traversal and must not block.
type DiagnosticSink func(Diagnostic)

// LogSink returns a DiagnosticSink that logs to the provided logger. Guess
// failures are expected for every plain string in inferred mode and are
// logged at debug level; everything else is a warning.
func LogSink(logger *slog.Logger) DiagnosticSink {
	if logger == nil {
		logger = slog.Default()
	}
	return func(d Diagnostic) {
		level := slog.LevelWarn
		if d.Kind == DiagnosticGuessFailure {
			level = slog.LevelDebug
		}
		logger.LogAttrs(
			context.Background(),
			level,
			"failed to decode XDR field",
			slog.String("kind", d.Kind.String()),
			slog.String("key", d.Key),
			slog.String("type", string(d.Type)),
			slog.Any("error", d.Err),
		)
	}
}

// DiscardSink drops all diagnostics
func DiscardSink(Diagnostic) {}

// Collector accumulates diagnostics. It is safe for concurrent use, so one
// Collector can be shared by decoders used from several goroutines.
type Collector struct {
	mu    sync.Mutex
	items []Diagnostic
}

// Sink returns a DiagnosticSink that appends to the Collector
func (c *Collector) Sink() DiagnosticSink {
	return func(d Diagnostic) {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.items = append(c.items, d)
	}
}

// Diagnostics returns a copy of the collected diagnostics
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.items)
}

// Reset drops all collected diagnostics
func (c *Collector) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}
