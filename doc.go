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

// Package xdrjson decodes base64 XDR fields embedded in Stellar RPC JSON
// responses.
//
// Two strategies are provided. Decoder walks a value and decodes strings found
// under a fixed set of field keys (envelopeXdr, resultMetaXdr, topic, ...),
// with the type of the "xdr" key selected by a per-call Context. GuessDecoder
// ignores keys and asks an oracle to classify every string it finds.
//
// Neither strategy fails because of a single field: a string that cannot be
// decoded is kept as is and reported as a Diagnostic to the configured sink,
// which logs via log/slog by default. The container structure of the input is
// always preserved; only string leaves change.
//
// The XDR codec is supplied through the xdr.Registry and xdr.Oracle
// interfaces. Package stellar implements both on top of
// github.com/stellar/go/xdr.
package xdrjson
