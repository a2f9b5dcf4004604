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

// Package xdr defines the boundary between the traversal decoders and an XDR
// codec: the closed set of type names, the text formats wrapped around binary
// XDR, the Registry and Oracle interfaces and the error taxonomy.
//
// The codec itself lives elsewhere; see package stellar for the implementation
// backed by github.com/stellar/go/xdr.
package xdr
