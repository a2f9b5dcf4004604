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

// Package stellar provides the XDR registry and type-guessing oracle backed by
// github.com/stellar/go/xdr.
//
// Call New once during startup (or lazily; it is idempotent) and pass the
// returned *Codec to xdrjson.NewDecoder and xdrjson.NewGuessDecoder.
//
//	codec := stellar.New()
//	dec, err := xdrjson.NewDecoder(codec)
//	if err != nil {
//	    return err
//	}
//	decoded := dec.Decode(response, xdrjson.ContextGetLedgerEntries)
package stellar
