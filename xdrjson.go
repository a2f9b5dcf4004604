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
	"github.com/blinklabs-io/xdrjson/xdr"
)

// Context selects the binding of the context-dependent "xdr" key for a single
// Decode call
type Context string

const (
	ContextNone                Context = ""
	ContextGetLedgerEntries    Context = "getLedgerEntries"
	ContextSimulateTransaction Context = "simulateTransaction"
)

// ContextKey is the field key whose type depends on the Context. It is only
// present in the field table for contexts that have a binding.
const ContextKey = "xdr"

// DefaultFieldBindings returns the field keys that carry encoded XDR in
// Stellar RPC responses, with their types
func DefaultFieldBindings() map[string]xdr.TypeName {
	return map[string]xdr.TypeName{
		"envelopeXdr":          xdr.TransactionEnvelope,
		"resultXdr":            xdr.TransactionResult,
		"resultMetaXdr":        xdr.TransactionMeta,
		"diagnosticEventsXdr":  xdr.DiagnosticEvent,
		"transactionEventsXdr": xdr.TransactionEvent,
		"contractEventsXdr":    xdr.ContractEvent,
		"topic":                xdr.ScVal,
		"value":                xdr.ScVal,
		"key":                  xdr.LedgerKey,
		"headerXdr":            xdr.LedgerHeaderHistoryEntry,
		"metadataXdr":          xdr.LedgerCloseMeta,
		"transactionData":      xdr.SorobanTransactionData,
		// getTransactions and getEvents use this key for transaction events.
		// Override with WithFieldBinding for RPC versions that return
		// diagnostic events here.
		"events": xdr.TransactionEvent,
	}
}

// DefaultContextBindings returns the type of the "xdr" key for each
// recognized Context
func DefaultContextBindings() map[Context]xdr.TypeName {
	return map[Context]xdr.TypeName{
		ContextGetLedgerEntries:    xdr.LedgerEntryData,
		ContextSimulateTransaction: xdr.ConfigSettingContractHistoricalDataV0,
	}
}
