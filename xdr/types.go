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

package xdr

// TypeName names an XDR type from the closed set that decoders are bound to
type TypeName string

const (
	TransactionEnvelope                   TypeName = "TransactionEnvelope"
	TransactionResult                     TypeName = "TransactionResult"
	TransactionMeta                       TypeName = "TransactionMeta"
	DiagnosticEvent                       TypeName = "DiagnosticEvent"
	TransactionEvent                      TypeName = "TransactionEvent"
	ContractEvent                         TypeName = "ContractEvent"
	ScVal                                 TypeName = "ScVal"
	LedgerKey                             TypeName = "LedgerKey"
	LedgerEntryData                       TypeName = "LedgerEntryData"
	LedgerHeaderHistoryEntry              TypeName = "LedgerHeaderHistoryEntry"
	LedgerCloseMeta                       TypeName = "LedgerCloseMeta"
	SorobanTransactionData                TypeName = "SorobanTransactionData"
	ConfigSettingContractHistoricalDataV0 TypeName = "ConfigSettingContractHistoricalDataV0"
)

var typeNames = []TypeName{
	TransactionEnvelope,
	TransactionResult,
	TransactionMeta,
	DiagnosticEvent,
	TransactionEvent,
	ContractEvent,
	ScVal,
	LedgerKey,
	LedgerEntryData,
	LedgerHeaderHistoryEntry,
	LedgerCloseMeta,
	SorobanTransactionData,
	ConfigSettingContractHistoricalDataV0,
}

// TypeNames returns every known type name in a fixed order
func TypeNames() []TypeName {
	ret := make([]TypeName, len(typeNames))
	copy(ret, typeNames)
	return ret
}

// Valid returns true if the name is one of the known type names
func (t TypeName) Valid() bool {
	for _, name := range typeNames {
		if name == t {
			return true
		}
	}
	return false
}

func (t TypeName) String() string {
	return string(t)
}
