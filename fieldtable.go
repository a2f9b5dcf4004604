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

	"github.com/blinklabs-io/xdrjson/xdr"
	"github.com/jinzhu/copier"
)

var errBindingsNotCopied = errors.New("bindings not copied")

// fieldTable maps field keys to the XDR type they carry
type fieldTable struct {
	Bindings map[string]xdr.TypeName
}

// lookup returns the binding for a key
func (f fieldTable) lookup(key string) (xdr.TypeName, bool) {
	name, ok := f.Bindings[key]
	return name, ok
}

// buildFieldTable returns a new table for a single call: a deep copy of the
// base table with the context key bound for ctx, or absent if ctx has no
// binding
func buildFieldTable(
	base fieldTable,
	contextBindings map[Context]xdr.TypeName,
	ctx Context,
) (fieldTable, error) {
	var ret fieldTable
	if err := copier.CopyWithOption(&ret, &base, copier.Option{DeepCopy: true}); err != nil {
		return fieldTable{}, fmt.Errorf("copy field table: %w", err)
	}
	if ret.Bindings == nil {
		if len(base.Bindings) > 0 {
			return fieldTable{}, fmt.Errorf("copy field table: %w", errBindingsNotCopied)
		}
		ret.Bindings = make(map[string]xdr.TypeName)
	}
	delete(ret.Bindings, ContextKey)
	if name, ok := contextBindings[ctx]; ok {
		ret.Bindings[ContextKey] = name
	}
	return ret, nil
}
