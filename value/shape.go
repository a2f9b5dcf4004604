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

package value

// Equal reports whether a and b hold the same JSON value. Numbers are compared
// by their literal text.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindNumber, KindString:
		return a.s == b.s
	case KindArray:
		if len(a.items) != len(b.items) {
			return false
		}
		for idx := range a.items {
			if !Equal(a.items[idx], b.items[idx]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.fields) != len(b.fields) {
			return false
		}
		for key, aItem := range a.fields {
			bItem, ok := b.fields[key]
			if !ok || !Equal(aItem, bItem) {
				return false
			}
		}
		return true
	}
	return false
}

// PreservesShape reports whether out keeps the container structure of in.
// Every array or object in in must appear at the same position in out with the
// same kind, the same array length and the same object key set. Leaves of in
// may have been replaced by anything, including containers.
func PreservesShape(in, out Value) bool {
	switch in.kind {
	case KindArray:
		if out.kind != KindArray || len(in.items) != len(out.items) {
			return false
		}
		for idx := range in.items {
			if !PreservesShape(in.items[idx], out.items[idx]) {
				return false
			}
		}
		return true
	case KindObject:
		if out.kind != KindObject || len(in.fields) != len(out.fields) {
			return false
		}
		for key, inItem := range in.fields {
			outItem, ok := out.fields[key]
			if !ok || !PreservesShape(inItem, outItem) {
				return false
			}
		}
		return true
	default:
		return true
	}
}
