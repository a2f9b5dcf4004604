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

import (
	"errors"
	"fmt"
)

var (
	// ErrDecodeFailure is matched by every error where a decoder rejected its input
	ErrDecodeFailure = errors.New("decode failure")
	// ErrUnknownType is returned for a type name with no registry entry
	ErrUnknownType = errors.New("unknown XDR type")
	// ErrGuessFailure is returned when the oracle cannot classify a string
	ErrGuessFailure = errors.New("cannot guess XDR type")

	ErrUnsupportedFormat = errors.New("unsupported format")
)

// DecodeError is returned when a decoder for a known type rejects its input
type DecodeError struct {
	Type TypeName
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v", e.Type, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecodeFailure
}

// NewDecodeError wraps err as a decode failure for the given type. An err that
// is already a *DecodeError is returned unchanged.
func NewDecodeError(name TypeName, err error) error {
	var decodeErr *DecodeError
	if errors.As(err, &decodeErr) {
		return err
	}
	return &DecodeError{Type: name, Err: err}
}
