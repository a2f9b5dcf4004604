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
	"encoding/base64"
	"encoding/hex"
	"fmt"
)

// Format is the text encoding wrapped around the binary XDR
type Format string

const (
	FormatBase64 Format = "base64"
	FormatHex    Format = "hex"
)

// Decode returns the binary XDR carried by the encoded string
func (f Format) Decode(encoded string) ([]byte, error) {
	switch f {
	case FormatBase64, "":
		return base64.StdEncoding.DecodeString(encoded)
	case FormatHex:
		return hex.DecodeString(encoded)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
	}
}

// Encode wraps binary XDR in the format's text encoding
func (f Format) Encode(data []byte) (string, error) {
	switch f {
	case FormatBase64, "":
		return base64.StdEncoding.EncodeToString(data), nil
	case FormatHex:
		return hex.EncodeToString(data), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f))
	}
}

// Valid returns true for the supported formats
func (f Format) Valid() bool {
	return f == FormatBase64 || f == FormatHex
}
