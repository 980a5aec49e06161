// Copyright 2026 Jwskeys
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
//
// SPDX-License-Identifier: Apache-2.0

package util

import (
	"encoding/base64"
)

var rawURLEncoding = base64.RawURLEncoding.Strict()

// Base64URLEncode encodes binary JWK field values: base64url, no padding.
func Base64URLEncode(decoded []byte) string {
	return rawURLEncoding.EncodeToString(decoded)
}

// Base64URLDecode decodes a JWK field value. Padded or otherwise
// non-canonical input is an error.
func Base64URLDecode(encoded string) ([]byte, error) {
	return rawURLEncoding.DecodeString(encoded)
}
