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

package alg

import "crypto"

// EdDSAAlgorithm identifies an Edwards-curve signature algorithm. The only
// member is EdDSA over Ed25519; the JOSE name does not encode the curve,
// the JWK "crv" field does.
type EdDSAAlgorithm int

const EdDSA EdDSAAlgorithm = iota

func (EdDSAAlgorithm) Name() string { return "EdDSA" }

// Digest returns crypto.Hash(0): Ed25519 signs the message directly, there
// is no caller-visible prehash.
func (EdDSAAlgorithm) Digest() crypto.Hash { return crypto.Hash(0) }

// CurveName returns the JOSE "crv" value.
func (EdDSAAlgorithm) CurveName() string { return "Ed25519" }

// EdDSAFromName resolves a canonical name within the EdDSA family only.
func EdDSAFromName(name string) (EdDSAAlgorithm, error) {
	if name == "EdDSA" {
		return EdDSA, nil
	}
	return 0, ErrUnsupportedAlgorithm
}
