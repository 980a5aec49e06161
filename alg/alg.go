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

// Package alg enumerates the JWS signature algorithms supported by this
// module. Each family (RSA, ECDSA, EdDSA) has its own closed set of
// identifiers; names are the canonical JOSE wire names and are matched
// case-sensitively, never normalized.
package alg

import (
	"crypto"
	"errors"
)

// ErrUnsupportedAlgorithm is returned when a name does not belong to the
// catalog. There is no fallback algorithm.
var ErrUnsupportedAlgorithm = errors.New("unsupported algorithm")

// Algorithm is implemented by every member of the catalog.
type Algorithm interface {
	// Name returns the canonical JOSE name, e.g. "RS256", "ES384", "EdDSA".
	Name() string

	// Digest returns the hash used over the signing input. EdDSA signs the
	// message directly and returns crypto.Hash(0).
	Digest() crypto.Hash
}

// FromName resolves a canonical name against the whole catalog.
func FromName(name string) (Algorithm, error) {
	if a, err := RSAFromName(name); err == nil {
		return a, nil
	}
	if a, err := ECDSAFromName(name); err == nil {
		return a, nil
	}
	if a, err := EdDSAFromName(name); err == nil {
		return a, nil
	}
	return nil, ErrUnsupportedAlgorithm
}

// Names returns the canonical names of every catalog member.
func Names() []string {
	return []string{
		"RS256", "RS384", "RS512",
		"PS256", "PS384", "PS512",
		"ES256", "ES384", "ES512",
		"EdDSA",
	}
}
