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

// Package keys implements the asymmetric signing and verification keys
// behind JWS payloads: RSA (PKCS#1 v1.5 and PSS), ECDSA over the NIST
// curves, and Ed25519. Every key is bound to one algorithm at
// construction (the binding is a usage choice, not part of the encoded
// key material), except RSAAnyPublicKey which resolves the algorithm per
// verify call. All key types are immutable after construction and safe
// for concurrent use.
package keys

import (
	"errors"

	"github.com/jwskeys/jwskeys/jwks"
)

var (
	// ErrUnsupportedOrInvalidKey covers malformed PEM, key material of the
	// wrong family for the requested operation, an RSA modulus below the
	// 2048-bit floor at generation, and unknown algorithm names during
	// construction-time binding.
	ErrUnsupportedOrInvalidKey = errors.New("unsupported or invalid key")

	// ErrVerification is the single failure returned by Verify. It covers
	// an algorithm-name mismatch, an unresolvable algorithm name on an
	// any-algorithm key, and a genuine cryptographic failure alike, so the
	// error gives an attacker no signal about which check failed.
	ErrVerification = errors.New("verification error")
)

// SigningKey produces signatures over opaque byte payloads (a JWT signing
// input, in practice) under the key's bound algorithm.
type SigningKey interface {
	// Alg returns the canonical name of the bound algorithm.
	Alg() string

	// Sign signs payload. Deterministic for RS* and EdDSA, randomized for
	// PS* and ES*.
	Sign(payload []byte) ([]byte, error)

	// PublicJWK exports the public counterpart as a JWK record with
	// use="sig" and alg set to the bound algorithm.
	PublicJWK() *jwks.Jwk
}

var (
	_ SigningKey = (*RSAPrivateKey)(nil)
	_ SigningKey = (*ECDSAPrivateKey)(nil)
	_ SigningKey = (*Ed25519PrivateKey)(nil)

	_ VerificationKey = (*RSAPrivateKey)(nil)
	_ VerificationKey = (*RSAPublicKey)(nil)
	_ VerificationKey = (*RSAAnyPublicKey)(nil)
	_ VerificationKey = (*ECDSAPrivateKey)(nil)
	_ VerificationKey = (*ECDSAPublicKey)(nil)
	_ VerificationKey = (*Ed25519PrivateKey)(nil)
	_ VerificationKey = (*Ed25519PublicKey)(nil)
)

// VerificationKey checks signatures over opaque byte payloads. Every
// implementation validates the caller's claimed algorithm name against
// its own binding before any cryptographic work runs.
type VerificationKey interface {
	// Verify checks sig over payload. alg is the algorithm name claimed by
	// the token being checked (typically the JOSE header "alg" value); any
	// mismatch with the key's binding fails with ErrVerification.
	Verify(payload, sig []byte, alg string) error

	// PublicJWK exports the key as a JWK record.
	PublicJWK() *jwks.Jwk
}
