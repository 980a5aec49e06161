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

package keys

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"

	"github.com/jwskeys/jwskeys/alg"
	"github.com/jwskeys/jwskeys/jwks"
	"github.com/jwskeys/jwskeys/util"
)

// Ed25519PrivateKey is an Ed25519 key pair. EdDSA is the family's only
// algorithm, so the binding is implicit.
type Ed25519PrivateKey struct {
	key ed25519.PrivateKey
}

// GenerateEd25519Key generates a fresh key pair.
func GenerateEd25519Key() (*Ed25519PrivateKey, error) {
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generating Ed25519 key: %w", err)
	}
	return &Ed25519PrivateKey{key: key}, nil
}

// Ed25519PrivateKeyFromPEM imports a PKCS#8 private key. PEM blocks
// holding a different key family are rejected.
func Ed25519PrivateKeyFromPEM(pemBytes []byte) (*Ed25519PrivateKey, error) {
	parsed, err := parsePrivatePKCS8(pemBytes)
	if err != nil {
		return nil, err
	}
	key, ok := parsed.(ed25519.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an Ed25519 private key", ErrUnsupportedOrInvalidKey)
	}
	return &Ed25519PrivateKey{key: key}, nil
}

func (k *Ed25519PrivateKey) Alg() string { return alg.EdDSA.Name() }

// PrivatePEMPKCS8 exports the key pair for re-import.
func (k *Ed25519PrivateKey) PrivatePEMPKCS8() ([]byte, error) {
	return encodePrivatePKCS8(k.key)
}

// PublicPEM exports the public key as SubjectPublicKeyInfo.
func (k *Ed25519PrivateKey) PublicPEM() ([]byte, error) {
	return encodePublicPKIX(k.key.Public())
}

// X returns the raw 32-byte public key.
func (k *Ed25519PrivateKey) X() []byte {
	return k.key.Public().(ed25519.PublicKey)
}

// Public derives the public counterpart.
func (k *Ed25519PrivateKey) Public() *Ed25519PublicKey {
	return &Ed25519PublicKey{key: k.key.Public().(ed25519.PublicKey)}
}

// Sign signs payload directly; Ed25519 does not prehash.
func (k *Ed25519PrivateKey) Sign(payload []byte) ([]byte, error) {
	return ed25519.Sign(k.key, payload), nil
}

func (k *Ed25519PrivateKey) Verify(payload, sig []byte, algName string) error {
	return ed25519Verify(k.key.Public().(ed25519.PublicKey), payload, sig, algName)
}

func (k *Ed25519PrivateKey) PublicJWK() *jwks.Jwk {
	return ed25519JWK(k.X())
}

// Ed25519PublicKey verifies EdDSA signatures.
type Ed25519PublicKey struct {
	key ed25519.PublicKey
}

// Ed25519PublicKeyFromPEM imports a SubjectPublicKeyInfo public key.
func Ed25519PublicKeyFromPEM(pemBytes []byte) (*Ed25519PublicKey, error) {
	parsed, err := parsePublicPKIX(pemBytes)
	if err != nil {
		return nil, err
	}
	key, ok := parsed.(ed25519.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an Ed25519 public key", ErrUnsupportedOrInvalidKey)
	}
	return &Ed25519PublicKey{key: key}, nil
}

// Ed25519PublicKeyFromComponents builds the key from the raw 32-byte
// public value.
func Ed25519PublicKeyFromComponents(x []byte) (*Ed25519PublicKey, error) {
	if len(x) != ed25519.PublicKeySize {
		return nil, fmt.Errorf("%w: Ed25519 public key must be %d bytes",
			ErrUnsupportedOrInvalidKey, ed25519.PublicKeySize)
	}
	return &Ed25519PublicKey{key: ed25519.PublicKey(x)}, nil
}

func (k *Ed25519PublicKey) Alg() string { return alg.EdDSA.Name() }

// PublicPEM exports as SubjectPublicKeyInfo.
func (k *Ed25519PublicKey) PublicPEM() ([]byte, error) {
	return encodePublicPKIX(k.key)
}

// X returns the raw 32-byte public key.
func (k *Ed25519PublicKey) X() []byte { return k.key }

func (k *Ed25519PublicKey) Verify(payload, sig []byte, algName string) error {
	return ed25519Verify(k.key, payload, sig, algName)
}

func (k *Ed25519PublicKey) PublicJWK() *jwks.Jwk {
	return ed25519JWK(k.key)
}

func ed25519Verify(key ed25519.PublicKey, payload, sig []byte, algName string) error {
	if algName != alg.EdDSA.Name() {
		return ErrVerification
	}
	if len(sig) != ed25519.SignatureSize {
		return ErrVerification
	}
	if !ed25519.Verify(key, payload, sig) {
		return ErrVerification
	}
	return nil
}

func ed25519JWK(x []byte) *jwks.Jwk {
	return &jwks.Jwk{
		Kty: jwks.KtyOKP,
		Alg: alg.EdDSA.Name(),
		Use: jwks.UseSig,
		Crv: alg.EdDSA.CurveName(),
		X:   util.Base64URLEncode(x),
	}
}
