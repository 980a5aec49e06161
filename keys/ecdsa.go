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
	"crypto/ecdsa"
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/jwskeys/jwskeys/alg"
	"github.com/jwskeys/jwskeys/jwks"
	"github.com/jwskeys/jwskeys/util"
)

// ECDSAPrivateKey is an ECDSA key pair bound to one ECDSA algorithm. The
// algorithm fixes the curve, so unlike RSA there is no any-algorithm
// public key shape for this family.
type ECDSAPrivateKey struct {
	key       *ecdsa.PrivateKey
	algorithm alg.ECDSAAlgorithm
}

// GenerateECDSAKey generates a fresh key pair on the algorithm's curve.
func GenerateECDSAKey(algorithm alg.ECDSAAlgorithm) (*ECDSAPrivateKey, error) {
	key, err := ecdsa.GenerateKey(algorithm.Curve(), rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generating ECDSA key: %w", err)
	}
	return &ECDSAPrivateKey{key: key, algorithm: algorithm}, nil
}

// ECDSAPrivateKeyFromPEM imports a PKCS#8 private key and binds it to
// algorithm. The key must be on the algorithm's curve.
func ECDSAPrivateKeyFromPEM(pemBytes []byte, algorithm alg.ECDSAAlgorithm) (*ECDSAPrivateKey, error) {
	parsed, err := parsePrivatePKCS8(pemBytes)
	if err != nil {
		return nil, err
	}
	key, ok := parsed.(*ecdsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an ECDSA private key", ErrUnsupportedOrInvalidKey)
	}
	if key.Curve != algorithm.Curve() {
		return nil, fmt.Errorf("%w: key curve %s does not match %s",
			ErrUnsupportedOrInvalidKey, key.Curve.Params().Name, algorithm.Name())
	}
	return &ECDSAPrivateKey{key: key, algorithm: algorithm}, nil
}

func (k *ECDSAPrivateKey) Alg() string { return k.algorithm.Name() }

// PrivatePEMPKCS8 exports the key pair for re-import.
func (k *ECDSAPrivateKey) PrivatePEMPKCS8() ([]byte, error) {
	return encodePrivatePKCS8(k.key)
}

// PublicPEM exports the public key as SubjectPublicKeyInfo.
func (k *ECDSAPrivateKey) PublicPEM() ([]byte, error) {
	return encodePublicPKIX(&k.key.PublicKey)
}

// X returns the fixed-width big-endian x coordinate.
func (k *ECDSAPrivateKey) X() []byte {
	return util.LeftPad(k.key.X.Bytes(), k.algorithm.CoordinateSize())
}

// Y returns the fixed-width big-endian y coordinate.
func (k *ECDSAPrivateKey) Y() []byte {
	return util.LeftPad(k.key.Y.Bytes(), k.algorithm.CoordinateSize())
}

// Public derives the public counterpart bound to the same algorithm.
func (k *ECDSAPrivateKey) Public() *ECDSAPublicKey {
	return &ECDSAPublicKey{key: &k.key.PublicKey, algorithm: k.algorithm}
}

// Sign signs payload and returns the JWS wire form: r and s concatenated
// at the curve's fixed coordinate width, not DER.
func (k *ECDSAPrivateKey) Sign(payload []byte) ([]byte, error) {
	hash := k.algorithm.Digest()
	h := hash.New()
	h.Write(payload)

	r, s, err := ecdsa.Sign(rand.Reader, k.key, h.Sum(nil))
	if err != nil {
		return nil, fmt.Errorf("signing with %s: %w", k.algorithm.Name(), err)
	}

	size := k.algorithm.CoordinateSize()
	sig := make([]byte, 2*size)
	r.FillBytes(sig[:size])
	s.FillBytes(sig[size:])
	return sig, nil
}

func (k *ECDSAPrivateKey) Verify(payload, sig []byte, algName string) error {
	if algName != k.algorithm.Name() {
		return ErrVerification
	}
	return ecdsaVerify(&k.key.PublicKey, k.algorithm, payload, sig)
}

func (k *ECDSAPrivateKey) PublicJWK() *jwks.Jwk {
	return ecdsaJWK(k.X(), k.Y(), k.algorithm)
}

// ECDSAPublicKey verifies signatures under exactly one ECDSA algorithm.
type ECDSAPublicKey struct {
	key       *ecdsa.PublicKey
	algorithm alg.ECDSAAlgorithm
}

// ECDSAPublicKeyFromPEM imports a SubjectPublicKeyInfo public key and
// binds it to algorithm. The key must be on the algorithm's curve.
func ECDSAPublicKeyFromPEM(pemBytes []byte, algorithm alg.ECDSAAlgorithm) (*ECDSAPublicKey, error) {
	parsed, err := parsePublicPKIX(pemBytes)
	if err != nil {
		return nil, err
	}
	key, ok := parsed.(*ecdsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an ECDSA public key", ErrUnsupportedOrInvalidKey)
	}
	if key.Curve != algorithm.Curve() {
		return nil, fmt.Errorf("%w: key curve %s does not match %s",
			ErrUnsupportedOrInvalidKey, key.Curve.Params().Name, algorithm.Name())
	}
	return &ECDSAPublicKey{key: key, algorithm: algorithm}, nil
}

// ECDSAPublicKeyFromComponents builds a bound public key from raw
// big-endian curve coordinates. The point must be on the algorithm's
// curve.
func ECDSAPublicKeyFromComponents(x, y []byte, algorithm alg.ECDSAAlgorithm) (*ECDSAPublicKey, error) {
	key := &ecdsa.PublicKey{
		Curve: algorithm.Curve(),
		X:     new(big.Int).SetBytes(x),
		Y:     new(big.Int).SetBytes(y),
	}
	if !key.Curve.IsOnCurve(key.X, key.Y) {
		return nil, fmt.Errorf("%w: point is not on %s", ErrUnsupportedOrInvalidKey, algorithm.CurveName())
	}
	return &ECDSAPublicKey{key: key, algorithm: algorithm}, nil
}

func (k *ECDSAPublicKey) Alg() string { return k.algorithm.Name() }

// PublicPEM exports as SubjectPublicKeyInfo.
func (k *ECDSAPublicKey) PublicPEM() ([]byte, error) {
	return encodePublicPKIX(k.key)
}

func (k *ECDSAPublicKey) X() []byte {
	return util.LeftPad(k.key.X.Bytes(), k.algorithm.CoordinateSize())
}

func (k *ECDSAPublicKey) Y() []byte {
	return util.LeftPad(k.key.Y.Bytes(), k.algorithm.CoordinateSize())
}

func (k *ECDSAPublicKey) Verify(payload, sig []byte, algName string) error {
	if algName != k.algorithm.Name() {
		return ErrVerification
	}
	return ecdsaVerify(k.key, k.algorithm, payload, sig)
}

func (k *ECDSAPublicKey) PublicJWK() *jwks.Jwk {
	return ecdsaJWK(k.X(), k.Y(), k.algorithm)
}

func ecdsaVerify(key *ecdsa.PublicKey, a alg.ECDSAAlgorithm, payload, sig []byte) error {
	size := a.CoordinateSize()
	if len(sig) != 2*size {
		return ErrVerification
	}
	r := new(big.Int).SetBytes(sig[:size])
	s := new(big.Int).SetBytes(sig[size:])

	hash := a.Digest()
	h := hash.New()
	h.Write(payload)

	if !ecdsa.Verify(key, h.Sum(nil), r, s) {
		return ErrVerification
	}
	return nil
}

func ecdsaJWK(x, y []byte, a alg.ECDSAAlgorithm) *jwks.Jwk {
	return &jwks.Jwk{
		Kty: jwks.KtyEC,
		Alg: a.Name(),
		Use: jwks.UseSig,
		Crv: a.CurveName(),
		X:   util.Base64URLEncode(x),
		Y:   util.Base64URLEncode(y),
	}
}
