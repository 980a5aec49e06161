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
	"bytes"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"math/big"

	"github.com/jwskeys/jwskeys/alg"
	"github.com/jwskeys/jwskeys/jwks"
	"github.com/jwskeys/jwskeys/util"
)

// MinRSABits is the hard floor on the RSA modulus size at generation.
// Not configurable.
const MinRSABits = 2048

// RSAPrivateKey is an RSA key pair bound to one RSA algorithm. It signs
// and, as its own verifier, checks signatures under that algorithm only.
type RSAPrivateKey struct {
	key       *rsa.PrivateKey
	algorithm alg.RSAAlgorithm
}

// GenerateRSAKey generates a fresh key pair with the given modulus size.
// Sizes below MinRSABits are rejected unconditionally.
func GenerateRSAKey(bits int, algorithm alg.RSAAlgorithm) (*RSAPrivateKey, error) {
	if bits < MinRSABits {
		return nil, fmt.Errorf("%w: RSA modulus must be at least %d bits, got %d",
			ErrUnsupportedOrInvalidKey, MinRSABits, bits)
	}
	key, err := rsa.GenerateKey(rand.Reader, bits)
	if err != nil {
		return nil, fmt.Errorf("generating RSA key: %w", err)
	}
	return &RSAPrivateKey{key: key, algorithm: algorithm}, nil
}

// RSAPrivateKeyFromPEM imports a PKCS#8 private key and binds it to
// algorithm. PEM blocks holding a different key family are rejected, the
// bytes are never reinterpreted.
func RSAPrivateKeyFromPEM(pemBytes []byte, algorithm alg.RSAAlgorithm) (*RSAPrivateKey, error) {
	parsed, err := parsePrivatePKCS8(pemBytes)
	if err != nil {
		return nil, err
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA private key", ErrUnsupportedOrInvalidKey)
	}
	if err := key.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedOrInvalidKey, err)
	}
	return &RSAPrivateKey{key: key, algorithm: algorithm}, nil
}

func (k *RSAPrivateKey) Alg() string { return k.algorithm.Name() }

// PrivatePEMPKCS8 exports the key pair for re-import. This is the only
// path that emits private material; the JWK path never does.
func (k *RSAPrivateKey) PrivatePEMPKCS8() ([]byte, error) {
	return encodePrivatePKCS8(k.key)
}

// PublicPEM exports the public key as SubjectPublicKeyInfo
// ("BEGIN PUBLIC KEY").
func (k *RSAPrivateKey) PublicPEM() ([]byte, error) {
	return encodePublicPKIX(&k.key.PublicKey)
}

// PublicPEMPKCS1 exports the public key in the legacy PKCS#1 form
// ("BEGIN RSA PUBLIC KEY").
func (k *RSAPrivateKey) PublicPEMPKCS1() []byte {
	der := x509.MarshalPKCS1PublicKey(&k.key.PublicKey)
	return pem.EncodeToMemory(&pem.Block{Type: pemTypeRSA, Bytes: der})
}

// N returns the big-endian modulus.
func (k *RSAPrivateKey) N() []byte { return k.key.N.Bytes() }

// E returns the big-endian public exponent.
func (k *RSAPrivateKey) E() []byte { return big.NewInt(int64(k.key.E)).Bytes() }

// Public derives the public counterpart bound to the same algorithm.
func (k *RSAPrivateKey) Public() *RSAPublicKey {
	return &RSAPublicKey{key: &k.key.PublicKey, algorithm: k.algorithm}
}

// PublicAny derives the algorithm-agnostic public counterpart. RSA key
// material carries no padding or digest choice, so the public key can
// check any RSA family member when the caller wants that.
func (k *RSAPrivateKey) PublicAny() *RSAAnyPublicKey {
	return &RSAAnyPublicKey{key: &k.key.PublicKey}
}

func (k *RSAPrivateKey) Sign(payload []byte) ([]byte, error) {
	return rsaSign(k.key, k.algorithm, payload)
}

func (k *RSAPrivateKey) Verify(payload, sig []byte, algName string) error {
	if algName != k.algorithm.Name() {
		return ErrVerification
	}
	return rsaVerify(&k.key.PublicKey, k.algorithm, payload, sig)
}

func (k *RSAPrivateKey) PublicJWK() *jwks.Jwk {
	return rsaJWK(k.N(), k.E(), k.algorithm.Name())
}

// RSAPublicKey verifies signatures under exactly one RSA algorithm.
type RSAPublicKey struct {
	key       *rsa.PublicKey
	algorithm alg.RSAAlgorithm
}

// RSAPublicKeyFromPEM imports a public key and binds it to algorithm.
// Both SubjectPublicKeyInfo and PKCS#1 blocks are accepted; the variant
// is detected from the PEM text itself.
func RSAPublicKeyFromPEM(pemBytes []byte, algorithm alg.RSAAlgorithm) (*RSAPublicKey, error) {
	key, err := parseRSAPublicPEM(pemBytes)
	if err != nil {
		return nil, err
	}
	return &RSAPublicKey{key: key, algorithm: algorithm}, nil
}

// RSAPublicKeyFromComponents builds a bound public key from the raw
// big-endian modulus and exponent.
func RSAPublicKeyFromComponents(n, e []byte, algorithm alg.RSAAlgorithm) (*RSAPublicKey, error) {
	key, err := rsaPublicFromComponents(n, e)
	if err != nil {
		return nil, err
	}
	return &RSAPublicKey{key: key, algorithm: algorithm}, nil
}

func (k *RSAPublicKey) Alg() string { return k.algorithm.Name() }

// PublicPEM exports as SubjectPublicKeyInfo ("BEGIN PUBLIC KEY").
func (k *RSAPublicKey) PublicPEM() ([]byte, error) {
	return encodePublicPKIX(k.key)
}

// PublicPEMPKCS1 exports in the legacy form ("BEGIN RSA PUBLIC KEY").
func (k *RSAPublicKey) PublicPEMPKCS1() []byte {
	der := x509.MarshalPKCS1PublicKey(k.key)
	return pem.EncodeToMemory(&pem.Block{Type: pemTypeRSA, Bytes: der})
}

func (k *RSAPublicKey) N() []byte { return k.key.N.Bytes() }
func (k *RSAPublicKey) E() []byte { return big.NewInt(int64(k.key.E)).Bytes() }

func (k *RSAPublicKey) Verify(payload, sig []byte, algName string) error {
	if algName != k.algorithm.Name() {
		return ErrVerification
	}
	return rsaVerify(k.key, k.algorithm, payload, sig)
}

func (k *RSAPublicKey) PublicJWK() *jwks.Jwk {
	return rsaJWK(k.N(), k.E(), k.algorithm.Name())
}

// RSAAnyPublicKey verifies signatures generated by any RSA family
// algorithm. The algorithm is taken from the claimed name on each Verify
// call and resolved against the RSA family set; an unresolvable name
// fails with ErrVerification just like a bad signature does.
type RSAAnyPublicKey struct {
	key *rsa.PublicKey
}

// RSAAnyPublicKeyFromPEM imports a public key. Both SubjectPublicKeyInfo
// and PKCS#1 blocks are accepted.
func RSAAnyPublicKeyFromPEM(pemBytes []byte) (*RSAAnyPublicKey, error) {
	key, err := parseRSAPublicPEM(pemBytes)
	if err != nil {
		return nil, err
	}
	return &RSAAnyPublicKey{key: key}, nil
}

// RSAAnyPublicKeyFromComponents builds the key from the raw big-endian
// modulus and exponent.
func RSAAnyPublicKeyFromComponents(n, e []byte) (*RSAAnyPublicKey, error) {
	key, err := rsaPublicFromComponents(n, e)
	if err != nil {
		return nil, err
	}
	return &RSAAnyPublicKey{key: key}, nil
}

// PublicPEM exports as SubjectPublicKeyInfo ("BEGIN PUBLIC KEY").
func (k *RSAAnyPublicKey) PublicPEM() ([]byte, error) {
	return encodePublicPKIX(k.key)
}

// PublicPEMPKCS1 exports in the legacy form ("BEGIN RSA PUBLIC KEY").
func (k *RSAAnyPublicKey) PublicPEMPKCS1() []byte {
	der := x509.MarshalPKCS1PublicKey(k.key)
	return pem.EncodeToMemory(&pem.Block{Type: pemTypeRSA, Bytes: der})
}

func (k *RSAAnyPublicKey) N() []byte { return k.key.N.Bytes() }
func (k *RSAAnyPublicKey) E() []byte { return big.NewInt(int64(k.key.E)).Bytes() }

func (k *RSAAnyPublicKey) Verify(payload, sig []byte, algName string) error {
	a, err := alg.RSAFromName(algName)
	if err != nil {
		return ErrVerification
	}
	return rsaVerify(k.key, a, payload, sig)
}

// PublicJWK exports the key. The record carries no "alg" field since the
// key is not bound to one.
func (k *RSAAnyPublicKey) PublicJWK() *jwks.Jwk {
	return rsaJWK(k.N(), k.E(), "")
}

func rsaSign(key *rsa.PrivateKey, a alg.RSAAlgorithm, payload []byte) ([]byte, error) {
	hash := a.Digest()
	h := hash.New()
	h.Write(payload)
	digest := h.Sum(nil)

	if a.IsPSS() {
		return rsa.SignPSS(rand.Reader, key, hash, digest, &rsa.PSSOptions{
			SaltLength: rsa.PSSSaltLengthEqualsHash,
			Hash:       hash,
		})
	}
	return rsa.SignPKCS1v15(rand.Reader, key, hash, digest)
}

func rsaVerify(key *rsa.PublicKey, a alg.RSAAlgorithm, payload, sig []byte) error {
	hash := a.Digest()
	h := hash.New()
	h.Write(payload)
	digest := h.Sum(nil)

	var err error
	if a.IsPSS() {
		err = rsa.VerifyPSS(key, hash, digest, sig, &rsa.PSSOptions{
			SaltLength: rsa.PSSSaltLengthEqualsHash,
			Hash:       hash,
		})
	} else {
		err = rsa.VerifyPKCS1v15(key, hash, digest, sig)
	}
	if err != nil {
		return ErrVerification
	}
	return nil
}

// parseRSAPublicPEM accepts both SubjectPublicKeyInfo and PKCS#1 public
// blocks, choosing by the "BEGIN RSA" marker in the PEM text.
func parseRSAPublicPEM(pemBytes []byte) (*rsa.PublicKey, error) {
	if bytes.Contains(pemBytes, []byte("BEGIN RSA")) {
		block, err := decodePEMBlock(pemBytes)
		if err != nil {
			return nil, err
		}
		key, err := x509.ParsePKCS1PublicKey(block.Bytes)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedOrInvalidKey, err)
		}
		return key, nil
	}

	parsed, err := parsePublicPKIX(pemBytes)
	if err != nil {
		return nil, err
	}
	key, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA public key", ErrUnsupportedOrInvalidKey)
	}
	return key, nil
}

func rsaPublicFromComponents(n, e []byte) (*rsa.PublicKey, error) {
	modulus := new(big.Int).SetBytes(n)
	exponent := new(big.Int).SetBytes(e)
	if modulus.Sign() <= 0 || exponent.Sign() <= 0 {
		return nil, fmt.Errorf("%w: RSA components must be positive", ErrUnsupportedOrInvalidKey)
	}
	if !exponent.IsInt64() || exponent.Int64() > int64(^uint32(0)) {
		return nil, fmt.Errorf("%w: RSA exponent out of range", ErrUnsupportedOrInvalidKey)
	}
	return &rsa.PublicKey{N: modulus, E: int(exponent.Int64())}, nil
}

func rsaJWK(n, e []byte, algName string) *jwks.Jwk {
	return &jwks.Jwk{
		Kty: jwks.KtyRSA,
		Alg: algName,
		Use: jwks.UseSig,
		N:   util.Base64URLEncode(n),
		E:   util.Base64URLEncode(e),
	}
}
