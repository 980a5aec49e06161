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
	"crypto/ed25519"
	"crypto/rsa"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/lestrrat-go/jwx/v2/jwk"

	"github.com/jwskeys/jwskeys/alg"
	"github.com/jwskeys/jwskeys/jwks"
	"github.com/jwskeys/jwskeys/util"
)

// FromJWK reconstructs a verification key from a JWK record. The key type
// is taken from "kty" alone, never guessed from which coordinate fields
// happen to be present. An RSA record without "alg" yields an
// RSAAnyPublicKey; for EC the curve decides the algorithm and a present
// "alg" must agree with it.
func FromJWK(j *jwks.Jwk) (VerificationKey, error) {
	switch j.Kty {
	case jwks.KtyRSA:
		if j.N == "" || j.E == "" {
			return nil, fmt.Errorf("%w: RSA JWK missing n or e", ErrUnsupportedOrInvalidKey)
		}
		if err := checkBase64Fields(j.N, j.E); err != nil {
			return nil, err
		}
		raw, err := rawPublicKey(j)
		if err != nil {
			return nil, err
		}
		pub, ok := raw.(*rsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("%w: not an RSA public key", ErrUnsupportedOrInvalidKey)
		}
		if j.Alg == "" {
			return &RSAAnyPublicKey{key: pub}, nil
		}
		a, err := alg.RSAFromName(j.Alg)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedOrInvalidKey, err)
		}
		return &RSAPublicKey{key: pub, algorithm: a}, nil

	case jwks.KtyEC:
		if j.Crv == "" || j.X == "" || j.Y == "" {
			return nil, fmt.Errorf("%w: EC JWK missing crv, x or y", ErrUnsupportedOrInvalidKey)
		}
		a, err := alg.ECDSAFromCurveName(j.Crv)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrUnsupportedOrInvalidKey, err)
		}
		if j.Alg != "" && j.Alg != a.Name() {
			return nil, fmt.Errorf("%w: alg %s does not match curve %s",
				ErrUnsupportedOrInvalidKey, j.Alg, j.Crv)
		}
		if err := checkBase64Fields(j.X, j.Y); err != nil {
			return nil, err
		}
		raw, err := rawPublicKey(j)
		if err != nil {
			return nil, err
		}
		pub, ok := raw.(*ecdsa.PublicKey)
		if !ok {
			return nil, fmt.Errorf("%w: not an ECDSA public key", ErrUnsupportedOrInvalidKey)
		}
		return &ECDSAPublicKey{key: pub, algorithm: a}, nil

	case jwks.KtyOKP:
		if j.Crv != alg.EdDSA.CurveName() {
			return nil, fmt.Errorf("%w: unsupported OKP curve %q", ErrUnsupportedOrInvalidKey, j.Crv)
		}
		if j.X == "" {
			return nil, fmt.Errorf("%w: OKP JWK missing x", ErrUnsupportedOrInvalidKey)
		}
		if j.Alg != "" && j.Alg != alg.EdDSA.Name() {
			return nil, fmt.Errorf("%w: alg %s is not EdDSA", ErrUnsupportedOrInvalidKey, j.Alg)
		}
		if err := checkBase64Fields(j.X); err != nil {
			return nil, err
		}
		raw, err := rawPublicKey(j)
		if err != nil {
			return nil, err
		}
		pub, ok := raw.(ed25519.PublicKey)
		if !ok {
			return nil, fmt.Errorf("%w: not an Ed25519 public key", ErrUnsupportedOrInvalidKey)
		}
		return &Ed25519PublicKey{key: pub}, nil
	}

	return nil, fmt.Errorf("%w: unsupported kty %q", ErrUnsupportedOrInvalidKey, j.Kty)
}

// checkBase64Fields rejects binary field values that are not canonical
// unpadded base64url. The jwx parser is forgiving about padding; the wire
// format here is not.
func checkBase64Fields(values ...string) error {
	for _, v := range values {
		if _, err := util.Base64URLDecode(v); err != nil {
			return fmt.Errorf("%w: %v", ErrUnsupportedOrInvalidKey, err)
		}
	}
	return nil
}

// rawPublicKey materializes the stdlib public key behind a JWK record,
// delegating field decoding and point validation to jwx.
func rawPublicKey(j *jwks.Jwk) (any, error) {
	data, err := json.Marshal(j)
	if err != nil {
		return nil, fmt.Errorf("encoding JWK: %w", err)
	}
	parsed, err := jwk.ParseKey(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedOrInvalidKey, err)
	}
	var raw any
	if err := parsed.Raw(&raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedOrInvalidKey, err)
	}
	return raw, nil
}
