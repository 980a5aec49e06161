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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwskeys/jwskeys/alg"
)

var ecdsaAlgorithms = []alg.ECDSAAlgorithm{alg.ES256, alg.ES384, alg.ES512}

func TestECDSASignVerify(t *testing.T) {
	for _, a := range ecdsaAlgorithms {
		t.Run(a.Name(), func(t *testing.T) {
			k, err := GenerateECDSAKey(a)
			require.NoError(t, err)

			sig, err := k.Sign([]byte("..."))
			require.NoError(t, err)
			assert.Len(t, sig, 2*a.CoordinateSize())

			assert.NoError(t, k.Verify([]byte("..."), sig, a.Name()))
			assert.ErrorIs(t, k.Verify([]byte("..."), sig, "WRONG ALG"), ErrVerification)
			assert.ErrorIs(t, k.Verify([]byte("...."), sig, a.Name()), ErrVerification)

			pk := k.Public()
			assert.NoError(t, pk.Verify([]byte("..."), sig, a.Name()))
			assert.ErrorIs(t, pk.Verify([]byte("...."), sig, a.Name()), ErrVerification)
		})
	}
}

func TestECDSAConfusionGuard(t *testing.T) {
	k, err := GenerateECDSAKey(alg.ES256)
	require.NoError(t, err)
	sig, err := k.Sign([]byte("payload"))
	require.NoError(t, err)

	for _, name := range alg.Names() {
		if name == "ES256" {
			continue
		}
		assert.ErrorIs(t, k.Verify([]byte("payload"), sig, name), ErrVerification, "alg %s", name)
	}
}

func TestECDSAPEMRoundTrip(t *testing.T) {
	for _, a := range ecdsaAlgorithms {
		t.Run(a.Name(), func(t *testing.T) {
			k, err := GenerateECDSAKey(a)
			require.NoError(t, err)

			privPEM, err := k.PrivatePEMPKCS8()
			require.NoError(t, err)
			reimported, err := ECDSAPrivateKeyFromPEM(privPEM, a)
			require.NoError(t, err)

			sig, err := k.Sign([]byte("payload"))
			require.NoError(t, err)
			require.NoError(t, reimported.Verify([]byte("payload"), sig, a.Name()))

			pubPEM, err := k.PublicPEM()
			require.NoError(t, err)
			pk, err := ECDSAPublicKeyFromPEM(pubPEM, a)
			require.NoError(t, err)
			require.NoError(t, pk.Verify([]byte("payload"), sig, a.Name()))
		})
	}
}

func TestECDSACurveMismatch(t *testing.T) {
	k, err := GenerateECDSAKey(alg.ES256)
	require.NoError(t, err)

	privPEM, err := k.PrivatePEMPKCS8()
	require.NoError(t, err)
	_, err = ECDSAPrivateKeyFromPEM(privPEM, alg.ES384)
	require.ErrorIs(t, err, ErrUnsupportedOrInvalidKey)

	pubPEM, err := k.PublicPEM()
	require.NoError(t, err)
	_, err = ECDSAPublicKeyFromPEM(pubPEM, alg.ES512)
	require.ErrorIs(t, err, ErrUnsupportedOrInvalidKey)

	// Cross-family rejection: an RSA key is not an ECDSA key.
	rsaKey, err := GenerateRSAKey(2048, alg.RS256)
	require.NoError(t, err)
	rsaPEM, err := rsaKey.PrivatePEMPKCS8()
	require.NoError(t, err)
	_, err = ECDSAPrivateKeyFromPEM(rsaPEM, alg.ES256)
	require.ErrorIs(t, err, ErrUnsupportedOrInvalidKey)
}

func TestECDSAFromComponents(t *testing.T) {
	k, err := GenerateECDSAKey(alg.ES256)
	require.NoError(t, err)
	sig, err := k.Sign([]byte("payload"))
	require.NoError(t, err)

	pk, err := ECDSAPublicKeyFromComponents(k.X(), k.Y(), alg.ES256)
	require.NoError(t, err)
	require.NoError(t, pk.Verify([]byte("payload"), sig, "ES256"))

	// A point off the curve is rejected.
	y := k.Y()
	y[len(y)-1] ^= 0x01
	_, err = ECDSAPublicKeyFromComponents(k.X(), y, alg.ES256)
	require.ErrorIs(t, err, ErrUnsupportedOrInvalidKey)
}

func TestECDSAMalformedSignatureLength(t *testing.T) {
	k, err := GenerateECDSAKey(alg.ES256)
	require.NoError(t, err)
	sig, err := k.Sign([]byte("payload"))
	require.NoError(t, err)

	require.ErrorIs(t, k.Verify([]byte("payload"), sig[:len(sig)-1], "ES256"), ErrVerification)
	require.ErrorIs(t, k.Verify([]byte("payload"), append(sig, 0), "ES256"), ErrVerification)
	require.ErrorIs(t, k.Verify([]byte("payload"), nil, "ES256"), ErrVerification)
}
