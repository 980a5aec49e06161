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

var rsaAlgorithms = []alg.RSAAlgorithm{
	alg.RS256, alg.RS384, alg.RS512,
	alg.PS256, alg.PS384, alg.PS512,
}

func TestRSASignVerify(t *testing.T) {
	for _, a := range rsaAlgorithms {
		t.Run(a.Name(), func(t *testing.T) {
			k, err := GenerateRSAKey(2048, a)
			require.NoError(t, err)

			pubPEM, err := k.PublicPEM()
			require.NoError(t, err)
			pk, err := RSAPublicKeyFromPEM(pubPEM, a)
			require.NoError(t, err)

			sig, err := k.Sign([]byte("..."))
			require.NoError(t, err)

			assert.NoError(t, k.Verify([]byte("..."), sig, a.Name()))
			assert.ErrorIs(t, k.Verify([]byte("..."), sig, "WRONG ALG"), ErrVerification)
			assert.ErrorIs(t, k.Verify([]byte("...."), sig, a.Name()), ErrVerification)
			assert.NoError(t, pk.Verify([]byte("..."), sig, a.Name()))
			assert.ErrorIs(t, pk.Verify([]byte("...."), sig, a.Name()), ErrVerification)
		})
	}
}

func TestRSAConversion(t *testing.T) {
	k, err := GenerateRSAKey(2048, alg.PS384)
	require.NoError(t, err)

	privPEM, err := k.PrivatePEMPKCS8()
	require.NoError(t, err)
	reimported, err := RSAPrivateKeyFromPEM(privPEM, alg.PS384)
	require.NoError(t, err)

	// The reimported key verifies signatures made by the original.
	sig, err := k.Sign([]byte("payload"))
	require.NoError(t, err)
	require.NoError(t, reimported.Verify([]byte("payload"), sig, "PS384"))

	// Feeding an EC private key to the RSA importer fails, it is never
	// silently reinterpreted.
	ecKey, err := GenerateECDSAKey(alg.ES256)
	require.NoError(t, err)
	ecPEM, err := ecKey.PrivatePEMPKCS8()
	require.NoError(t, err)
	_, err = RSAPrivateKeyFromPEM(ecPEM, alg.PS384)
	require.ErrorIs(t, err, ErrUnsupportedOrInvalidKey)

	// Public PEM round-trips through both encodings; the importer detects
	// the variant itself.
	pkPEM, err := k.PublicPEM()
	require.NoError(t, err)
	pkPEMPKCS1 := k.PublicPEMPKCS1()

	pk, err := RSAPublicKeyFromPEM(pkPEM, alg.PS384)
	require.NoError(t, err)
	pk1, err := RSAPublicKeyFromPEM(pkPEMPKCS1, alg.PS384)
	require.NoError(t, err)

	pkPEMAgain, err := pk1.PublicPEM()
	require.NoError(t, err)
	assert.Equal(t, pkPEM, pkPEMAgain)
	assert.Equal(t, pkPEMPKCS1, pk.PublicPEMPKCS1())

	assert.Equal(t, "PS384", k.Alg())
}

func TestRSAMinimumKeySize(t *testing.T) {
	_, err := GenerateRSAKey(1024, alg.RS256)
	require.ErrorIs(t, err, ErrUnsupportedOrInvalidKey)

	k, err := GenerateRSAKey(2048, alg.RS256)
	require.NoError(t, err)
	require.NotNil(t, k)
}

func TestRSAConfusionGuard(t *testing.T) {
	// A signature valid under one algorithm never verifies when the caller
	// claims any other catalog name, regardless of family.
	k, err := GenerateRSAKey(2048, alg.RS256)
	require.NoError(t, err)
	sig, err := k.Sign([]byte("payload"))
	require.NoError(t, err)

	pk := k.Public()
	require.NoError(t, pk.Verify([]byte("payload"), sig, "RS256"))

	for _, name := range alg.Names() {
		if name == "RS256" {
			continue
		}
		assert.ErrorIs(t, k.Verify([]byte("payload"), sig, name), ErrVerification, "alg %s", name)
		assert.ErrorIs(t, pk.Verify([]byte("payload"), sig, name), ErrVerification, "alg %s", name)
	}
}

func TestRSATamperSensitivity(t *testing.T) {
	payload := []byte("signing input")
	for _, a := range rsaAlgorithms {
		t.Run(a.Name(), func(t *testing.T) {
			k, err := GenerateRSAKey(2048, a)
			require.NoError(t, err)
			sig, err := k.Sign(payload)
			require.NoError(t, err)
			require.NoError(t, k.Verify(payload, sig, a.Name()))

			// One flipped bit per signature byte.
			for i := range sig {
				sig[i] ^= 0x01
				require.ErrorIs(t, k.Verify(payload, sig, a.Name()), ErrVerification, "sig byte %d", i)
				sig[i] ^= 0x01
			}

			// One flipped bit per payload byte.
			for i := range payload {
				payload[i] ^= 0x80
				require.ErrorIs(t, k.Verify(payload, sig, a.Name()), ErrVerification, "payload byte %d", i)
				payload[i] ^= 0x80
			}
		})
	}
}

func TestRSAAnyPublicKey(t *testing.T) {
	k, err := GenerateRSAKey(2048, alg.RS256)
	require.NoError(t, err)
	anyKey := k.PublicAny()

	sig, err := k.Sign([]byte("payload"))
	require.NoError(t, err)
	require.NoError(t, anyKey.Verify([]byte("payload"), sig, "RS256"))

	// The same key material checks PS256 signatures when the caller claims
	// PS256: padding is a per-signature attribute, not a key attribute.
	pssKey, err := RSAPrivateKeyFromPEM(mustPEM(t, k.PrivatePEMPKCS8), alg.PS256)
	require.NoError(t, err)
	pssSig, err := pssKey.Sign([]byte("payload"))
	require.NoError(t, err)
	require.NoError(t, anyKey.Verify([]byte("payload"), pssSig, "PS256"))

	// A claimed algorithm that is not an RSA family member fails with the
	// same error as a bad signature.
	err = anyKey.Verify([]byte("payload"), sig, "ES256")
	require.ErrorIs(t, err, ErrVerification)
	require.NotErrorIs(t, err, ErrUnsupportedOrInvalidKey)

	err = anyKey.Verify([]byte("payload"), sig, "NOT AN ALG")
	require.ErrorIs(t, err, ErrVerification)
	require.NotErrorIs(t, err, ErrUnsupportedOrInvalidKey)

	// PEM round-trip through both public encodings.
	fromSPKI, err := RSAAnyPublicKeyFromPEM(mustPEM(t, anyKey.PublicPEM))
	require.NoError(t, err)
	require.NoError(t, fromSPKI.Verify([]byte("payload"), sig, "RS256"))

	fromPKCS1, err := RSAAnyPublicKeyFromPEM(anyKey.PublicPEMPKCS1())
	require.NoError(t, err)
	require.NoError(t, fromPKCS1.Verify([]byte("payload"), sig, "RS256"))
}

func TestRSAFromComponents(t *testing.T) {
	k, err := GenerateRSAKey(2048, alg.RS384)
	require.NoError(t, err)
	sig, err := k.Sign([]byte("payload"))
	require.NoError(t, err)

	pk, err := RSAPublicKeyFromComponents(k.N(), k.E(), alg.RS384)
	require.NoError(t, err)
	require.NoError(t, pk.Verify([]byte("payload"), sig, "RS384"))

	anyKey, err := RSAAnyPublicKeyFromComponents(k.N(), k.E())
	require.NoError(t, err)
	require.NoError(t, anyKey.Verify([]byte("payload"), sig, "RS384"))

	_, err = RSAPublicKeyFromComponents(nil, k.E(), alg.RS384)
	require.ErrorIs(t, err, ErrUnsupportedOrInvalidKey)
	_, err = RSAAnyPublicKeyFromComponents(k.N(), nil)
	require.ErrorIs(t, err, ErrUnsupportedOrInvalidKey)
}

func TestRS256Scenario(t *testing.T) {
	k, err := GenerateRSAKey(2048, alg.RS256)
	require.NoError(t, err)

	sig, err := k.Sign([]byte("..."))
	require.NoError(t, err)

	require.NoError(t, k.Verify([]byte("..."), sig, "RS256"))
	require.ErrorIs(t, k.Verify([]byte("..."), sig, "RS384"), ErrVerification)
	require.ErrorIs(t, k.Verify([]byte("...."), sig, "RS256"), ErrVerification)
}

func TestConcurrentVerify(t *testing.T) {
	// A key instance is immutable after construction and may be shared
	// across goroutines.
	k, err := GenerateRSAKey(2048, alg.RS256)
	require.NoError(t, err)
	sig, err := k.Sign([]byte("payload"))
	require.NoError(t, err)
	pk := k.Public()

	done := make(chan error)
	for i := 0; i < 8; i++ {
		go func() {
			for j := 0; j < 25; j++ {
				if err := pk.Verify([]byte("payload"), sig, "RS256"); err != nil {
					done <- err
					return
				}
			}
			done <- nil
		}()
	}
	for i := 0; i < 8; i++ {
		require.NoError(t, <-done)
	}
}

func mustPEM(t *testing.T, export func() ([]byte, error)) []byte {
	t.Helper()
	pemBytes, err := export()
	require.NoError(t, err)
	return pemBytes
}
