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
	"crypto/x509"
	"encoding/pem"
	"fmt"

	"github.com/awnumar/memguard"
)

const (
	pemTypePrivate = "PRIVATE KEY"
	pemTypePublic  = "PUBLIC KEY"
	pemTypeRSA     = "RSA PUBLIC KEY"
)

func decodePEMBlock(pemBytes []byte) (*pem.Block, error) {
	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, fmt.Errorf("%w: no PEM block found", ErrUnsupportedOrInvalidKey)
	}
	return block, nil
}

// parsePrivatePKCS8 decodes a PKCS#8 private key PEM block. The DER bytes
// are held in a locked buffer and wiped once parsing is done. The caller
// still has to check the concrete key family.
func parsePrivatePKCS8(pemBytes []byte) (any, error) {
	block, err := decodePEMBlock(pemBytes)
	if err != nil {
		return nil, err
	}

	der := memguard.NewBufferFromBytes(block.Bytes)
	defer der.Destroy()

	key, err := x509.ParsePKCS8PrivateKey(der.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedOrInvalidKey, err)
	}
	return key, nil
}

// encodePrivatePKCS8 is the canonical private export: PKCS#8 DER inside a
// "PRIVATE KEY" block. The encoding does not depend on the bound
// algorithm.
func encodePrivatePKCS8(key any) ([]byte, error) {
	der, err := x509.MarshalPKCS8PrivateKey(key)
	if err != nil {
		return nil, fmt.Errorf("encoding PKCS#8 private key: %w", err)
	}

	buf := memguard.NewBufferFromBytes(der)
	defer buf.Destroy()

	return pem.EncodeToMemory(&pem.Block{Type: pemTypePrivate, Bytes: buf.Bytes()}), nil
}

// encodePublicPKIX encodes a public key as SubjectPublicKeyInfo inside a
// "PUBLIC KEY" block.
func encodePublicPKIX(key any) ([]byte, error) {
	der, err := x509.MarshalPKIXPublicKey(key)
	if err != nil {
		return nil, fmt.Errorf("encoding public key: %w", err)
	}
	return pem.EncodeToMemory(&pem.Block{Type: pemTypePublic, Bytes: der}), nil
}

// parsePublicPKIX decodes a SubjectPublicKeyInfo public key PEM block.
// The caller still has to check the concrete key family.
func parsePublicPKIX(pemBytes []byte) (any, error) {
	block, err := decodePEMBlock(pemBytes)
	if err != nil {
		return nil, err
	}
	key, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedOrInvalidKey, err)
	}
	return key, nil
}
