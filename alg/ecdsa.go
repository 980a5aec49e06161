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

import (
	"crypto"
	"crypto/elliptic"
)

// ECDSAAlgorithm identifies one of the ECDSA signature algorithms. Each
// member pins a NIST curve together with its digest; JWS signatures are
// the raw r||s concatenation at fixed width, not DER.
type ECDSAAlgorithm int

const (
	ES256 ECDSAAlgorithm = iota
	ES384
	ES512
)

func (a ECDSAAlgorithm) Name() string {
	switch a {
	case ES256:
		return "ES256"
	case ES384:
		return "ES384"
	}
	return "ES512"
}

func (a ECDSAAlgorithm) Digest() crypto.Hash {
	switch a {
	case ES256:
		return crypto.SHA256
	case ES384:
		return crypto.SHA384
	}
	return crypto.SHA512
}

func (a ECDSAAlgorithm) Curve() elliptic.Curve {
	switch a {
	case ES256:
		return elliptic.P256()
	case ES384:
		return elliptic.P384()
	}
	return elliptic.P521()
}

// CurveName returns the JOSE "crv" value for the algorithm's curve.
func (a ECDSAAlgorithm) CurveName() string {
	switch a {
	case ES256:
		return "P-256"
	case ES384:
		return "P-384"
	}
	return "P-521"
}

// CoordinateSize returns the byte width of one curve coordinate, which is
// also the width of each half of a raw r||s signature (66 for P-521, the
// curve order is 521 bits).
func (a ECDSAAlgorithm) CoordinateSize() int {
	switch a {
	case ES256:
		return 32
	case ES384:
		return 48
	}
	return 66
}

// ECDSAFromName resolves a canonical name within the ECDSA family only.
func ECDSAFromName(name string) (ECDSAAlgorithm, error) {
	switch name {
	case "ES256":
		return ES256, nil
	case "ES384":
		return ES384, nil
	case "ES512":
		return ES512, nil
	}
	return 0, ErrUnsupportedAlgorithm
}

// ECDSAFromCurveName resolves a JOSE "crv" value to the family member
// bound to that curve.
func ECDSAFromCurveName(crv string) (ECDSAAlgorithm, error) {
	switch crv {
	case "P-256":
		return ES256, nil
	case "P-384":
		return ES384, nil
	case "P-521":
		return ES512, nil
	}
	return 0, ErrUnsupportedAlgorithm
}
