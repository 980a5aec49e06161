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

import "crypto"

// RSAAlgorithm identifies one of the RSA signature algorithms. RS* use
// PKCS#1 v1.5 padding, PS* use PSS with the salt length equal to the
// digest length.
type RSAAlgorithm int

const (
	RS256 RSAAlgorithm = iota
	RS384
	RS512
	PS256
	PS384
	PS512
)

func (a RSAAlgorithm) Name() string {
	switch a {
	case RS256:
		return "RS256"
	case RS384:
		return "RS384"
	case RS512:
		return "RS512"
	case PS256:
		return "PS256"
	case PS384:
		return "PS384"
	case PS512:
		return "PS512"
	}
	return ""
}

func (a RSAAlgorithm) Digest() crypto.Hash {
	switch a {
	case RS256, PS256:
		return crypto.SHA256
	case RS384, PS384:
		return crypto.SHA384
	}
	return crypto.SHA512
}

// IsPSS reports whether the algorithm uses probabilistic PSS padding.
// PSS signatures carry a fresh random salt, so two signatures over the
// same payload will not be byte-identical.
func (a RSAAlgorithm) IsPSS() bool {
	return a == PS256 || a == PS384 || a == PS512
}

// RSAFromName resolves a canonical name within the RSA family only.
func RSAFromName(name string) (RSAAlgorithm, error) {
	switch name {
	case "RS256":
		return RS256, nil
	case "RS384":
		return RS384, nil
	case "RS512":
		return RS512, nil
	case "PS256":
		return PS256, nil
	case "PS384":
		return PS384, nil
	case "PS512":
		return PS512, nil
	}
	return 0, ErrUnsupportedAlgorithm
}
