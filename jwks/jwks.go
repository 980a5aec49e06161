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

// Package jwks holds the JSON Web Key wire representation used by this
// module. A Jwk is a transient export/import view of a key's public
// coordinates, never a store of private material; private fields of a key
// pair have no JWK path here at all.
package jwks

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Key types and usage values as they appear on the wire.
const (
	KtyRSA = "RSA"
	KtyEC  = "EC"
	KtyOKP = "OKP"

	UseSig = "sig"
)

// Jwk is a flat JSON Web Key record covering all supported families.
// Fields outside a key's family are omitted from the JSON output, not
// emitted as null; binary fields are base64url without padding.
type Jwk struct {
	Kty string `json:"kty"`
	Alg string `json:"alg,omitempty"`
	Use string `json:"use,omitempty"`
	Kid string `json:"kid,omitempty"`

	// RSA
	N string `json:"n,omitempty"`
	E string `json:"e,omitempty"`

	// EC and OKP
	Crv string `json:"crv,omitempty"`
	X   string `json:"x,omitempty"`
	Y   string `json:"y,omitempty"`
}

// JSON serializes the record.
func (j *Jwk) JSON() ([]byte, error) {
	return json.Marshal(j)
}

// GenerateKid assigns a fresh random key ID and returns it. Meant to be
// called once, right after export, before the record is published.
func (j *Jwk) GenerateKid() string {
	j.Kid = uuid.New().String()
	return j.Kid
}

// Parse decodes a single JWK record.
func Parse(data []byte) (*Jwk, error) {
	var j Jwk
	if err := json.Unmarshal(data, &j); err != nil {
		return nil, fmt.Errorf("parsing JWK: %w", err)
	}
	return &j, nil
}

// Set is a JWK Set: the {"keys": [...]} container published by signers.
// Lookup only; fetching and rotation belong to the caller.
type Set struct {
	Keys []Jwk `json:"keys"`
}

// ParseSet decodes a JWK Set document.
func ParseSet(data []byte) (*Set, error) {
	var s Set
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing JWK Set: %w", err)
	}
	return &s, nil
}

// JSON serializes the set.
func (s *Set) JSON() ([]byte, error) {
	return json.Marshal(s)
}

// FindByKid returns the first key with the given kid.
func (s *Set) FindByKid(kid string) (*Jwk, bool) {
	for i := range s.Keys {
		if s.Keys[i].Kid == kid {
			return &s.Keys[i], true
		}
	}
	return nil, false
}
