/*
   Copyright 2018-2019 Banco Bilbao Vizcaya Argentaria, S.A.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package hashing

import (
	"strings"

	"github.com/pkg/errors"
)

// Algorithm names a hash function. Roots computed with one algorithm can
// only be reproduced with the same algorithm.
type Algorithm string

// Supported algorithms.
const (
	SHA256     Algorithm = "sha256"
	BLAKE2b256 Algorithm = "blake2b256"
	SHA3_256   Algorithm = "sha3-256"
	Keccak256  Algorithm = "keccak256"
	BLAKE3     Algorithm = "blake3"

	DefaultAlgorithm = SHA256
)

// ErrUnknownAlgorithm is returned when an algorithm name is not supported.
var ErrUnknownAlgorithm = errors.New("unknown hash algorithm")

var constructors = map[Algorithm]HasherF{
	SHA256:     NewSha256Hasher,
	BLAKE2b256: NewBlake2bHasher,
	SHA3_256:   NewSha3Hasher,
	Keccak256:  NewKeccak256Hasher,
	BLAKE3:     NewBlake3Hasher,
}

// Algorithms returns the names of every supported algorithm.
func Algorithms() []Algorithm {
	return []Algorithm{SHA256, BLAKE2b256, SHA3_256, Keccak256, BLAKE3}
}

// ParseAlgorithm accepts an algorithm name, case insensitive. The empty
// string maps to DefaultAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultAlgorithm, nil
	}
	alg := Algorithm(name)
	if _, ok := constructors[alg]; !ok {
		return "", errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
	}
	return alg, nil
}

// HasherF returns the constructor for the given algorithm.
func (a Algorithm) HasherF() (HasherF, error) {
	f, ok := constructors[a]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownAlgorithm, "%q", string(a))
	}
	return f, nil
}

func (a Algorithm) String() string {
	return string(a)
}
