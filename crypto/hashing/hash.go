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

// Package hashing implements the 256 bit hashers used to build leaves and
// interior nodes of a Merkle tree.
package hashing

import (
	"crypto/sha256"
	"fmt"
	"hash"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Hasher computes a Digest over the concatenation of its inputs.
//
// Implementations keep internal state between calls, so a Hasher must not
// be shared between goroutines. Use a HasherF to get one per goroutine.
type Hasher interface {
	Do(...[]byte) Digest
	Len() uint16
}

// HasherF builds new, independent Hasher instances.
type HasherF func() Hasher

type KeyHasher struct {
	underlying hash.Hash
}

// NewSha256Hasher implements the Hasher interface and computes a 256 bit hash
// function using the SHA256 hashing algorithm.
func NewSha256Hasher() Hasher {
	return &KeyHasher{underlying: sha256.New()}
}

// NewBlake2bHasher implements the Hasher interface and computes a 256 bit hash
// function using the Blake2 hashing algorithm.
func NewBlake2bHasher() Hasher {
	hasher, err := blake2b.New256(nil)
	if err != nil {
		panic(fmt.Sprintf("Error creating BLAKE2b hasher %v", err))
	}
	return &KeyHasher{underlying: hasher}
}

// NewSha3Hasher computes a 256 bit hash using FIPS-202 SHA3-256.
func NewSha3Hasher() Hasher {
	return &KeyHasher{underlying: sha3.New256()}
}

// NewKeccak256Hasher computes a 256 bit hash using the original Keccak
// padding, as used by Ethereum.
func NewKeccak256Hasher() Hasher {
	return &KeyHasher{underlying: sha3.NewLegacyKeccak256()}
}

// NewBlake3Hasher computes a 256 bit hash using BLAKE3.
func NewBlake3Hasher() Hasher {
	return &KeyHasher{underlying: blake3.New()}
}

// Do function hashes input data using the hashing function given by the KeyHasher.
// Inputs are written back to back, with no separator between them.
func (s *KeyHasher) Do(data ...[]byte) Digest {
	s.underlying.Reset()
	for i := 0; i < len(data); i++ {
		_, _ = s.underlying.Write(data[i])
	}
	var d Digest
	s.underlying.Sum(d[:0])
	return d
}

// Len function returns the size of the resulting hash in bits.
func (s KeyHasher) Len() uint16 { return uint16(DigestSize * 8) }

// CountingHasher wraps a Hasher and counts how many digests it produced.
// Handy for testing hash tree implementations.
type CountingHasher struct {
	underlying Hasher
	Count      uint64
}

func NewCountingHasher(h Hasher) *CountingHasher {
	return &CountingHasher{underlying: h}
}

// Do delegates to the wrapped hasher.
func (h *CountingHasher) Do(data ...[]byte) Digest {
	h.Count++
	return h.underlying.Do(data...)
}

// Len function returns the size of the resulting hash.
func (h CountingHasher) Len() uint16 {
	return h.underlying.Len()
}
