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

package merkle

import (
	"github.com/bbva/merkleroot/crypto/hashing"
)

// LeafHash returns the leaf digest of a block. Any block, including an
// empty one, is valid.
func LeafHash(hasher hashing.Hasher, block []byte) hashing.Digest {
	return hasher.Do(block)
}

// Leaves hashes every block, keeping their order.
func Leaves(hasher hashing.Hasher, blocks [][]byte) []hashing.Digest {
	leaves := make([]hashing.Digest, len(blocks))
	for i, block := range blocks {
		leaves[i] = LeafHash(hasher, block)
	}
	return leaves
}

// Root computes the Merkle root of blocks, in the given order, without a
// store.
func Root(alg hashing.Algorithm, padding Padding, blocks ...[]byte) (hashing.Digest, error) {
	hasherF, err := alg.HasherF()
	if err != nil {
		return hashing.ZeroDigest, err
	}
	r, err := NewReducer(hasherF, padding)
	if err != nil {
		return hashing.ZeroDigest, err
	}
	return r.Reduce(Leaves(hasherF(), blocks))
}
