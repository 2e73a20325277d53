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

package cache

import (
	"bytes"

	"github.com/bbva/merkleroot/crypto/hashing"
)

// SimpleCache is an unbounded in-memory map from digest to block. It never
// evicts.
type SimpleCache struct {
	cached map[hashing.Digest][]byte
}

// NewSimpleCache returns an empty SimpleCache of 'initialSize' size.
func NewSimpleCache(initialSize uint64) *SimpleCache {
	return &SimpleCache{make(map[hashing.Digest][]byte, initialSize)}
}

// Get function returns the value of a given key in cache, and a boolean showing if
// the key is or is not present.
func (c SimpleCache) Get(key hashing.Digest) ([]byte, bool) {
	value, ok := c.cached[key]
	return value, ok
}

// Put function adds a key/value element to the SimpleCache.
func (c *SimpleCache) Put(key hashing.Digest, value []byte) {
	c.cached[key] = value
}

// Size function returns the number of items currently in the cache.
func (c SimpleCache) Size() int {
	return len(c.cached)
}

// Equal function checks if every element from current cache (C) exists
// in the cache to compare (O). It does not check that every element from (O)
// exists in current cache (C).
func (c SimpleCache) Equal(o *SimpleCache) bool {
	for k, v1 := range c.cached {
		v2, ok := o.cached[k]
		if !ok {
			return false
		}
		if !bytes.Equal(v1, v2) {
			return false
		}
	}
	return true
}
