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
	"github.com/bbva/merkleroot/crypto/hashing"
	"github.com/coocood/freecache"
)

// FreeCache is a bounded index backed by freecache. Blocks larger than
// 1/1024 of the cache size are not indexed.
type FreeCache struct {
	cached *freecache.Cache
}

// NewFreeCache returns a new cache with a parametrized size.
func NewFreeCache(initialSize int) *FreeCache {
	cache := freecache.NewCache(initialSize)
	return &FreeCache{cached: cache}
}

// Get function returns the value of a given key in cache, and a boolean showing if
// the key is or is not present.
func (c FreeCache) Get(key hashing.Digest) ([]byte, bool) {
	value, err := c.cached.Get(key[:])
	if err != nil {
		return nil, false
	}
	return value, true
}

// Put function adds a new key/value pair to the cache. Entries never expire
// but can be evicted.
func (c *FreeCache) Put(key hashing.Digest, value []byte) {
	_ = c.cached.Set(key[:], value, 0)
}

// Size function returns the number of items currently in the cache.
func (c FreeCache) Size() int {
	return int(c.cached.EntryCount())
}
