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
	"github.com/VictoriaMetrics/fastcache"
	"github.com/bbva/merkleroot/crypto/hashing"
)

// FastCache is a bounded index backed by fastcache. Old entries are
// evicted when maxBytes is reached.
type FastCache struct {
	cached *fastcache.Cache
}

// Blocks of at least this size go through SetBig, under a key of their own
// so the chunk metadata is never returned as a block.
const bigValueSize = 64 * 1024

var bigKeySuffix = []byte{0x01}

func NewFastCache(maxBytes int64) *FastCache {
	cache := fastcache.New(int(maxBytes))
	return &FastCache{cached: cache}
}

func bigKey(key hashing.Digest) []byte {
	return append(key[:], bigKeySuffix...)
}

func (c FastCache) Get(key hashing.Digest) ([]byte, bool) {
	if value, ok := c.cached.HasGet(nil, key[:]); ok {
		return value, true
	}
	value := c.cached.GetBig(nil, bigKey(key))
	if value == nil {
		return nil, false
	}
	return value, true
}

func (c *FastCache) Put(key hashing.Digest, value []byte) {
	if len(value) >= bigValueSize {
		c.cached.SetBig(bigKey(key), value)
		return
	}
	c.cached.Set(key[:], value)
}

// Size returns the number of fastcache entries. A big block spans several.
func (c FastCache) Size() int {
	var s fastcache.Stats
	c.cached.UpdateStats(&s)
	return int(s.EntriesCount)
}
