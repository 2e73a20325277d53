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
	"errors"
	"fmt"
	"testing"

	"github.com/bbva/merkleroot/crypto/hashing"
	"github.com/bbva/merkleroot/testutils/rand"
	"github.com/stretchr/testify/require"
)

func testCache(t *testing.T, cache Cache) {
	hasher := hashing.NewSha256Hasher()

	testCases := []struct {
		value  []byte
		cached bool
	}{
		{[]byte{0x1}, true},
		{[]byte("second block"), true},
		{[]byte("never inserted"), false},
	}

	for i, c := range testCases {
		key := hasher.Do(c.value)
		if c.cached {
			cache.Put(key, c.value)
		}

		cachedValue, ok := cache.Get(key)

		if c.cached {
			require.Truef(t, ok, "The key should exists in cache in test case %d", i)
			require.Equalf(t, c.value, cachedValue, "The cached value should be equal to stored value in test case %d", i)
		} else {
			require.Falsef(t, ok, "The key should not exist in cache in test case %d", i)
		}
	}
}

func testFillCache(t *testing.T, cache Cache, numElems int) {
	hasher := hashing.NewSha256Hasher()
	keys := make([]hashing.Digest, numElems)
	for i := range keys {
		value := []byte(fmt.Sprintf("block %d", i))
		keys[i] = hasher.Do(value)
		cache.Put(keys[i], value)
	}

	require.Equal(t, numElems, cache.Size())
	for i, key := range keys {
		value, ok := cache.Get(key)
		require.Truef(t, ok, "The element %d should be in cache", i)
		require.Equal(t, []byte(fmt.Sprintf("block %d", i)), value)
	}
}

func TestSimpleCache(t *testing.T)     { testCache(t, NewSimpleCache(0)) }
func TestFastCache(t *testing.T)       { testCache(t, NewFastCache(32*1024*1024)) }
func TestFreeCache(t *testing.T)       { testCache(t, NewFreeCache(1024*1024)) }
func TestBTreeCache(t *testing.T)      { testCache(t, NewBTreeCache()) }
func TestFillSimpleCache(t *testing.T) { testFillCache(t, NewSimpleCache(0), 10000) }
func TestFillFreeCache(t *testing.T)   { testFillCache(t, NewFreeCache(10000*1024), 10000) }
func TestFillBTreeCache(t *testing.T)  { testFillCache(t, NewBTreeCache(), 10000) }

func TestFastCacheBigBlock(t *testing.T) {
	cache := NewFastCache(32 * 1024 * 1024)
	hasher := hashing.NewSha256Hasher()

	big := rand.Bytes(3 * bigValueSize)
	key := hasher.Do(big)
	cache.Put(key, big)

	value, ok := cache.Get(key)
	require.True(t, ok)
	require.Equal(t, big, value)
}

func TestBTreeCacheAscend(t *testing.T) {
	cache := NewBTreeCache()
	hasher := hashing.NewSha256Hasher()
	for i := 0; i < 100; i++ {
		value := []byte(fmt.Sprintf("block %d", i))
		cache.Put(hasher.Do(value), value)
	}

	var previous *hashing.Digest
	visited := 0
	cache.Ascend(func(key hashing.Digest, value []byte) bool {
		if previous != nil {
			require.True(t, previous.String() < key.String(), "Digests must be visited in ascending order")
		}
		k := key
		previous = &k
		visited++
		return visited < 50
	})
	require.Equal(t, 50, visited)
}

func TestSimpleCacheEqual(t *testing.T) {
	a, b := NewSimpleCache(0), NewSimpleCache(0)
	key := hashing.NewSha256Hasher().Do([]byte("x"))

	a.Put(key, []byte("x"))
	require.False(t, a.Equal(b))

	b.Put(key, []byte("x"))
	require.True(t, a.Equal(b))
}

func TestNew(t *testing.T) {

	testCases := []struct {
		name  string
		isNil bool
		err   bool
	}{
		{"", true, false},
		{"none", true, false},
		{"simple", false, false},
		{"FAST", false, false},
		{"free", false, false},
		{"btree", false, false},
		{"redis", true, true},
	}

	for i, c := range testCases {
		kind, err := ParseKind(c.name)
		if c.err {
			require.Errorf(t, err, "Expected error in test case %d", i)
			require.True(t, errors.Is(err, ErrUnknownKind))
			continue
		}
		require.NoErrorf(t, err, "Unexpected error in test case %d", i)

		cache, err := New(kind, 1024*1024)
		require.NoErrorf(t, err, "Unexpected error in test case %d", i)
		require.Equalf(t, c.isNil, cache == nil, "Wrong cache in test case %d", i)
	}

	_, err := New(Kind("memcached"), 0)
	require.Error(t, err)
}

func TestNewIgnoresSizeForGrowingKinds(t *testing.T) {
	for _, kind := range []Kind{Simple, BTree} {
		cache, err := New(kind, int(^uint(0)>>1))
		require.NoError(t, err)
		require.Equal(t, 0, cache.Size())
	}
}
