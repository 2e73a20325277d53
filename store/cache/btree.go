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
	"github.com/google/btree"
)

const btreeDegree = 32

type entry struct {
	key   hashing.Digest
	value []byte
}

func (e *entry) Less(than btree.Item) bool {
	o := than.(*entry)
	return bytes.Compare(e.key[:], o.key[:]) < 0
}

// BTreeCache is an unbounded index kept ordered by digest.
type BTreeCache struct {
	tree *btree.BTree
}

func NewBTreeCache() *BTreeCache {
	return &BTreeCache{tree: btree.New(btreeDegree)}
}

func (c BTreeCache) Get(key hashing.Digest) ([]byte, bool) {
	item := c.tree.Get(&entry{key: key})
	if item == nil {
		return nil, false
	}
	return item.(*entry).value, true
}

func (c *BTreeCache) Put(key hashing.Digest, value []byte) {
	c.tree.ReplaceOrInsert(&entry{key: key, value: value})
}

func (c BTreeCache) Size() int {
	return c.tree.Len()
}

// Ascend calls fn for every indexed block in ascending digest order, until
// fn returns false.
func (c BTreeCache) Ascend(fn func(key hashing.Digest, value []byte) bool) {
	c.tree.Ascend(func(i btree.Item) bool {
		e := i.(*entry)
		return fn(e.key, e.value)
	})
}
