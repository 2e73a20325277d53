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

// Package cache implements content-addressed indexes from a leaf digest to
// the block it was computed from.
//
// An index is a lookup aid only: roots never depend on it. Bounded
// implementations (FastCache, FreeCache) may evict entries, so a miss does
// not mean the block was never inserted.
package cache

import (
	"strings"

	"github.com/bbva/merkleroot/crypto/hashing"
	"github.com/pkg/errors"
)

// Cache interface defines the operations a content index must implement to
// be usable within the store.
type Cache interface {
	Put(key hashing.Digest, value []byte)
	Get(key hashing.Digest) ([]byte, bool)
	Size() int
}

// Kind names a Cache implementation.
type Kind string

const (
	None   Kind = "none"
	Simple Kind = "simple"
	Fast   Kind = "fast"
	Free   Kind = "free"
	BTree  Kind = "btree"
)

// ErrUnknownKind is returned for an unsupported cache kind.
var ErrUnknownKind = errors.New("unknown index kind")

// ParseKind accepts a kind name, case insensitive. The empty string maps to
// None.
func ParseKind(name string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(name)))
	switch k {
	case "":
		return None, nil
	case None, Simple, Fast, Free, BTree:
		return k, nil
	default:
		return "", errors.Wrapf(ErrUnknownKind, "%q", name)
	}
}

// New builds a cache of the given kind. size is the memory budget in bytes
// for Fast and Free. Simple and BTree grow on demand and ignore it. None
// returns a nil Cache.
func New(kind Kind, size int) (Cache, error) {
	switch kind {
	case None, "":
		return nil, nil
	case Simple:
		return NewSimpleCache(0), nil
	case Fast:
		return NewFastCache(int64(size)), nil
	case Free:
		return NewFreeCache(size), nil
	case BTree:
		return NewBTreeCache(), nil
	default:
		return nil, errors.Wrapf(ErrUnknownKind, "%q", string(kind))
	}
}
