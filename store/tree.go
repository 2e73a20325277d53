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

// Package store implements an append-only, in-memory block store that
// computes the Merkle root of its contents on demand.
//
// Blocks are kept in insertion order together with their leaf digests.
// Inserting and computing roots are safe from any number of goroutines: a
// root covers exactly the blocks inserted before it started.
package store

import (
	"sync"
	"time"

	"github.com/bbva/merkleroot/crypto/hashing"
	"github.com/bbva/merkleroot/log"
	"github.com/bbva/merkleroot/merkle"
	"github.com/bbva/merkleroot/store/cache"
	"github.com/pborman/uuid"
	"github.com/pkg/errors"
)

// Tree is an append-only block store. Its zero value is not usable; build
// one with NewTree or NewTreeFromConfig.
type Tree struct {
	lock sync.RWMutex

	id           string
	alg          hashing.Algorithm
	hasherF      hashing.HasherF
	hashers      sync.Pool
	padding      merkle.Padding
	workers      int
	threshold    int
	maxBlockSize int
	reducer      *merkle.Reducer
	index        cache.Cache

	blocks [][]byte
	leaves []hashing.Digest

	log log.Logger
}

// NewTree returns an empty tree. Without options it hashes with SHA-256,
// pads odd levels with the zero digest, accepts blocks of any size and
// keeps no index.
func NewTree(options ...TreeOptionF) (*Tree, error) {
	t := &Tree{
		id:      uuid.New(),
		padding: merkle.DefaultPadding,
		workers: 1,
		log:     log.L(),
	}
	if err := SetHashAlgorithm(hashing.DefaultAlgorithm)(t); err != nil {
		return nil, err
	}

	for _, option := range options {
		if err := option(t); err != nil {
			return nil, err
		}
	}

	t.log = t.log.Named("store")
	hasherF := t.hasherF
	t.hashers.New = func() interface{} { return hasherF() }

	reducer, err := merkle.NewReducer(
		t.hasherF,
		t.padding,
		merkle.SetParallelism(t.workers, t.threshold),
		merkle.SetLogger(t.log.Named("reducer")),
	)
	if err != nil {
		return nil, err
	}
	t.reducer = reducer

	t.log.Infof("Created tree %s: algorithm=%s padding=%s", t.id, t.alg, t.padding)
	return t, nil
}

// NewTreeFromConfig builds a tree configured by conf. A nil conf behaves
// like DefaultConfig.
func NewTreeFromConfig(conf *Config) (*Tree, error) {
	if conf == nil {
		conf = DefaultConfig()
	}
	options, err := configToOptions(conf)
	if err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return NewTree(options...)
}

// Insert appends a copy of block. Later changes to the caller's slice do
// not affect the tree. Blocks of any content, including empty ones, are
// accepted; only a configured MaxBlockSize can reject one.
func (t *Tree) Insert(block []byte) error {
	if t.maxBlockSize > 0 && len(block) > t.maxBlockSize {
		InsertRejectedTotal.Inc()
		t.log.Warnf("Rejected block of %d bytes: limit is %d", len(block), t.maxBlockSize)
		return errors.Wrapf(ErrBlockTooLarge, "%d bytes, limit is %d", len(block), t.maxBlockSize)
	}

	owned := make([]byte, len(block))
	copy(owned, block)

	hasher := t.hashers.Get().(hashing.Hasher)
	leaf := merkle.LeafHash(hasher, owned)
	t.hashers.Put(hasher)

	t.lock.Lock()
	t.blocks = append(t.blocks, owned)
	t.leaves = append(t.leaves, leaf)
	if t.index != nil {
		t.index.Put(leaf, owned)
	}
	count := len(t.leaves)
	t.lock.Unlock()

	InsertTotal.Inc()
	if t.log.IsTrace() {
		t.log.Tracef("Inserted block %d with leaf %s", count-1, leaf)
	}
	return nil
}

// Root returns the Merkle root of the blocks inserted so far. It returns
// merkle.ErrEmptyTree when there are none. Computing a root does not
// modify the tree, and inserts may proceed while it runs.
func (t *Tree) Root() (hashing.Digest, error) {
	start := time.Now()
	RootTotal.Inc()

	t.lock.RLock()
	// Appends never touch the first len(t.leaves) elements, so the
	// snapshot stays valid after the lock is released.
	leaves := t.leaves[:len(t.leaves):len(t.leaves)]
	t.lock.RUnlock()

	root, err := t.reducer.Reduce(leaves)
	if err != nil {
		t.log.Debugf("Unable to compute root of tree %s: %v", t.id, err)
		return root, err
	}

	RootDurationSeconds.Observe(time.Since(start).Seconds())
	t.log.Debugf("Computed root %s of tree %s over %d blocks", root, t.id, len(leaves))
	return root, nil
}

// Len returns the number of blocks in the tree.
func (t *Tree) Len() int {
	t.lock.RLock()
	defer t.lock.RUnlock()
	return len(t.leaves)
}

// IsEmpty reports whether no block has been inserted yet.
func (t *Tree) IsEmpty() bool {
	return t.Len() == 0
}

// Block returns a copy of the i-th inserted block, counting from zero.
func (t *Tree) Block(i int) ([]byte, error) {
	t.lock.RLock()
	defer t.lock.RUnlock()
	if i < 0 || i >= len(t.blocks) {
		return nil, errors.Wrapf(ErrOutOfRange, "block %d of %d", i, len(t.blocks))
	}
	return append([]byte(nil), t.blocks[i]...), nil
}

// Leaf returns the leaf digest of the i-th inserted block.
func (t *Tree) Leaf(i int) (hashing.Digest, error) {
	t.lock.RLock()
	defer t.lock.RUnlock()
	if i < 0 || i >= len(t.leaves) {
		return hashing.ZeroDigest, errors.Wrapf(ErrOutOfRange, "leaf %d of %d", i, len(t.leaves))
	}
	return t.leaves[i], nil
}

// Get looks a block up by its leaf digest and returns a copy of it.
// Without an index every lookup returns ErrNotFound.
func (t *Tree) Get(leaf hashing.Digest) ([]byte, error) {
	if t.index == nil {
		return nil, errors.Wrap(ErrNotFound, "no index configured")
	}
	t.lock.RLock()
	block, ok := t.index.Get(leaf)
	t.lock.RUnlock()
	if !ok {
		return nil, errors.Wrapf(ErrNotFound, "leaf %s", leaf)
	}
	return append([]byte(nil), block...), nil
}

// ID returns the random identifier the tree was created with.
func (t *Tree) ID() string {
	return t.id
}

// Algorithm returns the hash algorithm of leaves and interior nodes.
func (t *Tree) Algorithm() hashing.Algorithm {
	return t.alg
}

// Padding returns the policy used to complete odd levels.
func (t *Tree) Padding() merkle.Padding {
	return t.padding
}
