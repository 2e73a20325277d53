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

// Package merkle folds a sequence of leaf digests into a single Merkle root.
//
// Levels are reduced bottom-up pairing siblings left to right. Each interior
// node is H(left || right), the raw 64 byte concatenation of its children
// with no separator, length prefix or domain tag. A level with an odd number
// of digests is completed with one padding digest, chosen by a Padding
// policy, before pairing. A single leaf is padded and hashed once.
package merkle

import (
	"github.com/bbva/merkleroot/crypto/hashing"
	"github.com/bbva/merkleroot/log"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// DefaultParallelThreshold is the minimum number of pairs in a level for it
// to be hashed by more than one worker.
const DefaultParallelThreshold = 4096

// LevelVisitor is called once per level, after padding and before pairing.
// Depth 0 is the leaf level. The slice is owned by the reducer and is only
// valid during the call.
type LevelVisitor func(depth int, level []hashing.Digest)

// Reducer computes Merkle roots with a fixed hash algorithm and padding
// policy. A Reducer holds no per-call state and is safe for concurrent use.
type Reducer struct {
	hasherF   hashing.HasherF
	padding   Padding
	workers   int
	threshold int
	visitor   LevelVisitor
	log       log.Logger
}

// NewReducer returns a reducer hashing with hashers built by hasherF.
func NewReducer(hasherF hashing.HasherF, padding Padding, options ...ReducerOptionF) (*Reducer, error) {
	if hasherF == nil {
		return nil, errors.New("a hasher constructor is required")
	}
	if !padding.valid() {
		return nil, errors.Wrapf(ErrUnknownPadding, "%d", padding)
	}

	r := &Reducer{
		hasherF:   hasherF,
		padding:   padding,
		workers:   1,
		threshold: DefaultParallelThreshold,
		log:       log.L().Named("reducer"),
	}
	for _, option := range options {
		if err := option(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Padding returns the padding policy of the reducer.
func (r *Reducer) Padding() Padding {
	return r.padding
}

// Reduce folds leaves into their Merkle root. It fails with ErrEmptyTree
// when there are no leaves. The leaves slice is not modified.
func (r *Reducer) Reduce(leaves []hashing.Digest) (hashing.Digest, error) {
	if len(leaves) == 0 {
		EmptyTreeTotal.Inc()
		return hashing.ZeroDigest, ErrEmptyTree
	}

	// One spare slot for the padding of the leaf level. Upper levels are
	// written in place over the first half of the buffer, so they always
	// have room for their own padding digest.
	level := make([]hashing.Digest, len(leaves), len(leaves)+1)
	copy(level, leaves)

	hasher := r.hasherF()

	for depth := 0; ; depth++ {
		if len(level)%2 != 0 {
			level = append(level, r.padding.Pad(level))
			PaddingTotal.Inc()
		}

		if r.visitor != nil {
			r.visitor(depth, level)
		}

		pairs := len(level) / 2
		if r.log.IsTrace() {
			r.log.Tracef("Reducing level %d: %d digests into %d", depth, len(level), pairs)
		}

		if r.workers > 1 && pairs >= r.threshold {
			level = r.parallelPairs(level)
		} else {
			level = hashPairs(hasher, level)
		}
		HashTotal.Add(float64(pairs))

		if len(level) == 1 {
			break
		}
	}

	ReduceTotal.Inc()
	return level[0], nil
}

// hashPairs reduces an even sized level in place and returns the next level,
// which aliases the first half of the input. Writing slot i only after
// reading slots 2i and 2i+1 never clobbers a digest still to be read.
func hashPairs(hasher hashing.Hasher, level []hashing.Digest) []hashing.Digest {
	next := level[:len(level)/2]
	for i := range next {
		left, right := level[2*i], level[2*i+1]
		next[i] = hasher.Do(left[:], right[:])
	}
	return next
}

// parallelPairs reduces an even sized level with up to r.workers goroutines.
// Each worker owns a contiguous run of pairs and its own hasher, and writes
// into its own slots of a fresh buffer, so pair order is preserved.
func (r *Reducer) parallelPairs(level []hashing.Digest) []hashing.Digest {
	pairs := len(level) / 2
	next := make([]hashing.Digest, pairs, pairs+1)

	chunk := (pairs + r.workers - 1) / r.workers

	var g errgroup.Group
	g.SetLimit(r.workers)
	for start := 0; start < pairs; start += chunk {
		start, end := start, start+chunk
		if end > pairs {
			end = pairs
		}
		g.Go(func() error {
			hasher := r.hasherF()
			for i := start; i < end; i++ {
				left, right := level[2*i], level[2*i+1]
				next[i] = hasher.Do(left[:], right[:])
			}
			return nil
		})
	}
	// Workers never return an error.
	_ = g.Wait()

	return next
}
