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

package store

import (
	"github.com/bbva/merkleroot/crypto/hashing"
	"github.com/bbva/merkleroot/log"
	"github.com/bbva/merkleroot/merkle"
	"github.com/bbva/merkleroot/store/cache"
	"github.com/pkg/errors"
)

// TreeOptionF is a function that configures a Tree.
type TreeOptionF func(*Tree) error

func configToOptions(conf *Config) ([]TreeOptionF, error) {
	if conf == nil {
		return nil, nil
	}

	alg, err := hashing.ParseAlgorithm(conf.HashAlgorithm)
	if err != nil {
		return nil, err
	}
	padding, err := merkle.ParsePadding(conf.Padding)
	if err != nil {
		return nil, err
	}
	kind, err := cache.ParseKind(conf.Index)
	if err != nil {
		return nil, err
	}
	if conf.IndexSize < 0 {
		return nil, errors.Errorf("index size must not be negative, got %d", conf.IndexSize)
	}

	options := []TreeOptionF{
		SetHashAlgorithm(alg),
		SetPadding(padding),
		SetMaxBlockSize(conf.MaxBlockSize),
		SetParallelism(conf.Parallelism, conf.ParallelThreshold),
	}

	if conf.Log != "" {
		level := log.LevelFromString(conf.Log)
		if level == log.NotSet {
			return nil, errors.Errorf("unknown log level %q", conf.Log)
		}
		options = append(options, SetLogger(log.L().WithLevel(level)))
	}

	// Run the options once against a scratch tree so every value is
	// checked here rather than at construction time.
	scratch := new(Tree)
	for _, option := range options {
		if err := option(scratch); err != nil {
			return nil, err
		}
	}

	// The index is the only option that allocates, so it is left out of
	// the check above and built once per tree.
	return append(options, setIndexKind(kind, conf.IndexSize)), nil
}

func setIndexKind(kind cache.Kind, size int) TreeOptionF {
	return func(t *Tree) error {
		index, err := cache.New(kind, size)
		if err != nil {
			return err
		}
		t.index = index
		return nil
	}
}

// SetHashAlgorithm selects the hash of leaves and interior nodes.
func SetHashAlgorithm(alg hashing.Algorithm) TreeOptionF {
	return func(t *Tree) error {
		hasherF, err := alg.HasherF()
		if err != nil {
			return err
		}
		t.alg = alg
		t.hasherF = hasherF
		return nil
	}
}

// SetPadding selects the policy used to complete odd levels.
func SetPadding(padding merkle.Padding) TreeOptionF {
	return func(t *Tree) error {
		if padding != merkle.ZeroPadding && padding != merkle.DuplicatePadding {
			return errors.Wrapf(merkle.ErrUnknownPadding, "%d", padding)
		}
		t.padding = padding
		return nil
	}
}

// SetMaxBlockSize rejects blocks larger than size bytes. Zero means no
// limit.
func SetMaxBlockSize(size int) TreeOptionF {
	return func(t *Tree) error {
		if size < 0 {
			return errors.Errorf("max block size must not be negative, got %d", size)
		}
		t.maxBlockSize = size
		return nil
	}
}

// SetParallelism hashes levels of at least threshold pairs with up to
// workers goroutines.
func SetParallelism(workers, threshold int) TreeOptionF {
	return func(t *Tree) error {
		if workers < 1 {
			return errors.Errorf("parallelism must be at least 1, got %d", workers)
		}
		if threshold < 0 {
			return errors.Errorf("parallel threshold must not be negative, got %d", threshold)
		}
		t.workers = workers
		t.threshold = threshold
		return nil
	}
}

// SetIndex enables lookups of blocks by leaf digest. A nil cache disables
// them.
func SetIndex(index cache.Cache) TreeOptionF {
	return func(t *Tree) error {
		t.index = index
		return nil
	}
}

// SetLogger replaces the tree logger. The tree names it "store".
func SetLogger(logger log.Logger) TreeOptionF {
	return func(t *Tree) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		t.log = logger
		return nil
	}
}
