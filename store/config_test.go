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
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bbva/merkleroot/crypto/hashing"
	"github.com/bbva/merkleroot/merkle"
	"github.com/bbva/merkleroot/store/cache"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	conf := DefaultConfig()
	require.NoError(t, conf.Validate())

	tree, err := NewTreeFromConfig(conf)
	require.NoError(t, err)
	require.Equal(t, hashing.SHA256, tree.Algorithm())
	require.Equal(t, merkle.ZeroPadding, tree.Padding())
	require.Nil(t, tree.index)

	tree, err = NewTreeFromConfig(nil)
	require.NoError(t, err)
	require.Equal(t, hashing.SHA256, tree.Algorithm())
}

func TestLoadConfigFromFile(t *testing.T) {
	path := writeConfig(t, "merkleroot.yaml", `
log: silent
hash: blake2b256
padding: duplicate
max_block_size: 16
parallelism: 2
parallel_threshold: 64
index: btree
`)

	conf, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "silent", conf.Log)
	require.Equal(t, "blake2b256", conf.HashAlgorithm)
	require.Equal(t, "duplicate", conf.Padding)
	require.Equal(t, 16, conf.MaxBlockSize)
	require.Equal(t, 2, conf.Parallelism)
	require.Equal(t, 64, conf.ParallelThreshold)
	require.Equal(t, "btree", conf.Index)
	require.Equal(t, DefaultConfig().IndexSize, conf.IndexSize, "Missing keys keep their defaults")

	tree, err := NewTreeFromConfig(conf)
	require.NoError(t, err)
	require.Equal(t, hashing.BLAKE2b256, tree.Algorithm())
	require.Equal(t, merkle.DuplicatePadding, tree.Padding())
	require.IsType(t, &cache.BTreeCache{}, tree.index)

	err = tree.Insert(make([]byte, 17))
	require.True(t, errors.Is(err, ErrBlockTooLarge))
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := writeConfig(t, "merkleroot.yaml", "padding: duplicate\nhash: sha3-256\n")
	t.Setenv("MERKLEROOT_PADDING", "zero")
	t.Setenv("MERKLEROOT_INDEX", "simple")

	conf, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "zero", conf.Padding)
	require.Equal(t, "sha3-256", conf.HashAlgorithm)
	require.Equal(t, "simple", conf.Index)
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("MERKLEROOT_HASH", "keccak256")

	conf, err := LoadConfig("")
	require.NoError(t, err)
	require.Equal(t, "keccak256", conf.HashAlgorithm)
	require.Equal(t, DefaultConfig().Padding, conf.Padding)
}

func TestIndexSizeAllocatesOnlyWhatIsUsed(t *testing.T) {
	t.Setenv("MERKLEROOT_INDEX", "simple")
	t.Setenv("MERKLEROOT_INDEX_SIZE", "1099511627776")

	conf, err := LoadConfig("")
	require.NoError(t, err)
	require.EqualValues(t, int64(1)<<40, conf.IndexSize)

	tree, err := NewTreeFromConfig(conf)
	require.NoError(t, err)
	require.IsType(t, &cache.SimpleCache{}, tree.index)
	require.Equal(t, 0, tree.index.Size())

	// Validation must not build the index: a free index of this size
	// would be allocated up front.
	conf.Index = "free"
	require.NoError(t, conf.Validate())
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	_, err = LoadConfig(writeConfig(t, "bad.yaml", "padding: sideways\n"))
	require.True(t, errors.Is(err, merkle.ErrUnknownPadding))
}

func TestConfigValidate(t *testing.T) {

	testCases := []struct {
		name   string
		modify func(*Config)
		target error
	}{
		{"unknown algorithm", func(c *Config) { c.HashAlgorithm = "md5" }, hashing.ErrUnknownAlgorithm},
		{"unknown padding", func(c *Config) { c.Padding = "random" }, merkle.ErrUnknownPadding},
		{"unknown index", func(c *Config) { c.Index = "redis" }, ErrUnknownIndex},
		{"negative block size", func(c *Config) { c.MaxBlockSize = -1 }, nil},
		{"no workers", func(c *Config) { c.Parallelism = 0 }, nil},
		{"negative threshold", func(c *Config) { c.ParallelThreshold = -1 }, nil},
		{"negative index size", func(c *Config) { c.IndexSize = -1 }, nil},
		{"unknown log level", func(c *Config) { c.Log = "loud" }, nil},
	}

	for _, c := range testCases {
		t.Run(c.name, func(t *testing.T) {
			conf := DefaultConfig()
			c.modify(conf)

			err := conf.Validate()
			require.Error(t, err)
			if c.target != nil {
				require.True(t, errors.Is(err, c.target))
			}

			_, err = NewTreeFromConfig(conf)
			require.Error(t, err)
		})
	}
}
