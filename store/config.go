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
	"strings"

	"github.com/bbva/merkleroot/crypto/hashing"
	"github.com/bbva/merkleroot/merkle"
	"github.com/bbva/merkleroot/store/cache"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	v "github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment variables overriding the
// configuration, e.g. MERKLEROOT_PADDING=duplicate.
const EnvPrefix = "MERKLEROOT"

// Config holds every setting of a Tree.
type Config struct {
	// Log level: off, error, warn, info, debug or trace.
	Log string

	// Hash algorithm for leaves and interior nodes.
	HashAlgorithm string

	// Padding policy for odd levels: zero or duplicate.
	Padding string

	// Largest accepted block, in bytes. Zero disables the limit.
	MaxBlockSize int

	// Number of goroutines hashing the pairs of one level.
	Parallelism int

	// Minimum number of pairs in a level to hash it in parallel.
	ParallelThreshold int

	// Content index: none, simple, fast, free or btree.
	Index string

	// Memory budget in bytes of the fast and free indexes. The simple and
	// btree indexes grow on demand and ignore it.
	IndexSize int
}

// DefaultConfig returns a SHA-256, zero padding, unindexed configuration.
func DefaultConfig() *Config {
	return &Config{
		Log:               "error",
		HashAlgorithm:     string(hashing.DefaultAlgorithm),
		Padding:           merkle.DefaultPadding.String(),
		MaxBlockSize:      0,
		Parallelism:       1,
		ParallelThreshold: merkle.DefaultParallelThreshold,
		Index:             string(cache.None),
		IndexSize:         32 * 1024 * 1024,
	}
}

// Viper keys.
const (
	keyLog               = "log"
	keyHash              = "hash"
	keyPadding           = "padding"
	keyMaxBlockSize      = "max_block_size"
	keyParallelism       = "parallelism"
	keyParallelThreshold = "parallel_threshold"
	keyIndex             = "index"
	keyIndexSize         = "index_size"
)

// NewViper returns a viper instance with the default configuration and the
// environment overrides bound.
func NewViper() *v.Viper {
	conf := DefaultConfig()

	vp := v.New()
	vp.SetDefault(keyLog, conf.Log)
	vp.SetDefault(keyHash, conf.HashAlgorithm)
	vp.SetDefault(keyPadding, conf.Padding)
	vp.SetDefault(keyMaxBlockSize, conf.MaxBlockSize)
	vp.SetDefault(keyParallelism, conf.Parallelism)
	vp.SetDefault(keyParallelThreshold, conf.ParallelThreshold)
	vp.SetDefault(keyIndex, conf.Index)
	vp.SetDefault(keyIndexSize, conf.IndexSize)

	vp.SetEnvPrefix(EnvPrefix)
	vp.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	vp.AutomaticEnv()
	return vp
}

// ConfigFromViper reads a Config from vp.
func ConfigFromViper(vp *v.Viper) *Config {
	return &Config{
		Log:               vp.GetString(keyLog),
		HashAlgorithm:     vp.GetString(keyHash),
		Padding:           vp.GetString(keyPadding),
		MaxBlockSize:      vp.GetInt(keyMaxBlockSize),
		Parallelism:       vp.GetInt(keyParallelism),
		ParallelThreshold: vp.GetInt(keyParallelThreshold),
		Index:             vp.GetString(keyIndex),
		IndexSize:         vp.GetInt(keyIndexSize),
	}
}

// LoadConfig reads the configuration file at path (any format viper
// supports, chosen by extension) on top of the defaults, then applies the
// MERKLEROOT_* environment variables. An empty path skips the file.
func LoadConfig(path string) (*Config, error) {
	vp := NewViper()

	if path != "" {
		expanded, err := homedir.Expand(path)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to expand config path %s", path)
		}
		vp.SetConfigFile(expanded)
		if err := vp.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "unable to read config file %s", expanded)
		}
	}

	conf := ConfigFromViper(vp)
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// Validate checks every field without building a tree.
func (c *Config) Validate() error {
	_, err := configToOptions(c)
	return err
}
