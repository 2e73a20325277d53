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

package merkle

import (
	"strings"

	"github.com/bbva/merkleroot/crypto/hashing"
	"github.com/pkg/errors"
)

// Padding is the rule used to complete a level with an odd number of
// digests. It is part of the root format: a root can only be reproduced
// with the same padding and the same hash algorithm.
type Padding uint8

const (
	// ZeroPadding appends the all-zero digest.
	ZeroPadding Padding = iota

	// DuplicatePadding appends a copy of the last digest of the level.
	DuplicatePadding

	DefaultPadding = ZeroPadding
)

// ErrUnknownPadding is returned when a padding name is not supported.
var ErrUnknownPadding = errors.New("unknown padding policy")

// ParsePadding accepts "zero" or "duplicate" ("duplicate-last" and "dup"
// are aliases). The empty string maps to DefaultPadding.
func ParsePadding(name string) (Padding, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "":
		return DefaultPadding, nil
	case "zero":
		return ZeroPadding, nil
	case "duplicate", "duplicate-last", "dup":
		return DuplicatePadding, nil
	default:
		return 0, errors.Wrapf(ErrUnknownPadding, "%q", name)
	}
}

func (p Padding) String() string {
	switch p {
	case ZeroPadding:
		return "zero"
	case DuplicatePadding:
		return "duplicate"
	default:
		return "unknown"
	}
}

func (p Padding) valid() bool {
	return p == ZeroPadding || p == DuplicatePadding
}

// Pad returns the digest to append to an odd sized, non empty level.
func (p Padding) Pad(level []hashing.Digest) hashing.Digest {
	if p == DuplicatePadding {
		return level[len(level)-1]
	}
	return hashing.ZeroDigest
}
