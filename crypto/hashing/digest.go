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

package hashing

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

// DigestSize is the size in bytes of every digest produced by this package.
const DigestSize = 32

// Digest is the fixed size output of a Hasher. It is a value type: it can be
// compared with == and used as a map key.
type Digest [DigestSize]byte

// ZeroDigest is the all-zero digest.
var ZeroDigest Digest

// Bytes returns a copy of the digest as a byte slice.
func (d Digest) Bytes() []byte {
	b := make([]byte, DigestSize)
	copy(b, d[:])
	return b
}

// String returns the lowercase hex encoding of the digest.
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// IsZero reports whether d is the all-zero digest.
func (d Digest) IsZero() bool {
	return d == ZeroDigest
}

// ParseDigest decodes a hex encoded digest.
func ParseDigest(s string) (Digest, error) {
	var d Digest
	b, err := hex.DecodeString(s)
	if err != nil {
		return d, errors.Wrapf(err, "unable to decode digest %q", s)
	}
	if len(b) != DigestSize {
		return d, errors.Errorf("digest %q has %d bytes, expected %d", s, len(b), DigestSize)
	}
	copy(d[:], b)
	return d, nil
}

// DigestFromBytes copies b into a Digest. It fails if b is not exactly
// DigestSize bytes long.
func DigestFromBytes(b []byte) (Digest, error) {
	var d Digest
	if len(b) != DigestSize {
		return d, errors.Errorf("got %d bytes, expected %d", len(b), DigestSize)
	}
	copy(d[:], b)
	return d, nil
}
