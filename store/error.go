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
	"github.com/bbva/merkleroot/store/cache"
	"github.com/pkg/errors"
)

var (
	// ErrBlockTooLarge is returned by Insert when a block exceeds the
	// configured MaxBlockSize.
	ErrBlockTooLarge = errors.New("block too large")

	// ErrOutOfRange is returned for a block position not in the tree.
	ErrOutOfRange = errors.New("position out of range")

	// ErrNotFound is returned when no indexed block has a given leaf digest.
	ErrNotFound = errors.New("block not found")

	// ErrUnknownIndex is returned for an unsupported index kind.
	ErrUnknownIndex = cache.ErrUnknownKind
)
