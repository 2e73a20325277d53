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

import "github.com/pkg/errors"

var (
	// ErrEmptyTree is returned when a root is requested for zero leaves.
	// There is no root for an empty dataset; callers must not substitute
	// a zero digest for it.
	ErrEmptyTree = errors.New("no root exists for zero blocks")
)
