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
	"github.com/bbva/merkleroot/log"
	"github.com/pkg/errors"
)

// ReducerOptionF is a function that configures a Reducer.
type ReducerOptionF func(*Reducer) error

// SetParallelism hashes the pairs of a level with up to workers goroutines
// when the level has at least threshold pairs. A threshold of zero keeps
// DefaultParallelThreshold. The root does not depend on these values.
func SetParallelism(workers, threshold int) ReducerOptionF {
	return func(r *Reducer) error {
		if workers < 1 {
			return errors.Errorf("parallelism must be at least 1, got %d", workers)
		}
		if threshold < 0 {
			return errors.Errorf("parallel threshold must not be negative, got %d", threshold)
		}
		r.workers = workers
		if threshold > 0 {
			r.threshold = threshold
		}
		return nil
	}
}

// SetLevelVisitor registers a function called with every padded level.
func SetLevelVisitor(visitor LevelVisitor) ReducerOptionF {
	return func(r *Reducer) error {
		r.visitor = visitor
		return nil
	}
}

// SetLogger replaces the reducer logger.
func SetLogger(logger log.Logger) ReducerOptionF {
	return func(r *Reducer) error {
		if logger == nil {
			return errors.New("logger must not be nil")
		}
		r.log = logger
		return nil
	}
}
