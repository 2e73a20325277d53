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

import "github.com/prometheus/client_golang/prometheus"

const namespace = "merkleroot"
const subSystem = "reducer"

var (
	ReduceTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "reduce_total",
			Help:      "Number of reductions that produced a root.",
		},
	)
	HashTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "hash_total",
			Help:      "Number of interior node hashes computed.",
		},
	)
	PaddingTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "padding_total",
			Help:      "Number of padding digests appended to odd levels.",
		},
	)
	EmptyTreeTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "empty_tree_total",
			Help:      "Number of reductions rejected because there were no leaves.",
		},
	)

	// Collectors lists every collector of this package.
	Collectors = []prometheus.Collector{
		ReduceTotal,
		HashTotal,
		PaddingTotal,
		EmptyTreeTotal,
	}
)
