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

import "github.com/prometheus/client_golang/prometheus"

const namespace = "merkleroot"
const subSystem = "store"

var (
	InsertTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "insert_total",
			Help:      "Number of blocks inserted.",
		},
	)
	InsertRejectedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "insert_rejected_total",
			Help:      "Number of blocks rejected for exceeding the max block size.",
		},
	)
	RootTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subSystem,
			Name:      "root_total",
			Help:      "Number of root requests, including those on an empty tree.",
		},
	)
	RootDurationSeconds = prometheus.NewSummary(
		prometheus.SummaryOpts{
			Namespace:  namespace,
			Subsystem:  subSystem,
			Name:       "root_duration_seconds",
			Help:       "Duration of successful root computations.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
	)

	// Collectors lists every collector of this package.
	Collectors = []prometheus.Collector{
		InsertTotal,
		InsertRejectedTotal,
		RootTotal,
		RootDurationSeconds,
	}
)
