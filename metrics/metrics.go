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

// Package metrics registers the collectors of every merkleroot package
// with a prometheus registry.
package metrics

import (
	"sync"

	"github.com/bbva/merkleroot/merkle"
	"github.com/bbva/merkleroot/store"
	"github.com/prometheus/client_golang/prometheus"
)

var registerMetrics sync.Once

// Collectors returns the collectors of the reducer and the store.
func Collectors() []prometheus.Collector {
	collectors := make([]prometheus.Collector, 0, len(merkle.Collectors)+len(store.Collectors))
	collectors = append(collectors, merkle.Collectors...)
	collectors = append(collectors, store.Collectors...)
	return collectors
}

// Register all metrics. Only the first call has any effect: the
// collectors are process wide and can belong to a single registry.
func Register(r prometheus.Registerer) {
	registerMetrics.Do(
		func() {
			for _, metric := range Collectors() {
				r.MustRegister(metric)
			}
		},
	)
}
