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

package metrics

import (
	"testing"

	"github.com/bbva/merkleroot/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	r := prometheus.NewRegistry()
	Register(r)
	// A second call must not panic on duplicate registration.
	Register(r)

	tree, err := store.NewTree()
	require.NoError(t, err)
	require.NoError(t, tree.Insert([]byte("block")))
	_, err = tree.Root()
	require.NoError(t, err)

	families, err := r.Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}

	for _, name := range []string{
		"merkleroot_reducer_reduce_total",
		"merkleroot_reducer_hash_total",
		"merkleroot_reducer_padding_total",
		"merkleroot_reducer_empty_tree_total",
		"merkleroot_store_insert_total",
		"merkleroot_store_insert_rejected_total",
		"merkleroot_store_root_total",
		"merkleroot_store_root_duration_seconds",
	} {
		require.Truef(t, names[name], "Metric %s should be registered", name)
	}
	require.Len(t, Collectors(), 8)
}
