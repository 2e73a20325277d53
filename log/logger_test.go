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

package log

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLevelFromString(t *testing.T) {

	testCases := []struct {
		name     string
		expected Level
	}{
		{"off", Off},
		{"silent", Off},
		{"ERROR", Error},
		{" warn ", Warn},
		{"info", Info},
		{"debug", Debug},
		{"trace", Trace},
		{"verbose", NotSet},
	}

	for i, c := range testCases {
		require.Equalf(t, c.expected, LevelFromString(c.name), "Wrong level in test case %d", i)
	}

	require.Equal(t, "debug", Debug.String())
	require.Equal(t, "unknown", NotSet.String())
}

func TestLevelFiltering(t *testing.T) {

	testCases := []struct {
		level   Level
		emitted []string
		dropped []string
	}{
		{Off, nil, []string{"trace-msg", "debug-msg", "info-msg", "warn-msg", "error-msg"}},
		{Error, []string{"error-msg"}, []string{"trace-msg", "debug-msg", "info-msg", "warn-msg"}},
		{Info, []string{"info-msg", "warn-msg", "error-msg"}, []string{"trace-msg", "debug-msg"}},
		{Trace, []string{"trace-msg", "debug-msg", "info-msg", "warn-msg", "error-msg"}, nil},
	}

	for i, c := range testCases {
		var buf bytes.Buffer
		l := New(&LoggerOptions{Level: c.level, Output: &buf})

		l.Trace("trace-msg")
		l.Debugf("%s-msg", "debug")
		l.Info("info-msg")
		l.Warnf("%s-msg", "warn")
		l.Errorf("%s-msg", "error")

		out := buf.String()
		for _, msg := range c.emitted {
			require.Containsf(t, out, msg, "Message should be emitted in test case %d", i)
		}
		for _, msg := range c.dropped {
			require.NotContainsf(t, out, msg, "Message should be dropped in test case %d", i)
		}
	}
}

func TestNamedAndWithLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&LoggerOptions{Name: "store", Level: Info, Output: &buf})

	named := l.Named("tree")
	named.Info("created")
	require.Contains(t, buf.String(), "store.tree")
	require.Contains(t, buf.String(), "created")

	buf.Reset()
	named.Debug("hidden")
	require.Empty(t, buf.String())

	verbose := named.WithLevel(Debug)
	require.True(t, verbose.IsDebug())
	require.False(t, verbose.IsTrace())
	require.Equal(t, Debug, verbose.GetLevel())

	verbose.Debug("visible")
	require.True(t, strings.Contains(buf.String(), "visible"))
}

func TestDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	prev := SetDefault(New(&LoggerOptions{Level: Warn, Output: &buf}))
	defer SetDefault(prev)

	L().Warn("careful")
	L().Info("ignored")

	require.Contains(t, buf.String(), "careful")
	require.NotContains(t, buf.String(), "ignored")
}
