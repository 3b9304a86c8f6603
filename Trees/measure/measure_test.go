package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStats(t *testing.T) {
	avg, stddev := stats([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	require.Equal(t, 5.0, avg)
	require.Equal(t, 2.0, stddev)
	avg, stddev = stats(nil)
	require.Zero(t, avg)
	require.Zero(t, stddev)
}

func TestCheck(t *testing.T) {
	require.Empty(t, check(500, 7))
	require.Empty(t, check(1, 7))
}

func TestVerify(t *testing.T) {
	bad, err := verify(300, 16, 3, 1)
	require.NoError(t, err)
	require.Zero(t, bad)
}

func TestApp(t *testing.T) {
	run := func(args ...string) string {
		var out, errOut bytes.Buffer
		app := newApp()
		app.Writer, app.ErrWriter = &out, &errOut
		require.NoError(t, app.Run(append([]string{"measure"}, args...)))
		return out.String()
	}
	s := run("-n", "7", "dot")
	require.True(t, strings.HasPrefix(strings.TrimSpace(s), "digraph"))
	require.Equal(t, 6, strings.Count(s, "->"))
	s = run("-n", "7", "dot", "-heap")
	require.Equal(t, 6, strings.Count(s, "->"))
	run("-n", "200", "-rounds", "4", "-workers", "2", "verify")
}
