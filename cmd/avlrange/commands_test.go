package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestCount(t *testing.T) {
	out, _, err := run(t, "10 20 30\n40 50\n", "count", "15", "45")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	out, _, err = run(t, "", "count", "0", "10")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)

	out, logs, err := run(t, "1 2 3", "count", "3", "1")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
	assert.Contains(t, logs, "empty range")
}

func TestCount_BadInput(t *testing.T) {
	_, _, err := run(t, "1 two 3", "count", "0", "5")
	assert.ErrorContains(t, err, "reading value 2")

	_, _, err = run(t, "", "count", "x", "5")
	assert.ErrorContains(t, err, "LOWER")

	_, _, err = run(t, "", "count", "1")
	assert.Error(t, err)
}

func TestRandom(t *testing.T) {
	out, logs, err := run(t, "", "random", "-n", "5", "--sorted", "--check", "-v")
	require.NoError(t, err)
	assert.Contains(t, out, "1 [w=5 h=2 b=-1]")
	assert.Contains(t, out, "size: 5 height: 2")
	assert.Contains(t, logs, "tree invariants hold")
	assert.Contains(t, logs, "building sorted tree")

	seeded1, _, err := run(t, "", "random", "-n", "20", "-s", "99")
	require.NoError(t, err)
	seeded2, _, err := run(t, "", "random", "-n", "20", "-s", "99")
	require.NoError(t, err)
	assert.Equal(t, seeded1, seeded2)

	_, _, err = run(t, "", "random", "-n", "-1")
	assert.Error(t, err)
}
