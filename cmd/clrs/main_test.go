package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paperboard/learnopengl/clrs"
)

func execute(args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSortCommand(t *testing.T) {
	out, err := execute("sort", "-8", "923", "17", "1", "15", "-72", "-23849", "0", "129")
	require.NoError(t, err)
	assert.Equal(t, "-23849 -72 -8 0 1 15 17 129 923\n", out)

	_, err = execute("sort", "1", "two")
	assert.Error(t, err)
}

func TestAddCommand(t *testing.T) {
	out, err := execute("add", "00110", "01010")
	require.NoError(t, err)
	assert.Equal(t, "011010\n", out)

	_, err = execute("add", "01", "1")
	assert.ErrorIs(t, err, clrs.ErrLengthMismatch)

	_, err = execute("add", "012", "110")
	assert.Error(t, err)
}
