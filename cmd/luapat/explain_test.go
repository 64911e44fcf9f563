package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunExplain(t *testing.T) {
	cmd, out, _ := newTestCmd("")

	err := runExplain(cmd, []string{"^%a+()"})
	require.NoError(t, err)
	assert.Equal(t, "anchored at start\n1\tclass\t%a\t+\n4\tposition\t()\n", out.String())
}

func TestRunExplainInvalid(t *testing.T) {
	cmd, _, _ := newTestCmd("")

	err := runExplain(cmd, []string{"%f"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing '[' after '%f' in pattern")
}
