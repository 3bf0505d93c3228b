// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/core"
)

// ladderAdjacency is the cat/cot/cog/dog/dot fixture wired by hand.
func ladderAdjacency() map[string][]string {
	return map[string][]string{
		"cat": {"cot"},
		"cot": {"cat", "cog", "dot"},
		"cog": {"cot", "dog"},
		"dog": {"cog", "dot"},
		"dot": {"cot", "dog"},
	}
}

func TestNewGraph_Basics(t *testing.T) {
	g := core.NewGraph(ladderAdjacency())

	assert.Equal(t, 5, g.Order())
	assert.Equal(t, 5, g.EdgeCount())
	assert.Equal(t, []string{"cat", "cog", "cot", "dog", "dot"}, g.Vertices())
	assert.True(t, g.Contains("cog"))
	assert.False(t, g.Contains("cut"))
	require.NoError(t, g.Verify())
}

func TestNode_NeighborsSortedAndDeduplicated(t *testing.T) {
	g := core.NewGraph(map[string][]string{
		"a":  {"b", "ab", "b", "ab"},
		"b":  {"a"},
		"ab": {"a"},
	})
	n, ok := g.Node("a")
	require.True(t, ok)
	assert.Equal(t, []string{"ab", "b"}, n.Neighbors())
	assert.Equal(t, 2, n.Degree())
	assert.True(t, n.HasNeighbor("ab"))
	assert.False(t, n.HasNeighbor("a"))
}

func TestGraph_NeighborsMissing(t *testing.T) {
	g := core.NewGraph(ladderAdjacency())
	_, err := g.Neighbors("zzz")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	nbrs, err := g.Neighbors("cot")
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "cog", "dot"}, nbrs)
}

func TestGraph_Verify(t *testing.T) {
	cases := []struct {
		name string
		adj  map[string][]string
		want error
	}{
		{"dangling", map[string][]string{"a": {"b"}}, core.ErrDanglingEdge},
		{"asymmetric", map[string][]string{"a": {"b"}, "b": {}}, core.ErrAsymmetric},
		{"self loop", map[string][]string{"a": {"a"}}, core.ErrSelfLoop},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, core.NewGraph(tc.adj).Verify(), tc.want)
		})
	}
}

func TestNewGraph_IsolatedNode(t *testing.T) {
	g := core.NewGraph(map[string][]string{"solo": nil})
	n, ok := g.Node("solo")
	require.True(t, ok)
	assert.Empty(t, n.Neighbors())
	assert.Zero(t, g.EdgeCount())
}
