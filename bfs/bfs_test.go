package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/builder"
	"github.com/katalvlaran/wordladder/core"
	"github.com/katalvlaran/wordladder/vocab"
)

func ladderGraph(t *testing.T) *core.Graph {
	t.Helper()
	g, err := builder.Build(vocab.New("cat", "cot", "cog", "dog", "dot"))
	require.NoError(t, err)
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "cat")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := ladderGraph(t)
	_, err = bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.BFS(g, "cat", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, "cat", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	boom := errors.New("boom")
	_, err = bfs.BFS(g, "cat", bfs.WithOnVisit(func(string, int) error { return boom }))
	assert.ErrorIs(t, err, boom)
}

func TestBFS_DepthsAndOrder(t *testing.T) {
	res, err := bfs.BFS(ladderGraph(t), "cat")
	require.NoError(t, err)

	assert.Equal(t, []string{"cat", "cot", "cog", "dot", "dog"}, res.Order)
	assert.Equal(t, map[string]int{"cat": 0, "cot": 1, "cog": 2, "dot": 2, "dog": 3}, res.Depth)
	assert.Equal(t, "cog", res.Parent["dog"])
	_, hasParent := res.Parent["cat"]
	assert.False(t, hasParent)
}

func TestBFS_MaxDepth(t *testing.T) {
	res, err := bfs.BFS(ladderGraph(t), "cat", bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "cot"}, res.Order)
}

func TestShortestPath(t *testing.T) {
	g := ladderGraph(t)

	path, err := bfs.ShortestPath(g, "cat", "dog")
	require.NoError(t, err)
	assert.Equal(t, []string{"cat", "cot", "cog", "dog"}, path)

	path, err = bfs.ShortestPath(g, "dog", "dog")
	require.NoError(t, err)
	assert.Equal(t, []string{"dog"}, path)

	split, err := builder.Build(vocab.New("cat", "dog"))
	require.NoError(t, err)
	_, err = bfs.ShortestPath(split, "cat", "dog")
	assert.ErrorIs(t, err, bfs.ErrUnreachable)
}
