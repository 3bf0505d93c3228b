package astar_test

import (
	"context"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wordladder/astar"
	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/builder"
	"github.com/katalvlaran/wordladder/core"
	"github.com/katalvlaran/wordladder/editdist"
	"github.com/katalvlaran/wordladder/vocab"
)

func buildGraph(t testing.TB, words ...string) *core.Graph {
	t.Helper()
	g, err := builder.Build(vocab.New(words...))
	require.NoError(t, err)
	return g
}

func TestSearch_CatToDog(t *testing.T) {
	g := buildGraph(t, "cat", "cot", "cog", "dog", "dot")

	first, err := astar.Search(g, "cat", "dog")
	require.NoError(t, err)
	require.True(t, first.Found)
	assert.Equal(t, []string{"cat", "cot", "cog", "dog"}, first.Path)
	assert.Equal(t, 3, first.Cost)

	// the tie-break makes the choice between cog and dot stable
	for i := 0; i < 20; i++ {
		again, err := astar.Search(g, "cat", "dog")
		require.NoError(t, err)
		assert.Equal(t, first.Path, again.Path)
	}
}

func TestSearch_Unreachable(t *testing.T) {
	g := buildGraph(t, "cat", "dog")
	res, err := astar.Search(g, "cat", "dog")
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Nil(t, res.Path)
}

func TestSearch_SameWord(t *testing.T) {
	g := buildGraph(t, "cat", "cot")
	res, err := astar.Search(g, "cat", "cat")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, []string{"cat"}, res.Path)
	assert.Zero(t, res.Cost)
	assert.Zero(t, res.Expanded)
}

func TestSearch_Errors(t *testing.T) {
	_, err := astar.Search(nil, "a", "b")
	assert.ErrorIs(t, err, astar.ErrGraphNil)

	g := buildGraph(t, "cat", "cot")
	_, err = astar.Search(g, "zzz", "cot")
	assert.ErrorIs(t, err, astar.ErrVertexNotFound)
	_, err = astar.Search(g, "cat", "zzz")
	assert.ErrorIs(t, err, astar.ErrVertexNotFound)

	corrupt := core.NewGraph(map[string][]string{"a": {"b"}, "c": nil})
	_, err = astar.Search(corrupt, "a", "c")
	assert.ErrorIs(t, err, astar.ErrCorruptGraph)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = astar.Search(g, "cat", "cot", astar.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSearch_MatchesBreadthFirst(t *testing.T) {
	rnd := rand.New(rand.NewSource(21))
	words := randomWords(rnd, 300, 4, "abcd")
	g := buildGraph(t, words...)
	vertices := g.Vertices()

	for i := 0; i < 200; i++ {
		start := vertices[rnd.Intn(len(vertices))]
		goal := vertices[rnd.Intn(len(vertices))]

		res, err := astar.Search(g, start, goal)
		require.NoError(t, err)

		want, err := bfs.ShortestPath(g, start, goal)
		if err != nil {
			require.ErrorIs(t, err, bfs.ErrUnreachable)
			assert.False(t, res.Found, "%s -> %s", start, goal)
			continue
		}
		require.True(t, res.Found, "%s -> %s", start, goal)
		assert.Equal(t, len(want), len(res.Path), "%s -> %s", start, goal)
		assert.Equal(t, len(res.Path)-1, res.Cost)
		assertLadder(t, g, res.Path, start, goal)
	}
}

func TestSearch_ZeroHeuristicStillOptimal(t *testing.T) {
	g := buildGraph(t, "cold", "cord", "card", "ward", "warm", "word", "worm", "corm", "wore")
	informed, err := astar.Search(g, "cold", "warm")
	require.NoError(t, err)

	var expanded []string
	blind, err := astar.Search(g, "cold", "warm",
		astar.WithHeuristic(func(string, string) int { return 0 }),
		astar.WithOnExpand(func(w string, _ int) { expanded = append(expanded, w) }),
	)
	require.NoError(t, err)
	require.True(t, informed.Found)
	require.True(t, blind.Found)
	assert.Equal(t, informed.Cost, blind.Cost)
	assert.Equal(t, blind.Expanded, len(expanded))
}

func TestSearch_ConcurrentQueriesShareGraph(t *testing.T) {
	g := buildGraph(t, "cat", "cot", "cog", "dog", "dot", "dug", "bug")
	pairs := [][2]string{{"cat", "dog"}, {"bug", "cat"}, {"dot", "dug"}, {"cog", "cat"}}

	want := make([]astar.Result, len(pairs))
	for i, p := range pairs {
		res, err := astar.Search(g, p[0], p[1])
		require.NoError(t, err)
		want[i] = res
	}

	var wg sync.WaitGroup
	for n := 0; n < 8; n++ {
		for i, p := range pairs {
			i, p := i, p
			wg.Add(1)
			go func() {
				defer wg.Done()
				res, err := astar.Search(g, p[0], p[1])
				assert.NoError(t, err)
				assert.Equal(t, want[i].Path, res.Path)
			}()
		}
	}
	wg.Wait()
}

// assertLadder checks path endpoints and that each step is a single edit.
func assertLadder(t *testing.T, g *core.Graph, path []string, start, goal string) {
	t.Helper()
	require.NotEmpty(t, path)
	assert.Equal(t, start, path[0])
	assert.Equal(t, goal, path[len(path)-1])
	for i := 1; i < len(path); i++ {
		assert.True(t, g.Contains(path[i]))
		assert.Equal(t, 1, editdist.Distance(path[i-1], path[i]), "%q -> %q", path[i-1], path[i])
	}
}

func randomWords(rnd *rand.Rand, n, maxLen int, letters string) []string {
	words := make([]string, 0, n)
	for i := 0; i < n; i++ {
		b := make([]byte, 1+rnd.Intn(maxLen))
		for j := range b {
			b[j] = letters[rnd.Intn(len(letters))]
		}
		words = append(words, string(b))
	}
	return words
}
