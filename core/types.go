// SPDX-License-Identifier: MIT
// File: types.go
// Role: Node and Graph types, sentinel errors, and the NewGraph constructor.
// Determinism:
//   - Node.Neighbors() and Graph.Vertices() are sorted lexicographically.
// Concurrency:
//   - No mutators after NewGraph; concurrent reads are safe.

package core

import (
	"errors"
	"sort"
)

// Sentinel errors for word-graph queries and verification.
var (
	// ErrVertexNotFound indicates a query referenced a word with no node.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrDanglingEdge indicates a neighbor word that has no node of its own.
	ErrDanglingEdge = errors.New("core: neighbor has no node")

	// ErrAsymmetric indicates u lists v as a neighbor but v does not list u.
	ErrAsymmetric = errors.New("core: asymmetric adjacency")

	// ErrSelfLoop indicates a node lists its own word as a neighbor.
	ErrSelfLoop = errors.New("core: self-loop")
)

// Node is one vocabulary word together with its neighbor set.
//
// The neighbor set holds each adjacent word once; sorted keeps the same
// words in ascending order for deterministic traversal.
type Node struct {
	// Word is the vocabulary entry this node represents.
	Word string

	neighbors map[string]struct{}
	sorted    []string
}

// Graph maps every vocabulary word to its Node.
type Graph struct {
	nodes map[string]*Node
	edges int // undirected edge count, computed once
}

// NewGraph freezes an adjacency mapping word → neighbor words into a Graph.
// Duplicate neighbors collapse. Every key becomes a node even when its list
// is empty. The input map is not retained.
// Complexity: O(V + E log Δ) for the per-node sort.
func NewGraph(adjacency map[string][]string) *Graph {
	g := &Graph{nodes: make(map[string]*Node, len(adjacency))}
	degreeSum := 0
	for word, list := range adjacency {
		n := &Node{Word: word, neighbors: make(map[string]struct{}, len(list))}
		for _, nb := range list {
			n.neighbors[nb] = struct{}{}
		}
		n.sorted = make([]string, 0, len(n.neighbors))
		for nb := range n.neighbors {
			n.sorted = append(n.sorted, nb)
		}
		sort.Strings(n.sorted)
		degreeSum += len(n.sorted)
		g.nodes[word] = n
	}
	g.edges = degreeSum / 2

	return g
}
