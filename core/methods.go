// File: methods.go
// Role: Read-only accessors on Node and Graph plus structural verification.

package core

import (
	"fmt"
	"sort"
)

// Neighbors returns the adjacent words in ascending order.
// The slice is shared with the node and must be treated as read-only.
func (n *Node) Neighbors() []string { return n.sorted }

// HasNeighbor reports whether word is adjacent to n.
func (n *Node) HasNeighbor(word string) bool {
	_, ok := n.neighbors[word]
	return ok
}

// Degree returns the number of distinct neighbors.
func (n *Node) Degree() int { return len(n.sorted) }

// Contains reports whether word has a node in g.
func (g *Graph) Contains(word string) bool {
	_, ok := g.nodes[word]
	return ok
}

// Node returns the node for word and whether it exists.
func (g *Graph) Node(word string) (*Node, bool) {
	n, ok := g.nodes[word]
	return n, ok
}

// Neighbors returns the sorted neighbor list of word, or ErrVertexNotFound.
func (g *Graph) Neighbors(word string) ([]string, error) {
	n, ok := g.nodes[word]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrVertexNotFound, word)
	}

	return n.sorted, nil
}

// Vertices returns all words in ascending order.
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	out := make([]string, 0, len(g.nodes))
	for w := range g.nodes {
		out = append(out, w)
	}
	sort.Strings(out)

	return out
}

// Order returns the number of nodes.
func (g *Graph) Order() int { return len(g.nodes) }

// EdgeCount returns the number of undirected edges, i.e. half the degree sum.
func (g *Graph) EdgeCount() int { return g.edges }

// Verify checks the structural invariants the searches rely on: every
// neighbor has its own node, adjacency is symmetric, and no node lists
// itself. The first violation found in vertex order is returned.
// Complexity: O(V log V + E).
func (g *Graph) Verify() error {
	for _, w := range g.Vertices() {
		n := g.nodes[w]
		for _, nb := range n.sorted {
			if nb == w {
				return fmt.Errorf("%w: %q", ErrSelfLoop, w)
			}
			other, ok := g.nodes[nb]
			if !ok {
				return fmt.Errorf("%w: %q -> %q", ErrDanglingEdge, w, nb)
			}
			if !other.HasNeighbor(w) {
				return fmt.Errorf("%w: %q -> %q", ErrAsymmetric, w, nb)
			}
		}
	}

	return nil
}
