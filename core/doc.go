// Package core defines the immutable word graph searched by the ladder solvers.
//
// The Graph G = (V, E) has one Node per vocabulary word. An undirected edge
// u–v exists iff u and v are both vocabulary words and their edit distance is
// exactly 1. Graphs are produced by builder.Build and never mutated afterwards,
// so any number of goroutines may read one Graph concurrently without locks.
//
// Why a dedicated type?
//
//   - Neighbor sets give O(1) edge checks and collapse duplicate scan results.
//   - Deterministic iteration: Vertices() and Node.Neighbors() are sorted
//     lexicographically, so searches that walk them are reproducible.
//   - No per-search scratch fields: costs, priorities, and predecessors live
//     in the searching algorithm, keyed by word.
//
// Errors:
//
//	ErrVertexNotFound - requested word has no node.
//	ErrDanglingEdge   - a neighbor has no node of its own (Verify).
//	ErrAsymmetric     - u lists v but v does not list u (Verify).
//	ErrSelfLoop       - a node lists itself (Verify).
package core
