// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path depths, parent links, and visit order.
//
// What
//
//   - Explore words in non-decreasing edge count from a start word.
//   - BFSResult holds Order (visit sequence), Depth (edges from start), and
//     Parent (predecessor in the BFS tree).
//   - OnVisit hook may abort the walk with an error.
//   - MaxDepth limits exploration; StopAt ends the walk once a word is visited.
//
// Why
//
//	On the word graph every step costs 1, so BFS depth is the exact ladder
//	length. It is the reference the A* search is checked against, and an
//	alternative solver for callers who prefer it.
//
// Determinism
//
//	Node.Neighbors() is sorted, and BFS enqueues neighbors in that order, so
//	the visit sequence and the chosen parents are reproducible.
//
// Complexity (V = words, E = edges)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil             if the graph pointer is nil.
//   - ErrStartVertexNotFound  if the start word has no node.
//   - ErrOptionViolation      for invalid options (negative MaxDepth).
//   - ErrUnreachable          from PathTo / ShortestPath when dest was not reached.
//   - Wrapped OnVisit errors and ctx.Err().
package bfs
