// Package astar finds a shortest word ladder on a core.Graph with A* search.
//
// Overview:
//
//   - Every edge costs 1; the heuristic defaults to editdist.Distance(word, goal),
//     which never overestimates the remaining number of steps and obeys the
//     triangle inequality. The first time the goal leaves the frontier its
//     cost is optimal, so the returned path has the same edge count as a
//     breadth-first shortest path.
//   - The frontier is a min-heap ordered by estimated total cost
//     f = cost-so-far + heuristic, ties broken by the lexicographically smaller
//     word. Equal inputs always yield the same path.
//   - All per-search state (frontier, cost-so-far, predecessor trail) lives in
//     an unexported state value created per call. The Graph is only read, so
//     one Graph can serve any number of sequential or concurrent searches.
//
// Outcomes:
//
//   - start == goal: Result{Path: [start], Cost: 0, Found: true}.
//   - goal reached:  Result{Path: start … goal, Found: true}.
//   - unreachable:   Result{Found: false} and a nil error. This is an answer,
//     not a failure.
//
// Error handling (sentinel errors):
//
//   - ErrGraphNil:       nil *core.Graph.
//   - ErrVertexNotFound: start or goal has no node. Callers are expected to
//     check membership first; this guards against misuse.
//   - ErrCorruptGraph:   a neighbor listed by a node has no node of its own.
//   - ErrBrokenTrail:    the predecessor trail has a gap or a cycle.
//   - ctx.Err():         the context passed via WithContext was cancelled.
//
// The last two graph/trail errors signal internal invariant violations and
// never occur on graphs produced by builder.Build.
//
// Complexity:
//
//   - Time:  O((V + E) log V) worst case with lazy decrease-key, plus
//     O(L²) per heuristic evaluation for words of length L.
//   - Space: O(V + E) for maps and stale heap entries.
package astar
