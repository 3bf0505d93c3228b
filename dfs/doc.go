// Package dfs labels the connected components of a core.Graph with an
// iterative depth-first search.
//
// Two words are connected iff some ladder joins them, so a component lookup
// answers "is there any path?" in O(1) once the labelling is done, and
// summarizes how fragmented a vocabulary is.
//
// Key features:
//   - Components(g, opts...): one pass over every word, explicit stack (no
//     recursion depth limits on long ladders).
//   - Deterministic IDs: roots are taken in ascending word order, so the
//     component holding the smallest word is 0, and so on.
//   - Cancellation via context.Context.
//
// Complexity:
//
//   - Time:   O(V log V + E) (the log factor is the sorted vertex list).
//   - Memory: O(V).
//
// Errors:
//
//   - ErrGraphNil      if g is nil.
//   - context errors   if ctx is done.
package dfs
