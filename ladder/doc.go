// Package ladder answers word-pair queries over a vocabulary.
//
// A Solver owns one immutable word graph, built once in New, and answers any
// number of queries against it:
//
//   - Membership is checked first. Absent words produce an Outcome with
//     StatusMissing naming them; no search runs for that pair.
//   - Otherwise the configured algorithm (A* by default, BFS on request)
//     searches the graph. An unreachable goal is StatusUnreachable.
//   - With WithComponentPrecheck, pairs in different connected components
//     are answered unreachable without searching. The precheck is dropped,
//     with a warning, when the graph has one-way edges.
//
// SolveAll answers a batch in input order, sequentially by default or on
// several goroutines with WithWorkers. Every search keeps its own state, so
// no locking is involved.
//
// Outcome.String renders the line the command-line tool prints.
package ladder
