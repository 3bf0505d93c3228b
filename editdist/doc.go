// Package editdist computes the Levenshtein edit distance between two words.
//
// What
//
//   - Distance(s, t): minimum number of single-character insertions,
//     deletions, and substitutions turning s into t.
//   - Adjacent(s, t): reports whether s and t are exactly one edit apart.
//
// Why
//
//	The word graph links two vocabulary words iff Distance == 1, and the A*
//	search uses Distance(word, goal) as its heuristic. Every graph edge costs
//	exactly 1, so the heuristic never overestimates the remaining number of
//	steps and satisfies the triangle inequality (admissible and consistent).
//
// Characters
//
//	Characters are Unicode code points (runes). For ASCII input this is
//	identical to byte-wise comparison.
//
// Complexity (n = |s|, m = |t|)
//
//   - Time:   O(n·m)
//   - Memory: one row of the (n+1)×(m+1) dynamic-programming table.
//
// The table itself is computed by github.com/agnivade/levenshtein; Adjacent
// rejects pairs whose lengths differ by more than one before running it.
package editdist
