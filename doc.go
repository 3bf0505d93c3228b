// Package wordladder finds shortest word ladders: sequences of vocabulary
// words from a start word to a goal word in which each step inserts,
// deletes or substitutes exactly one letter.
//
// The module is split into small packages, each usable on its own:
//
//	editdist/  Levenshtein distance and the one-edit adjacency test
//	vocab/     the word set, loaded from a one-word-per-line file
//	core/      the immutable word graph and its neighbor lists
//	builder/   turns a vocabulary into a core.Graph, optionally in parallel
//	astar/     A* search with the edit-distance heuristic
//	bfs/       breadth-first search, the unweighted reference
//	dfs/       connected-component labelling
//	ladder/    the query service tying the above together
//
// The wordladder command in cmd/wordladder wraps ladder for the shell:
//
//	wordladder words.txt cat dog
//	cat cot cog dog
//
// A Graph never changes after builder.Build returns, and every search keeps
// its state to itself, so one graph serves any number of concurrent queries.
package wordladder
