// Package builder materializes the word graph: for every vocabulary word it
// enumerates all strings one edit away and keeps those that are themselves
// vocabulary words.
//
// What
//
//   - Insertion scan:    len(word)+1 positions × alphabet.
//   - Substitution scan: len(word) positions × alphabet, self-edges excluded.
//   - Deletion scan:     len(word) positions.
//
// The three local edits enumerate exactly the strings at edit distance 1,
// so no dictionary-wide distance computation is needed. Each node is scanned
// independently; symmetry of the resulting relation follows from the scans
// (u gains v by insertion, v gains u by the matching deletion).
//
// Options
//
//   - WithAlphabet(letters):   candidate letters (default "a".."z").
//   - WithDerivedAlphabet():   use every rune occurring in the vocabulary,
//     which makes the graph complete for mixed-case or non-ASCII word lists.
//   - WithWorkers(n):          scan words on n goroutines (default 1).
//   - WithContext(ctx):        abort a build in progress.
//
// Complexity
//
//   - Time:   O(|V| × L × |alphabet|) membership probes, L = average word length.
//   - Memory: O(|V| + |E|).
//
// Errors
//
//   - ErrNilVocabulary if Build is given a nil Vocabulary.
//   - ctx.Err() wrapped with %w if the context is cancelled.
package builder
