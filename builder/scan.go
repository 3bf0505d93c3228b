// SPDX-License-Identifier: MIT
// Package: wordladder/builder
//
// scan.go: the three single-edit scans for one word.

package builder

// Neighbors returns the vocabulary words reachable from word by one
// insertion, substitution, or deletion of a letter from alphabet.
// Each neighbor appears once; word itself never does. Order follows the
// scans (insertions, substitutions, deletions) and is not sorted.
//
// Complexity: O(L × |alphabet|) membership probes, L = rune length of word.
func Neighbors(v Lookup, word string, alphabet []rune) []string {
	rs := []rune(word)
	seen := make(map[string]struct{})
	var out []string
	keep := func(candidate string) {
		if _, dup := seen[candidate]; dup {
			return
		}
		seen[candidate] = struct{}{}
		if v.Contains(candidate) {
			out = append(out, candidate)
		}
	}

	scanInsertions(rs, alphabet, keep)
	scanSubstitutions(rs, alphabet, keep)
	scanDeletions(rs, keep)

	return out
}

// scanInsertions tries every letter at each of the len(rs)+1 gaps.
func scanInsertions(rs []rune, alphabet []rune, keep func(string)) {
	buf := make([]rune, len(rs)+1)
	for pos := 0; pos <= len(rs); pos++ {
		copy(buf[:pos], rs[:pos])
		copy(buf[pos+1:], rs[pos:])
		for _, letter := range alphabet {
			buf[pos] = letter
			keep(string(buf))
		}
	}
}

// scanSubstitutions replaces each position with every other letter.
func scanSubstitutions(rs []rune, alphabet []rune, keep func(string)) {
	buf := make([]rune, len(rs))
	copy(buf, rs)
	for pos, orig := range rs {
		for _, letter := range alphabet {
			// same letter would reproduce the word itself
			if letter == orig {
				continue
			}
			buf[pos] = letter
			keep(string(buf))
		}
		buf[pos] = orig
	}
}

// scanDeletions drops each position in turn.
func scanDeletions(rs []rune, keep func(string)) {
	buf := make([]rune, 0, len(rs))
	for pos := range rs {
		buf = append(buf[:0], rs[:pos]...)
		buf = append(buf, rs[pos+1:]...)
		keep(string(buf))
	}
}
