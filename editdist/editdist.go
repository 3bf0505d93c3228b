package editdist

import "github.com/agnivade/levenshtein"

// Distance returns the Levenshtein distance between s and t, counting runes.
// Distance is symmetric and Distance(s, s) == 0.
func Distance(s, t string) int {
	if s == t {
		return 0
	}

	return levenshtein.ComputeDistance(s, t)
}

// Adjacent reports whether s and t differ by exactly one insertion,
// deletion, or substitution.
func Adjacent(s, t string) bool {
	ls, lt := len([]rune(s)), len([]rune(t))
	if ls-lt > 1 || lt-ls > 1 {
		return false
	}

	return Distance(s, t) == 1
}
