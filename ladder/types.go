package ladder

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/wordladder/internal/metrics"
)

// Sentinel errors for query parsing and configuration.
var (
	// ErrNoPairs is returned by ParsePairs when no words are given.
	ErrNoPairs = errors.New("ladder: no word pairs given")

	// ErrOddArgs is returned by ParsePairs for an odd number of words.
	ErrOddArgs = errors.New("ladder: odd number of words")

	// ErrUnknownAlgorithm is returned by ParseAlgorithm.
	ErrUnknownAlgorithm = errors.New("ladder: unknown algorithm")
)

// Algorithm selects the search used for present pairs.
type Algorithm string

const (
	// AlgorithmAStar is informed search with the edit-distance heuristic.
	AlgorithmAStar Algorithm = "astar"

	// AlgorithmBFS is plain breadth-first search.
	AlgorithmBFS Algorithm = "bfs"
)

// ParseAlgorithm maps a name to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch a := Algorithm(name); a {
	case AlgorithmAStar, AlgorithmBFS:
		return a, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Query is one start/goal pair.
type Query struct {
	Start string
	Goal  string
}

// ParsePairs groups words into consecutive (start, goal) queries.
func ParsePairs(words []string) ([]Query, error) {
	if len(words) == 0 {
		return nil, ErrNoPairs
	}
	if len(words)%2 != 0 {
		return nil, fmt.Errorf("%w: %d", ErrOddArgs, len(words))
	}
	qs := make([]Query, 0, len(words)/2)
	for i := 0; i < len(words); i += 2 {
		qs = append(qs, Query{Start: words[i], Goal: words[i+1]})
	}

	return qs, nil
}

// Status classifies an Outcome.
type Status int

const (
	// StatusFound means Path holds a shortest ladder.
	StatusFound Status = iota

	// StatusUnreachable means both words exist but no ladder joins them.
	StatusUnreachable

	// StatusMissing means at least one word is not in the vocabulary.
	StatusMissing
)

// String returns the metrics label of s.
func (s Status) String() string {
	switch s {
	case StatusFound:
		return metrics.OutcomeFound
	case StatusUnreachable:
		return metrics.OutcomeUnreachable
	case StatusMissing:
		return metrics.OutcomeMissing
	}

	return fmt.Sprintf("Status(%d)", int(s))
}

// Outcome is the answer to one Query.
type Outcome struct {
	Query    Query
	Status   Status
	Missing  []string // StatusMissing: absent words in argument order
	Path     []string // StatusFound: start … goal inclusive
	Expanded int      // words expanded by the search
}

// String renders the outcome as a single output line.
func (o Outcome) String() string {
	switch o.Status {
	case StatusMissing:
		if len(o.Missing) == 1 {
			return fmt.Sprintf("%s is not in the dictionary.", o.Missing[0])
		}
		return fmt.Sprintf("%s are not in the dictionary.", strings.Join(o.Missing, " and "))
	case StatusUnreachable:
		return fmt.Sprintf("NO POSSIBLE PATH: %s %s", o.Query.Start, o.Query.Goal)
	default:
		return strings.Join(o.Path, " ")
	}
}
