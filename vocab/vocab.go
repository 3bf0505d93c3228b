// Package vocab loads the word list that the ladder graph is built from.
//
// A Vocabulary is an immutable set of words. Each input line becomes one
// entry verbatim: the line terminator is removed, nothing else is trimmed or
// case-folded. Duplicate lines collapse into a single entry.
package vocab

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
)

// maxLineSize bounds a single vocabulary line.
const maxLineSize = 1 << 20

// Sentinel errors for vocabulary loading.
var (
	// ErrNilReader is returned when Read is given a nil io.Reader.
	ErrNilReader = errors.New("vocab: reader is nil")

	// ErrRead wraps any I/O failure while opening or scanning the source.
	ErrRead = errors.New("vocab: read failed")
)

// Vocabulary is a read-only set of words with O(1) expected membership.
// It is safe for concurrent use once constructed.
type Vocabulary struct {
	words map[string]struct{}
}

// New returns a Vocabulary holding the given words.
func New(words ...string) *Vocabulary {
	v := &Vocabulary{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		v.words[w] = struct{}{}
	}

	return v
}

// Load reads the vocabulary file at path, one word per line.
func Load(path string) (*Vocabulary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %v", ErrRead, path, err)
	}
	defer f.Close()

	v, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return v, nil
}

// Read consumes r until EOF, adding one word per line.
func Read(r io.Reader) (*Vocabulary, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	v := &Vocabulary{words: make(map[string]struct{})}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		v.words[sc.Text()] = struct{}{}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRead, err)
	}

	return v, nil
}

// Contains reports whether word is a member of the vocabulary.
func (v *Vocabulary) Contains(word string) bool {
	_, ok := v.words[word]
	return ok
}

// Size returns the number of distinct words.
func (v *Vocabulary) Size() int { return len(v.words) }

// Each calls fn once for every word. Order is unspecified.
func (v *Vocabulary) Each(fn func(word string)) {
	for w := range v.words {
		fn(w)
	}
}

// Words returns every word in ascending lexicographic order.
func (v *Vocabulary) Words() []string {
	out := make([]string, 0, len(v.words))
	for w := range v.words {
		out = append(out, w)
	}
	sort.Strings(out)

	return out
}
