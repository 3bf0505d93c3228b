// SPDX-License-Identifier: MIT
// Package: wordladder/builder
//
// api.go: public entry points.
//
// Design contract:
//   • One orchestrator: Build(v, opts...). Resolves config, scans every word,
//     freezes the result into a core.Graph.
//   • Determinism: equal vocabulary and options ⇒ identical graph.
//   • Workers only read the vocabulary and write their own result slots.

package builder

import (
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wordladder/core"
)

// Lookup is the membership half of the vocabulary contract.
type Lookup interface {
	Contains(word string) bool
}

// Vocabulary is the collaborator contract Build consumes: membership,
// size, and an iteration that yields every word exactly once.
type Vocabulary interface {
	Lookup
	Size() int
	Each(fn func(word string))
}

// chunksPerWorker splits the word list finer than the worker count so that
// long words do not leave goroutines idle at the tail.
const chunksPerWorker = 4

// Build scans every vocabulary word and returns the frozen word graph.
//
// Complexity: O(|V| × L × |alphabet|) time, O(|V| + |E|) space.
// Errors: ErrNilVocabulary, or the context error wrapped with %w.
func Build(v Vocabulary, opts ...Option) (*core.Graph, error) {
	if v == nil {
		return nil, ErrNilVocabulary
	}
	cfg := newConfig(opts...)

	words := make([]string, 0, v.Size())
	v.Each(func(w string) { words = append(words, w) })
	sort.Strings(words)

	alphabet := cfg.alphabet
	if cfg.derived {
		alphabet = deriveAlphabet(words)
	}

	lists := make([][]string, len(words))
	var err error
	if cfg.workers <= 1 || len(words) < 2 {
		err = scanSequential(cfg, v, words, alphabet, lists)
	} else {
		err = scanParallel(cfg, v, words, alphabet, lists)
	}
	if err != nil {
		return nil, fmt.Errorf("builder: Build: %w", err)
	}

	adjacency := make(map[string][]string, len(words))
	for i, w := range words {
		adjacency[w] = lists[i]
	}

	return core.NewGraph(adjacency), nil
}

// scanSequential fills lists[i] with the neighbors of words[i] in order.
func scanSequential(cfg config, v Lookup, words []string, alphabet []rune, lists [][]string) error {
	for i, w := range words {
		if err := cfg.ctx.Err(); err != nil {
			return err
		}
		lists[i] = Neighbors(v, w, alphabet)
	}

	return nil
}

// scanParallel fans contiguous chunks of words out to cfg.workers goroutines.
func scanParallel(cfg config, v Lookup, words []string, alphabet []rune, lists [][]string) error {
	eg, ctx := errgroup.WithContext(cfg.ctx)
	eg.SetLimit(cfg.workers)

	size := len(words) / (cfg.workers * chunksPerWorker)
	if size < 1 {
		size = 1
	}
	for lo := 0; lo < len(words); lo += size {
		lo := lo
		hi := min(lo+size, len(words))
		eg.Go(func() error {
			for i := lo; i < hi; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				lists[i] = Neighbors(v, words[i], alphabet)
			}
			return nil
		})
	}

	return eg.Wait()
}

// deriveAlphabet collects the distinct runes of words in ascending order.
func deriveAlphabet(words []string) []rune {
	set := make(map[rune]struct{})
	for _, w := range words {
		for _, r := range w {
			set[r] = struct{}{}
		}
	}
	out := make([]rune, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
