// SPDX-License-Identifier: MIT
// Package: wordladder/builder
//
// options.go: functional options for Build.
//
// Contract:
//   • Options are functional (type Option func(*config)).
//   • Option constructors panic on meaningless inputs; Build itself does not.

package builder

import "context"

// Option customizes a Build call.
type Option func(*config)

// WithAlphabet sets the letters tried by the insertion and substitution scans.
// Duplicate letters are harmless. Panics on an empty alphabet.
func WithAlphabet(letters string) Option {
	if letters == "" {
		panic("builder: WithAlphabet(\"\")")
	}
	rs := []rune(letters)
	return func(c *config) {
		c.alphabet = rs
		c.derived = false
	}
}

// WithDerivedAlphabet replaces the alphabet with the set of runes that occur
// anywhere in the vocabulary. With it every pair of words at edit distance 1
// is linked, whatever characters the vocabulary uses.
func WithDerivedAlphabet() Option {
	return func(c *config) { c.derived = true }
}

// WithWorkers scans words on n goroutines. n must be ≥ 1; 1 keeps the build
// sequential. Panics on n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("builder: WithWorkers(n < 1)")
	}
	return func(c *config) { c.workers = n }
}

// WithContext aborts the build once ctx is done. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}
