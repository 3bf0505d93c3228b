// SPDX-License-Identifier: MIT
// Package: wordladder/builder
//
// config.go: resolved configuration and deterministic defaults.
//
// Defaults:
//   • alphabet = DefaultAlphabet ("a".."z")
//   • derived  = false
//   • workers  = 1 (sequential scan)
//   • ctx      = context.Background()

package builder

import "context"

// DefaultAlphabet is the candidate letter set used by the insertion and
// substitution scans unless overridden.
const DefaultAlphabet = "abcdefghijklmnopqrstuvwxyz"

// config aggregates all builder knobs. It is passed by value.
type config struct {
	alphabet []rune
	derived  bool
	workers  int
	ctx      context.Context
}

// newConfig applies opts in order over the defaults; later options win.
func newConfig(opts ...Option) config {
	cfg := config{
		alphabet: []rune(DefaultAlphabet),
		workers:  1,
		ctx:      context.Background(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
