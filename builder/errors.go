// SPDX-License-Identifier: MIT
// Package: wordladder/builder
//
// errors.go: sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w.
//   • Build never panics; option constructors panic on meaningless input.

package builder

import "errors"

// ErrNilVocabulary indicates Build was called without a vocabulary.
var ErrNilVocabulary = errors.New("builder: vocabulary is nil")
