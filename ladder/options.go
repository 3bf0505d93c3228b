package ladder

import (
	"context"
	"io"
	"log/slog"
	"math"
)

// Options configures a Solver.
type Options struct {
	Algorithm       Algorithm
	Workers         int    // concurrent queries in SolveAll
	BuildWorkers    int    // concurrent word scans in New
	Alphabet        string // candidate letters; empty keeps the builder default
	DerivedAlphabet bool   // take letters from the vocabulary
	Precheck        bool   // answer cross-component pairs without searching
	Components      bool   // label components even without Precheck
	Logger          *slog.Logger
	Ctx             context.Context // cancels the graph build in New
}

// Option is a functional option for New.
type Option func(*Options)

// DefaultOptions returns A*, one worker everywhere, default alphabet, no
// precheck and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Algorithm:    AlgorithmAStar,
		Workers:      1,
		BuildWorkers: 1,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)})),
		Ctx:          context.Background(),
	}
}

// WithAlgorithm selects the search algorithm.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) { o.Algorithm = a }
}

// WithWorkers runs SolveAll on n goroutines; values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.Workers = n
		}
	}
}

// WithBuildWorkers scans vocabulary words on n goroutines; values below 1
// are ignored.
func WithBuildWorkers(n int) Option {
	return func(o *Options) {
		if n >= 1 {
			o.BuildWorkers = n
		}
	}
}

// WithAlphabet sets the candidate letters for the graph build.
func WithAlphabet(letters string) Option {
	return func(o *Options) {
		o.Alphabet = letters
		o.DerivedAlphabet = false
	}
}

// WithDerivedAlphabet builds the graph over every rune in the vocabulary.
func WithDerivedAlphabet() Option {
	return func(o *Options) { o.DerivedAlphabet = true }
}

// WithComponentPrecheck labels connected components after the build and
// answers pairs in different components as unreachable without a search.
func WithComponentPrecheck() Option {
	return func(o *Options) { o.Precheck = true }
}

// WithComponents labels connected components for Stats only.
func WithComponents() Option {
	return func(o *Options) { o.Components = true }
}

// WithLogger sets the structured logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithContext sets the context that bounds the graph build. A nil ctx is
// ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}
