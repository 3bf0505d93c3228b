package astar

import (
	"context"
	"errors"

	"github.com/katalvlaran/wordladder/editdist"
)

// Sentinel errors returned by Search.
var (
	// ErrGraphNil indicates that a nil *core.Graph was passed to Search.
	ErrGraphNil = errors.New("astar: graph is nil")

	// ErrVertexNotFound indicates that start or goal has no node in the graph.
	ErrVertexNotFound = errors.New("astar: vertex not found in graph")

	// ErrCorruptGraph indicates a neighbor word with no node of its own.
	ErrCorruptGraph = errors.New("astar: neighbor missing from graph")

	// ErrBrokenTrail indicates the predecessor trail could not be walked
	// back from goal to start (missing link or cycle).
	ErrBrokenTrail = errors.New("astar: broken predecessor trail")
)

// Heuristic estimates the number of steps from one word to another.
// It must not overestimate for the result to be optimal.
type Heuristic func(from, to string) int

// Result is the outcome of a single search.
type Result struct {
	// Path lists the words from start to goal inclusive; nil if not found.
	Path []string

	// Cost is the number of edges in Path.
	Cost int

	// Expanded counts the words whose neighbors were relaxed.
	Expanded int

	// Found reports whether goal was reached.
	Found bool
}

// Options configures Search.
type Options struct {
	// Ctx allows cancellation; checked once per frontier pop.
	Ctx context.Context

	// Heuristic estimates the remaining cost; defaults to editdist.Distance.
	Heuristic Heuristic

	// OnExpand is called with each expanded word and its cost-so-far.
	OnExpand func(word string, cost int)
}

// Option is a functional option for Search.
type Option func(*Options)

// DefaultOptions returns background context, edit-distance heuristic and a
// no-op expansion hook.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Heuristic: editdist.Distance,
		OnExpand:  func(string, int) {},
	}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithHeuristic replaces the edit-distance heuristic. A nil h is ignored.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithOnExpand registers a hook run for every expanded word.
func WithOnExpand(fn func(word string, cost int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
