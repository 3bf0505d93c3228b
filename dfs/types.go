package dfs

import (
	"context"
	"errors"
)

// ErrGraphNil is returned when a nil *core.Graph is passed to Components.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Option configures Components.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for the traversal.
type DFSOptions struct {
	// Ctx allows cancellation; checked once per root.
	Ctx context.Context
}

// DefaultOptions returns options with context.Background().
func DefaultOptions() DFSOptions {
	return DFSOptions{Ctx: context.Background()}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *DFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// ComponentsResult maps every word to its component.
type ComponentsResult struct {
	// Label maps word → component ID in [0, Count()).
	Label map[string]int

	// Sizes[id] is the number of words in component id.
	Sizes []int
}

// Count returns the number of components.
func (r *ComponentsResult) Count() int { return len(r.Sizes) }

// Connected reports whether a and b are labelled and share a component.
func (r *ComponentsResult) Connected(a, b string) bool {
	la, okA := r.Label[a]
	lb, okB := r.Label[b]

	return okA && okB && la == lb
}

// Largest returns the size of the biggest component, 0 for an empty graph.
func (r *ComponentsResult) Largest() int {
	best := 0
	for _, s := range r.Sizes {
		best = max(best, s)
	}

	return best
}
