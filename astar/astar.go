package astar

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/wordladder/core"
)

// Search runs A* on g from start to goal.
//
// Preconditions (in order): g non-nil (ErrGraphNil); start and goal present
// (ErrVertexNotFound). An unreachable goal is reported as Found == false
// with a nil error.
func Search(g *core.Graph, start, goal string, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.Contains(start) {
		return Result{}, fmt.Errorf("%w: start %q", ErrVertexNotFound, start)
	}
	if !g.Contains(goal) {
		return Result{}, fmt.Errorf("%w: goal %q", ErrVertexNotFound, goal)
	}

	if start == goal {
		return Result{Path: []string{start}, Found: true}, nil
	}

	s := newState(g, start, goal, o)

	return s.run()
}

// state is the per-search scratch space. It is never shared between
// searches and never written into the graph.
type state struct {
	g     *core.Graph
	opts  Options
	start string
	goal  string

	frontier frontier
	cost     map[string]int    // word → cheapest known cost-so-far
	prev     map[string]string // word → predecessor on that cheapest path
	expanded int
}

// newState seeds the frontier with start at priority h(start, goal).
func newState(g *core.Graph, start, goal string, o Options) *state {
	s := &state{
		g:        g,
		opts:     o,
		start:    start,
		goal:     goal,
		frontier: make(frontier, 0, 64),
		cost:     map[string]int{start: 0},
		prev:     make(map[string]string),
	}
	heap.Init(&s.frontier)
	heap.Push(&s.frontier, &entry{
		word:     start,
		cost:     0,
		priority: o.Heuristic(start, goal),
	})

	return s
}

// run pops the best entry until the goal is popped or the frontier drains.
func (s *state) run() (Result, error) {
	for s.frontier.Len() > 0 {
		if err := s.opts.Ctx.Err(); err != nil {
			return Result{Expanded: s.expanded}, err
		}

		item := heap.Pop(&s.frontier).(*entry)
		// stale: a cheaper entry for this word was pushed later
		if item.cost > s.cost[item.word] {
			continue
		}

		if item.word == s.goal {
			path, err := reconstruct(s.prev, s.start, s.goal)
			if err != nil {
				return Result{Expanded: s.expanded}, err
			}
			return Result{Path: path, Cost: item.cost, Expanded: s.expanded, Found: true}, nil
		}

		s.expanded++
		s.opts.OnExpand(item.word, item.cost)
		if err := s.relax(item.word); err != nil {
			return Result{Expanded: s.expanded}, err
		}
	}

	return Result{Expanded: s.expanded}, nil
}

// relax offers cost(u)+1 to every neighbor of u and re-pushes each neighbor
// whose recorded cost strictly improves.
func (s *state) relax(u string) error {
	node, ok := s.g.Node(u)
	if !ok {
		return fmt.Errorf("%w: %q", ErrCorruptGraph, u)
	}
	next := s.cost[u] + 1
	for _, v := range node.Neighbors() {
		if !s.g.Contains(v) {
			return fmt.Errorf("%w: %q -> %q", ErrCorruptGraph, u, v)
		}
		if old, seen := s.cost[v]; seen && next >= old {
			continue
		}
		s.cost[v] = next
		s.prev[v] = u
		heap.Push(&s.frontier, &entry{
			word:     v,
			cost:     next,
			priority: next + s.opts.Heuristic(v, s.goal),
		})
	}

	return nil
}
