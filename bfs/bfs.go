package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/wordladder/core"
)

// queueItem pairs a word with its BFS depth.
type queueItem struct {
	word  string
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *core.Graph
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search on g starting from start.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any OnVisit / context error.
func BFS(g *core.Graph, start string, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.Contains(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartVertexNotFound, start)
	}

	n := g.Order()
	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &BFSResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}

	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

// ShortestPath returns one shortest ladder from start to goal, or
// ErrUnreachable. start == goal yields [start].
func ShortestPath(g *core.Graph, start, goal string, opts ...Option) ([]string, error) {
	opts = append(opts, WithStopAt(goal))
	res, err := BFS(g, start, opts...)
	if err != nil {
		return nil, err
	}

	return res.PathTo(goal)
}

// enqueue marks word visited at depth d, records its parent and queues it.
func (w *walker) enqueue(word string, d int, parent string) {
	w.visited[word] = true
	w.res.Depth[word] = d
	if d > 0 {
		w.res.Parent[word] = parent
	}
	w.queue = append(w.queue, queueItem{word: word, depth: d})
}

// loop processes the queue until empty, error, stop word, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.word)
		if err := w.opts.OnVisit(item.word, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %q: %w", item.word, err)
		}
		if w.opts.StopAt != "" && item.word == w.opts.StopAt {
			return nil
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors queues every unseen neighbor within MaxDepth.
func (w *walker) enqueueNeighbors(item queueItem) {
	node, ok := w.graph.Node(item.word)
	if !ok {
		return
	}
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, nb := range node.Neighbors() {
		if !w.visited[nb] {
			w.enqueue(nb, next, item.word)
		}
	}
}
