package ladder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/wordladder/astar"
	"github.com/katalvlaran/wordladder/bfs"
	"github.com/katalvlaran/wordladder/builder"
	"github.com/katalvlaran/wordladder/core"
	"github.com/katalvlaran/wordladder/dfs"
	"github.com/katalvlaran/wordladder/internal/metrics"
	"github.com/katalvlaran/wordladder/vocab"
)

// Solver answers queries against one frozen word graph. It is safe for
// concurrent use.
type Solver struct {
	graph *core.Graph
	comps *dfs.ComponentsResult // nil unless components were labelled
	opts  Options
	log   *slog.Logger
}

// Stats summarises the graph a Solver holds.
type Stats struct {
	Words      int
	Edges      int
	Components int // -1 when components were not labelled
	Largest    int // size of the biggest component, 0 when not labelled
}

// String renders the summary line printed by the command-line tool.
func (s Stats) String() string {
	if s.Components < 0 {
		return fmt.Sprintf("words=%d edges=%d", s.Words, s.Edges)
	}

	return fmt.Sprintf("words=%d edges=%d components=%d largest=%d",
		s.Words, s.Edges, s.Components, s.Largest)
}

// New builds the word graph for v and returns a ready Solver.
//
// Errors: ErrUnknownAlgorithm, builder.ErrNilVocabulary, or a context error
// from the build or component pass, each wrapped with %w.
func New(v *vocab.Vocabulary, opts ...Option) (*Solver, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if _, err := ParseAlgorithm(string(o.Algorithm)); err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("ladder: New: %w", builder.ErrNilVocabulary)
	}

	bopts := []builder.Option{
		builder.WithWorkers(o.BuildWorkers),
		builder.WithContext(o.Ctx),
	}
	switch {
	case o.DerivedAlphabet:
		bopts = append(bopts, builder.WithDerivedAlphabet())
	case o.Alphabet != "":
		bopts = append(bopts, builder.WithAlphabet(o.Alphabet))
	}

	began := time.Now()
	g, err := builder.Build(v, bopts...)
	if err != nil {
		return nil, fmt.Errorf("ladder: New: %w", err)
	}
	elapsed := time.Since(began)

	metrics.GraphBuildDuration.Observe(elapsed.Seconds())
	metrics.VocabularyWords.Set(float64(g.Order()))
	metrics.GraphEdges.Set(float64(g.EdgeCount()))
	o.Logger.Info("graph built",
		"words", g.Order(),
		"edges", g.EdgeCount(),
		"build_workers", o.BuildWorkers,
		"elapsed", elapsed)

	if o.Precheck {
		// labels follow outgoing edges, so one-way edges can split a
		// component that a search would still cross
		if err := g.Verify(); err != nil {
			o.Logger.Warn("component precheck disabled", "err", err)
			o.Precheck = false
			o.Components = true
		}
	}

	s := &Solver{graph: g, opts: o, log: o.Logger}
	if o.Precheck || o.Components {
		comps, err := dfs.Components(g, dfs.WithContext(o.Ctx))
		if err != nil {
			return nil, fmt.Errorf("ladder: New: %w", err)
		}
		s.comps = comps
		metrics.GraphComponents.Set(float64(comps.Count()))
		o.Logger.Info("components labelled",
			"components", comps.Count(),
			"largest", comps.Largest())
	}

	return s, nil
}

// Graph returns the frozen graph the Solver searches.
func (s *Solver) Graph() *core.Graph { return s.graph }

// Stats reports word, edge and component counts.
func (s *Solver) Stats() Stats {
	st := Stats{
		Words:      s.graph.Order(),
		Edges:      s.graph.EdgeCount(),
		Components: -1,
	}
	if s.comps != nil {
		st.Components = s.comps.Count()
		st.Largest = s.comps.Largest()
	}

	return st
}

// Solve answers a single query.
//
// Missing words and unreachable goals are outcomes, not errors. The error
// is non-nil only when ctx is cancelled or the search detects a broken graph
// or predecessor trail.
func (s *Solver) Solve(ctx context.Context, q Query) (Outcome, error) {
	out := Outcome{Query: q}

	if missing := s.missing(q); len(missing) > 0 {
		out.Status = StatusMissing
		out.Missing = missing
		s.record(out, 0)
		s.log.Debug("words missing", "start", q.Start, "goal", q.Goal, "missing", missing)

		return out, nil
	}

	if s.opts.Precheck && !s.comps.Connected(q.Start, q.Goal) {
		out.Status = StatusUnreachable
		s.record(out, 0)
		s.log.Debug("pruned by component precheck", "start", q.Start, "goal", q.Goal)

		return out, nil
	}

	began := time.Now()
	var err error
	switch s.opts.Algorithm {
	case AlgorithmBFS:
		err = s.searchBFS(ctx, &out)
	default:
		err = s.searchAStar(ctx, &out)
	}
	elapsed := time.Since(began)
	if err != nil {
		return Outcome{Query: q}, fmt.Errorf("ladder: %s -> %s: %w", q.Start, q.Goal, err)
	}

	metrics.SearchDuration.WithLabelValues(string(s.opts.Algorithm)).Observe(elapsed.Seconds())
	metrics.SearchExpanded.Observe(float64(out.Expanded))
	s.record(out, elapsed)

	return out, nil
}

// SolveAll answers qs and returns outcomes in the order of qs.
//
// With one worker the queries run in order and, on error, the outcomes
// computed so far are returned alongside it. With more workers the first
// error cancels the remaining searches and no outcomes are returned.
func (s *Solver) SolveAll(ctx context.Context, qs []Query) ([]Outcome, error) {
	out := make([]Outcome, len(qs))

	if s.opts.Workers <= 1 {
		for i, q := range qs {
			o, err := s.Solve(ctx, q)
			if err != nil {
				return out[:i], err
			}
			out[i] = o
		}

		return out, nil
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(s.opts.Workers)
	for i, q := range qs {
		i, q := i, q
		eg.Go(func() error {
			o, err := s.Solve(ctx, q)
			if err != nil {
				return err
			}
			out[i] = o

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// missing lists absent words in argument order. A repeated absent word is
// listed twice.
func (s *Solver) missing(q Query) []string {
	var absent []string
	if !s.graph.Contains(q.Start) {
		absent = append(absent, q.Start)
	}
	if !s.graph.Contains(q.Goal) {
		absent = append(absent, q.Goal)
	}

	return absent
}

func (s *Solver) searchAStar(ctx context.Context, out *Outcome) error {
	res, err := astar.Search(s.graph, out.Query.Start, out.Query.Goal, astar.WithContext(ctx))
	if err != nil {
		return err
	}
	out.Expanded = res.Expanded
	if !res.Found {
		out.Status = StatusUnreachable
		return nil
	}
	out.Status = StatusFound
	out.Path = res.Path

	return nil
}

func (s *Solver) searchBFS(ctx context.Context, out *Outcome) error {
	visited := 0
	path, err := bfs.ShortestPath(s.graph, out.Query.Start, out.Query.Goal,
		bfs.WithContext(ctx),
		bfs.WithOnVisit(func(string, int) error {
			visited++
			return nil
		}))
	out.Expanded = visited
	if errors.Is(err, bfs.ErrUnreachable) {
		out.Status = StatusUnreachable
		return nil
	}
	if err != nil {
		return err
	}
	out.Status = StatusFound
	out.Path = path

	return nil
}

func (s *Solver) record(o Outcome, elapsed time.Duration) {
	metrics.QueriesTotal.WithLabelValues(o.Status.String()).Inc()
	if o.Status == StatusMissing {
		return
	}
	s.log.Debug("query answered",
		"start", o.Query.Start,
		"goal", o.Query.Goal,
		"status", o.Status.String(),
		"steps", max(len(o.Path)-1, 0),
		"expanded", o.Expanded,
		"elapsed", elapsed)
}
