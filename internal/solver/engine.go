package solver

import (
	"context"
	"errors"
	"time"

	"svw.info/renban/internal/domain"
	"svw.info/renban/internal/ports"
)

// Engine solves variant puzzles by candidate propagation plus depth-first
// backtracking over cloned boards. The zero value is ready to use.
type Engine struct {
	tracer ports.Tracer
}

func NewEngine() *Engine { return &Engine{} }

// WithTracer attaches a search observer invoked once per node; nil detaches
// it. Tracing never affects the result.
func (e *Engine) WithTracer(t ports.Tracer) *Engine {
	e.tracer = t
	return e
}

// Solve returns the first solution found, or domain.ErrUnsolvable once the
// root search exhausts every candidate at every level.
func (e *Engine) Solve(ctx context.Context, def *domain.PuzzleDefinition) (*domain.Grid, ports.Stats, error) {
	start := time.Now()
	st := &searchState{tracer: e.tracer}
	b, err := seed(def)
	if err == nil {
		var solved *board
		if solved, err = st.search(ctx, b, 0, true); err == nil {
			g := solved.grid()
			return &g, st.stats(start), nil
		}
	}
	if errors.Is(err, ErrContradiction) {
		err = domain.ErrUnsolvable
	}
	return nil, st.stats(start), err
}

// Unique counts solutions up to 2 and reports whether exactly one exists.
func (e *Engine) Unique(ctx context.Context, def *domain.PuzzleDefinition) (bool, ports.Stats, error) {
	start := time.Now()
	st := &searchState{}
	count := 0
	b, err := seed(def)
	if err == nil {
		err = st.countSolutions(ctx, b, 0, true, &count)
	}
	if err != nil && !errors.Is(err, ErrContradiction) {
		return false, st.stats(start), err
	}
	return count == 1, st.stats(start), nil
}

// seed builds a fresh board and replays the givens through full
// propagation.
func seed(def *domain.PuzzleDefinition) (*board, error) {
	b := newBoard(newModel(def))
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := def.Givens[r][c]; v != 0 {
				if err := b.assign(v, r, c); err != nil {
					return nil, err
				}
			}
		}
	}
	return b, nil
}

type searchState struct {
	nodes    int
	maxDepth int
	tracer   ports.Tracer
}

func (s *searchState) stats(start time.Time) ports.Stats {
	return ports.Stats{Nodes: s.nodes, MaxDepth: s.maxDepth, Duration: time.Since(start)}
}

// search is one node of the state machine: saturate, pick a branch cell,
// then try each of its candidates on an independent clone. mirrorsLeft
// flips to false permanently once no unassigned mirror-line cell remains.
func (s *searchState) search(ctx context.Context, b *board, depth int, mirrorsLeft bool) (*board, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.nodes++
	if depth > s.maxDepth {
		s.maxDepth = depth
	}
	if err := b.saturate(); err != nil {
		return nil, err
	}
	if s.tracer != nil {
		s.tracer.Node(depth, b.grid())
	}
	cell, ok, mirrorsLeft := selectBranch(b, mirrorsLeft)
	if !ok {
		return b, nil
	}
	for _, v := range b.cand[cell].Values() {
		next := b.clone()
		if err := next.assign(v, cell/9, cell%9); err != nil {
			if errors.Is(err, ErrContradiction) {
				continue
			}
			return nil, err
		}
		solved, err := s.search(ctx, next, depth+1, mirrorsLeft)
		if err == nil {
			return solved, nil
		}
		if !errors.Is(err, ErrContradiction) {
			return nil, err
		}
	}
	return nil, ErrContradiction
}

// countSolutions explores the same tree as search but keeps going until two
// solutions are found or the tree is exhausted.
func (s *searchState) countSolutions(ctx context.Context, b *board, depth int, mirrorsLeft bool, count *int) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if *count >= 2 {
		return nil
	}
	s.nodes++
	if depth > s.maxDepth {
		s.maxDepth = depth
	}
	if err := b.saturate(); err != nil {
		if errors.Is(err, ErrContradiction) {
			return nil
		}
		return err
	}
	cell, ok, mirrorsLeft := selectBranch(b, mirrorsLeft)
	if !ok {
		*count++
		return nil
	}
	for _, v := range b.cand[cell].Values() {
		next := b.clone()
		if err := next.assign(v, cell/9, cell%9); err != nil {
			if errors.Is(err, ErrContradiction) {
				continue
			}
			return err
		}
		if err := s.countSolutions(ctx, next, depth+1, mirrorsLeft, count); err != nil {
			return err
		}
		if *count >= 2 {
			return nil
		}
	}
	return nil
}

// selectBranch picks the next cell to guess. While any mirror-line cell is
// unassigned: the mirror-line cell with the fewest candidates, ties to the
// first found in line-then-cell order. Afterwards: the unassigned cell with
// the fewest candidates anywhere, ties broken in favor of range-line cells.
// This ordering materially shapes the search tree; keep it as is.
func selectBranch(b *board, mirrorsLeft bool) (cell int, ok bool, stillMirrors bool) {
	best, bestCount := -1, 10
	if mirrorsLeft {
		for _, line := range b.model.mirrors {
			for _, cc := range line {
				i := idx(cc.Row, cc.Col)
				if b.values[i] == 0 && b.cand[i].Count() < bestCount {
					best, bestCount = i, b.cand[i].Count()
				}
			}
		}
		if best == -1 {
			mirrorsLeft = false
		}
	}
	if !mirrorsLeft {
		for i := 0; i < 81; i++ {
			if b.values[i] != 0 {
				continue
			}
			n := b.cand[i].Count()
			if n < bestCount || (n == bestCount && b.model.rangeLine[i] >= 0) {
				best, bestCount = i, n
			}
		}
	}
	return best, best != -1, mirrorsLeft
}
