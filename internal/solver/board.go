package solver

import (
	"errors"
	"slices"

	"svw.info/renban/internal/domain"
)

// ErrContradiction signals that the current board snapshot cannot be
// completed. It aborts exactly one branch of the search, never the process.
var ErrContradiction = errors.New("contradiction")

// peers[i] lists every cell index sharing a row, column or block with cell
// i, in row-then-column-then-block order. Overlaps are harmless: candidate
// removal is idempotent.
var peers [81][27]int

// groups holds the 9 rows, 9 columns and 9 blocks as cell-index slices.
var groups [27][9]int

func init() {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			p := peers[idx(r, c)][:0]
			for j := 0; j < 9; j++ {
				p = append(p, idx(r, j), idx(j, c))
			}
			br, bc := r/3*3, c/3*3
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					p = append(p, idx(br+dr, bc+dc))
				}
			}
		}
	}
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			groups[i][j] = idx(i, j)
			groups[9+i][j] = idx(j, i)
			groups[18+i][j] = idx(i/3*3+j/3, i%3*3+j%3)
		}
	}
}

// placement is one pending assignment on the worklist.
type placement struct {
	value    uint8
	row, col int
}

// board is one search snapshot: assigned values plus per-cell candidate
// sets. Each branch of the search owns its own copy; only the model is
// shared.
type board struct {
	model      *model
	values     [81]uint8
	cand       [81]domain.Candidates
	unassigned int
}

func newBoard(m *model) *board {
	b := &board{model: m, unassigned: 81}
	for i := range b.cand {
		b.cand[i] = domain.AllCandidates
	}
	return b
}

func (b *board) clone() *board {
	nb := *b
	return &nb
}

func (b *board) grid() domain.Grid {
	var g domain.Grid
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			g[r][c] = b.values[idx(r, c)]
		}
	}
	return g
}

// removeCandidate drops value from the cell's candidate set. Assigned cells
// and already-absent candidates are silently ignored; reports whether a
// removal actually happened.
func (b *board) removeCandidate(value uint8, i int) bool {
	if b.values[i] != 0 || !b.cand[i].Has(value) {
		return false
	}
	b.cand[i] = b.cand[i].Without(value)
	return true
}

// checkForced runs after a settled elimination batch touched cell i: an
// empty candidate set is a contradiction, a singleton queues the forced
// assignment.
func (b *board) checkForced(i int, queue *[]placement) error {
	if b.values[i] != 0 {
		return nil
	}
	if b.cand[i] == 0 {
		return ErrContradiction
	}
	if v, ok := b.cand[i].Sole(); ok {
		*queue = append(*queue, placement{v, i / 9, i % 9})
	}
	return nil
}

// assign places value at (r,c) and drains every implied placement to a
// fixpoint. The worklist replaces the naive assign→force→assign recursion
// so pathological chains cannot exhaust the stack.
func (b *board) assign(value uint8, r, c int) error {
	queue := []placement{{value, r, c}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if err := b.place(p, &queue); err != nil {
			return err
		}
	}
	return nil
}

func (b *board) place(p placement, queue *[]placement) error {
	i := idx(p.row, p.col)
	if b.values[i] != 0 {
		if b.values[i] != p.value {
			return ErrContradiction
		}
		return nil // idempotent re-assignment
	}
	b.values[i] = p.value
	b.unassigned--

	// Eliminate across the whole row, column and block before any forced
	// check runs: a singleton discovered early must not fire until every
	// simultaneous elimination from this placement has landed.
	var removed []int
	for _, pi := range peers[i] {
		if b.removeCandidate(p.value, pi) {
			removed = append(removed, pi)
		}
	}
	for _, pi := range removed {
		if err := b.checkForced(pi, queue); err != nil {
			return err
		}
	}

	switch m := b.model; {
	case m.mirrorLine[i] >= 0:
		mr, mc := m.mirrorOf(p.row, p.col)
		*queue = append(*queue, placement{p.value, mr, mc})
	case m.rangeLine[i] >= 0:
		return b.propagateRange(p.value, p.row, p.col, queue)
	}
	return nil
}

// propagateRange enforces the bounded-range window after placing value on a
// range line of length L: an assigned line mate must differ from value and
// sit strictly inside (value-L, value+L); an unassigned mate loses every
// candidate outside that window. Eliminations cover the whole line before
// any forced check, same ordering as for row/col/block.
func (b *board) propagateRange(value uint8, r, c int, queue *[]placement) error {
	line := b.model.ranges[b.model.rangeLine[idx(r, c)]]
	lo := int(value) - len(line)
	hi := int(value) + len(line)
	var removed []int
	for _, cell := range line {
		if cell.Row == r && cell.Col == c {
			continue
		}
		i := idx(cell.Row, cell.Col)
		if v := b.values[i]; v != 0 {
			if v == value || int(v) <= lo || int(v) >= hi {
				return ErrContradiction
			}
			continue
		}
		for w := uint8(1); w <= 9; w++ {
			if int(w) > lo && int(w) < hi {
				continue
			}
			if b.removeCandidate(w, i) && !slices.Contains(removed, i) {
				removed = append(removed, i)
			}
		}
	}
	for _, i := range removed {
		if err := b.checkForced(i, queue); err != nil {
			return err
		}
	}
	return nil
}

// scanGroup is the hidden-single sweep over one row, column or block: a
// value held by exactly one cell of the group is (re-)assigned there. The
// primary propagation lives in checkForced; this stays as a cheap
// consistency sweep that only re-confirms existing assignments.
func (b *board) scanGroup(cells []int) error {
	for v := uint8(1); v <= 9; v++ {
		found, n := -1, 0
		for _, i := range cells {
			if b.values[i] == v {
				found, n = i, n+1
			}
		}
		if n == 1 {
			if err := b.assign(v, found/9, found%9); err != nil {
				return err
			}
		}
	}
	return nil
}

// saturate runs the sweep over all 9 rows, 9 columns and 9 blocks once.
// It is not a fixpoint loop by itself; repeated calls across search nodes
// provide the fixpoint behavior.
func (b *board) saturate() error {
	for gi := range groups {
		if err := b.scanGroup(groups[gi][:]); err != nil {
			return err
		}
	}
	return nil
}
