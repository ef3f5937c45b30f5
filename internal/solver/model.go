package solver

import "svw.info/renban/internal/domain"

// model is the immutable line structure of a puzzle: which cells sit on
// which mirror or range line. Built once per solve and shared read-only by
// every board snapshot.
type model struct {
	mirrors []domain.MirrorLine
	ranges  []domain.RangeLine

	// per-cell lookups, -1 when the cell is on no such line
	mirrorLine [81]int8
	mirrorIdx  [81]int8
	rangeLine  [81]int8
}

func idx(r, c int) int { return r*9 + c }

func newModel(def *domain.PuzzleDefinition) *model {
	m := &model{mirrors: def.Mirrors, ranges: def.Ranges}
	for i := range m.mirrorLine {
		m.mirrorLine[i] = -1
		m.rangeLine[i] = -1
	}
	for li, line := range def.Mirrors {
		for ci, cell := range line {
			i := idx(cell.Row, cell.Col)
			m.mirrorLine[i] = int8(li)
			m.mirrorIdx[i] = int8(ci)
		}
	}
	for li, line := range def.Ranges {
		for _, cell := range line {
			m.rangeLine[idx(cell.Row, cell.Col)] = int8(li)
		}
	}
	return m
}

// mirrorOf returns the mirrored counterpart of (r,c), which may be (r,c)
// itself at the center of an odd-length line.
func (m *model) mirrorOf(r, c int) (int, int) {
	i := idx(r, c)
	line := m.mirrors[m.mirrorLine[i]]
	mate := line[len(line)-1-int(m.mirrorIdx[i])]
	return mate.Row, mate.Col
}
