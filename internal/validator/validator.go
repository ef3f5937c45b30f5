package validator

import (
	"context"

	"svw.info/renban/internal/domain"
)

// FastValidator scans a grid for row/col/box duplicates and for violated
// mirror and range line constraints. Empty cells are skipped, so a partial
// grid validates as long as nothing placed so far conflicts.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, def *domain.PuzzleDefinition, g *domain.Grid) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	// rows
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			val := g[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			val := g[r][c]
			if val == 0 {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// boxes
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					r := br*3 + dr
					c := bc*3 + dc
					val := g[r][c]
					if val == 0 {
						continue
					}
					bit := 1 << val
					if m&bit != 0 {
						conf = append(conf, domain.CellCoord{Row: r, Col: c})
					}
					m |= bit
				}
			}
		}
	}
	if def != nil {
		conf = append(conf, mirrorConflicts(def, g)...)
		conf = append(conf, rangeConflicts(def, g)...)
	}
	return len(conf) == 0, conf, nil
}

// mirrorConflicts reports pairs of mirrored cells that hold different
// values. Pairs with an empty side are fine.
func mirrorConflicts(def *domain.PuzzleDefinition, g *domain.Grid) []domain.CellCoord {
	var conf []domain.CellCoord
	for _, line := range def.Mirrors {
		for i := 0; i < len(line)/2; i++ {
			a, b := line[i], line[len(line)-1-i]
			va, vb := g[a.Row][a.Col], g[b.Row][b.Col]
			if va != 0 && vb != 0 && va != vb {
				conf = append(conf, a, b)
			}
		}
	}
	return conf
}

// rangeConflicts reports range-line cells whose value duplicates or falls
// outside the window of another assigned cell on the same line.
func rangeConflicts(def *domain.PuzzleDefinition, g *domain.Grid) []domain.CellCoord {
	var conf []domain.CellCoord
	for _, line := range def.Ranges {
		for i := 0; i < len(line); i++ {
			for j := i + 1; j < len(line); j++ {
				a, b := line[i], line[j]
				va, vb := g[a.Row][a.Col], g[b.Row][b.Col]
				if va == 0 || vb == 0 {
					continue
				}
				d := int(va) - int(vb)
				if d < 0 {
					d = -d
				}
				if d == 0 || d >= len(line) {
					conf = append(conf, b)
				}
			}
		}
	}
	return conf
}
