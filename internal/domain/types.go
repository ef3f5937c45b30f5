package domain

import (
	"errors"
	"strings"
)

// Grid is a 9x9 value grid; 0 marks an empty cell.
type Grid [9][9]uint8

// CellCoord identifies a cell on the grid.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// MirrorLine is an ordered run of cells; the cell at index i and the cell
// at index len-1-i must hold equal values.
type MirrorLine []CellCoord

// RangeLine is a set of cells whose values must stay within a window
// narrower than the line length (and end up consecutive in a solution).
type RangeLine []CellCoord

// PuzzleDefinition is the full input to the solver: given clues plus the
// extra line constraints. The caller guarantees coordinates are in range
// and that a cell sits on at most one line of each kind.
type PuzzleDefinition struct {
	Givens  Grid         `json:"givens"`
	Mirrors []MirrorLine `json:"mirrors,omitempty"`
	Ranges  []RangeLine  `json:"ranges,omitempty"`
}

// ErrUnsolvable reports that the search exhausted every branch. A malformed
// puzzle and a genuinely unsolvable one are indistinguishable here.
var ErrUnsolvable = errors.New("puzzle is unsolvable")

// Complete reports whether every cell holds a value.
func (g *Grid) Complete() bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return false
			}
		}
	}
	return true
}

// String renders the grid as 9 rows of digits, '.' for empty cells.
func (g Grid) String() string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := g[r][c]; v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Puzzle is a persisted puzzle definition with metadata.
type Puzzle struct {
	ID         string           `json:"id,omitempty"`
	Seed       int64            `json:"seed,omitempty"`
	Difficulty Difficulty       `json:"difficulty,omitempty"`
	Definition PuzzleDefinition `json:"definition"`
	CreatedAt  int64            `json:"createdAt,omitempty"`
	Name       string           `json:"name,omitempty"`
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}
