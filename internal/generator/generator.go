package generator

import "svw.info/renban/internal/ports"

// UniqueGenerator creates classic puzzles (no variant lines) with a unique
// solution, using the provided solver for uniqueness checks.
type UniqueGenerator struct {
	Solver ports.Solver
}

func NewUniqueGenerator(s ports.Solver) *UniqueGenerator {
	return &UniqueGenerator{Solver: s}
}
