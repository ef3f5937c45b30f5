package ports

import (
	"context"
	"time"

	"svw.info/renban/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	MaxDepth int
	Duration time.Duration
}

// Solver solves a variant puzzle and can test solution uniqueness.
type Solver interface {
	Solve(ctx context.Context, def *domain.PuzzleDefinition) (*domain.Grid, Stats, error)
	Unique(ctx context.Context, def *domain.PuzzleDefinition) (bool, Stats, error)
}

// Generator creates new classic puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator performs constraint checks (row/col/box plus line constraints).
type Validator interface {
	Validate(ctx context.Context, def *domain.PuzzleDefinition, g *domain.Grid) (ok bool, conflicts []domain.CellCoord, err error)
}

// Tracer observes the search, once per node. Purely a side channel: the
// solver never depends on it for correctness.
type Tracer interface {
	Node(depth int, g domain.Grid)
}

// Storage persists and retrieves puzzles as JSON.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
