package solver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/renban/internal/domain"
	"svw.info/renban/internal/validator"
)

// A classic, solvable Sudoku (0 = empty) and its unique solution.
var sample = domain.Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

var sampleSolution = domain.Grid{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func solveOK(t *testing.T, def *domain.PuzzleDefinition) *domain.Grid {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	grid, st, err := NewEngine().Solve(ctx, def)
	require.NoError(t, err, "nodes=%d dur=%v", st.Nodes, st.Duration)
	require.True(t, grid.Complete())
	ok, conf, err := validator.New().Validate(ctx, def, grid)
	require.NoError(t, err)
	require.True(t, ok, "conflicts: %v", conf)
	return grid
}

func TestSolveClassic(t *testing.T) {
	grid := solveOK(t, &domain.PuzzleDefinition{Givens: sample})
	assert.Equal(t, sampleSolution, *grid)
}

// Scenario A: a fully given grid comes back unchanged.
func TestSolveFullyGiven(t *testing.T) {
	grid := solveOK(t, &domain.PuzzleDefinition{Givens: sampleSolution})
	assert.Equal(t, sampleSolution, *grid)
}

// Scenario B: a mirror line over three blank cells forces equal end values.
func TestSolveMirrorLine(t *testing.T) {
	def := &domain.PuzzleDefinition{
		Givens: sample,
		Mirrors: []domain.MirrorLine{
			{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 4}},
		},
	}
	grid := solveOK(t, def)
	assert.Equal(t, grid[0][2], grid[2][4], "line ends must match")
	// the line is consistent with the puzzle's unique solution
	assert.Equal(t, sampleSolution, *grid)
}

// Scenario C: a range line of length 3 seeded with a given 5 must end as a
// permutation of three consecutive integers.
func TestSolveRangeLine(t *testing.T) {
	line := domain.RangeLine{{Row: 1, Col: 5}, {Row: 5, Col: 5}, {Row: 8, Col: 5}}
	def := &domain.PuzzleDefinition{
		Givens: sample, // (1,5) is a given 5
		Ranges: []domain.RangeLine{line},
	}
	grid := solveOK(t, def)

	vals := make([]int, 0, 3)
	for _, cc := range line {
		vals = append(vals, int(grid[cc.Row][cc.Col]))
	}
	for _, v := range vals[1:] {
		assert.Contains(t, []int{3, 4, 6, 7}, v, "window around 5, duplicates excluded")
	}
	min, max := vals[0], vals[0]
	seen := map[int]bool{vals[0]: true}
	for _, v := range vals[1:] {
		require.False(t, seen[v], "range line values must be distinct")
		seen[v] = true
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	assert.Equal(t, len(line)-1, max-min, "values form a consecutive run")
}

// Scenario D: two givens with the same value in one row are unsolvable.
func TestSolveContradictoryGivens(t *testing.T) {
	bad := sample
	bad[1][1] = 6 // duplicates the 6 at (1,0)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	grid, _, err := NewEngine().Solve(ctx, &domain.PuzzleDefinition{Givens: bad})
	assert.ErrorIs(t, err, domain.ErrUnsolvable)
	assert.Nil(t, grid)
}

func TestSolveDeterministic(t *testing.T) {
	def := &domain.PuzzleDefinition{
		Givens: sample,
		Mirrors: []domain.MirrorLine{
			{{Row: 0, Col: 2}, {Row: 1, Col: 2}, {Row: 2, Col: 4}},
		},
		Ranges: []domain.RangeLine{
			{{Row: 1, Col: 5}, {Row: 5, Col: 5}, {Row: 8, Col: 5}},
		},
	}
	first := solveOK(t, def)
	second := solveOK(t, def)
	assert.Equal(t, *first, *second)
}

func TestSolveRespectsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewEngine().Solve(ctx, &domain.PuzzleDefinition{})
	assert.ErrorIs(t, err, context.Canceled)
}

type countingTracer struct {
	nodes int
	depth int
}

func (c *countingTracer) Node(depth int, g domain.Grid) {
	c.nodes++
	if depth > c.depth {
		c.depth = depth
	}
}

func TestTracerSeesEveryNode(t *testing.T) {
	tr := &countingTracer{}
	ctx := context.Background()
	def := &domain.PuzzleDefinition{Givens: sample}
	_, st, err := NewEngine().WithTracer(tr).Solve(ctx, def)
	require.NoError(t, err)
	assert.Equal(t, st.Nodes, tr.nodes)
	assert.Equal(t, st.MaxDepth, tr.depth)
}

func TestUnique(t *testing.T) {
	ctx := context.Background()
	eng := NewEngine()

	ok, _, err := eng.Unique(ctx, &domain.PuzzleDefinition{Givens: sample})
	require.NoError(t, err)
	assert.True(t, ok, "the classic sample has one solution")

	ok, _, err = eng.Unique(ctx, &domain.PuzzleDefinition{})
	require.NoError(t, err)
	assert.False(t, ok, "an empty grid has many solutions")
}
