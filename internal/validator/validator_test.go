package validator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/renban/internal/domain"
)

func TestValidateCleanPartialGrid(t *testing.T) {
	var g domain.Grid
	g[0][0] = 5
	g[4][4] = 5
	ok, conf, err := New().Validate(context.Background(), &domain.PuzzleDefinition{}, &g)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Empty(t, conf)
}

func TestValidateRowColBoxConflicts(t *testing.T) {
	cases := []struct {
		name string
		a, b domain.CellCoord
	}{
		{"row", domain.CellCoord{Row: 2, Col: 0}, domain.CellCoord{Row: 2, Col: 7}},
		{"col", domain.CellCoord{Row: 0, Col: 3}, domain.CellCoord{Row: 8, Col: 3}},
		{"box", domain.CellCoord{Row: 6, Col: 6}, domain.CellCoord{Row: 8, Col: 8}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var g domain.Grid
			g[tc.a.Row][tc.a.Col] = 9
			g[tc.b.Row][tc.b.Col] = 9
			ok, conf, err := New().Validate(context.Background(), nil, &g)
			require.NoError(t, err)
			assert.False(t, ok)
			assert.NotEmpty(t, conf)
		})
	}
}

func TestValidateMirrorLine(t *testing.T) {
	def := &domain.PuzzleDefinition{
		Mirrors: []domain.MirrorLine{
			{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 2, Col: 3}},
		},
	}
	var g domain.Grid
	g[0][0] = 4
	g[2][3] = 4
	ok, _, err := New().Validate(context.Background(), def, &g)
	require.NoError(t, err)
	assert.True(t, ok, "matching ends are fine")

	g[2][3] = 7
	ok, conf, err := New().Validate(context.Background(), def, &g)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, conf, domain.CellCoord{Row: 0, Col: 0})
	assert.Contains(t, conf, domain.CellCoord{Row: 2, Col: 3})
}

func TestValidateRangeLine(t *testing.T) {
	def := &domain.PuzzleDefinition{
		Ranges: []domain.RangeLine{
			{{Row: 0, Col: 0}, {Row: 3, Col: 3}, {Row: 6, Col: 6}},
		},
	}
	var g domain.Grid
	g[0][0] = 4
	g[3][3] = 6
	ok, _, err := New().Validate(context.Background(), def, &g)
	require.NoError(t, err)
	assert.True(t, ok, "|4-6| < 3")

	g[6][6] = 8
	ok, conf, err := New().Validate(context.Background(), def, &g)
	require.NoError(t, err)
	assert.False(t, ok, "|4-8| >= 3")
	assert.NotEmpty(t, conf)

	g[6][6] = 4
	ok, _, err = New().Validate(context.Background(), def, &g)
	require.NoError(t, err)
	assert.False(t, ok, "duplicates on a range line conflict")
}
