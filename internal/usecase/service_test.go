package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/renban/internal/domain"
	"svw.info/renban/internal/infrastructure/storage"
)

func TestUnconfiguredDependenciesAreGuarded(t *testing.T) {
	u := &Service{}
	ctx := context.Background()

	_, _, err := u.Solve(ctx, &domain.PuzzleDefinition{})
	assert.ErrorIs(t, err, errNotConfigured)
	_, _, err = u.Generate(ctx, 1, domain.Easy)
	assert.ErrorIs(t, err, errNotConfigured)
	_, _, err = u.Validate(ctx, nil, &domain.Grid{})
	assert.ErrorIs(t, err, errNotConfigured)
	assert.ErrorIs(t, u.Save(ctx, &domain.Puzzle{}), errNotConfigured)
	_, err = u.Load(ctx, "id")
	assert.ErrorIs(t, err, errNotConfigured)
	_, err = u.List(ctx)
	assert.ErrorIs(t, err, errNotConfigured)
}

func TestSaveAssignsID(t *testing.T) {
	u := &Service{Storage: storage.NewFS(t.TempDir())}
	p := &domain.Puzzle{Name: "x"}
	require.NoError(t, u.Save(context.Background(), p))
	assert.NotEmpty(t, p.ID)

	got, err := u.Load(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "x", got.Name)
}
