package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pasqualotto/controle-estoque/internal/application/usecase"
	"github.com/pasqualotto/controle-estoque/internal/infrastructure/memory"
)

func TestBranchUseCase(t *testing.T) {
	uc := usecase.NewBranchUseCase(memory.NewBranchRepository(memory.NewStore(nil)))
	ctx := context.Background()

	list, err := uc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list.Items, 3)
	assert.Equal(t, "Lucas do Rio Verde", list.Items[0].Name)

	b, err := uc.GetByID(ctx, 3)
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, "Juara", b.Name)

	missing, err := uc.GetByID(ctx, 42)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
