package usecase

import (
	"context"

	"github.com/pasqualotto/controle-estoque/internal/application/dto"
	"github.com/pasqualotto/controle-estoque/internal/domain/entity"
	"github.com/pasqualotto/controle-estoque/internal/domain/repository"
)

// BranchUseCase lectura del registro fijo de filiales.
type BranchUseCase struct {
	repo repository.BranchRepository
}

// NewBranchUseCase construye el caso de uso.
func NewBranchUseCase(repo repository.BranchRepository) *BranchUseCase {
	return &BranchUseCase{repo: repo}
}

// List lista las filiales.
func (uc *BranchUseCase) List(ctx context.Context) (*dto.BranchListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.BranchResponse, 0, len(list))
	for _, b := range list {
		items = append(items, toBranchResponse(b))
	}
	return &dto.BranchListResponse{Items: items}, nil
}

// GetByID obtiene una filial por ID. Devuelve nil, nil si no existe.
func (uc *BranchUseCase) GetByID(ctx context.Context, id int) (*dto.BranchResponse, error) {
	b, err := uc.repo.GetByID(ctx, id)
	if err != nil || b == nil {
		return nil, err
	}
	resp := toBranchResponse(b)
	return &resp, nil
}

func toBranchResponse(b *entity.Branch) dto.BranchResponse {
	return dto.BranchResponse{ID: b.ID, Name: b.Name}
}
