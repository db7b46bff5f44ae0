package repository

import (
	"context"

	"github.com/pasqualotto/controle-estoque/internal/domain/entity"
)

// BranchRepository define el puerto de lectura del registro fijo de filiales.
type BranchRepository interface {
	List(ctx context.Context) ([]*entity.Branch, error)
	// GetByID devuelve nil, nil si la filial no existe.
	GetByID(ctx context.Context, id int) (*entity.Branch, error)
}
