package repository

import (
	"context"

	"github.com/pasqualotto/controle-estoque/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los métodos Get* devuelven nil, nil cuando no hay coincidencia.
type ProductRepository interface {
	// Create falla con domain.ErrDuplicateCode si (Code, BranchID) ya existe.
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	// GetForUpdate bloquea el producto hasta el fin de la transacción en curso.
	GetForUpdate(ctx context.Context, id string) (*entity.Product, error)
	GetByBranchAndCode(ctx context.Context, branchID int, code string) (*entity.Product, error)
	// List ordena por RegisteredAt descendente; branchID nil lista todas las filiales.
	List(ctx context.Context, branchID *int) ([]*entity.Product, error)
	// DeleteWithMovements elimina los productos y todos sus movimientos como una sola unidad.
	// Ids inexistentes se ignoran. Devuelve cuántos productos se eliminaron.
	DeleteWithMovements(ctx context.Context, ids []string) (int64, error)
}
