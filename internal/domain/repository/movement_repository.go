package repository

import (
	"context"

	"github.com/pasqualotto/controle-estoque/internal/domain/entity"
)

// MovementFilter filtros de listado del libro. Campos vacíos no filtran.
type MovementFilter struct {
	BranchID  *int
	ProductID string
	Kind      entity.MovementKind
}

// MovementRepository define el puerto de persistencia para el libro de movimientos.
// No hay Update: los movimientos solo se agregan o se eliminan.
type MovementRepository interface {
	Create(ctx context.Context, movement *entity.Movement) error
	// List ordena por OccurredAt descendente e incluye código y nombre del producto.
	List(ctx context.Context, filter MovementFilter) ([]*entity.MovementDetail, error)
	// Delete ignora ids inexistentes. Devuelve cuántos movimientos se eliminaron.
	Delete(ctx context.Context, ids []string) (int64, error)
}
